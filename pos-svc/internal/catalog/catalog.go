package catalog

import (
	"errors"
	"fmt"

	"cafe-pos/pos-svc/internal/domain"
)

var (
	ErrUnknownCategory    = errors.New("category not found")
	ErrUnknownSubcategory = errors.New("subcategory not found")
	ErrUnknownProduct     = errors.New("product not found")
)

// Catalog is the static menu. It is validated once and never mutated.
type Catalog struct {
	categories []domain.Category
	products   []domain.Product
	productIdx map[string]int
}

func New(categories []domain.Category, products []domain.Product) (*Catalog, error) {
	if err := Validate(categories, products); err != nil {
		return nil, err
	}

	c := &Catalog{
		categories: categories,
		products:   products,
		productIdx: make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.productIdx[p.ID] = i
	}
	return c, nil
}

// Default returns the built-in cafe menu.
func Default() *Catalog {
	c, err := New(defaultCategories, defaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}

func Validate(categories []domain.Category, products []domain.Product) error {
	subsByCategory := make(map[string]map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return errors.New("category with empty id")
		}
		if _, dup := subsByCategory[cat.ID]; dup {
			return fmt.Errorf("duplicate category %q", cat.ID)
		}
		subs := make(map[string]bool, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			if sub.ParentID != cat.ID {
				return fmt.Errorf("subcategory %q: parent %q does not match category %q", sub.ID, sub.ParentID, cat.ID)
			}
			if subs[sub.ID] {
				return fmt.Errorf("duplicate subcategory %q in category %q", sub.ID, cat.ID)
			}
			subs[sub.ID] = true
		}
		subsByCategory[cat.ID] = subs
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.ID == "" {
			return errors.New("product with empty id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product %q", p.ID)
		}
		seen[p.ID] = true
		if p.Price.IsNegative() {
			return fmt.Errorf("product %q: negative price %s", p.ID, p.Price)
		}
		subs, ok := subsByCategory[p.CategoryID]
		if !ok {
			return fmt.Errorf("product %q: %w %q", p.ID, ErrUnknownCategory, p.CategoryID)
		}
		if !subs[p.SubcategoryID] {
			return fmt.Errorf("product %q: %w %q in %q", p.ID, ErrUnknownSubcategory, p.SubcategoryID, p.CategoryID)
		}
	}
	return nil
}

func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Category(id string) (domain.Category, error) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return domain.Category{}, ErrUnknownCategory
}

// FirstCategory returns the first declared category, or false for an empty menu.
func (c *Catalog) FirstCategory() (domain.Category, bool) {
	if len(c.categories) == 0 {
		return domain.Category{}, false
	}
	return c.categories[0], true
}

// FirstSubcategory returns the id of the category's first declared subcategory,
// or "" when the category has none.
func (c *Catalog) FirstSubcategory(categoryID string) (string, error) {
	cat, err := c.Category(categoryID)
	if err != nil {
		return "", err
	}
	if len(cat.Subcategories) == 0 {
		return "", nil
	}
	return cat.Subcategories[0].ID, nil
}

func (c *Catalog) Subcategory(categoryID, subcategoryID string) (domain.Subcategory, error) {
	cat, err := c.Category(categoryID)
	if err != nil {
		return domain.Subcategory{}, err
	}
	for _, sub := range cat.Subcategories {
		if sub.ID == subcategoryID {
			return sub, nil
		}
	}
	return domain.Subcategory{}, ErrUnknownSubcategory
}

func (c *Catalog) Product(id string) (domain.Product, error) {
	i, ok := c.productIdx[id]
	if !ok {
		return domain.Product{}, ErrUnknownProduct
	}
	return c.products[i], nil
}

func (c *Catalog) Filter(categoryID, subcategoryID string) []domain.Product {
	return Filter(c.products, categoryID, subcategoryID)
}

// Filter keeps products matching both ids, in catalog order.
func Filter(products []domain.Product, categoryID, subcategoryID string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.CategoryID == categoryID && p.SubcategoryID == subcategoryID {
			out = append(out, p)
		}
	}
	return out
}
