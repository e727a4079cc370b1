package catalog

import (
	"cafe-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var defaultCategories = []domain.Category{
	{
		ID:   "drinks",
		Name: "Drinks",
		Subcategories: []domain.Subcategory{
			{ID: "hot-drinks", Name: "Hot Drinks", ParentID: "drinks"},
			{ID: "cold-drinks", Name: "Cold Drinks", ParentID: "drinks"},
			{ID: "smoothies", Name: "Smoothies", ParentID: "drinks"},
		},
	},
	{
		ID:   "food",
		Name: "Food",
		Subcategories: []domain.Subcategory{
			{ID: "main-dishes", Name: "Main Dishes", ParentID: "food"},
			{ID: "sides", Name: "Sides", ParentID: "food"},
			{ID: "desserts", Name: "Desserts", ParentID: "food"},
		},
	},
	{
		ID:   "snacks",
		Name: "Snacks",
		Subcategories: []domain.Subcategory{
			{ID: "fruits", Name: "Fruits", ParentID: "snacks"},
			{ID: "nuts", Name: "Nuts", ParentID: "snacks"},
			{ID: "chips", Name: "Chips", ParentID: "snacks"},
		},
	},
	{
		ID:   "breakfast",
		Name: "Breakfast",
		Subcategories: []domain.Subcategory{
			{ID: "eggs", Name: "Eggs", ParentID: "breakfast"},
			{ID: "pancakes", Name: "Pancakes", ParentID: "breakfast"},
			{ID: "cereals", Name: "Cereals", ParentID: "breakfast"},
		},
	},
	{
		ID:   "lunch",
		Name: "Lunch",
		Subcategories: []domain.Subcategory{
			{ID: "sandwiches", Name: "Sandwiches", ParentID: "lunch"},
			{ID: "salads", Name: "Salads", ParentID: "lunch"},
			{ID: "soups", Name: "Soups", ParentID: "lunch"},
		},
	},
	{
		ID:   "dinner",
		Name: "Dinner",
		Subcategories: []domain.Subcategory{
			{ID: "steaks", Name: "Steaks", ParentID: "dinner"},
			{ID: "pasta", Name: "Pasta", ParentID: "dinner"},
			{ID: "seafood", Name: "Seafood", ParentID: "dinner"},
		},
	},
	{
		ID:   "burgers",
		Name: "Burgers",
		Subcategories: []domain.Subcategory{
			{ID: "beef-burgers", Name: "Beef Burgers", ParentID: "burgers"},
			{ID: "chicken-burgers", Name: "Chicken Burgers", ParentID: "burgers"},
			{ID: "veggie-burgers", Name: "Veggie Burgers", ParentID: "burgers"},
		},
	},
	{
		ID:   "desserts",
		Name: "Desserts",
		Subcategories: []domain.Subcategory{
			{ID: "cakes", Name: "Cakes", ParentID: "desserts"},
			{ID: "ice-cream", Name: "Ice Cream", ParentID: "desserts"},
			{ID: "cookies", Name: "Cookies", ParentID: "desserts"},
		},
	},
	{
		ID:   "beverages",
		Name: "Beverages",
		Subcategories: []domain.Subcategory{
			{ID: "soft-drinks", Name: "Soft Drinks", ParentID: "beverages"},
			{ID: "juices", Name: "Juices", ParentID: "beverages"},
			{ID: "alcoholic", Name: "Alcoholic", ParentID: "beverages"},
		},
	},
	{
		ID:   "specials",
		Name: "Specials",
		Subcategories: []domain.Subcategory{
			{ID: "daily-specials", Name: "Daily Specials", ParentID: "specials"},
			{ID: "seasonal", Name: "Seasonal", ParentID: "specials"},
			{ID: "chef-choice", Name: "Chef's Choice", ParentID: "specials"},
		},
	},
}

var defaultProducts = []domain.Product{
	{
		ID:            "1",
		Name:          "French Vanilla Fantasy",
		Price:         price("5.99"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Smooth and creamy vanilla flavored coffee",
		Popular:       true,
	},
	{
		ID:            "2",
		Name:          "Caramel Cloud Latte",
		Price:         price("6.49"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Espresso with steamed milk and caramel foam",
	},
	{
		ID:            "3",
		Name:          "Classic Americano",
		Price:         price("4.50"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Double espresso topped with hot water",
	},
	{
		ID:            "4",
		Name:          "Cappuccino",
		Price:         price("5.50"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Espresso with equal parts steamed milk and foam",
		Popular:       true,
	},
	{
		ID:            "5",
		Name:          "Flat White",
		Price:         price("5.80"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Velvety microfoam over a ristretto shot",
	},
	{
		ID:            "6",
		Name:          "Mocha Delight",
		Price:         price("6.20"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Espresso, chocolate and steamed milk",
	},
	{
		ID:            "7",
		Name:          "Hazelnut Latte",
		Price:         price("6.30"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
	},
	{
		ID:            "8",
		Name:          "Teh Tarik",
		Price:         price("3.50"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Pulled milk tea",
		Popular:       true,
	},
	{
		ID:            "9",
		Name:          "Kopi O",
		Price:         price("2.80"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Local black coffee",
	},
	{
		ID:            "10",
		Name:          "Masala Chai",
		Price:         price("4.80"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Spiced black tea with milk",
	},
	{
		ID:            "11",
		Name:          "Matcha Latte",
		Price:         price("6.90"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Stone-ground green tea with milk",
	},
	{
		ID:            "12",
		Name:          "Hot Chocolate",
		Price:         price("5.20"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
	},
	{
		ID:            "13",
		Name:          "Earl Grey",
		Price:         price("4.00"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
		Description:   "Bergamot scented black tea",
	},
	{
		ID:            "14",
		Name:          "Honey Lemon Ginger",
		Price:         price("4.20"),
		CategoryID:    "drinks",
		SubcategoryID: "hot-drinks",
		Customizable:  true,
	},
	{
		ID:            "15",
		Name:          "Iced Caramel Macchiato",
		Price:         price("6.80"),
		CategoryID:    "drinks",
		SubcategoryID: "cold-drinks",
		Customizable:  true,
		Popular:       true,
	},
	{
		ID:            "16",
		Name:          "Cold Brew",
		Price:         price("5.90"),
		CategoryID:    "drinks",
		SubcategoryID: "cold-drinks",
		Customizable:  true,
		Description:   "Steeped for eighteen hours",
	},
	{
		ID:            "17",
		Name:          "Iced Lemon Tea",
		Price:         price("3.90"),
		CategoryID:    "drinks",
		SubcategoryID: "cold-drinks",
		Customizable:  true,
	},
	{
		ID:            "18",
		Name:          "Mango Passion Smoothie",
		Price:         price("7.50"),
		CategoryID:    "drinks",
		SubcategoryID: "smoothies",
		Customizable:  true,
		Description:   "Mango, passion fruit and yogurt",
	},
	{
		ID:            "19",
		Name:          "Berry Blast Smoothie",
		Price:         price("7.50"),
		CategoryID:    "drinks",
		SubcategoryID: "smoothies",
		Customizable:  true,
	},
	{
		ID:            "20",
		Name:          "Nasi Lemak",
		Price:         price("9.90"),
		CategoryID:    "food",
		SubcategoryID: "main-dishes",
		Customizable:  false,
		Description:   "Coconut rice with sambal, egg and anchovies",
		Popular:       true,
	},
	{
		ID:            "21",
		Name:          "Chicken Curry Rice",
		Price:         price("11.50"),
		CategoryID:    "food",
		SubcategoryID: "main-dishes",
		Customizable:  false,
	},
	{
		ID:            "22",
		Name:          "Truffle Fries",
		Price:         price("8.00"),
		CategoryID:    "food",
		SubcategoryID: "sides",
		Customizable:  false,
	},
	{
		ID:            "23",
		Name:          "Garlic Bread",
		Price:         price("5.00"),
		CategoryID:    "food",
		SubcategoryID: "sides",
		Customizable:  false,
	},
	{
		ID:            "24",
		Name:          "Sago Gula Melaka",
		Price:         price("6.00"),
		CategoryID:    "food",
		SubcategoryID: "desserts",
		Customizable:  false,
	},
	{
		ID:            "25",
		Name:          "Fresh Fruit Cup",
		Price:         price("4.50"),
		CategoryID:    "snacks",
		SubcategoryID: "fruits",
		Customizable:  false,
	},
	{
		ID:            "26",
		Name:          "Roasted Almonds",
		Price:         price("3.00"),
		CategoryID:    "snacks",
		SubcategoryID: "nuts",
		Customizable:  false,
	},
	{
		ID:            "27",
		Name:          "Cassava Chips",
		Price:         price("3.00"),
		CategoryID:    "snacks",
		SubcategoryID: "chips",
		Customizable:  false,
	},
	{
		ID:            "28",
		Name:          "Sunny Side Up Platter",
		Price:         price("8.50"),
		CategoryID:    "breakfast",
		SubcategoryID: "eggs",
		Customizable:  false,
	},
	{
		ID:            "29",
		Name:          "Buttermilk Pancakes",
		Price:         price("9.00"),
		CategoryID:    "breakfast",
		SubcategoryID: "pancakes",
		Customizable:  false,
		Description:   "Stack of three with maple syrup",
		Popular:       true,
	},
	{
		ID:            "30",
		Name:          "Granola Bowl",
		Price:         price("7.00"),
		CategoryID:    "breakfast",
		SubcategoryID: "cereals",
		Customizable:  false,
	},
	{
		ID:            "31",
		Name:          "Club Sandwich",
		Price:         price("12.00"),
		CategoryID:    "lunch",
		SubcategoryID: "sandwiches",
		Customizable:  false,
	},
	{
		ID:            "32",
		Name:          "Caesar Salad",
		Price:         price("11.00"),
		CategoryID:    "lunch",
		SubcategoryID: "salads",
		Customizable:  false,
	},
	{
		ID:            "33",
		Name:          "Mushroom Soup",
		Price:         price("7.50"),
		CategoryID:    "lunch",
		SubcategoryID: "soups",
		Customizable:  false,
	},
	{
		ID:            "34",
		Name:          "Ribeye Steak",
		Price:         price("45.00"),
		CategoryID:    "dinner",
		SubcategoryID: "steaks",
		Customizable:  false,
	},
	{
		ID:            "35",
		Name:          "Aglio Olio",
		Price:         price("16.00"),
		CategoryID:    "dinner",
		SubcategoryID: "pasta",
		Customizable:  false,
	},
	{
		ID:            "36",
		Name:          "Grilled Salmon",
		Price:         price("32.00"),
		CategoryID:    "dinner",
		SubcategoryID: "seafood",
		Customizable:  false,
	},
	{
		ID:            "37",
		Name:          "Classic Beef Burger",
		Price:         price("18.00"),
		CategoryID:    "burgers",
		SubcategoryID: "beef-burgers",
		Customizable:  false,
		Popular:       true,
	},
	{
		ID:            "38",
		Name:          "Crispy Chicken Burger",
		Price:         price("16.00"),
		CategoryID:    "burgers",
		SubcategoryID: "chicken-burgers",
		Customizable:  false,
	},
	{
		ID:            "39",
		Name:          "Portobello Burger",
		Price:         price("15.00"),
		CategoryID:    "burgers",
		SubcategoryID: "veggie-burgers",
		Customizable:  false,
	},
	{
		ID:            "40",
		Name:          "Burnt Cheesecake",
		Price:         price("12.00"),
		CategoryID:    "desserts",
		SubcategoryID: "cakes",
		Customizable:  false,
		Popular:       true,
	},
	{
		ID:            "41",
		Name:          "Vanilla Gelato",
		Price:         price("6.50"),
		CategoryID:    "desserts",
		SubcategoryID: "ice-cream",
		Customizable:  false,
	},
	{
		ID:            "42",
		Name:          "Chocolate Chip Cookie",
		Price:         price("3.50"),
		CategoryID:    "desserts",
		SubcategoryID: "cookies",
		Customizable:  false,
	},
	{
		ID:            "43",
		Name:          "Sparkling Lemonade",
		Price:         price("5.00"),
		CategoryID:    "beverages",
		SubcategoryID: "soft-drinks",
		Customizable:  true,
	},
	{
		ID:            "44",
		Name:          "Fresh Orange Juice",
		Price:         price("7.00"),
		CategoryID:    "beverages",
		SubcategoryID: "juices",
		Customizable:  true,
	},
	{
		ID:            "45",
		Name:          "Craft Lager",
		Price:         price("18.00"),
		CategoryID:    "beverages",
		SubcategoryID: "alcoholic",
		Customizable:  false,
	},
	{
		ID:            "46",
		Name:          "Chef's Laksa",
		Price:         price("14.00"),
		CategoryID:    "specials",
		SubcategoryID: "daily-specials",
		Customizable:  false,
	},
	{
		ID:            "47",
		Name:          "Durian Crepe",
		Price:         price("9.00"),
		CategoryID:    "specials",
		SubcategoryID: "seasonal",
		Customizable:  false,
	},
	{
		ID:            "48",
		Name:          "Wagyu Rendang",
		Price:         price("38.00"),
		CategoryID:    "specials",
		SubcategoryID: "chef-choice",
		Customizable:  false,
	},
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
