package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"cafe-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// SnapshotVersion is written into every saved cart. Version 0 is the
// unversioned bare array written by the first release.
const SnapshotVersion = 1

var ErrMalformedSnapshot = errors.New("malformed cart snapshot")

type snapshotEnvelope struct {
	Version int               `json:"version"`
	Lines   []domain.CartLine `json:"lines"`
}

// legacyLine is a version 0 entry: the product flattened next to the quantity,
// with the base price only.
type legacyLine struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Price          decimal.Decimal        `json:"price"`
	Description    string                 `json:"description"`
	CategoryID     string                 `json:"categoryId"`
	SubcategoryID  string                 `json:"subcategoryId"`
	Customizable   bool                   `json:"customizable"`
	Popular        bool                   `json:"popular"`
	Quantity       int                    `json:"quantity"`
	Customizations *domain.Customizations `json:"customizations"`
}

func EncodeSnapshot(lines []domain.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(snapshotEnvelope{Version: SnapshotVersion, Lines: lines})
}

// DecodeSnapshot accepts the current envelope and the version 0 array. Any
// shape or content problem yields ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) ([]domain.CartLine, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedSnapshot)
	}

	var lines []domain.CartLine
	switch data[0] {
	case '[':
		migrated, err := decodeLegacy(data)
		if err != nil {
			return nil, err
		}
		lines = migrated
	case '{':
		var env snapshotEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
		}
		if env.Version != SnapshotVersion {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedSnapshot, env.Version)
		}
		lines = env.Lines
	default:
		return nil, fmt.Errorf("%w: unexpected payload", ErrMalformedSnapshot)
	}

	for i, line := range lines {
		if err := validateLine(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedSnapshot, i, err)
		}
	}
	return lines, nil
}

func decodeLegacy(data []byte) ([]domain.CartLine, error) {
	var items []legacyLine
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		product := domain.Product{
			ID:            item.ID,
			Name:          item.Name,
			Price:         item.Price,
			CategoryID:    item.CategoryID,
			SubcategoryID: item.SubcategoryID,
			Customizable:  item.Customizable,
			Description:   item.Description,
			Popular:       item.Popular,
		}
		lines = append(lines, domain.CartLine{
			Product:        product,
			UnitPrice:      UnitPrice(product, item.Customizations),
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}
	return lines, nil
}

func validateLine(line domain.CartLine) error {
	switch {
	case line.Product.ID == "":
		return errors.New("missing product id")
	case line.Quantity < 1:
		return fmt.Errorf("quantity %d", line.Quantity)
	case line.Product.Price.IsNegative() || line.UnitPrice.IsNegative():
		return errors.New("negative price")
	}
	return line.Customizations.Validate()
}
