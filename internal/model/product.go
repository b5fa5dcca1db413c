package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a single item in the store catalog. ID is assigned
// by the storage layer on creation; a zero ID means the product has not
// been persisted yet.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Category    Category
}

// ValidationError reports a malformed or incomplete product payload.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "invalid product data: " + e.Detail
}

// ParsePrice converts a decoded JSON value into a decimal price.
// Strings and numbers are accepted; negative prices are rejected.
func ParsePrice(value any) (decimal.Decimal, error) {
	var (
		price decimal.Decimal
		err   error
	)
	switch v := value.(type) {
	case string:
		price, err = decimal.NewFromString(v)
	case json.Number:
		price, err = decimal.NewFromString(v.String())
	case float64:
		price = decimal.NewFromFloat(v)
	default:
		return decimal.Decimal{}, &ValidationError{Detail: fmt.Sprintf("invalid type for price: %T", value)}
	}
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Detail: "unparsable price: " + err.Error()}
	}
	if price.IsNegative() {
		return decimal.Decimal{}, &ValidationError{Detail: "price must not be negative"}
	}
	return price, nil
}

// formatPrice renders a price with the scale it was parsed or stored
// with. Decimal.String trims trailing fractional zeros, which would turn
// "12.50" into "12.5" and lose the exact decimal representation.
func formatPrice(price decimal.Decimal) string {
	if exp := price.Exponent(); exp < 0 {
		return price.StringFixed(-exp)
	}
	return price.String()
}

// Serialize renders the product as a JSON-safe mapping. The price is a
// decimal string to preserve exact precision and the category is its
// symbolic name. The id is nil until the product has been persisted.
func (p *Product) Serialize() map[string]any {
	var id any
	if p.ID != 0 {
		id = p.ID
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       formatPrice(p.Price),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from a decoded JSON mapping, leaving
// ID untouched, and returns the receiver. It only assigns in-memory
// fields and never touches storage.
func (p *Product) Deserialize(data map[string]any) (*Product, error) {
	if len(data) == 0 {
		return nil, &ValidationError{Detail: "no data provided"}
	}

	for _, key := range []string{"name", "description", "price", "available", "category"} {
		if _, ok := data[key]; !ok {
			return nil, &ValidationError{Detail: "missing field: " + key}
		}
	}

	name, ok := data["name"].(string)
	if !ok || name == "" {
		return nil, &ValidationError{Detail: "name must be a non-empty string"}
	}
	description, ok := data["description"].(string)
	if !ok || description == "" {
		return nil, &ValidationError{Detail: "description must be a non-empty string"}
	}
	available, ok := data["available"].(bool)
	if !ok {
		return nil, &ValidationError{Detail: "invalid type for available"}
	}

	price, err := ParsePrice(data["price"])
	if err != nil {
		return nil, err
	}

	categoryName, ok := data["category"].(string)
	if !ok {
		return nil, &ValidationError{Detail: fmt.Sprintf("invalid type for category: %T", data["category"])}
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return nil, &ValidationError{Detail: err.Error()}
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return p, nil
}
