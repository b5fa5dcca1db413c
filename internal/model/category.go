package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Category classifies a product into one of a fixed set of variants.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

// ErrInvalidCategory is returned when a category name does not resolve
// to any known variant. It is distinct from an empty query result.
var ErrInvalidCategory = errors.New("invalid category")

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// String returns the symbolic name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// ParseCategory resolves a symbolic name to a Category. Unrecognized
// names are rejected, never coerced to UNKNOWN.
func ParseCategory(name string) (Category, error) {
	if c, ok := categoriesByName[name]; ok {
		return c, nil
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrInvalidCategory, name)
}

// Value implements driver.Valuer, storing the symbolic name.
func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner for text columns.
func (c *Category) Scan(src any) error {
	var name string
	switch v := src.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Category", src)
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
