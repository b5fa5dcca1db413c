package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vkoval/product-store-service/internal/model"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the persistence gateway for products. The
// canonical representation lives in storage; in-memory products are
// transient until explicitly persisted through one of these calls.
type ProductRepository interface {
	// Create inserts a new row and assigns the storage-generated id
	// to product.ID.
	Create(ctx context.Context, product *model.Product) error

	// Update persists in-place changes to the row matched by product.ID.
	// It fails with a validation error when the id is unset and with
	// ErrNotFound when no such row exists.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes the row matched by product.ID, or ErrNotFound.
	Delete(ctx context.Context, product *model.Product) error

	// Find returns the product with the given id, or ErrNotFound.
	Find(ctx context.Context, id int64) (*model.Product, error)

	FindByName(ctx context.Context, name string) ([]*model.Product, error)
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]*model.Product, error)
	FindByAvailability(ctx context.Context, available bool) ([]*model.Product, error)
	FindByCategory(ctx context.Context, category model.Category) ([]*model.Product, error)
	All(ctx context.Context) ([]*model.Product, error)
}
