package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vkoval/product-store-service/internal/metrics"
	"github.com/vkoval/product-store-service/internal/model"
	"github.com/vkoval/product-store-service/internal/repository"
)

// ProductService coordinates product operations between the HTTP layer
// and the persistence gateway.
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct persists a new product. The gateway assigns the id.
func (ps *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := ps.repo.Create(ctx, product); err != nil {
		return err
	}

	metrics.ProductsCreated.Inc()
	return nil
}

// UpdateProduct persists changes to an already created product.
func (ps *ProductService) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := ps.repo.Update(ctx, product); err != nil {
		return err
	}

	metrics.ProductsUpdated.Inc()
	return nil
}

// DeleteProduct removes the product with the given id. It returns
// repository.ErrNotFound when no such product exists.
func (ps *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := ps.repo.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := ps.repo.Delete(ctx, product); err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()
	return nil
}

// FindProduct looks up a single product by id.
func (ps *ProductService) FindProduct(ctx context.Context, id int64) (*model.Product, error) {
	return ps.repo.Find(ctx, id)
}

func (ps *ProductService) FindByName(ctx context.Context, name string) ([]*model.Product, error) {
	return ps.repo.FindByName(ctx, name)
}

func (ps *ProductService) FindByPrice(ctx context.Context, price decimal.Decimal) ([]*model.Product, error) {
	return ps.repo.FindByPrice(ctx, price)
}

func (ps *ProductService) FindByAvailability(ctx context.Context, available bool) ([]*model.Product, error) {
	return ps.repo.FindByAvailability(ctx, available)
}

func (ps *ProductService) FindByCategory(ctx context.Context, category model.Category) ([]*model.Product, error) {
	return ps.repo.FindByCategory(ctx, category)
}

func (ps *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return ps.repo.All(ctx)
}
