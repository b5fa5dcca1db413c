package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/vkoval/product-store-service/internal/model"
	"github.com/vkoval/product-store-service/internal/repository"
)

const productColumns = "id, name, description, price, available, category"

// ProductRepository implements the persistence gateway on PostgreSQL.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product row and assigns the generated id.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	slog.Info("creating product", slog.String("name", product.Name))

	query := `INSERT INTO products (name, description, price, available, category)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, product.Name, product.Description, product.Price, product.Available, product.Category).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update persists changes to the row matched by the product id. The id
// itself is never reassigned.
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	slog.Info("updating product", slog.Int64("id", product.ID))

	if product.ID == 0 {
		return &model.ValidationError{Detail: "update called with empty ID"}
	}

	query := `UPDATE products SET name = $1, description = $2, price = $3, available = $4, category = $5 WHERE id = $6`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare update statement: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, product.Name, product.Description, product.Price, product.Available, product.Category, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the row matched by the product id.
func (r *ProductRepository) Delete(ctx context.Context, product *model.Product) error {
	slog.Info("deleting product", slog.Int64("id", product.ID))

	query := `DELETE FROM products WHERE id = $1`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Find retrieves a single product by id.
func (r *ProductRepository) Find(ctx context.Context, id int64) (*model.Product, error) {
	slog.Debug("looking up product", slog.Int64("id", id))

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var result model.Product
	err = stmt.QueryRowContext(ctx, id).Scan(
		&result.ID, &result.Name, &result.Description, &result.Price, &result.Available, &result.Category,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &result, nil
}

// FindByName retrieves all products with an exact name match.
func (r *ProductRepository) FindByName(ctx context.Context, name string) ([]*model.Product, error) {
	slog.Debug("querying products by name", slog.String("name", name))
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

// FindByPrice retrieves all products with an exact price match.
func (r *ProductRepository) FindByPrice(ctx context.Context, price decimal.Decimal) ([]*model.Product, error) {
	slog.Debug("querying products by price", slog.String("price", price.String()))
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE price = $1`, price)
}

// FindByAvailability retrieves all products matching the availability flag.
func (r *ProductRepository) FindByAvailability(ctx context.Context, available bool) ([]*model.Product, error) {
	slog.Debug("querying products by availability", slog.Bool("available", available))
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE available = $1`, available)
}

// FindByCategory retrieves all products in the given category. Name
// resolution happens before this call; an unknown name never reaches
// the gateway.
func (r *ProductRepository) FindByCategory(ctx context.Context, category model.Category) ([]*model.Product, error) {
	slog.Debug("querying products by category", slog.String("category", category.String()))
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE category = $1`, category)
}

// All retrieves every persisted product.
func (r *ProductRepository) All(ctx context.Context) ([]*model.Product, error) {
	slog.Debug("querying all products")
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products`)
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*model.Product, error) {
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		var product model.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Available, &product.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}
