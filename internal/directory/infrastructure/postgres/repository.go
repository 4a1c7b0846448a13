package postgres

import (
	"context"
	"database/sql"
	"errors"

	directory "orderdesk/internal/directory/domain"
)

// CustomerRepository reads the customer directory.
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository constructs a repository.
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetCustomer returns nil when the customer does not exist.
func (r *CustomerRepository) GetCustomer(ctx context.Context, id string) (*directory.Customer, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("customer repo: nil db")
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id, name
FROM customers
WHERE id = $1
LIMIT 1`, id)
	var customer directory.Customer
	if err := row.Scan(&customer.ID, &customer.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// ProductRepository reads the product catalog.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository constructs a repository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetProduct returns nil when the product does not exist.
func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*directory.Product, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("product repo: nil db")
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, base_unit
FROM products
WHERE id = $1
LIMIT 1`, id)
	var product directory.Product
	var baseUnit sql.NullString
	if err := row.Scan(&product.ID, &product.Name, &baseUnit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	product.BaseUnit = baseUnit.String
	return &product, nil
}
