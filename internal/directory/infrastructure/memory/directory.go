package memory

import (
	"context"
	"sync"

	directory "orderdesk/internal/directory/domain"
)

// Directory is an in-memory customer directory and product catalog.
type Directory struct {
	mu        sync.RWMutex
	customers map[string]directory.Customer
	products  map[string]directory.Product
}

// NewDirectory constructs an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		customers: make(map[string]directory.Customer),
		products:  make(map[string]directory.Product),
	}
}

// PutCustomer stores a customer entry.
func (d *Directory) PutCustomer(customer directory.Customer) {
	d.mu.Lock()
	d.customers[customer.ID] = customer
	d.mu.Unlock()
}

// PutProduct stores a product entry.
func (d *Directory) PutProduct(product directory.Product) {
	d.mu.Lock()
	d.products[product.ID] = product
	d.mu.Unlock()
}

// GetCustomer returns nil when the customer does not exist.
func (d *Directory) GetCustomer(ctx context.Context, id string) (*directory.Customer, error) {
	_ = ctx
	d.mu.RLock()
	customer, ok := d.customers[id]
	d.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

// GetProduct returns nil when the product does not exist.
func (d *Directory) GetProduct(ctx context.Context, id string) (*directory.Product, error) {
	_ = ctx
	d.mu.RLock()
	product, ok := d.products[id]
	d.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &product, nil
}
