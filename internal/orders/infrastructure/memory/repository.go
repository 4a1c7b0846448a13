package memory

import (
	"context"
	"sync"
	"time"

	reporting "orderdesk/internal/reporting/domain"
)

// OrderRepository is an in-memory order source for tests and demo runs.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []reporting.Order
}

// NewOrderRepository constructs a repository seeded with orders.
func NewOrderRepository(orders ...reporting.Order) *OrderRepository {
	repo := &OrderRepository{}
	repo.Add(orders...)
	return repo
}

// Add appends orders to the store.
func (r *OrderRepository) Add(orders ...reporting.Order) {
	r.mu.Lock()
	r.orders = append(r.orders, orders...)
	r.mu.Unlock()
}

// ListByDateRange returns orders whose day falls within the inclusive range.
func (r *OrderRepository) ListByDateRange(ctx context.Context, startDay, endDay time.Time) ([]reporting.Order, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []reporting.Order
	for _, order := range r.orders {
		day := reporting.DayStart(order.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		matched = append(matched, order)
	}
	return matched, nil
}

// ListByDay returns orders dated exactly the given day.
func (r *OrderRepository) ListByDay(ctx context.Context, day time.Time) ([]reporting.Order, error) {
	return r.ListByDateRange(ctx, day, day)
}
