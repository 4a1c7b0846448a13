package reporting

import (
	"fmt"
	"math"
	"time"
)

// UnknownCustomerName labels orders whose customer cannot be resolved.
const UnknownCustomerName = "Unknown"

// Order is a transactional order record read from the order store. The
// engine never mutates orders; every derived value is rebuilt from the
// immutable order set on each request.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Date         time.Time   `json:"date"`
	TotalAmount  float64     `json:"total_amount"`
	AmountPaid   float64     `json:"amount_paid"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem is a single line of an order. Total is authoritative and is
// never recomputed from Price and Quantity during aggregation.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Validate reports a data-integrity error when a monetary or quantity
// field is NaN, infinite, or negative. Financial rollups must fail loudly
// rather than fold corrupt values into totals.
func (o Order) Validate() error {
	if badAmount(o.TotalAmount) {
		return fmt.Errorf("%w: order %s total_amount %v", ErrDataIntegrity, o.ID, o.TotalAmount)
	}
	if badAmount(o.AmountPaid) {
		return fmt.Errorf("%w: order %s amount_paid %v", ErrDataIntegrity, o.ID, o.AmountPaid)
	}
	for _, item := range o.Items {
		if badAmount(item.Quantity) {
			return fmt.Errorf("%w: order %s product %s quantity %v", ErrDataIntegrity, o.ID, item.ProductID, item.Quantity)
		}
		if badAmount(item.Price) {
			return fmt.Errorf("%w: order %s product %s price %v", ErrDataIntegrity, o.ID, item.ProductID, item.Price)
		}
		if badAmount(item.Total) {
			return fmt.Errorf("%w: order %s product %s total %v", ErrDataIntegrity, o.ID, item.ProductID, item.Total)
		}
	}
	return nil
}

func badAmount(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v < 0
}
