package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	reporting "orderdesk/internal/reporting/domain"
)

// OrderRepository reads order records with their line items. Orders and
// items are owned by an external system; this repository never writes.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository constructs a repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByDateRange returns orders whose date falls within the inclusive
// day range, items in stored position order.
func (r *OrderRepository) ListByDateRange(ctx context.Context, startDay, endDay time.Time) ([]reporting.Order, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("order repo: nil db")
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT o.id, o.customer_id, o.customer_name, o.order_date, o.total_amount, o.amount_paid,
	i.product_id, i.product_name, i.quantity, i.unit, i.price, i.total
FROM orders o
LEFT JOIN order_items i ON i.order_id = o.id
WHERE o.order_date >= $1 AND o.order_date < $2
ORDER BY o.order_date, o.id, i.position`, startDay, endDay.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []reporting.Order
	index := make(map[string]int)
	for rows.Next() {
		var (
			order        reporting.Order
			customerName sql.NullString
			amountPaid   sql.NullFloat64
			productID    sql.NullString
			productName  sql.NullString
			quantity     sql.NullFloat64
			unit         sql.NullString
			price        sql.NullFloat64
			total        sql.NullFloat64
		)
		if err := rows.Scan(
			&order.ID, &order.CustomerID, &customerName, &order.Date, &order.TotalAmount, &amountPaid,
			&productID, &productName, &quantity, &unit, &price, &total,
		); err != nil {
			return nil, err
		}
		order.CustomerName = customerName.String
		order.AmountPaid = amountPaid.Float64

		pos, ok := index[order.ID]
		if !ok {
			pos = len(orders)
			index[order.ID] = pos
			orders = append(orders, order)
		}
		if productID.Valid {
			orders[pos].Items = append(orders[pos].Items, reporting.OrderItem{
				ProductID:   productID.String,
				ProductName: productName.String,
				Quantity:    quantity.Float64,
				Unit:        unit.String,
				Price:       price.Float64,
				Total:       total.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByDay returns orders dated exactly the given day.
func (r *OrderRepository) ListByDay(ctx context.Context, day time.Time) ([]reporting.Order, error) {
	return r.ListByDateRange(ctx, day, day)
}
