package application

import (
	"context"
	"errors"
	"time"

	directory "orderdesk/internal/directory/domain"
	"orderdesk/internal/observability/metrics"
	reporting "orderdesk/internal/reporting/domain"
)

// OrderSource reads immutable order records.
type OrderSource interface {
	ListByDateRange(ctx context.Context, startDay, endDay time.Time) ([]reporting.Order, error)
	ListByDay(ctx context.Context, day time.Time) ([]reporting.Order, error)
}

// CustomerDirectory resolves customer records by id. A nil customer with
// a nil error means the directory has no entry.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, id string) (*directory.Customer, error)
}

// StatementService generates customer statements over a date range.
type StatementService struct {
	orders    OrderSource
	customers CustomerDirectory
}

// NewStatementService constructs a service.
func NewStatementService(orders OrderSource, customers CustomerDirectory) (*StatementService, error) {
	if orders == nil {
		return nil, errors.New("statement service: nil order source")
	}
	return &StatementService{orders: orders, customers: customers}, nil
}

// Generate builds a statement result for the inclusive day range and
// customer scope. Scope "all" or empty covers every customer. An empty
// match is a valid result with zero totals, not an error.
func (s *StatementService) Generate(ctx context.Context, startDate, endDate, scope string) (*reporting.StatementResult, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveStatementGenerate(result, time.Since(start))
	}()

	startDay, err := reporting.ParseDay(startDate)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	endDay, err := reporting.ParseDay(endDate)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	if scope == "" {
		scope = reporting.ScopeAll
	}

	orders, err := s.orders.ListByDateRange(ctx, startDay, endDay)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}

	filtered := make([]reporting.Order, 0, len(orders))
	for _, order := range orders {
		day := reporting.DayStart(order.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		if scope != reporting.ScopeAll && order.CustomerID != scope {
			continue
		}
		if err := order.Validate(); err != nil {
			result = metrics.ResultError
			return nil, err
		}
		filtered = append(filtered, order)
	}

	return reporting.BuildStatementResult(filtered, scope, s.nameLookup(ctx)), nil
}

func (s *StatementService) nameLookup(ctx context.Context) reporting.NameLookup {
	if s.customers == nil {
		return nil
	}
	return func(id string) (string, bool) {
		customer, err := s.customers.GetCustomer(ctx, id)
		if err != nil || customer == nil {
			return "", false
		}
		return customer.Name, true
	}
}
