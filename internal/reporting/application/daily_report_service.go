package application

import (
	"context"
	"errors"
	"time"

	directory "orderdesk/internal/directory/domain"
	"orderdesk/internal/observability/metrics"
	reporting "orderdesk/internal/reporting/domain"
)

// ProductCatalog resolves product records by id. A nil product with a nil
// error means the catalog has no entry.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (*directory.Product, error)
}

// DailyReportService builds the all-customer single-day report.
type DailyReportService struct {
	orders  OrderSource
	catalog ProductCatalog
	display DisplayConfig
}

// NewDailyReportService constructs a service.
func NewDailyReportService(orders OrderSource, catalog ProductCatalog, display DisplayConfig) (*DailyReportService, error) {
	if orders == nil {
		return nil, errors.New("daily report service: nil order source")
	}
	return &DailyReportService{orders: orders, catalog: catalog, display: display}, nil
}

// Generate builds the report for one calendar day.
func (s *DailyReportService) Generate(ctx context.Context, reportDate string) (*reporting.DailyReport, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveDailyReport(result, time.Since(start))
	}()

	day, err := reporting.ParseDay(reportDate)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	orders, err := s.orders.ListByDay(ctx, day)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}

	matched := make([]reporting.Order, 0, len(orders))
	for _, order := range orders {
		if !reporting.DayStart(order.Date).Equal(day) {
			continue
		}
		if err := order.Validate(); err != nil {
			result = metrics.ResultError
			return nil, err
		}
		matched = append(matched, order)
	}

	return reporting.BuildDailyReport(day, matched, s.unitLookup(ctx)), nil
}

func (s *DailyReportService) unitLookup(ctx context.Context) reporting.UnitLookup {
	return func(productID string) string {
		base := s.display.DefaultUnit
		if s.catalog != nil {
			product, err := s.catalog.GetProduct(ctx, productID)
			if err == nil && product != nil && product.BaseUnit != "" {
				base = product.BaseUnit
			}
		}
		return s.display.DisplayUnit(base)
	}
}
