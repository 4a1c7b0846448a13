package memory

import (
	"context"
	"testing"
	"time"

	reporting "orderdesk/internal/reporting/domain"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestListByDateRange(t *testing.T) {
	repo := NewOrderRepository(
		reporting.Order{ID: "o1", Date: day("2024-01-01")},
		reporting.Order{ID: "o2", Date: day("2024-01-02").Add(15 * time.Hour)},
		reporting.Order{ID: "o3", Date: day("2024-01-05")},
	)
	orders, err := repo.ListByDateRange(context.Background(), day("2024-01-01"), day("2024-01-02"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "o1" || orders[1].ID != "o2" {
		t.Fatalf("unexpected range result: %+v", orders)
	}
}

func TestListByDay(t *testing.T) {
	repo := NewOrderRepository(
		reporting.Order{ID: "o1", Date: day("2024-01-01")},
		reporting.Order{ID: "o2", Date: day("2024-01-01").Add(23 * time.Hour)},
		reporting.Order{ID: "o3", Date: day("2024-01-02")},
	)
	orders, err := repo.ListByDay(context.Background(), day("2024-01-01"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}

func TestListByDateRangeEmpty(t *testing.T) {
	repo := NewOrderRepository()
	orders, err := repo.ListByDateRange(context.Background(), day("2024-01-01"), day("2024-12-31"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}
