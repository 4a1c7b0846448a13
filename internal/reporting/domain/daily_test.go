package reporting

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestBuildDailySummariesMergesWithinDay(t *testing.T) {
	orders := []Order{
		{
			ID: "o1", CustomerID: "c1", Date: day("2024-01-01"), TotalAmount: 30, AmountPaid: 10,
			Items: []OrderItem{
				{ProductID: "p1", ProductName: "Flour", Quantity: 2, Price: 10, Total: 20},
				{ProductID: "p1", ProductName: "Flour", Quantity: 1, Price: 10, Total: 10},
			},
		},
		{
			ID: "o2", CustomerID: "c1", Date: day("2024-01-01"), TotalAmount: 5,
			Items: []OrderItem{
				{ProductID: "p2", ProductName: "Sugar", Quantity: 1, Price: 5, Total: 5},
			},
		},
	}
	summaries := BuildDailySummaries(orders)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.TotalAmount != 35 {
		t.Fatalf("expected total 35, got %v", s.TotalAmount)
	}
	if s.TotalPaid != 10 {
		t.Fatalf("expected paid 10, got %v", s.TotalPaid)
	}
	if s.Balance != 25 {
		t.Fatalf("expected balance 25, got %v", s.Balance)
	}
	if len(s.Items) != 2 {
		t.Fatalf("expected 2 merged items, got %d", len(s.Items))
	}
	if s.Items[0].ProductName != "Flour" || s.Items[0].Quantity != 3 || s.Items[0].Total != 30 {
		t.Fatalf("expected merged flour qty 3 total 30, got %+v", s.Items[0])
	}
	if s.Items[1].ProductName != "Sugar" || s.Items[1].Quantity != 1 || s.Items[1].Total != 5 {
		t.Fatalf("expected sugar qty 1 total 5, got %+v", s.Items[1])
	}
}

func TestBuildDailySummariesDescendingDates(t *testing.T) {
	orders := []Order{
		{ID: "o1", Date: day("2024-01-01"), TotalAmount: 1},
		{ID: "o2", Date: day("2024-01-03"), TotalAmount: 2},
		{ID: "o3", Date: day("2024-01-02"), TotalAmount: 3},
	}
	summaries := BuildDailySummaries(orders)
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	want := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	for i, date := range want {
		if got := summaries[i].Date.Format("2006-01-02"); got != date {
			t.Fatalf("expected %s at position %d, got %s", date, i, got)
		}
	}
}

func TestBuildDailySummariesConservesSums(t *testing.T) {
	orders := []Order{
		{ID: "o1", Date: day("2024-01-01"), TotalAmount: 12.5, AmountPaid: 2.5},
		{ID: "o2", Date: day("2024-01-01"), TotalAmount: 7.5, AmountPaid: 7.5},
		{ID: "o3", Date: day("2024-01-02"), TotalAmount: 30, AmountPaid: 10},
	}
	summaries := BuildDailySummaries(orders)

	var wantTotal, wantPaid float64
	for _, order := range orders {
		wantTotal += order.TotalAmount
		wantPaid += order.AmountPaid
	}
	var gotTotal, gotPaid float64
	for _, s := range summaries {
		gotTotal += s.TotalAmount
		gotPaid += s.TotalPaid
		if s.Balance != s.TotalAmount-s.TotalPaid {
			t.Fatalf("balance identity broken for %s", s.Date.Format("2006-01-02"))
		}
	}
	if gotTotal != wantTotal || gotPaid != wantPaid {
		t.Fatalf("grouping changed sums: total %v/%v paid %v/%v", gotTotal, wantTotal, gotPaid, wantPaid)
	}
}

func TestBuildDailySummariesMissingPaidIsZero(t *testing.T) {
	orders := []Order{{ID: "o1", Date: day("2024-01-01"), TotalAmount: 10}}
	summaries := BuildDailySummaries(orders)
	if summaries[0].TotalPaid != 0 || summaries[0].Balance != 10 {
		t.Fatalf("expected zero paid and full balance, got paid %v balance %v", summaries[0].TotalPaid, summaries[0].Balance)
	}
}

func TestBuildDailySummariesEmptyInput(t *testing.T) {
	if summaries := BuildDailySummaries(nil); len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(summaries))
	}
}
