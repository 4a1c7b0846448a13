package reporting

import (
	"testing"
)

func TestBuildCustomerStatementsScopeAll(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c2", CustomerName: "Zoe", Date: day("2024-01-02"), TotalAmount: 20, AmountPaid: 5},
		{ID: "o2", CustomerID: "c1", CustomerName: "Amir", Date: day("2024-01-01"), TotalAmount: 10},
		{ID: "o3", CustomerID: "c2", CustomerName: "Zoe", Date: day("2024-01-01"), TotalAmount: 30, AmountPaid: 30},
		{ID: "o4", CustomerID: "c3", CustomerName: "mona", Date: day("2024-01-03"), TotalAmount: 15},
	}
	statements := BuildCustomerStatements(orders, ScopeAll, nil)
	if len(statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(statements))
	}
	want := []string{"Amir", "mona", "Zoe"}
	for i, name := range want {
		if statements[i].CustomerName != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, statements[i].CustomerName)
		}
	}

	zoe := statements[2]
	if zoe.TotalAmount != 50 || zoe.TotalPaid != 35 || zoe.PendingAmount != 15 {
		t.Fatalf("unexpected zoe totals: %+v", zoe)
	}
	if len(zoe.Orders) != 2 || zoe.Orders[0].ID != "o3" || zoe.Orders[1].ID != "o1" {
		t.Fatalf("expected zoe orders ascending by date, got %+v", zoe.Orders)
	}
}

func TestBuildCustomerStatementsScopeAllUnknownName(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", Date: day("2024-01-01"), TotalAmount: 10},
	}
	names := func(string) (string, bool) { return "Directory Name", true }
	statements := BuildCustomerStatements(orders, ScopeAll, names)
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	// The all branch never consults the directory.
	if statements[0].CustomerName != UnknownCustomerName {
		t.Fatalf("expected %q, got %q", UnknownCustomerName, statements[0].CustomerName)
	}
}

func TestBuildCustomerStatementsSingleScopeUsesDirectory(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", CustomerName: "Denormalized", Date: day("2024-01-01"), TotalAmount: 10},
		{ID: "o2", CustomerID: "c2", CustomerName: "Other", Date: day("2024-01-01"), TotalAmount: 99},
	}
	names := func(id string) (string, bool) {
		if id == "c1" {
			return "Directory Name", true
		}
		return "", false
	}
	statements := BuildCustomerStatements(orders, "c1", names)
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	if statements[0].CustomerName != "Directory Name" {
		t.Fatalf("expected directory name, got %q", statements[0].CustomerName)
	}
	if statements[0].TotalAmount != 10 {
		t.Fatalf("expected only scoped orders summed, got %v", statements[0].TotalAmount)
	}
}

func TestBuildCustomerStatementsSingleScopeUnknownFallback(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", CustomerName: "Denormalized", Date: day("2024-01-01"), TotalAmount: 10},
	}
	names := func(string) (string, bool) { return "", false }
	statements := BuildCustomerStatements(orders, "c1", names)
	if statements[0].CustomerName != UnknownCustomerName {
		t.Fatalf("expected %q, got %q", UnknownCustomerName, statements[0].CustomerName)
	}
}

func TestBuildCustomerStatementsSingleScopeNoMatch(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", Date: day("2024-01-01"), TotalAmount: 10},
	}
	statements := BuildCustomerStatements(orders, "c9", nil)
	if len(statements) != 0 {
		t.Fatalf("expected no statements, got %d", len(statements))
	}
}

func TestBuildStatementResultGrandTotals(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", CustomerName: "Amir", Date: day("2024-01-01"), TotalAmount: 10, AmountPaid: 4},
		{ID: "o2", CustomerID: "c2", CustomerName: "Zoe", Date: day("2024-01-01"), TotalAmount: 20, AmountPaid: 20},
		{ID: "o3", CustomerID: "c3", CustomerName: "Mona", Date: day("2024-01-02"), TotalAmount: 30},
	}
	result := BuildStatementResult(orders, ScopeAll, nil)
	if result.TotalOrders != 3 {
		t.Fatalf("expected 3 orders, got %d", result.TotalOrders)
	}
	var wantTotal, wantPaid float64
	for _, st := range result.Statements {
		wantTotal += st.TotalAmount
		wantPaid += st.TotalPaid
	}
	if result.GrandTotalAmount != wantTotal || result.GrandTotalPaid != wantPaid {
		t.Fatalf("grand totals drift from statements: %v/%v %v/%v",
			result.GrandTotalAmount, wantTotal, result.GrandTotalPaid, wantPaid)
	}
	if result.GrandPending != result.GrandTotalAmount-result.GrandTotalPaid {
		t.Fatalf("pending identity broken: %v", result.GrandPending)
	}
}

func TestBuildStatementResultEmpty(t *testing.T) {
	result := BuildStatementResult(nil, ScopeAll, nil)
	if len(result.Statements) != 0 || result.TotalOrders != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if result.GrandTotalAmount != 0 || result.GrandTotalPaid != 0 || result.GrandPending != 0 {
		t.Fatalf("expected zero totals, got %+v", result)
	}
}
