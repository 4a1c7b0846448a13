package reporting

import (
	"reflect"
	"testing"
)

func TestMergeItemsCombinesSameProductAndPrice(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", ProductName: "Flour", Quantity: 2, Unit: "kg", Price: 10, Total: 20},
		{ProductID: "p2", ProductName: "Sugar", Quantity: 1, Unit: "kg", Price: 5, Total: 5},
		{ProductID: "p1", ProductName: "Flour", Quantity: 1, Unit: "kg", Price: 10, Total: 10},
	}
	merged := MergeItems(items)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged items, got %d", len(merged))
	}
	if merged[0].ProductName != "Flour" || merged[1].ProductName != "Sugar" {
		t.Fatalf("expected name-sorted output, got %s, %s", merged[0].ProductName, merged[1].ProductName)
	}
	if merged[0].Quantity != 3 || merged[0].Total != 30 {
		t.Fatalf("expected flour qty 3 total 30, got qty %v total %v", merged[0].Quantity, merged[0].Total)
	}
	if merged[1].Quantity != 1 || merged[1].Total != 5 {
		t.Fatalf("expected sugar qty 1 total 5, got qty %v total %v", merged[1].Quantity, merged[1].Total)
	}
}

func TestMergeItemsKeepsDifferentPricesApart(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", ProductName: "Flour", Quantity: 2, Price: 10, Total: 20},
		{ProductID: "p1", ProductName: "Flour", Quantity: 1, Price: 12, Total: 12},
	}
	merged := MergeItems(items)
	if len(merged) != 2 {
		t.Fatalf("expected price-distinct lines to stay apart, got %d", len(merged))
	}
}

func TestMergeItemsFirstOccurrenceWins(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", ProductName: "Flour", Quantity: 1, Unit: "kg", Price: 10, Total: 10},
		{ProductID: "p1", ProductName: "Flour Premium", Quantity: 1, Unit: "bag", Price: 10, Total: 10},
	}
	merged := MergeItems(items)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged item, got %d", len(merged))
	}
	if merged[0].ProductName != "Flour" || merged[0].Unit != "kg" {
		t.Fatalf("expected first-occurrence fields, got %s / %s", merged[0].ProductName, merged[0].Unit)
	}
}

func TestMergeItemsIdempotent(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", ProductName: "Flour", Quantity: 2, Price: 10, Total: 20},
		{ProductID: "p1", ProductName: "Flour", Quantity: 1, Price: 10, Total: 10},
		{ProductID: "p2", ProductName: "Sugar", Quantity: 1, Price: 5, Total: 5},
	}
	once := MergeItems(items)
	twice := MergeItems(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected merge to be idempotent, got %v then %v", once, twice)
	}
}

func TestMergeItemsEmptyInput(t *testing.T) {
	if merged := MergeItems(nil); len(merged) != 0 {
		t.Fatalf("expected empty output, got %d items", len(merged))
	}
}

func TestMergeItemsCaseInsensitiveOrder(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", ProductName: "apple", Quantity: 1, Price: 1, Total: 1},
		{ProductID: "p2", ProductName: "Banana", Quantity: 1, Price: 1, Total: 1},
		{ProductID: "p3", ProductName: "Apricot", Quantity: 1, Price: 1, Total: 1},
	}
	merged := MergeItems(items)
	want := []string{"apple", "Apricot", "Banana"}
	for i, name := range want {
		if merged[i].ProductName != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, merged[i].ProductName)
		}
	}
}
