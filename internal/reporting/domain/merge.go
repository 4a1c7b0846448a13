package reporting

import "sort"

// mergeKey identifies interchangeable line items: same product at the
// same unit price.
type mergeKey struct {
	productID string
	price     float64
}

// MergeItems combines line items that share the same product and unit
// price. Quantities and totals sum; every other field comes from the
// first occurrence. Output is ordered by product name under the engine
// collation. Merging an already-merged sequence yields the same sequence.
func MergeItems(items []OrderItem) []OrderItem {
	if len(items) == 0 {
		return nil
	}
	index := make(map[mergeKey]int, len(items))
	merged := make([]OrderItem, 0, len(items))
	for _, item := range items {
		key := mergeKey{productID: item.ProductID, price: item.Price}
		if pos, ok := index[key]; ok {
			merged[pos].Quantity += item.Quantity
			merged[pos].Total += item.Total
			continue
		}
		index[key] = len(merged)
		merged = append(merged, item)
	}
	c := newNameCollator()
	sort.SliceStable(merged, func(i, j int) bool {
		return c.CompareString(merged[i].ProductName, merged[j].ProductName) < 0
	})
	return merged
}
