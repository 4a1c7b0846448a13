package reporting

import (
	"sort"
	"time"
)

// DailySummary aggregates one calendar day of orders. Balance is always
// recomputed from the two sums, never carried over from a previous merge.
type DailySummary struct {
	Date        time.Time   `json:"date"`
	TotalAmount float64     `json:"total_amount"`
	TotalPaid   float64     `json:"total_paid"`
	Balance     float64     `json:"balance"`
	Items       []OrderItem `json:"items"`
}

// BuildDailySummaries groups orders by UTC calendar day. Each day sums
// order totals and paid amounts left to right, concatenates the items of
// all its orders, and merges them. Summaries come back most recent day
// first; everywhere else in the engine dates ascend, this listing is the
// deliberate exception.
func BuildDailySummaries(orders []Order) []DailySummary {
	if len(orders) == 0 {
		return nil
	}
	index := make(map[string]int, len(orders))
	summaries := make([]DailySummary, 0, len(orders))
	itemsByDay := make([][]OrderItem, 0, len(orders))
	for _, order := range orders {
		key := DayKey(order.Date)
		pos, ok := index[key]
		if !ok {
			pos = len(summaries)
			index[key] = pos
			summaries = append(summaries, DailySummary{Date: DayStart(order.Date)})
			itemsByDay = append(itemsByDay, nil)
		}
		summaries[pos].TotalAmount += order.TotalAmount
		summaries[pos].TotalPaid += order.AmountPaid
		itemsByDay[pos] = append(itemsByDay[pos], order.Items...)
	}
	for i := range summaries {
		summaries[i].Items = MergeItems(itemsByDay[i])
		summaries[i].Balance = summaries[i].TotalAmount - summaries[i].TotalPaid
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[j].Date.Before(summaries[i].Date)
	})
	return summaries
}
