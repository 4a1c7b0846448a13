package reporting

import (
	"sort"
	"time"
)

// RowKind tags a detail row so the export layer can style subtotal and
// grand-total rows without re-deriving them.
type RowKind string

const (
	RowKindItem       RowKind = "item"
	RowKindSubtotal   RowKind = "subtotal"
	RowKindSpacer     RowKind = "spacer"
	RowKindGrandTotal RowKind = "grand-total"
)

// FinancialSummary is the single-day money rollup across all customers.
type FinancialSummary struct {
	Collection float64 `json:"collection"`
	Total      float64 `json:"total"`
	Pending    float64 `json:"pending"`
	OrderCount int     `json:"order_count"`
}

// CustomerTotal is one customer's share of a day.
type CustomerTotal struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
	TotalPaid    float64 `json:"total_paid"`
	Pending      float64 `json:"pending"`
}

// ProductTotal sums quantities per product name across a day. Unit is the
// display label, already remapped by the caller's lookup.
type ProductTotal struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// DetailRow is one line of the detailed daily listing.
type DetailRow struct {
	Kind         RowKind `json:"kind"`
	CustomerName string  `json:"customer_name,omitempty"`
	ProductName  string  `json:"product_name,omitempty"`
	Quantity     float64 `json:"quantity,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Amount       float64 `json:"amount"`
}

// DailyReport is the all-customer rollup of a single day.
type DailyReport struct {
	Date      time.Time        `json:"date"`
	Financial FinancialSummary `json:"financial"`
	Customers []CustomerTotal  `json:"customers"`
	Products  []ProductTotal   `json:"products"`
	Details   []DetailRow      `json:"details"`
}

// UnitLookup resolves a product id to its display unit label.
type UnitLookup func(productID string) string

// BuildDailyReport rolls up a single day of orders across financial,
// customer, product, and detail dimensions. Orders must already be
// restricted to the report date.
func BuildDailyReport(date time.Time, orders []Order, unitFor UnitLookup) *DailyReport {
	report := &DailyReport{Date: DayStart(date)}
	c := newNameCollator()

	report.Financial.OrderCount = len(orders)
	for _, order := range orders {
		report.Financial.Collection += order.AmountPaid
		report.Financial.Total += order.TotalAmount
	}
	report.Financial.Pending = report.Financial.Total - report.Financial.Collection

	customerIdx := make(map[string]int, len(orders))
	for _, order := range orders {
		pos, ok := customerIdx[order.CustomerID]
		if !ok {
			pos = len(report.Customers)
			customerIdx[order.CustomerID] = pos
			name := order.CustomerName
			if name == "" {
				name = UnknownCustomerName
			}
			report.Customers = append(report.Customers, CustomerTotal{CustomerID: order.CustomerID, CustomerName: name})
		}
		report.Customers[pos].TotalAmount += order.TotalAmount
		report.Customers[pos].TotalPaid += order.AmountPaid
	}
	for i := range report.Customers {
		report.Customers[i].Pending = report.Customers[i].TotalAmount - report.Customers[i].TotalPaid
	}
	sort.SliceStable(report.Customers, func(i, j int) bool {
		return c.CompareString(report.Customers[i].CustomerName, report.Customers[j].CustomerName) < 0
	})

	productIdx := make(map[string]int)
	for _, order := range orders {
		for _, item := range order.Items {
			pos, ok := productIdx[item.ProductName]
			if !ok {
				pos = len(report.Products)
				productIdx[item.ProductName] = pos
				report.Products = append(report.Products, ProductTotal{
					ProductName: item.ProductName,
					Unit:        resolveUnit(unitFor, item.ProductID),
				})
			}
			report.Products[pos].Quantity += item.Quantity
		}
	}
	sort.SliceStable(report.Products, func(i, j int) bool {
		return c.CompareString(report.Products[i].ProductName, report.Products[j].ProductName) < 0
	})

	// Detail listing follows the sorted customer order: every item row,
	// a subtotal row, a spacer, then one grand-total row at the end.
	ordersByCustomer := make(map[string][]Order, len(customerIdx))
	for _, order := range orders {
		ordersByCustomer[order.CustomerID] = append(ordersByCustomer[order.CustomerID], order)
	}
	var grand float64
	for _, ct := range report.Customers {
		var subtotal float64
		for _, order := range ordersByCustomer[ct.CustomerID] {
			for _, item := range order.Items {
				report.Details = append(report.Details, DetailRow{
					Kind:         RowKindItem,
					CustomerName: ct.CustomerName,
					ProductName:  item.ProductName,
					Quantity:     item.Quantity,
					Unit:         resolveUnit(unitFor, item.ProductID),
					Amount:       item.Total,
				})
				subtotal += item.Total
			}
		}
		report.Details = append(report.Details, DetailRow{Kind: RowKindSubtotal, CustomerName: ct.CustomerName, Amount: subtotal})
		report.Details = append(report.Details, DetailRow{Kind: RowKindSpacer})
		grand += subtotal
	}
	if len(report.Customers) > 0 {
		report.Details = append(report.Details, DetailRow{Kind: RowKindGrandTotal, Amount: grand})
	}
	return report
}

func resolveUnit(unitFor UnitLookup, productID string) string {
	if unitFor == nil {
		return ""
	}
	return unitFor(productID)
}
