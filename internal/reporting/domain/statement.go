package reporting

import "sort"

// ScopeAll selects every customer when building statements.
const ScopeAll = "all"

// NameLookup resolves a customer id to a display name. The boolean
// reports whether the directory knows the customer.
type NameLookup func(customerID string) (string, bool)

// CustomerStatement is the financial summary of one customer's orders
// over the filtered range. Totals cover exactly the included orders.
type CustomerStatement struct {
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	Orders        []Order `json:"orders"`
	TotalAmount   float64 `json:"total_amount"`
	TotalPaid     float64 `json:"total_paid"`
	PendingAmount float64 `json:"pending_amount"`
}

// StatementResult is the top-level outcome of a statement generation.
// TotalOrders counts filtered orders, not customers.
type StatementResult struct {
	Statements       []CustomerStatement `json:"statements"`
	GrandTotalAmount float64             `json:"grand_total_amount"`
	GrandTotalPaid   float64             `json:"grand_total_paid"`
	GrandPending     float64             `json:"grand_pending"`
	TotalOrders      int                 `json:"total_orders"`
}

// BuildCustomerStatements groups already-filtered orders into statements.
//
// Name resolution differs by scope on purpose: the all-customers branch
// trusts the denormalized name on the first order of each group, while
// the single-customer branch asks the directory first. Both fall back to
// "Unknown". The asymmetry mirrors long-standing behavior that downstream
// consumers rely on.
func BuildCustomerStatements(orders []Order, scope string, names NameLookup) []CustomerStatement {
	var statements []CustomerStatement
	if scope == ScopeAll || scope == "" {
		index := make(map[string]int, len(orders))
		for _, order := range orders {
			pos, ok := index[order.CustomerID]
			if !ok {
				pos = len(statements)
				index[order.CustomerID] = pos
				name := order.CustomerName
				if name == "" {
					name = UnknownCustomerName
				}
				statements = append(statements, CustomerStatement{CustomerID: order.CustomerID, CustomerName: name})
			}
			statements[pos].Orders = append(statements[pos].Orders, order)
		}
	} else {
		var scoped []Order
		for _, order := range orders {
			if order.CustomerID == scope {
				scoped = append(scoped, order)
			}
		}
		if len(scoped) > 0 {
			name := UnknownCustomerName
			if names != nil {
				if resolved, ok := names(scope); ok && resolved != "" {
					name = resolved
				}
			}
			statements = append(statements, CustomerStatement{CustomerID: scope, CustomerName: name, Orders: scoped})
		}
	}

	for i := range statements {
		st := &statements[i]
		sort.SliceStable(st.Orders, func(a, b int) bool {
			return st.Orders[a].Date.Before(st.Orders[b].Date)
		})
		for _, order := range st.Orders {
			st.TotalAmount += order.TotalAmount
			st.TotalPaid += order.AmountPaid
		}
		st.PendingAmount = st.TotalAmount - st.TotalPaid
	}

	c := newNameCollator()
	sort.SliceStable(statements, func(i, j int) bool {
		return c.CompareString(statements[i].CustomerName, statements[j].CustomerName) < 0
	})
	return statements
}

// BuildStatementResult assembles the statement list and grand totals from
// filtered orders. Grand totals sum over the statements rather than the
// raw orders so they can never drift from the per-customer figures.
func BuildStatementResult(orders []Order, scope string, names NameLookup) *StatementResult {
	statements := BuildCustomerStatements(orders, scope, names)
	result := &StatementResult{
		Statements:  statements,
		TotalOrders: len(orders),
	}
	for _, st := range statements {
		result.GrandTotalAmount += st.TotalAmount
		result.GrandTotalPaid += st.TotalPaid
	}
	result.GrandPending = result.GrandTotalAmount - result.GrandTotalPaid
	return result
}
