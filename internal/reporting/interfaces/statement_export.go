package interfaces

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	reporting "orderdesk/internal/reporting/domain"
)

const dateFormat = "2006-01-02"

// FormatAmount renders a currency value with the symbol prefix and two
// fraction digits, the shape formatted exports expect.
func FormatAmount(symbol string, value float64) string {
	return fmt.Sprintf("%s%.2f", symbol, value)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// itemLine renders one merged item as "name (xQty @ price)".
func itemLine(symbol string, item reporting.OrderItem) string {
	return fmt.Sprintf("%s (x%s @ %s)", item.ProductName, formatQuantity(item.Quantity), FormatAmount(symbol, item.Price))
}

// BuildStatementPDF renders a PDF for a statement result: a grand-total
// header, then one per-day table per customer. Each table row carries
// date, item text, total, paid, and balance; multi-item days repeat the
// item column on follow-up lines.
func BuildStatementPDF(result *reporting.StatementResult, symbol string) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("statement export: nil result")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Customer Statements")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Customers: %d", len(result.Statements)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Orders: %d", result.TotalOrders))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Grand Total: %s", FormatAmount(symbol, result.GrandTotalAmount)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Grand Paid: %s", FormatAmount(symbol, result.GrandTotalPaid)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Grand Pending: %s", FormatAmount(symbol, result.GrandPending)))
	pdf.Ln(8)

	for _, st := range result.Statements {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, st.CustomerName)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(0, 5, fmt.Sprintf("Total: %s  Paid: %s  Pending: %s",
			FormatAmount(symbol, st.TotalAmount),
			FormatAmount(symbol, st.TotalPaid),
			FormatAmount(symbol, st.PendingAmount)))
		pdf.Ln(6)

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(24, 6, "Date", "1", 0, "C", false, 0, "")
		pdf.CellFormat(76, 6, "Items", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, "Total", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, "Paid", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, "Balance", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)

		for _, day := range reporting.BuildDailySummaries(st.Orders) {
			lines := make([]string, 0, len(day.Items))
			for _, item := range day.Items {
				lines = append(lines, itemLine(symbol, item))
			}
			if len(lines) == 0 {
				lines = append(lines, "")
			}
			for i, line := range lines {
				date, total, paid, balance := "", "", "", ""
				if i == 0 {
					date = day.Date.Format(dateFormat)
					total = FormatAmount(symbol, day.TotalAmount)
					paid = FormatAmount(symbol, day.TotalPaid)
					balance = FormatAmount(symbol, day.Balance)
				}
				pdf.CellFormat(24, 6, date, "1", 0, "C", false, 0, "")
				pdf.CellFormat(76, 6, line, "1", 0, "L", false, 0, "")
				pdf.CellFormat(30, 6, total, "1", 0, "R", false, 0, "")
				pdf.CellFormat(30, 6, paid, "1", 0, "R", false, 0, "")
				pdf.CellFormat(30, 6, balance, "1", 0, "R", false, 0, "")
				pdf.Ln(-1)
			}
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStatementXLSX renders an XLSX for a statement result. Currency
// cells stay raw numbers so downstream spreadsheet formulas keep working.
func BuildStatementXLSX(result *reporting.StatementResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("statement export: nil result")
	}
	f := excelize.NewFile()
	summarySheet := "summary"
	statementsSheet := "statements"
	daysSheet := "days"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(statementsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(daysSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Customer Statements")
	_ = f.SetCellValue(summarySheet, "A3", "Customers")
	_ = f.SetCellValue(summarySheet, "B3", len(result.Statements))
	_ = f.SetCellValue(summarySheet, "A4", "Orders")
	_ = f.SetCellValue(summarySheet, "B4", result.TotalOrders)
	_ = f.SetCellValue(summarySheet, "A5", "Grand Total")
	_ = f.SetCellValue(summarySheet, "B5", result.GrandTotalAmount)
	_ = f.SetCellValue(summarySheet, "A6", "Grand Paid")
	_ = f.SetCellValue(summarySheet, "B6", result.GrandTotalPaid)
	_ = f.SetCellValue(summarySheet, "A7", "Grand Pending")
	_ = f.SetCellValue(summarySheet, "B7", result.GrandPending)

	_ = f.SetCellValue(statementsSheet, "A1", "Customer ID")
	_ = f.SetCellValue(statementsSheet, "B1", "Customer")
	_ = f.SetCellValue(statementsSheet, "C1", "Total")
	_ = f.SetCellValue(statementsSheet, "D1", "Paid")
	_ = f.SetCellValue(statementsSheet, "E1", "Pending")
	for i, st := range result.Statements {
		row := i + 2
		_ = f.SetCellValue(statementsSheet, fmt.Sprintf("A%d", row), st.CustomerID)
		_ = f.SetCellValue(statementsSheet, fmt.Sprintf("B%d", row), st.CustomerName)
		_ = f.SetCellValue(statementsSheet, fmt.Sprintf("C%d", row), st.TotalAmount)
		_ = f.SetCellValue(statementsSheet, fmt.Sprintf("D%d", row), st.TotalPaid)
		_ = f.SetCellValue(statementsSheet, fmt.Sprintf("E%d", row), st.PendingAmount)
	}

	_ = f.SetCellValue(daysSheet, "A1", "Customer")
	_ = f.SetCellValue(daysSheet, "B1", "Date")
	_ = f.SetCellValue(daysSheet, "C1", "Items")
	_ = f.SetCellValue(daysSheet, "D1", "Total")
	_ = f.SetCellValue(daysSheet, "E1", "Paid")
	_ = f.SetCellValue(daysSheet, "F1", "Balance")
	row := 2
	for _, st := range result.Statements {
		for _, day := range reporting.BuildDailySummaries(st.Orders) {
			var items bytes.Buffer
			for i, item := range day.Items {
				if i > 0 {
					items.WriteString("\n")
				}
				items.WriteString(fmt.Sprintf("%s (x%s)", item.ProductName, formatQuantity(item.Quantity)))
			}
			_ = f.SetCellValue(daysSheet, fmt.Sprintf("A%d", row), st.CustomerName)
			_ = f.SetCellValue(daysSheet, fmt.Sprintf("B%d", row), day.Date.Format(dateFormat))
			_ = f.SetCellValue(daysSheet, fmt.Sprintf("C%d", row), items.String())
			_ = f.SetCellValue(daysSheet, fmt.Sprintf("D%d", row), day.TotalAmount)
			_ = f.SetCellValue(daysSheet, fmt.Sprintf("E%d", row), day.TotalPaid)
			_ = f.SetCellValue(daysSheet, fmt.Sprintf("F%d", row), day.Balance)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
