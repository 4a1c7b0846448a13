package interfaces

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	reporting "orderdesk/internal/reporting/domain"
)

// BuildDailyReportXLSX renders the four daily report rollups as four
// sheets. The financial sheet carries pre-formatted currency strings;
// customer and product rows stay raw numbers. Detail subtotal and
// grand-total rows are bold, driven by the row kind tags.
func BuildDailyReportXLSX(report *reporting.DailyReport, symbol string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("daily report export: nil report")
	}
	f := excelize.NewFile()
	financialSheet := "financial"
	customersSheet := "customers"
	productsSheet := "products"
	detailsSheet := "details"
	f.SetSheetName("Sheet1", financialSheet)
	for _, sheet := range []string{customersSheet, productsSheet, detailsSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	_ = f.SetCellValue(financialSheet, "A1", "Daily Report")
	_ = f.SetCellValue(financialSheet, "A2", "Date")
	_ = f.SetCellValue(financialSheet, "B2", report.Date.Format(dateFormat))
	_ = f.SetCellValue(financialSheet, "A3", "Orders")
	_ = f.SetCellValue(financialSheet, "B3", report.Financial.OrderCount)
	_ = f.SetCellValue(financialSheet, "A4", "Collection")
	_ = f.SetCellValue(financialSheet, "B4", FormatAmount(symbol, report.Financial.Collection))
	_ = f.SetCellValue(financialSheet, "A5", "Total")
	_ = f.SetCellValue(financialSheet, "B5", FormatAmount(symbol, report.Financial.Total))
	_ = f.SetCellValue(financialSheet, "A6", "Pending")
	_ = f.SetCellValue(financialSheet, "B6", FormatAmount(symbol, report.Financial.Pending))

	_ = f.SetCellValue(customersSheet, "A1", "Customer")
	_ = f.SetCellValue(customersSheet, "B1", "Total")
	_ = f.SetCellValue(customersSheet, "C1", "Paid")
	_ = f.SetCellValue(customersSheet, "D1", "Pending")
	for i, ct := range report.Customers {
		row := i + 2
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("A%d", row), ct.CustomerName)
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("B%d", row), ct.TotalAmount)
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("C%d", row), ct.TotalPaid)
		_ = f.SetCellValue(customersSheet, fmt.Sprintf("D%d", row), ct.Pending)
	}

	_ = f.SetCellValue(productsSheet, "A1", "Product")
	_ = f.SetCellValue(productsSheet, "B1", "Quantity")
	_ = f.SetCellValue(productsSheet, "C1", "Unit")
	for i, pt := range report.Products {
		row := i + 2
		_ = f.SetCellValue(productsSheet, fmt.Sprintf("A%d", row), pt.ProductName)
		_ = f.SetCellValue(productsSheet, fmt.Sprintf("B%d", row), pt.Quantity)
		_ = f.SetCellValue(productsSheet, fmt.Sprintf("C%d", row), pt.Unit)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(detailsSheet, "A1", "Customer")
	_ = f.SetCellValue(detailsSheet, "B1", "Product")
	_ = f.SetCellValue(detailsSheet, "C1", "Quantity")
	_ = f.SetCellValue(detailsSheet, "D1", "Unit")
	_ = f.SetCellValue(detailsSheet, "E1", "Amount")
	_ = f.SetCellStyle(detailsSheet, "A1", "E1", boldStyle)
	row := 2
	for _, detail := range report.Details {
		switch detail.Kind {
		case reporting.RowKindItem:
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("A%d", row), detail.CustomerName)
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("B%d", row), detail.ProductName)
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("C%d", row), detail.Quantity)
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("D%d", row), detail.Unit)
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("E%d", row), detail.Amount)
		case reporting.RowKindSubtotal:
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("A%d", row), detail.CustomerName)
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("B%d", row), "Subtotal")
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("E%d", row), detail.Amount)
			_ = f.SetCellStyle(detailsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), boldStyle)
		case reporting.RowKindGrandTotal:
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("B%d", row), "Grand Total")
			_ = f.SetCellValue(detailsSheet, fmt.Sprintf("E%d", row), detail.Amount)
			_ = f.SetCellStyle(detailsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), boldStyle)
		case reporting.RowKindSpacer:
			// row left empty on purpose
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
