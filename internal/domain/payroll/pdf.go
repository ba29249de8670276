package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// RenderSchedulePDF writes the pay schedule and income breakdown as a PDF.
func RenderSchedulePDF(w io.Writer, year int, rows []ScheduleRow, breakdown []CategoryBreakdown) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pay Schedule %d", year))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 7, "Pay Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 7, "Gross Pay", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "401(k)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Taxes", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Net Pay", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(30, 6, row.PayDate, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", row.GrossPay), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", row.RetirementDeduction), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", row.TaxDeduction), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", row.NetPay), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(40, 8, "Breakdown of Income")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(55, 7, "Category", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "Annual", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Monthly", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Bi-Weekly", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range breakdown {
		pdf.CellFormat(55, 6, row.Category, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.Annual), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.Monthly), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.Biweekly), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
