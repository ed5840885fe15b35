package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Summary is the flat numeric business summary rendered at the top of the
// report
type Summary struct {
	TotalProducts    int     `json:"total_products"`
	TotalInvestment  float64 `json:"total_investment"`
	TotalSales       float64 `json:"total_sales"`
	TotalCustomers   int     `json:"total_customers"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

// ProductRow is one inventory line in the report
type ProductRow struct {
	Name     string
	Category string
	Price    float64
	Stock    int
	LowStock bool
}

// CustomerRow is one customer line in the report
type CustomerRow struct {
	Name        string
	Phone       string
	Outstanding float64
	TotalPaid   float64
}

// Data is everything the renderer needs. The renderer truncates long tables
// for display; the underlying summary is always computed over the full data.
type Data struct {
	ShopName    string
	GeneratedAt time.Time
	Summary     Summary
	Products    []ProductRow
	Customers   []CustomerRow
}

// maxTableRows caps each table in the rendered document
const maxTableRows = 25

// Render produces the business summary PDF as a byte slice
func Render(d *Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s Business Report", d.ShopName), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - Business Report", d.ShopName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", d.GeneratedAt.Format("02 Jan 2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	renderSummary(pdf, d.Summary)
	renderProducts(pdf, d.Products)
	renderCustomers(pdf, d.Customers)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSummary(pdf *gofpdf.Fpdf, s Summary) {
	sectionTitle(pdf, "Summary")

	rows := [][2]string{
		{"Total Products", fmt.Sprintf("%d", s.TotalProducts)},
		{"Total Investment", money(s.TotalInvestment)},
		{"Total Sales", money(s.TotalSales)},
		{"Total Customers", fmt.Sprintf("%d", s.TotalCustomers)},
		{"Outstanding Credit", money(s.TotalOutstanding)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(60, 7, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, r[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func renderProducts(pdf *gofpdf.Fpdf, products []ProductRow) {
	sectionTitle(pdf, "Inventory")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(60, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Stock", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range products {
		if i >= maxTableRows {
			pdf.CellFormat(180, 6, fmt.Sprintf("... and %d more products", len(products)-maxTableRows), "", 1, "L", false, 0, "")
			break
		}
		status := "OK"
		if p.LowStock {
			status = "Low"
		}
		pdf.CellFormat(60, 6, p.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, p.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, money(p.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", p.Stock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, status, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func renderCustomers(pdf *gofpdf.Fpdf, customers []CustomerRow) {
	sectionTitle(pdf, "Customers & Payments")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(60, 7, "Customer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Phone", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Paid", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Outstanding", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, c := range customers {
		if i >= maxTableRows {
			pdf.CellFormat(180, 6, fmt.Sprintf("... and %d more customers", len(customers)-maxTableRows), "", 1, "L", false, 0, "")
			break
		}
		outstanding := money(c.Outstanding)
		if c.Outstanding <= 0 {
			outstanding = "Paid"
		}
		pdf.CellFormat(60, 6, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, c.Phone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, money(c.TotalPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, outstanding, "1", 1, "R", false, 0, "")
	}
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("Rs %.2f", v)
}
