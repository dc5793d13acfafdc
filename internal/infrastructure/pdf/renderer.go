// Package pdf формирует постраничные PDF-отчёты: заголовок, дата
// генерации и одна или несколько табличных секций.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageLeftMargin = 14.0
	rowHeight      = 8.0
	headerFontSize = 20.0
	bodyFontSize   = 10.0
)

// Фирменные цвета шапок таблиц (кофейные тона оригинального бренда).
var (
	headerFill    = [3]int{96, 63, 45}
	altHeaderFill = [3]int{129, 91, 68}
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderSales — отчёт по продажам: история транзакций и способы оплаты.
func (r *Renderer) RenderSales(sales []domain.Sale, generatedAt time.Time) ([]byte, error) {
	doc := newDoc("Sales Report - Espresso Flow", generatedAt)

	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		client := s.ClientName
		if client == "" {
			client = "Guest"
		}
		rows = append(rows, []string{
			shortID(s.ID),
			s.Date.Format("2006-01-02"),
			money(s.Total),
			string(s.PaymentMethod),
			fmt.Sprintf("%d", s.Items),
			client,
		})
	}

	table(doc, headerFill,
		[]string{"ID", "Date", "Total", "Method", "Items", "Client"},
		[]float64{25, 28, 25, 25, 18, 60},
		rows,
	)

	return output(doc)
}

// RenderInventory — отчёт по остаткам: позиции меню и складское сырьё.
func (r *Renderer) RenderInventory(products []domain.Product, supplies []domain.Supply, generatedAt time.Time) ([]byte, error) {
	doc := newDoc("Inventory & Supply Report", generatedAt)

	sectionTitle(doc, "Products")
	productRows := make([][]string, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, []string{
			p.Name, p.Category, money(p.Price), fmt.Sprintf("%d", p.Stock),
		})
	}
	table(doc, headerFill,
		[]string{"Product", "Category", "Price", "Stock"},
		[]float64{70, 40, 30, 25},
		productRows,
	)

	doc.Ln(8)
	sectionTitle(doc, "Supplies")
	supplyRows := make([][]string, 0, len(supplies))
	for _, s := range supplies {
		supplyRows = append(supplyRows, []string{
			s.Name, fmt.Sprintf("%d", s.Quantity), s.Unit, string(s.Status),
		})
	}
	table(doc, altHeaderFill,
		[]string{"Item", "Quantity", "Unit", "Status"},
		[]float64{70, 30, 25, 30},
		supplyRows,
	)

	return output(doc)
}

// RenderClients — отчёт CRM: база клиентов, баллы и траты.
func (r *Renderer) RenderClients(clients []domain.Client, generatedAt time.Time) ([]byte, error) {
	doc := newDoc("Client CRM Report", generatedAt)

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			c.Name,
			c.Email,
			fmt.Sprintf("%d", c.Points),
			money(c.TotalSpent),
			c.LastVisit.Format("2006-01-02"),
		})
	}

	table(doc, headerFill,
		[]string{"Name", "Email", "Points", "Total Spent", "Last Visit"},
		[]float64{45, 55, 20, 30, 30},
		rows,
	)

	return output(doc)
}

// newDoc открывает документ с заголовком и датой генерации.
func newDoc(title string, generatedAt time.Time) *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", headerFontSize)
	doc.SetTextColor(0, 0, 0)
	doc.Cell(0, 10, title)
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 8, fmt.Sprintf("Generated on: %s", generatedAt.Format("01/02/2006")))
	doc.Ln(12)

	return doc
}

func sectionTitle(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 0)
	doc.Cell(0, 8, title)
	doc.Ln(10)
}

// table выводит табличную секцию: залитая шапка и строки с сеткой.
// Перенос страницы выполняется библиотекой автоматически.
func table(doc *gofpdf.Fpdf, fill [3]int, head []string, widths []float64, rows [][]string) {
	doc.SetX(pageLeftMargin)
	doc.SetFont("Helvetica", "B", bodyFontSize)
	doc.SetFillColor(fill[0], fill[1], fill[2])
	doc.SetTextColor(255, 255, 255)
	for i, h := range head {
		doc.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", bodyFontSize)
	doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		doc.SetX(pageLeftMargin)
		for i, cell := range row {
			doc.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, e.Wrap("pdf.output", err)
	}

	return buf.Bytes(), nil
}

// money форматирует центы в доллары с двумя знаками.
func money(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// shortID обрезает UUID до первого блока, чтобы колонка оставалась читаемой.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
