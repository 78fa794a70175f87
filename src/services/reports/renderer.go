package reports

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"Backend-Hostel-Billing/src/qrcode"

	"github.com/go-pdf/fpdf"
)

// Renderer turns a Bill into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, bill Bill) ([]byte, error)
}

// FPDFRenderer ใช้ fpdf สร้างไฟล์ A4 โดยไม่ต้องพึ่งโปรแกรมภายนอก
type FPDFRenderer struct {
	labelWidth float64
	valueWidth float64
	qrSize     float64
}

func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{labelWidth: 220, valueWidth: 300, qrSize: 96}
}

func (r *FPDFRenderer) Render(ctx context.Context, bill Bill) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetTitle(bill.Title, true)
	pdf.SetCreationDate(bill.GeneratedAt)
	pdf.SetModificationDate(bill.GeneratedAt)
	pdf.SetAutoPageBreak(true, 48)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-36)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	left, _, _, _ := pdf.GetMargins()
	tableLeft := left + (pageWidth(pdf)-left*2-r.labelWidth-r.valueWidth)/2

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 30, tr(bill.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 16, bill.Date, "", 1, "L", false, 0, "")
	pdf.Ln(12)

	// header row
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	pdf.SetX(tableLeft)
	pdf.CellFormat(r.labelWidth, 20, tr(bill.Header.Label), "1", 0, "C", true, 0, "")
	pdf.CellFormat(r.valueWidth, 20, tr(bill.Header.Value), "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range bill.Rows {
		pdf.SetX(tableLeft)
		pdf.CellFormat(r.labelWidth, 18, tr(row.Label), "1", 0, "C", false, 0, "")
		pdf.CellFormat(r.valueWidth, 18, fit(pdf, tr(row.Value), r.valueWidth-6), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 14, tr(bill.AmountInWords), "", 1, "L", false, 0, "")

	if png, err := qrcode.GenerateQRCode(bill.QRPayload, 256); err != nil {
		log.Printf("⚠️ bill %s rendered without QR code: %v", bill.RegNo, err)
	} else {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
		pdf.Ln(6)
		pdf.ImageOptions("qr", tableLeft, pdf.GetY(), r.qrSize, r.qrSize, true, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill %s: %w", bill.RegNo, err)
	}
	return buf.Bytes(), nil
}

func pageWidth(pdf *fpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	return w
}

// fit cuts text that would overflow a single table cell.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
