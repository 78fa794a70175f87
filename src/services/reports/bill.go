package reports

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/services/billing"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

const (
	BillTitle      = "Hostel & Mess Bill"
	billDateLayout = "02-Jan-2006"
)

// Row แถวในตารางของใบแจ้งหนี้
type Row struct {
	Label string
	Value string
}

// Bill is the rendered-agnostic content of one student's bill.
type Bill struct {
	Title       string
	RegNo       string
	GeneratedAt time.Time
	Date        string
	Header      Row
	Rows        []Row
	Totals      billing.Totals
	// AmountInWords describes the outstanding due or refund.
	AmountInWords string
	QRPayload     string
}

// BuildBill lists every stored field followed by the four computed totals.
func BuildBill(rec *models.StudentRecord, now time.Time) Bill {
	totals := billing.CalculateRecord(rec)

	rows := make([]Row, 0, len(rec.Fields)+4)
	for _, f := range rec.Fields {
		rows = append(rows, Row{Label: f.Name, Value: f.Value})
	}
	rows = append(rows,
		Row{Label: "Total Payable", Value: totals.Payable.String()},
		Row{Label: "Paid", Value: totals.Paid.String()},
		Row{Label: "Due", Value: totals.Due.String()},
		Row{Label: "Refund", Value: totals.Refund.String()},
	)

	return Bill{
		Title:         BillTitle,
		RegNo:         rec.RegNo(),
		GeneratedAt:   now,
		Date:          now.Format(billDateLayout),
		Header:        Row{Label: "Field", Value: "Value"},
		Rows:          rows,
		Totals:        totals,
		AmountInWords: amountInWords(totals),
		QRPayload:     fmt.Sprintf("%s|%s|%s", rec.RegNo(), totals.Due.String(), totals.Refund.String()),
	}
}

func amountInWords(t billing.Totals) string {
	switch {
	case t.Due.IsPositive():
		return "Amount due: " + spell(t.Due)
	case t.Refund.IsPositive():
		return "Refund due: " + spell(t.Refund)
	default:
		return "No balance outstanding"
	}
}

// spell writes the whole units in words and the fraction as /100.
func spell(d decimal.Decimal) string {
	words := num2words.Convert(int(d.IntPart()))
	cents := d.Sub(decimal.NewFromInt(d.IntPart())).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents > 0 {
		return fmt.Sprintf("%s and %02d/100 only", words, cents)
	}
	return words + " only"
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileName is deterministic per registration number. When the Reg No has to
// be cleaned up, a short hash of the raw value keeps e.g. "S/1" and "S_1" apart.
func FileName(regNo string) string {
	name := unsafeFileChars.ReplaceAllString(strings.TrimSpace(regNo), "_")
	if name == "" {
		name = "unknown"
	}
	if name != regNo {
		sum := sha256.Sum256([]byte(regNo))
		name += "-" + hex.EncodeToString(sum[:4])
	}
	return "bill_" + name + ".pdf"
}
