package billing

import (
	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
)

// Totals ยอดรวมที่ต้องชำระ ยอดที่ชำระแล้ว ยอดค้างชำระ และยอดเงินคืน
type Totals struct {
	Payable decimal.Decimal `json:"totalPayable"`
	Paid    decimal.Decimal `json:"paid"`
	Due     decimal.Decimal `json:"due"`
	Refund  decimal.Decimal `json:"refund"`
}

// Calculate derives due and refund. At most one of them is nonzero and
// neither is ever negative.
func Calculate(payable, paid decimal.Decimal) Totals {
	return Totals{
		Payable: payable,
		Paid:    paid,
		Due:     decimal.Max(payable.Sub(paid), decimal.Zero),
		Refund:  decimal.Max(paid.Sub(payable), decimal.Zero),
	}
}

// CalculateRecord คำนวณยอดจากคอลัมน์ Total Payable / Total Paid ของแถว
func CalculateRecord(rec *models.StudentRecord) Totals {
	return Calculate(rec.Amount(models.ColTotalPayable), rec.Amount(models.ColTotalPaid))
}
