package billing

import (
	"testing"

	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate(t *testing.T) {
	cases := []struct {
		name    string
		payable string
		paid    string
		due     string
		refund  string
	}{
		{"partly paid", "1000", "600", "400", "0"},
		{"overpaid", "1000", "1100", "0", "100"},
		{"settled", "750.50", "750.50", "0", "0"},
		{"nothing paid", "1200", "0", "1200", "0"},
		{"fractional", "100.25", "40.10", "60.15", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(d(tc.payable), d(tc.paid))
			assert.True(t, got.Due.Equal(d(tc.due)), "due = %s", got.Due)
			assert.True(t, got.Refund.Equal(d(tc.refund)), "refund = %s", got.Refund)
		})
	}
}

func TestCalculateNeverNegative(t *testing.T) {
	values := []string{"0", "1", "99.99", "500", "1000", "1000.01", "123456.78"}
	for _, payable := range values {
		for _, paid := range values {
			got := Calculate(d(payable), d(paid))

			assert.False(t, got.Due.IsNegative())
			assert.False(t, got.Refund.IsNegative())
			assert.False(t, got.Due.IsPositive() && got.Refund.IsPositive(), "%s/%s", payable, paid)
			// due - refund is always payable - paid
			assert.True(t, got.Due.Sub(got.Refund).Equal(d(payable).Sub(d(paid))))
		}
	}
}

func TestCalculateRecord(t *testing.T) {
	t.Run("reads amount columns", func(t *testing.T) {
		rec := models.NewStudentRecord(
			[]string{models.ColRegNo, models.ColTotalPayable, models.ColTotalPaid},
			[]string{"S1", "1000", "600"},
		)
		got := CalculateRecord(rec)
		assert.True(t, got.Payable.Equal(d("1000")))
		assert.True(t, got.Paid.Equal(d("600")))
		assert.True(t, got.Due.Equal(d("400")))
		assert.True(t, got.Refund.IsZero())
	})

	t.Run("missing and blank amounts are zero", func(t *testing.T) {
		rec := models.NewStudentRecord([]string{models.ColRegNo, models.ColTotalPayable}, []string{"S9", ""})
		got := CalculateRecord(rec)
		assert.True(t, got.Due.IsZero())
		assert.True(t, got.Refund.IsZero())
	})

	t.Run("non-numeric amount is zero", func(t *testing.T) {
		rec := models.NewStudentRecord(
			[]string{models.ColRegNo, models.ColTotalPayable, models.ColTotalPaid},
			[]string{"S9", "n/a", "50"},
		)
		got := CalculateRecord(rec)
		assert.True(t, got.Refund.Equal(d("50")))
	})
}
