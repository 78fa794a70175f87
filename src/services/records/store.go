package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
)

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidCredentials = errors.New("invalid registration number or date of birth")
	ErrUnknownField       = errors.New("unknown field")
	ErrFieldNotEditable   = errors.New("field is not editable")
	ErrInvalidAmount      = errors.New("invalid amount")
)

// Store is a backend holding student billing records keyed by Reg No.
type Store interface {
	List(ctx context.Context) ([]*models.StudentRecord, error)
	// FindByCredentials returns the record only when exactly one row matches
	// both reg and dob.
	FindByCredentials(ctx context.Context, reg, dob string) (*models.StudentRecord, error)
	// FindByReg returns the first row matching reg.
	FindByReg(ctx context.Context, reg string) (*models.StudentRecord, error)
	// SetField overwrites field on every row matching reg.
	SetField(ctx context.Context, reg, field, value string) error
	// AddPayment adds amount to Total Paid on every row matching reg.
	AddPayment(ctx context.Context, reg string, amount decimal.Decimal) error
}

// ParseAmount แปลงจำนวนเงินจากฟอร์ม
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}
