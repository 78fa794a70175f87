package records

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
)

// BillQueue schedules regeneration of a student's exported bill.
type BillQueue interface {
	EnqueueBillRefresh(ctx context.Context, regNo string) error
}

// Service wraps a Store with the editable-field rules used by the admin pages.
type Service struct {
	store Store
	queue BillQueue
}

// NewService queue may be nil when no job queue is configured.
func NewService(store Store, queue BillQueue) *Service {
	return &Service{store: store, queue: queue}
}

func (s *Service) Login(ctx context.Context, reg, dob string) (*models.StudentRecord, error) {
	return s.store.FindByCredentials(ctx, reg, dob)
}

func (s *Service) Get(ctx context.Context, reg string) (*models.StudentRecord, error) {
	return s.store.FindByReg(ctx, reg)
}

func (s *Service) List(ctx context.Context) ([]*models.StudentRecord, error) {
	return s.store.List(ctx)
}

// UpdateField แก้ไขคอลัมน์ของนักศึกษา
// Reg No is immutable; only columns the record already has (or the
// well-known ones) are accepted, and amount columns must be numeric.
func (s *Service) UpdateField(ctx context.Context, reg, field, value string) error {
	field = strings.TrimSpace(field)
	if field == models.ColRegNo {
		return fmt.Errorf("%w: %q", ErrFieldNotEditable, field)
	}

	rec, err := s.store.FindByReg(ctx, reg)
	if err != nil {
		return err
	}
	if !rec.Has(field) && field != models.ColDOB && !models.IsAmountColumn(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if models.IsAmountColumn(field) {
		amount, err := ParseAmount(value)
		if err != nil {
			return err
		}
		value = amount.String()
	}

	if err := s.store.SetField(ctx, reg, field, value); err != nil {
		return err
	}
	log.Printf("✅ %s updated for %s", field, reg)
	return nil
}

// AddPayment บันทึกการชำระเงินและสั่งสร้างใบแจ้งหนี้ใหม่ในเบื้องหลัง
func (s *Service) AddPayment(ctx context.Context, reg string, amount decimal.Decimal) error {
	if err := s.store.AddPayment(ctx, reg, amount); err != nil {
		return err
	}
	log.Printf("✅ payment of %s recorded for %s", amount.String(), reg)

	if s.queue != nil {
		if err := s.queue.EnqueueBillRefresh(ctx, reg); err != nil {
			log.Printf("⚠️ failed to enqueue bill refresh for %s: %v", reg, err)
		}
	}
	return nil
}
