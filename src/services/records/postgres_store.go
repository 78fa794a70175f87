package records

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// studentRow แถวในตาราง student_records; คอลัมน์อื่นจาก Excel เก็บใน extra (jsonb)
type studentRow struct {
	RegNo        string            `gorm:"column:reg_no;primaryKey"`
	DOB          string            `gorm:"column:dob;not null;default:''"`
	TotalPayable decimal.Decimal   `gorm:"column:total_payable;type:numeric(14,2);not null;default:0"`
	TotalPaid    decimal.Decimal   `gorm:"column:total_paid;type:numeric(14,2);not null;default:0"`
	Extra        datatypes.JSONMap `gorm:"column:extra;type:jsonb"`
	CreatedAt    time.Time         `gorm:"column:created_at"`
	UpdatedAt    time.Time         `gorm:"column:updated_at"`
}

func (studentRow) TableName() string { return "student_records" }

// PostgresStore keeps one row per student keyed by reg_no.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&studentRow{})
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.StudentRecord, error) {
	var rows []studentRow
	if err := s.db.WithContext(ctx).Order("reg_no").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*models.StudentRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toRecord())
	}
	return out, nil
}

func (s *PostgresStore) FindByCredentials(ctx context.Context, reg, dob string) (*models.StudentRecord, error) {
	var rows []studentRow
	err := s.db.WithContext(ctx).
		Where("reg_no = ? AND dob = ?", reg, dob).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, ErrInvalidCredentials
	}
	return rows[0].toRecord(), nil
}

func (s *PostgresStore) FindByReg(ctx context.Context, reg string) (*models.StudentRecord, error) {
	var row studentRow
	err := s.db.WithContext(ctx).Where("reg_no = ?", reg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
		}
		return nil, err
	}
	return row.toRecord(), nil
}

func (s *PostgresStore) SetField(ctx context.Context, reg, field, value string) error {
	var column string
	var arg interface{}
	switch field {
	case models.ColRegNo:
		column, arg = "reg_no", value
	case models.ColDOB:
		column, arg = "dob", value
	case models.ColTotalPayable, models.ColTotalPaid:
		amount, err := ParseAmount(value)
		if err != nil {
			return err
		}
		column, arg = "total_payable", amount
		if field == models.ColTotalPaid {
			column = "total_paid"
		}
	default:
		column = "extra"
		arg = gorm.Expr("COALESCE(extra, '{}'::jsonb) || jsonb_build_object(?::text, ?::text)", field, value)
	}

	res := s.db.WithContext(ctx).Model(&studentRow{}).Where("reg_no = ?", reg).Update(column, arg)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
	}
	return nil
}

func (s *PostgresStore) AddPayment(ctx context.Context, reg string, amount decimal.Decimal) error {
	res := s.db.WithContext(ctx).
		Model(&studentRow{}).
		Where("reg_no = ?", reg).
		Update("total_paid", gorm.Expr("total_paid + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
	}
	return nil
}

// Upsert inserts the student or overwrites every column of the existing row.
func (s *PostgresStore) Upsert(ctx context.Context, rec *models.StudentRecord) error {
	row := rowFromRecord(rec)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reg_no"}},
			DoUpdates: clause.AssignmentColumns([]string{"dob", "total_payable", "total_paid", "extra", "updated_at"}),
		}).
		Create(&row).Error
}

func rowFromRecord(rec *models.StudentRecord) studentRow {
	row := studentRow{
		RegNo:        rec.RegNo(),
		DOB:          rec.DOB(),
		TotalPayable: rec.Amount(models.ColTotalPayable),
		TotalPaid:    rec.Amount(models.ColTotalPaid),
		Extra:        datatypes.JSONMap{},
	}
	for _, f := range rec.Fields {
		switch f.Name {
		case models.ColRegNo, models.ColDOB, models.ColTotalPayable, models.ColTotalPaid:
		default:
			row.Extra[f.Name] = f.Value
		}
	}
	return row
}

// toRecord well-known columns first, extra columns sorted by name
func (r *studentRow) toRecord() *models.StudentRecord {
	rec := &models.StudentRecord{}
	rec.Set(models.ColRegNo, r.RegNo)
	rec.Set(models.ColDOB, r.DOB)
	rec.Set(models.ColTotalPayable, r.TotalPayable.String())
	rec.Set(models.ColTotalPaid, r.TotalPaid.String())

	keys := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rec.Set(k, stringify(r.Extra[k]))
	}
	return rec
}
