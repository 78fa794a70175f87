package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Well-known spreadsheet columns. Any other column is carried as-is.
const (
	ColRegNo        = "Reg No"
	ColDOB          = "DOB"
	ColTotalPayable = "Total Payable"
	ColTotalPaid    = "Total Paid"
)

// DefaultColumns header ที่ใช้ตอนสร้างไฟล์ข้อมูลใหม่
func DefaultColumns() []string {
	return []string{ColRegNo, ColDOB, ColTotalPayable, ColTotalPaid}
}

// IsAmountColumn reports whether the column holds a money amount.
func IsAmountColumn(name string) bool {
	return name == ColTotalPayable || name == ColTotalPaid
}

// RecordField คู่ (คอลัมน์, ค่า) ของนักศึกษาหนึ่งแถว
type RecordField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StudentRecord แถวข้อมูลค่าหอพัก/ค่าอาหารของนักศึกษา เรียงตามลำดับคอลัมน์ในไฟล์
type StudentRecord struct {
	Fields []RecordField `json:"fields"`
}

// NewStudentRecord builds a record from a header and a row of cell values.
// Missing trailing cells become empty strings.
func NewStudentRecord(header, values []string) *StudentRecord {
	rec := &StudentRecord{Fields: make([]RecordField, 0, len(header))}
	for i, name := range header {
		if name == "" {
			continue
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		rec.Fields = append(rec.Fields, RecordField{Name: name, Value: value})
	}
	return rec
}

func (r *StudentRecord) index(name string) int {
	for i, f := range r.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether the record carries the column.
func (r *StudentRecord) Has(name string) bool {
	return r.index(name) >= 0
}

// Value returns the column value or "" when absent.
func (r *StudentRecord) Value(name string) string {
	if i := r.index(name); i >= 0 {
		return r.Fields[i].Value
	}
	return ""
}

// Set overwrites an existing column or appends a new one.
func (r *StudentRecord) Set(name, value string) {
	if i := r.index(name); i >= 0 {
		r.Fields[i].Value = value
		return
	}
	r.Fields = append(r.Fields, RecordField{Name: name, Value: value})
}

// Columns returns the column names in stored order.
func (r *StudentRecord) Columns() []string {
	cols := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		cols[i] = f.Name
	}
	return cols
}

func (r *StudentRecord) RegNo() string { return r.Value(ColRegNo) }

func (r *StudentRecord) DOB() string { return r.Value(ColDOB) }

// Amount parses a numeric column. Blank or non-numeric values count as zero.
func (r *StudentRecord) Amount(name string) decimal.Decimal {
	raw := strings.TrimSpace(r.Value(name))
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Clone returns a deep copy.
func (r *StudentRecord) Clone() *StudentRecord {
	fields := make([]RecordField, len(r.Fields))
	copy(fields, r.Fields)
	return &StudentRecord{Fields: fields}
}
