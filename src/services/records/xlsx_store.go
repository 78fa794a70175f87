package records

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSXStore keeps every record in a single spreadsheet. The whole sheet is
// read on each call and rewritten on each mutation.
type XLSXStore struct {
	path  string
	sheet string

	// serialises read-modify-write inside this process only
	mu sync.Mutex
}

// sheetData ข้อมูลทั้งชีตที่โหลดมาในหน่วยความจำ เก็บค่าดิบทุก cell ไว้
// เพื่อให้คอลัมน์ที่ไม่มีชื่อหรือชื่อซ้ำถูกเขียนกลับเหมือนเดิม
type sheetData struct {
	sheet string
	// raw header cells as read from row 1
	rawHeader []string
	// trimmed names used for lookups
	header []string
	// every row below the header, blank rows included
	rows [][]string
}

// NewXLSXStore sheet may be empty to use the workbook's first sheet.
func NewXLSXStore(path, sheet string) *XLSXStore {
	return &XLSXStore{path: path, sheet: sheet}
}

func (s *XLSXStore) Path() string { return s.path }

// Ensure สร้างไฟล์ข้อมูลพร้อม header มาตรฐานถ้ายังไม่มีไฟล์
func (s *XLSXStore) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	log.Printf("⚠️ %s not found, creating an empty workbook", s.path)
	cols := models.DefaultColumns()
	return s.save(&sheetData{sheet: s.sheet, rawHeader: cols, header: cols})
}

func (s *XLSXStore) load() (*sheetData, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	data := &sheetData{sheet: sheet}
	if len(rows) == 0 {
		return data, nil
	}

	data.rawHeader = rows[0]
	data.header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		data.header[i] = strings.TrimSpace(h)
	}
	data.rows = rows[1:]
	return data, nil
}

// records builds a StudentRecord for every non-blank row.
func (data *sheetData) records() []*models.StudentRecord {
	var out []*models.StudentRecord
	for _, row := range data.rows {
		if isBlankRow(row) {
			continue
		}
		out = append(out, models.NewStudentRecord(data.header, row))
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// save เขียนทั้งชีตลงไฟล์ชั่วคราวแล้ว rename ทับไฟล์เดิม
func (s *XLSXStore) save(data *sheetData) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := data.sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]interface{}, len(data.rawHeader))
	for i, h := range data.rawHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, raw := range data.rows {
		if len(raw) == 0 {
			continue
		}
		row := make([]interface{}, len(raw))
		for j, value := range raw {
			col := ""
			if j < len(data.header) {
				col = data.header[j]
			}
			row[j] = cellValue(col, value)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".records-*.xlsx")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// cellValue writes amount columns as numeric cells so the sheet stays usable in Excel.
func cellValue(col, value string) interface{} {
	if models.IsAmountColumn(col) && strings.TrimSpace(value) != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return d.InexactFloat64()
		}
	}
	return value
}

// column returns the index of the first header named col, appending the
// column when the sheet does not have it yet.
func (data *sheetData) column(col string) int {
	for i, h := range data.header {
		if h == col {
			return i
		}
	}
	data.rawHeader = append(data.rawHeader, col)
	data.header = append(data.header, col)
	return len(data.header) - 1
}

// setCell overwrites a single cell of row i, padding the row if it is short.
func (data *sheetData) setCell(i int, col, value string) {
	j := data.column(col)
	row := data.rows[i]
	for len(row) <= j {
		row = append(row, "")
	}
	row[j] = value
	data.rows[i] = row
}

func (s *XLSXStore) List(ctx context.Context) ([]*models.StudentRecord, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.records(), nil
}

func (s *XLSXStore) FindByCredentials(ctx context.Context, reg, dob string) (*models.StudentRecord, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	var match *models.StudentRecord
	count := 0
	for _, rec := range data.records() {
		if rec.RegNo() == reg && rec.DOB() == dob {
			match = rec
			count++
		}
	}
	if count != 1 {
		return nil, ErrInvalidCredentials
	}
	return match, nil
}

func (s *XLSXStore) FindByReg(ctx context.Context, reg string) (*models.StudentRecord, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range data.records() {
		if rec.RegNo() == reg {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
}

func (s *XLSXStore) SetField(ctx context.Context, reg, field, value string) error {
	return s.mutate(reg, func(data *sheetData, i int, rec *models.StudentRecord) {
		data.setCell(i, field, value)
	})
}

func (s *XLSXStore) AddPayment(ctx context.Context, reg string, amount decimal.Decimal) error {
	return s.mutate(reg, func(data *sheetData, i int, rec *models.StudentRecord) {
		paid := rec.Amount(models.ColTotalPaid).Add(amount)
		data.setCell(i, models.ColTotalPaid, paid.String())
	})
}

// mutate applies fn to every row matching reg and persists the sheet. Rows
// that do not match are written back untouched.
func (s *XLSXStore) mutate(reg string, fn func(data *sheetData, row int, rec *models.StudentRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	matched := 0
	for i, row := range data.rows {
		if isBlankRow(row) {
			continue
		}
		rec := models.NewStudentRecord(data.header, row)
		if rec.RegNo() == reg {
			fn(data, i, rec)
			matched++
		}
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
	}
	return s.save(data)
}
