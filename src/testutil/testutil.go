// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"Backend-Hostel-Billing/src/models"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes header and rows to a fresh workbook under t.TempDir
// and returns its path.
func WriteWorkbook(t *testing.T, header []string, rows ...[]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &head))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// SampleWorkbook มีนักศึกษา S1 (1000/600) และ S2 ที่จ่ายเกิน
func SampleWorkbook(t *testing.T) string {
	t.Helper()
	return WriteWorkbook(t,
		[]string{models.ColRegNo, "Name", models.ColDOB, models.ColTotalPayable, models.ColTotalPaid},
		[]interface{}{"S1", "Asha", "2000-01-01", 1000, 600},
		[]interface{}{"S2", "Bilal", "2000-12-31", 800, 900},
	)
}

// NewRecord builds a record from alternating column/value pairs.
func NewRecord(pairs ...string) *models.StudentRecord {
	rec := &models.StudentRecord{}
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Set(pairs[i], pairs[i+1])
	}
	return rec
}

// TestTimer is a utility for measuring test execution time
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop stops the timer and prints the duration
func (t *TestTimer) Stop() time.Duration {
	d := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, d)
	return d
}

// SuiteResult collects timings of the subtests of one scenario.
type SuiteResult struct {
	Name    string
	Passed  int
	Failed  int
	Elapsed time.Duration
}

func NewSuiteResult(name string) *SuiteResult {
	return &SuiteResult{Name: name}
}

// Track times one subtest and records whether it failed.
func (s *SuiteResult) Track(t *testing.T) {
	t.Helper()
	timer := NewTestTimer(t.Name())
	t.Cleanup(func() {
		s.Elapsed += timer.Stop()
		if t.Failed() {
			s.Failed++
		} else {
			s.Passed++
		}
	})
}

// PrintSummary prints a summary of the suite results
func (s *SuiteResult) PrintSummary() {
	fmt.Printf("\n📊 %s: %d passed ✅, %d failed ❌ in %v\n", s.Name, s.Passed, s.Failed, s.Elapsed)
}
