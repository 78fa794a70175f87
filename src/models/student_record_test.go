package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentRecord(t *testing.T) {
	t.Run("pads missing cells", func(t *testing.T) {
		rec := NewStudentRecord([]string{ColRegNo, "Name", ColDOB}, []string{"S1"})
		require.Len(t, rec.Fields, 3)
		assert.Equal(t, "S1", rec.RegNo())
		assert.Equal(t, "", rec.Value("Name"))
		assert.True(t, rec.Has(ColDOB))
	})

	t.Run("skips unnamed columns", func(t *testing.T) {
		rec := NewStudentRecord([]string{ColRegNo, "", "Room"}, []string{"S1", "junk", "B-12"})
		assert.Equal(t, []string{ColRegNo, "Room"}, rec.Columns())
		assert.Equal(t, "B-12", rec.Value("Room"))
	})
}

func TestStudentRecordSet(t *testing.T) {
	rec := NewStudentRecord([]string{ColRegNo, "Name"}, []string{"S1", "Asha"})

	rec.Set("Name", "Asha K")
	rec.Set("Room", "A-1")

	assert.Equal(t, []string{ColRegNo, "Name", "Room"}, rec.Columns())
	assert.Equal(t, "Asha K", rec.Value("Name"))
	assert.Equal(t, "", rec.Value("Missing"))
}

func TestStudentRecordAmount(t *testing.T) {
	rec := NewStudentRecord(
		[]string{ColTotalPayable, ColTotalPaid, "Deposit"},
		[]string{" 1200.50 ", "abc", ""},
	)

	assert.True(t, rec.Amount(ColTotalPayable).Equal(decimal.RequireFromString("1200.5")))
	assert.True(t, rec.Amount(ColTotalPaid).IsZero())
	assert.True(t, rec.Amount("Deposit").IsZero())
	assert.True(t, rec.Amount("Nope").IsZero())
}

func TestStudentRecordClone(t *testing.T) {
	rec := NewStudentRecord([]string{ColRegNo, "Name"}, []string{"S1", "Asha"})
	cp := rec.Clone()
	cp.Set("Name", "Other")

	assert.Equal(t, "Asha", rec.Value("Name"))
	assert.Equal(t, "Other", cp.Value("Name"))
}

func TestIsAmountColumn(t *testing.T) {
	assert.True(t, IsAmountColumn(ColTotalPayable))
	assert.True(t, IsAmountColumn(ColTotalPaid))
	assert.False(t, IsAmountColumn(ColDOB))
	assert.False(t, IsAmountColumn("total paid"))
}
