package reports

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRenderer struct{}

func (failingRenderer) Render(ctx context.Context, bill Bill) ([]byte, error) {
	return nil, errors.New("no printer")
}

func newTestExporter(r Renderer, dir string) *Exporter {
	e := NewExporter(r, dir)
	e.now = func() time.Time { return billTime }
	return e
}

func TestExportWritesPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exporter := newTestExporter(NewFPDFRenderer(), dir)

	exported, err := exporter.Export(context.Background(), s1Record())
	require.NoError(t, err)
	path := exported.Path
	assert.Equal(t, filepath.Join(dir, "bill_S1.pdf"), path)
	assert.Equal(t, "bill_S1.pdf", exported.FileName)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
	assert.Equal(t, first, exported.Data)

	t.Run("same record gives the same file", func(t *testing.T) {
		_, err := exporter.Export(context.Background(), s1Record())
		require.NoError(t, err)
		second, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("later export overwrites", func(t *testing.T) {
		rec := s1Record()
		rec.Set(models.ColTotalPaid, "1100")
		again, err := exporter.Export(context.Background(), rec)
		require.NoError(t, err)

		updated, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, first, updated)
		assert.Equal(t, updated, again.Data)
		assert.True(t, bytes.HasSuffix(bytes.TrimRight(updated, "\n"), []byte("%%EOF")))

		// ไม่มีไฟล์ชั่วคราวค้าง
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "bill_S1.pdf", entries[0].Name())
	})
}

func TestExportLongValues(t *testing.T) {
	rec := testutil.NewRecord(models.ColRegNo, "S7", "Remarks", string(bytes.Repeat([]byte("x"), 500)))
	data, err := NewFPDFRenderer().Render(context.Background(), BuildBill(rec, billTime))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportRendererError(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestExporter(failingRenderer{}, dir).Export(context.Background(), s1Record())
	assert.Error(t, err)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

// needs a local Chrome: CHROME_TEST=1
func TestChromeRenderer(t *testing.T) {
	if os.Getenv("CHROME_TEST") == "" {
		t.Skip("CHROME_TEST not set")
	}
	views := &stubViews{html: "<html><body><h1>Hostel &amp; Mess Bill</h1></body></html>"}
	data, err := NewChromeRenderer(views, 30*time.Second).Render(context.Background(), BuildBill(s1Record(), billTime))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "bill", views.name)
}
