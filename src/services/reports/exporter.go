package reports

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"Backend-Hostel-Billing/src/models"
)

// ExportedBill is one bill written to the export directory.
type ExportedBill struct {
	Path     string
	FileName string
	Data     []byte
}

// Exporter renders bills and writes them to the export directory.
type Exporter struct {
	renderer Renderer
	dir      string
	now      func() time.Time
}

func NewExporter(renderer Renderer, dir string) *Exporter {
	return &Exporter{renderer: renderer, dir: dir, now: time.Now}
}

// Export writes bill_<RegNo>.pdf, replacing any earlier export for the
// student, and returns the rendered bytes with the path.
func (e *Exporter) Export(ctx context.Context, rec *models.StudentRecord) (*ExportedBill, error) {
	bill := BuildBill(rec, e.now())
	data, err := e.renderer.Render(ctx, bill)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	name := FileName(rec.RegNo())
	path := filepath.Join(e.dir, name)
	if err := writeFileAtomic(path, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	log.Printf("✅ bill exported: %s", path)
	return &ExportedBill{Path: path, FileName: name, Data: data}, nil
}

// writeFileAtomic เขียนลงไฟล์ชั่วคราวแล้ว rename เพื่อไม่ให้ใครอ่านเจอไฟล์ที่เขียนไม่เสร็จ
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bill-*.pdf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
