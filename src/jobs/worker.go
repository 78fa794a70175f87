package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/services/records"
	"Backend-Hostel-Billing/src/services/reports"

	"github.com/hibiken/asynq"
)

// RecordFinder looks up a student by Reg No.
type RecordFinder interface {
	FindByReg(ctx context.Context, reg string) (*models.StudentRecord, error)
}

// BillExporter writes a student's bill to disk.
type BillExporter interface {
	Export(ctx context.Context, rec *models.StudentRecord) (*reports.ExportedBill, error)
}

// BillHandler regenerates the exported bill of one student.
type BillHandler struct {
	records  RecordFinder
	exporter BillExporter
}

func NewBillHandler(records RecordFinder, exporter BillExporter) *BillHandler {
	return &BillHandler{records: records, exporter: exporter}
}

func (h *BillHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload BillPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	rec, err := h.records.FindByReg(ctx, payload.RegNo)
	if err != nil {
		if errors.Is(err, records.ErrStudentNotFound) {
			log.Println("⚠️ Student not found. Possibly renamed. Skipping task:", payload.RegNo)
			return nil
		}
		log.Println("❌ Failed to find student:", err)
		return err
	}

	if _, err := h.exporter.Export(ctx, rec); err != nil {
		log.Println("❌ Failed to regenerate bill:", err)
		return err
	}
	return nil
}

// RegisterHandlers ลงทะเบียน Handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux, bills *BillHandler) {
	mux.Handle(TypeGenerateBill, bills)
}

// StartWorker runs the asynq server in the background. Call Shutdown on exit.
func StartWorker(redisAddr string, mux *asynq.ServeMux) (*asynq.Server, error) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)
	if err := srv.Start(mux); err != nil {
		return nil, err
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
