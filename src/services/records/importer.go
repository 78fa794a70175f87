package records

import (
	"context"
	"fmt"
	"log"

	"Backend-Hostel-Billing/src/models"
)

// Upserter is implemented by the indexed backends (mongo, postgres).
type Upserter interface {
	Upsert(ctx context.Context, rec *models.StudentRecord) error
}

// Import copies every record of src into dst and returns how many were written.
// Rows without a Reg No are skipped.
func Import(ctx context.Context, src Store, dst Upserter) (int, error) {
	recs, err := src.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source records: %w", err)
	}

	n := 0
	for _, rec := range recs {
		if rec.RegNo() == "" {
			log.Println("⚠️ skipping row without Reg No")
			continue
		}
		if err := dst.Upsert(ctx, rec); err != nil {
			return n, fmt.Errorf("import %s: %w", rec.RegNo(), err)
		}
		n++
	}
	log.Printf("✅ imported %d student records", n)
	return n, nil
}
