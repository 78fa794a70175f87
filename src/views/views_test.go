package views_test

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/services/billing"
	"Backend-Hostel-Billing/src/services/reports"
	"Backend-Hostel-Billing/src/testutil"
	"Backend-Hostel-Billing/src/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesLoad(t *testing.T) {
	engine := views.NewEngine()
	require.NoError(t, engine.Load())
}

func TestLoginView(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, views.NewEngine().Render(&out, "login", map[string]interface{}{"Error": "Invalid login"}))
	assert.Contains(t, out.String(), "Invalid login")
	assert.Contains(t, out.String(), `name="reg"`)
	assert.Contains(t, out.String(), `name="dob"`)
}

func TestDashboardView(t *testing.T) {
	rec := testutil.NewRecord(models.ColRegNo, "S1", "Name", "Asha", models.ColTotalPayable, "1000", models.ColTotalPaid, "600")

	var out bytes.Buffer
	require.NoError(t, views.NewEngine().Render(&out, "dashboard", map[string]interface{}{
		"Student": rec,
		"Totals":  billing.CalculateRecord(rec),
	}))
	assert.Contains(t, out.String(), "Welcome S1")
	assert.Contains(t, out.String(), `<td id="due">400</td>`)
	assert.Contains(t, out.String(), `<td id="refund">0</td>`)
}

func TestBillView(t *testing.T) {
	rec := testutil.NewRecord(models.ColRegNo, "S1", models.ColTotalPayable, "1000", models.ColTotalPaid, "600")
	bill := reports.BuildBill(rec, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC))

	var out bytes.Buffer
	require.NoError(t, views.NewEngine().Render(&out, "bill", map[string]interface{}{
		"Bill":   bill,
		"QRCode": template.URL("data:image/png;base64,AAAA"),
	}))
	html := out.String()
	assert.Contains(t, html, "Hostel &amp; Mess Bill")
	assert.Contains(t, html, "07-Mar-2026")
	assert.Contains(t, html, "<td>Due</td><td>400</td>")
	assert.Contains(t, html, `src="data:image/png;base64,AAAA"`)
}
