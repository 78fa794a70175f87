package reports

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"time"

	"Backend-Hostel-Billing/src/qrcode"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// TemplateRenderer is satisfied by the fiber html view engine.
type TemplateRenderer interface {
	Render(out io.Writer, name string, binding interface{}, layout ...string) error
}

// ChromeRenderer prints the "bill" view to PDF with headless Chrome.
type ChromeRenderer struct {
	views   TemplateRenderer
	timeout time.Duration
}

func NewChromeRenderer(views TemplateRenderer, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeRenderer{views: views, timeout: timeout}
}

func (r *ChromeRenderer) Render(ctx context.Context, bill Bill) ([]byte, error) {
	var qr template.URL
	if png, err := qrcode.GenerateQRCode(bill.QRPayload, 256); err == nil {
		qr = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	var html bytes.Buffer
	if err := r.views.Render(&html, "bill", map[string]interface{}{
		"Bill":   bill,
		"QRCode": qr,
	}); err != nil {
		return nil, fmt.Errorf("render bill view: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html.String()).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print bill %s: %w", bill.RegNo, err)
	}
	return pdf, nil
}
