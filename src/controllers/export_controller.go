package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// ExportBill - สร้างใบแจ้งหนี้ PDF ของนักศึกษาที่ login อยู่และส่งเป็นไฟล์แนบ
// The rendered bytes are sent directly; the file on disk may be rewritten at
// any moment by another export or the bill worker.
func (h *Handler) ExportBill(c *fiber.Ctx) error {
	rec, err := h.currentStudent(c)
	if err != nil {
		return err
	}

	exported, err := h.Exporter.Export(c.UserContext(), rec)
	if err != nil {
		return err
	}
	c.Attachment(exported.FileName)
	return c.Send(exported.Data)
}
