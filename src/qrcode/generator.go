package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode สร้าง QR Code เป็น PNG จากข้อมูลที่กำหนด
func GenerateQRCode(data string, size int) ([]byte, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
