package models

// LoginRequest ฟอร์มเข้าสู่ระบบของนักศึกษา
type LoginRequest struct {
	Reg string `form:"reg" validate:"required"`
	DOB string `form:"dob" validate:"required"`
}

// FieldUpdateRequest ฟอร์มแก้ไขข้อมูลจากหน้า admin
type FieldUpdateRequest struct {
	Reg   string `form:"reg" validate:"required"`
	Field string `form:"field" validate:"required"`
	Value string `form:"value"`
}

// PaymentRequest ฟอร์มบันทึกการชำระเงิน
type PaymentRequest struct {
	Reg    string `form:"reg" validate:"required"`
	Amount string `form:"amount" validate:"required"`
}

// ErrorResponse body of every JSON error under /api
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
