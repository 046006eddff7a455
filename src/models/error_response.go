package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int         `json:"status"`            // HTTP Status Code
	Code    string      `json:"code,omitempty"`    // รหัส error สำหรับ client แยกเคส เช่น TOO_EARLY
	Message string      `json:"message"`           // รายละเอียดของ Error
	Details interface{} `json:"details,omitempty"` // ข้อมูลเพิ่มเติม (เช่น เวลาที่เหลือของ TOO_EARLY)
}
