package attendance

const DateLayout = "2006-01-02"

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Status     string `json:"status" binding:"required"`
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type ListQuery struct {
	EmployeeID *string
	Date       *string
}
