package employees

// ===== Requests =====

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// ===== Responses =====

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
