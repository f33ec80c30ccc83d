package stats

type OverallStatsResponse struct {
	TotalEmployees          int64 `json:"total_employees"`
	EmployeesWithAttendance int64 `json:"employees_with_attendance"`
	TotalAttendanceRecords  int64 `json:"total_attendance_records"`
	TotalPresent            int64 `json:"total_present"`
	TotalAbsent             int64 `json:"total_absent"`
}

type TodayStatsResponse struct {
	Date                 string  `json:"date"`
	PresentToday         int64   `json:"present_today"`
	AbsentToday          int64   `json:"absent_today"`
	AttendanceMarked     int64   `json:"attendance_marked"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type EmployeeSummaryResponse struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	TotalDays   int64  `json:"total_days"`
	PresentDays int64  `json:"present_days"`
	AbsentDays  int64  `json:"absent_days"`
}
