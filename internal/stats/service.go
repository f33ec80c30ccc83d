package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/platform/apierr"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// GET /stats
func (s *Service) Overall(ctx context.Context) (OverallStatsResponse, error) {
	totalEmployees, err := s.store.CountEmployees(ctx)
	if err != nil {
		return OverallStatsResponse{}, err
	}
	attended, err := s.store.CountAttendedEmployees(ctx)
	if err != nil {
		return OverallStatsResponse{}, err
	}
	totalRecords, err := s.store.CountAttendance(ctx, AttendanceFilter{})
	if err != nil {
		return OverallStatsResponse{}, err
	}
	present, err := s.store.CountAttendance(ctx, AttendanceFilter{Status: string(attendance.StatusPresent)})
	if err != nil {
		return OverallStatsResponse{}, err
	}
	return OverallStatsResponse{
		TotalEmployees:          totalEmployees,
		EmployeesWithAttendance: attended,
		TotalAttendanceRecords:  totalRecords,
		TotalPresent:            present,
		// derived, not re-queried, so it matches the same snapshot as total
		TotalAbsent: totalRecords - present,
	}, nil
}

// GET /stats/today
func (s *Service) Today(ctx context.Context) (TodayStatsResponse, error) {
	today := s.now().Format(attendance.DateLayout)

	totalEmployees, err := s.store.CountEmployees(ctx)
	if err != nil {
		return TodayStatsResponse{}, err
	}
	marked, err := s.store.CountAttendance(ctx, AttendanceFilter{Date: today})
	if err != nil {
		return TodayStatsResponse{}, err
	}
	present, err := s.store.CountAttendance(ctx, AttendanceFilter{
		Date:   today,
		Status: string(attendance.StatusPresent),
	})
	if err != nil {
		return TodayStatsResponse{}, err
	}

	var pct float64
	if totalEmployees > 0 {
		pct = roundTo2(float64(marked) / float64(totalEmployees) * 100)
	}
	return TodayStatsResponse{
		Date:                 today,
		PresentToday:         present,
		AbsentToday:          marked - present,
		AttendanceMarked:     marked,
		AttendancePercentage: pct,
	}, nil
}

// GET /attendance/summary/:employee_id
func (s *Service) Summary(ctx context.Context, employeeID string) (EmployeeSummaryResponse, error) {
	fullName, ok, err := s.store.EmployeeFullName(ctx, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	if !ok {
		return EmployeeSummaryResponse{}, apierr.NotFound(fmt.Sprintf("employee with ID %q not found", employeeID))
	}

	total, err := s.store.CountAttendance(ctx, AttendanceFilter{EmployeeID: employeeID})
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	present, err := s.store.CountAttendance(ctx, AttendanceFilter{
		EmployeeID: employeeID,
		Status:     string(attendance.StatusPresent),
	})
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	return EmployeeSummaryResponse{
		EmployeeID:  employeeID,
		FullName:    fullName,
		TotalDays:   total,
		PresentDays: present,
		AbsentDays:  total - present,
	}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
