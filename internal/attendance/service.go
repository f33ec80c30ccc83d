package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hrms-backend/internal/platform/apierr"
)

// EmployeeDirectory is the slice of the employee store the ledger needs:
// name resolution doubles as the existence check.
type EmployeeDirectory interface {
	FullName(ctx context.Context, employeeID string) (name string, ok bool, err error)
}

type Service struct {
	store     Store
	employees EmployeeDirectory
}

func NewService(store Store, employees EmployeeDirectory) *Service {
	return &Service{store: store, employees: employees}
}

// POST /attendance
func (s *Service) Mark(ctx context.Context, in MarkAttendanceRequest) (AttendanceResponse, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return AttendanceResponse{}, apierr.Invalid("employee_id must not be empty")
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return AttendanceResponse{}, apierr.Invalid("date must be YYYY-MM-DD")
	}
	status, err := ParseStatus(in.Status)
	if err != nil {
		return AttendanceResponse{}, apierr.Invalid("status must be Present or Absent")
	}

	fullName, ok, err := s.employees.FullName(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !ok {
		return AttendanceResponse{}, apierr.NotFound(fmt.Sprintf("employee with ID %q not found", employeeID))
	}

	// Read-then-write: one record per (employee_id, date), not backed by a
	// unique index. Accepted limitation.
	existing, err := s.store.FindByEmployeeAndDate(ctx, employeeID, in.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, apierr.Duplicate(fmt.Sprintf("attendance already marked for %s", in.Date))
	}

	rec := Record{EmployeeID: employeeID, Date: in.Date, Status: status}
	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return AttendanceResponse{}, err
	}
	rec.ID = id
	return rec.toDTO(fullName), nil
}

// GET /attendance
func (s *Service) List(ctx context.Context, q ListQuery) ([]AttendanceResponse, error) {
	rows, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]AttendanceResponse, 0, len(rows))
	for _, rec := range rows {
		fullName, ok, err := s.employees.FullName(ctx, rec.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fullName = UnknownEmployeeName
		}
		out = append(out, rec.toDTO(fullName))
	}
	return out, nil
}
