package employees

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"hrms-backend/internal/platform/apierr"
)

// AttendanceLedger is the slice of the attendance store the directory needs
// for the delete cascade.
type AttendanceLedger interface {
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type Service struct {
	store  Store
	ledger AttendanceLedger
}

func NewService(store Store, ledger AttendanceLedger) *Service {
	return &Service{store: store, ledger: ledger}
}

// POST /employees
func (s *Service) Create(ctx context.Context, in CreateEmployeeRequest) (EmployeeResponse, error) {
	e := Employee{
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.TrimSpace(in.Email),
		Department: strings.TrimSpace(in.Department),
	}
	if e.EmployeeID == "" {
		return EmployeeResponse{}, apierr.Invalid("employee_id must not be empty")
	}
	if e.FullName == "" {
		return EmployeeResponse{}, apierr.Invalid("full_name must not be empty")
	}
	if e.Department == "" {
		return EmployeeResponse{}, apierr.Invalid("department must not be empty")
	}
	if addr, err := mail.ParseAddress(e.Email); err != nil || addr.Address != e.Email {
		return EmployeeResponse{}, apierr.Invalid("email is not a valid address")
	}

	// Read-then-write uniqueness: no unique index backs these checks, so two
	// racing creates with the same key can both pass. Accepted limitation.
	if existing, err := s.store.FindByEmployeeID(ctx, e.EmployeeID); err != nil {
		return EmployeeResponse{}, err
	} else if existing != nil {
		return EmployeeResponse{}, apierr.Duplicate(fmt.Sprintf("employee ID %q already exists", e.EmployeeID))
	}
	if existing, err := s.store.FindByEmail(ctx, e.Email); err != nil {
		return EmployeeResponse{}, err
	} else if existing != nil {
		return EmployeeResponse{}, apierr.Duplicate(fmt.Sprintf("email %q already exists", e.Email))
	}

	id, err := s.store.Insert(ctx, e)
	if err != nil {
		return EmployeeResponse{}, err
	}
	e.ID = id
	return e.toDTO(), nil
}

// GET /employees
func (s *Service) List(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, e.toDTO())
	}
	return out, nil
}

// DELETE /employees/:employee_id
// The attendance cascade runs after the employee delete and is not atomic
// with it: a cascade failure leaves orphaned records behind.
func (s *Service) Delete(ctx context.Context, employeeID string) error {
	deleted, err := s.store.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apierr.NotFound(fmt.Sprintf("employee with ID %q not found", employeeID))
	}
	return s.ledger.DeleteByEmployeeID(ctx, employeeID)
}
