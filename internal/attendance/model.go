package attendance

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is a closed enumeration: anything but the two literals below is
// rejected at the boundary.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent:
		return StatusPresent, nil
	case StatusAbsent:
		return StatusAbsent, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// UnknownEmployeeName is returned in place of full_name when the referenced
// employee no longer exists (deleted without the cascade completing).
const UnknownEmployeeName = "Unknown"

// Record as persisted in the attendance collection. full_name is never
// stored; it is resolved from the employee at response time.
type Record struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       string             `bson:"date"` // YYYY-MM-DD
	Status     Status             `bson:"status"`
}

func (r Record) toDTO(fullName string) AttendanceResponse {
	return AttendanceResponse{
		ID:         r.ID.Hex(),
		EmployeeID: r.EmployeeID,
		FullName:   fullName,
		Date:       r.Date,
		Status:     string(r.Status),
	}
}
