package employees

import "go.mongodb.org/mongo-driver/bson/primitive"

// Employee as persisted in the employees collection. employee_id is the
// caller-chosen identifier; _id is store-assigned.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	FullName   string             `bson:"full_name"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
}

func (e Employee) toDTO() EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.Hex(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
	}
}
