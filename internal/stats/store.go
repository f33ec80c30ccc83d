package stats

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hrms-backend/internal/platform/db"
)

// AttendanceFilter narrows attendance counts; zero-value fields are ignored.
type AttendanceFilter struct {
	EmployeeID string
	Date       string
	Status     string
}

type Store interface {
	CountEmployees(ctx context.Context) (int64, error)
	EmployeeFullName(ctx context.Context, employeeID string) (name string, ok bool, err error)
	CountAttendance(ctx context.Context, f AttendanceFilter) (int64, error)
	// CountAttendedEmployees counts distinct employee_id values in the
	// ledger, via a group-by aggregation.
	CountAttendedEmployees(ctx context.Context) (int64, error)
}

type mongoStore struct {
	employees  *mongo.Collection
	attendance *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{
		employees:  database.Collection(db.CollEmployees),
		attendance: database.Collection(db.CollAttendance),
	}
}

func (s *mongoStore) CountEmployees(ctx context.Context) (int64, error) {
	return s.employees.CountDocuments(ctx, bson.M{})
}

func (s *mongoStore) EmployeeFullName(ctx context.Context, employeeID string) (string, bool, error) {
	var e struct {
		FullName string `bson:"full_name"`
	}
	err := s.employees.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.FullName, true, nil
}

func (s *mongoStore) CountAttendance(ctx context.Context, f AttendanceFilter) (int64, error) {
	filter := bson.M{}
	if f.EmployeeID != "" {
		filter["employee_id"] = f.EmployeeID
	}
	if f.Date != "" {
		filter["date"] = f.Date
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return s.attendance.CountDocuments(ctx, filter)
}

func (s *mongoStore) CountAttendedEmployees(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$employee_id"}}},
	}
	cur, err := s.attendance.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var groups []bson.M
	if err := cur.All(ctx, &groups); err != nil {
		return 0, err
	}
	return int64(len(groups)), nil
}
