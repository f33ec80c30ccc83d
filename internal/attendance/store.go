package attendance

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-backend/internal/platform/db"
)

type Store interface {
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)
	Insert(ctx context.Context, rec Record) (primitive.ObjectID, error)
	// List returns matching records sorted by date descending.
	List(ctx context.Context, q ListQuery) ([]Record, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type mongoStore struct {
	coll *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{coll: database.Collection(db.CollAttendance)}
}

func (s *mongoStore) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error) {
	var r Record
	err := s.coll.FindOne(ctx, bson.M{"employee_id": employeeID, "date": date}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *mongoStore) Insert(ctx context.Context, rec Record) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (s *mongoStore) List(ctx context.Context, q ListQuery) ([]Record, error) {
	filter := bson.M{}
	if q.EmployeeID != nil && *q.EmployeeID != "" {
		filter["employee_id"] = *q.EmployeeID
	}
	if q.Date != nil && *q.Date != "" {
		filter["date"] = *q.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *mongoStore) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	return err
}
