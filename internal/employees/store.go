package employees

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hrms-backend/internal/platform/db"
)

type Store interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Insert(ctx context.Context, e Employee) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]Employee, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
	// FullName resolves the display name for an employee_id; ok is false
	// when no such employee exists.
	FullName(ctx context.Context, employeeID string) (name string, ok bool, err error)
}

type mongoStore struct {
	coll *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{coll: database.Collection(db.CollEmployees)}
}

func (s *mongoStore) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	return s.findOne(ctx, bson.M{"employee_id": employeeID})
}

func (s *mongoStore) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoStore) findOne(ctx context.Context, filter bson.M) (*Employee, error) {
	var e Employee
	err := s.coll.FindOne(ctx, filter).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *mongoStore) Insert(ctx context.Context, e Employee) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, e)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (s *mongoStore) FindAll(ctx context.Context) ([]Employee, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Employee
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *mongoStore) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *mongoStore) FullName(ctx context.Context, employeeID string) (string, bool, error) {
	e, err := s.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return "", false, err
	}
	if e == nil {
		return "", false, nil
	}
	return e.FullName, true, nil
}
