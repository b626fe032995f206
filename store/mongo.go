package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tenantguard-be/models"
)

// MongoStore implements Interface on a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

var _ Interface = (*MongoStore)(nil)

func (s *MongoStore) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// findOne decodes the first match of filter into out, mapping "no documents"
// to ErrNotFound.
func (s *MongoStore) findOne(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	err := s.coll(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	return nil
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// findAll decodes every match of filter into out.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func (s *MongoStore) insert(ctx context.Context, collection string, doc interface{}) error {
	_, err := s.coll(collection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func ensureID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

func ensureTimes(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated != nil && updated.IsZero() {
		*updated = *created
	}
}

// exactFold matches value exactly, ignoring case.
func exactFold(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

// containsFold matches value anywhere, ignoring case.
func containsFold(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// CreateUser inserts user; a taken email yields ErrDuplicate.
func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	ensureID(&user.ID)
	ensureTimes(&user.CreatedAt, &user.UpdatedAt)
	return s.insert(ctx, UsersCollection, user)
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.findOne(ctx, UsersCollection, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.findOne(ctx, UsersCollection, bson.M{"_id": id}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	ensureID(&inquiry.ID)
	ensureTimes(&inquiry.CreatedAt, nil)
	return s.insert(ctx, InquiriesCollection, inquiry)
}

func (s *MongoStore) CreateRentCheck(ctx context.Context, check *models.RentCheck) error {
	ensureID(&check.ID)
	ensureTimes(&check.CreatedAt, nil)
	return s.insert(ctx, RentChecksCollection, check)
}
