package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tenantguard-be/models"
)

func (s *MongoStore) ListProperties(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	query := bson.M{}
	if filter.Query != "" {
		query["$or"] = []bson.M{
			{"address": containsFold(filter.Query)},
			{"city": containsFold(filter.Query)},
			{"postalCode": containsFold(filter.Query)},
		}
	}
	if filter.City != "" {
		query["city"] = exactFold(filter.City)
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	return findAll[models.Property](ctx, s.coll(PropertiesCollection), query, opts)
}

func (s *MongoStore) GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	if err := s.findOne(ctx, PropertiesCollection, bson.M{"_id": id}, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *MongoStore) GetPropertiesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}
	return findAll[models.Property](ctx, s.coll(PropertiesCollection), bson.M{"_id": bson.M{"$in": ids}})
}

// FindPropertyByAddress matches address and city exactly, ignoring case.
func (s *MongoStore) FindPropertyByAddress(ctx context.Context, address, city string) (*models.Property, error) {
	var property models.Property
	filter := bson.M{"address": exactFold(address), "city": exactFold(city)}
	if err := s.findOne(ctx, PropertiesCollection, filter, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *MongoStore) CreateProperty(ctx context.Context, property *models.Property) error {
	ensureID(&property.ID)
	ensureTimes(&property.CreatedAt, &property.UpdatedAt)
	return s.insert(ctx, PropertiesCollection, property)
}

func (s *MongoStore) CreateLandlord(ctx context.Context, landlord *models.Landlord) error {
	ensureID(&landlord.ID)
	ensureTimes(&landlord.CreatedAt, &landlord.UpdatedAt)
	return s.insert(ctx, LandlordsCollection, landlord)
}

func (s *MongoStore) GetLandlord(ctx context.Context, id primitive.ObjectID) (*models.Landlord, error) {
	var landlord models.Landlord
	if err := s.findOne(ctx, LandlordsCollection, bson.M{"_id": id}, &landlord); err != nil {
		return nil, err
	}
	return &landlord, nil
}

func (s *MongoStore) FindLandlordByUser(ctx context.Context, userID primitive.ObjectID) (*models.Landlord, error) {
	var landlord models.Landlord
	if err := s.findOne(ctx, LandlordsCollection, bson.M{"userId": userID}, &landlord); err != nil {
		return nil, err
	}
	return &landlord, nil
}

func (s *MongoStore) CreateRating(ctx context.Context, rating *models.Rating) error {
	ensureID(&rating.ID)
	ensureTimes(&rating.CreatedAt, &rating.UpdatedAt)
	if rating.Pros == nil {
		rating.Pros = []string{}
	}
	if rating.Cons == nil {
		rating.Cons = []string{}
	}
	return s.insert(ctx, RatingsCollection, rating)
}

func (s *MongoStore) ListRatingsByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Rating, error) {
	return findAll[models.Rating](ctx, s.coll(RatingsCollection), bson.M{"propertyId": propertyID}, newestFirst)
}

func (s *MongoStore) ListRatingsByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]models.Rating, error) {
	if len(propertyIDs) == 0 {
		return []models.Rating{}, nil
	}
	return findAll[models.Rating](ctx, s.coll(RatingsCollection), bson.M{"propertyId": bson.M{"$in": propertyIDs}})
}
