package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tenantguard-be/models"
)

func pairFilter(userID, propertyID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "propertyId": propertyID}
}

// ClaimResidence creates (or returns) the residence of userID at propertyID
// and opens a pending claim for it. Existing claims keep their status.
func (s *MongoStore) ClaimResidence(ctx context.Context, userID, propertyID primitive.ObjectID) (*models.TenantResidence, error) {
	now := time.Now().UTC()
	filter := pairFilter(userID, propertyID)
	upsert := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var residence models.TenantResidence
	err := s.coll(ResidencesCollection).FindOneAndUpdate(ctx, filter, bson.M{
		"$setOnInsert": bson.M{"userId": userID, "propertyId": propertyID, "createdAt": now},
	}, upsert).Decode(&residence)
	if mongo.IsDuplicateKeyError(err) {
		err = s.findOne(ctx, ResidencesCollection, filter, &residence)
	}
	if err != nil {
		return nil, fmt.Errorf("claim residence: %w", err)
	}

	_, err = s.coll(ClaimsCollection).UpdateOne(ctx, filter, bson.M{
		"$setOnInsert": bson.M{
			"userId":     userID,
			"propertyId": propertyID,
			"status":     models.ClaimPending,
			"createdAt":  now,
			"updatedAt":  now,
		},
	}, options.Update().SetUpsert(true))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, fmt.Errorf("open property claim: %w", err)
	}

	return &residence, nil
}

func (s *MongoStore) HasResidence(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	n, err := s.coll(ResidencesCollection).CountDocuments(ctx, pairFilter(userID, propertyID), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check residence: %w", err)
	}
	return n > 0, nil
}

func (s *MongoStore) GetClaim(ctx context.Context, userID, propertyID primitive.ObjectID) (*models.PropertyClaim, error) {
	var claim models.PropertyClaim
	if err := s.findOne(ctx, ClaimsCollection, pairFilter(userID, propertyID), &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (s *MongoStore) SetClaimStatus(ctx context.Context, userID, propertyID primitive.ObjectID, status models.ClaimStatus) (*models.PropertyClaim, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var claim models.PropertyClaim
	err := s.coll(ClaimsCollection).FindOneAndUpdate(ctx, pairFilter(userID, propertyID), update, opts).Decode(&claim)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set claim status: %w", err)
	}
	return &claim, nil
}

func userFilter(userID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID}
}
