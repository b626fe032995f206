package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tenantguard-be/models"
)

// ToggleWatchlist flips whether propertyID is saved for userID and returns
// the new state. The delete runs first so two toggles always cancel out; an
// insert losing a race on the unique index leaves the property saved.
func (s *MongoStore) ToggleWatchlist(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	coll := s.coll(WatchlistsCollection)

	res, err := coll.DeleteOne(ctx, pairFilter(userID, propertyID))
	if err != nil {
		return false, fmt.Errorf("unsave property: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	entry := models.WatchlistEntry{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := coll.InsertOne(ctx, entry); err != nil && !mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("save property: %w", err)
	}
	return true, nil
}

func (s *MongoStore) IsSaved(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	n, err := s.coll(WatchlistsCollection).CountDocuments(ctx, pairFilter(userID, propertyID), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check watchlist: %w", err)
	}
	return n > 0, nil
}

func (s *MongoStore) ListWatchlist(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error) {
	return findAll[models.WatchlistEntry](ctx, s.coll(WatchlistsCollection), userFilter(userID), newestFirst)
}
