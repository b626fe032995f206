package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection         = "users"
	PropertiesCollection    = "properties"
	LandlordsCollection     = "landlords"
	RatingsCollection       = "ratings"
	ReportsCollection       = "reports"
	ConfirmationsCollection = "report_confirmations"
	ContactsCollection      = "report_contacts"
	ResidencesCollection    = "tenant_residences"
	ClaimsCollection        = "property_claims"
	WatchlistsCollection    = "watchlists"
	InquiriesCollection     = "inquiries"
	RentChecksCollection    = "rent_checks"
)

func uniquePair(first, second string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: first, Value: 1}, {Key: second, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func ascending(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

// indexPlan lists the indexes of every collection. The compound unique
// indexes are what make confirmations, residences, claims and watchlist
// entries single per (subject, user).
func indexPlan() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		LandlordsCollection:     {ascending("userId")},
		RatingsCollection:       {ascending("propertyId")},
		ReportsCollection:       {ascending("propertyId"), ascending("userId")},
		ConfirmationsCollection: {uniquePair("reportId", "userId")},
		ContactsCollection:      {ascending("reportId")},
		ResidencesCollection:    {uniquePair("userId", "propertyId")},
		ClaimsCollection:        {uniquePair("userId", "propertyId")},
		WatchlistsCollection:    {uniquePair("userId", "propertyId")},
	}
}

// EnsureIndexes creates the indexes the store relies on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for name, idx := range indexPlan() {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
