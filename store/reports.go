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

func (s *MongoStore) CreateReport(ctx context.Context, report *models.Report) error {
	ensureID(&report.ID)
	ensureTimes(&report.CreatedAt, &report.UpdatedAt)
	if report.Status == "" {
		report.Status = models.ReportOpen
	}
	return s.insert(ctx, ReportsCollection, report)
}

func (s *MongoStore) GetReport(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	if err := s.findOne(ctx, ReportsCollection, bson.M{"_id": id}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *MongoStore) ListReportsByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Report, error) {
	return findAll[models.Report](ctx, s.coll(ReportsCollection), bson.M{"propertyId": propertyID}, newestFirst)
}

func (s *MongoStore) ListReportsByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]models.Report, error) {
	if len(propertyIDs) == 0 {
		return []models.Report{}, nil
	}
	return findAll[models.Report](ctx, s.coll(ReportsCollection), bson.M{"propertyId": bson.M{"$in": propertyIDs}})
}

func (s *MongoStore) ListReportsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Report, error) {
	return findAll[models.Report](ctx, s.coll(ReportsCollection), bson.M{"userId": userID}, newestFirst)
}

func (s *MongoStore) UpdateReportStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) (*models.Report, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report models.Report
	err := s.coll(ReportsCollection).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update report status: %w", err)
	}
	return &report, nil
}

// ConfirmReport records that userID has the issue of reportID. The upsert
// against the (reportId, userId) unique index makes repeated calls no-ops; a
// concurrent duplicate-key failure means the row already exists.
func (s *MongoStore) ConfirmReport(ctx context.Context, reportID, userID primitive.ObjectID) error {
	filter := bson.M{"reportId": reportID, "userId": userID}
	update := bson.M{"$setOnInsert": bson.M{
		"reportId":  reportID,
		"userId":    userID,
		"createdAt": time.Now().UTC(),
	}}

	_, err := s.coll(ConfirmationsCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("confirm report: %w", err)
	}
	return nil
}

func (s *MongoStore) CountConfirmations(ctx context.Context, reportID primitive.ObjectID) (int64, error) {
	n, err := s.coll(ConfirmationsCollection).CountDocuments(ctx, bson.M{"reportId": reportID})
	if err != nil {
		return 0, fmt.Errorf("count confirmations: %w", err)
	}
	return n, nil
}

// CountConfirmationsByReports groups confirmation counts by report. Reports
// without confirmations are absent from the map.
func (s *MongoStore) CountConfirmationsByReports(ctx context.Context, reportIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64, len(reportIDs))
	if len(reportIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reportId": bson.M{"$in": reportIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$reportId", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := s.coll(ConfirmationsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate confirmations: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ReportID primitive.ObjectID `bson:"_id"`
		Count    int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode confirmation counts: %w", err)
	}
	for _, r := range rows {
		counts[r.ReportID] = r.Count
	}
	return counts, nil
}

func (s *MongoStore) AddReportContact(ctx context.Context, contact *models.ReportContact) error {
	ensureID(&contact.ID)
	ensureTimes(&contact.CreatedAt, nil)
	return s.insert(ctx, ContactsCollection, contact)
}

func (s *MongoStore) ListReportContacts(ctx context.Context, reportID primitive.ObjectID) ([]models.ReportContact, error) {
	return findAll[models.ReportContact](ctx, s.coll(ContactsCollection), bson.M{"reportId": reportID}, newestFirst)
}
