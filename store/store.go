// Package store is the data-access layer. Controllers depend on Interface;
// MongoStore is the production implementation.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/models"
)

var (
	// ErrNotFound is returned when a looked-up document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate document")
)

// PropertyFilter narrows ListProperties. Query matches address, city or
// postal code; City is an exact, case-insensitive match.
type PropertyFilter struct {
	Query string
	City  string
	Limit int64
}

// Interface lists every query the HTTP layer needs.
type Interface interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	ListProperties(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	GetPropertiesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error)
	FindPropertyByAddress(ctx context.Context, address, city string) (*models.Property, error)
	CreateProperty(ctx context.Context, property *models.Property) error

	CreateLandlord(ctx context.Context, landlord *models.Landlord) error
	GetLandlord(ctx context.Context, id primitive.ObjectID) (*models.Landlord, error)
	FindLandlordByUser(ctx context.Context, userID primitive.ObjectID) (*models.Landlord, error)

	CreateRating(ctx context.Context, rating *models.Rating) error
	ListRatingsByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Rating, error)
	ListRatingsByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]models.Rating, error)

	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	ListReportsByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Report, error)
	ListReportsByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]models.Report, error)
	ListReportsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) (*models.Report, error)

	ConfirmReport(ctx context.Context, reportID, userID primitive.ObjectID) error
	CountConfirmations(ctx context.Context, reportID primitive.ObjectID) (int64, error)
	CountConfirmationsByReports(ctx context.Context, reportIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error)

	AddReportContact(ctx context.Context, contact *models.ReportContact) error
	ListReportContacts(ctx context.Context, reportID primitive.ObjectID) ([]models.ReportContact, error)

	ClaimResidence(ctx context.Context, userID, propertyID primitive.ObjectID) (*models.TenantResidence, error)
	HasResidence(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	GetClaim(ctx context.Context, userID, propertyID primitive.ObjectID) (*models.PropertyClaim, error)
	SetClaimStatus(ctx context.Context, userID, propertyID primitive.ObjectID, status models.ClaimStatus) (*models.PropertyClaim, error)

	ToggleWatchlist(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	IsSaved(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	ListWatchlist(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error)

	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	CreateRentCheck(ctx context.Context, check *models.RentCheck) error
}
