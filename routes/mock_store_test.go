package routes

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/models"
	"tenantguard-be/store"
)

type mockStore struct {
	mock.Mock
}

var _ store.Interface = (*mockStore)(nil)

func (m *mockStore) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockStore) ListProperties(ctx context.Context, filter store.PropertyFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	p, _ := args.Get(0).([]models.Property)
	return p, args.Error(1)
}

func (m *mockStore) GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Property)
	return p, args.Error(1)
}

func (m *mockStore) GetPropertiesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]models.Property)
	return p, args.Error(1)
}

func (m *mockStore) FindPropertyByAddress(ctx context.Context, address, city string) (*models.Property, error) {
	args := m.Called(ctx, address, city)
	p, _ := args.Get(0).(*models.Property)
	return p, args.Error(1)
}

func (m *mockStore) CreateProperty(ctx context.Context, property *models.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *mockStore) CreateLandlord(ctx context.Context, landlord *models.Landlord) error {
	return m.Called(ctx, landlord).Error(0)
}

func (m *mockStore) GetLandlord(ctx context.Context, id primitive.ObjectID) (*models.Landlord, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*models.Landlord)
	return l, args.Error(1)
}

func (m *mockStore) FindLandlordByUser(ctx context.Context, userID primitive.ObjectID) (*models.Landlord, error) {
	args := m.Called(ctx, userID)
	l, _ := args.Get(0).(*models.Landlord)
	return l, args.Error(1)
}

func (m *mockStore) CreateRating(ctx context.Context, rating *models.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *mockStore) ListRatingsByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Rating, error) {
	args := m.Called(ctx, propertyID)
	r, _ := args.Get(0).([]models.Rating)
	return r, args.Error(1)
}

func (m *mockStore) ListRatingsByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]models.Rating, error) {
	args := m.Called(ctx, propertyIDs)
	r, _ := args.Get(0).([]models.Rating)
	return r, args.Error(1)
}

func (m *mockStore) CreateReport(ctx context.Context, report *models.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *mockStore) GetReport(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.Report)
	return r, args.Error(1)
}

func (m *mockStore) ListReportsByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Report, error) {
	args := m.Called(ctx, propertyID)
	r, _ := args.Get(0).([]models.Report)
	return r, args.Error(1)
}

func (m *mockStore) ListReportsByProperties(ctx context.Context, propertyIDs []primitive.ObjectID) ([]models.Report, error) {
	args := m.Called(ctx, propertyIDs)
	r, _ := args.Get(0).([]models.Report)
	return r, args.Error(1)
}

func (m *mockStore) ListReportsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Report, error) {
	args := m.Called(ctx, userID)
	r, _ := args.Get(0).([]models.Report)
	return r, args.Error(1)
}

func (m *mockStore) UpdateReportStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) (*models.Report, error) {
	args := m.Called(ctx, id, status)
	r, _ := args.Get(0).(*models.Report)
	return r, args.Error(1)
}

func (m *mockStore) ConfirmReport(ctx context.Context, reportID, userID primitive.ObjectID) error {
	return m.Called(ctx, reportID, userID).Error(0)
}

func (m *mockStore) CountConfirmations(ctx context.Context, reportID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) CountConfirmationsByReports(ctx context.Context, reportIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	args := m.Called(ctx, reportIDs)
	c, _ := args.Get(0).(map[primitive.ObjectID]int64)
	return c, args.Error(1)
}

func (m *mockStore) AddReportContact(ctx context.Context, contact *models.ReportContact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *mockStore) ListReportContacts(ctx context.Context, reportID primitive.ObjectID) ([]models.ReportContact, error) {
	args := m.Called(ctx, reportID)
	c, _ := args.Get(0).([]models.ReportContact)
	return c, args.Error(1)
}

func (m *mockStore) ClaimResidence(ctx context.Context, userID, propertyID primitive.ObjectID) (*models.TenantResidence, error) {
	args := m.Called(ctx, userID, propertyID)
	r, _ := args.Get(0).(*models.TenantResidence)
	return r, args.Error(1)
}

func (m *mockStore) HasResidence(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) GetClaim(ctx context.Context, userID, propertyID primitive.ObjectID) (*models.PropertyClaim, error) {
	args := m.Called(ctx, userID, propertyID)
	c, _ := args.Get(0).(*models.PropertyClaim)
	return c, args.Error(1)
}

func (m *mockStore) SetClaimStatus(ctx context.Context, userID, propertyID primitive.ObjectID, status models.ClaimStatus) (*models.PropertyClaim, error) {
	args := m.Called(ctx, userID, propertyID, status)
	c, _ := args.Get(0).(*models.PropertyClaim)
	return c, args.Error(1)
}

func (m *mockStore) ToggleWatchlist(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) IsSaved(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) ListWatchlist(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	w, _ := args.Get(0).([]models.WatchlistEntry)
	return w, args.Error(1)
}

func (m *mockStore) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	return m.Called(ctx, inquiry).Error(0)
}

func (m *mockStore) CreateRentCheck(ctx context.Context, check *models.RentCheck) error {
	return m.Called(ctx, check).Error(0)
}
