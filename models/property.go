package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a rental building registered through the intake form
type Property struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Address    string              `bson:"address" json:"address"`
	City       string              `bson:"city" json:"city"`
	Province   string              `bson:"province" json:"province"`
	PostalCode string              `bson:"postalCode" json:"postalCode"`
	LandlordID *primitive.ObjectID `bson:"landlordId,omitempty" json:"landlordId"`
	YearBuilt  *int                `bson:"yearBuilt,omitempty" json:"yearBuilt"`
	NumUnits   *int                `bson:"numUnits,omitempty" json:"numUnits"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Landlord holds the contact channels shown to approved tenants.
// Email and Phone must never be serialized directly; responses go through
// services.LandlordContactView.
type Landlord struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email,omitempty" json:"-"`
	Phone     string              `bson:"phone,omitempty" json:"-"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// PropertySummary aggregates the ratings of one property
type PropertySummary struct {
	OverallAvg     *float64 `json:"overallAvg"`
	MaintenanceAvg *float64 `json:"maintenanceAvg"`
	NoiseAvg       *float64 `json:"noiseAvg"`
	ResponseAvg    *float64 `json:"responseAvg"`
	TopPros        []string `json:"topPros"`
	TopCons        []string `json:"topCons"`
	Count          int      `json:"count"`
}

// RatingsSummary is the compact average/count pair used in listings
type RatingsSummary struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}
