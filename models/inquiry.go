package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry is a renter lead sent about a property; no account required
type Inquiry struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PropertyID primitive.ObjectID  `bson:"propertyId" json:"propertyId"`
	Name       string              `bson:"name" json:"name"`
	Email      string              `bson:"email" json:"email"`
	Message    string              `bson:"message" json:"message"`
	UserID     *primitive.ObjectID `bson:"userId,omitempty" json:"userId"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

// RentCheck stores the outcome of a rent increase legality check
type RentCheck struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Province  string             `bson:"province" json:"province"`
	Year      *int               `bson:"year,omitempty" json:"year"`
	Base      float64            `bson:"base" json:"base"`
	Proposed  float64            `bson:"proposed" json:"proposed"`
	Pct       float64            `bson:"pct" json:"pct"`
	MajorWork bool               `bson:"majorWork" json:"majorWork"`
	Result    string             `bson:"result" json:"result"`
	Explain   string             `bson:"explain" json:"explain"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
