package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is one tenant's scorecard for a property
type Rating struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID  primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Overall     int                `bson:"overall" json:"overall"`
	Maintenance *int               `bson:"maintenance,omitempty" json:"maintenance"`
	Noise       *int               `bson:"noise,omitempty" json:"noise"`
	Response    *int               `bson:"response,omitempty" json:"response"`
	Note        *string            `bson:"note,omitempty" json:"note"`
	Pros        []string           `bson:"pros" json:"pros"`
	Cons        []string           `bson:"cons" json:"cons"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
