package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchlistEntry is a saved-property bookmark
type WatchlistEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
