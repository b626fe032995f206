package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStatus enum
type ReportStatus string

const (
	ReportOpen    ReportStatus = "open"
	ReportNew     ReportStatus = "new"
	ReportFixed   ReportStatus = "fixed"
	ReportIgnored ReportStatus = "ignored"
)

// ContactStatus enum
type ContactStatus string

const (
	ContactReported    ContactStatus = "reported"
	ContactPromisedFix ContactStatus = "promised_fix"
	ContactIgnored     ContactStatus = "ignored"
)

// Report is a maintenance or safety issue raised by a tenant
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Category   string             `bson:"category" json:"category"`
	Severity   int                `bson:"severity" json:"severity"`
	Text       string             `bson:"text" json:"text"`
	MediaURL   *string            `bson:"mediaUrl,omitempty" json:"mediaUrl"`
	Status     ReportStatus       `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReportConfirmation is an "I have this too" marker, unique per (report, user)
type ReportConfirmation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID  primitive.ObjectID `bson:"reportId" json:"reportId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReportContact is one entry of the landlord-contact timeline of a report
type ReportContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID  primitive.ObjectID `bson:"reportId" json:"reportId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Status    ContactStatus      `bson:"status" json:"status"`
	Note      *string            `bson:"note,omitempty" json:"note"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
