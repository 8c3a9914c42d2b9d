package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdPlacementBanner   = "banner"
	AdPlacementTableRow = "table-row"

	AdStatusPending = "pending"
	AdStatusActive  = "active"
	AdStatusExpired = "expired"
)

type Ad struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	ImageURL  string             `bson:"image_url" json:"imageUrl"`
	Link      string             `bson:"link" json:"link"`
	Placement string             `bson:"placement" json:"placement"`
	Status    string             `bson:"status" json:"status"`
	SponsorID primitive.ObjectID `bson:"sponsor_id,omitempty" json:"sponsorId,omitempty"`
	StartDate time.Time          `bson:"start_date" json:"startDate"`
	EndDate   time.Time          `bson:"end_date" json:"endDate"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidAdStatus(s string) bool {
	return s == AdStatusPending || s == AdStatusActive || s == AdStatusExpired
}
