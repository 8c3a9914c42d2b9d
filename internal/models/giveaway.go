package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GiveawayEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	EnteredAt time.Time          `bson:"entered_at" json:"enteredAt"`
}
