package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location est l'adresse de livraison embarquée sur le user
// (et copiée sur la commande au moment du checkout).
type Location struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password,omitempty" json:"-"`
	GoogleID  string               `bson:"google_id,omitempty" json:"-"`
	IsAdmin   bool                 `bson:"is_admin" json:"isAdmin"`
	IsBanned  bool                 `bson:"is_banned" json:"isBanned"`
	Location  Location             `bson:"location" json:"location"`
	Favorites []primitive.ObjectID `bson:"favorites" json:"favorites"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}

// DefaultLocation reprend les valeurs par défaut du schéma d'origine.
func DefaultLocation() Location {
	return Location{
		Address:    "Unknown",
		City:       "Unknown",
		State:      "Unknown",
		PostalCode: "00000",
		Country:    "Unknown",
	}
}
