package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promo est un code de réduction en pourcentage, valable sur une fenêtre
// [StartDate, EndDate]. Restriction optionnelle à un ensemble de produits
// ou à une catégorie ; sans restriction le code s'applique à tout le panier.
// Aucun compteur d'utilisation : un code est réutilisable tant que la
// fenêtre est ouverte.
type Promo struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code       string             `bson:"code" json:"code"`
	Discount   float64            `bson:"discount" json:"discount"`
	StartDate  time.Time          `bson:"start_date" json:"startDate"`
	EndDate    time.Time          `bson:"end_date" json:"endDate"`
	ProductIDs []string           `bson:"product_ids,omitempty" json:"productIds,omitempty"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
