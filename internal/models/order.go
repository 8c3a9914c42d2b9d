package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuts de commande et de paiement.
const (
	OrderPlaced     = "Placed"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"

	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// OrderItem est une ligne de commande avec snapshot dénormalisé du produit
// (nom, image, prix au moment de l'achat).
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	CustomerName    string             `bson:"customer_name" json:"customerName"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"total_amount" json:"totalAmount"`
	PromoCode       string             `bson:"promo_code,omitempty" json:"promoCode,omitempty"`
	Location        Location           `bson:"location" json:"location"`
	Status          string             `bson:"status" json:"status"`
	PaymentStatus   string             `bson:"payment_status" json:"paymentStatus"`
	PaymentIntentID string             `bson:"payment_intent_id,omitempty" json:"-"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ValidOrderStatus valide les transitions autorisées côté admin.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPlaced, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}
