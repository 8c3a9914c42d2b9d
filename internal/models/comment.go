package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CommentMaxLength = 500

type Comment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID       primitive.ObjectID `bson:"product_id" json:"productId"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName        string             `bson:"user_name" json:"userName"`
	Comment         string             `bson:"comment" json:"comment"`
	Rating          *int               `bson:"rating,omitempty" json:"rating,omitempty"`
	IsVerifiedBuyer bool               `bson:"is_verified_buyer" json:"isVerifiedBuyer"`
	IsVisible       bool               `bson:"is_visible" json:"isVisible"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}
