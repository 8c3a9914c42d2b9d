package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HeroSlide struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	CtaText     string             `bson:"cta_text" json:"ctaText"`
	CtaLink     string             `bson:"cta_link" json:"ctaLink"`
	ImageSrc    string             `bson:"image_src" json:"imageSrc"`
	Theme       string             `bson:"theme" json:"theme"`
	AltText     string             `bson:"alt_text" json:"altText"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// DefaultHeroSlides sème le carrousel quand la collection est vide.
func DefaultHeroSlides() []HeroSlide {
	now := time.Now()
	return []HeroSlide{
		{
			Title:       "Up to 50% Off This Season!",
			Description: "Discover the best deals on your favorite products. Limited time offer!",
			CtaText:     "Shop Now",
			CtaLink:     "/main/product-listing",
			ImageSrc:    "/hero-slider/hero-slide-1.jpg",
			Theme:       "Indigo",
			AltText:     "Seasonal Sale",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			Title:       "Limited Edition Arrivals!",
			Description: "Grab these exclusive pieces before they're gone!",
			CtaText:     "Get Yours Now",
			CtaLink:     "/main/product-listing?category=limited",
			ImageSrc:    "/hero-slider/hero-slide-2.jpg",
			Theme:       "Red",
			AltText:     "Limited Edition Arrivals",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			Title:       "Free Shipping on Orders Over $50",
			Description: "Shop today and enjoy free shipping on your entire order!",
			CtaText:     "Start Shopping",
			CtaLink:     "/main/product-listing",
			ImageSrc:    "/hero-slider/hero-slide-3.jpg",
			Theme:       "Orange",
			AltText:     "Free Shipping",
			IsActive:    true,
			CreatedAt:   now,
		},
	}
}
