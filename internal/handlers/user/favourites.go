package user

import (
	"context"
	"net/http"
	"time"

	"eshop_back_end/internal/cache"
	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Viewer distingue un visiteur authentifié d'un anonyme. Les favoris d'un
// anonyme vivent côté client : l'API répond mais ne persiste rien.
type Viewer interface {
	viewer()
}

// AuthenticatedUser porte l'identifiant Mongo du compte.
type AuthenticatedUser struct {
	ID primitive.ObjectID
}

// AnonymousUser est un visiteur sans session.
type AnonymousUser struct{}

func (AuthenticatedUser) viewer() {}
func (AnonymousUser) viewer()     {}

// CurrentViewer lit le contexte posé par OptionalAuth.
func CurrentViewer(c *gin.Context) Viewer {
	raw, ok := c.Get("user_id")
	if !ok {
		return AnonymousUser{}
	}
	id, err := primitive.ObjectIDFromHex(raw.(string))
	if err != nil {
		return AnonymousUser{}
	}
	return AuthenticatedUser{ID: id}
}

// AddFavourite ajoute un produit aux favoris (no-op persistant si anonyme).
func AddFavourite(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	switch v := CurrentViewer(c).(type) {
	case AuthenticatedUser:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := database.Users().UpdateOne(ctx,
			bson.M{"_id": v.ID},
			bson.M{"$addToSet": bson.M{"favorites": productID}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating favourites", "error": err.Error()})
			return
		}
		cache.InvalidateUserCache(v.ID.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "Added to favourites"})
	case AnonymousUser:
		// Le front garde les favoris anonymes en localStorage
		c.JSON(http.StatusOK, gin.H{"message": "Added to favourites", "persisted": false})
	}
}

// RemoveFavourite retire un produit des favoris.
func RemoveFavourite(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	switch v := CurrentViewer(c).(type) {
	case AuthenticatedUser:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := database.Users().UpdateOne(ctx,
			bson.M{"_id": v.ID},
			bson.M{"$pull": bson.M{"favorites": productID}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating favourites", "error": err.Error()})
			return
		}
		cache.InvalidateUserCache(v.ID.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "Removed from favourites"})
	case AnonymousUser:
		c.JSON(http.StatusOK, gin.H{"message": "Removed from favourites", "persisted": false})
	}
}

// GetFavourites liste les produits favoris du compte (vide si anonyme).
func GetFavourites(c *gin.Context) {
	switch v := CurrentViewer(c).(type) {
	case AuthenticatedUser:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var u models.User
		if err := database.Users().FindOne(ctx, bson.M{"_id": v.ID}).Decode(&u); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		products := []models.Product{}
		if len(u.Favorites) > 0 {
			cursor, err := database.Products().Find(ctx, bson.M{"_id": bson.M{"$in": u.Favorites}})
			if err == nil {
				defer cursor.Close(ctx)
				cursor.All(ctx, &products)
			}
		}
		c.JSON(http.StatusOK, gin.H{"favourites": products})
	case AnonymousUser:
		c.JSON(http.StatusOK, gin.H{"favourites": []models.Product{}, "persisted": false})
	}
}
