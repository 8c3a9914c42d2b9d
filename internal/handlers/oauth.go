package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ctxKey string

const ProviderKey ctxKey = "provider"

func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No provider specified"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// CallbackAuth termine le flow OAuth, upsert l'utilisateur (clé google_id ou
// email) et émet le même JWT que le login classique.
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No provider specified"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "OAuth failed", "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"$or": bson.A{
		bson.M{"google_id": gothUser.UserID},
		bson.M{"email": strings.ToLower(gothUser.Email)},
	}}
	update := bson.M{
		"$set": bson.M{
			"google_id":  gothUser.UserID,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"name":       gothUser.Name,
			"email":      strings.ToLower(gothUser.Email),
			"is_admin":   false,
			"is_banned":  false,
			"location":   models.DefaultLocation(),
			"favorites":  []primitive.ObjectID{},
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	if err := database.Users().FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		if err != mongo.ErrNoDocuments {
			log.Println("❌ Erreur upsert OAuth:", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "OAuth failed", "error": err.Error()})
		return
	}

	if user.IsBanned {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account banned"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "OAuth failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userId":   user.ID.Hex(),
		"provider": gothUser.Provider,
	})
}
