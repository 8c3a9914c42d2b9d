package user

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"eshop_back_end/internal/cache"
	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers — admin. Listing paginé avec recherche nom/email, fenêtre de
// dates d'inscription, filtre rôle et filtre ban.
func GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	filter := bson.M{}

	if search := c.Query("search"); search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	dateFilter := bson.M{}
	if from := c.Query("dateFrom"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			dateFilter["$gte"] = t
		}
	}
	if to := c.Query("dateTo"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			dateFilter["$lte"] = t
		}
	}
	if len(dateFilter) > 0 {
		filter["created_at"] = dateFilter
	}

	switch c.Query("role") {
	case "admin":
		filter["is_admin"] = true
	case "customer":
		filter["is_admin"] = false
	}

	if banned := c.Query("isBanned"); banned != "" {
		filter["is_banned"] = banned == "true"
	}

	total, err := database.Users().CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users", "error": err.Error()})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetProjection(bson.M{"password": 0})

	cursor, err := database.Users().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"totalUsers":  total,
		"currentPage": page,
		"totalPages":  (total + limit - 1) / limit,
		"limit":       limit,
	})
}

// ToggleBan — admin. Inverse le flag de ban et synchronise Redis pour que
// les tokens encore valides soient rejetés immédiatement.
func ToggleBan(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var target models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(&target); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	newBanned := !target.IsBanned
	_, err = database.Users().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"is_banned": newBanned, "updated_at": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user", "error": err.Error()})
		return
	}

	if database.Redis != nil {
		if newBanned {
			if err := cache.BanUser(userID.Hex()); err != nil {
				log.Println("⚠️ Erreur flag ban Redis:", err)
			}
		} else {
			if err := cache.UnbanUser(userID.Hex()); err != nil {
				log.Println("⚠️ Erreur retrait ban Redis:", err)
			}
		}
		cache.InvalidateUserCache(userID.Hex())
	}

	if newBanned {
		log.Println("🚫 Utilisateur banni:", target.Email)
	} else {
		log.Println("✅ Utilisateur débanni:", target.Email)
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "isBanned": newBanned})
}

// DeleteUser — admin.
func DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Users().DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user", "error": err.Error()})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if database.Redis != nil {
		cache.InvalidateUserCache(userID.Hex())
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
