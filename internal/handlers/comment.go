package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// commentTextValid borne le texte à 1..500 caractères (pas octets : un avis
// accentué ou non-latin compte en runes).
func commentTextValid(text string) bool {
	n := utf8.RuneCountInString(text)
	return n > 0 && n <= models.CommentMaxLength
}

// hasPurchased vérifie qu'une commande de l'utilisateur contient le produit.
func hasPurchased(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	count, err := database.Orders().CountDocuments(ctx, bson.M{
		"user_id":          userID,
		"items.product_id": productID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateComment poste un avis sur un produit. Réservé aux acheteurs.
func CreateComment(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Comment   string `json:"comment" binding:"required"`
		Rating    *int   `json:"rating"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId and comment are required"})
		return
	}

	req.Comment = strings.TrimSpace(req.Comment)
	if !commentTextValid(req.Comment) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment must be between 1 and 500 characters"})
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}
	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	purchased, err := hasPurchased(ctx, userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error checking purchase history", "error": err.Error()})
		return
	}
	if !purchased {
		c.JSON(http.StatusForbidden, gin.H{"message": "You must purchase this product to comment"})
		return
	}

	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	comment := models.Comment{
		ID:              primitive.NewObjectID(),
		ProductID:       productID,
		UserID:          userID,
		UserName:        user.Name,
		Comment:         req.Comment,
		Rating:          req.Rating,
		IsVerifiedBuyer: true,
		IsVisible:       true,
		CreatedAt:       time.Now(),
	}

	if _, err := database.Comments().InsertOne(ctx, comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment", "error": err.Error()})
		return
	}

	log.Println("💬 Nouveau commentaire sur", product.Name, "par", user.Name)
	c.JSON(http.StatusCreated, comment)
}

// GetComments liste les avis d'un produit. Les admins voient aussi les
// avis masqués.
func GetComments(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	filter := bson.M{"product_id": productID}
	if isAdmin, _ := c.Get("is_admin"); isAdmin != true {
		filter["is_visible"] = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Comments().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ToggleCommentVisibility — admin. Masque ou restaure un avis.
func ToggleCommentVisibility(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var comment models.Comment
	if err := database.Comments().FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}

	newVisible := !comment.IsVisible
	if _, err := database.Comments().UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{"$set": bson.M{"is_visible": newVisible}},
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated", "isVisible": newVisible})
}
