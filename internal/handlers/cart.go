package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// decodeCart matérialise le panier depuis un résultat de lecture : absent →
// panier vide neuf ; toute autre erreur (Mongo injoignable, décodage) est
// remontée telle quelle plutôt que d'écraser le panier existant par un upsert.
func decodeCart(res *mongo.SingleResult, userID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := res.Decode(&cart)
	switch {
	case err == mongo.ErrNoDocuments:
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	case err != nil:
		return models.Cart{}, err
	}
	return cart, nil
}

// AddToCart upsert une ligne dans le panier de l'utilisateur. Le document
// panier entier est réécrit : deux ajouts concurrents font dernier-écrit-gagne
// sur le tableau items.
func AddToCart(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId and quantity are required", "error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	cart, err := decodeCart(database.Carts().FindOne(ctx, bson.M{"user_id": userID}), userID)
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error reading cart", "error": err.Error()})
		return
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += req.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ID:        primitive.NewObjectID(),
			ProductID: productID,
			Quantity:  req.Quantity,
		})
	}
	cart.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := database.Carts().ReplaceOne(ctx, bson.M{"user_id": userID}, cart, opts); err != nil {
		log.Println("❌ Erreur sauvegarde panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding item to cart", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// GetCart retourne le panier avec les produits peuplés.
func GetCart(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart is empty"})
		return
	}

	// Populate des produits
	for i := range cart.Items {
		var product models.Product
		if err := database.Products().FindOne(ctx, bson.M{"_id": cart.Items[i].ProductID}).Decode(&product); err == nil {
			cart.Items[i].Product = &product
		}
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveCartItem supprime une ligne par son identifiant.
func RemoveCartItem(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := database.Carts().FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"_id": itemID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var cart models.Cart
	if err := res.Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing item from cart", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": cart})
}

// ClearCart vide le panier (suppression explicite uniquement : le checkout
// ne vide pas le panier).
func ClearCart(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.Carts().DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error clearing cart", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
