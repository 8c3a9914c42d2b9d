package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCacheTTL    = 5 * time.Minute
	ProductCacheTTL = 10 * time.Minute
)

// GetUserFromCache récupère un utilisateur depuis Redis ou MongoDB.
func GetUserFromCache(userID string) (*models.User, error) {
	ctx := context.Background()
	key := "user:" + userID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var user models.User
		if json.Unmarshal([]byte(data), &user) == nil {
			return &user, nil
		}
	}

	// 2. Récupérer de MongoDB
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(user)
	database.Redis.Set(ctx, key, jsonData, UserCacheTTL)

	return &user, nil
}

// InvalidateUserCache invalide le cache d'un utilisateur.
func InvalidateUserCache(userID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "user:"+userID)
}

// GetProductFromCache récupère un produit depuis Redis ou MongoDB.
func GetProductFromCache(productID string) (*models.Product, error) {
	ctx := context.Background()
	key := "product:" + productID

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var product models.Product
		if json.Unmarshal([]byte(data), &product) == nil {
			return &product, nil
		}
	}

	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		return nil, err
	}

	jsonData, _ := json.Marshal(product)
	database.Redis.Set(ctx, key, jsonData, ProductCacheTTL)

	return &product, nil
}

// InvalidateProductCache invalide le cache d'un produit.
func InvalidateProductCache(productID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "product:"+productID)
}

// --- Blacklist JWT (révocation avant expiration) ---

// BlacklistToken ajoute un token JWT à la blacklist.
func BlacklistToken(tokenID string, duration time.Duration) error {
	return database.Redis.Set(context.Background(), "blacklist:"+tokenID, "revoked", duration).Err()
}

// IsTokenBlacklisted vérifie si un token est blacklisté.
func IsTokenBlacklisted(tokenID string) bool {
	exists, err := database.Redis.Exists(context.Background(), "blacklist:"+tokenID).Result()
	if err != nil {
		log.Printf("⚠️ Erreur vérification blacklist: %v", err)
		return false
	}
	return exists > 0
}

// --- Ban utilisateurs ---

// BanUser pose le flag de ban en Redis (vérifié à chaque requête authentifiée).
func BanUser(userID string) error {
	return database.Redis.Set(context.Background(), "banned:"+userID, "true", 0).Err()
}

// UnbanUser retire le flag de ban.
func UnbanUser(userID string) error {
	return database.Redis.Del(context.Background(), "banned:"+userID).Err()
}

// IsUserBanned vérifie si un utilisateur est banni.
func IsUserBanned(userID string) bool {
	exists, err := database.Redis.Exists(context.Background(), "banned:"+userID).Result()
	if err != nil {
		log.Printf("⚠️ Erreur vérification ban: %v", err)
		return false
	}
	return exists > 0
}
