package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"eshop_back_end/internal/cache"
	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Register crée un compte client. L'unicité de l'email est garantie par
// l'index Mongo : une seconde inscription avec le même email échoue en 400.
func Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		IsAdmin  bool   `json:"isAdmin"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid registration data", "error": err.Error()})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
		return
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Password:  hashed,
		IsAdmin:   req.IsAdmin,
		Location:  models.DefaultLocation(),
		Favorites: []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.Users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		log.Println("❌ Erreur insertion utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
		return
	}

	log.Printf("✅ Utilisateur inscrit: %s (%v)", user.Email, res.InsertedID)

	// E-mail de bienvenue en best-effort
	go func(email, name string) {
		if err := utils.SendEmail(email, "Welcome to Our Platform!", utils.GenerateWelcomeHTML(name)); err != nil {
			log.Println("❌ Erreur envoi e-mail de bienvenue:", err)
		}
	}(user.Email, user.Name)

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login authentifie par email + mot de passe et émet un JWT 24h.
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.Users().FindOne(ctx, bson.M{"email": strings.ToLower(req.Email)}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	ok, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if user.IsBanned {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account banned"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		log.Println("❌ Erreur génération JWT:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "userId": user.ID.Hex()})
}

// Me retourne le profil de l'utilisateur connecté (via le cache Redis).
func Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := cache.GetUserFromCache(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout blackliste le token courant jusqu'à son expiration naturelle.
func Logout(c *gin.Context) {
	if jti := c.GetString("jti"); jti != "" && database.Redis != nil {
		if err := cache.BlacklistToken(jti, 24*time.Hour); err != nil {
			log.Println("⚠️ Erreur blacklist token:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}
