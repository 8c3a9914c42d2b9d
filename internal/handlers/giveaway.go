package handlers

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	giveawayDiscount  = 20.0
	giveawayValidDays = 30
)

// EnterGiveaway inscrit un email au tirage. Une seule entrée par email
// (index unique sur la collection).
func EnterGiveaway(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid email is required"})
		return
	}

	entry := models.GiveawayEntry{
		ID:        primitive.NewObjectID(),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		EnteredAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.GiveawayEntries().InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You've already entered!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error entering giveaway", "error": err.Error()})
		return
	}

	log.Println("🎁 Nouvelle participation au giveaway:", entry.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "You're in! Good luck!"})
}

// giveawayCode fabrique un code promo WINXXXXXX unique.
func giveawayCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return "WIN" + suffix
}

// PickGiveawayWinners — admin. Tire N gagnants au hasard, crée pour chacun
// un code promo 20% valable 30 jours et l'envoie par email avec un QR code.
func PickGiveawayWinners(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Count < 1 {
		req.Count = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cursor, err := database.GiveawayEntries().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching entries", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	entries := []models.GiveawayEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching entries", "error": err.Error()})
		return
	}

	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No entries to pick from"})
		return
	}

	rand.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	if req.Count > len(entries) {
		req.Count = len(entries)
	}
	winners := entries[:req.Count]

	now := time.Now()
	endDate := now.AddDate(0, 0, giveawayValidDays)
	results := []gin.H{}

	for _, winner := range winners {
		promo := models.Promo{
			ID:        primitive.NewObjectID(),
			Code:      giveawayCode(),
			Discount:  giveawayDiscount,
			StartDate: now,
			EndDate:   endDate,
			CreatedAt: now,
		}

		if _, err := database.Promos().InsertOne(ctx, promo); err != nil {
			log.Println("❌ Erreur création promo gagnant:", err)
			continue
		}

		go func(email, code string) {
			qr, err := utils.GeneratePromoQR(code)
			if err != nil {
				log.Println("⚠️ Erreur génération QR:", err)
				qr = ""
			}
			html := utils.GenerateGiveawayWinnerHTML(code, endDate, qr)
			if err := utils.SendEmail(email, "🎉 You won our giveaway!", html); err != nil {
				log.Println("❌ Erreur envoi email gagnant:", err)
			} else {
				log.Println("📧 Email gagnant envoyé à", email)
			}
		}(winner.Email, promo.Code)

		results = append(results, gin.H{"email": winner.Email, "code": promo.Code})
	}

	log.Printf("🏆 %d gagnant(s) tiré(s) au sort", len(results))
	c.JSON(http.StatusOK, gin.H{"winners": results})
}

// GetGiveawayEntries — admin.
func GetGiveawayEntries(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.GiveawayEntries().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching entries", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	entries := []models.GiveawayEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching entries", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}
