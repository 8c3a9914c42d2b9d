package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActiveAds retourne les pubs actives dont la fenêtre est ouverte,
// filtrable par emplacement (?placement=banner|table-row).
func GetActiveAds(c *gin.Context) {
	now := time.Now()
	filter := bson.M{
		"status":     models.AdStatusActive,
		"start_date": bson.M{"$lte": now},
		"end_date":   bson.M{"$gte": now},
	}
	if placement := c.Query("placement"); placement != "" {
		filter["placement"] = placement
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Ads().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ads", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	ads := []models.Ad{}
	if err := cursor.All(ctx, &ads); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ads", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ads": ads})
}

// GetAllAds — admin. Toutes les pubs, tous statuts confondus.
func GetAllAds(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := database.Ads().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ads", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	ads := []models.Ad{}
	if err := cursor.All(ctx, &ads); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ads", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ads": ads})
}

// CreateAd — admin. Multipart avec image obligatoire, statut initial pending.
func CreateAd(c *gin.Context) {
	title := c.PostForm("title")
	link := c.PostForm("link")
	placement := c.PostForm("placement")

	if title == "" || link == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and link are required"})
		return
	}
	if placement != models.AdPlacementBanner && placement != models.AdPlacementTableRow {
		c.JSON(http.StatusBadRequest, gin.H{"message": "placement must be 'banner' or 'table-row'"})
		return
	}

	startDate, err := time.Parse(time.RFC3339, c.PostForm("startDate"))
	if err != nil {
		startDate = time.Now()
	}
	endDate, err := time.Parse(time.RFC3339, c.PostForm("endDate"))
	if err != nil || !endDate.After(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "endDate must be after startDate"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image is required"})
		return
	}
	imageURL, err := services.UploadImage("ads", file)
	if err != nil {
		log.Println("❌ Erreur upload image pub:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image", "error": err.Error()})
		return
	}

	ad := models.Ad{
		ID:        primitive.NewObjectID(),
		Title:     title,
		ImageURL:  imageURL,
		Link:      link,
		Placement: placement,
		Status:    models.AdStatusPending,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if sponsor := c.PostForm("sponsorId"); sponsor != "" {
		if oid, err := primitive.ObjectIDFromHex(sponsor); err == nil {
			ad.SponsorID = oid
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Ads().InsertOne(ctx, ad); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating ad", "error": err.Error()})
		return
	}

	log.Println("📢 Nouvelle pub créée:", ad.Title)
	c.JSON(http.StatusCreated, ad)
}

// UpdateAdStatus — admin. pending → active → expired.
func UpdateAdStatus(c *gin.Context) {
	adID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ad id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidAdStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":       "Invalid status",
			"validStatuses": []string{models.AdStatusPending, models.AdStatusActive, models.AdStatusExpired},
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.Ads().UpdateOne(ctx,
		bson.M{"_id": adID},
		bson.M{"$set": bson.M{"status": req.Status, "updated_at": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating ad", "error": err.Error()})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ad not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad updated successfully"})
}

// DeleteAd — admin.
func DeleteAd(c *gin.Context) {
	adID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ad id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.Ads().DeleteOne(ctx, bson.M{"_id": adID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting ad", "error": err.Error()})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ad not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad deleted successfully"})
}
