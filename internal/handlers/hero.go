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

// GetHeroSlides retourne les slides actives du carrousel. Collection vide :
// on sème les slides par défaut avant de répondre.
func GetHeroSlides(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.HeroSlides().CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hero slides", "error": err.Error()})
		return
	}

	if count == 0 {
		defaults := models.DefaultHeroSlides()
		docs := make([]interface{}, len(defaults))
		for i, s := range defaults {
			s.ID = primitive.NewObjectID()
			docs[i] = s
		}
		if _, err := database.HeroSlides().InsertMany(ctx, docs); err != nil {
			log.Println("⚠️ Erreur seed slides par défaut:", err)
		} else {
			log.Println("✅ Slides hero par défaut insérées")
		}
	}

	cursor, err := database.HeroSlides().Find(ctx, bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hero slides", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	slides := []models.HeroSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching hero slides", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

// CreateHeroSlide — admin. Multipart, image poussée sur MinIO si fournie.
func CreateHeroSlide(c *gin.Context) {
	slide := models.HeroSlide{
		ID:          primitive.NewObjectID(),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CtaText:     c.PostForm("ctaText"),
		CtaLink:     c.PostForm("ctaLink"),
		ImageSrc:    c.PostForm("imageSrc"),
		Theme:       c.PostForm("theme"),
		AltText:     c.PostForm("altText"),
		IsActive:    c.PostForm("isActive") != "false",
		CreatedAt:   time.Now(),
	}

	if slide.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := services.UploadImage("hero", file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image", "error": err.Error()})
			return
		}
		slide.ImageSrc = url
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.HeroSlides().InsertOne(ctx, slide); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating hero slide", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, slide)
}

// UpdateHeroSlide — admin. Met à jour les champs fournis.
func UpdateHeroSlide(c *gin.Context) {
	slideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid slide id"})
		return
	}

	set := bson.M{}
	fields := map[string]string{
		"title":       "title",
		"description": "description",
		"ctaText":     "cta_text",
		"ctaLink":     "cta_link",
		"imageSrc":    "image_src",
		"theme":       "theme",
		"altText":     "alt_text",
	}
	for form, col := range fields {
		if v := c.PostForm(form); v != "" {
			set[col] = v
		}
	}
	if v := c.PostForm("isActive"); v != "" {
		set["is_active"] = v == "true"
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := services.UploadImage("hero", file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image", "error": err.Error()})
			return
		}
		set["image_src"] = url
	}

	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.HeroSlide
	err = database.HeroSlides().FindOneAndUpdate(ctx,
		bson.M{"_id": slideID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Hero slide not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteHeroSlide — admin.
func DeleteHeroSlide(c *gin.Context) {
	slideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid slide id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.HeroSlides().DeleteOne(ctx, bson.M{"_id": slideID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting hero slide", "error": err.Error()})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Hero slide not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hero slide deleted successfully"})
}
