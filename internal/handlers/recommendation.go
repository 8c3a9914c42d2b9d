package handlers

import (
	"context"
	"net/http"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/recommender"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recommendationCount = 5

// GetRecommendations retourne 5 produits personnalisés pour l'utilisateur
// courant. Modèle pas prêt ou utilisateur inconnu : fallback sur les
// produits les plus récents.
func GetRecommendations(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := c.GetString("user_id")

	if ids, ok := recommender.Default.Recommend(userID, recommendationCount); ok {
		oids := make([]primitive.ObjectID, 0, len(ids))
		for _, id := range ids {
			if oid, err := primitive.ObjectIDFromHex(id); err == nil {
				oids = append(oids, oid)
			}
		}

		cursor, err := database.Products().Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
		if err == nil {
			defer cursor.Close(ctx)
			products := []models.Product{}
			if cursor.All(ctx, &products) == nil && len(products) > 0 {
				// Réordonner selon le classement du modèle
				byID := make(map[string]models.Product, len(products))
				for _, p := range products {
					byID[p.ID.Hex()] = p
				}
				ordered := make([]models.Product, 0, len(ids))
				for _, id := range ids {
					if p, ok := byID[id]; ok {
						ordered = append(ordered, p)
					}
				}
				c.JSON(http.StatusOK, gin.H{"products": ordered, "source": "model"})
				return
			}
		}
	}

	// Fallback : les 5 produits les plus récents
	cursor, err := database.Products().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(recommendationCount))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching recommendations", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching recommendations", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "source": "recent"})
}
