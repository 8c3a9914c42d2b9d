package handlers

import (
	"context"
	"net/http"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// analyticsRange traduit ?range=7d|30d|90d en date plancher (défaut 30 jours).
func analyticsRange(c *gin.Context) time.Time {
	days := 30
	switch c.DefaultQuery("range", "30d") {
	case "7d":
		days = 7
	case "90d":
		days = 90
	}
	return time.Now().AddDate(0, 0, -days)
}

// GetAnalytics — admin. Répartition des statuts et chiffre d'affaires par
// jour sur la fenêtre demandée, via le pipeline d'agrégation Mongo.
func GetAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	since := analyticsRange(c)

	// Répartition des statuts
	statusPipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	statusCursor, err := database.Orders().Aggregate(ctx, statusPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing analytics", "error": err.Error()})
		return
	}
	defer statusCursor.Close(ctx)

	statusCounts := map[string]int64{}
	var statusRows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := statusCursor.All(ctx, &statusRows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing analytics", "error": err.Error()})
		return
	}
	for _, row := range statusRows {
		statusCounts[row.ID] = row.Count
	}

	// CA par jour, paiements encaissés uniquement
	revenuePipeline := []bson.M{
		{"$match": bson.M{
			"created_at":     bson.M{"$gte": since},
			"payment_status": models.PaymentPaid,
		}},
		{"$group": bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"revenue": bson.M{"$sum": "$total_amount"},
			"orders":  bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	revenueCursor, err := database.Orders().Aggregate(ctx, revenuePipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing analytics", "error": err.Error()})
		return
	}
	defer revenueCursor.Close(ctx)

	var revenueRows []struct {
		Date    string  `bson:"_id" json:"date"`
		Revenue float64 `bson:"revenue" json:"revenue"`
		Orders  int64   `bson:"orders" json:"orders"`
	}
	if err := revenueCursor.All(ctx, &revenueRows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing analytics", "error": err.Error()})
		return
	}
	if revenueRows == nil {
		revenueRows = []struct {
			Date    string  `bson:"_id" json:"date"`
			Revenue float64 `bson:"revenue" json:"revenue"`
			Orders  int64   `bson:"orders" json:"orders"`
		}{}
	}

	c.JSON(http.StatusOK, gin.H{
		"statusCounts":   statusCounts,
		"revenueByDate":  revenueRows,
		"rangeStartDate": since,
	})
}

// GetDashboardStats — admin. Compteurs globaux de la page d'accueil admin.
func GetDashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	totalOrders, err := database.Orders().CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing stats", "error": err.Error()})
		return
	}

	totalUsers, err := database.Users().CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing stats", "error": err.Error()})
		return
	}

	pendingOrders, err := database.Orders().CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": bson.A{models.OrderPlaced, models.OrderProcessing}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing stats", "error": err.Error()})
		return
	}

	// CA total encaissé
	revenueCursor, err := database.Orders().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"payment_status": models.PaymentPaid}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing stats", "error": err.Error()})
		return
	}
	defer revenueCursor.Close(ctx)

	totalRevenue := 0.0
	var revenueRow []struct {
		Total float64 `bson:"total"`
	}
	if err := revenueCursor.All(ctx, &revenueRow); err == nil && len(revenueRow) > 0 {
		totalRevenue = revenueRow[0].Total
	}

	// Activité récente : 5 dernières commandes
	recentCursor, err := database.Orders().Aggregate(ctx, []bson.M{
		{"$sort": bson.M{"created_at": -1}},
		{"$limit": 5},
		{"$project": bson.M{
			"customer_name": 1,
			"total_amount":  1,
			"status":        1,
			"created_at":    1,
		}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error computing stats", "error": err.Error()})
		return
	}
	defer recentCursor.Close(ctx)

	recent := []bson.M{}
	recentCursor.All(ctx, &recent)

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":    totalOrders,
		"totalUsers":     totalUsers,
		"totalRevenue":   totalRevenue,
		"pendingOrders":  pendingOrders,
		"recentActivity": recent,
	})
}
