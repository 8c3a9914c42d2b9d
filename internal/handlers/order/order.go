package order

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildOrderFilter construit le filtre de listing : recherche texte sur id /
// nom client, fenêtre de dates, statut. Les non-admins sont restreints à
// leurs propres commandes.
func buildOrderFilter(c *gin.Context) bson.M {
	filter := bson.M{}

	if isAdmin, _ := c.Get("is_admin"); isAdmin != true {
		if userID, err := primitive.ObjectIDFromHex(c.GetString("user_id")); err == nil {
			filter["user_id"] = userID
		}
	}

	if search := c.Query("search"); search != "" {
		or := bson.A{
			bson.M{"customer_name": bson.M{"$regex": search, "$options": "i"}},
		}
		if oid, err := primitive.ObjectIDFromHex(search); err == nil {
			or = append(or, bson.M{"_id": oid})
		}
		filter["$or"] = or
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

	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	return filter
}

// Pagination lit page/limit avec les défauts du listing.
func Pagination(c *gin.Context) (page, limit int64) {
	page, _ = strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// TotalPages calcule le nombre de pages du listing.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// GetOrders liste les commandes, paginées et filtrées.
func GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := buildOrderFilter(c)
	page, limit := Pagination(c)

	total, err := database.Orders().CountDocuments(ctx, filter)
	if err != nil {
		log.Println("❌ Erreur comptage commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders", "error": err.Error()})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := database.Orders().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"totalOrders": total,
		"currentPage": page,
		"totalPages":  TotalPages(total, limit),
		"limit":       limit,
	})
}

// GetOrderByID retourne une commande. Un non-admin ne voit que les siennes.
func GetOrderByID(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	filter := bson.M{"_id": orderID}
	if isAdmin, _ := c.Get("is_admin"); isAdmin != true {
		userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		filter["user_id"] = userID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var ord models.Order
	if err := database.Orders().FindOne(ctx, filter).Decode(&ord); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, ord)
}

// UpdateOrderStatus — admin. Statut et paymentStatus sont indépendants, mais
// un paymentStatus contredisant l'état d'un paiement déjà capturé côté
// gateway est refusé.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	var req struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"paymentStatus"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || (req.Status == "" && req.PaymentStatus == "") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status or paymentStatus is required"})
		return
	}

	if req.Status != "" && !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":       "Invalid status",
			"validStatuses": []string{models.OrderPlaced, models.OrderProcessing, models.OrderShipped, models.OrderDelivered, models.OrderCancelled},
		})
		return
	}
	if req.PaymentStatus != "" && !models.ValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":       "Invalid payment status",
			"validStatuses": []string{models.PaymentPending, models.PaymentPaid, models.PaymentFailed},
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var ord models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&ord); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	// Garde-fou : pas de rétrogradation d'un paiement capturé côté Stripe.
	if req.PaymentStatus != "" && req.PaymentStatus != models.PaymentPaid && ord.PaymentIntentID != "" {
		intent, err := paymentintent.Get(ord.PaymentIntentID, nil)
		if err == nil && intent.Status == stripe.PaymentIntentStatusSucceeded {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Payment was captured by the gateway; paymentStatus cannot be set to " + req.PaymentStatus,
			})
			return
		}
	}

	now := time.Now()
	set := bson.M{"updated_at": now}
	if req.Status != "" {
		set["status"] = req.Status
	}
	if req.PaymentStatus != "" {
		set["payment_status"] = req.PaymentStatus
	}

	if _, err := database.Orders().UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{"$set": set}); err != nil {
		log.Println("❌ Erreur mise à jour commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order", "error": err.Error()})
		return
	}

	log.Printf("✅ Commande %s mise à jour: status=%s paymentStatus=%s", orderID.Hex(), req.Status, req.PaymentStatus)

	// Notification client best-effort
	if req.Status != "" {
		var user models.User
		if err := database.Users().FindOne(ctx, bson.M{"_id": ord.UserID}).Decode(&user); err == nil && user.Email != "" {
			orderURL := os.Getenv("FRONTEND_URL") + "/orders/" + orderID.Hex()
			go func(email, name, status string) {
				html := utils.GenerateOrderUpdateHTML(name, orderID.Hex(), status, orderURL, now)
				if err := utils.SendEmail(email, "Order Status Updated", html); err != nil {
					log.Println("❌ Erreur envoi notification statut:", err)
				}
			}(user.Email, user.Name, req.Status)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}
