package order

import (
	"context"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/handlers"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceOrder est le workflow de commande : validation du panier soumis,
// application du code promo, capture du paiement Stripe, persistance de la
// commande puis notifications e-mail (best-effort).
//
// Pas de transaction entre la capture et l'insertion : si la persistance
// échoue après un paiement capturé, l'erreur est loggée et renvoyée avec
// l'identifiant du PaymentIntent pour réconciliation manuelle.
func PlaceOrder(c *gin.Context) {
	var req struct {
		Products []struct {
			ProductID string `json:"productId" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required,min=1"`
		} `json:"products" binding:"required,min=1"`
		TotalAmount     float64 `json:"totalAmount" binding:"required"`
		PromoCode       string  `json:"promoCode"`
		PaymentMethodID string  `json:"paymentMethodId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// 1. Résoudre l'utilisateur
	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	// 2. Résoudre les produits et dénormaliser nom/image/prix au moment de
	// l'achat. Le total est recalculé côté serveur : un total client basé sur
	// des prix périmés est rejeté plutôt que facturé.
	items := make([]models.OrderItem, 0, len(req.Products))
	var serverTotal float64
	for _, line := range req.Products {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id: " + line.ProductID})
			return
		}

		var product models.Product
		if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found: " + line.ProductID})
			return
		}

		if product.Stock < line.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":   "Insufficient stock",
				"product":   product.Name,
				"available": product.Stock,
				"requested": line.Quantity,
			})
			return
		}

		items = append(items, models.OrderItem{
			ProductID: productID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		serverTotal += product.Price * float64(line.Quantity)
	}
	serverTotal = math.Round(serverTotal*100) / 100

	if math.Abs(serverTotal-req.TotalAmount) > 0.01 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":  "Order total does not match current prices",
			"expected": serverTotal,
		})
		return
	}

	// 3. Code promo optionnel
	finalAmount := serverTotal
	promoCode := ""
	if req.PromoCode != "" {
		promo, err := handlers.ResolvePromo(ctx, strings.ToUpper(req.PromoCode), items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		promoCode = promo.Code
		finalAmount = handlers.DiscountedTotal(serverTotal, promo.Discount)
		log.Printf("✅ Promo appliquée: %s (%.2f → %.2f)", promoCode, serverTotal, finalAmount)
	}

	// 4. Capture du paiement (montant en centimes)
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(math.Round(finalAmount * 100))),
		Currency:      stripe.String("usd"),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Metadata: map[string]string{
			"user_id": user.ID.Hex(),
			"email":   user.Email,
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment failed", "error": err.Error()})
		return
	}

	// Authentification supplémentaire requise (3DS) : on renvoie le défi au
	// client sans créer de commande — il resoumet une fois l'étape terminée.
	if intent.Status == stripe.PaymentIntentStatusRequiresAction {
		c.JSON(http.StatusOK, gin.H{
			"requiresAction": true,
			"clientSecret":   intent.ClientSecret,
			"paymentId":      intent.ID,
		})
		return
	}

	paymentStatus := models.PaymentPending
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		paymentStatus = models.PaymentPaid
	}

	log.Printf("💳 Paiement capturé: %s (%.2f) pour %s", intent.ID, finalAmount, user.Email)

	// 5. Persister la commande
	now := time.Now()
	newOrder := models.Order{
		UserID:          user.ID,
		CustomerName:    user.Name,
		Items:           items,
		TotalAmount:     finalAmount,
		PromoCode:       promoCode,
		Location:        user.Location,
		Status:          models.OrderProcessing,
		PaymentStatus:   paymentStatus,
		PaymentIntentID: intent.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := database.Orders().InsertOne(ctx, newOrder)
	if err != nil {
		// Paiement capturé mais commande non persistée : le pire cas du flow.
		// L'identifiant du PaymentIntent est renvoyé pour réconciliation.
		log.Printf("❌ CRITIQUE: paiement %s capturé mais commande non persistée: %v", intent.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":           "Error placing order",
			"error":             err.Error(),
			"payment_intent_id": intent.ID,
		})
		return
	}
	newOrder.ID = res.InsertedID.(primitive.ObjectID)

	log.Printf("✅ Commande %s créée pour %s (%.2f)", newOrder.ID.Hex(), user.Email, finalAmount)

	// 6. Notifications best-effort : un échec d'envoi ne remet pas en cause
	// la commande.
	go func(o models.Order, customerEmail string) {
		if err := utils.SendEmail(utils.AdminEmail(), "New Order Placed", utils.GenerateAdminOrderNotificationHTML(o)); err != nil {
			log.Println("❌ Erreur envoi notification admin:", err)
		}
		if err := utils.SendEmail(customerEmail, "Order Confirmation", utils.GenerateOrderConfirmationHTML(o)); err != nil {
			log.Println("❌ Erreur envoi confirmation client:", err)
		}
	}(newOrder, user.Email)

	// 7. Retourner la commande persistée
	c.JSON(http.StatusCreated, newOrder)
}
