package handlers

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrPromoInvalid       = errors.New("Invalid or expired promo code")
	ErrPromoNotApplicable = errors.New("Promo code does not apply to your order")
)

// PromoItem est la vue minimale d'une ligne de panier pour la validation
// d'un code promo : l'identifiant produit et sa catégorie courante.
type PromoItem struct {
	ProductID string
	Category  string
}

// PromoApplies vérifie la règle d'applicabilité : un code restreint à un
// ensemble de produits (ou une catégorie) exige au moins une ligne
// correspondante ; sans restriction il s'applique toujours.
func PromoApplies(promo models.Promo, items []PromoItem) bool {
	if len(promo.ProductIDs) > 0 {
		for _, item := range items {
			for _, pid := range promo.ProductIDs {
				if pid == item.ProductID {
					return true
				}
			}
		}
		return false
	}

	if promo.Category != "" {
		for _, item := range items {
			if item.Category == promo.Category {
				return true
			}
		}
		return false
	}

	return true
}

// PromoWindowContains vérifie que t est dans la fenêtre [StartDate, EndDate].
func PromoWindowContains(promo models.Promo, t time.Time) bool {
	return !t.Before(promo.StartDate) && !t.After(promo.EndDate)
}

// DiscountedTotal applique la réduction et arrondit au centime.
func DiscountedTotal(total, discount float64) float64 {
	return math.Round(total*(1-discount/100)*100) / 100
}

// ResolvePromo charge un code valable maintenant et vérifie son applicabilité
// au panier. Retourne ErrPromoInvalid / ErrPromoNotApplicable en cas d'échec.
func ResolvePromo(ctx context.Context, code string, items []models.OrderItem) (*models.Promo, error) {
	var promo models.Promo
	if err := database.Promos().FindOne(ctx, bson.M{"code": code}).Decode(&promo); err != nil {
		return nil, ErrPromoInvalid
	}
	if !PromoWindowContains(promo, time.Now()) {
		return nil, ErrPromoInvalid
	}

	promoItems := make([]PromoItem, 0, len(items))
	for _, item := range items {
		pi := PromoItem{ProductID: item.ProductID.Hex()}

		// La catégorie n'est nécessaire que pour les codes restreints par catégorie.
		if promo.Category != "" {
			var product models.Product
			if err := database.Products().FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&product); err == nil {
				pi.Category = product.Category
			}
		}

		promoItems = append(promoItems, pi)
	}

	if !PromoApplies(promo, promoItems) {
		return nil, ErrPromoNotApplicable
	}

	return &promo, nil
}

// CreatePromo — admin. Le code est unique (index Mongo).
func CreatePromo(c *gin.Context) {
	var req struct {
		Code       string    `json:"code" binding:"required"`
		Discount   float64   `json:"discount" binding:"required"`
		StartDate  time.Time `json:"startDate" binding:"required"`
		EndDate    time.Time `json:"endDate" binding:"required"`
		ProductIDs []string  `json:"productIds"`
		Category   string    `json:"category"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid promo data", "error": err.Error()})
		return
	}

	if req.Discount <= 0 || req.Discount > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Discount must be between 1 and 100"})
		return
	}
	if !req.EndDate.After(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "endDate must be after startDate"})
		return
	}

	promo := models.Promo{
		Code:       strings.ToUpper(req.Code),
		Discount:   req.Discount,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		ProductIDs: req.ProductIDs,
		Category:   req.Category,
		CreatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.Promos().InsertOne(ctx, promo)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Promo code already exists"})
			return
		}
		log.Println("❌ Erreur création promo:", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	promo.ID = res.InsertedID.(primitive.ObjectID)
	log.Printf("✅ Promo créée: %s (-%.0f%%)", promo.Code, promo.Discount)
	c.JSON(http.StatusCreated, gin.H{"success": true, "promo": promo})
}

// ValidatePromo vérifie un code contre un snapshot de panier.
func ValidatePromo(c *gin.Context) {
	var req struct {
		Code     string `json:"code" binding:"required"`
		Products []struct {
			ProductID string `json:"productId" binding:"required"`
			Quantity  int    `json:"quantity"`
		} `json:"products"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	items := make([]models.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		oid, err := primitive.ObjectIDFromHex(p.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id: " + p.ProductID})
			return
		}
		items = append(items, models.OrderItem{ProductID: oid, Quantity: p.Quantity})
	}

	promo, err := ResolvePromo(ctx, strings.ToUpper(req.Code), items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"promo":   gin.H{"code": promo.Code, "discount": promo.Discount},
	})
}

// GetPromos — admin, liste brute des codes.
func GetPromos(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.Promos().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching promos", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	promos := []models.Promo{}
	if err := cursor.All(ctx, &promos); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching promos", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"promos": promos, "total": len(promos)})
}
