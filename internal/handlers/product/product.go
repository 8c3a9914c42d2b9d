package product

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"eshop_back_end/internal/cache"
	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"
	"eshop_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchPage découpe les résultats Elastic selon page/limit (l'index est
// interrogé sans pagination, le fenêtrage se fait ici).
func searchPage(results []map[string]interface{}, page, limit int64) []map[string]interface{} {
	start := (page - 1) * limit
	if start >= int64(len(results)) {
		return []map[string]interface{}{}
	}
	end := start + limit
	if end > int64(len(results)) {
		end = int64(len(results))
	}
	return results[start:end]
}

// GetProducts liste le catalogue, paginé. Avec ?search=..., la recherche
// passe par Elasticsearch et retombe sur un regex Mongo si l'index est
// indisponible.
func GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	search := c.Query("search")
	if search != "" {
		if results, err := services.SearchProducts(search); err == nil {
			total := int64(len(results))
			c.JSON(http.StatusOK, gin.H{
				"products":      searchPage(results, page, limit),
				"totalProducts": total,
				"currentPage":   page,
				"totalPages":    (total + limit - 1) / limit,
				"limit":         limit,
				"source":        "elasticsearch",
			})
			return
		}
		// Fallback Mongo si Elastic est down
	}

	filter := bson.M{}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"category": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	total, err := database.Products().CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products", "error": err.Error()})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := database.Products().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products", "error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products", "error": err.Error()})
		return
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, gin.H{
		"products":      products,
		"totalProducts": total,
		"currentPage":   page,
		"totalPages":    totalPages,
		"limit":         limit,
	})
}

// GetProductByID passe par le cache Redis (TTL 10 min).
func GetProductByID(c *gin.Context) {
	product, err := cache.GetProductFromCache(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct — admin. Formulaire multipart avec image optionnelle
// poussée sur MinIO. Le SKU est généré si absent.
func CreateProduct(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid price is required"})
		return
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil || stock < 0 {
		stock = 0
	}

	product := models.Product{
		ID:          primitive.NewObjectID(),
		SKU:         c.PostForm("sku"),
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.PostForm("category"),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product name is required"})
		return
	}
	if product.SKU == "" {
		product.SKU = uuid.New().String()
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := services.UploadImage("products", file)
		if err != nil {
			log.Println("❌ Erreur upload image produit:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image", "error": err.Error()})
			return
		}
		product.Image = url
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Products().InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "SKU already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product", "error": err.Error()})
		return
	}

	go services.IndexProduct(product)

	log.Println("✅ Produit créé:", product.Name)
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct — admin. Met à jour les champs fournis, réindexe et
// invalide le cache.
func UpdateProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	set := bson.M{"updated_at": time.Now()}
	for _, field := range []string{"name", "description", "category", "sku"} {
		if v := c.PostForm(field); v != "" {
			set[field] = v
		}
	}
	if v := c.PostForm("price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil && price >= 0 {
			set["price"] = price
		}
	}
	if v := c.PostForm("stock"); v != "" {
		if stock, err := strconv.Atoi(v); err == nil && stock >= 0 {
			set["stock"] = stock
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := services.UploadImage("products", file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image", "error": err.Error()})
			return
		}
		set["image"] = url
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Product
	err = database.Products().FindOneAndUpdate(ctx,
		bson.M{"_id": productID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	go services.IndexProduct(updated)
	cache.InvalidateProductCache(productID.Hex())

	c.JSON(http.StatusOK, updated)
}

// DeleteProduct — admin.
func DeleteProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Products().DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product", "error": err.Error()})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	go services.RemoveProductFromIndex(productID.Hex())
	cache.InvalidateProductCache(productID.Hex())

	log.Println("🗑️ Produit supprimé:", productID.Hex())
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
