package routes

import (
	"os"
	"strings"

	"eshop_back_end/internal/handlers"
	"eshop_back_end/internal/handlers/order"
	"eshop_back_end/internal/handlers/product"
	"eshop_back_end/internal/handlers/user"
	"eshop_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes branche toutes les routes de l'API sur le routeur Gin.
func RegisterRoutes(r *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	// Authentification
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), handlers.Register)
		auth.POST("/login", middleware.LoginRateLimit(), handlers.Login)
		auth.GET("/me", middleware.AuthRequired(), handlers.Me)
		auth.POST("/logout", middleware.AuthRequired(), handlers.Logout)
		auth.GET("/:provider", handlers.BeginAuth)
		auth.GET("/:provider/callback", handlers.CallbackAuth)
	}

	// Catalogue
	products := api.Group("/products")
	{
		products.GET("", product.GetProducts)
		products.GET("/:id", product.GetProductByID)
		products.POST("", middleware.AuthRequired(), middleware.RequireAdmin, product.CreateProduct)
		products.PUT("/:id", middleware.AuthRequired(), middleware.RequireAdmin, product.UpdateProduct)
		products.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, product.DeleteProduct)
	}

	// Panier
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", handlers.GetCart)
		cart.POST("", handlers.AddToCart)
		cart.DELETE("/items/:id", handlers.RemoveCartItem)
		cart.DELETE("", handlers.ClearCart)
	}

	// Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.POST("", order.PlaceOrder)
		orders.GET("", order.GetOrders)
		orders.GET("/:id", order.GetOrderByID)
		orders.PATCH("/:id/status", middleware.RequireAdmin, order.UpdateOrderStatus)
	}

	// Utilisateurs (admin) et favoris
	users := api.Group("/users")
	{
		users.GET("", middleware.AuthRequired(), middleware.RequireAdmin, user.GetUsers)
		users.PATCH("/:id/ban", middleware.AuthRequired(), middleware.RequireAdmin, user.ToggleBan)
		users.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, user.DeleteUser)

		users.GET("/favourites", middleware.OptionalAuth(), user.GetFavourites)
		users.POST("/favourites/:productId", middleware.OptionalAuth(), user.AddFavourite)
		users.DELETE("/favourites/:productId", middleware.OptionalAuth(), user.RemoveFavourite)
	}

	// Avis produits
	comments := api.Group("/comments")
	{
		comments.GET("/:productId", middleware.OptionalAuth(), handlers.GetComments)
		comments.POST("", middleware.AuthRequired(), handlers.CreateComment)
		comments.PATCH("/:id/visibility", middleware.AuthRequired(), middleware.RequireAdmin, handlers.ToggleCommentVisibility)
	}

	// Codes promo
	promo := api.Group("/promo")
	{
		promo.POST("/validate", handlers.ValidatePromo)
		promo.GET("", middleware.AuthRequired(), middleware.RequireAdmin, handlers.GetPromos)
		promo.POST("", middleware.AuthRequired(), middleware.RequireAdmin, handlers.CreatePromo)
	}

	// Publicités
	ads := api.Group("/ads")
	{
		ads.GET("", handlers.GetActiveAds)
		ads.GET("/all", middleware.AuthRequired(), middleware.RequireAdmin, handlers.GetAllAds)
		ads.POST("", middleware.AuthRequired(), middleware.RequireAdmin, handlers.CreateAd)
		ads.PATCH("/:id/status", middleware.AuthRequired(), middleware.RequireAdmin, handlers.UpdateAdStatus)
		ads.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.DeleteAd)
	}

	// Carrousel d'accueil
	hero := api.Group("/hero")
	{
		hero.GET("", handlers.GetHeroSlides)
		hero.POST("", middleware.AuthRequired(), middleware.RequireAdmin, handlers.CreateHeroSlide)
		hero.PUT("/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.UpdateHeroSlide)
		hero.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.DeleteHeroSlide)
	}

	// Giveaway
	giveaway := api.Group("/giveaway")
	{
		giveaway.POST("/enter", handlers.EnterGiveaway)
		giveaway.GET("/entries", middleware.AuthRequired(), middleware.RequireAdmin, handlers.GetGiveawayEntries)
		giveaway.POST("/pick-winners", middleware.AuthRequired(), middleware.RequireAdmin, handlers.PickGiveawayWinners)
	}

	// Contact
	api.POST("/contact", handlers.ContactSupport)

	// Recommandations
	api.GET("/recommendations", middleware.AuthRequired(), handlers.GetRecommendations)

	// Tableau de bord admin
	api.GET("/analytics", middleware.AuthRequired(), middleware.RequireAdmin, handlers.GetAnalytics)
	api.GET("/dashboard-stats", middleware.AuthRequired(), middleware.RequireAdmin, handlers.GetDashboardStats)
}
