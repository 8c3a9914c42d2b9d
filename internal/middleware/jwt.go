package middleware

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"eshop_back_end/internal/cache"
	"eshop_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// parseToken vérifie la signature et l'expiration d'un bearer token.
func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims invalides")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, fmt.Errorf("token expiré")
		}
	}

	return claims, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - No token provided"})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			log.Printf("❌ Erreur parsing JWT: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Token", "error": err.Error()})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Token"})
			c.Abort()
			return
		}

		// Révocation : token blacklisté (logout) ou utilisateur banni.
		if database.Redis != nil {
			if jti, ok := claims["jti"].(string); ok && cache.IsTokenBlacklisted(jti) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Token"})
				c.Abort()
				return
			}
			if cache.IsUserBanned(userID) {
				c.JSON(http.StatusForbidden, gin.H{"message": "Account banned"})
				c.Abort()
				return
			}
		}

		c.Set("user_id", userID)
		c.Set("email", claims["email"])
		if isAdmin, ok := claims["is_admin"].(bool); ok {
			c.Set("is_admin", isAdmin)
		} else {
			c.Set("is_admin", false)
		}
		if jti, ok := claims["jti"].(string); ok {
			c.Set("jti", jti)
		}

		c.Next()
	}
}

// OptionalAuth décode le token s'il est présent, sans exiger
// d'authentification (favoris anonymes).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			c.Set("user_id", userID)
			c.Set("email", claims["email"])
			if isAdmin, ok := claims["is_admin"].(bool); ok {
				c.Set("is_admin", isAdmin)
			}
		}

		c.Next()
	}
}
