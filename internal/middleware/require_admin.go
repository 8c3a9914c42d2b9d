package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin vérifie que le token décodé porte le flag admin.
func RequireAdmin(c *gin.Context) {
	isAdmin, exists := c.Get("is_admin")
	if !exists || isAdmin != true {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
