package handlers

import (
	"log"
	"net/http"
	"strings"

	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactSupport relaie un message du formulaire de contact vers le support
// et accuse réception à l'expéditeur. Les deux envois sont best-effort.
func ContactSupport(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email, subject and message are required"})
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "message cannot be empty"})
		return
	}

	go func() {
		html := utils.GenerateContactSupportHTML(req.Name, req.Email, req.Subject, req.Message)
		if err := utils.SendEmail(utils.SupportEmail(), "[Contact] "+req.Subject, html); err != nil {
			log.Println("❌ Erreur relais contact:", err)
		}
	}()

	go func() {
		html := utils.GenerateContactAckHTML(req.Name, req.Subject, req.Message)
		if err := utils.SendEmail(req.Email, "We received your message", html); err != nil {
			log.Println("❌ Erreur accusé de réception:", err)
		}
	}()

	log.Println("📧 Message de contact reçu de", req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Your message has been sent. We'll get back to you soon!"})
}
