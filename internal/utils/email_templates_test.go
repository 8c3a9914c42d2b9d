package utils

import (
	"testing"
	"time"

	"eshop_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:           primitive.NewObjectID(),
		CustomerName: "Alice Martin",
		Items: []models.OrderItem{
			{Name: "Mechanical Keyboard", Price: 89.99, Quantity: 2},
			{Name: "USB-C Hub", Price: 39.50, Quantity: 1},
		},
		TotalAmount:   219.48,
		Status:        models.OrderProcessing,
		PaymentStatus: models.PaymentPaid,
		CreatedAt:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestGenerateOrderConfirmationHTML(t *testing.T) {
	order := sampleOrder()
	html := GenerateOrderConfirmationHTML(order)

	assert.Contains(t, html, "Dear Alice Martin,")
	assert.Contains(t, html, "Mechanical Keyboard")
	assert.Contains(t, html, "USB-C Hub")
	assert.Contains(t, html, "$219.48")
	assert.Contains(t, html, "$179.98", "total de ligne = prix × quantité")
	assert.NotContains(t, html, "Promo code applied")
	assert.NotContains(t, html, "%!", "aucun verbe fmt non consommé")
}

func TestGenerateOrderConfirmationHTMLWithPromo(t *testing.T) {
	order := sampleOrder()
	order.PromoCode = "SAVE20"

	html := GenerateOrderConfirmationHTML(order)
	assert.Contains(t, html, "Promo code applied")
	assert.Contains(t, html, "SAVE20")
}

func TestGenerateAdminOrderNotificationHTML(t *testing.T) {
	order := sampleOrder()
	html := GenerateAdminOrderNotificationHTML(order)

	assert.Contains(t, html, "New Order Placed")
	assert.Contains(t, html, order.ID.Hex())
	assert.Contains(t, html, "Alice Martin")
	assert.Contains(t, html, "Processing")
	assert.Contains(t, html, "Paid")
	assert.Contains(t, html, "2026-03-14 09:30")
	assert.NotContains(t, html, "%!")
}

func TestGenerateOrderUpdateHTML(t *testing.T) {
	updatedAt := time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)
	html := GenerateOrderUpdateHTML("Bob", "abc123", models.OrderShipped, "https://shop.example/orders/abc123", updatedAt)

	assert.Contains(t, html, "Dear Bob,")
	assert.Contains(t, html, "abc123")
	assert.Contains(t, html, "Shipped")
	assert.Contains(t, html, `href="https://shop.example/orders/abc123"`)
	assert.Contains(t, html, "2026-03-15 18:45")
}

func TestGenerateGiveawayWinnerHTML(t *testing.T) {
	endDate := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	html := GenerateGiveawayWinnerHTML("WINABC123", endDate, "data:image/png;base64,AAAA")
	assert.Contains(t, html, "WINABC123")
	assert.Contains(t, html, "20% off")
	assert.Contains(t, html, `src="data:image/png;base64,AAAA"`)
	assert.Contains(t, html, "April 30, 2026")

	// Sans QR, pas de balise img
	html = GenerateGiveawayWinnerHTML("WINABC123", endDate, "")
	assert.NotContains(t, html, "<img")
}

func TestGenerateContactTemplates(t *testing.T) {
	support := GenerateContactSupportHTML("Carol", "carol@example.com", "Broken link", "Line one\nLine two")
	assert.Contains(t, support, "Carol")
	assert.Contains(t, support, "carol@example.com")
	assert.Contains(t, support, "Broken link")
	assert.Contains(t, support, "Line one<br>Line two")

	ack := GenerateContactAckHTML("Carol", "Broken link", "Line one\nLine two")
	assert.Contains(t, ack, "Thanks for Contacting Us, Carol!")
	assert.Contains(t, ack, "Broken link")
	assert.Contains(t, ack, "Line one<br>Line two")
}
