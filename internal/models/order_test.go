package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderPlaced, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("Refunded"))
	assert.False(t, ValidOrderStatus("processing"), "la casse compte")
	assert.False(t, ValidOrderStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{PaymentPending, PaymentPaid, PaymentFailed} {
		assert.True(t, ValidPaymentStatus(s), s)
	}
	assert.False(t, ValidPaymentStatus("paid"))
	assert.False(t, ValidPaymentStatus(""))
}

func TestValidAdStatus(t *testing.T) {
	for _, s := range []string{AdStatusPending, AdStatusActive, AdStatusExpired} {
		assert.True(t, ValidAdStatus(s), s)
	}
	assert.False(t, ValidAdStatus("archived"))
}
