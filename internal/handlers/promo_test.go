package handlers

import (
	"testing"
	"time"

	"eshop_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPromoAppliesUnrestricted(t *testing.T) {
	promo := models.Promo{Code: "SAVE20", Discount: 20}

	assert.True(t, PromoApplies(promo, []PromoItem{{ProductID: "abc"}}))
	assert.True(t, PromoApplies(promo, nil))
}

func TestPromoAppliesProductRestriction(t *testing.T) {
	promo := models.Promo{
		Code:       "LAPTOP10",
		Discount:   10,
		ProductIDs: []string{"p1", "p2"},
	}

	assert.True(t, PromoApplies(promo, []PromoItem{{ProductID: "p2"}, {ProductID: "p9"}}))
	assert.False(t, PromoApplies(promo, []PromoItem{{ProductID: "p9"}}))
	assert.False(t, PromoApplies(promo, nil))
}

func TestPromoAppliesCategoryRestriction(t *testing.T) {
	promo := models.Promo{
		Code:     "TECH15",
		Discount: 15,
		Category: "electronics",
	}

	items := []PromoItem{
		{ProductID: "p1", Category: "clothing"},
		{ProductID: "p2", Category: "electronics"},
	}
	assert.True(t, PromoApplies(promo, items))
	assert.False(t, PromoApplies(promo, []PromoItem{{ProductID: "p1", Category: "clothing"}}))
}

func TestPromoAppliesProductRestrictionWinsOverCategory(t *testing.T) {
	// Si les deux restrictions sont posées, la liste de produits prime.
	promo := models.Promo{
		Code:       "BOTH",
		Discount:   5,
		ProductIDs: []string{"p1"},
		Category:   "electronics",
	}

	assert.False(t, PromoApplies(promo, []PromoItem{{ProductID: "p2", Category: "electronics"}}))
	assert.True(t, PromoApplies(promo, []PromoItem{{ProductID: "p1", Category: "clothing"}}))
}

func TestPromoWindowContains(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	promo := models.Promo{Code: "JUNE", StartDate: start, EndDate: end}

	assert.True(t, PromoWindowContains(promo, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, PromoWindowContains(promo, start), "borne de début incluse")
	assert.True(t, PromoWindowContains(promo, end), "borne de fin incluse")
	assert.False(t, PromoWindowContains(promo, start.Add(-time.Second)))
	assert.False(t, PromoWindowContains(promo, end.Add(time.Second)))
}

func TestDiscountedTotal(t *testing.T) {
	assert.Equal(t, 80.0, DiscountedTotal(100, 20))
	assert.Equal(t, 0.0, DiscountedTotal(100, 100))
	assert.Equal(t, 100.0, DiscountedTotal(100, 0))

	// Arrondi au centime
	assert.Equal(t, 33.33, DiscountedTotal(49.99, 33.333))
	assert.Equal(t, 9.0, DiscountedTotal(9.99, 9.91))
}
