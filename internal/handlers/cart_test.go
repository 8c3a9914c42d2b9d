package handlers

import (
	"errors"
	"testing"

	"eshop_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDecodeCartExisting(t *testing.T) {
	userID := primitive.NewObjectID()
	stored := models.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []models.CartItem{
			{ID: primitive.NewObjectID(), ProductID: primitive.NewObjectID(), Quantity: 2},
		},
	}

	res := mongo.NewSingleResultFromDocument(stored, nil, nil)
	cart, err := decodeCart(res, userID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, cart.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestDecodeCartNoDocumentStartsEmpty(t *testing.T) {
	userID := primitive.NewObjectID()

	res := mongo.NewSingleResultFromDocument(models.Cart{}, mongo.ErrNoDocuments, nil)
	cart, err := decodeCart(res, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestDecodeCartReadErrorPropagates(t *testing.T) {
	// Une erreur de lecture transitoire ne doit pas passer pour un panier
	// absent : l'upsert qui suivrait écraserait le panier existant.
	readErr := errors.New("connection reset by peer")

	res := mongo.NewSingleResultFromDocument(models.Cart{}, readErr, nil)
	_, err := decodeCart(res, primitive.NewObjectID())
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}
