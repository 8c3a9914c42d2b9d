package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendNotReady(t *testing.T) {
	m := &Model{}

	ids, ok := m.Recommend("u1", 5)
	assert.False(t, ok)
	assert.Nil(t, ids)
}

func TestFitEmptyInteractions(t *testing.T) {
	m := &Model{}
	m.Fit(nil)

	assert.False(t, m.Ready())
}

func TestRecommendUnknownUser(t *testing.T) {
	m := &Model{}
	m.Fit([]Interaction{{UserID: "u1", ProductID: "p1"}})
	require.True(t, m.Ready())

	_, ok := m.Recommend("stranger", 5)
	assert.False(t, ok)
}

func TestRecommendRanksInteractedProducts(t *testing.T) {
	// u1 n'achète que p1/p2, u2 n'achète que p3/p4. Après entraînement,
	// les produits achetés doivent sortir en tête pour chaque utilisateur.
	interactions := []Interaction{
		{UserID: "u1", ProductID: "p1"},
		{UserID: "u1", ProductID: "p2"},
		{UserID: "u2", ProductID: "p3"},
		{UserID: "u2", ProductID: "p4"},
	}

	m := &Model{}
	m.Fit(interactions)
	require.True(t, m.Ready())

	top, ok := m.Recommend("u1", 2)
	require.True(t, ok)
	require.Len(t, top, 2)
	assert.ElementsMatch(t, []string{"p1", "p2"}, top)

	top, ok = m.Recommend("u2", 2)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"p3", "p4"}, top)
}

func TestRecommendCapsAtCatalogSize(t *testing.T) {
	m := &Model{}
	m.Fit([]Interaction{
		{UserID: "u1", ProductID: "p1"},
		{UserID: "u1", ProductID: "p2"},
	})
	require.True(t, m.Ready())

	top, ok := m.Recommend("u1", 10)
	require.True(t, ok)
	assert.Len(t, top, 2)
}
