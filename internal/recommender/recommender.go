// Package recommender entraîne un petit modèle de filtrage collaboratif :
// factorisation de la matrice binaire user×produit par descente de gradient,
// puis classement des produits par produit scalaire des embeddings.
//
// Le modèle est un objet cache reconstructible avec un flag "ready" : tant
// qu'il n'est pas entraîné (ou pour un utilisateur inconnu), les appelants
// retombent sur les produits les plus récents.
package recommender

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"eshop_back_end/internal/database"
	"eshop_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"gonum.org/v1/gonum/mat"
)

const (
	Factors      = 5
	LearningRate = 0.1
	Iterations   = 500
)

// Interaction est une paire (utilisateur, produit) extraite des commandes.
type Interaction struct {
	UserID    string
	ProductID string
}

type Model struct {
	mu sync.RWMutex

	ready          bool
	userIndex      map[string]int
	productIDs     []string
	userFactors    *mat.Dense // nUsers × Factors
	productFactors *mat.Dense // nProducts × Factors
}

// Default est le modèle partagé du processus, entraîné une fois au démarrage.
var Default = &Model{}

// Ready indique si le modèle a été entraîné.
func (m *Model) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Fit reconstruit les embeddings depuis zéro à partir des interactions.
func (m *Model) Fit(interactions []Interaction) {
	userIndex := make(map[string]int)
	productIndex := make(map[string]int)
	var productIDs []string

	for _, it := range interactions {
		if _, ok := userIndex[it.UserID]; !ok {
			userIndex[it.UserID] = len(userIndex)
		}
		if _, ok := productIndex[it.ProductID]; !ok {
			productIndex[it.ProductID] = len(productIndex)
			productIDs = append(productIDs, it.ProductID)
		}
	}

	nUsers := len(userIndex)
	nProducts := len(productIDs)
	if nUsers == 0 || nProducts == 0 {
		return
	}

	// Matrice d'interactions binaire.
	ratings := mat.NewDense(nUsers, nProducts, nil)
	for _, it := range interactions {
		ratings.Set(userIndex[it.UserID], productIndex[it.ProductID], 1)
	}

	users := randomDense(nUsers, Factors)
	products := randomDense(nProducts, Factors)

	// Descente de gradient sur ||U·Pᵀ − R||².
	var pred, errMat, gradU, gradP mat.Dense
	for i := 0; i < Iterations; i++ {
		pred.Mul(users, products.T())
		errMat.Sub(&pred, ratings)

		gradU.Mul(&errMat, products)
		gradU.Scale(2*LearningRate/float64(nProducts), &gradU)
		users.Sub(users, &gradU)

		gradP.Mul(errMat.T(), users)
		gradP.Scale(2*LearningRate/float64(nUsers), &gradP)
		products.Sub(products, &gradP)
	}

	m.mu.Lock()
	m.userIndex = userIndex
	m.productIDs = productIDs
	m.userFactors = users
	m.productFactors = products
	m.ready = true
	m.mu.Unlock()
}

// Recommend retourne les n meilleurs produits pour un utilisateur connu.
// Le booléen est faux si le modèle n'est pas prêt ou l'utilisateur inconnu.
func (m *Model) Recommend(userID string, n int) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.ready {
		return nil, false
	}
	idx, ok := m.userIndex[userID]
	if !ok {
		return nil, false
	}

	userVec := m.userFactors.RowView(idx)

	type scored struct {
		id    string
		score float64
	}
	scores := make([]scored, len(m.productIDs))
	for j, pid := range m.productIDs {
		scores[j] = scored{id: pid, score: mat.Dot(userVec, m.productFactors.RowView(j))}
	}

	// Sélection des n meilleurs (n est petit, 5 en pratique).
	if n > len(scores) {
		n = len(scores)
	}
	top := make([]string, 0, n)
	used := make(map[int]bool, n)
	for k := 0; k < n; k++ {
		best := -1
		for j := range scores {
			if used[j] {
				continue
			}
			if best == -1 || scores[j].score > scores[best].score {
				best = j
			}
		}
		used[best] = true
		top = append(top, scores[best].id)
	}

	return top, true
}

func randomDense(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rand.NormFloat64() * 0.1
	}
	return mat.NewDense(r, c, data)
}

// TrainFromOrders charge toutes les commandes et entraîne le modèle partagé.
// Appelé une fois au démarrage du processus, hors du chemin des requêtes.
func TrainFromOrders(ctx context.Context) {
	cursor, err := database.Orders().Find(ctx, bson.M{})
	if err != nil {
		log.Println("❌ Entraînement recommender: lecture commandes échouée:", err)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("❌ Entraînement recommender: décodage échoué:", err)
		return
	}

	if len(orders) == 0 {
		log.Println("ℹ️ Aucune commande, entraînement recommender sauté")
		return
	}

	var interactions []Interaction
	for _, order := range orders {
		for _, item := range order.Items {
			interactions = append(interactions, Interaction{
				UserID:    order.UserID.Hex(),
				ProductID: item.ProductID.Hex(),
			})
		}
	}

	Default.Fit(interactions)
	log.Printf("✅ Recommender entraîné (%d commandes)", len(orders))
}
