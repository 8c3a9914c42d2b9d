package order

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(url string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestPaginationDefaults(t *testing.T) {
	c := testContext("/api/orders")
	page, limit := Pagination(c)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
}

func TestPaginationClampsInvalidValues(t *testing.T) {
	c := testContext("/api/orders?page=-3&limit=0")
	page, limit := Pagination(c)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	c = testContext("/api/orders?page=4&limit=25")
	page, limit = Pagination(c)
	assert.Equal(t, int64(4), page)
	assert.Equal(t, int64(25), limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(0), TotalPages(5, 0))
}

func TestBuildOrderFilterScopesNonAdmin(t *testing.T) {
	userID := primitive.NewObjectID()

	c := testContext("/api/orders")
	c.Set("is_admin", false)
	c.Set("user_id", userID.Hex())

	filter := buildOrderFilter(c)
	assert.Equal(t, userID, filter["user_id"])
}

func TestBuildOrderFilterAdminUnscoped(t *testing.T) {
	c := testContext("/api/orders?status=Shipped")
	c.Set("is_admin", true)
	c.Set("user_id", primitive.NewObjectID().Hex())

	filter := buildOrderFilter(c)
	_, scoped := filter["user_id"]
	assert.False(t, scoped)
	assert.Equal(t, "Shipped", filter["status"])
}

func TestBuildOrderFilterSearchAndDates(t *testing.T) {
	c := testContext("/api/orders?search=alice&dateFrom=2026-01-01T00:00:00Z&dateTo=2026-01-31T23:59:59Z")
	c.Set("is_admin", true)

	filter := buildOrderFilter(c)

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 1, "pas d'ObjectID valide dans la recherche")

	created, ok := filter["created_at"].(bson.M)
	assert.True(t, ok)
	assert.Contains(t, created, "$gte")
	assert.Contains(t, created, "$lte")
}

func TestBuildOrderFilterSearchObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	c := testContext("/api/orders?search=" + oid.Hex())
	c.Set("is_admin", true)

	filter := buildOrderFilter(c)
	or := filter["$or"].(bson.A)
	assert.Len(t, or, 2, "la recherche matche aussi l'_id")
}
