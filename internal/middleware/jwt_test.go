package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eshop_back_end/internal/models"
	"eshop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signedToken(t *testing.T, isAdmin bool) (string, string) {
	t.Helper()
	user := models.User{
		ID:      primitive.NewObjectID(),
		Email:   "test@example.com",
		IsAdmin: isAdmin,
	}
	token, err := utils.GenerateJWT(user)
	require.NoError(t, err)
	return token, user.ID.Hex()
}

func TestAuthRequiredNoToken(t *testing.T) {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	token, userID := signedToken(t, false)

	var gotUserID string
	var gotAdmin interface{}

	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		gotUserID = c.GetString("user_id")
		gotAdmin, _ = c.Get("is_admin")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, false, gotAdmin)
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	r := gin.New()
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		_, exists := c.Get("user_id")
		assert.False(t, exists)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthWithToken(t *testing.T) {
	token, userID := signedToken(t, false)

	r := gin.New()
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		assert.Equal(t, userID, c.GetString("user_id"))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	adminToken, _ := signedToken(t, true)
	customerToken, _ := signedToken(t, false)

	r := gin.New()
	r.GET("/admin", AuthRequired(), RequireAdmin, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
