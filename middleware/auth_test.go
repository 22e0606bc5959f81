package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := services.InitJWTService("test-secret"); err != nil {
		panic(err)
	}
}

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		restaurantID, _ := GetRestaurantIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"restaurant_id": restaurantID})
	})
	router.GET("/protected", chain...)
	router.POST("/protected", chain...)
	return router
}

func ownerToken(t *testing.T) string {
	t.Helper()
	token, err := services.GetJWTService().GenerateDashboardJWT("user-1", "rest-1", "owner@example.com", models.RoleOwner)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := protectedRouter(AuthMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router := protectedRouter(AuthMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	router := protectedRouter(AuthMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rest-1", "tenant from the token lands in the context")
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	router := protectedRouter(AuthMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: ownerToken(t)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rest-1")
}

func TestRequireOwnerBlocksOperator(t *testing.T) {
	router := protectedRouter(AuthMiddleware(), RequireOwner())

	operatorToken, err := services.GetJWTService().GenerateDashboardJWT("user-2", "rest-1", "operator@example.com", models.RoleOperator)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwnerAllowsOwner(t *testing.T) {
	router := protectedRouter(AuthMiddleware(), RequireOwner())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
