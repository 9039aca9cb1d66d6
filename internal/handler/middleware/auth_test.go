//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/usecase"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(cfg config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	duration, _ := time.ParseDuration(cfg.Duration)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Secret, duration)))

	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	}

	r := gin.New()
	r.GET("/private", auth.RequireAuth(), whoami)
	r.GET("/operator", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOperator), whoami)
	r.GET("/public", auth.OptionalAuth(), whoami)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	tokens := authtest.NewJWTHelper(cfg)
	router := newAuthRouter(cfg)
	userID := uuid.New()

	t.Run("bearer token authenticates", func(t *testing.T) {
		token := tokens.GenerateToken(t, userID, user.RoleCustomer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "customer", body["role"])
	})

	t.Run("query token authenticates event streams", func(t *testing.T) {
		token := tokens.GenerateToken(t, userID, user.RoleCustomer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private?access_token="+token, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		token := tokens.CreateExpiredToken(t, userID, user.RoleCustomer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "someone-else", Duration: "1h"})
		token := other.GenerateToken(t, userID, user.RoleAdmin)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("role gate", func(t *testing.T) {
		testCases := []struct {
			role user.Role
			want int
		}{
			{user.RoleCustomer, http.StatusForbidden},
			{user.RoleOperator, http.StatusOK},
			{user.RoleAdmin, http.StatusOK},
		}
		for _, tc := range testCases {
			t.Run(string(tc.role), func(t *testing.T) {
				rec := httptest.PerformRequest(t, router, http.MethodGet, "/operator", nil, tokens.GenerateToken(t, userID, tc.role))
				assert.Equal(t, tc.want, rec.Code)
			})
		}
	})

	t.Run("optional auth never aborts", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "garbage")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, uuid.Nil.String(), body["user_id"])
		assert.Empty(t, body["role"])
	})
}
