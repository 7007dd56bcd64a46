package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/crm_go_server/config"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
	"github.com/qs3c/crm_go_server/internal/repository"
	"github.com/qs3c/crm_go_server/internal/service"
	"github.com/qs3c/crm_go_server/internal/testutil"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	free := 30
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret-key",
			ExpireHours: 24,
		},
		Plans: config.PlansConfig{
			Levels: map[string]config.PlanLevel{
				"free": {DisplayName: "Free", ContactLimit: &free},
			},
		},
	}

	usageService := service.NewUsageService(contactRepo, subscriptionRepo, cfg)
	authService := service.NewAuthService(userRepo, usageService, cfg)
	handler := NewAuthHandler(authService)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, cleanup
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password123",
	}

	w := performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Username: "testuser1",
		Password: "password123",
	}

	w := performRequest(router, "POST", "/register", req)
	assert.Equal(t, http.StatusOK, w.Code)

	req.Username = "testuser2"
	w = performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestAuthHandler_Register_InvalidRequest(t *testing.T) {
	handler, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	// 密码太短
	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "short",
	}

	w := performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestAuthHandler_LoginFlow(t *testing.T) {
	handler, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/register", dto.RegisterRequest{
		Email:    "flow@example.com",
		Username: "flowuser",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "POST", "/login", dto.LoginRequest{
		Email:    "flow@example.com",
		Password: "password123",
	})
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "flowuser", user["username"])
	assert.Equal(t, "free", user["plan"])
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/register", dto.RegisterRequest{
		Email:    "wrongpw@example.com",
		Username: "wrongpw",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "POST", "/login", dto.LoginRequest{
		Email:    "wrongpw@example.com",
		Password: "bad-password",
	})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeAuthFailed, resp.Code)
}
