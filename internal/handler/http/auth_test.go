package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/stafftrack/attendance-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAuthTestHandler(t *testing.T) AuthHandler {
	userRepo := postgresql.NewUserRepository(testHandlerDB)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	authSvc := authService.NewAuthService(testHandlerDB, userRepo, jwtSvc)
	return NewAuthHandler(authSvc)
}

func registerTestUser(t *testing.T, ctx context.Context, handler AuthHandler, username, password, role string) {
	body, _ := json.Marshal(auth.RegisterRequest{
		Username:    username,
		DisplayName: "Test " + role,
		Email:       username + "@example.com",
		Password:    password,
		Role:        role,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)

	body, _ := json.Marshal(auth.RegisterRequest{
		Username:    "alice.manager",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "SecurePass123",
		Role:        string(user.RoleManager),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeHandlerResponse(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "alice.manager", data["username"])
	assert.Greater(t, data["user_id"].(float64), float64(0))
}

// A member registers without any password at all.
func TestAuthHandler_Register_MemberWithoutPassword(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)

	body, _ := json.Marshal(auth.RegisterRequest{
		Username:    "bob.member",
		DisplayName: "Bob",
		Email:       "bob@example.com",
		Role:        string(user.RoleMember),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var passwordHash *string
	err := testHandlerDB.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE username = 'bob.member'`).Scan(&passwordHash)
	require.NoError(t, err)
	assert.Nil(t, passwordHash)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)

	body, _ := json.Marshal(auth.RegisterRequest{
		Username:    "carol.lead",
		DisplayName: "Carol",
		Email:       "carol@example.com",
		Password:    "short",
		Role:        string(user.RoleLead),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeHandlerResponse(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)
	registerTestUser(t, ctx, handler, "dave.lead", "SecurePass123", string(user.RoleLead))

	body, _ := json.Marshal(auth.RegisterRequest{
		Username:    "dave.lead",
		DisplayName: "Dave Again",
		Email:       "dave2@example.com",
		Password:    "SecurePass123",
		Role:        string(user.RoleLead),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)
	registerTestUser(t, ctx, handler, "erin.manager", "SecurePass123", string(user.RoleManager))

	body, _ := json.Marshal(auth.LoginRequest{Username: "erin.manager", Password: "SecurePass123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeHandlerResponse(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	loggedIn := data["user"].(map[string]interface{})
	assert.Equal(t, "erin.manager", loggedIn["username"])
	assert.Equal(t, string(user.RoleManager), loggedIn["user_level"])
}

func TestAuthHandler_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)
	registerTestUser(t, ctx, handler, "frank.lead", "SecurePass123", string(user.RoleLead))

	body, _ := json.Marshal(auth.LoginRequest{Username: "frank.lead", Password: "wrongpassword"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)

	body, _ := json.Marshal(auth.LoginRequest{Username: "nobody-here", Password: "SecurePass123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	// Same response as a wrong password; existence is not leaked
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MemberRefused(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler(t)
	registerTestUser(t, ctx, handler, "gail.member", "", string(user.RoleMember))

	body, _ := json.Marshal(auth.LoginRequest{Username: "gail.member", Password: "whatever123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()

	handler := createAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
