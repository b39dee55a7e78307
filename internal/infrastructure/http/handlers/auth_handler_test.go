package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.TokenPair, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.TokenPair), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*inbound.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func newAuthRouter(svc inbound.AuthService) *gin.Engine {
	h := NewAuthHandler(svc, validator.New(validator.WithRequiredStructEnabled()))
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := new(MockAuthService)
	u, err := user.NewUser("maria@example.com", "Maria Silva", "s3cretpass")
	require.NoError(t, err)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(cmd inbound.RegisterCommand) bool {
		return cmd.Email == "maria@example.com"
	})).Return(u, nil)

	rec := postJSON(t, newAuthRouter(svc), "/auth/register", gin.H{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "s3cretpass",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Success bool         `json:"success"`
		Data    UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "maria@example.com", body.Data.Email)
	assert.Nil(t, body.Data.Profile)
}

func TestAuthHandler_RegisterRejectsShortPassword(t *testing.T) {
	svc := new(MockAuthService)

	rec := postJSON(t, newAuthRouter(svc), "/auth/register", gin.H{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_RegisterRejectsMalformedBody(t *testing.T) {
	svc := new(MockAuthService)
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginMapsInvalidCredentialsTo401(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.NewInvalidCredentialsError())

	rec := postJSON(t, newAuthRouter(svc), "/auth/login", gin.H{
		"email":    "maria@example.com",
		"password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, string(errors.CodeInvalidCredentials), body.Error.Code)
}

func TestAuthHandler_RefreshReturnsNewPair(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Refresh", mock.Anything, "old-refresh-token").
		Return(&inbound.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

	rec := postJSON(t, newAuthRouter(svc), "/auth/refresh", gin.H{
		"refreshToken": "old-refresh-token",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data inbound.TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new-access", body.Data.AccessToken)
	assert.EqualValues(t, 900, body.Data.ExpiresIn)
}
