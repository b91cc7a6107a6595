package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc           func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	LoginFunc              func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	VerifyEmailFunc        func(ctx context.Context, code string) (*entity.User, error)
	ResendVerificationFunc func(ctx context.Context, email string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return nil, errors.New("register failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, errors.New("login failed")
}

func (m *mockAuthUsecase) VerifyEmail(ctx context.Context, code string) (*entity.User, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, code)
	}
	return nil, errors.New("verify failed")
}

func (m *mockAuthUsecase) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return errors.New("resend failed")
}

func authRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/verify-email", h.VerifyEmail)
	r.POST("/auth/resend-verification", h.ResendVerification)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okResult() *usecase.AuthResult {
	return &usecase.AuthResult{
		Token: "signed-token",
		User:  &entity.User{ID: uuid.New(), Fullname: "Ada", Email: "ada@example.com", Role: entity.RoleMember},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		registerFunc   func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success",
			requestBody: gin.H{"fullname": "Ada", "email": "ada@example.com", "password": "password123"},
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return okResult(), nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "signed-token",
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"fullname": "Ada", "email": "not-an-email", "password": "password123"},
			registerFunc:   nil, // usecase is not reached
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request",
		},
		{
			name:           "short password",
			requestBody:    gin.H{"fullname": "Ada", "email": "ada@example.com", "password": "short"},
			registerFunc:   nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request",
		},
		{
			name:        "duplicate email",
			requestBody: gin.H{"fullname": "Ada", "email": "dup@example.com", "password": "password123"},
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "email already exists",
		},
		{
			name:        "infrastructure failure",
			requestBody: gin.H{"fullname": "Ada", "email": "ada@example.com", "password": "password123"},
			registerFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authRouter(&mockAuthUsecase{RegisterFunc: tt.registerFunc})
			w := postJSON(t, r, "/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthHandler_Register_PassesFields(t *testing.T) {
	var got usecase.RegisterInput
	r := authRouter(&mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
			got = in
			return okResult(), nil
		},
	})

	postJSON(t, r, "/auth/register", gin.H{
		"fullname":  "Grace",
		"email":     "grace@example.com",
		"password":  "password123",
		"user_role": "admin",
		"is_active": true,
	})

	assert.Equal(t, "Grace", got.Fullname)
	assert.Equal(t, "admin", got.Role)
	assert.True(t, got.IsActive)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		loginFunc      func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "ada@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return okResult(), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "signed-token",
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"email": "ada@example.com"},
			loginFunc:      nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request",
		},
		{
			name:        "bad credentials",
			requestBody: gin.H{"email": "ada@example.com", "password": "wrong"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid credentials",
		},
		{
			name:        "inactive account",
			requestBody: gin.H{"email": "ada@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrAccountInactive
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "account is not active",
		},
		{
			name:        "unverified account",
			requestBody: gin.H{"email": "ada@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrEmailNotVerified
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "verify your email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authRouter(&mockAuthUsecase{LoginFunc: tt.loginFunc})
			w := postJSON(t, r, "/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		verifyFunc     func(ctx context.Context, code string) (*entity.User, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			code: "live-code",
			verifyFunc: func(ctx context.Context, code string) (*entity.User, error) {
				return &entity.User{Email: "ada@example.com", IsEmailVerified: true}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Email verified successfully",
		},
		{
			name: "invalid code",
			code: "bad-code",
			verifyFunc: func(ctx context.Context, code string) (*entity.User, error) {
				return nil, usecase.ErrInvalidVerificationCode
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid verification code",
		},
		{
			name: "expired code",
			code: "old-code",
			verifyFunc: func(ctx context.Context, code string) (*entity.User, error) {
				return nil, usecase.ErrVerificationCodeExpired
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authRouter(&mockAuthUsecase{VerifyEmailFunc: tt.verifyFunc})

			req, _ := http.NewRequest(http.MethodGet, "/auth/verify-email?code="+tt.code, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	tests := []struct {
		name           string
		resendFunc     func(ctx context.Context, email string) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			resendFunc:     func(ctx context.Context, email string) error { return nil },
			expectedStatus: http.StatusOK,
			expectedBody:   "Verification email resent",
		},
		{
			name:           "unknown email",
			resendFunc:     func(ctx context.Context, email string) error { return usecase.ErrUserNotFound },
			expectedStatus: http.StatusNotFound,
			expectedBody:   "user not found",
		},
		{
			name:           "delivery failure",
			resendFunc:     func(ctx context.Context, email string) error { return usecase.ErrNotificationFailed },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to send verification email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authRouter(&mockAuthUsecase{ResendVerificationFunc: tt.resendFunc})
			w := postJSON(t, r, "/auth/resend-verification", gin.H{"email": "ada@example.com"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
