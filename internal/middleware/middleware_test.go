package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/logger"
	"github.com/yigit/ojtportal/internal/pkg/session"
	"github.com/yigit/ojtportal/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopAuthAPI struct{}

func (nopAuthAPI) Login(context.Context, dto.LoginRequest) (*dto.AuthResponse, error) {
	return nil, errors.New("not used")
}

func (nopAuthAPI) Register(context.Context, dto.RegisterRequest) (*dto.AuthResponse, error) {
	return nil, errors.New("not used")
}

type failingBackend struct{}

func (failingBackend) Scope(string) session.Storage { return failingStorage{} }

type failingStorage struct{}

func (failingStorage) Get(context.Context, string) (string, error) { return "", errors.New("redis down") }
func (failingStorage) Set(context.Context, string, string) error   { return errors.New("redis down") }
func (failingStorage) Remove(context.Context, string) error        { return errors.New("redis down") }

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	require.NoError(t, err)
	return token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func newSessionRouter(backend session.Backend) *gin.Engine {
	m := NewSessionMiddleware(backend, nopAuthAPI{}, SessionConfig{LoginPath: "/signin"}, logger.Nop())
	r := gin.New()
	r.Use(m.Session())
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		store := session.MustFromContext(c.Request.Context())
		c.JSON(http.StatusOK, store.Identity())
	})
	r.POST("/seed", func(c *gin.Context) {
		store := session.MustFromContext(c.Request.Context())
		err := store.Persist(c.Request.Context(), &dto.AuthResponse{Token: c.Query("token")})
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionIssuesCookieAndRequiresAuth(t *testing.T) {
	r := newSessionRouter(session.NewMemoryBackend())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, dto.ErrorCodeUnauthorized, detail.Code)
	assert.Equal(t, "/signin", detail.Redirect)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessionCookieKeepsToken(t *testing.T) {
	r := newSessionRouter(session.NewMemoryBackend())
	token := signedToken(t, jwt.MapClaims{"id": "u1", "username": "coord", "position": "Coordinator"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/seed?token="+token, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u1","username":"coord","email":"","position":"Coordinator"}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionReplacesInvalidCookie(t *testing.T) {
	r := newSessionRouter(session.NewMemoryBackend())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "not-a-uuid", cookies[0].Value)
}

func TestSessionBearerToken(t *testing.T) {
	r := newSessionRouter(session.NewMemoryBackend())
	token := signedToken(t, jwt.MapClaims{"_id": "u2", "name": "juan"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u2","username":"juan","email":""}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionStorageUnavailable(t *testing.T) {
	r := newSessionRouter(failingBackend{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, dto.ErrorCodeExternalServiceError, decodeError(t, rec).Code)
}

func TestRequireAuthWithoutSession(t *testing.T) {
	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, session.DefaultLoginPath, decodeError(t, rec).Redirect)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback []string
		status   int
		code     dto.ErrorCode
		message  string
	}{
		{
			name:    "form error",
			err:     validation.NewFormError(validation.Errors{"email": "Email is required"}),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeValidationFailed,
			message: "Please correct the highlighted fields",
		},
		{
			name:    "upstream unauthorized uses api message",
			err:     &apperrors.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"},
			status:  http.StatusUnauthorized,
			code:    dto.ErrorCodeUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "forbidden",
			err:     &apperrors.APIError{StatusCode: http.StatusForbidden},
			status:  http.StatusForbidden,
			code:    dto.ErrorCodeForbidden,
			message: "Permission denied",
		},
		{
			name:    "not found",
			err:     &apperrors.APIError{StatusCode: http.StatusNotFound, Message: "Student not found"},
			status:  http.StatusNotFound,
			code:    dto.ErrorCodeResourceNotFound,
			message: "Student not found",
		},
		{
			name:    "bad request",
			err:     apperrors.NewBadRequestError("Unknown field"),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeBadRequest,
			message: "Unknown field",
		},
		{
			name:    "missing upload",
			err:     apperrors.NewCustomError(apperrors.ErrMissingUpload, "Please select a requirement and file"),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeBadRequest,
			message: "Please select a requirement and file",
		},
		{
			name:     "unreachable",
			err:      fmt.Errorf("GET /students: %w", apperrors.ErrUpstreamUnreachable),
			fallback: []string{"Failed to load students"},
			status:   http.StatusBadGateway,
			code:     dto.ErrorCodeExternalServiceError,
			message:  "Failed to load students",
		},
		{
			name:    "upstream conflict passes through",
			err:     &apperrors.APIError{StatusCode: http.StatusConflict, Message: "Student ID already exists"},
			status:  http.StatusConflict,
			code:    dto.ErrorCodeExternalServiceError,
			message: "Student ID already exists",
		},
		{
			name:     "upstream failure is a bad gateway",
			err:      &apperrors.APIError{StatusCode: http.StatusInternalServerError},
			fallback: []string{"Clock action failed"},
			status:   http.StatusBadGateway,
			code:     dto.ErrorCodeExternalServiceError,
			message:  "Clock action failed",
		},
		{
			name:    "anything else",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    dto.ErrorCodeInternalServer,
			message: "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err, tt.fallback...)

			assert.Equal(t, tt.status, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.code, detail.Code)
			assert.Equal(t, tt.message, detail.Message)
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestHandleAPIErrorFormFields(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, validation.NewFormError(validation.Errors{"email": "Email is required"}))

	assert.Equal(t, map[string]string{"email": "Email is required"}, decodeError(t, rec).Fields)
}

func TestHandleBindingError(t *testing.T) {
	require.NoError(t, RegisterValidators())

	r := gin.New()
	r.POST("/clock", func(c *gin.Context) {
		var req dto.ClockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clock", strings.NewReader(`{"action":"BREAK"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, map[string]string{"action": "action must be one of IN, OUT, LUNCH IN, LUNCH OUT"}, detail.Fields)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clock", strings.NewReader(`{"action":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail = decodeError(t, rec)
	assert.Equal(t, dto.ErrorCodeBadRequest, detail.Code)
	assert.Equal(t, "Invalid request format", detail.Message)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clock", strings.NewReader(`{"action":"LUNCH OUT"}`)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.Nop()), Recovery(logger.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, decodeError(t, rec).Code)
}
