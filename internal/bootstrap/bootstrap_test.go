package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/ojtportal/internal/config"
	"github.com/yigit/ojtportal/internal/pkg/logger"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeOJT stands in for the OJT REST API
type fakeOJT struct {
	token         string
	registrations atomic.Int32
	clocks        atomic.Int32
	lastDocs      atomic.Value
	lastFile      atomic.Value
}

func (f *fakeOJT) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+f.token
	}

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "secret1" {
			writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"token":"`+f.token+`","user":{"id":"u1","username":"juan","email":"juan@school.edu.ph"}}`)
	})
	mux.HandleFunc("POST /students/register", func(w http.ResponseWriter, r *http.Request) {
		f.registrations.Add(1)
		writeJSON(w, http.StatusCreated, `{"message":"ok"}`)
	})
	mux.HandleFunc("GET /timelogs/today", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, `{"message":"Not authorized"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"data":[{"id":"t1","action":"IN","timestamp":"2026-01-05T08:30:00Z"}]}`)
	})
	mux.HandleFunc("POST /timelogs/clock", func(w http.ResponseWriter, r *http.Request) {
		f.clocks.Add(1)
		writeJSON(w, http.StatusCreated, `{"message":"Clocked in"}`)
	})
	mux.HandleFunc("POST /submissions", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, `{}`)
			return
		}
		file, header, err := r.FormFile("submitted_file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, `{"message":"file missing"}`)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		f.lastDocs.Store(r.FormValue("nameOfDocs"))
		f.lastFile.Store(header.Filename + ":" + string(content))
		writeJSON(w, http.StatusCreated, `{"message":"Requirement submitted","data":{"nameOfDocs":"Weekly Report"}}`)
	})
	return mux
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeOJT) {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "u1", "username": "juan"}).
		SignedString([]byte("test"))
	require.NoError(t, err)
	ojt := &fakeOJT{token: token}
	upstream := httptest.NewServer(ojt.handler(t))
	t.Cleanup(upstream.Close)

	config.DotEnvPath = ""
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.API.BaseURL = upstream.URL
	cfg.Server.MaxUploadBytes = 1 << 10

	deps, err := BuildDependencies(cfg, session.NewMemoryBackend(), logger.Nop())
	require.NoError(t, err)
	router, err := SetupRouter(cfg, deps, logger.Nop())
	require.NoError(t, err)
	return router, ojt
}

func serve(router http.Handler, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPingAndHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong","status":"success"}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	router, ojt := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/timelogs/today", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	sid := cookies[0]

	rec = serve(router, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"usernameOrEmail":"juan","password":"wrong"}`), sid)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = serve(router, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"usernameOrEmail":"juan","password":"secret1"}`), sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ojt.token)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil), sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/timelogs/today", nil), sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"IN"`)

	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/timelogs/today", nil), sid)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegistrationIsValidatedBeforeSending(t *testing.T) {
	router, ojt := newTestRouter(t)

	rec := serve(router, jsonRequest(http.MethodPost, "/api/v1/registration", `{"pendingStudentId":"18-02132"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"studentId"`)
	assert.Zero(t, ojt.registrations.Load())

	body := `{
		"pendingStudentId":"18-0-2132","pendingFirstname":"Juan","pendingLastname":"Dela Cruz",
		"pendingEmail":"juan@school.edu.ph","pendingAddress":"Cebu City","pendingCourse":"BSIT",
		"pendingPassword":"secret1","confirmPassword":"secret1"
	}`
	rec = serve(router, jsonRequest(http.MethodPost, "/api/v1/registration", body))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
	assert.EqualValues(t, 1, ojt.registrations.Load())
}

func TestSubmitRequirementWithBearerToken(t *testing.T) {
	router, ojt := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("nameOfDocs", "Weekly Report"))
	part, err := mw.CreateFormFile("submitted_file", "week1.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ojt.token)
	rec := serve(router, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Weekly Report", ojt.lastDocs.Load())
	assert.Equal(t, "week1.pdf:%PDF", ojt.lastFile.Load())
}

func TestSubmitRequirementTooLarge(t *testing.T) {
	router, ojt := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("nameOfDocs", "Weekly Report"))
	part, err := mw.CreateFormFile("submitted_file", "big.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 4<<10))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ojt.token)
	rec := serve(router, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Nil(t, ojt.lastDocs.Load())
}

func TestClockActionIsBoundBeforeSending(t *testing.T) {
	router, ojt := newTestRouter(t)

	req := jsonRequest(http.MethodPost, "/api/v1/timelogs/clock", `{"action":"BREAK"}`)
	req.Header.Set("Authorization", "Bearer "+ojt.token)
	rec := serve(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "action must be one of IN, OUT, LUNCH IN, LUNCH OUT")
	assert.Zero(t, ojt.clocks.Load())

	req = jsonRequest(http.MethodPost, "/api/v1/timelogs/clock", `{"action":"LUNCH OUT"}`)
	req.Header.Set("Authorization", "Bearer "+ojt.token)
	rec = serve(router, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, ojt.clocks.Load())
}

func TestRegistrationChangeMasksInput(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"pendingFirstname":"Juan","errors":{"studentId":"Student ID is required"},"name":"studentId","value":"1802132"}`
	rec := serve(router, jsonRequest(http.MethodPost, "/api/v1/registration/change", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Form   map[string]string `json:"form"`
			Errors map[string]string `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "18-0-2132", resp.Data.Form["pendingStudentId"])
	assert.Equal(t, "Juan", resp.Data.Form["pendingFirstname"])
	assert.NotContains(t, resp.Data.Errors, "studentId")
}
