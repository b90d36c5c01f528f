package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/auth"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

// DefaultCookieName names the cookie carrying the session id
const DefaultCookieName = "ojt_sid"

// SessionConfig describes the session id cookie and the store settings
type SessionConfig struct {
	CookieName   string
	CookieDomain string
	CookieSecure bool
	CookieMaxAge int
	TokenKey     string
	LoginPath    string
}

// SessionMiddleware attaches a session store to every request
type SessionMiddleware struct {
	backend session.Backend
	authAPI session.AuthAPI
	cfg     SessionConfig
	log     zerolog.Logger
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(backend session.Backend, authAPI session.AuthAPI, cfg SessionConfig, log zerolog.Logger) *SessionMiddleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.TokenKey == "" {
		cfg.TokenKey = session.DefaultTokenKey
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = session.DefaultLoginPath
	}
	return &SessionMiddleware{
		backend: backend,
		authAPI: authAPI,
		cfg:     cfg,
		log:     log,
	}
}

// Session resolves the caller's storage and installs the store in the request context.
// A bearer token is used as a request-scoped session, otherwise the session cookie picks
// the stored session, and a fresh one is issued when it is missing.
func (m *SessionMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		storage := m.storage(c)

		// logout only clears the token here, the browser follows the redirect it is given
		store, err := session.NewStore(c.Request.Context(), storage, m.authAPI,
			session.WithTokenKey(m.cfg.TokenKey),
			session.WithLoginPath(m.cfg.LoginPath),
			session.WithLogger(m.log),
		)
		if err != nil {
			m.log.Error().Err(err).Msg("Session storage unavailable")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Session storage unavailable")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Request = c.Request.WithContext(session.WithStore(c.Request.Context(), store))
		c.Next()
	}
}

func (m *SessionMiddleware) storage(c *gin.Context) session.Storage {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, err := auth.ExtractBearerToken(header); err == nil && strings.TrimSpace(token) != "" {
			return session.NewMemoryStorage(map[string]string{m.cfg.TokenKey: token})
		}
	}

	sid, err := c.Cookie(m.cfg.CookieName)
	if err != nil || uuid.Validate(sid) != nil {
		sid = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cfg.CookieName, sid, m.cfg.CookieMaxAge, "/", m.cfg.CookieDomain, m.cfg.CookieSecure, true)
	}
	return m.backend.Scope(sid)
}

// RequireAuth rejects requests whose session holds no token
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := session.FromContext(c.Request.Context())
		if !ok || !store.IsAuthenticated(c.Request.Context()) {
			loginPath := session.DefaultLoginPath
			if ok {
				loginPath = store.LoginPath()
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithRedirect(loginPath)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
