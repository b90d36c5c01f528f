package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/auth"
	"github.com/yigit/ojtportal/internal/pkg/logger"
)

// Defaults for the storage key and the login entry point
const (
	DefaultTokenKey  = "token"
	DefaultLoginPath = "/login"
)

// AuthAPI is the part of the OJT API the store forwards credentials to
type AuthAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
}

// Observer is notified whenever the identity changes. authenticated is false after logout.
type Observer func(identity *models.User, authenticated bool)

// Navigator moves the user to path, the login entry point after logout
type Navigator func(ctx context.Context, path string)

// Option configures a Store
type Option func(*Store)

// WithTokenKey overrides the storage key of the token
func WithTokenKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.tokenKey = key
		}
	}
}

// WithLoginPath overrides where Logout navigates to
func WithLoginPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.loginPath = path
		}
	}
}

// WithNavigator sets the function Logout navigates with
func WithNavigator(nav Navigator) Option {
	return func(s *Store) {
		s.navigate = nav
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// Store owns the session token and the identity decoded from it
type Store struct {
	storage   Storage
	auth      AuthAPI
	tokenKey  string
	loginPath string
	navigate  Navigator
	log       zerolog.Logger

	mu        sync.RWMutex
	identity  *models.User
	observers map[int]Observer
	nextID    int
}

// NewStore builds a store and restores the identity from a token already in storage.
// A token that cannot be decoded is logged and leaves the identity unset; the token stays.
func NewStore(ctx context.Context, storage Storage, authAPI AuthAPI, opts ...Option) (*Store, error) {
	s := &Store{
		storage:   storage,
		auth:      authAPI,
		tokenKey:  DefaultTokenKey,
		loginPath: DefaultLoginPath,
		navigate:  func(context.Context, string) {},
		log:       logger.Get(),
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(s)
	}

	token, err := storage.Get(ctx, s.tokenKey)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		s.identity = s.decode(token)
	}
	return s, nil
}

func (s *Store) decode(token string) *models.User {
	identity, err := auth.DecodeIdentity(token)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to decode session token")
		return nil
	}
	return &identity
}

// Token returns the stored token, empty when signed out
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.storage.Get(ctx, s.tokenKey)
}

// IsAuthenticated reports whether a token is present. The token itself is not validated.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to read session token")
		return false
	}
	return token != ""
}

// Identity returns a copy of the current identity, nil when unset
func (s *Store) Identity() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// SetIdentity replaces the identity and notifies observers. The token is left untouched.
func (s *Store) SetIdentity(identity *models.User) {
	s.mu.Lock()
	if identity != nil {
		copied := *identity
		identity = &copied
	}
	s.identity = identity
	s.mu.Unlock()

	s.notify(identity, identity != nil)
}

// Login forwards credentials to the API as given
func (s *Store) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.auth.Login(ctx, req)
}

// Register forwards an account registration to the API as given
func (s *Store) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.auth.Register(ctx, req)
}

// Persist stores the token from a successful login and adopts its user.
// When the response carries no user the identity is decoded from the token.
func (s *Store) Persist(ctx context.Context, resp *dto.AuthResponse) error {
	if resp == nil || resp.Token == "" {
		return fmt.Errorf("persist session: empty token")
	}
	if err := s.storage.Set(ctx, s.tokenKey, resp.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	identity := resp.User
	if identity == (models.User{}) {
		if decoded := s.decode(resp.Token); decoded != nil {
			identity = *decoded
		}
	}
	s.SetIdentity(&identity)
	return nil
}

// Logout removes the token, clears the identity, notifies observers and navigates to the login path.
// Logging out twice is harmless.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.Remove(ctx, s.tokenKey); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}
	s.SetIdentity(nil)
	s.navigate(ctx, s.loginPath)
	return nil
}

// LoginPath returns the login entry point
func (s *Store) LoginPath() string {
	return s.loginPath
}

// Subscribe registers an observer and returns the function removing it
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) notify(identity *models.User, authenticated bool) {
	s.mu.RLock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range observers {
		var copied *models.User
		if identity != nil {
			c := *identity
			copied = &c
		}
		fn(copied, authenticated)
	}
}
