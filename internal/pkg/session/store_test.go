package session

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
)

type fakeAuthAPI struct {
	login    dto.LoginRequest
	register dto.RegisterRequest
	resp     *dto.AuthResponse
	err      error
}

func (f *fakeAuthAPI) Login(_ context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	f.login = req
	return f.resp, f.err
}

func (f *fakeAuthAPI) Register(_ context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	f.register = req
	return f.resp, f.err
}

func testToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestNewStoreWithoutToken(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, NewMemoryStorage(nil), &fakeAuthAPI{})
	require.NoError(t, err)

	assert.False(t, store.IsAuthenticated(ctx))
	assert.Nil(t, store.Identity())
}

func TestNewStoreRestoresIdentity(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, jwt.MapClaims{"_id": "u1", "name": "Coordinator", "email": "c@x.ph"})

	store, err := NewStore(ctx, NewMemoryStorage(map[string]string{"token": token}), &fakeAuthAPI{})
	require.NoError(t, err)

	assert.True(t, store.IsAuthenticated(ctx))
	assert.Equal(t, &models.User{ID: "u1", Username: "Coordinator", Email: "c@x.ph"}, store.Identity())
}

func TestNewStoreRestoresIdentityFromUnsignedToken(t *testing.T) {
	ctx := context.Background()
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"id":"u1","username":"juan","position":"student"}`))

	for _, token := range []string{"opaque." + payload + ".sig", "hdr." + payload} {
		store, err := NewStore(ctx, NewMemoryStorage(map[string]string{"token": token}), &fakeAuthAPI{})
		require.NoError(t, err)

		assert.True(t, store.IsAuthenticated(ctx), token)
		assert.Equal(t, &models.User{ID: "u1", Username: "juan", Position: "student"}, store.Identity(), token)
	}
}

func TestNewStoreMalformedToken(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	store, err := NewStore(ctx,
		NewMemoryStorage(map[string]string{"token": "not-a-token"}),
		&fakeAuthAPI{},
		WithLogger(zerolog.New(&buf)),
	)
	require.NoError(t, err)

	// presence alone makes the session authenticated
	assert.True(t, store.IsAuthenticated(ctx))
	assert.Nil(t, store.Identity())
	assert.Contains(t, buf.String(), "Failed to decode session token")
}

func TestStoreCustomTokenKey(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage(map[string]string{"token": "x.y.z"})

	store, err := NewStore(ctx, storage, &fakeAuthAPI{}, WithTokenKey("ojt_token"))
	require.NoError(t, err)
	assert.False(t, store.IsAuthenticated(ctx))
}

func TestStoreLoginForwardsUnmodified(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{resp: &dto.AuthResponse{Token: "t"}}
	store, err := NewStore(ctx, NewMemoryStorage(nil), api)
	require.NoError(t, err)

	req := dto.LoginRequest{UsernameOrEmail: "  Coord ", Password: "pw"}
	resp, err := store.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req, api.login)
	assert.Equal(t, "t", resp.Token)

	// forwarding alone does not sign in
	assert.False(t, store.IsAuthenticated(ctx))

	api.err = errors.New("boom")
	_, err = store.Register(ctx, dto.RegisterRequest{Username: "u"})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "u", api.register.Username)
}

func TestStorePersistAndLogout(t *testing.T) {
	ctx := context.Background()
	var navigated []string
	store, err := NewStore(ctx, NewMemoryStorage(nil), &fakeAuthAPI{},
		WithLoginPath("/signin"),
		WithNavigator(func(_ context.Context, path string) { navigated = append(navigated, path) }),
	)
	require.NoError(t, err)

	var events []bool
	unsubscribe := store.Subscribe(func(_ *models.User, authenticated bool) {
		events = append(events, authenticated)
	})

	user := models.User{ID: "1", Username: "coord"}
	require.NoError(t, store.Persist(ctx, &dto.AuthResponse{Token: "abc", User: user}))
	assert.True(t, store.IsAuthenticated(ctx))
	assert.Equal(t, &user, store.Identity())

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Logout(ctx))
	assert.False(t, store.IsAuthenticated(ctx))
	assert.Nil(t, store.Identity())
	assert.Equal(t, []string{"/signin"}, navigated)

	// idempotent
	require.NoError(t, store.Logout(ctx))
	assert.Equal(t, []string{"/signin", "/signin"}, navigated)

	unsubscribe()
	unsubscribe()
	require.NoError(t, store.Persist(ctx, &dto.AuthResponse{Token: "abc", User: user}))
	assert.Equal(t, []bool{true, false, false}, events)
}

func TestStorePersistDecodesIdentityWhenUserMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, NewMemoryStorage(nil), &fakeAuthAPI{})
	require.NoError(t, err)

	token := testToken(t, jwt.MapClaims{"id": "7", "username": "s7", "position": "coordinator"})
	require.NoError(t, store.Persist(ctx, &dto.AuthResponse{Token: token}))
	assert.Equal(t, &models.User{ID: "7", Username: "s7", Position: "coordinator"}, store.Identity())

	assert.Error(t, store.Persist(ctx, &dto.AuthResponse{}))
	assert.Error(t, store.Persist(ctx, nil))
}

func TestStoreIdentityIsACopy(t *testing.T) {
	store, err := NewStore(context.Background(), NewMemoryStorage(nil), &fakeAuthAPI{})
	require.NoError(t, err)

	store.SetIdentity(&models.User{ID: "1"})
	identity := store.Identity()
	identity.ID = "2"
	assert.Equal(t, "1", store.Identity().ID)
}

func TestFileStorage(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ojt", "session.json")
	storage := NewFileStorage(path)

	value, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, storage.Set(ctx, "token", "abc"))

	// a second handle on the same file sees the value
	value, err = NewFileStorage(path).Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, storage.Remove(ctx, "token"))
	require.NoError(t, storage.Remove(ctx, "token"))
	assert.NoFileExists(t, path)
}

func TestMemoryBackendScopes(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	require.NoError(t, backend.Scope("a").Set(ctx, "token", "ta"))

	value, err := backend.Scope("b").Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = backend.Scope("a").Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "ta", value)

	require.NoError(t, backend.Scope("a").Remove(ctx, "token"))
	require.NoError(t, backend.Scope("b").Remove(ctx, "token"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { MustFromContext(ctx) })

	store, err := NewStore(ctx, NewMemoryStorage(nil), &fakeAuthAPI{})
	require.NoError(t, err)

	ctx = WithStore(ctx, store)
	assert.Same(t, store, MustFromContext(ctx))
}
