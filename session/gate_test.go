package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerseystore/storefront-go/api"
	"github.com/jerseystore/storefront-go/domain"
)

// --- Fake Backend ---

type fakeBackend struct {
	loginResult  api.LoginResult
	loginErr     error
	profileUser  domain.User
	profileErr   error
	loginCalls   int
	profileCalls int
	lastToken    string
}

func (f *fakeBackend) Login(_ context.Context, _ api.LoginInput) (api.LoginResult, error) {
	f.loginCalls++
	return f.loginResult, f.loginErr
}

func (f *fakeBackend) Profile(_ context.Context, token string) (domain.User, error) {
	f.profileCalls++
	f.lastToken = token
	return f.profileUser, f.profileErr
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "3",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// --- Restore Tests ---

func TestRestore_NoStoredToken(t *testing.T) {
	backend := &fakeBackend{}
	gate := NewGate(backend, NewMemoryStore(), newTestLogger())

	assert.True(t, gate.Restoring())
	assert.Equal(t, Wait, gate.Route())

	gate.Restore(context.Background())

	assert.False(t, gate.Restoring())
	assert.False(t, gate.Authenticated())
	assert.Equal(t, ShowAuth, gate.Route())
	assert.Equal(t, 0, backend.profileCalls)
}

func TestRestore_ValidToken(t *testing.T) {
	backend := &fakeBackend{profileUser: domain.User{ID: 3, Name: "Ana", Email: "ana@example.com"}}
	tokens := NewMemoryStore()
	require.NoError(t, tokens.Save("opaque-token"))

	gate := NewGate(backend, tokens, newTestLogger())
	gate.Restore(context.Background())

	assert.True(t, gate.Authenticated())
	assert.Equal(t, ShowCatalog, gate.Route())
	assert.Equal(t, "opaque-token", gate.Token())
	assert.Equal(t, "opaque-token", backend.lastToken)

	user, ok := gate.User()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestRestore_RejectedTokenSignsOut(t *testing.T) {
	backend := &fakeBackend{profileErr: errors.New("401 unauthorized")}
	tokens := NewMemoryStore()
	require.NoError(t, tokens.Save("stale-token"))

	gate := NewGate(backend, tokens, newTestLogger())
	gate.Restore(context.Background())

	assert.False(t, gate.Authenticated())
	assert.Equal(t, ShowAuth, gate.Route())

	// The rejected token is also cleared from storage.
	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRestore_ExpiredJWTSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	tokens := NewMemoryStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(-time.Hour))))

	gate := NewGate(backend, tokens, newTestLogger())
	gate.Restore(context.Background())

	assert.False(t, gate.Authenticated())
	assert.Equal(t, 0, backend.profileCalls)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRestore_UnexpiredJWTValidatesRemotely(t *testing.T) {
	backend := &fakeBackend{profileUser: domain.User{ID: 3}}
	tokens := NewMemoryStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(time.Hour))))

	gate := NewGate(backend, tokens, newTestLogger())
	gate.Restore(context.Background())

	assert.True(t, gate.Authenticated())
	assert.Equal(t, 1, backend.profileCalls)
}

// --- Login / Logout Tests ---

func TestLogin_Success(t *testing.T) {
	backend := &fakeBackend{loginResult: api.LoginResult{
		AccessToken: "tok-abc",
		User:        domain.User{ID: 3, Name: "Ana", Email: "ana@example.com"},
	}}
	tokens := NewMemoryStore()
	gate := NewGate(backend, tokens, newTestLogger())

	err := gate.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)

	assert.True(t, gate.Authenticated())
	assert.Equal(t, "tok-abc", gate.Token())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", stored)
}

func TestLogin_Failure(t *testing.T) {
	backend := &fakeBackend{loginErr: errors.New("wrong email or password")}
	gate := NewGate(backend, NewMemoryStore(), newTestLogger())

	err := gate.Login(context.Background(), "ana@example.com", "bad")
	require.Error(t, err)

	assert.False(t, gate.Authenticated())
	assert.Empty(t, gate.Token())
}

func TestLogout_ResetsEverything(t *testing.T) {
	backend := &fakeBackend{loginResult: api.LoginResult{
		AccessToken: "tok-abc",
		User:        domain.User{ID: 3, Name: "Ana"},
	}}
	tokens := NewMemoryStore()
	gate := NewGate(backend, tokens, newTestLogger())
	require.NoError(t, gate.Login(context.Background(), "ana@example.com", "secret123"))

	gate.Logout(context.Background())

	assert.False(t, gate.Authenticated())
	assert.Empty(t, gate.Token())
	_, ok := gate.User()
	assert.False(t, ok)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

// --- SetUser Tests ---

func TestSetUser_LocalOnly(t *testing.T) {
	backend := &fakeBackend{loginResult: api.LoginResult{
		AccessToken: "tok-abc",
		User:        domain.User{ID: 3, Name: "Ana"},
	}}
	gate := NewGate(backend, NewMemoryStore(), newTestLogger())
	require.NoError(t, gate.Login(context.Background(), "ana@example.com", "secret123"))

	gate.SetUser(domain.User{ID: 3, Name: "Ana Maria"})

	user, ok := gate.User()
	require.True(t, ok)
	assert.Equal(t, "Ana Maria", user.Name)
	assert.Equal(t, 1, backend.loginCalls) // no extra remote calls
}

// --- Subscription Tests ---

func TestGateSubscribe_NotifiedOnStateChanges(t *testing.T) {
	backend := &fakeBackend{loginResult: api.LoginResult{
		AccessToken: "tok-abc",
		User:        domain.User{ID: 3},
	}}
	gate := NewGate(backend, NewMemoryStore(), newTestLogger())

	var calls int
	unsubscribe := gate.Subscribe(func() { calls++ })

	gate.Restore(context.Background())
	require.NoError(t, gate.Login(context.Background(), "ana@example.com", "secret123"))
	gate.SetUser(domain.User{ID: 3, Name: "Ana"})
	gate.Logout(context.Background())
	assert.Equal(t, 4, calls)

	unsubscribe()
	gate.SetUser(domain.User{ID: 3})
	assert.Equal(t, 4, calls)
}

// --- Route Guard Tests ---

func TestDecide(t *testing.T) {
	assert.Equal(t, Wait, Decide(true, false))
	assert.Equal(t, Wait, Decide(true, true))
	assert.Equal(t, ShowAuth, Decide(false, false))
	assert.Equal(t, ShowCatalog, Decide(false, true))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "wait", Wait.String())
	assert.Equal(t, "auth", ShowAuth.String())
	assert.Equal(t, "catalog", ShowCatalog.String())
}
