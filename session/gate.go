// Package session owns the authentication state: the access token, the
// signed-in user, and the restoring flag consulted by the route guard while
// the persisted session is being validated on startup.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jerseystore/storefront-go/api"
	"github.com/jerseystore/storefront-go/domain"
)

// Backend is the slice of the storefront API the gate needs.
// *api.Client satisfies it.
type Backend interface {
	Login(ctx context.Context, input api.LoginInput) (api.LoginResult, error)
	Profile(ctx context.Context, token string) (domain.User, error)
}

// Gate owns authentication state. It starts in the restoring state; Restore
// must be called once on startup to resolve it.
type Gate struct {
	backend Backend
	tokens  TokenStore
	logger  *slog.Logger

	mu            sync.Mutex
	authenticated bool
	restoring     bool
	user          domain.User
	token         string

	subMu sync.Mutex
	next  int
	subs  map[int]func()
}

// NewGate creates a gate over the given backend and token store.
func NewGate(backend Backend, tokens TokenStore, log *slog.Logger) *Gate {
	return &Gate{
		backend:   backend,
		tokens:    tokens,
		logger:    log,
		restoring: true,
	}
}

// Subscribe registers fn to be called after every auth state change. The
// returned function removes the subscription.
func (g *Gate) Subscribe(fn func()) func() {
	g.subMu.Lock()
	defer g.subMu.Unlock()

	if g.subs == nil {
		g.subs = make(map[int]func())
	}
	id := g.next
	g.next++
	g.subs[id] = fn

	return func() {
		g.subMu.Lock()
		defer g.subMu.Unlock()
		delete(g.subs, id)
	}
}

func (g *Gate) notify() {
	g.subMu.Lock()
	fns := make([]func(), 0, len(g.subs))
	for _, fn := range g.subs {
		fns = append(fns, fn)
	}
	g.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Restore resolves the initial authentication state from the persisted token.
// A stored token is validated against the profile endpoint; a token the
// server rejects is discarded, signing the user out. Restore never fails the
// caller: any error leaves the gate signed out with restoring cleared.
func (g *Gate) Restore(ctx context.Context) {
	defer func() {
		g.mu.Lock()
		g.restoring = false
		g.mu.Unlock()
		g.notify()
	}()

	token, err := g.tokens.Load()
	if err != nil {
		g.logger.ErrorContext(ctx, "load persisted token", slog.Any("error", err))
		return
	}
	if token == "" {
		return
	}

	// A token that is already past its exp claim cannot validate; drop it
	// without the network round trip.
	if expired, ok := tokenExpired(token); ok && expired {
		g.logger.InfoContext(ctx, "persisted token expired, signing out")
		g.clearSession(ctx)
		return
	}

	user, err := g.backend.Profile(ctx, token)
	if err != nil {
		g.logger.InfoContext(ctx, "persisted token rejected, signing out", slog.Any("error", err))
		g.clearSession(ctx)
		return
	}

	g.mu.Lock()
	g.token = token
	g.user = user
	g.authenticated = true
	g.mu.Unlock()
}

// Login exchanges credentials for a session. On success the token is
// persisted and the gate becomes authenticated.
func (g *Gate) Login(ctx context.Context, email, password string) error {
	result, err := g.backend.Login(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := g.tokens.Save(result.AccessToken); err != nil {
		// The in-memory session is still valid; only restart restore is lost.
		g.logger.WarnContext(ctx, "persist token", slog.Any("error", err))
	}

	g.mu.Lock()
	g.token = result.AccessToken
	g.user = result.User
	g.authenticated = true
	g.mu.Unlock()

	g.notify()
	return nil
}

// Logout clears the persisted token and resets all auth state. It never
// fails: a storage error is logged and the in-memory state is reset
// regardless.
func (g *Gate) Logout(ctx context.Context) {
	g.clearSession(ctx)
	g.notify()
}

func (g *Gate) clearSession(ctx context.Context) {
	if err := g.tokens.Clear(); err != nil {
		g.logger.ErrorContext(ctx, "clear persisted token", slog.Any("error", err))
	}

	g.mu.Lock()
	g.token = ""
	g.user = domain.User{}
	g.authenticated = false
	g.mu.Unlock()
}

// SetUser replaces the local user profile. It does not call the remote
// update endpoint; sequencing the PATCH is the caller's responsibility.
func (g *Gate) SetUser(u domain.User) {
	g.mu.Lock()
	g.user = u
	g.mu.Unlock()

	g.notify()
}

// Authenticated reports whether a user is signed in.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// Restoring reports whether the initial session check is still in progress.
func (g *Gate) Restoring() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.restoring
}

// User returns the signed-in user's profile, if any.
func (g *Gate) User() (domain.User, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user, g.authenticated
}

// Token returns the current access token, or empty when signed out.
func (g *Gate) Token() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. The second return is false
// when the token is not a parseable JWT or carries no exp claim.
func tokenExpired(token string) (expired, ok bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false, false
	}
	if claims.ExpiresAt == nil {
		return false, false
	}
	return claims.ExpiresAt.Before(time.Now()), true
}
