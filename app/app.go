// Package app wires the storefront client together: configuration, logging,
// transport, API client, the session gate, and the three state stores. It
// also hosts the flows that span more than one of them.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jerseystore/storefront-go/api"
	"github.com/jerseystore/storefront-go/catalog"
	"github.com/jerseystore/storefront-go/config"
	apperrors "github.com/jerseystore/storefront-go/errors"
	"github.com/jerseystore/storefront-go/httpclient"
	"github.com/jerseystore/storefront-go/logger"
	"github.com/jerseystore/storefront-go/session"
	"github.com/jerseystore/storefront-go/store"
)

// App is the assembled storefront client.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	API      *api.Client
	Catalog  *catalog.Store
	Cart     *store.Cart
	Wishlist *store.Wishlist
	Session  *session.Gate
}

// New builds the dependency graph from configuration.
func New(cfg *config.Config) (*App, error) {
	log := logger.New("storefront", cfg.LogLevel)

	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	clientCfg.MaxRetries = cfg.HTTPMaxRetries
	client := httpclient.New(clientCfg)

	var doer api.Doer = client
	if cfg.BreakerEnabled {
		doer = httpclient.NewCircuitBreakerClient(
			client,
			httpclient.DefaultCircuitBreakerConfig("storefront-api"),
			log,
		)
	}

	apiClient := api.New(cfg.APIBaseURL, doer, log)

	var tokens session.TokenStore
	if cfg.TokenPath != "" {
		tokens = session.NewFileStore(cfg.TokenPath)
	} else {
		tokens = session.NewMemoryStore()
	}

	return &App{
		Config:   cfg,
		Logger:   log,
		API:      apiClient,
		Catalog:  catalog.NewStore(),
		Cart:     store.NewCart(),
		Wishlist: store.NewWishlist(),
		Session:  session.NewGate(apiClient, tokens, log),
	}, nil
}

// Start resolves the persisted session. Call once on startup, before the
// route guard is consulted.
func (a *App) Start(ctx context.Context) {
	a.Session.Restore(ctx)
}

// LoadCatalog fetches products and categories and replaces the catalog
// store's contents.
func (a *App) LoadCatalog(ctx context.Context) error {
	products, err := a.API.Products(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	categories, err := a.API.Clubs(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	a.Catalog.SetCatalog(products, categories)
	a.Logger.InfoContext(ctx, "catalog loaded",
		slog.Int("products", len(products)),
		slog.Int("categories", len(categories)),
	)
	return nil
}

// ToggleWishlist adds the product to the wishlist, or removes it when
// already present.
func (a *App) ToggleWishlist(productID int64) {
	p, ok := a.Catalog.Product(productID)
	if !ok {
		return
	}
	if a.Wishlist.Contains(productID) {
		a.Wishlist.Remove(productID)
	} else {
		a.Wishlist.Add(p)
	}
}

// MoveToCart moves a wishlisted product into the cart: the cart entry is
// created (or merged) and the wishlist entry is removed.
func (a *App) MoveToCart(productID int64) {
	for _, p := range a.Wishlist.Items() {
		if p.ID == productID {
			a.Cart.Add(p)
			a.Wishlist.Remove(productID)
			return
		}
	}
}

// SaveProfile patches the signed-in user's profile on the backend and then
// updates the local session state with the result.
func (a *App) SaveProfile(ctx context.Context, input api.UpdateUserInput) error {
	user, ok := a.Session.User()
	if !ok {
		return apperrors.Unauthorized("not signed in")
	}

	updated, err := a.API.UpdateUser(ctx, user.ID, input)
	if err != nil {
		return err
	}

	a.Session.SetUser(updated)
	return nil
}

// ChangePassword updates the signed-in user's password.
func (a *App) ChangePassword(ctx context.Context, newPassword string) (string, error) {
	user, ok := a.Session.User()
	if !ok {
		return "", apperrors.Unauthorized("not signed in")
	}
	return a.API.UpdatePassword(ctx, user.ID, api.UpdatePasswordInput{Password: newPassword})
}

// Logout signs the user out and drops the session-only cart and wishlist.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Cart.Clear()
	a.Wishlist.Clear()
}
