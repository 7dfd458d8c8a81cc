package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"arayWorlds/clients/gcp"
	"arayWorlds/docstore"
	"arayWorlds/envvars"
	"arayWorlds/events"
	"arayWorlds/schema"
	"arayWorlds/services/catalog"
	"arayWorlds/services/identity"
	"arayWorlds/services/ledger"
	"arayWorlds/services/nickname"
	"arayWorlds/services/ranking"
	"arayWorlds/services/user"

	"github.com/go-resty/resty/v2"
)

// App holds every service built from the environment.
type App struct {
	Env      envvars.Env
	Paths    schema.Paths
	Store    docstore.Store
	Bus      *events.Bus
	Cache    *ranking.RedisCache
	Catalog  *catalog.Catalog
	Ledger   ledger.Service
	Nickname nickname.Service
	Users    user.Service
	Ranking  ranking.Service
}

func openStore(ctx context.Context, env envvars.Env) (docstore.Store, error) {
	switch env.StoreBackend {
	case envvars.BackendFirestore:
		client, err := gcp.CreateFirestore(ctx, env.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		return docstore.NewFirestore(client, env.TxMaxAttempts), nil
	case envvars.BackendSQLite:
		return docstore.OpenSQLite(env.SQLitePath)
	case envvars.BackendMemory:
		return docstore.NewMemory(docstore.WithMaxAttempts(env.TxMaxAttempts)), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", env.StoreBackend)
}

func loadCatalog(ctx context.Context, env envvars.Env) *catalog.Catalog {
	if env.CatalogBucket == "" {
		return catalog.Default()
	}
	games, err := catalog.FromBucket(ctx, env.CatalogBucket, env.CatalogObject)
	if err != nil {
		slog.With("error", err.Error()).Error("failed to load catalog from bucket, using the built-in one")
		return catalog.Default()
	}
	return games
}

func NewApp(ctx context.Context, env envvars.Env) (*App, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	store, err := openStore(ctx, env)
	if err != nil {
		return nil, err
	}
	app := &App{
		Env:     env,
		Paths:   schema.NewPaths(env.AppID),
		Store:   store,
		Bus:     events.NewBus(),
		Catalog: loadCatalog(ctx, env),
	}
	if env.RedisAddr != "" {
		cache := ranking.NewRedisCache(env.RedisAddr, env.AppID)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := cache.Ping(pingCtx)
		cancel()
		if err != nil {
			slog.With("error", err.Error()).Warn("redis unreachable, leaderboards read the store")
			_ = cache.Close()
		} else {
			app.Cache = cache
		}
	}

	app.Ledger = ledger.NewService(store, app.Paths, app.Bus)
	app.Nickname = nickname.NewService(store, app.Paths, app.Bus)
	app.Users = user.NewUserService(store, app.Paths, app.Ledger)
	app.Ranking = ranking.NewService(store, app.Paths, app.Users, app.Cache)
	return app, nil
}

const cacheCheckInterval = time.Minute

// StartMirror keeps the Redis leaderboards in step with the ledger until ctx
// is done.
func (a *App) StartMirror(ctx context.Context) {
	if a.Cache == nil {
		return
	}
	stream, cancel := a.Bus.Subscribe(nil, 256)
	go func() {
		defer cancel()
		a.Cache.Mirror(ctx, stream)
	}()
	// boards are read from Redis only once a full rebuild marked them built
	go a.Cache.Maintain(ctx, a.Store, a.Paths, cacheCheckInterval)
}

func (a *App) Verifier(ctx context.Context) (identity.Verifier, error) {
	return identity.NewFirebaseVerifier(ctx, a.Env.FirebaseProjectID)
}

func (a *App) AuthService() identity.AuthService {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return identity.NewAuthService(client, a.Env.FirebaseAPIKey)
}

func (a *App) Close() error {
	a.Bus.Close()
	var errs []error
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	errs = append(errs, a.Store.Close())
	return errors.Join(errs...)
}
