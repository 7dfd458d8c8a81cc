package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"arayWorlds/docstore"
	"arayWorlds/events"
	"arayWorlds/schema"
)

// Mirror applies ledger events to the cache until stream is closed or ctx
// is done.
func (c *RedisCache) Mirror(ctx context.Context, stream <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-stream:
			if !ok {
				return
			}
			if err := c.Apply(ctx, e); err != nil {
				slog.With("error", err.Error()).Error("failed to mirror event", "kind", e.EventKind(), "userId", e.Owner())
			}
		}
	}
}

func (c *RedisCache) Apply(ctx context.Context, e events.Event) error {
	switch ev := e.(type) {
	case events.BestLevelChanged:
		return c.UpdateGame(ctx, ev.GameID, ev.UserID, ev.NewLevel)
	case events.RewardTotalChanged:
		return c.UpdateRewards(ctx, ev.UserID, ev.NewTotal)
	}
	return nil
}

// Rebuild loads every board from the store. Scores only move up, so it is
// safe to run while the mirror is consuming events.
func (c *RedisCache) Rebuild(ctx context.Context, db docstore.Store, paths schema.Paths) error {
	users, err := db.Query(ctx, docstore.Query{
		Collection: paths.Users(),
		Filters:    []docstore.Filter{{Field: schema.FieldCandiesTotal, Op: ">", Value: int64(0)}},
	})
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		if err := c.UpdateRewards(ctx, u.Key.ID, u.Int64(schema.FieldCandiesTotal)); err != nil {
			return err
		}
	}

	progress, err := db.Query(ctx, docstore.Query{Collection: paths.Progress()})
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	for _, p := range progress {
		uid, gameID := p.String(schema.FieldUID), p.String(schema.FieldGameID)
		if uid == "" || gameID == "" {
			continue
		}
		if err := c.UpdateGame(ctx, gameID, uid, p.Int64(schema.FieldBestLevel)); err != nil {
			return err
		}
	}
	if err := c.markBuilt(ctx); err != nil {
		return fmt.Errorf("failed to mark cache built: %w", err)
	}
	slog.Info("rebuilt leaderboard cache", "users", len(users), "progress", len(progress))
	return nil
}

// Refresh rebuilds the boards when Redis lost them.
func (c *RedisCache) Refresh(ctx context.Context, db docstore.Store, paths schema.Paths) error {
	ready, err := c.Ready(ctx)
	if err != nil || ready {
		return err
	}
	slog.Warn("leaderboard cache is not built, rebuilding")
	return c.Rebuild(ctx, db, paths)
}

// Maintain keeps the boards complete until ctx is done: it rebuilds once,
// then checks every interval whether Redis dropped them.
func (c *RedisCache) Maintain(ctx context.Context, db docstore.Store, paths schema.Paths, interval time.Duration) {
	if err := c.Rebuild(ctx, db, paths); err != nil {
		slog.With("error", err.Error()).Error("failed to rebuild leaderboard cache")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx, db, paths); err != nil {
				slog.With("error", err.Error()).Error("failed to refresh leaderboard cache")
			}
		}
	}
}
