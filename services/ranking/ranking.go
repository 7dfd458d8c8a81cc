package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"arayWorlds/apperror"
	"arayWorlds/docstore"
	"arayWorlds/schema"
	"arayWorlds/services/user"
	"arayWorlds/set"
	"arayWorlds/utils"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// AnonymousNickname is shown for players who never claimed a nickname.
	AnonymousNickname = "Usuario Anónimo"
	// Firestore caps batched reads; stay well below it.
	getAllChunkSize = 30
)

type Service interface {
	// Rewards ranks users with a positive candy total, highest first.
	Rewards(ctx context.Context, limit int) ([]Entry, error)
	// Game ranks the players of gameID by best level, highest first.
	Game(ctx context.Context, gameID string, limit int) ([]Entry, error)
}

type service struct {
	db    docstore.Store
	paths schema.Paths
	users user.Service
	cache *RedisCache
}

var _ Service = (*service)(nil)

// NewService reads boards from the store. When cache is not nil and fully
// built the top of each board comes from Redis; the store answers while the
// cache is unbuilt, empty or unreachable.
func NewService(db docstore.Store, paths schema.Paths, users user.Service, cache *RedisCache) Service {
	return &service{
		db:    db,
		paths: paths,
		users: users,
		cache: cache,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}

func displayName(nick string) string {
	if nick == "" {
		return AnonymousNickname
	}
	return nick
}

func (s *service) cacheReady(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	ready, err := s.cache.Ready(ctx)
	if err != nil {
		slog.With("error", err.Error()).Warn("leaderboard cache unavailable, reading store")
		return false
	}
	return ready
}

func (s *service) Rewards(ctx context.Context, limit int) ([]Entry, error) {
	limit = clampLimit(limit)
	if s.cacheReady(ctx) {
		top, err := s.cache.TopRewards(ctx, limit)
		switch {
		case err != nil:
			slog.With("error", err.Error()).Warn("rewards cache unavailable, reading store")
		case len(top) > 0:
			return s.fromScores(ctx, top, func(e *Entry, score int64) { e.CandiesTotal = score })
		}
	}

	docs, err := s.db.Query(ctx, docstore.Query{
		Collection: s.paths.Users(),
		Filters:    []docstore.Filter{{Field: schema.FieldCandiesTotal, Op: ">", Value: int64(0)}},
		OrderBy:    schema.FieldCandiesTotal,
		Desc:       true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards ranking: %w", err)
	}
	entries := make([]Entry, 0, len(docs))
	for i, doc := range docs {
		entries = append(entries, Entry{
			Rank:         i + 1,
			UserID:       doc.Key.ID,
			Nickname:     displayName(doc.String(schema.FieldNick)),
			CandiesTotal: doc.Int64(schema.FieldCandiesTotal),
		})
	}
	return entries, nil
}

func (s *service) Game(ctx context.Context, gameID string, limit int) ([]Entry, error) {
	if gameID == "" {
		return nil, apperror.ValidationFailed("gameId", "game id is required")
	}
	limit = clampLimit(limit)
	if s.cacheReady(ctx) {
		top, err := s.cache.TopGame(ctx, gameID, limit)
		switch {
		case err != nil:
			slog.With("error", err.Error()).Warn("game ranking cache unavailable, reading store", "gameId", gameID)
		case len(top) > 0:
			return s.fromScores(ctx, top, func(e *Entry, score int64) { e.BestLevel = score })
		}
	}

	docs, err := s.db.Query(ctx, docstore.Query{
		Collection: s.paths.Progress(),
		Filters:    []docstore.Filter{{Field: schema.FieldGameID, Op: "==", Value: gameID}},
		OrderBy:    schema.FieldBestLevel,
		Desc:       true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query game ranking: %w", err)
	}
	top := make([]Score, 0, len(docs))
	for _, doc := range docs {
		uid := doc.String(schema.FieldUID)
		if uid == "" {
			continue
		}
		top = append(top, Score{UserID: uid, Value: doc.Int64(schema.FieldBestLevel)})
	}
	return s.fromScores(ctx, top, func(e *Entry, score int64) { e.BestLevel = score })
}

// fromScores joins ranked scores with the players' profiles.
func (s *service) fromScores(ctx context.Context, top []Score, setScore func(*Entry, int64)) ([]Entry, error) {
	ids := make([]string, 0, len(top))
	for _, sc := range top {
		ids = append(ids, sc.UserID)
	}
	profiles, err := s.profiles(ctx, ids)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(top))
	for i, sc := range top {
		p := profiles[sc.UserID]
		e := Entry{
			Rank:         i + 1,
			UserID:       sc.UserID,
			Nickname:     displayName(p.Nickname),
			CandiesTotal: p.CandiesTotal,
		}
		setScore(&e, sc.Value)
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *service) profiles(ctx context.Context, ids []string) (map[string]user.User, error) {
	unique := set.FromSlice(ids).ToSlice()
	out := make(map[string]user.User, len(unique))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range utils.Chunk(unique, getAllChunkSize) {
		g.Go(func() error {
			users, err := s.users.GetUsers(ctx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			maps.Copy(out, users)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch ranked users: %w", err)
	}
	return out, nil
}
