package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"arayWorlds/apperror"
	"arayWorlds/docstore"
	"arayWorlds/events"
	"arayWorlds/schema"

	"github.com/go-playground/validator/v10"
)

// Service maintains the two counters that may never go down: the best level
// a user reached in each game and the user's candy total.
type Service interface {
	// UpdateBestLevel stores max(current, level) for (userID, gameID) in one
	// transaction. A missing progress record counts as level 0. The user's
	// lastSeen is refreshed whether or not the level improved.
	UpdateBestLevel(ctx context.Context, userID, gameID string, level int64) (Outcome, error)

	// AddRewardDelta adds delta candies with the store's atomic increment,
	// so concurrent sessions never lose each other's rewards.
	AddRewardDelta(ctx context.Context, userID string, delta int64) (Outcome, error)

	// GetBestLevel returns 0 when the user never completed a level of gameID.
	GetBestLevel(ctx context.Context, userID, gameID string) (int64, error)
	GetAllBestLevels(ctx context.Context, userID string) (map[string]int64, error)
	GetRewardTotal(ctx context.Context, userID string) (int64, error)
}

type service struct {
	db     docstore.Store
	paths  schema.Paths
	events events.Publisher
}

var _ Service = (*service)(nil)

var validate = validator.New()

// MaxRewardDelta bounds a single reward so one request can never push the
// total past int64.
const MaxRewardDelta int64 = 1_000_000

// Game ids may not contain "_": it separates user and game in progress keys.

func NewService(db docstore.Store, paths schema.Paths, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.Discard
	}
	return &service{
		db:     db,
		paths:  paths,
		events: publisher,
	}
}

func validateGameID(gameID string) error {
	if err := validate.Var(gameID, "required,max=64,excludesall=/_"); err != nil {
		return apperror.ValidationFailed("gameId", fmt.Sprintf("invalid game id %q", gameID))
	}
	return nil
}

func (s *service) UpdateBestLevel(ctx context.Context, userID, gameID string, level int64) (Outcome, error) {
	if userID == "" {
		slog.Warn("best level update without a signed-in user", "gameId", gameID)
		return Outcome{Status: StatusUnauthenticated}, apperror.Unauthenticated("updateBestLevel")
	}
	if err := validateGameID(gameID); err != nil {
		return Outcome{}, err
	}
	if level < 0 {
		return Outcome{}, apperror.ValidationFailed("level", "level must be >= 0")
	}

	progressKey := s.paths.ProgressDoc(userID, gameID)
	userKey := s.paths.User(userID)

	var outcome Outcome
	err := s.db.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		snap, err := tx.Get(progressKey)
		if err != nil {
			return err
		}
		current := snap.Int64(schema.FieldBestLevel)
		outcome = Outcome{Status: StatusUnchanged, Previous: current, Value: current}

		if level > current {
			err = tx.Set(progressKey, docstore.Fields{
				schema.FieldUID:       userID,
				schema.FieldGameID:    gameID,
				schema.FieldBestLevel: level,
				schema.FieldUpdatedAt: docstore.ServerTimestamp,
			}, docstore.Merge)
			if err != nil {
				return err
			}
			outcome = Outcome{Status: StatusChanged, Previous: current, Value: level}
		}
		return tx.Set(userKey, docstore.Fields{
			schema.FieldLastSeen: docstore.ServerTimestamp,
		}, docstore.Merge)
	})
	if err != nil {
		slog.With("error", err.Error()).Error("best level transaction failed", "userId", userID, "gameId", gameID)
		return Outcome{}, fmt.Errorf("failed to update best level: %w", err)
	}

	if outcome.Changed() {
		slog.Info("best level raised", "userId", userID, "gameId", gameID, "from", outcome.Previous, "to", outcome.Value)
		s.events.Publish(events.NewBestLevelChanged(userID, gameID, outcome.Previous, outcome.Value))
	} else {
		slog.Debug("best level not improved", "userId", userID, "gameId", gameID, "current", outcome.Value, "proposed", level)
	}
	return outcome, nil
}

func (s *service) AddRewardDelta(ctx context.Context, userID string, delta int64) (Outcome, error) {
	if userID == "" {
		slog.Warn("reward delta without a signed-in user", "delta", delta)
		return Outcome{Status: StatusUnauthenticated}, apperror.Unauthenticated("addRewardDelta")
	}
	if delta < 0 {
		return Outcome{}, apperror.ValidationFailed("delta", "delta must be >= 0")
	}
	if delta > MaxRewardDelta {
		return Outcome{}, apperror.ValidationFailed("delta", fmt.Sprintf("delta must be <= %d", MaxRewardDelta))
	}
	if delta == 0 {
		total, err := s.GetRewardTotal(ctx, userID)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: StatusUnchanged, Previous: total, Value: total}, nil
	}

	err := s.db.Set(ctx, s.paths.User(userID), docstore.Fields{
		schema.FieldCandiesTotal: docstore.Increment(delta),
		schema.FieldLastSeen:     docstore.ServerTimestamp,
	}, docstore.Merge)
	if err != nil {
		slog.With("error", err.Error()).Error("candy increment failed", "userId", userID, "delta", delta)
		return Outcome{}, fmt.Errorf("failed to add rewards: %w", err)
	}

	// The increment does not return the new value; read it back. Other
	// sessions may have added their own rewards in between.
	total, err := s.GetRewardTotal(ctx, userID)
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Status: StatusChanged, Previous: total - delta, Value: total}
	s.events.Publish(events.NewRewardTotalChanged(userID, delta, total))
	return outcome, nil
}

func (s *service) GetBestLevel(ctx context.Context, userID, gameID string) (int64, error) {
	if userID == "" {
		return 0, apperror.Unauthenticated("getBestLevel")
	}
	if err := validateGameID(gameID); err != nil {
		return 0, err
	}
	snap, err := s.db.Get(ctx, s.paths.ProgressDoc(userID, gameID))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch progress: %w", err)
	}
	return snap.Int64(schema.FieldBestLevel), nil
}

func (s *service) GetAllBestLevels(ctx context.Context, userID string) (map[string]int64, error) {
	if userID == "" {
		return nil, apperror.Unauthenticated("getAllBestLevels")
	}
	docs, err := s.db.Query(ctx, docstore.Query{
		Collection: s.paths.Progress(),
		Filters:    []docstore.Filter{{Field: schema.FieldUID, Op: "==", Value: userID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch progress: %w", err)
	}
	levels := make(map[string]int64, len(docs))
	for _, doc := range docs {
		gameID := doc.String(schema.FieldGameID)
		if gameID == "" {
			continue
		}
		levels[gameID] = doc.Int64(schema.FieldBestLevel)
	}
	return levels, nil
}

func (s *service) GetRewardTotal(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, apperror.Unauthenticated("getRewardTotal")
	}
	snap, err := s.db.Get(ctx, s.paths.User(userID))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch user: %w", err)
	}
	return snap.Int64(schema.FieldCandiesTotal), nil
}
