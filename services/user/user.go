package user

import (
	"context"
	"errors"
	"fmt"

	"arayWorlds/apperror"
	"arayWorlds/docstore"
	"arayWorlds/schema"
	"arayWorlds/services/ledger"

	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
)

type Service interface {
	// EnsureUser creates the profile on first sign-in. Existing profiles get
	// lastSeen refreshed and missing audio preferences backfilled.
	EnsureUser(ctx context.Context, userID, email string) (*User, bool, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	SetAudioPreferences(ctx context.Context, userID string, prefs AudioPreferences) error
	State(ctx context.Context, userID string) (*State, error)
	// GetUsers returns the profiles that exist among userIDs, keyed by id.
	GetUsers(ctx context.Context, userIDs []string) (map[string]User, error)
}

type userService struct {
	db     docstore.Store
	paths  schema.Paths
	levels ledger.Service
}

var _ Service = (*userService)(nil)

func NewUserService(db docstore.Store, paths schema.Paths, levels ledger.Service) Service {
	return &userService{
		db:     db,
		paths:  paths,
		levels: levels,
	}
}

var NotFound = fmt.Errorf("user %w", apperror.ErrNotFound)

func fromSnapshot(snap *docstore.Snapshot) User {
	return User{
		ID:           snap.Key.ID,
		Email:        snap.String(schema.FieldEmail),
		Nickname:     snap.String(schema.FieldNick),
		CandiesTotal: snap.Int64(schema.FieldCandiesTotal),
		SoundEnabled: snap.Bool(schema.FieldSoundEnabled, true),
		MusicEnabled: snap.Bool(schema.FieldMusicEnabled, true),
		CreatedAt:    snap.Time(schema.FieldCreatedAt),
		LastSeen:     snap.Time(schema.FieldLastSeen),
	}
}

func (s *userService) EnsureUser(ctx context.Context, userID, email string) (*User, bool, error) {
	if userID == "" {
		return nil, false, apperror.Unauthenticated("ensureUser")
	}
	key := s.paths.User(userID)
	created := false
	err := s.db.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		snap, err := tx.Get(key)
		if err != nil {
			return err
		}
		if !snap.Exists {
			created = true
			return tx.Create(key, docstore.Fields{
				schema.FieldUID:          userID,
				schema.FieldEmail:        email,
				schema.FieldNick:         nil,
				schema.FieldCandiesTotal: int64(0),
				schema.FieldSoundEnabled: true,
				schema.FieldMusicEnabled: true,
				schema.FieldCreatedAt:    docstore.ServerTimestamp,
				schema.FieldLastSeen:     docstore.ServerTimestamp,
			})
		}
		created = false
		update := docstore.Fields{
			schema.FieldLastSeen: docstore.ServerTimestamp,
		}
		if email != "" {
			update[schema.FieldEmail] = email
		}
		if !snap.Has(schema.FieldSoundEnabled) || !snap.Has(schema.FieldMusicEnabled) {
			log.Warn().Str("userId", userID).Msg("backfilling audio preferences")
			update[schema.FieldSoundEnabled] = snap.Bool(schema.FieldSoundEnabled, true)
			update[schema.FieldMusicEnabled] = snap.Bool(schema.FieldMusicEnabled, true)
		}
		// ledger and nickname writes may have created the document first
		if missing := backfillDefaults(snap, userID, update); len(missing) > 0 {
			log.Warn().Str("userId", userID).Strs("fields", missing).Msg("backfilling profile defaults")
		}
		return tx.Set(key, update, docstore.Merge)
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to ensure user: %w", err)
	}
	if created {
		log.Info().Str("userId", userID).Msg("created user")
	}

	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return u, created, nil
}

// backfillDefaults adds to update the profile fields a first sign-in would
// have written and returns their names.
func backfillDefaults(snap *docstore.Snapshot, userID string, update docstore.Fields) []string {
	var missing []string
	if !snap.Has(schema.FieldUID) {
		update[schema.FieldUID] = userID
		missing = append(missing, schema.FieldUID)
	}
	if !snap.Has(schema.FieldCreatedAt) {
		update[schema.FieldCreatedAt] = docstore.ServerTimestamp
		missing = append(missing, schema.FieldCreatedAt)
	}
	if !snap.Has(schema.FieldCandiesTotal) {
		update[schema.FieldCandiesTotal] = int64(0)
		missing = append(missing, schema.FieldCandiesTotal)
	}
	if _, ok := snap.Data[schema.FieldNick]; !ok {
		update[schema.FieldNick] = nil
		missing = append(missing, schema.FieldNick)
	}
	return missing
}

func (s *userService) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, apperror.Unauthenticated("getUser")
	}
	snap, err := s.db.Get(ctx, s.paths.User(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !snap.Exists {
		return nil, NotFound
	}
	u := fromSnapshot(snap)
	return &u, nil
}

func (s *userService) SetAudioPreferences(ctx context.Context, userID string, prefs AudioPreferences) error {
	if userID == "" {
		return apperror.Unauthenticated("setAudioPreferences")
	}
	fields := docstore.Fields(structs.Map(prefs))
	fields[schema.FieldLastSeen] = docstore.ServerTimestamp
	if err := s.db.Set(ctx, s.paths.User(userID), fields, docstore.Merge); err != nil {
		return fmt.Errorf("failed to update audio preferences: %w", err)
	}
	return nil
}

func (s *userService) State(ctx context.Context, userID string) (*State, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	levels, err := s.levels.GetAllBestLevels(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch best levels: %w", err)
	}
	return &State{User: *u, BestLevels: levels}, nil
}

func (s *userService) GetUsers(ctx context.Context, userIDs []string) (map[string]User, error) {
	if len(userIDs) == 0 {
		return map[string]User{}, nil
	}
	keys := make([]docstore.Key, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, s.paths.User(id))
	}
	snaps, err := s.db.GetAll(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	users := make(map[string]User, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists {
			continue
		}
		users[snap.Key.ID] = fromSnapshot(snap)
	}
	return users, nil
}

// IsNotFound reports whether err means the profile does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, NotFound)
}
