package nickname

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"arayWorlds/apperror"
	"arayWorlds/docstore"
	"arayWorlds/events"
	"arayWorlds/schema"

	"github.com/go-playground/validator/v10"
)

const MaxLength = 20

type Service interface {
	// ClaimNickname reserves desired for userID. Two users can never hold the
	// same normalized nickname: the lookup and the claim commit together.
	// A user claiming a new nickname releases the one held before.
	ClaimNickname(ctx context.Context, userID, desired string) (ClaimOutcome, error)
	// Owner returns the uid holding nickname, or "" when it is free. An
	// unusable nickname is a validation error.
	Owner(ctx context.Context, nickname string) (string, error)
}

type service struct {
	db     docstore.Store
	paths  schema.Paths
	events events.Publisher
}

var _ Service = (*service)(nil)

var validate = validator.New()

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

// Normalize returns the display form (trimmed) and the reservation key
// (trimmed, lowercased).
func Normalize(desired string) (display string, key string) {
	display = strings.TrimSpace(desired)
	return display, strings.ToLower(display)
}

// Validate reports why display cannot be used as a nickname, or nil.
func Validate(display string) error {
	if err := validate.Var(display, fmt.Sprintf("required,max=%d,excludesall=/", MaxLength)); err != nil {
		return apperror.ValidationFailed("nickname", fmt.Sprintf("nickname must be 1 to %d characters without '/'", MaxLength))
	}
	if reservedKey(display) {
		return apperror.ValidationFailed("nickname", fmt.Sprintf("nickname %q is reserved", display))
	}
	return nil
}

// reservedKey matches the document ids Firestore refuses.
func reservedKey(s string) bool {
	if s == "." || s == ".." {
		return true
	}
	return len(s) >= 4 && strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__")
}

func (s *service) ClaimNickname(ctx context.Context, userID, desired string) (ClaimOutcome, error) {
	if userID == "" {
		return ClaimOutcome{}, apperror.Unauthenticated("claimNickname")
	}
	display, key := Normalize(desired)
	if err := Validate(display); err != nil {
		return ClaimOutcome{Status: StatusInvalidInput, Nickname: display, Reason: err.Error()}, nil
	}

	nickKey := s.paths.Nick(key)
	userKey := s.paths.User(userID)

	var outcome ClaimOutcome
	err := s.db.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		reservation, err := tx.Get(nickKey)
		if err != nil {
			return err
		}
		if reservation.Exists {
			if owner := reservation.String(schema.FieldUID); owner != userID {
				outcome = ClaimOutcome{Status: StatusAlreadyTaken, Nickname: display}
				return nil
			}
		}

		profile, err := tx.Get(userKey)
		if err != nil {
			return err
		}
		var previous *docstore.Snapshot
		if _, prevKey := Normalize(profile.String(schema.FieldNick)); prevKey != "" && prevKey != key {
			previous, err = tx.Get(s.paths.Nick(prevKey))
			if err != nil {
				return err
			}
		}

		claim := docstore.Fields{
			schema.FieldUID:  userID,
			schema.FieldNick: display,
		}
		if !reservation.Exists {
			claim[schema.FieldCreatedAt] = docstore.ServerTimestamp
		}
		if err := tx.Set(nickKey, claim, docstore.Merge); err != nil {
			return err
		}
		if previous != nil && previous.Exists && previous.String(schema.FieldUID) == userID {
			if err := tx.Delete(previous.Key); err != nil {
				return err
			}
		}
		if err := tx.Set(userKey, docstore.Fields{
			schema.FieldNick:     display,
			schema.FieldLastSeen: docstore.ServerTimestamp,
		}, docstore.Merge); err != nil {
			return err
		}
		outcome = ClaimOutcome{Status: StatusAccepted, Nickname: display}
		return nil
	})
	if err != nil {
		slog.With("error", err.Error()).Error("nickname claim failed", "userId", userID, "nickname", display)
		return ClaimOutcome{}, fmt.Errorf("failed to claim nickname: %w", err)
	}

	switch outcome.Status {
	case StatusAccepted:
		slog.Info("nickname claimed", "userId", userID, "nickname", display)
		s.events.Publish(events.NewNicknameClaimed(userID, display))
	case StatusAlreadyTaken:
		slog.Debug("nickname already taken", "userId", userID, "nickname", display)
	}
	return outcome, nil
}

func (s *service) Owner(ctx context.Context, nickname string) (string, error) {
	display, key := Normalize(nickname)
	if err := Validate(display); err != nil {
		return "", err
	}
	snap, err := s.db.Get(ctx, s.paths.Nick(key))
	if err != nil {
		return "", fmt.Errorf("failed to fetch nickname: %w", err)
	}
	return snap.String(schema.FieldUID), nil
}
