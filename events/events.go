// Package events carries ledger changes to whoever presents them: the SSE
// stream of the signed-in player and the leaderboard mirror.
package events

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindBestLevelChanged   Kind = "bestLevelChanged"
	KindRewardTotalChanged Kind = "rewardTotalChanged"
	KindNicknameClaimed    Kind = "nicknameClaimed"
)

type Event interface {
	EventID() string
	EventKind() Kind
	Owner() string
	OccurredAt() time.Time
}

type Meta struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	At     time.Time `json:"at"`
}

func newMeta(userID string) Meta {
	return Meta{
		ID:     uuid.NewString(),
		UserID: userID,
		At:     time.Now(),
	}
}

func (m Meta) EventID() string       { return m.ID }
func (m Meta) Owner() string         { return m.UserID }
func (m Meta) OccurredAt() time.Time { return m.At }

type BestLevelChanged struct {
	Meta
	GameID   string `json:"gameId"`
	Previous int64  `json:"previous"`
	NewLevel int64  `json:"newLevel"`
}

func (BestLevelChanged) EventKind() Kind { return KindBestLevelChanged }

func NewBestLevelChanged(userID, gameID string, previous, level int64) BestLevelChanged {
	return BestLevelChanged{Meta: newMeta(userID), GameID: gameID, Previous: previous, NewLevel: level}
}

type RewardTotalChanged struct {
	Meta
	Delta    int64 `json:"delta"`
	NewTotal int64 `json:"newTotal"`
}

func (RewardTotalChanged) EventKind() Kind { return KindRewardTotalChanged }

func NewRewardTotalChanged(userID string, delta, total int64) RewardTotalChanged {
	return RewardTotalChanged{Meta: newMeta(userID), Delta: delta, NewTotal: total}
}

type NicknameClaimed struct {
	Meta
	Nickname string `json:"nickname"`
}

func (NicknameClaimed) EventKind() Kind { return KindNicknameClaimed }

func NewNicknameClaimed(userID, nickname string) NicknameClaimed {
	return NicknameClaimed{Meta: newMeta(userID), Nickname: nickname}
}

// Publisher is what the services depend on.
type Publisher interface {
	Publish(e Event)
}

// Discard drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) {}
