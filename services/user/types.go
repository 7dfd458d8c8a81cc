package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	Nickname     string    `json:"nickname,omitempty"`
	CandiesTotal int64     `json:"candiesTotal"`
	SoundEnabled bool      `json:"soundEnabled"`
	MusicEnabled bool      `json:"musicEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	LastSeen     time.Time `json:"lastSeen"`
}

// AudioPreferences map directly onto the user document fields.
type AudioPreferences struct {
	Sound bool `json:"soundEnabled" structs:"soundEnabled"`
	Music bool `json:"musicEnabled" structs:"musicEnabled"`
}

// State is a copy of everything the game shell shows for the signed-in
// player. Callers own it; it is never updated in place.
type State struct {
	User       User             `json:"user"`
	BestLevels map[string]int64 `json:"bestLevels"`
}
