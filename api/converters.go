package api

import (
	"arayWorlds/services/catalog"
	"arayWorlds/services/identity"
	"arayWorlds/services/ledger"
	"arayWorlds/services/nickname"
	"arayWorlds/services/ranking"
	"arayWorlds/services/user"
	"arayWorlds/utils"
)

// optional maps the zero value to an omitted field.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return utils.ToPointer(v)
}

func TransformSession(session *identity.Session, created bool) AuthResponse {
	return AuthResponse{
		UserId:       session.UserID,
		Email:        optional(session.Email),
		IdToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		Created:      created,
	}
}

func TransformGames(games []catalog.Game) []Game {
	result := make([]Game, 0, len(games))
	for _, g := range games {
		result = append(result, Game{
			Id:          g.ID,
			Name:        g.Name,
			Description: optional(g.Description),
			Unit:        g.Unit,
			MaxLevel:    g.MaxLevel,
		})
	}
	return result
}

// TransformUser renders a missing nickname as null.
func TransformUser(u user.User) User {
	return User{
		Id:           u.ID,
		Email:        optional(u.Email),
		Nickname:     optional(u.Nickname),
		CandiesTotal: u.CandiesTotal,
		SoundEnabled: u.SoundEnabled,
		MusicEnabled: u.MusicEnabled,
	}
}

func TransformState(s *user.State) State {
	levels := s.BestLevels
	if levels == nil {
		levels = map[string]int64{}
	}
	return State{
		User:       TransformUser(s.User),
		BestLevels: levels,
	}
}

func TransformOutcome(o ledger.Outcome) Outcome {
	return Outcome{
		Status:   OutcomeStatus(o.Status),
		Previous: o.Previous,
		Value:    o.Value,
	}
}

func TransformClaim(o nickname.ClaimOutcome) NicknameResponse {
	return NicknameResponse{
		Status:   NicknameResponseStatus(o.Status),
		Nickname: o.Nickname,
		Reason:   optional(o.Reason),
	}
}

func TransformLeaderboard(gameID string, entries []ranking.Entry) Leaderboard {
	result := Leaderboard{
		GameId:  optional(gameID),
		Entries: make([]LeaderboardEntry, 0, len(entries)),
	}
	for _, e := range entries {
		result.Entries = append(result.Entries, LeaderboardEntry{
			Rank:         e.Rank,
			UserId:       e.UserID,
			Nickname:     e.Nickname,
			CandiesTotal: e.CandiesTotal,
			BestLevel:    optional(e.BestLevel),
		})
	}
	return result
}
