package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"arayWorlds/api"
	"arayWorlds/apperror"
	"arayWorlds/docstore"
	"arayWorlds/events"
	"arayWorlds/generator"
	"arayWorlds/services/catalog"
	"arayWorlds/services/identity"
	"arayWorlds/services/ledger"
	"arayWorlds/services/nickname"
	"arayWorlds/services/ranking"
	"arayWorlds/services/user"
	"arayWorlds/utils"
	"arayWorlds/validator"

	"github.com/gin-gonic/gin"
)

// ensure that we've conformed to the `ServerInterface` with a compile-time check
var _ api.StrictServerInterface = (*Server)(nil)

type Server struct {
	Ledger   ledger.Service
	Nickname nickname.Service
	Users    user.Service
	Ranking  ranking.Service
	Auth     identity.AuthService
	Catalog  *catalog.Catalog
	Events   *events.Bus
}

func NewServer(
	ledgerService ledger.Service,
	nicknameService nickname.Service,
	userService user.Service,
	rankingService ranking.Service,
	authService identity.AuthService,
	games *catalog.Catalog,
	bus *events.Bus,
) Server {
	return Server{
		Ledger:   ledgerService,
		Nickname: nicknameService,
		Users:    userService,
		Ranking:  rankingService,
		Auth:     authService,
		Catalog:  games,
		Events:   bus,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, docstore.ErrConflict):
		// contention; the client may retry
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func errorBody(err error, status int) api.Error {
	body := api.Error{Message: http.StatusText(status)}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body.Message = appErr.Message
		body.Field = optional(appErr.Field)
	}
	return body
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return utils.ToPointer(s)
}

// errorMiddleware answers failed operations with the API's error body. The
// strict handler sees no error afterwards and writes nothing more.
func errorMiddleware(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(c *gin.Context, request interface{}) (interface{}, error) {
		response, err := f(c, request)
		if err == nil {
			return response, nil
		}
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.With("error", err.Error()).Error("request failed", "operation", operationID, "status", status)
		}
		c.AbortWithStatusJSON(status, errorBody(err, status))
		return nil, nil
	}
}

func limitOrDefault(limit *api.Limit) int {
	if limit == nil {
		return ranking.DefaultLimit
	}
	return *limit
}

func (s Server) GetPing(ctx context.Context, request api.GetPingRequestObject) (api.GetPingResponseObject, error) {
	return api.GetPing200JSONResponse{
		Ping: "pong",
	}, nil
}

func (s Server) SignInWithGoogle(ctx context.Context, request api.SignInWithGoogleRequestObject) (api.SignInWithGoogleResponseObject, error) {
	session, err := s.Auth.SignInWithGoogle(ctx, request.Body.IdToken)
	if err != nil {
		slog.With("error", err.Error()).Warn("google sign-in failed")
		return nil, err
	}
	_, created, err := s.Users.EnsureUser(ctx, session.UserID, session.Email)
	if err != nil {
		return nil, err
	}
	return api.SignInWithGoogle200JSONResponse(api.TransformSession(session, created)), nil
}

func (s Server) RefreshToken(ctx context.Context, request api.RefreshTokenRequestObject) (api.RefreshTokenResponseObject, error) {
	session, err := s.Auth.RefreshToken(ctx, request.Body.RefreshToken)
	if err != nil {
		return nil, err
	}
	return api.RefreshToken200JSONResponse(api.TransformSession(session, false)), nil
}

func (s Server) ListGames(ctx context.Context, request api.ListGamesRequestObject) (api.ListGamesResponseObject, error) {
	return api.ListGames200JSONResponse(api.TransformGames(s.Catalog.Games())), nil
}

func (s Server) GetMe(ctx context.Context, request api.GetMeRequestObject) (api.GetMeResponseObject, error) {
	uid := validator.UserID(ctx)
	state, err := s.Users.State(ctx, uid)
	if user.IsNotFound(err) {
		// signed in elsewhere before the profile existed
		access, _ := validator.FromContext(ctx)
		if _, _, err = s.Users.EnsureUser(ctx, uid, access.Email); err == nil {
			state, err = s.Users.State(ctx, uid)
		}
	}
	if err != nil {
		return nil, err
	}
	return api.GetMe200JSONResponse(api.TransformState(state)), nil
}

func (s Server) ClaimNickname(ctx context.Context, request api.ClaimNicknameRequestObject) (api.ClaimNicknameResponseObject, error) {
	outcome, err := s.Nickname.ClaimNickname(ctx, validator.UserID(ctx), request.Body.Nickname)
	if err != nil {
		return nil, err
	}
	resp := api.TransformClaim(outcome)
	switch outcome.Status {
	case nickname.StatusAccepted:
		return api.ClaimNickname200JSONResponse(resp), nil
	case nickname.StatusAlreadyTaken:
		resp.Suggestion = utils.ToPointer(generator.Alternative(outcome.Nickname))
		return api.ClaimNickname409JSONResponse(resp), nil
	default:
		return api.ClaimNickname400JSONResponse(resp), nil
	}
}

func (s Server) SetPreferences(ctx context.Context, request api.SetPreferencesRequestObject) (api.SetPreferencesResponseObject, error) {
	err := s.Users.SetAudioPreferences(ctx, validator.UserID(ctx), user.AudioPreferences{
		Sound: request.Body.SoundEnabled,
		Music: request.Body.MusicEnabled,
	})
	if err != nil {
		return nil, err
	}
	return api.SetPreferences204Response{}, nil
}

func (s Server) GetAllProgress(ctx context.Context, request api.GetAllProgressRequestObject) (api.GetAllProgressResponseObject, error) {
	levels, err := s.Ledger.GetAllBestLevels(ctx, validator.UserID(ctx))
	if err != nil {
		return nil, err
	}
	return api.GetAllProgress200JSONResponse(levels), nil
}

func (s Server) unknownGame(gameID string) (api.ErrorJSONResponse, bool) {
	if _, ok := s.Catalog.Lookup(gameID); ok {
		return api.ErrorJSONResponse{}, false
	}
	err := apperror.NotFound("game", gameID)
	return api.ErrorJSONResponse(errorBody(err, http.StatusNotFound)), true
}

func (s Server) GetProgress(ctx context.Context, request api.GetProgressRequestObject) (api.GetProgressResponseObject, error) {
	if body, unknown := s.unknownGame(request.GameId); unknown {
		return api.GetProgress404JSONResponse{ErrorJSONResponse: body}, nil
	}
	level, err := s.Ledger.GetBestLevel(ctx, validator.UserID(ctx), request.GameId)
	if err != nil {
		return nil, err
	}
	return api.GetProgress200JSONResponse{GameId: request.GameId, BestLevel: level}, nil
}

func (s Server) CompleteLevel(ctx context.Context, request api.CompleteLevelRequestObject) (api.CompleteLevelResponseObject, error) {
	if body, unknown := s.unknownGame(request.GameId); unknown {
		return api.CompleteLevel404JSONResponse{ErrorJSONResponse: body}, nil
	}
	if err := s.Catalog.CheckLevel(request.GameId, request.Body.Level); err != nil {
		return nil, err
	}
	outcome, err := s.Ledger.UpdateBestLevel(ctx, validator.UserID(ctx), request.GameId, request.Body.Level)
	if err != nil {
		return nil, err
	}
	return api.CompleteLevel200JSONResponse(api.TransformOutcome(outcome)), nil
}

func (s Server) AddRewards(ctx context.Context, request api.AddRewardsRequestObject) (api.AddRewardsResponseObject, error) {
	outcome, err := s.Ledger.AddRewardDelta(ctx, validator.UserID(ctx), request.Body.Delta)
	if err != nil {
		return nil, err
	}
	return api.AddRewards200JSONResponse(api.TransformOutcome(outcome)), nil
}

// StreamEvents pushes the caller's ledger events as server-sent events until
// the client goes away.
func (s Server) StreamEvents(ctx context.Context, request api.StreamEventsRequestObject) (api.StreamEventsResponseObject, error) {
	uid := validator.UserID(ctx)
	if uid == "" {
		return nil, apperror.Unauthenticated("streamEvents")
	}
	if c, ok := ctx.(*gin.Context); ok {
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
	}
	return api.StreamEvents200TexteventStreamResponse{
		Body: newEventStream(ctx, s.Events, uid),
	}, nil
}

func (s Server) SuggestNickname(ctx context.Context, request api.SuggestNicknameRequestObject) (api.SuggestNicknameResponseObject, error) {
	suggestion := generator.Nickname()
	if taken := request.Params.Taken; taken != nil && *taken != "" {
		suggestion = generator.Alternative(*taken)
	}
	return api.SuggestNickname200JSONResponse{Nickname: suggestion}, nil
}

func (s Server) GetNicknameAvailability(ctx context.Context, request api.GetNicknameAvailabilityRequestObject) (api.GetNicknameAvailabilityResponseObject, error) {
	owner, err := s.Nickname.Owner(ctx, request.Nickname)
	if err != nil {
		return nil, err
	}
	display, _ := nickname.Normalize(request.Nickname)
	return api.GetNicknameAvailability200JSONResponse{
		Nickname:  display,
		Available: owner == "",
	}, nil
}

func (s Server) RewardsLeaderboard(ctx context.Context, request api.RewardsLeaderboardRequestObject) (api.RewardsLeaderboardResponseObject, error) {
	entries, err := s.Ranking.Rewards(ctx, limitOrDefault(request.Params.Limit))
	if err != nil {
		return nil, err
	}
	return api.RewardsLeaderboard200JSONResponse(api.TransformLeaderboard("", entries)), nil
}

func (s Server) GameLeaderboard(ctx context.Context, request api.GameLeaderboardRequestObject) (api.GameLeaderboardResponseObject, error) {
	if body, unknown := s.unknownGame(request.GameId); unknown {
		return api.GameLeaderboard404JSONResponse{ErrorJSONResponse: body}, nil
	}
	entries, err := s.Ranking.Game(ctx, request.GameId, limitOrDefault(request.Params.Limit))
	if err != nil {
		return nil, err
	}
	return api.GameLeaderboard200JSONResponse(api.TransformLeaderboard(request.GameId, entries)), nil
}
