package identity

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"arayWorlds/apperror"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	DefaultSecureTokenURL     = "https://securetoken.googleapis.com/v1"
	googleProviderID          = "google.com"
)

type AuthService interface {
	// SignInWithGoogle exchanges a Google ID token for Firebase credentials.
	SignInWithGoogle(ctx context.Context, googleIDToken string) (*Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*Session, error)
}

var _ AuthService = (*AuthServiceImpl)(nil)

type AuthServiceImpl struct {
	http               *resty.Client
	apiKey             string
	identityToolkitURL string
	secureTokenURL     string
	requestURI         string
}

type AuthOption func(*AuthServiceImpl)

// WithBaseURLs points the service at other Identity Toolkit and Secure Token
// endpoints, such as the Auth emulator.
func WithBaseURLs(identityToolkit, secureToken string) AuthOption {
	return func(a *AuthServiceImpl) {
		a.identityToolkitURL = identityToolkit
		a.secureTokenURL = secureToken
	}
}

func NewAuthService(client *resty.Client, apiKey string, opts ...AuthOption) *AuthServiceImpl {
	a := &AuthServiceImpl{
		http:               client,
		apiKey:             apiKey,
		identityToolkitURL: DefaultIdentityToolkitURL,
		secureTokenURL:     DefaultSecureTokenURL,
		requestURI:         "http://localhost",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func parseExpiry(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func rejected(operation string, authErr *AuthError) error {
	return &apperror.AppError{
		Err:     apperror.ErrUnauthenticated,
		Message: fmt.Sprintf("%s rejected: %s", operation, authErr.Detail.Message),
	}
}

func (a *AuthServiceImpl) SignInWithGoogle(ctx context.Context, googleIDToken string) (*Session, error) {
	if googleIDToken == "" {
		return nil, apperror.ValidationFailed("idToken", "google id token is required")
	}
	response := &signInWithIdpResponse{}
	responseError := &AuthError{}

	postBody := url.Values{
		"id_token":   []string{googleIDToken},
		"providerId": []string{googleProviderID},
	}
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParam("key", a.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(signInWithIdpRequest{
			PostBody:            postBody.Encode(),
			RequestURI:          a.requestURI,
			ReturnIdpCredential: true,
			ReturnSecureToken:   true,
		}).
		SetResult(response).
		SetError(responseError).
		Post(a.identityToolkitURL + "/accounts:signInWithIdp")
	if err != nil {
		slog.With("error", err.Error()).Error("Error signing in with google")
		return nil, err
	}
	if resp.IsError() {
		if resp.StatusCode() < 500 {
			return nil, rejected("sign-in", responseError)
		}
		return nil, fmt.Errorf("error signing in: %s", responseError.Error())
	}
	return &Session{
		UserID:       response.LocalID,
		Email:        response.Email,
		DisplayName:  response.DisplayName,
		IDToken:      response.IDToken,
		RefreshToken: response.RefreshToken,
		ExpiresIn:    parseExpiry(response.ExpiresIn),
		IsNewUser:    response.IsNewUser,
	}, nil
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, apperror.ValidationFailed("refreshToken", "refresh token is required")
	}
	response := &refreshResponse{}
	responseError := &AuthError{}
	values := url.Values{
		"grant_type":    []string{"refresh_token"},
		"refresh_token": []string{refreshToken},
	}
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParam("key", a.apiKey).
		SetFormDataFromValues(values).
		SetResult(response).
		SetError(responseError).
		Post(a.secureTokenURL + "/token")
	if err != nil {
		slog.With("error", err.Error()).Error("Error refreshing token")
		return nil, err
	}
	if resp.IsError() {
		if resp.StatusCode() < 500 {
			return nil, rejected("refresh", responseError)
		}
		return nil, fmt.Errorf("error refreshing token: %s", responseError.Error())
	}
	return &Session{
		UserID:       response.UserID,
		IDToken:      response.IDToken,
		RefreshToken: response.RefreshToken,
		ExpiresIn:    parseExpiry(response.ExpiresIn),
	}, nil
}
