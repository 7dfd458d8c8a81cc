package identity

import (
	"context"
	"fmt"
	"time"

	"arayWorlds/apperror"

	"github.com/lestrrat-go/jwx/jwk"
	"github.com/lestrrat-go/jwx/jwt"
)

const (
	// GoogleJWKSURL publishes the keys that sign Firebase ID tokens.
	GoogleJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
	issuerPrefix  = "https://securetoken.google.com/"
)

type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Claims, error)
}

// KeySource returns the current signing keys.
type KeySource func(ctx context.Context) (jwk.Set, error)

type FirebaseVerifier struct {
	keys      KeySource
	projectID string
	skew      time.Duration
}

var _ Verifier = (*FirebaseVerifier)(nil)

// NewFirebaseVerifier fetches Google's signing keys and keeps them fresh in
// the background until ctx is done.
func NewFirebaseVerifier(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	ar := jwk.NewAutoRefresh(ctx)
	ar.Configure(GoogleJWKSURL, jwk.WithMinRefreshInterval(15*time.Minute))
	if _, err := ar.Fetch(ctx, GoogleJWKSURL); err != nil {
		return nil, fmt.Errorf("failed to fetch signing keys: %w", err)
	}
	return NewVerifier(projectID, func(ctx context.Context) (jwk.Set, error) {
		return ar.Fetch(ctx, GoogleJWKSURL)
	}), nil
}

func NewVerifier(projectID string, keys KeySource) *FirebaseVerifier {
	return &FirebaseVerifier{
		keys:      keys,
		projectID: projectID,
		skew:      time.Minute,
	}
}

// StaticKeys serves a fixed key set.
func StaticKeys(set jwk.Set) KeySource {
	return func(context.Context) (jwk.Set, error) {
		return set, nil
	}
}

func invalidToken(reason string) error {
	return &apperror.AppError{
		Err:     apperror.ErrUnauthenticated,
		Message: "invalid id token: " + reason,
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	set, err := v.keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys: %w", err)
	}
	tok, err := jwt.Parse([]byte(idToken), jwt.WithKeySet(set), jwt.InferAlgorithmFromKey(true))
	if err != nil {
		return nil, invalidToken(err.Error())
	}
	err = jwt.Validate(tok,
		jwt.WithIssuer(issuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithAcceptableSkew(v.skew),
	)
	if err != nil {
		return nil, invalidToken(err.Error())
	}
	if tok.Subject() == "" {
		return nil, invalidToken("missing subject")
	}

	claims := &Claims{UserID: tok.Subject()}
	if email, ok := tok.Get("email"); ok {
		claims.Email, _ = email.(string)
	}
	return claims, nil
}
