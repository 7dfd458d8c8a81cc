package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"arayWorlds/services/identity"

	"github.com/getkin/kin-openapi/openapi3filter"
	middleware "github.com/oapi-codegen/gin-middleware"
)

type key string

const accessToken key = "access_info"

const securityScheme = "bearerAuth"

// Access is what the handlers know about the caller once the bearer token
// has been verified.
type Access struct {
	UserID string
	Email  string
	Token  string
}

func FromContext(ctx context.Context) (*Access, bool) {
	t, ok := ctx.Value(string(accessToken)).(*Access)
	return t, ok
}

// UserID returns the signed-in uid or "" for anonymous callers.
func UserID(ctx context.Context) string {
	if a, ok := FromContext(ctx); ok {
		return a.UserID
	}
	return ""
}

var (
	ErrNoAuthHeader      = errors.New("Authorization header is missing")
	ErrInvalidAuthHeader = errors.New("Authorization header is malformed")
)

// GetJWSFromRequest extracts a JWS string from an Authorization: Bearer <jws> header
func GetJWSFromRequest(req *http.Request) (string, error) {
	authHdr := req.Header.Get("Authorization")
	if authHdr == "" {
		return "", ErrNoAuthHeader
	}
	prefix := "Bearer "
	if !strings.HasPrefix(authHdr, prefix) {
		return "", ErrInvalidAuthHeader
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHdr, prefix))
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// NewAuthenticator verifies the bearer token with v and stores the caller on
// the gin context for the handlers.
func NewAuthenticator(v identity.Verifier) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		if input.SecuritySchemeName != securityScheme {
			return fmt.Errorf("security scheme %s != '%s'", input.SecuritySchemeName, securityScheme)
		}

		jws, err := GetJWSFromRequest(input.RequestValidationInput.Request)
		if err != nil {
			return fmt.Errorf("getting jws: %w", err)
		}

		claims, err := v.Verify(ctx, jws)
		if err != nil {
			return err
		}

		gCtx := middleware.GetGinContext(ctx)
		gCtx.Set(string(accessToken), &Access{
			UserID: claims.UserID,
			Email:  claims.Email,
			Token:  jws,
		})
		return nil
	}
}
