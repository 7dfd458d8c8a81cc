package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"arayWorlds/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestAuth(t *testing.T, handler http.HandlerFunc) *AuthServiceImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAuthService(resty.New(), "test-key", WithBaseURLs(srv.URL+"/identity", srv.URL+"/secure"))
}

func TestSignInWithGoogle(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/identity/accounts:signInWithIdp", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req signInWithIdpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		form, err := url.ParseQuery(req.PostBody)
		require.NoError(t, err)
		assert.Equal(t, "google-token", form.Get("id_token"))
		assert.Equal(t, "google.com", form.Get("providerId"))
		assert.True(t, req.ReturnSecureToken)

		writeJSON(w, http.StatusOK, map[string]any{
			"localId":      "u1",
			"email":        "aray@example.com",
			"idToken":      "firebase-id",
			"refreshToken": "firebase-refresh",
			"expiresIn":    "3600",
			"isNewUser":    true,
		})
	})

	session, err := auth.SignInWithGoogle(context.Background(), "google-token")
	require.NoError(t, err)
	assert.Equal(t, &Session{
		UserID:       "u1",
		Email:        "aray@example.com",
		IDToken:      "firebase-id",
		RefreshToken: "firebase-refresh",
		ExpiresIn:    3600,
		IsNewUser:    true,
	}, session)
}

func TestSignInRejected(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": 400, "message": "INVALID_IDP_RESPONSE"},
		})
	})

	_, err := auth.SignInWithGoogle(context.Background(), "bad")
	require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Contains(t, err.Error(), "INVALID_IDP_RESPONSE")
}

func TestSignInRequiresToken(t *testing.T) {
	auth := NewAuthService(resty.New(), "k")
	_, err := auth.SignInWithGoogle(context.Background(), "")
	require.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRefreshToken(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secure/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "old-refresh", r.PostForm.Get("refresh_token"))

		writeJSON(w, http.StatusOK, map[string]any{
			"user_id":       "u1",
			"id_token":      "new-id",
			"refresh_token": "new-refresh",
			"expires_in":    "3600",
		})
	})

	session, err := auth.RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "new-id", session.IDToken)
	assert.Equal(t, int64(3600), session.ExpiresIn)
}

func TestRefreshServerError(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"code": 500, "message": "BACKEND_ERROR"},
		})
	})

	_, err := auth.RefreshToken(context.Background(), "r")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrUnauthenticated)
}
