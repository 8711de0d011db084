package firebase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signInServer(t *testing.T, status int, body map[string]interface{}) *AuthClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, true, payload["returnSecureToken"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	return &AuthClient{apiKey: "test-key", signInURL: server.URL}
}

func TestSignInWithEmailPasswordReturnsToken(t *testing.T) {
	client := signInServer(t, http.StatusOK, map[string]interface{}{
		"idToken": "tok-1",
	})

	token, err := client.SignInWithEmailPassword(context.Background(), "seller@example.com", "secret99")

	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestSignInWithEmailPasswordExtractsFaultCode(t *testing.T) {
	client := signInServer(t, http.StatusBadRequest, map[string]interface{}{
		"error": map[string]interface{}{
			"message": "EMAIL_NOT_FOUND",
		},
	})

	_, err := client.SignInWithEmailPassword(context.Background(), "nobody@example.com", "secret99")

	var signInErr *SignInError
	assert.ErrorAs(t, err, &signInErr)
	assert.Equal(t, "EMAIL_NOT_FOUND", signInErr.SignInCode())
}

func TestSignInWithEmailPasswordStripsCodeSuffix(t *testing.T) {
	client := signInServer(t, http.StatusBadRequest, map[string]interface{}{
		"error": map[string]interface{}{
			"message": "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled.",
		},
	})

	_, err := client.SignInWithEmailPassword(context.Background(), "seller@example.com", "wrong")

	var signInErr *SignInError
	assert.ErrorAs(t, err, &signInErr)
	assert.Equal(t, "TOO_MANY_ATTEMPTS_TRY_LATER", signInErr.SignInCode())
}
