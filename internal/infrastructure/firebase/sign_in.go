package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// SignInError carries the fault code returned by the sign-in endpoint,
// e.g. EMAIL_NOT_FOUND or TOO_MANY_ATTEMPTS_TRY_LATER.
type SignInError struct {
	Code string
}

func (e *SignInError) Error() string {
	return fmt.Sprintf("sign-in failed: %s", e.Code)
}

func (e *SignInError) SignInCode() string {
	return e.Code
}

// SignInWithEmailPassword exchanges credentials for an ID token via the
// Identity Toolkit REST API. The Admin SDK has no password sign-in, so
// this is the one place the service talks to the public endpoint.
func (f *AuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", f.signInURL, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		IDToken string `json:"idToken"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		// Messages can carry a suffix, e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
		code := strings.TrimSpace(strings.SplitN(result.Error.Message, ":", 2)[0])
		return "", &SignInError{Code: code}
	}

	return result.IDToken, nil
}
