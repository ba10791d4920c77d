package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTokenURL is the Spotify accounts token endpoint.
const DefaultTokenURL = "https://accounts.spotify.com/api/token"

// ErrNoAccessToken is returned when the token endpoint answers without an
// access_token field.
var ErrNoAccessToken = errors.New("access token not found in response")

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// FetchToken exchanges client credentials for a bearer token.
//
// The request uses HTTP basic auth and a form-encoded
// grant_type=client_credentials body.
//
// Example:
//
//	token, err := FetchToken(ctx, DefaultTokenURL, os.Getenv("SPOTIFY_CLIENT_ID"), os.Getenv("SPOTIFY_CLIENT_SECRET"))
func FetchToken(ctx context.Context, tokenURL, clientID, clientSecret string) (string, error) {
	var result tokenResponse

	resp, err := resty.New().
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", DefaultUserAgent).
		R().
		SetContext(ctx).
		SetBasicAuth(clientID, clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&result).
		Post(tokenURL)
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("token request: HTTP %d: %s", resp.StatusCode(), resp.Status())
	}
	if result.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return result.AccessToken, nil
}
