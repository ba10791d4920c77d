package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	xhttp "github.com/handiism/timecrawl/internal/http"
)

const (
	envToken        = "SPOTIFY_TOKEN"
	envClientID     = "SPOTIFY_CLIENT_ID"
	envClientSecret = "SPOTIFY_CLIENT_SECRET"
)

var errMissingCredentials = errors.New("no catalog credentials: set " + envToken + " or " + envClientID + " and " + envClientSecret)

// loadEnv reads .env from the working directory when present. Variables that
// are already set win.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// resolveToken returns a bearer token, exchanging client credentials at
// tokenURL when no token is set directly.
func resolveToken(ctx context.Context, tokenURL string) (string, error) {
	if token := os.Getenv(envToken); token != "" {
		return token, nil
	}

	id, secret := os.Getenv(envClientID), os.Getenv(envClientSecret)
	if id == "" || secret == "" {
		return "", errMissingCredentials
	}

	token, err := xhttp.FetchToken(ctx, tokenURL, id, secret)
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	return token, nil
}
