// Package http provides the HTTP transport used to reach the music catalog.
//
// The Client in this package handles:
//   - Base URL and bearer token configuration
//   - User-Agent headers
//   - Timeout handling
//   - Returning every HTTP status as a Response (only transport failures are errors)
//
// Rate limiting, retries and ordering are not handled here; see package pipeline.
//
// # Basic Usage
//
//	client := http.NewClient("https://api.spotify.com/v1", token, 30*time.Second)
//
//	resp, err := client.Do(ctx, &http.Request{
//	    Path:  "search",
//	    Query: map[string]string{"q": "Radiohead", "type": "artist"},
//	})
//
// # Tokens
//
// FetchToken performs a client-credentials exchange against a token endpoint:
//
//	token, err := http.FetchToken(ctx, "https://accounts.spotify.com/api/token", id, secret)
package http
