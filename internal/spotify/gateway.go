package spotify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	xhttp "github.com/handiism/timecrawl/internal/http"
	"github.com/handiism/timecrawl/internal/model"
	"github.com/handiism/timecrawl/internal/spotify/dto"
)

// DefaultBaseURL is the Spotify Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

const (
	// DefaultMarket is the market used for top-track lookups.
	DefaultMarket = "US"

	// DefaultSearchLimit is how many artists a name search returns.
	DefaultSearchLimit = 1
)

// Submitter sends one request. *pipeline.Pipeline implements Submitter.
type Submitter interface {
	Submit(ctx context.Context, req *xhttp.Request) (*xhttp.Response, error)
}

// Gateway performs catalog lookups through a Submitter.
type Gateway struct {
	submitter   Submitter
	market      string
	searchLimit int
	logger      *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithMarket sets the market used for top-track lookups.
func WithMarket(market string) Option {
	return func(g *Gateway) {
		if market != "" {
			g.market = market
		}
	}
}

// WithSearchLimit sets how many artists a name search returns.
func WithSearchLimit(limit int) Option {
	return func(g *Gateway) {
		if limit > 0 {
			g.searchLimit = limit
		}
	}
}

// WithLogger sets the logger used for decode warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGateway creates a Gateway that sends every request through s.
func NewGateway(s Submitter, opts ...Option) *Gateway {
	g := &Gateway{
		submitter:   s,
		market:      DefaultMarket,
		searchLimit: DefaultSearchLimit,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SearchArtists finds artists by name.
//
// Returns an empty slice when nothing matches or the body is unusable.
func (g *Gateway) SearchArtists(ctx context.Context, name string) ([]model.Artist, error) {
	body, err := fetch[dto.JSONSearch](ctx, g, &xhttp.Request{
		Path: "search",
		Query: map[string]string{
			"q":     name,
			"type":  "artist",
			"limit": strconv.Itoa(g.searchLimit),
		},
	})
	if err != nil {
		return nil, err
	}
	if body.Artists == nil {
		return []model.Artist{}, nil
	}
	return dto.ToArtists(body.Artists.Items), nil
}

// RelatedArtists returns the artists the catalog considers related to id.
func (g *Gateway) RelatedArtists(ctx context.Context, id string) ([]model.Artist, error) {
	body, err := fetch[dto.JSONRelatedArtists](ctx, g, &xhttp.Request{Path: "artists/" + url.PathEscape(id) + "/related-artists"})
	if err != nil {
		return nil, err
	}
	return dto.ToArtists(body.Artists), nil
}

// TopTracks returns the artist's top tracks in the configured market.
func (g *Gateway) TopTracks(ctx context.Context, id string) ([]model.Track, error) {
	body, err := fetch[dto.JSONTopTracks](ctx, g, &xhttp.Request{
		Path:  "artists/" + url.PathEscape(id) + "/top-tracks",
		Query: map[string]string{"market": g.market},
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTracks(body.Tracks), nil
}

// fetch submits req and decodes the body into a T. A body that does not
// decode yields the zero T and no error.
func fetch[T any](ctx context.Context, g *Gateway, req *xhttp.Request) (T, error) {
	var body T
	resp, err := g.submitter.Submit(ctx, req)
	if err != nil {
		return body, err
	}
	if len(resp.Body) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		g.logger.Warn("catalog response not decodable, treating as empty",
			"request", req.String(),
			"error", err,
		)
		var zero T
		return zero, nil
	}
	return body, nil
}
