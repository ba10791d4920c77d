package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/timecrawl/internal/discovery"
	xhttp "github.com/handiism/timecrawl/internal/http"
	ioutils "github.com/handiism/timecrawl/internal/io"
	"github.com/handiism/timecrawl/internal/pipeline"
	"github.com/handiism/timecrawl/internal/playlist"
	"github.com/handiism/timecrawl/internal/spotify"
)

// Settings holds all configuration options.
//
// Durations are expressed in seconds.
type Settings struct {
	// Catalog settings
	CatalogBaseURL string  `json:"catalog_base_url"`
	TokenURL       string  `json:"token_url"`
	Market         string  `json:"market"`
	SearchLimit    int     `json:"search_limit"`
	RequestTimeout float64 `json:"request_timeout"`

	// Request pipeline settings
	PacingInterval        float64 `json:"pacing_interval"`
	RetryAfterMargin      float64 `json:"retry_after_margin"`
	ThrottleMaxRetries    int     `json:"throttle_max_retries"`
	ThrottleRetryCooldown float64 `json:"throttle_retry_cooldown"`
	ThrottleRetryExponent float64 `json:"throttle_retry_exponent"`

	// Crawl settings
	MaxConcurrentLookups int `json:"max_concurrent_lookups"`
	MaxCycles            int `json:"max_cycles"`
	MaxVisitedArtists    int `json:"max_visited_artists"`
	YearDelta            int `json:"year_delta"`
	CycleQuota           int `json:"cycle_quota"`
	TracksPerArtist      int `json:"tracks_per_artist"`
	ResultQuota          int `json:"result_quota"`

	// Playlist settings
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls, wpl, zpl
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`
	M3UExtended            bool   `json:"m3u_extended"`

	// Logging settings
	LogLevel  string `json:"log_level"`  // debug, info, warn, error
	LogFormat string `json:"log_format"` // console, json
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	pc := pipeline.DefaultConfig()
	limits := discovery.DefaultLimits()
	opts := discovery.DefaultOptions()

	return &Settings{
		CatalogBaseURL: spotify.DefaultBaseURL,
		TokenURL:       xhttp.DefaultTokenURL,
		Market:         spotify.DefaultMarket,
		SearchLimit:    spotify.DefaultSearchLimit,
		RequestTimeout: 30,

		PacingInterval:        pc.Pacing.Seconds(),
		RetryAfterMargin:      pc.RetryAfterMargin.Seconds(),
		ThrottleMaxRetries:    pc.MaxThrottleRetries,
		ThrottleRetryCooldown: pc.RetryCooldown.Seconds(),
		ThrottleRetryExponent: pc.RetryExponent,

		MaxConcurrentLookups: limits.Concurrency,
		MaxCycles:            limits.MaxCycles,
		MaxVisitedArtists:    limits.MaxVisitedArtists,
		YearDelta:            opts.YearDelta,
		CycleQuota:           opts.CycleQuota,
		TracksPerArtist:      opts.TracksPerArtist,
		ResultQuota:          opts.ResultQuota,

		PlaylistFormat:         "m3u",
		PlaylistFileNameFormat: "{artist} {year}",
		M3UExtended:            true,

		LogLevel:  "info",
		LogFormat: "console",
	}
}

// DefaultPath returns the settings file location under the user config
// directory, falling back to the working directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "timecrawl.json"
	}
	return filepath.Join(dir, "timecrawl", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields
// DefaultSettings; fields absent from the file keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, append(data, '\n'))
}

// ToPipelineConfig converts settings to pipeline.Config.
func (s *Settings) ToPipelineConfig() pipeline.Config {
	return pipeline.Config{
		Pacing:             seconds(s.PacingInterval),
		RetryAfterMargin:   seconds(s.RetryAfterMargin),
		MaxThrottleRetries: s.ThrottleMaxRetries,
		RetryCooldown:      seconds(s.ThrottleRetryCooldown),
		RetryExponent:      s.ThrottleRetryExponent,
	}
}

// ToLimits converts settings to discovery.Limits.
func (s *Settings) ToLimits() discovery.Limits {
	return discovery.Limits{
		MaxCycles:         s.MaxCycles,
		MaxVisitedArtists: s.MaxVisitedArtists,
		Concurrency:       s.MaxConcurrentLookups,
	}
}

// ToOptions converts settings to discovery.Options for one seed artist and
// target year.
func (s *Settings) ToOptions(artist string, year int) discovery.Options {
	return discovery.Options{
		SeedArtistName:  artist,
		TargetYear:      year,
		YearDelta:       s.YearDelta,
		CycleQuota:      s.CycleQuota,
		TracksPerArtist: s.TracksPerArtist,
		ResultQuota:     s.ResultQuota,
	}
}

// ToPlaylistFormat converts the playlist format name. Unknown names fall back
// to M3U.
func (s *Settings) ToPlaylistFormat() playlist.Format {
	f, err := playlist.ParseFormat(s.PlaylistFormat)
	if err != nil {
		return playlist.FormatM3U
	}
	return f
}

// Timeout returns the request timeout.
func (s *Settings) Timeout() time.Duration {
	return seconds(s.RequestTimeout)
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
