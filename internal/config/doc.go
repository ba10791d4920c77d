// Package config provides configuration management for timecrawl.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to pipeline.Config, discovery.Limits, discovery.Options and
//     playlist.Format for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// One request in flight, 125ms apart
//	// Up to 7 retries on 429 with 0.2s * 4^n backoff
//	// 100 tracks within one year of the target
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.ResultQuota = 50
//	err := settings.Save(config.DefaultPath())
//
// Durations (pacing_interval, retry_after_margin, throttle_retry_cooldown,
// request_timeout) are stored as seconds.
package config
