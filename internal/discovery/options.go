package discovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOptions is returned by Discover when Options fail validation.
var ErrInvalidOptions = errors.New("invalid discovery options")

var optionsValidate = validator.New()

// Options controls one discovery run.
type Options struct {
	// SeedArtistName is searched for to start the crawl.
	SeedArtistName string `json:"seed_artist_name" validate:"required"`

	// TargetYear is the release year tracks are collected around.
	TargetYear int `json:"target_year" validate:"gte=1200,lte=9999"`

	// YearDelta widens the accepted window to [TargetYear-YearDelta, TargetYear+YearDelta].
	YearDelta int `json:"year_delta" validate:"gte=0,lte=100"`

	// CycleQuota is the number of ranked artists always kept per cycle.
	CycleQuota int `json:"cycle_quota" validate:"gte=1"`

	// TracksPerArtist caps how many tracks are sampled from one artist per cycle.
	TracksPerArtist int `json:"tracks_per_artist" validate:"gte=1"`

	// ResultQuota is the number of unique tracks to collect.
	ResultQuota int `json:"result_quota" validate:"gte=1"`

	// Depth, Popularity and Pull are accepted for forward compatibility and
	// currently ignored.
	Depth      int `json:"depth" validate:"gte=0"`
	Popularity int `json:"popularity" validate:"gte=0,lte=100"`
	Pull       int `json:"pull" validate:"gte=0"`
}

// DefaultOptions returns options with the default quotas and a one-year delta.
// SeedArtistName and TargetYear still need to be set.
func DefaultOptions() Options {
	return Options{
		YearDelta:       1,
		CycleQuota:      2,
		TracksPerArtist: 2,
		ResultQuota:     100,
	}
}

// withDefaults fills quotas left at zero. YearDelta is left alone because
// zero is a meaningful delta.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.CycleQuota == 0 {
		o.CycleQuota = def.CycleQuota
	}
	if o.TracksPerArtist == 0 {
		o.TracksPerArtist = def.TracksPerArtist
	}
	if o.ResultQuota == 0 {
		o.ResultQuota = def.ResultQuota
	}
	return o
}

// Validate checks the options. The returned error wraps ErrInvalidOptions.
func (o Options) Validate() error {
	err := optionsValidate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
}

// inWindow reports whether year lies in [target-delta, target+delta].
func inWindow(year, target, delta int) bool {
	return year >= target-delta && year <= target+delta
}
