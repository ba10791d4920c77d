package discovery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/timecrawl/internal/model"
)

// Catalog is the set of lookups the crawler needs. *spotify.Gateway
// implements Catalog.
type Catalog interface {
	SearchArtists(ctx context.Context, name string) ([]model.Artist, error)
	RelatedArtists(ctx context.Context, id string) ([]model.Artist, error)
	TopTracks(ctx context.Context, id string) ([]model.Track, error)
}

// State is the crawler's position in its state machine.
type State int

const (
	// StateSeeding is the initial state; the frontier is empty.
	StateSeeding State = iota

	// StateExpanding expands the frontier through related artists.
	StateExpanding

	// StateTerminated means the crawl is over.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateSeeding:
		return "seeding"
	case StateExpanding:
		return "expanding"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome describes how a crawl ended.
type Outcome string

const (
	// OutcomeComplete means ResultQuota tracks were collected.
	OutcomeComplete Outcome = "complete"

	// OutcomePartial means the crawl stopped before reaching ResultQuota.
	OutcomePartial Outcome = "partial"
)

// Limits bounds a crawl that cannot reach its quota.
type Limits struct {
	// MaxCycles is the maximum number of expand/rank/sample cycles.
	MaxCycles int

	// MaxVisitedArtists stops the crawl once this many artists were visited.
	MaxVisitedArtists int

	// Concurrency is how many lookups are submitted at once. The request
	// pipeline still executes them one at a time.
	Concurrency int
}

// DefaultLimits returns the default crawl limits.
func DefaultLimits() Limits {
	return Limits{
		MaxCycles:         50,
		MaxVisitedArtists: 2000,
		Concurrency:       8,
	}
}

// Result is the outcome of one Discover call.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Tracks holds at most ResultQuota unique tracks in random order.
	Tracks []model.Track

	// Outcome is OutcomeComplete or OutcomePartial.
	Outcome Outcome

	// Reason explains a partial outcome. Empty when complete.
	Reason string

	// Cycles is the number of cycles run.
	Cycles int

	// VisitedArtists is the number of distinct artists visited.
	VisitedArtists int

	// Collected is the number of unique tracks found before truncation.
	Collected int
}

// Crawler runs discovery crawls against a Catalog.
//
// A Crawler may be reused for several sequential Discover calls; each call
// owns its own crawl state.
type Crawler struct {
	catalog    Catalog
	limits     Limits
	rng        *rand.Rand
	logger     *slog.Logger
	onProgress func(ProgressEvent)
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithLimits sets the crawl limits. Zero fields fall back to DefaultLimits.
func WithLimits(l Limits) Option {
	return func(c *Crawler) {
		def := DefaultLimits()
		if l.MaxCycles <= 0 {
			l.MaxCycles = def.MaxCycles
		}
		if l.MaxVisitedArtists <= 0 {
			l.MaxVisitedArtists = def.MaxVisitedArtists
		}
		if l.Concurrency <= 0 {
			l.Concurrency = def.Concurrency
		}
		c.limits = l
	}
}

// WithRand sets the randomness source used for tie-breaking, sampling and
// the final shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(c *Crawler) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProgress sets a callback receiving progress events.
func WithProgress(fn func(ProgressEvent)) Option {
	return func(c *Crawler) {
		c.onProgress = fn
	}
}

// NewCrawler creates a Crawler reading from catalog.
func NewCrawler(catalog Catalog, opts ...Option) *Crawler {
	c := &Crawler{
		catalog: catalog,
		limits:  DefaultLimits(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover crawls the related-artist graph starting at opts.SeedArtistName
// and returns up to opts.ResultQuota unique tracks released within
// opts.YearDelta years of opts.TargetYear.
//
// Discover returns once the quota is met or the crawl cannot make progress.
// In the latter case Result.Outcome is OutcomePartial and Result.Reason says
// why. Errors from the catalog, unresolvable release dates and context
// cancellation abort the crawl and are returned.
func (c *Crawler) Discover(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString()}
	logger := c.logger.With(
		"run_id", res.RunID,
		"seed", opts.SeedArtistName,
		"target_year", opts.TargetYear,
	)

	acc := NewAccumulator()
	state := StateSeeding
	var frontier []model.Artist

	// abort reports a crawl-ending error and returns it.
	abort := func(err error) (*Result, error) {
		logger.Error("discovery aborted", "cycle", res.Cycles, "error", err)
		c.progress(ProgressEvent{
			Message:   fmt.Sprintf("Aborted: %v", err),
			Level:     LevelError,
			Cycle:     res.Cycles,
			Collected: acc.Len(),
			Visited:   acc.Visited(),
		})
		return nil, err
	}

	c.progress(ProgressEvent{Message: fmt.Sprintf("Searching for %q", opts.SeedArtistName), Level: LevelInfo})

	for state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return abort(err)
		}

		var (
			raw []model.Artist
			err error
		)
		switch state {
		case StateSeeding:
			raw, err = c.catalog.SearchArtists(ctx, opts.SeedArtistName)
			if err != nil {
				return abort(fmt.Errorf("search seed artist: %w", err))
			}
		case StateExpanding:
			raw, err = c.expand(ctx, frontier)
			if err != nil {
				return abort(fmt.Errorf("cycle %d: %w", res.Cycles+1, err))
			}
		}
		res.Cycles++

		fresh := acc.Fresh(raw)
		if err := c.hydrate(ctx, fresh); err != nil {
			return abort(fmt.Errorf("cycle %d: %w", res.Cycles, err))
		}

		ranked, err := Rank(fresh, opts.TargetYear, opts.YearDelta, opts.CycleQuota, c.rng)
		if err != nil {
			return abort(fmt.Errorf("cycle %d: %w", res.Cycles, err))
		}

		sampled, err := Sample(ranked, opts.TargetYear, opts.YearDelta, opts.TracksPerArtist, c.rng)
		if err != nil {
			return abort(fmt.Errorf("cycle %d: %w", res.Cycles, err))
		}
		added := acc.Add(sampled)
		frontier = ranked

		logger.Debug("cycle done",
			"cycle", res.Cycles,
			"state", state.String(),
			"candidates", len(raw),
			"fresh", len(fresh),
			"ranked", len(ranked),
			"added", added,
			"collected", acc.Len(),
			"visited", acc.Visited(),
		)
		for _, a := range ranked {
			c.progress(ProgressEvent{
				Message:   fmt.Sprintf("Selected %s (%d tracks)", a.Name, len(a.Tracks)),
				Level:     LevelVerbose,
				Cycle:     res.Cycles,
				Collected: acc.Len(),
			})
		}
		c.progress(ProgressEvent{
			Message: fmt.Sprintf("Cycle %d: %d new artists, %d selected, %d new tracks (%d/%d)",
				res.Cycles, len(fresh), len(ranked), added, acc.Len(), opts.ResultQuota),
			Level:     LevelInfo,
			Cycle:     res.Cycles,
			Collected: acc.Len(),
			Visited:   acc.Visited(),
		})

		switch {
		case acc.Done(opts.ResultQuota):
			state = StateTerminated
			res.Outcome = OutcomeComplete
		case len(frontier) == 0 && res.Cycles == 1:
			state = StateTerminated
			res.Outcome = OutcomePartial
			res.Reason = fmt.Sprintf("seed artist %q not found", opts.SeedArtistName)
		case len(frontier) == 0:
			state = StateTerminated
			res.Outcome = OutcomePartial
			res.Reason = "no unvisited related artists left"
		case res.Cycles >= c.limits.MaxCycles:
			state = StateTerminated
			res.Outcome = OutcomePartial
			res.Reason = fmt.Sprintf("cycle limit of %d reached", c.limits.MaxCycles)
		case acc.Visited() >= c.limits.MaxVisitedArtists:
			state = StateTerminated
			res.Outcome = OutcomePartial
			res.Reason = fmt.Sprintf("visited-artist limit of %d reached", c.limits.MaxVisitedArtists)
		default:
			state = StateExpanding
		}
	}

	tracks := acc.Tracks()
	c.rng.Shuffle(len(tracks), func(i, j int) { tracks[i], tracks[j] = tracks[j], tracks[i] })
	if len(tracks) > opts.ResultQuota {
		tracks = tracks[:opts.ResultQuota]
	}

	res.Tracks = tracks
	res.Collected = acc.Len()
	res.VisitedArtists = acc.Visited()

	logger.Info("discovery finished",
		"outcome", string(res.Outcome),
		"reason", res.Reason,
		"cycles", res.Cycles,
		"visited", res.VisitedArtists,
		"tracks", len(res.Tracks),
	)
	if res.Outcome == OutcomeComplete {
		c.progress(ProgressEvent{Message: fmt.Sprintf("Collected %d tracks", len(res.Tracks)), Level: LevelSuccess, Cycle: res.Cycles, Collected: res.Collected, Visited: res.VisitedArtists})
	} else {
		c.progress(ProgressEvent{Message: fmt.Sprintf("Stopped early with %d tracks: %s", len(res.Tracks), res.Reason), Level: LevelWarning, Cycle: res.Cycles, Collected: res.Collected, Visited: res.VisitedArtists})
	}

	return res, nil
}

// expand looks up related artists for every frontier artist and merges the
// results in frontier order. Each frontier artist's RelatedIDs is filled.
func (c *Crawler) expand(ctx context.Context, frontier []model.Artist) ([]model.Artist, error) {
	related := make([][]model.Artist, len(frontier))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limits.Concurrency)
	for i := range frontier {
		g.Go(func() error {
			artists, err := c.catalog.RelatedArtists(gctx, frontier[i].ID)
			if err != nil {
				return fmt.Errorf("related artists of %s: %w", frontier[i].Name, err)
			}
			related[i] = artists
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.Artist
	for i, artists := range related {
		ids := make([]string, len(artists))
		for j, a := range artists {
			ids[j] = a.ID
		}
		frontier[i].RelatedIDs = ids
		if len(artists) == 0 {
			c.progress(ProgressEvent{Message: fmt.Sprintf("No related artists for %s", frontier[i].Name), Level: LevelVerbose})
		}
		merged = append(merged, artists...)
	}
	return merged, nil
}

// hydrate fetches top tracks for each artist in place.
func (c *Crawler) hydrate(ctx context.Context, artists []model.Artist) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limits.Concurrency)
	for i := range artists {
		g.Go(func() error {
			tracks, err := c.catalog.TopTracks(gctx, artists[i].ID)
			if err != nil {
				return fmt.Errorf("top tracks of %s: %w", artists[i].Name, err)
			}
			artists[i].Tracks = tracks
			return nil
		})
	}
	return g.Wait()
}

func (c *Crawler) progress(event ProgressEvent) {
	if c.onProgress != nil {
		c.onProgress(event)
	}
}
