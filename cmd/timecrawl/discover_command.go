package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/handiism/timecrawl/internal/config"
	"github.com/handiism/timecrawl/internal/discovery"
	xhttp "github.com/handiism/timecrawl/internal/http"
	"github.com/handiism/timecrawl/internal/logging"
	"github.com/handiism/timecrawl/internal/pipeline"
	"github.com/handiism/timecrawl/internal/playlist"
	"github.com/handiism/timecrawl/internal/spotify"
)

type discoverFlags struct {
	artist          string
	year            int
	delta           int
	cycleQuota      int
	tracksPerArtist int
	quota           int
	seed            uint64
	playlistPath    string
	format          string
	verbose         bool
}

func newDiscoverCommand(configFlag *string) *cobra.Command {
	var f discoverFlags

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Collect tracks released around --year by crawling artists related to --artist",
		Example: `  timecrawl discover --artist "Daft Punk" --year 2001
  timecrawl discover --artist Blur --year 1994 --delta 0 --quota 30 --playlist ~/Music --format pls`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(settingsPath(*configFlag))
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			if err := applyDiscoverFlags(cmd, settings, &f); err != nil {
				return err
			}
			return runDiscover(cmd, settings, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.artist, "artist", "a", "", "Seed artist name")
	flags.IntVarP(&f.year, "year", "y", 0, "Target release year")
	flags.IntVar(&f.delta, "delta", 0, "Accepted distance in years from --year (default from settings)")
	flags.IntVar(&f.cycleQuota, "cycle-quota", 0, "Ranked artists always kept per cycle (default from settings)")
	flags.IntVar(&f.tracksPerArtist, "tracks-per-artist", 0, "Tracks sampled per artist per cycle (default from settings)")
	flags.IntVarP(&f.quota, "quota", "n", 0, "Number of tracks to collect (default from settings)")
	flags.Uint64Var(&f.seed, "seed", 0, "Random seed for a reproducible crawl")
	flags.StringVarP(&f.playlistPath, "playlist", "p", "", "Write a playlist to this file or directory")
	flags.StringVarP(&f.format, "format", "f", "", "Playlist format: m3u, pls, wpl or zpl (default from settings)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Show per-artist progress")

	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

// applyDiscoverFlags overrides settings with the flags that were set.
func applyDiscoverFlags(cmd *cobra.Command, s *config.Settings, f *discoverFlags) error {
	flags := cmd.Flags()
	if flags.Changed("delta") {
		s.YearDelta = f.delta
	}
	if flags.Changed("cycle-quota") {
		s.CycleQuota = f.cycleQuota
	}
	if flags.Changed("tracks-per-artist") {
		s.TracksPerArtist = f.tracksPerArtist
	}
	if flags.Changed("quota") {
		s.ResultQuota = f.quota
	}
	if flags.Changed("format") {
		if _, err := playlist.ParseFormat(f.format); err != nil {
			return err
		}
		s.PlaylistFormat = f.format
	}
	return nil
}

func runDiscover(cmd *cobra.Command, settings *config.Settings, f *discoverFlags) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	opts := settings.ToOptions(f.artist, f.year)
	if err := opts.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewFromSettings(settings, errOut)
	if err != nil {
		return err
	}

	if err := loadEnv(); err != nil {
		return err
	}
	token, err := resolveToken(ctx, settings.TokenURL)
	if err != nil {
		return err
	}

	client := xhttp.NewClient(settings.CatalogBaseURL, token, settings.Timeout())
	pipe := pipeline.New(client, settings.ToPipelineConfig(), pipeline.WithLogger(logger))
	gateway := spotify.NewGateway(pipe,
		spotify.WithMarket(settings.Market),
		spotify.WithSearchLimit(settings.SearchLimit),
		spotify.WithLogger(logger),
	)

	progress := newProgressPrinter(errOut, f.verbose)
	crawlerOpts := []discovery.Option{
		discovery.WithLimits(settings.ToLimits()),
		discovery.WithLogger(logger),
		discovery.WithProgress(progress.handle),
	}
	if cmd.Flags().Changed("seed") {
		crawlerOpts = append(crawlerOpts, discovery.WithRand(rand.New(rand.NewPCG(f.seed, f.seed))))
	}
	crawler := discovery.NewCrawler(gateway, crawlerOpts...)

	progress.title(fmt.Sprintf("timecrawl: %s around %d", opts.SeedArtistName, opts.TargetYear))

	res, err := crawler.Discover(ctx, opts)
	if f.verbose {
		stats := pipe.Stats()
		logger.Info("pipeline stats",
			"submitted", stats.Submitted,
			"dispatched", stats.Dispatched,
			"throttled", stats.Throttled,
			"failed", stats.Failed,
			"disabled", stats.Disabled,
		)
	}
	if err != nil {
		return err
	}

	if len(res.Tracks) > 0 {
		fmt.Fprintln(out, renderTracks(res.Tracks))
	}
	fmt.Fprintln(out, renderSummary(newStyles(out), res))

	if f.playlistPath != "" {
		path := playlistTarget(f.playlistPath, settings, opts)
		creator := playlist.NewCreator(settings.ToPlaylistFormat(), settings.M3UExtended)
		title := opts.SeedArtistName + " " + strconv.Itoa(opts.TargetYear)
		if err := creator.Write(path, title, res.Tracks); err != nil {
			return err
		}
		fmt.Fprintf(out, "Playlist written to %s\n", path)
	}

	return nil
}

// playlistTarget resolves --playlist: an existing directory gets a file name
// built from playlist_file_name_format, anything else is used as given.
func playlistTarget(target string, s *config.Settings, opts discovery.Options) string {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return target
	}
	format := s.ToPlaylistFormat()
	name := playlist.FileName(s.PlaylistFileNameFormat, opts.SeedArtistName, opts.TargetYear, format.Ext())
	return filepath.Join(target, name)
}
