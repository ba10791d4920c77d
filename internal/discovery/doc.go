// Package discovery crawls the related-artist graph to collect tracks released
// around a target year.
//
// # Crawler
//
// The Crawler drives the whole process:
//
//  1. Search the catalog for the seed artist
//  2. Drop artists that were already visited
//  3. Fetch top tracks for the remaining artists
//  4. Rank them by how close their latest release is to the target year
//  5. Sample a few in-window tracks from each ranked artist
//  6. Expand the ranked artists through their related artists and repeat
//
// The crawl stops once ResultQuota unique tracks have been collected, or
// earlier with OutcomePartial when the graph runs dry or a limit is hit.
//
// # Basic Usage
//
//	crawler := discovery.NewCrawler(gateway,
//	    discovery.WithLimits(discovery.DefaultLimits()),
//	    discovery.WithProgress(func(e discovery.ProgressEvent) { fmt.Println(e.Message) }),
//	)
//
//	opts := discovery.DefaultOptions()
//	opts.SeedArtistName = "Daft Punk"
//	opts.TargetYear = 2001
//
//	result, err := crawler.Discover(ctx, opts)
//
// # Randomness
//
// Tie-breaking in the ranking, track sampling and the final shuffle all draw
// from one *rand.Rand. Pass WithRand with a fixed seed for reproducible runs.
//
// # Errors
//
// A release date with an unknown precision, a disabled request pipeline and
// context cancellation abort Discover. Empty catalog answers do not.
package discovery
