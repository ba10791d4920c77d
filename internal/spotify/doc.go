// Package spotify is the catalog gateway used by the crawler.
//
// Gateway exposes the three lookups the crawl needs:
//
//  1. SearchArtists: find the seed artist by name
//  2. RelatedArtists: expand the artist graph
//  3. TopTracks: fetch the tracks used for ranking and sampling
//
// Every call is routed through a Submitter, normally a *pipeline.Pipeline, so
// that ordering, pacing and throttling are handled in one place.
//
// # Basic Usage
//
//	client := http.NewClient(spotify.DefaultBaseURL, token, 30*time.Second)
//	p := pipeline.New(client, pipeline.DefaultConfig())
//	gw := spotify.NewGateway(p, spotify.WithMarket("US"))
//
//	artists, err := gw.SearchArtists(ctx, "Radiohead")
//
// # Partial Data
//
// Bodies that cannot be decoded, or entries missing an id, are treated as
// empty results rather than errors. Errors from the Submitter (a disabled
// pipeline, a failed request) are returned unchanged.
package spotify
