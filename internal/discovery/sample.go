package discovery

import (
	"fmt"
	"math/rand/v2"

	"github.com/handiism/timecrawl/internal/model"
)

// Sample picks up to tracksPerArtist tracks from each artist whose release
// year lies within yearDelta of targetYear.
//
// Each artist's tracks are visited in a random order drawn from rng, so
// repeated cycles over the same artist can surface different tracks. The
// artist's own Tracks slice is not reordered. The result is the union across
// artists, in artist order.
func Sample(artists []model.Artist, targetYear, yearDelta, tracksPerArtist int, rng *rand.Rand) ([]model.Track, error) {
	var sampled []model.Track
	for _, a := range artists {
		tracks := make([]model.Track, len(a.Tracks))
		copy(tracks, a.Tracks)
		rng.Shuffle(len(tracks), func(i, j int) { tracks[i], tracks[j] = tracks[j], tracks[i] })

		count := 0
		for _, t := range tracks {
			if count == tracksPerArtist {
				break
			}
			year, err := model.ReleaseYear(t.Album)
			if err != nil {
				return nil, fmt.Errorf("sample track %s of %s: %w", t.Key(), a.Name, err)
			}
			if inWindow(year, targetYear, yearDelta) {
				sampled = append(sampled, t)
				count++
			}
		}
	}
	return sampled, nil
}
