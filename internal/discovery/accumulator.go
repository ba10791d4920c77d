package discovery

import "github.com/handiism/timecrawl/internal/model"

// Accumulator owns the crawl's visited set and collected tracks.
//
// Both only ever grow. Accumulator is not safe for concurrent use; the
// crawler mutates it from a single goroutine.
type Accumulator struct {
	visited   map[string]struct{}
	collected map[string]model.Track
	order     []string
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		visited:   make(map[string]struct{}),
		collected: make(map[string]model.Track),
	}
}

// Fresh returns the artists of batch that have not been visited yet, in batch
// order, and marks them visited. Duplicates within batch are dropped too.
func (a *Accumulator) Fresh(batch []model.Artist) []model.Artist {
	fresh := make([]model.Artist, 0, len(batch))
	for _, artist := range batch {
		if _, ok := a.visited[artist.ID]; ok {
			continue
		}
		a.visited[artist.ID] = struct{}{}
		fresh = append(fresh, artist)
	}
	return fresh
}

// Visited returns the number of visited artists.
func (a *Accumulator) Visited() int {
	return len(a.visited)
}

// Add merges tracks keyed by Track.Key. The first track stored under a key
// wins. Returns how many tracks were new.
func (a *Accumulator) Add(tracks []model.Track) int {
	added := 0
	for _, t := range tracks {
		key := t.Key()
		if _, ok := a.collected[key]; ok {
			continue
		}
		a.collected[key] = t
		a.order = append(a.order, key)
		added++
	}
	return added
}

// Len returns the number of collected tracks.
func (a *Accumulator) Len() int {
	return len(a.collected)
}

// Done reports whether at least quota tracks have been collected.
func (a *Accumulator) Done(quota int) bool {
	return len(a.collected) >= quota
}

// Tracks returns the collected tracks in the order they were first added.
func (a *Accumulator) Tracks() []model.Track {
	tracks := make([]model.Track, len(a.order))
	for i, key := range a.order {
		tracks[i] = a.collected[key]
	}
	return tracks
}
