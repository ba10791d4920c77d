package discovery

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/handiism/timecrawl/internal/model"
)

// scored is a candidate with its representative release time.
type scored struct {
	artist    model.Artist
	latest    time.Time
	distance  int
	hasTracks bool
}

// Rank orders candidates by how close their latest release is to targetYear
// and selects the ones to keep for this cycle.
//
// The first cycleQuota artists in that order are always kept. After those,
// artists are kept while their latest release year lies within yearDelta of
// targetYear; the scan stops at the first artist outside the window, since
// every later artist is at least as far away.
//
// Artists with equal distance end up in random order, drawn from rng.
// Artists without tracks sort last whatever the target year, and never extend
// the selection past cycleQuota.
func Rank(candidates []model.Artist, targetYear, yearDelta, cycleQuota int, rng *rand.Rand) ([]model.Artist, error) {
	sorted, keep, err := rank(candidates, targetYear, yearDelta, cycleQuota, rng)
	if err != nil {
		return nil, err
	}

	kept := make([]model.Artist, keep)
	for i := range keep {
		kept[i] = sorted[i].artist
	}
	return kept, nil
}

// rank returns the full proximity order and how many of its leading entries
// are kept.
func rank(candidates []model.Artist, targetYear, yearDelta, cycleQuota int, rng *rand.Rand) ([]scored, int, error) {
	items := make([]scored, 0, len(candidates))
	for _, a := range candidates {
		latest, err := model.LatestRelease(a)
		if err != nil {
			return nil, 0, fmt.Errorf("rank artist %s (%s): %w", a.Name, a.ID, err)
		}
		items = append(items, scored{
			artist:    a,
			latest:    latest,
			distance:  abs(latest.Year() - targetYear),
			hasTracks: len(a.Tracks) > 0,
		})
	}

	// Shuffle first so the stable sort leaves ties in random order.
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	slices.SortStableFunc(items, func(a, b scored) int {
		if a.hasTracks != b.hasTracks {
			if a.hasTracks {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.distance, b.distance)
	})

	keep := min(cycleQuota, len(items))
	for _, it := range items[keep:] {
		if !it.hasTracks || !inWindow(it.latest.Year(), targetYear, yearDelta) {
			break
		}
		keep++
	}
	return items, keep, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
