package discovery

import (
	"fmt"
	"math/rand/v2"

	"github.com/handiism/timecrawl/internal/model"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func track(id string, year int) model.Track {
	return model.Track{
		ID:   id,
		URI:  "spotify:track:" + id,
		Name: "Track " + id,
		Album: model.Album{
			ID:          "album-" + id,
			ReleaseDate: fmt.Sprintf("%04d", year),
			Precision:   model.PrecisionYear,
		},
	}
}

func artist(id string, years ...int) model.Artist {
	a := model.Artist{ID: id, Name: "Artist " + id}
	for i, y := range years {
		a.Tracks = append(a.Tracks, track(fmt.Sprintf("%s%d", id, i), y))
	}
	return a
}

func ids(artists []model.Artist) []string {
	out := make([]string, len(artists))
	for i, a := range artists {
		out[i] = a.ID
	}
	return out
}
