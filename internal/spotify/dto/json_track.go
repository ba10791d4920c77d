package dto

import "github.com/handiism/timecrawl/internal/model"

// JSONTrack is a track object as returned by the Spotify Web API.
type JSONTrack struct {
	ID         string        `json:"id"`
	URI        string        `json:"uri"`
	Name       string        `json:"name"`
	Popularity int           `json:"popularity"`
	DurationMs int           `json:"duration_ms"`
	Artists    []*JSONArtist `json:"artists"`
	Album      *JSONAlbum    `json:"album"`
}

// JSONAlbum is the simplified album object embedded in a track.
type JSONAlbum struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ReleaseDate          string `json:"release_date"`
	ReleaseDatePrecision string `json:"release_date_precision"`
}

// JSONTopTracks is the body of GET /artists/{id}/top-tracks.
type JSONTopTracks struct {
	Tracks []*JSONTrack `json:"tracks"`
}

// ToTrack converts JSONTrack to a model.Track.
//
// The precision string is copied as-is; unknown values are rejected later
// by model.ReleaseTime.
func (jt *JSONTrack) ToTrack() model.Track {
	track := model.Track{
		ID:         jt.ID,
		URI:        jt.URI,
		Name:       jt.Name,
		Popularity: jt.Popularity,
		DurationMs: jt.DurationMs,
	}

	for _, a := range jt.Artists {
		if a == nil {
			continue
		}
		track.ArtistIDs = append(track.ArtistIDs, a.ID)
		track.ArtistNames = append(track.ArtistNames, a.Name)
	}

	if jt.Album != nil {
		track.Album = model.Album{
			ID:          jt.Album.ID,
			Name:        jt.Album.Name,
			ReleaseDate: jt.Album.ReleaseDate,
			Precision:   model.Precision(jt.Album.ReleaseDatePrecision),
		}
	}

	return track
}

// ToTracks converts a list of tracks, skipping null entries, entries without
// an identity and entries without an album.
func ToTracks(items []*JSONTrack) []model.Track {
	tracks := make([]model.Track, 0, len(items))
	for _, jt := range items {
		if jt == nil || (jt.ID == "" && jt.URI == "") || jt.Album == nil {
			continue
		}
		tracks = append(tracks, jt.ToTrack())
	}
	return tracks
}
