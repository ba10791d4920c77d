package dto

import "github.com/handiism/timecrawl/internal/model"

// JSONArtist is an artist object as returned by the Spotify Web API.
type JSONArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

// JSONSearch is the body of GET /search?type=artist.
type JSONSearch struct {
	Artists *JSONArtistPage `json:"artists"`
}

// JSONArtistPage is a paging object of artists.
type JSONArtistPage struct {
	Items []*JSONArtist `json:"items"`
}

// JSONRelatedArtists is the body of GET /artists/{id}/related-artists.
type JSONRelatedArtists struct {
	Artists []*JSONArtist `json:"artists"`
}

// ToArtist converts JSONArtist to a model.Artist.
func (ja *JSONArtist) ToArtist() model.Artist {
	return model.Artist{
		ID:         ja.ID,
		Name:       ja.Name,
		Genres:     ja.Genres,
		Popularity: ja.Popularity,
	}
}

// ToArtists converts a list of artists, skipping null entries and entries
// without an id.
func ToArtists(items []*JSONArtist) []model.Artist {
	artists := make([]model.Artist, 0, len(items))
	for _, ja := range items {
		if ja == nil || ja.ID == "" {
			continue
		}
		artists = append(artists, ja.ToArtist())
	}
	return artists
}
