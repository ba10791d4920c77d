package model

import "strings"

// Track represents a single catalog track.
//
// Tracks are immutable once fetched. Two tracks are the same track when their
// Key is equal.
type Track struct {
	// ID is the catalog track id.
	ID string

	// URI is the catalog URI, e.g. "spotify:track:6rqhFgbbKwnb9MLmUQDhG6".
	URI string

	// Name is the track title.
	Name string

	// ArtistIDs lists the ids of every credited artist.
	ArtistIDs []string

	// ArtistNames lists the names of every credited artist, in the same order.
	ArtistNames []string

	// Album is the album the track was released on.
	Album Album

	// Popularity is the catalog popularity score (0-100).
	Popularity int

	// DurationMs is the track length in milliseconds.
	DurationMs int
}

// Key returns the identity of the track: its URI, or its ID when no URI is set.
func (t Track) Key() string {
	if t.URI != "" {
		return t.URI
	}
	return t.ID
}

// Artists returns the credited artist names joined with ", ".
func (t Track) Artists() string {
	return strings.Join(t.ArtistNames, ", ")
}
