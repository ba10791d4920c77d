package model

import "time"

// Artist represents a catalog artist.
//
// Tracks and RelatedIDs are filled in while crawling and are not persisted.
type Artist struct {
	// ID is the catalog artist id and the artist's identity.
	ID string

	// Name is the display name.
	Name string

	// Genres lists the catalog genres, if any.
	Genres []string

	// Popularity is the catalog popularity score (0-100).
	Popularity int

	// RelatedIDs holds the ids returned by the last related-artist lookup.
	RelatedIDs []string

	// Tracks holds the artist's top tracks.
	Tracks []Track
}

// LatestRelease returns the most recent release time across the artist's
// tracks. An artist without tracks gets SentinelRelease.
//
// The first track whose release date cannot be resolved aborts the
// computation with that error.
func LatestRelease(a Artist) (time.Time, error) {
	if len(a.Tracks) == 0 {
		return SentinelRelease, nil
	}

	var latest time.Time
	for i, t := range a.Tracks {
		rt, err := ReleaseTime(t.Album)
		if err != nil {
			return time.Time{}, err
		}
		if i == 0 || rt.After(latest) {
			latest = rt
		}
	}
	return latest, nil
}
