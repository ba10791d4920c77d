// Package model defines the core data structures used throughout
// timecrawl.
//
// # Artist
//
// Artist is a catalog artist together with the tracks fetched for it during a
// crawl cycle:
//
//	artist := model.Artist{ID: "4Z8W4fKeB5YxbusRsdQVPb", Name: "Radiohead"}
//	artist.Tracks = topTracks
//
// # Track and Album
//
// Track carries the album it was released on. The album's release date is a
// string whose meaning depends on its Precision:
//
//	album := model.Album{ReleaseDate: "2015-03", Precision: model.PrecisionMonth}
//	t, err := model.ReleaseTime(album) // 2015-03-01 00:00:00 UTC
//
// # Release times
//
// ReleaseTime truncates a release date to its stated precision. LatestRelease
// returns the most recent release time of an artist, or SentinelRelease for an
// artist without tracks so that such artists always rank last.
package model
