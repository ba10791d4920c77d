// Package playlist renders discovered tracks as playlist files.
//
// Four formats are supported:
//   - M3U: plain list of track URIs, optionally with #EXTINF lines
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
//
// Entries are catalog track URIs (for example "spotify:track:..."), so the
// playlists are meant for players that resolve those URIs.
//
// # Usage
//
//	creator := playlist.NewCreator(playlist.FormatM3U, true)
//	content := creator.Create("Daft Punk 2001", result.Tracks)
//
//	name := playlist.FileName("{artist} {year}", "Daft Punk", 2001, playlist.FormatM3U.Ext())
//	err := creator.Write(filepath.Join(dir, name), "Daft Punk 2001", result.Tracks)
package playlist
