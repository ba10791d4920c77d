package model

import (
	"fmt"
	"time"
)

// Precision qualifies how much of an album's release date is known.
type Precision string

const (
	// PrecisionYear means only the year is known ("2015").
	PrecisionYear Precision = "year"

	// PrecisionMonth means year and month are known ("2015-03").
	PrecisionMonth Precision = "month"

	// PrecisionDay means the full date is known ("2015-03-27").
	PrecisionDay Precision = "day"
)

// Album represents the album a track was released on.
//
// Only the fields needed to place a track in time are kept. ReleaseDate is
// stored exactly as the catalog returned it; use ReleaseTime to turn it into a
// comparable time.Time.
type Album struct {
	// ID is the catalog album id.
	ID string

	// Name is the album title.
	Name string

	// ReleaseDate is the raw release date, e.g. "2015", "2015-03" or "2015-03-27".
	ReleaseDate string

	// Precision states which layout ReleaseDate follows.
	Precision Precision
}

// UnknownPrecisionError is returned by ReleaseTime when an album carries a
// precision marker other than year, month or day.
type UnknownPrecisionError struct {
	Precision Precision
}

func (e *UnknownPrecisionError) Error() string {
	return fmt.Sprintf("unknown release date precision %q", string(e.Precision))
}

// SentinelRelease is the representative time of an artist with no tracks.
// It is earlier than any real release so such artists sort last.
var SentinelRelease = time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ReleaseTime converts an album's release date into a point in time truncated
// to the album's precision:
//   - year: January 1st of that year
//   - month: the first day of that month
//   - day: the exact date
//
// All times are UTC. Returns *UnknownPrecisionError for any other precision,
// and a parse error if the date does not match the layout of its precision.
//
// Example:
//
//	t, err := ReleaseTime(Album{ReleaseDate: "1997-05-21", Precision: PrecisionDay})
//	// t = 1997-05-21 00:00:00 UTC
func ReleaseTime(a Album) (time.Time, error) {
	var layout string
	switch a.Precision {
	case PrecisionYear:
		layout = "2006"
	case PrecisionMonth:
		layout = "2006-01"
	case PrecisionDay:
		layout = "2006-01-02"
	default:
		return time.Time{}, &UnknownPrecisionError{Precision: a.Precision}
	}

	t, err := time.ParseInLocation(layout, a.ReleaseDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse release date %q (%s): %w", a.ReleaseDate, a.Precision, err)
	}
	return t, nil
}

// ReleaseYear is a shortcut for ReleaseTime(a).Year().
func ReleaseYear(a Album) (int, error) {
	t, err := ReleaseTime(a)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}
