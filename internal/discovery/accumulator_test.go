package discovery

import (
	"testing"

	"github.com/handiism/timecrawl/internal/model"
)

func TestAccumulator_Fresh(t *testing.T) {
	acc := NewAccumulator()

	first := acc.Fresh([]model.Artist{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	if got := ids(first); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Fresh() = %v, want [a b]", got)
	}

	second := acc.Fresh([]model.Artist{{ID: "b"}, {ID: "c"}})
	if got := ids(second); len(got) != 1 || got[0] != "c" {
		t.Fatalf("Fresh() = %v, want [c]", got)
	}

	if acc.Visited() != 3 {
		t.Errorf("Visited() = %d, want 3", acc.Visited())
	}

	third := acc.Fresh([]model.Artist{{ID: "a"}, {ID: "c"}})
	if len(third) != 0 {
		t.Errorf("Fresh() = %v, want no artists on a repeat batch", ids(third))
	}
	if acc.Visited() != 3 {
		t.Errorf("Visited() = %d after repeat batch, want 3", acc.Visited())
	}
}

func TestAccumulator_AddFirstWriteWins(t *testing.T) {
	acc := NewAccumulator()

	first := track("x", 2015)
	dup := track("x", 2015)
	dup.Name = "Duplicate"

	if n := acc.Add([]model.Track{first, track("y", 2014)}); n != 2 {
		t.Errorf("Add() = %d, want 2", n)
	}
	if n := acc.Add([]model.Track{dup, track("z", 2016)}); n != 1 {
		t.Errorf("Add() = %d, want 1", n)
	}

	tracks := acc.Tracks()
	if len(tracks) != 3 {
		t.Fatalf("Tracks() returned %d, want 3", len(tracks))
	}
	if tracks[0].Name != first.Name {
		t.Errorf("Tracks()[0].Name = %q, want %q", tracks[0].Name, first.Name)
	}
	if tracks[1].ID != "y" || tracks[2].ID != "z" {
		t.Errorf("Tracks() order = %s %s, want y z", tracks[1].ID, tracks[2].ID)
	}
}

func TestAccumulator_Done(t *testing.T) {
	acc := NewAccumulator()
	if acc.Done(1) {
		t.Error("empty accumulator should not be done")
	}
	acc.Add([]model.Track{track("a", 2015), track("b", 2015)})
	if !acc.Done(2) {
		t.Error("Done(2) = false with 2 tracks")
	}
	if acc.Done(3) {
		t.Error("Done(3) = true with 2 tracks")
	}
}
