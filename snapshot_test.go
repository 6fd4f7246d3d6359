package networth

import (
	"slices"
	"testing"
	"time"
)

func TestDocument_Sorted(t *testing.T) {
	doc := Document{Snapshots: []Snapshot{
		{ID: "1", Label: "zulu", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Label: "Alpha", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Label: "mike", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}}

	labels := func(snaps []Snapshot) []string {
		out := make([]string, len(snaps))
		for i, s := range snaps {
			out[i] = s.Label
		}
		return out
	}

	t.Run("by date", func(t *testing.T) {
		got := labels(doc.Sorted(ByDate, Asc))
		want := []string{"zulu", "mike", "Alpha"}
		if !slices.Equal(got, want) {
			t.Errorf("Sorted(date, asc) = %v, want %v", got, want)
		}
	})

	t.Run("by label is case-insensitive", func(t *testing.T) {
		got := labels(doc.Sorted(ByLabel, Desc))
		want := []string{"zulu", "mike", "Alpha"}
		if !slices.Equal(got, want) {
			t.Errorf("Sorted(label, desc) = %v, want %v", got, want)
		}
	})

	t.Run("storage order is never mutated", func(t *testing.T) {
		doc.Sorted(ByLabel, Asc)
		got := labels(doc.Snapshots)
		want := []string{"zulu", "Alpha", "mike"}
		if !slices.Equal(got, want) {
			t.Errorf("storage order = %v, want %v", got, want)
		}
	})
}

func TestSnapshot_CopyIsDeep(t *testing.T) {
	s := Snapshot{ID: "a", Label: "A", Data: Data{
		Assets: []Asset{asset("Cash", 100, Cash, High)},
	}}
	c := s.Copy()
	c.Data.Assets[0].Amount = 999
	if s.Data.Assets[0].Amount != 100 {
		t.Error("Copy() shares the underlying item list")
	}
}

func TestNewID(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a, b := newID(now), newID(now)
	if a == b {
		t.Errorf("two ids collided: %q", a)
	}
	if len(a) != len("20260301-")+8 {
		t.Errorf("unexpected id shape: %q", a)
	}
}
