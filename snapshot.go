package networth

import (
	"crypto/rand"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

// Data holds the four item lists of a snapshot.
type Data struct {
	Assets      []Asset
	Liabilities []Liability
	Incomes     []Income
	Expenses    []Expense
}

// Copy returns a deep copy of the data. Item structs hold no references, so
// cloning the slices is enough.
func (d Data) Copy() Data {
	return Data{
		Assets:      slices.Clone(d.Assets),
		Liabilities: slices.Clone(d.Liabilities),
		Incomes:     slices.Clone(d.Incomes),
		Expenses:    slices.Clone(d.Expenses),
	}
}

// Count returns the total number of items across the four lists.
func (d Data) Count() int {
	return len(d.Assets) + len(d.Liabilities) + len(d.Incomes) + len(d.Expenses)
}

// Snapshot is one point-in-time record of a complete financial position.
type Snapshot struct {
	ID        string
	Label     string
	CreatedAt time.Time
	Data      Data
}

// Copy returns a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	s.Data = s.Data.Copy()
	return s
}

// Document is the entire persisted state: all snapshots in insertion order.
type Document struct {
	Snapshots []Snapshot
}

// Copy returns a deep copy of the document.
func (d Document) Copy() Document {
	snapshots := make([]Snapshot, 0, len(d.Snapshots))
	for _, s := range d.Snapshots {
		snapshots = append(snapshots, s.Copy())
	}
	return Document{Snapshots: snapshots}
}

// index returns the storage position of the snapshot with this id, or -1.
func (d Document) index(id string) int {
	for i, s := range d.Snapshots {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the snapshot with this id.
func (d Document) Find(id string) (Snapshot, bool) {
	if i := d.index(id); i >= 0 {
		return d.Snapshots[i], true
	}
	return Snapshot{}, false
}

// SnapshotOrder selects the display ordering of snapshots. Display order is
// derived; it never changes the storage order of the document.
type SnapshotOrder string

const (
	ByDate  SnapshotOrder = "date"
	ByLabel SnapshotOrder = "label"
)

// ParseSnapshotOrder parses a string into a SnapshotOrder.
func ParseSnapshotOrder(s string) (SnapshotOrder, error) {
	switch SnapshotOrder(s) {
	case ByDate, ByLabel:
		return SnapshotOrder(s), nil
	default:
		return "", fmt.Errorf("unknown snapshot order: %q", s)
	}
}

// Sorted returns the snapshots in display order. The sort is stable and
// operates on a copy of the list.
func (d Document) Sorted(order SnapshotOrder, dir Direction) []Snapshot {
	sorted := slices.Clone(d.Snapshots)
	less := func(a, b Snapshot) bool {
		if order == ByLabel {
			return strings.ToLower(a.Label) < strings.ToLower(b.Label)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// newID generates an opaque snapshot id: the creation date followed by a
// short random suffix. Uniqueness within the document is enforced by the
// store at creation time.
func newID(now time.Time) string {
	var b [4]byte
	rand.Read(b[:])
	return fmt.Sprintf("%s-%x", now.Format("20060102"), b)
}
