package networth

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strings"
	"time"
)

// DocumentKey is the default backend key under which the document lives.
const DocumentKey = "networth.json"

// Store owns the document and the active-snapshot pointer. All mutations go
// through it; every mutation persists the whole document through the
// backend before it is observable, so a failed persist leaves the prior
// state untouched.
//
// The store assumes a single synchronous caller.
type Store struct {
	backend Backend
	key     string
	doc     Document
	active  string // id of the active snapshot, "" for none
}

// Open loads the document from the backend. An absent or unparsable payload
// starts an empty document rather than failing; the active snapshot is the
// first one in storage order, or none for an empty document.
func Open(backend Backend, key string) (*Store, error) {
	s := &Store{backend: backend, key: key}

	payload, err := backend.Get(key)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run.
	case err != nil:
		return nil, fmt.Errorf("cannot read document %q: %w", key, err)
	default:
		doc, derr := DecodeDocument(bytes.NewReader(payload))
		if derr != nil {
			log.Printf("warning: cannot parse stored document %q, starting empty: %v", key, derr)
		} else {
			s.doc = doc
		}
	}

	if len(s.doc.Snapshots) > 0 {
		s.active = s.doc.Snapshots[0].ID
	}
	return s, nil
}

// commit persists the candidate document and, only on success, makes it the
// current state.
func (s *Store) commit(doc Document, active string) error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return fmt.Errorf("cannot encode document: %w", err)
	}
	if err := s.backend.Set(s.key, buf.Bytes()); err != nil {
		return fmt.Errorf("cannot persist document: %w", err)
	}
	s.doc, s.active = doc, active
	return nil
}

// Document returns a deep copy of the current document. Export serializes
// it verbatim; callers cannot reach the store's own state through it.
func (s *Store) Document() Document { return s.doc.Copy() }

// ActiveID returns the id of the active snapshot, "" for none.
func (s *Store) ActiveID() string {
	if _, ok := s.doc.Find(s.active); !ok {
		// A dangling pointer is the same as no active snapshot.
		return ""
	}
	return s.active
}

// Active returns a copy of the active snapshot, or false when there is none.
func (s *Store) Active() (Snapshot, bool) {
	snap, ok := s.doc.Find(s.active)
	if !ok {
		return Snapshot{}, false
	}
	return snap.Copy(), true
}

// CreateSnapshot creates an empty snapshot with this label, makes it active
// and persists. The trimmed label must be non-empty.
func (s *Store) CreateSnapshot(label string) (Snapshot, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Snapshot{}, &ValidationError{Reason: "snapshot label cannot be empty"}
	}

	snap := Snapshot{
		ID:        s.uniqueID(),
		Label:     label,
		CreatedAt: time.Now(),
	}
	doc := s.doc.Copy()
	doc.Snapshots = append(doc.Snapshots, snap)
	if err := s.commit(doc, snap.ID); err != nil {
		return Snapshot{}, err
	}
	return snap.Copy(), nil
}

// DuplicateSnapshot deep-copies the source snapshot under the label
// "<source label> (Copy)" with a fresh id and timestamp, makes the copy
// active and persists.
func (s *Store) DuplicateSnapshot(sourceID string) (Snapshot, error) {
	source, ok := s.doc.Find(sourceID)
	if !ok {
		return Snapshot{}, &NotFoundError{Ref: fmt.Sprintf("snapshot %q", sourceID)}
	}

	snap := Snapshot{
		ID:        s.uniqueID(),
		Label:     source.Label + " (Copy)",
		CreatedAt: time.Now(),
		Data:      source.Data.Copy(),
	}
	doc := s.doc.Copy()
	doc.Snapshots = append(doc.Snapshots, snap)
	if err := s.commit(doc, snap.ID); err != nil {
		return Snapshot{}, err
	}
	return snap.Copy(), nil
}

// RenameSnapshot replaces the snapshot label in place and persists. The
// trimmed label must be non-empty.
func (s *Store) RenameSnapshot(id, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return &ValidationError{Reason: "snapshot label cannot be empty"}
	}
	i := s.doc.index(id)
	if i < 0 {
		return &NotFoundError{Ref: fmt.Sprintf("snapshot %q", id)}
	}
	doc := s.doc.Copy()
	doc.Snapshots[i].Label = label
	return s.commit(doc, s.active)
}

// DeleteSnapshot removes the snapshot and persists. Deleting the active
// snapshot reassigns the pointer to the first remaining snapshot in storage
// order; deleting the last snapshot clears it.
func (s *Store) DeleteSnapshot(id string) error {
	i := s.doc.index(id)
	if i < 0 {
		return &NotFoundError{Ref: fmt.Sprintf("snapshot %q", id)}
	}
	doc := s.doc.Copy()
	doc.Snapshots = append(doc.Snapshots[:i], doc.Snapshots[i+1:]...)

	active := s.active
	if active == id {
		active = ""
		if len(doc.Snapshots) > 0 {
			active = doc.Snapshots[0].ID
		}
	}
	return s.commit(doc, active)
}

// SwitchActive points the store at another snapshot. An unknown id is a
// caller error, never a silent no-op. The pointer is process state, not part
// of the document, so switching does not persist.
func (s *Store) SwitchActive(id string) error {
	if _, ok := s.doc.Find(id); !ok {
		return &NotFoundError{Ref: fmt.Sprintf("snapshot %q", id)}
	}
	s.active = id
	return nil
}

// activeIndex returns the storage position of the active snapshot, or
// ErrNoActiveSnapshot.
func (s *Store) activeIndex() (int, error) {
	i := s.doc.index(s.active)
	if i < 0 {
		return 0, ErrNoActiveSnapshot
	}
	return i, nil
}

// AddItem validates the item, appends it to the matching list of the active
// snapshot and persists. It returns the item as stored.
func (s *Store) AddItem(item Item) (Item, error) {
	ai, err := s.activeIndex()
	if err != nil {
		return nil, err
	}
	normalized, err := item.normalize()
	if err != nil {
		return nil, err
	}

	doc := s.doc.Copy()
	data := &doc.Snapshots[ai].Data
	switch v := normalized.(type) {
	case Asset:
		data.Assets = append(data.Assets, v)
	case Liability:
		data.Liabilities = append(data.Liabilities, v)
	case Income:
		data.Incomes = append(data.Incomes, v)
	case Expense:
		data.Expenses = append(data.Expenses, v)
	}
	if err := s.commit(doc, s.active); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Patch carries an optional new value for a string field. The zero value
// leaves the field unchanged; SetField("") explicitly clears it. This keeps
// "clear" and "leave unchanged" impossible to confuse.
type Patch struct {
	set   bool
	value string
}

// SetField returns a patch that replaces the field with v.
func SetField(v string) Patch { return Patch{set: true, value: v} }

// Apply returns the patched value.
func (p Patch) Apply(old string) string {
	if p.set {
		return p.value
	}
	return old
}

// AmountPatch carries an optional new amount. The zero value leaves the
// amount unchanged.
type AmountPatch struct {
	set   bool
	value float64
}

// SetAmount returns a patch that replaces the amount with v.
func SetAmount(v float64) AmountPatch { return AmountPatch{set: true, value: v} }

// ItemPatch is a partial update of one item. Patches for fields the item
// kind does not carry are ignored.
type ItemPatch struct {
	Name      Patch
	Amount    AmountPatch
	Category  Patch
	Term      Patch
	Liquidity Patch
}

// UpdateItem applies the patch to the item at index in the given list of
// the active snapshot, re-validates and persists. It returns the item as
// stored.
func (s *Store) UpdateItem(kind Kind, index int, patch ItemPatch) (Item, error) {
	ai, err := s.activeIndex()
	if err != nil {
		return nil, err
	}

	doc := s.doc.Copy()
	data := &doc.Snapshots[ai].Data

	var item Item
	switch kind {
	case Assets:
		if index < 0 || index >= len(data.Assets) {
			return nil, s.itemNotFound(kind, index)
		}
		a := data.Assets[index]
		a.Name = patch.Name.Apply(a.Name)
		if patch.Amount.set {
			a.Amount = patch.Amount.value
		}
		a.Category = AssetCategory(patch.Category.Apply(string(a.Category)))
		a.Liquidity = Liquidity(patch.Liquidity.Apply(string(a.Liquidity)))
		item = a
	case Liabilities:
		if index < 0 || index >= len(data.Liabilities) {
			return nil, s.itemNotFound(kind, index)
		}
		l := data.Liabilities[index]
		l.Name = patch.Name.Apply(l.Name)
		if patch.Amount.set {
			l.Amount = patch.Amount.value
		}
		l.Term = Term(patch.Term.Apply(string(l.Term)))
		item = l
	case Incomes:
		if index < 0 || index >= len(data.Incomes) {
			return nil, s.itemNotFound(kind, index)
		}
		i := data.Incomes[index]
		i.Name = patch.Name.Apply(i.Name)
		if patch.Amount.set {
			i.Amount = patch.Amount.value
		}
		i.Category = IncomeCategory(patch.Category.Apply(string(i.Category)))
		item = i
	case Expenses:
		if index < 0 || index >= len(data.Expenses) {
			return nil, s.itemNotFound(kind, index)
		}
		e := data.Expenses[index]
		e.Name = patch.Name.Apply(e.Name)
		if patch.Amount.set {
			e.Amount = patch.Amount.value
		}
		e.Category = ExpenseCategory(patch.Category.Apply(string(e.Category)))
		item = e
	default:
		return nil, fmt.Errorf("unknown item kind: %q", kind)
	}

	normalized, err := item.normalize()
	if err != nil {
		return nil, err
	}
	switch v := normalized.(type) {
	case Asset:
		data.Assets[index] = v
	case Liability:
		data.Liabilities[index] = v
	case Income:
		data.Incomes[index] = v
	case Expense:
		data.Expenses[index] = v
	}
	if err := s.commit(doc, s.active); err != nil {
		return nil, err
	}
	return normalized, nil
}

// DeleteItem removes the item at index from the given list of the active
// snapshot and persists. Items after it shift down by one: there is no
// stable item identity across deletes, callers must refetch indices after
// any mutation.
func (s *Store) DeleteItem(kind Kind, index int) error {
	ai, err := s.activeIndex()
	if err != nil {
		return err
	}

	doc := s.doc.Copy()
	data := &doc.Snapshots[ai].Data
	switch kind {
	case Assets:
		if index < 0 || index >= len(data.Assets) {
			return s.itemNotFound(kind, index)
		}
		data.Assets = append(data.Assets[:index], data.Assets[index+1:]...)
	case Liabilities:
		if index < 0 || index >= len(data.Liabilities) {
			return s.itemNotFound(kind, index)
		}
		data.Liabilities = append(data.Liabilities[:index], data.Liabilities[index+1:]...)
	case Incomes:
		if index < 0 || index >= len(data.Incomes) {
			return s.itemNotFound(kind, index)
		}
		data.Incomes = append(data.Incomes[:index], data.Incomes[index+1:]...)
	case Expenses:
		if index < 0 || index >= len(data.Expenses) {
			return s.itemNotFound(kind, index)
		}
		data.Expenses = append(data.Expenses[:index], data.Expenses[index+1:]...)
	default:
		return fmt.Errorf("unknown item kind: %q", kind)
	}
	return s.commit(doc, s.active)
}

func (s *Store) itemNotFound(kind Kind, index int) error {
	return &NotFoundError{Ref: fmt.Sprintf("%s item %d", kind, index)}
}

// Import replaces the whole document with the validated payload, sets the
// active snapshot to the first one (none when empty) and persists. A
// structural violation rejects the import atomically; the prior document is
// retained.
func (s *Store) Import(r io.Reader) error {
	doc, err := ImportDocument(r)
	if err != nil {
		return err
	}
	active := ""
	if len(doc.Snapshots) > 0 {
		active = doc.Snapshots[0].ID
	}
	return s.commit(doc, active)
}

// Export writes the full current document, verbatim, in the import/export
// format.
func (s *Store) Export(w io.Writer) error {
	return EncodeDocument(w, s.doc)
}

// uniqueID returns a fresh id that no snapshot of the document carries.
func (s *Store) uniqueID() string {
	for {
		id := newID(time.Now())
		if _, ok := s.doc.Find(id); !ok {
			return id
		}
	}
}
