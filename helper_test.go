package networth

import "testing"

// test helpers to build items and stores from consts.

func asset(name string, amount float64, cat AssetCategory, liq Liquidity) Asset {
	return Asset{Name: name, Amount: amount, Category: cat, Liquidity: liq}
}

func liability(name string, amount float64, term Term) Liability {
	return Liability{Name: name, Amount: amount, Term: term}
}

func income(name string, amount float64, cat IncomeCategory) Income {
	return Income{Name: name, Amount: amount, Category: cat}
}

func expense(name string, amount float64, cat ExpenseCategory) Expense {
	return Expense{Name: name, Amount: amount, Category: cat}
}

// newTestStore opens a store over a fresh in-memory backend.
func newTestStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	s, err := Open(backend, DocumentKey)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, backend
}

// newActiveStore opens a store with one active snapshot labeled "Current".
func newActiveStore(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	if _, err := s.CreateSnapshot("Current"); err != nil {
		t.Fatalf("CreateSnapshot() error = %v", err)
	}
	return s
}
