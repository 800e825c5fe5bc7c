// internal/accounts/directory.go
package accounts

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound    = errors.New("account not found")
	ErrDuplicateID = errors.New("account id already registered")
)

// Directory is an in-memory borrower registry keyed by account ID.
type Directory struct {
	mu    sync.RWMutex
	byID  map[string]Borrower
	order []string
}

func NewDirectory() *Directory {
	return &Directory{
		byID: make(map[string]Borrower),
	}
}

// Register adds a borrower; the account ID must be unused.
func (d *Directory) Register(b Borrower) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.byID[b.ID()]; exists {
		return fmt.Errorf("register %s: %w", b.ID(), ErrDuplicateID)
	}
	d.byID[b.ID()] = b
	d.order = append(d.order, b.ID())
	return nil
}

// Lookup returns the borrower registered under id.
func (d *Directory) Lookup(id string) (Borrower, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	b, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("lookup %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// All returns the registered borrowers in registration order.
func (d *Directory) All() []Borrower {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Borrower, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}
