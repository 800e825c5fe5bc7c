// internal/catalog/inventory.go
package catalog

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound    = errors.New("item not found")
	ErrDuplicateID = errors.New("item id already registered")
)

// Inventory is an in-memory item registry keyed by item ID.
type Inventory struct {
	mu    sync.RWMutex
	byID  map[string]*Item
	order []string
}

func NewInventory() *Inventory {
	return &Inventory{
		byID: make(map[string]*Item),
	}
}

// Add registers an item; the item ID must be unused.
func (inv *Inventory) Add(item *Item) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.byID[item.ID()]; exists {
		return fmt.Errorf("add %s: %w", item.ID(), ErrDuplicateID)
	}
	inv.byID[item.ID()] = item
	inv.order = append(inv.order, item.ID())
	return nil
}

// Get returns the item registered under id.
func (inv *Inventory) Get(id string) (*Item, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	item, ok := inv.byID[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return item, nil
}

// All returns the registered items in registration order.
func (inv *Inventory) All() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]*Item, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.byID[id])
	}
	return out
}
