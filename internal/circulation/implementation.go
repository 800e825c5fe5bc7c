// internal/circulation/implementation.go
package circulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"librafine/internal/accounts"
	"librafine/internal/catalog"
	"librafine/pkg/ledger"
)

// service implements the Service interface.
type service struct {
	directory *accounts.Directory
	inventory *catalog.Inventory
	journal   *ledger.Journal
}

// NewService creates a new circulation service instance.
func NewService(directory *accounts.Directory, inventory *catalog.Inventory, journal *ledger.Journal) Service {
	return &service{
		directory: directory,
		inventory: inventory,
		journal:   journal,
	}
}

// ProcessReturn resolves the borrower and item, runs the borrow
// transaction and records the charge in the journal.
func (s *service) ProcessReturn(ctx context.Context, borrowerID, itemID string, daysLate int) (*Receipt, error) {
	borrower, err := s.directory.Lookup(borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve borrower: %w", err)
	}

	item, err := s.inventory.Get(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item: %w", err)
	}

	tx := NewBorrowTransaction(borrower, item, daysLate)
	fee, err := tx.Process()
	if err != nil {
		return nil, fmt.Errorf("failed to process transaction: %w", err)
	}

	transactionID := uuid.New()
	eventData := LateFeeChargedEvent{
		TransactionID: transactionID,
		UserID:        borrower.ID(),
		ItemID:        item.ID(),
		DaysLate:      tx.DaysLate(),
		Fee:           fee,
	}

	payload, err := ledger.MarshalPayload(eventData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}

	event := ledger.Event{
		EventType: "LateFeeCharged",
		EventData: payload,
	}
	if err := s.journal.Append(ctx, transactionID, "borrow_transaction", 0, []ledger.Event{event}); err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return &Receipt{
		TransactionID: transactionID,
		UserID:        borrower.ID(),
		ItemID:        item.ID(),
		DaysLate:      tx.DaysLate(),
		Fee:           fee,
		Balance:       borrower.Balance(),
	}, nil
}
