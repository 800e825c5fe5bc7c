// internal/circulation/domain.go
package circulation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt summarizes a processed return for the caller.
type Receipt struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	ItemID        string          `json:"item_id"`
	DaysLate      int             `json:"days_late"`
	Fee           decimal.Decimal `json:"fee"`
	Balance       decimal.Decimal `json:"balance"`
}

// LateFeeChargedEvent is recorded when a borrow transaction closes.
type LateFeeChargedEvent struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	ItemID        string          `json:"item_id"`
	DaysLate      int             `json:"days_late"`
	Fee           decimal.Decimal `json:"fee"`
}
