// internal/circulation/service.go
package circulation

import (
	"context"
)

// Service defines the interface for the circulation service.
type Service interface {
	ProcessReturn(ctx context.Context, borrowerID, itemID string, daysLate int) (*Receipt, error)
}
