// internal/circulation/transaction.go
package circulation

import (
	"errors"

	"github.com/shopspring/decimal"

	"librafine/internal/accounts"
	"librafine/internal/catalog"
)

// ErrTransactionClosed is reported by Process in strict mode when the
// transaction was already processed. The default mode never reports it.
var ErrTransactionClosed = errors.New("transaction already closed")

// State is the lifecycle state of a borrow transaction.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Option configures a BorrowTransaction.
type Option func(*BorrowTransaction)

// WithStrictErrors makes Process surface ErrInsufficientFunds instead of
// clamping the balance, and ErrTransactionClosed on reprocessing.
func WithStrictErrors() Option {
	return func(t *BorrowTransaction) { t.strict = true }
}

// BorrowTransaction charges a borrower for a late return. It closes
// exactly once, on the first Process call; the borrower and item are
// borrowed references owned by the caller.
//
// A transaction is not safe for concurrent use; the open/closed
// check-and-set is unguarded, so each instance must have a single owner.
type BorrowTransaction struct {
	borrower accounts.Borrower
	item     *catalog.Item
	daysLate int
	state    State
	fee      decimal.Decimal
	strict   bool
}

// NewBorrowTransaction creates an open transaction. Negative daysLate is
// treated as zero.
func NewBorrowTransaction(borrower accounts.Borrower, item *catalog.Item, daysLate int, opts ...Option) *BorrowTransaction {
	if daysLate < 0 {
		daysLate = 0
	}
	t := &BorrowTransaction{
		borrower: borrower,
		item:     item,
		daysLate: daysLate,
		state:    StateOpen,
		fee:      decimal.Zero,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Process computes the late fee, applies the student discount when the
// borrower carries that facet, deducts the fee from the borrower's
// balance and closes the transaction. Calling it again returns the
// stored fee without recomputing or deducting.
//
// In the default mode the returned error is always nil. In strict mode an
// insufficient balance leaves the transaction open and the balance
// untouched.
func (t *BorrowTransaction) Process() (decimal.Decimal, error) {
	if t.state == StateClosed {
		if t.strict {
			return t.fee, ErrTransactionClosed
		}
		return t.fee, nil
	}

	fee := t.item.ComputeLateFee(t.daysLate)
	if student, ok := accounts.AsStudent(t.borrower); ok {
		fee = fee.Mul(student.DiscountFactor())
	}

	if t.strict {
		if err := t.borrower.TryDeduct(fee); err != nil {
			return decimal.Zero, err
		}
	} else {
		t.borrower.Deduct(fee)
	}

	t.fee = fee
	t.state = StateClosed
	return t.fee, nil
}

func (t *BorrowTransaction) UserID() string               { return t.borrower.ID() }
func (t *BorrowTransaction) ItemID() string               { return t.item.ID() }
func (t *BorrowTransaction) DaysLate() int                { return t.daysLate }
func (t *BorrowTransaction) State() State                 { return t.state }
func (t *BorrowTransaction) IsOpen() bool                 { return t.state == StateOpen }
func (t *BorrowTransaction) LateFeeCost() decimal.Decimal { return t.fee }
