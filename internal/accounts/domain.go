// internal/accounts/domain.go
package accounts

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds is returned by TryDeduct when the balance cannot
// cover the requested amount. Deduct never returns it; it clamps instead.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Identifiable is anything that can report a stable unique key.
type Identifiable interface {
	ID() string
}

// Borrower is the account view the circulation service works against.
// Role facets (Student, Staff, TeachingAssistant) all satisfy it by
// delegating to their shared Account.
type Borrower interface {
	Identifiable
	Name() string
	Email() string
	Balance() decimal.Decimal
	AddFunds(amount decimal.Decimal)
	Deduct(amount decimal.Decimal)
	TryDeduct(amount decimal.Decimal) error
}

// Account is the single identity and balance record behind a borrower.
// Every role facet attached to a person shares one Account; there is
// never a second copy of the identity or the balance.
type Account struct {
	id      string
	name    string
	email   string
	balance decimal.Decimal
}

// NewAccount creates an account. An empty id gets a generated UUID; a
// negative opening balance is treated as zero.
func NewAccount(id, name, email string, openingBalance decimal.Decimal) *Account {
	if id == "" {
		id = uuid.NewString()
	}
	if openingBalance.IsNegative() {
		openingBalance = decimal.Zero
	}
	return &Account{
		id:      id,
		name:    name,
		email:   email,
		balance: openingBalance,
	}
}

func (a *Account) ID() string               { return a.id }
func (a *Account) Name() string             { return a.name }
func (a *Account) Email() string            { return a.email }
func (a *Account) Balance() decimal.Decimal { return a.balance }

// AddFunds increases the balance by amount. Non-positive amounts are
// ignored; the operation never fails.
func (a *Account) AddFunds(amount decimal.Decimal) {
	if amount.IsPositive() {
		a.balance = a.balance.Add(amount)
	}
}

// Deduct decreases the balance by amount and clamps the result at zero.
// Insufficient funds are absorbed silently, never reported.
func (a *Account) Deduct(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
	if a.balance.IsNegative() {
		a.balance = decimal.Zero
	}
}

// TryDeduct is the strict variant of Deduct: it refuses to overdraw and
// leaves the balance untouched when funds are insufficient.
func (a *Account) TryDeduct(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("deduct %s from balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) String() string {
	return fmt.Sprintf("%s (%s) | Email: %s | Balance: %s", a.name, a.id, a.email, a.balance)
}
