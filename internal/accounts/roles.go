// internal/accounts/roles.go
package accounts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StudentCapability is the facet that grants a late-fee discount. The
// borrow limit is stored but not enforced anywhere in the core.
type StudentCapability interface {
	DiscountFactor() decimal.Decimal
	MaxConcurrentBorrows() int
}

// StaffCapability is the facet that grants purchase approval.
type StaffCapability interface {
	HasPurchaseApproval() bool
}

// AsStudent reports whether the borrower carries the student facet.
func AsStudent(b Borrower) (StudentCapability, bool) {
	s, ok := b.(StudentCapability)
	return s, ok
}

// AsStaff reports whether the borrower carries the staff facet.
func AsStaff(b Borrower) (StaffCapability, bool) {
	s, ok := b.(StaffCapability)
	return s, ok
}

// Student attaches the student facet to an account.
type Student struct {
	*Account
	maxConcurrentBorrows int
	discountFactor       decimal.Decimal
}

func NewStudent(account *Account, maxConcurrentBorrows int, discountFactor decimal.Decimal) *Student {
	return &Student{
		Account:              account,
		maxConcurrentBorrows: maxConcurrentBorrows,
		discountFactor:       discountFactor,
	}
}

func (s *Student) DiscountFactor() decimal.Decimal { return s.discountFactor }
func (s *Student) MaxConcurrentBorrows() int       { return s.maxConcurrentBorrows }

// Staff attaches the staff facet to an account.
type Staff struct {
	*Account
	canApprovePurchases bool
}

func NewStaff(account *Account, canApprovePurchases bool) *Staff {
	return &Staff{
		Account:             account,
		canApprovePurchases: canApprovePurchases,
	}
}

func (s *Staff) HasPurchaseApproval() bool { return s.canApprovePurchases }

// TeachingAssistant carries both facets over one shared account. The
// single embedded *Account guarantees one identity and one balance no
// matter which facet view mutates it.
type TeachingAssistant struct {
	*Account
	maxConcurrentBorrows int
	discountFactor       decimal.Decimal
	canApprovePurchases  bool
}

func NewTeachingAssistant(account *Account, maxConcurrentBorrows int, discountFactor decimal.Decimal, canApprovePurchases bool) *TeachingAssistant {
	return &TeachingAssistant{
		Account:              account,
		maxConcurrentBorrows: maxConcurrentBorrows,
		discountFactor:       discountFactor,
		canApprovePurchases:  canApprovePurchases,
	}
}

func (t *TeachingAssistant) DiscountFactor() decimal.Decimal { return t.discountFactor }
func (t *TeachingAssistant) MaxConcurrentBorrows() int       { return t.maxConcurrentBorrows }
func (t *TeachingAssistant) HasPurchaseApproval() bool       { return t.canApprovePurchases }

// Describe renders the account line plus one line per facet the borrower
// carries. Callers never need to know the concrete type.
func Describe(b Borrower) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s) | Email: %s | Balance: %s", b.Name(), b.ID(), b.Email(), b.Balance())

	if s, ok := AsStudent(b); ok {
		fmt.Fprintf(&sb, "\n  Role: Student | MaxBorrows: %d | Discount: %s", s.MaxConcurrentBorrows(), s.DiscountFactor())
	}
	if s, ok := AsStaff(b); ok {
		approval := "No"
		if s.HasPurchaseApproval() {
			approval = "Yes"
		}
		fmt.Fprintf(&sb, "\n  Role: Staff | PurchaseApproval: %s", approval)
	}

	return sb.String()
}
