// internal/catalog/domain.go
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind enumerates the borrowable item variants. The set is closed for the
// current feature set; adding a kind means adding a constant, a
// constructor and a ComputeLateFee arm, never touching existing ones.
type Kind string

const (
	KindBook     Kind = "book"
	KindMagazine Kind = "magazine"
	KindDVD      Kind = "dvd"
)

// Default late-fee rates per day, by kind.
var (
	bookRate     = decimal.NewFromFloat(1.0)
	magazineRate = decimal.NewFromFloat(0.5)
	dvdRate      = decimal.NewFromFloat(2.0)
)

// Item is a borrowable item. Immutable once constructed.
type Item struct {
	id            string
	title         string
	kind          Kind
	lateFeePerDay decimal.Decimal
}

// NewItem creates an item with an explicit per-day rate. Prefer the
// per-kind constructors, which carry the standard rates.
func NewItem(kind Kind, id, title string, lateFeePerDay decimal.Decimal) *Item {
	if id == "" {
		id = uuid.NewString()
	}
	return &Item{
		id:            id,
		title:         title,
		kind:          kind,
		lateFeePerDay: lateFeePerDay,
	}
}

// NewBook creates a book with the standard 1.0/day late fee.
func NewBook(id, title string) *Item {
	return NewItem(KindBook, id, title, bookRate)
}

// NewMagazine creates a magazine with the standard 0.5/day late fee.
func NewMagazine(id, title string) *Item {
	return NewItem(KindMagazine, id, title, magazineRate)
}

// NewDVD creates a DVD with the standard 2.0/day late fee.
func NewDVD(id, title string) *Item {
	return NewItem(KindDVD, id, title, dvdRate)
}

func (i *Item) ID() string                     { return i.id }
func (i *Item) Title() string                  { return i.title }
func (i *Item) Kind() Kind                     { return i.kind }
func (i *Item) LateFeePerDay() decimal.Decimal { return i.lateFeePerDay }

// TypeName is the human label for the item's variant.
func (i *Item) TypeName() string {
	switch i.kind {
	case KindBook:
		return "Book"
	case KindMagazine:
		return "Magazine"
	case KindDVD:
		return "DVD"
	default:
		return string(i.kind)
	}
}

// ComputeLateFee returns the late fee for daysLate days. Every current
// kind charges linearly; a future kind with its own formula gets a
// dedicated arm here.
func (i *Item) ComputeLateFee(daysLate int) decimal.Decimal {
	if daysLate <= 0 {
		return decimal.Zero
	}
	days := decimal.NewFromInt(int64(daysLate))
	switch i.kind {
	case KindBook, KindMagazine, KindDVD:
		return days.Mul(i.lateFeePerDay)
	}
	return days.Mul(i.lateFeePerDay)
}
