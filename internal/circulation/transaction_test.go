// internal/circulation/transaction_test.go
package circulation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"librafine/internal/accounts"
	"librafine/internal/catalog"
)

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func newStudent(balance float64) *accounts.Student {
	return accounts.NewStudent(
		accounts.NewAccount("S100", "Amina", "amina@uni.edu", decimal.NewFromFloat(balance)),
		2, decimal.NewFromFloat(0.8),
	)
}

func newStaff(balance float64) *accounts.Staff {
	return accounts.NewStaff(
		accounts.NewAccount("ST200", "Omar", "omar@uni.edu", decimal.NewFromFloat(balance)),
		true,
	)
}

func TestProcessScenarios(t *testing.T) {
	t.Run("non-student pays the full book fee", func(t *testing.T) {
		borrower := newStaff(20)
		tx := NewBorrowTransaction(borrower, catalog.NewBook("B001", "Effective Go"), 5)

		fee, err := tx.Process()
		require.NoError(t, err)
		requireDecimal(t, "5", fee)
		requireDecimal(t, "15", borrower.Balance())
	})

	t.Run("student discount applies to the book fee", func(t *testing.T) {
		borrower := newStudent(50)
		tx := NewBorrowTransaction(borrower, catalog.NewBook("B001", "Effective Go"), 5)

		fee, err := tx.Process()
		require.NoError(t, err)
		requireDecimal(t, "4", fee)
		requireDecimal(t, "46", borrower.Balance())
	})

	t.Run("fee beyond the balance clamps it to zero", func(t *testing.T) {
		borrower := newStaff(3)
		tx := NewBorrowTransaction(borrower, catalog.NewMagazine("M010", "Tech Monthly"), 10)

		fee, err := tx.Process()
		require.NoError(t, err)
		requireDecimal(t, "5", fee)
		requireDecimal(t, "0", borrower.Balance())
	})

	t.Run("composite borrower gets the student discount", func(t *testing.T) {
		borrower := accounts.NewTeachingAssistant(
			accounts.NewAccount("TA300", "Lina", "lina@uni.edu", decimal.NewFromFloat(60)),
			2, decimal.NewFromFloat(0.85), true,
		)
		tx := NewBorrowTransaction(borrower, catalog.NewDVD("D100", "Go Patterns"), 3)

		fee, err := tx.Process()
		require.NoError(t, err)
		requireDecimal(t, "5.1", fee)
		requireDecimal(t, "54.9", borrower.Balance())
	})
}

func TestProcessIsIdempotent(t *testing.T) {
	borrower := newStudent(50)
	tx := NewBorrowTransaction(borrower, catalog.NewBook("B001", "Effective Go"), 5)

	first, err := tx.Process()
	require.NoError(t, err)
	second, err := tx.Process()
	require.NoError(t, err)

	require.True(t, first.Equal(second), "fees differ: %s vs %s", first, second)
	// Deducted exactly once.
	requireDecimal(t, "46", borrower.Balance())
}

func TestProcessIsIdempotentForAnyInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		balance := rapid.Float64Range(0, 1000).Draw(rt, "balance")
		daysLate := rapid.IntRange(0, 365).Draw(rt, "daysLate")
		calls := rapid.IntRange(2, 6).Draw(rt, "calls")

		borrower := newStudent(balance)
		tx := NewBorrowTransaction(borrower, catalog.NewDVD("D100", "Go Patterns"), daysLate)

		first, _ := tx.Process()
		after := borrower.Balance()

		for i := 1; i < calls; i++ {
			fee, _ := tx.Process()
			if !fee.Equal(first) {
				rt.Fatalf("call %d returned %s, first returned %s", i+1, fee, first)
			}
			if !borrower.Balance().Equal(after) {
				rt.Fatalf("call %d deducted again: balance %s, expected %s", i+1, borrower.Balance(), after)
			}
		}
	})
}

func TestTransactionLifecycle(t *testing.T) {
	borrower := newStudent(50)
	item := catalog.NewBook("B001", "Effective Go")
	tx := NewBorrowTransaction(borrower, item, 5)

	assert.True(t, tx.IsOpen())
	assert.Equal(t, StateOpen, tx.State())
	requireDecimal(t, "0", tx.LateFeeCost())
	assert.Equal(t, "S100", tx.UserID())
	assert.Equal(t, "B001", tx.ItemID())
	assert.Equal(t, 5, tx.DaysLate())

	_, err := tx.Process()
	require.NoError(t, err)

	assert.False(t, tx.IsOpen())
	assert.Equal(t, StateClosed, tx.State())
	requireDecimal(t, "4", tx.LateFeeCost())

	// Closed stays closed.
	_, err = tx.Process()
	require.NoError(t, err)
	assert.False(t, tx.IsOpen())
}

func TestNegativeDaysLateClampsToZero(t *testing.T) {
	borrower := newStaff(20)
	tx := NewBorrowTransaction(borrower, catalog.NewBook("B001", "Effective Go"), -3)

	assert.Equal(t, 0, tx.DaysLate())

	fee, err := tx.Process()
	require.NoError(t, err)
	requireDecimal(t, "0", fee)
	requireDecimal(t, "20", borrower.Balance())
}

func TestStrictMode(t *testing.T) {
	t.Run("insufficient funds leaves the transaction open", func(t *testing.T) {
		borrower := newStaff(3)
		tx := NewBorrowTransaction(borrower, catalog.NewMagazine("M010", "Tech Monthly"), 10, WithStrictErrors())

		_, err := tx.Process()
		require.ErrorIs(t, err, accounts.ErrInsufficientFunds)
		assert.True(t, tx.IsOpen())
		requireDecimal(t, "3", borrower.Balance())
	})

	t.Run("reprocessing reports the closed state and keeps the fee", func(t *testing.T) {
		borrower := newStudent(50)
		tx := NewBorrowTransaction(borrower, catalog.NewBook("B001", "Effective Go"), 5, WithStrictErrors())

		first, err := tx.Process()
		require.NoError(t, err)
		requireDecimal(t, "4", first)

		second, err := tx.Process()
		require.ErrorIs(t, err, ErrTransactionClosed)
		require.True(t, second.Equal(first))
		requireDecimal(t, "46", borrower.Balance())
	})
}
