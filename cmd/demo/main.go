// cmd/demo/main.go
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"librafine/internal/accounts"
	"librafine/internal/catalog"
	"librafine/internal/circulation"
	"librafine/pkg/ledger"
)

func main() {
	directory := accounts.NewDirectory()
	inventory := catalog.NewInventory()
	journal := ledger.NewJournal()
	svc := circulation.NewService(directory, inventory, journal)

	student := accounts.NewStudent(
		accounts.NewAccount("S100", "Amina", "amina@uni.edu", decimal.NewFromFloat(50.0)),
		2, decimal.NewFromFloat(0.8),
	)
	staff := accounts.NewStaff(
		accounts.NewAccount("ST200", "Omar", "omar@uni.edu", decimal.NewFromFloat(75.0)),
		true,
	)
	assistant := accounts.NewTeachingAssistant(
		accounts.NewAccount("TA300", "Lina", "lina@uni.edu", decimal.NewFromFloat(60.0)),
		2, decimal.NewFromFloat(0.85), true,
	)

	for _, b := range []accounts.Borrower{student, staff, assistant} {
		if err := directory.Register(b); err != nil {
			log.Fatalf("Failed to register borrower: %v", err)
		}
	}

	fmt.Println("=== Users ===")
	for _, b := range directory.All() {
		fmt.Println(accounts.Describe(b))
	}

	student.AddFunds(decimal.NewFromInt(20))
	staff.AddFunds(decimal.NewFromInt(10))
	assistant.AddFunds(decimal.NewFromInt(5))

	fmt.Println("\n=== Users After Adding Funds ===")
	for _, b := range directory.All() {
		fmt.Println(accounts.Describe(b))
	}

	items := []*catalog.Item{
		catalog.NewBook("B001", "Effective Go"),
		catalog.NewMagazine("M010", "Tech Monthly"),
		catalog.NewDVD("D100", "Go Patterns"),
	}
	for _, item := range items {
		if err := inventory.Add(item); err != nil {
			log.Fatalf("Failed to add item: %v", err)
		}
	}

	fmt.Println("\n=== Library Items ===")
	for _, item := range inventory.All() {
		fmt.Printf("%s | %s | %s | fee/day: %s\n", item.ID(), item.Title(), item.TypeName(), item.LateFeePerDay())
	}

	// Amina returns a book 5 days late.
	receipt, err := svc.ProcessReturn(context.Background(), "S100", "B001", 5)
	if err != nil {
		log.Fatalf("Failed to process return: %v", err)
	}

	fmt.Println("\n=== Transaction Summary ===")
	fmt.Printf("User: %s | Item: %s\n", receipt.UserID, receipt.ItemID)
	fmt.Printf("Days late: %d | Fee charged: %s\n", receipt.DaysLate, receipt.Fee)
	fmt.Printf("Remaining balance: %s\n", receipt.Balance)
	fmt.Printf("Recorded events: %d\n", journal.Version(receipt.TransactionID))
}
