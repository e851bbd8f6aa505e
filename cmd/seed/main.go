package main

import (
	"context"
	"log"

	"walletledger/internal/config"
	"walletledger/internal/models"
	"walletledger/internal/repositories"
	"walletledger/internal/services/wallet"

	"github.com/google/uuid"
)

// Seeds a standard and a merchant demo account and runs a couple of
// balance updates against them so a fresh database has audit history
// to look at.
func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	lockTimeout := config.GetDurationEnv("LOCK_TIMEOUT", repositories.DefaultLockTimeout)
	repo := repositories.NewLedgerRepository(repositories.DB, lockTimeout)
	svc := wallet.NewService(repo, repositories.CacheService, wallet.Config{}, nil)

	ctx := wallet.WithActor(context.Background(), "seed")

	demo, err := svc.CreateAccount(ctx, "Demo Customer", models.AccountTypeStandard)
	if err != nil {
		log.Fatalf("failed to create demo account: %v", err)
	}
	log.Printf("created %s account %s (%q)", demo.AccountType, demo.ID, demo.Name)

	merchant, err := svc.CreateAccount(ctx, "Demo Merchant", models.AccountTypeMerchant)
	if err != nil {
		log.Fatalf("failed to create merchant account: %v", err)
	}
	log.Printf("created %s account %s (%q)", merchant.AccountType, merchant.ID, merchant.Name)

	if _, err := svc.UpdateBalance(ctx, demo.ID, 10000, models.OperationCredit, uuid.Nil); err != nil {
		log.Fatalf("failed to credit demo account: %v", err)
	}
	if _, err := svc.UpdateBalance(ctx, demo.ID, -2500, models.OperationDebit, uuid.Nil); err != nil {
		log.Fatalf("failed to debit demo account: %v", err)
	}

	result, err := svc.GetBalance(ctx, demo.ID)
	if err != nil {
		log.Fatalf("failed to read demo balance: %v", err)
	}
	log.Printf("demo account balance: %d cents", result.Balance)

	log.Println("seed complete")
}
