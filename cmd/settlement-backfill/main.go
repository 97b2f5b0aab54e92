// settlement-backfill recreates missing OWED settlement rows for historical
// debt entries. Every debt credit leg should carry a settlement row; this
// repairs ledgers written before settlement tracking existed.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	go run ./cmd/settlement-backfill [-dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
	"github.com/collectivehq/platform_backend/utils"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report missing settlement rows without writing")
	flag.Parse()

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	ctx := utils.SetUserIdInContext(context.Background(), 0)
	ctx = utils.SetUserNameInContext(ctx, "System")
	ctx = utils.SetSkipTenantScopeInContext(ctx, true)

	debts, err := models.DebtsMissingSettlements(ctx, db)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan:", err.Error())
		os.Exit(1)
	}
	if len(debts) == 0 {
		fmt.Println("settlement-backfill: nothing to do")
		return
	}
	fmt.Printf("settlement-backfill: %d debt entries without settlement rows\n", len(debts))

	if *dryRun {
		for _, debt := range debts {
			fmt.Printf("  host=%d group=%s kind=%s amount=%s %s\n",
				debt.HostCollectiveId, debt.TransactionGroup, debt.Kind,
				debt.AmountInHostCurrency.String(), debt.HostCurrency)
		}
		return
	}

	created := 0
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range debts {
			// CreateSettlementForDebt re-checks for an existing row, so a
			// concurrent posting cannot produce duplicates.
			if err := models.CreateSettlementForDebt(tx, debts[i]); err != nil {
				return fmt.Errorf("group %s: %w", debts[i].TransactionGroup, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "backfill:", err.Error())
		os.Exit(1)
	}
	fmt.Printf("settlement-backfill: created %d settlement rows\n", created)
}
