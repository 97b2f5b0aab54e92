package models_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
	"github.com/collectivehq/platform_backend/utils"
)

// Unknown reference types are rejected and balance transfers pass without a
// document lookup; both branches return before touching the database.
func TestValidateLedgerReferenceTypes(t *testing.T) {
	if err := models.ValidateLedgerReference(context.Background(), 1, 1, models.LedgerReferenceType("XX")); err == nil {
		t.Error("unknown reference type should be rejected")
	}
	if err := models.ValidateLedgerReference(context.Background(), 1, 1, models.LedgerReferenceTypeBalanceTransfer); err != nil {
		t.Errorf("balance transfer reference should pass without a document row: %v", err)
	}
}

// Regression: invoicing validation must reject an empty group set and groups
// owned by another host; settling an expense with nothing attached is a no-op;
// and a host whose owed balance nets negative after a refund must not receive
// a negative settlement invoice.
func TestSettlementInvoicingEdgeCases(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "platform_test")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	db := config.GetDB()
	if err := models.MigrateTable(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	const hostId = 2

	host := models.Collective{
		ID:             hostId,
		CollectiveType: models.CollectiveTypeOrganization,
		Name:           "Host Org",
		Slug:           "host-org",
		Currency:       "USD",
		IsHost:         utils.NewTrue(),
		IsActive:       utils.NewTrue(),
	}
	if err := db.Create(&host).Error; err != nil {
		t.Fatalf("seed host: %v", err)
	}

	ctx := utils.SetUserIdInContext(context.Background(), 1)
	ctx = utils.SetUserNameInContext(ctx, "System")
	ctx = utils.SetIsAdminInContext(ctx, true)
	ctx = utils.SetSkipTenantScopeInContext(ctx, true)

	var group string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		group, _, err = models.CreateDebtEntry(tx, models.NewTransactionPair{
			Kind:             models.TransactionKindPlatformTipDebt,
			Description:      "Platform tip",
			CollectiveId:     models.PlatformCollectiveId,
			FromCollectiveId: hostId,
			HostCollectiveId: hostId,
			Amount:           decimal.NewFromInt(100),
			Currency:         "USD",
			HostCurrency:     "USD",
		})
		return err
	})
	if err != nil {
		t.Fatalf("CreateDebtEntry: %v", err)
	}

	// an empty group set must not invoice anything
	err = db.Transaction(func(tx *gorm.DB) error {
		return models.MarkSettlementsAsInvoiced(tx, hostId, nil, 1)
	})
	if err == nil {
		t.Error("invoicing an empty group set should error")
	}

	// a group owned by another host must be rejected
	err = db.Transaction(func(tx *gorm.DB) error {
		return models.MarkSettlementsAsInvoiced(tx, hostId+1, []string{group}, 1)
	})
	if err == nil {
		t.Error("invoicing another host's group should error")
	}

	// settling an expense with nothing attached is a no-op
	err = db.Transaction(func(tx *gorm.DB) error {
		return models.MarkExpenseSettlementsAsSettled(tx, 9999)
	})
	if err != nil {
		t.Errorf("settling an expense with no settlements should be a no-op: %v", err)
	}

	expenses, err := models.CreateSettlementExpense(ctx, hostId)
	if err != nil {
		t.Fatalf("CreateSettlementExpense: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 settlement expense, got %d", len(expenses))
	}
	invoice := expenses[0]
	if !invoice.Amount.Equal(decimal.NewFromInt(100)) || invoice.Currency != "USD" {
		t.Fatalf("invoice amount = %s %s, want 100 USD", invoice.Amount, invoice.Currency)
	}
	if invoice.ExpenseType != models.ExpenseTypeSettlement || invoice.Status != models.ExpenseStatusApproved {
		t.Fatalf("invoice type/status = %s/%s", invoice.ExpenseType, invoice.Status)
	}
	assertSettlementCount(t, db, invoice.ID, models.SettlementStatusInvoiced, 1)

	// refund after invoicing appends an OWED offset; the net goes negative
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := models.RefundGroup(tx, group)
		return err
	})
	if err != nil {
		t.Fatalf("RefundGroup: %v", err)
	}
	assertHostOwes(t, hostId, "-100")

	// a negative net must stay OWED, never become an invoice
	if _, err := models.CreateSettlementExpense(ctx, hostId); err == nil {
		t.Error("invoicing a negative owed balance should error")
	}
	var negCount int64
	if err := db.Model(&models.Expense{}).Where("amount < 0").Count(&negCount).Error; err != nil {
		t.Fatal(err)
	}
	if negCount != 0 {
		t.Errorf("found %d negative-amount expenses", negCount)
	}

	// paying the invoice settles its rows
	err = db.Transaction(func(tx *gorm.DB) error {
		return models.MarkExpenseSettlementsAsSettled(tx, invoice.ID)
	})
	if err != nil {
		t.Fatalf("MarkExpenseSettlementsAsSettled: %v", err)
	}
	assertSettlementCount(t, db, invoice.ID, models.SettlementStatusSettled, 1)

	// toggling a tier must surface db errors and write an audit row
	tier := models.Tier{CollectiveId: hostId, Name: "Backer", Amount: decimal.NewFromInt(5), Currency: "USD", IsActive: utils.NewTrue()}
	if err := db.Create(&tier).Error; err != nil {
		t.Fatalf("seed tier: %v", err)
	}
	toggled, err := models.ToggleActiveTier(ctx, hostId, tier.ID, false)
	if err != nil {
		t.Fatalf("ToggleActiveTier: %v", err)
	}
	if toggled == nil {
		t.Fatal("ToggleActiveTier returned no tier and no error")
	}

	limit := 10
	conn, err := models.PaginateActivities(ctx, hostId, &limit, nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("PaginateActivities: %v", err)
	}
	if len(conn.Edges) == 0 {
		t.Error("expected at least one activity edge after toggling")
	}
}

// Regression: the backfill scan must skip debt groups that were refunded,
// otherwise it recreates an OWED row with no matching offset and the host is
// re-billed for a refunded debt.
func TestDebtBackfillSkipsRefundedGroups(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "platform_test")

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if err := models.MigrateTable(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	const hostId = 2

	newDebt := func(tx *gorm.DB) (string, error) {
		group, _, err := models.CreateDebtEntry(tx, models.NewTransactionPair{
			Kind:             models.TransactionKindPlatformTipDebt,
			Description:      "Platform tip",
			CollectiveId:     models.PlatformCollectiveId,
			FromCollectiveId: hostId,
			HostCollectiveId: hostId,
			Amount:           decimal.NewFromInt(100),
			Currency:         "USD",
			HostCurrency:     "USD",
		})
		return group, err
	}

	var refundedGroup, missingGroup string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if refundedGroup, err = newDebt(tx); err != nil {
			return err
		}
		missingGroup, err = newDebt(tx)
		return err
	})
	if err != nil {
		t.Fatalf("CreateDebtEntry: %v", err)
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := models.RefundGroup(tx, refundedGroup)
		return err
	})
	if err != nil {
		t.Fatalf("RefundGroup: %v", err)
	}

	// simulate a ledger written before settlement tracking existed: raw SQL
	// bypasses the append-only guard
	if err := db.Exec("DELETE FROM transaction_settlements").Error; err != nil {
		t.Fatalf("clear settlements: %v", err)
	}

	debts, err := models.DebtsMissingSettlements(context.Background(), db)
	if err != nil {
		t.Fatalf("DebtsMissingSettlements: %v", err)
	}
	if len(debts) != 1 {
		t.Fatalf("expected 1 missing debt, got %d", len(debts))
	}
	if debts[0].TransactionGroup != missingGroup {
		t.Fatalf("scan returned group %s, want %s", debts[0].TransactionGroup, missingGroup)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range debts {
			if err := models.CreateSettlementForDebt(tx, debts[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("backfill: %v", err)
	}

	assertHostOwes(t, hostId, "100")
	var refundedRows int64
	if err := db.Model(&models.TransactionSettlement{}).
		Where("transaction_group = ?", refundedGroup).Count(&refundedRows).Error; err != nil {
		t.Fatal(err)
	}
	if refundedRows != 0 {
		t.Errorf("refunded group got %d settlement rows recreated", refundedRows)
	}
}

func assertSettlementCount(t *testing.T, db *gorm.DB, expenseId int, status models.SettlementStatus, want int64) {
	t.Helper()
	var count int64
	if err := db.Model(&models.TransactionSettlement{}).
		Where("expense_id = ? AND status = ?", expenseId, status).
		Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != want {
		t.Fatalf("expected %d settlement rows with status %s for expense %d, got %d", want, status, expenseId, count)
	}
}
