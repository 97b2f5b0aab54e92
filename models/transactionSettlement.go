package models

import (
	"context"
	"errors"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionSettlement tracks a debt the host owes the platform for one
// (host, transaction group, kind). Positive amount = host owes platform.
// Refunds append an offsetting row (negated amount, OWED) instead of mutating
// rows that have left OWED, keeping the table append-only like the ledger.
type TransactionSettlement struct {
	ID               int              `gorm:"primary_key" json:"id"`
	HostCollectiveId int              `gorm:"not null;index;index:idx_settlement_host_group_kind,priority:1" json:"host_collective_id"`
	TransactionGroup string           `gorm:"size:36;not null;index:idx_settlement_host_group_kind,priority:2" json:"transaction_group"`
	Kind             TransactionKind  `gorm:"size:32;not null;index:idx_settlement_host_group_kind,priority:3" json:"kind"`
	Amount           decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency         string           `gorm:"size:3;not null" json:"currency"`
	Status           SettlementStatus `gorm:"type:enum('OWED','INVOICED','SETTLED');default:'OWED';not null;index" json:"status"`
	ExpenseId        *int             `gorm:"index" json:"expense_id"`
	IsRefundOffset   *bool            `gorm:"not null;default:false" json:"is_refund_offset"`
	InvoicedAt       *time.Time       `json:"invoiced_at"`
	SettledAt        *time.Time       `json:"settled_at"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// Settlement guardrails:
// - rows are never deleted.
// - only the status transition columns may be updated; amounts are fixed at insert.

func (s *TransactionSettlement) BeforeDelete(tx *gorm.DB) error {
	return errors.New("settlements cannot be deleted")
}

func (s *TransactionSettlement) BeforeUpdate(tx *gorm.DB) error {
	allowed := map[string]bool{
		"Status":     true,
		"ExpenseId":  true,
		"InvoicedAt": true,
		"SettledAt":  true,
		"UpdatedAt":  true,
	}
	if tx == nil || tx.Statement == nil || tx.Statement.Schema == nil {
		return nil
	}
	for _, f := range tx.Statement.Schema.Fields {
		if tx.Statement.Changed(f.Name) && !allowed[f.Name] {
			return errors.New("only status transition fields may be updated on settlements")
		}
	}
	return nil
}

// CreateSettlementForDebt inserts the OWED row for a debt transaction's
// credit leg. Called by the posting worker inside its DB transaction.
func CreateSettlementForDebt(tx *gorm.DB, debt *Transaction) error {
	if debt == nil {
		return errors.New("debt transaction is required")
	}
	if debt.IsDebt == nil || !*debt.IsDebt {
		return errors.New("transaction is not a debt")
	}
	if !debt.Kind.IsDebt() {
		return errors.New("transaction kind is not a debt kind")
	}
	if debt.Type != TransactionTypeCredit {
		return errors.New("settlement must be created from the credit leg")
	}

	var count int64
	if err := tx.Model(&TransactionSettlement{}).
		Where("host_collective_id = ? AND transaction_group = ? AND kind = ? AND is_refund_offset = false",
			debt.HostCollectiveId, debt.TransactionGroup, debt.Kind).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("settlement already exists for transaction group")
	}

	settlement := TransactionSettlement{
		HostCollectiveId: debt.HostCollectiveId,
		TransactionGroup: debt.TransactionGroup,
		Kind:             debt.Kind,
		Amount:           debt.AmountInHostCurrency,
		Currency:         debt.HostCurrency,
		Status:           SettlementStatusOwed,
		IsRefundOffset:   newBool(false),
	}
	return tx.Create(&settlement).Error
}

// OffsetSettlementForRefund appends an offsetting OWED row (negated amount)
// so the next settlement invoice nets out. Rows that already left OWED are
// never touched.
func OffsetSettlementForRefund(tx *gorm.DB, hostCollectiveId int, transactionGroup string, kind TransactionKind, amount decimal.Decimal, currency string) error {
	if amount.IsZero() {
		return nil
	}

	var count int64
	if err := tx.Model(&TransactionSettlement{}).
		Where("host_collective_id = ? AND transaction_group = ? AND kind = ? AND is_refund_offset = false",
			hostCollectiveId, transactionGroup, kind).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("no settlement to offset for transaction group")
	}

	offset := TransactionSettlement{
		HostCollectiveId: hostCollectiveId,
		TransactionGroup: transactionGroup,
		Kind:             kind,
		Amount:           amount.Neg(),
		Currency:         currency,
		Status:           SettlementStatusOwed,
		IsRefundOffset:   newBool(true),
	}
	return tx.Create(&offset).Error
}

// DebtsMissingSettlements returns debt credit legs that have no settlement
// row for their (host, group, kind). Refund reversals are excluded, and so are
// originals that were refunded: recreating their OWED row without its offset
// would re-bill the host for a refunded debt.
func DebtsMissingSettlements(ctx context.Context, db *gorm.DB) ([]*Transaction, error) {
	var debts []*Transaction
	sql := `
		SELECT t.*
		FROM
		    transactions AS t
		        LEFT JOIN
		    transaction_settlements s ON s.host_collective_id = t.host_collective_id
		        AND s.transaction_group = t.transaction_group
		        AND s.kind = t.kind
		WHERE
		    t.is_debt = true
		        AND t.type = 'CREDIT'
		        AND t.is_refund = false
		        AND t.refund_transaction_group IS NULL
		        AND s.id IS NULL
		ORDER BY t.id ASC
	`
	if err := db.WithContext(ctx).Raw(sql).Scan(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// HostsWithOwedSettlements returns the hosts that currently have OWED rows
// with a non-zero net per currency.
func HostsWithOwedSettlements(ctx context.Context) ([]int, error) {
	db := config.GetDB()
	sql := `
		SELECT DISTINCT
		    host_collective_id
		FROM
		    (SELECT
		        host_collective_id, currency, SUM(amount) AS net
		    FROM
		        transaction_settlements
		    WHERE
		        status = 'OWED'
		    GROUP BY host_collective_id , currency) owed
		WHERE
		    owed.net <> 0
		ORDER BY host_collective_id
	`
	var hostIds []int
	if err := db.WithContext(ctx).Raw(sql).Scan(&hostIds).Error; err != nil {
		return nil, err
	}
	return hostIds, nil
}

type SettlementSummaryRow struct {
	Kind      TransactionKind `json:"kind"`
	Currency  string          `json:"currency"`
	TotalOwed decimal.Decimal `json:"total_owed"`
}

// HostOwedSummary sums OWED amounts per kind and currency for one host.
// Refund offsets are included, so totals are net.
func HostOwedSummary(ctx context.Context, hostCollectiveId int) ([]*SettlementSummaryRow, error) {
	var results []*SettlementSummaryRow
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&TransactionSettlement{}).
		Select("kind, currency, SUM(amount) AS total_owed").
		Where("host_collective_id = ? AND status = ?", hostCollectiveId, SettlementStatusOwed).
		Group("kind, currency").
		Order("kind, currency").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// OwedTransactionGroups lists the transaction groups a settlement invoice for
// the host should cover.
func OwedTransactionGroups(ctx context.Context, hostCollectiveId int) ([]string, error) {
	var groups []string
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&TransactionSettlement{}).
		Where("host_collective_id = ? AND status = ?", hostCollectiveId, SettlementStatusOwed).
		Distinct("transaction_group").
		Order("transaction_group").
		Pluck("transaction_group", &groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

type SettlementsConnection struct {
	Edges    []*SettlementsEdge `json:"edges"`
	PageInfo *PageInfo          `json:"pageInfo"`
}

type SettlementsEdge Edge[TransactionSettlement]

func (s TransactionSettlement) GetCursor() string {
	return s.CreatedAt.String()
}

func PaginateSettlements(ctx context.Context,
	hostCollectiveId int,
	limit *int,
	after *string,
	status *SettlementStatus,
) (*SettlementsConnection, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("host_collective_id = ?", hostCollectiveId)
	if status != nil && *status != "" {
		dbCtx.Where("status = ?", *status)
	}

	edges, pageInfo, err := FetchPageCompositeCursor[TransactionSettlement](dbCtx, *limit, after, "created_at", "<")
	if err != nil {
		return nil, err
	}
	var connection SettlementsConnection
	connection.PageInfo = pageInfo
	for _, edge := range edges {
		settlementEdge := SettlementsEdge(edge)
		connection.Edges = append(connection.Edges, &settlementEdge)
	}

	return &connection, err
}

// MarkSettlementsAsInvoiced moves the OWED rows of the given transaction
// groups to INVOICED and attaches the settlement expense. Rejects an empty
// group set, groups owned by another host, and groups with no OWED row.
func MarkSettlementsAsInvoiced(tx *gorm.DB, hostCollectiveId int, transactionGroups []string, expenseId int) error {
	if len(transactionGroups) == 0 {
		return errors.New("transaction groups are required")
	}
	if expenseId == 0 {
		return errors.New("expense id is required")
	}

	var rows []*TransactionSettlement
	if err := tx.Where("transaction_group IN ?", transactionGroups).
		Find(&rows).Error; err != nil {
		return err
	}

	owedGroups := make(map[string]bool)
	for _, row := range rows {
		if row.HostCollectiveId != hostCollectiveId {
			return errors.New("transaction group belongs to another host")
		}
		if row.Status == SettlementStatusOwed {
			owedGroups[row.TransactionGroup] = true
		}
	}
	for _, group := range transactionGroups {
		if !owedGroups[group] {
			return errors.New("transaction group has no owed settlement: " + group)
		}
	}

	now := time.Now().UTC()
	for _, row := range rows {
		if row.Status != SettlementStatusOwed {
			continue
		}
		if !row.Status.CanTransitionTo(SettlementStatusInvoiced) {
			return errors.New("invalid settlement status transition")
		}
		if err := tx.Model(row).Updates(map[string]interface{}{
			"Status":     SettlementStatusInvoiced,
			"ExpenseId":  expenseId,
			"InvoicedAt": now,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// MarkExpenseSettlementsAsSettled moves every INVOICED row attached to the
// expense to SETTLED. Called when the settlement expense is paid, in the same
// DB transaction as the payment posting. No-op when nothing is attached.
func MarkExpenseSettlementsAsSettled(tx *gorm.DB, expenseId int) error {
	if expenseId == 0 {
		return errors.New("expense id is required")
	}

	var rows []*TransactionSettlement
	if err := tx.Where("expense_id = ? AND status = ?", expenseId, SettlementStatusInvoiced).
		Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, row := range rows {
		if !row.Status.CanTransitionTo(SettlementStatusSettled) {
			return errors.New("invalid settlement status transition")
		}
		if err := tx.Model(row).Updates(map[string]interface{}{
			"Status":    SettlementStatusSettled,
			"SettledAt": now,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
