package models

import (
	"context"
	"errors"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PubSubMessageRecord struct {
	ID               int                 `gorm:"primary_key;index:idx_outbox_dispatch,priority:3;index:idx_outbox_reconcile,priority:3" json:"id"`
	HostCollectiveId int                 `gorm:"not null;index;index:idx_outbox_reconcile,priority:1" json:"host_collective_id"`
	OccurredAt       time.Time           `gorm:"index;not null" json:"occurred_at"`
	ReferenceId      int                 `json:"reference_id"`
	ReferenceType    LedgerReferenceType `gorm:"type:enum('OD','EP','RF','BT')" json:"reference_type"`
	Action           PubSubMessageAction `gorm:"type:enum('C','U','D')" json:"action"`
	OldObj           []byte              `gorm:"type:blob" json:"old_obj"`
	NewObj           []byte              `gorm:"type:blob" json:"new_obj"`
	IsProcessed      bool                `gorm:"index;not null;index:idx_outbox_reconcile,priority:2" json:"is_processed"`
	// Outbox metadata (publish happens after commit via dispatcher).
	PublishStatus    string     `gorm:"size:20;index;not null;default:'PENDING';index:idx_outbox_dispatch,priority:1" json:"publish_status"` // PENDING|PROCESSING|SENT|FAILED|DEAD
	PublishedAt      *time.Time `gorm:"index" json:"published_at"`
	PubSubMessageId  *string    `gorm:"size:255" json:"pubsub_message_id"`
	PublishAttempts  int        `gorm:"not null;default:0" json:"publish_attempts"`
	NextAttemptAt    *time.Time `gorm:"index;index:idx_outbox_dispatch,priority:2" json:"next_attempt_at"`
	LockedAt         *time.Time `gorm:"index" json:"locked_at"`
	LockedBy         *string    `gorm:"size:100" json:"locked_by"`
	LastPublishError *string    `gorm:"type:text" json:"last_publish_error"`
	// Processing metadata (consumer/worker)
	LastProcessError *string    `gorm:"type:text" json:"last_process_error"`
	ProcessedAt      *time.Time `gorm:"index" json:"processed_at"`
	CorrelationId    string     `gorm:"size:64;index" json:"correlation_id"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func ConvertToPubSubMessage(record PubSubMessageRecord) config.PubSubMessage {
	return config.PubSubMessage{
		ID:               record.ID,
		HostCollectiveId: record.HostCollectiveId,
		OccurredAt:       record.OccurredAt,
		ReferenceId:      record.ReferenceId,
		ReferenceType:    string(record.ReferenceType),
		Action:           string(record.Action),
		OldObj:           record.OldObj,
		NewObj:           record.NewObj,
		CorrelationId:    record.CorrelationId,
	}
}

// Transaction is one leg of a double-entry group. Amounts are signed:
// CREDIT legs are positive, DEBIT legs negative, so every group sums to zero.
type Transaction struct {
	ID               int             `gorm:"primary_key" json:"id"`
	TransactionGroup string          `gorm:"size:36;not null;index;index:idx_txn_group_kind,priority:1" json:"transaction_group"`
	Type             TransactionType `gorm:"type:enum('CREDIT','DEBIT');not null" json:"type"`
	Kind             TransactionKind `gorm:"size:32;not null;index;index:idx_txn_group_kind,priority:2" json:"kind"`
	Description      string          `gorm:"size:255" json:"description"`
	CollectiveId     int             `gorm:"not null;index;index:idx_txn_collective_date,priority:1" json:"collective_id"`
	FromCollectiveId int             `gorm:"not null;index" json:"from_collective_id"`
	HostCollectiveId int             `gorm:"not null;index;index:idx_txn_host_date,priority:1" json:"host_collective_id"`
	OrderId          *int            `gorm:"index" json:"order_id"`
	ExpenseId        *int            `gorm:"index" json:"expense_id"`
	// Composite indexes:
	// - idx_txn_host_date:       (host_collective_id, created_at)
	// - idx_txn_collective_date: (collective_id, created_at)
	// - idx_txn_group_kind:      (transaction_group, kind)
	Amount               decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency             string          `gorm:"size:3;not null" json:"currency"`
	HostCurrency         string          `gorm:"size:3;not null" json:"host_currency"`
	HostCurrencyFxRate   decimal.Decimal `gorm:"type:decimal(20,8);default:1" json:"host_currency_fx_rate"`
	AmountInHostCurrency decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount_in_host_currency"`
	NetAmount            decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"net_amount"`
	IsDebt               *bool           `gorm:"not null;default:false;index" json:"is_debt"`
	IsRefund             *bool           `gorm:"not null;default:false" json:"is_refund"`
	// Set on the ORIGINAL entries when a group is refunded, pointing to the
	// group of the reversal entries. On reversal entries it points back to
	// the refunded group. A group is refunded at most once.
	RefundTransactionGroup *string   `gorm:"size:36;index" json:"refund_transaction_group"`
	OccurredAt             time.Time `gorm:"index;not null" json:"occurred_at"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Ledger immutability guardrails:
// - transactions are append-only; only refund linkage may be updated.
// - transactions must never be deleted; a refund inserts reversed entries.

func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return errors.New("immutable ledger: transactions cannot be deleted")
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	allowed := map[string]bool{
		"RefundTransactionGroup": true,
		"UpdatedAt":              true,
	}
	if tx == nil || tx.Statement == nil || tx.Statement.Schema == nil {
		return nil
	}
	for _, f := range tx.Statement.Schema.Fields {
		if tx.Statement.Changed(f.Name) && !allowed[f.Name] {
			return errors.New("immutable ledger: only refund linkage fields may be updated on transactions")
		}
	}
	return nil
}

// NewTransactionPair describes one economic event. Amount is the positive
// amount credited to CollectiveId; the balancing DEBIT is generated.
type NewTransactionPair struct {
	Kind               TransactionKind
	Description        string
	CollectiveId       int
	FromCollectiveId   int
	HostCollectiveId   int
	OrderId            *int
	ExpenseId          *int
	Amount             decimal.Decimal
	Currency           string
	HostCurrency       string
	HostCurrencyFxRate decimal.Decimal
	NetAmount          decimal.Decimal
	OccurredAt         time.Time
}

func (input *NewTransactionPair) validate() error {
	if !input.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if input.Currency == "" || input.HostCurrency == "" {
		return errors.New("currency is required")
	}
	if input.CollectiveId == 0 || input.FromCollectiveId == 0 {
		return errors.New("collective and counterparty are required")
	}
	if input.CollectiveId == input.FromCollectiveId {
		return errors.New("collective cannot transact with itself")
	}
	if input.HostCollectiveId == 0 {
		return errors.New("host collective is required")
	}
	return nil
}

// CreateDoubleEntry inserts a balanced CREDIT+DEBIT pair sharing one
// transaction group. Must run inside the caller's DB transaction.
func CreateDoubleEntry(tx *gorm.DB, input NewTransactionPair) (string, []*Transaction, error) {
	return createPair(tx, input, false)
}

// CreateDebtEntry inserts a debt pair (host owes platform) plus its OWED
// settlement row. Must run inside the caller's DB transaction.
func CreateDebtEntry(tx *gorm.DB, input NewTransactionPair) (string, []*Transaction, error) {
	if !input.Kind.IsDebt() {
		return "", nil, errors.New("kind is not a debt kind")
	}
	group, entries, err := createPair(tx, input, true)
	if err != nil {
		return "", nil, err
	}
	// credit leg carries the amount the host owes
	if err := CreateSettlementForDebt(tx, entries[0]); err != nil {
		return "", nil, err
	}
	return group, entries, nil
}

func createPair(tx *gorm.DB, input NewTransactionPair, isDebt bool) (string, []*Transaction, error) {
	if err := input.validate(); err != nil {
		return "", nil, err
	}

	fxRate := input.HostCurrencyFxRate
	if fxRate.IsZero() {
		fxRate = decimal.NewFromInt(1)
	}
	netAmount := input.NetAmount
	if netAmount.IsZero() {
		netAmount = input.Amount
	}
	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	group := uuid.NewString()

	credit := Transaction{
		TransactionGroup:     group,
		Type:                 TransactionTypeCredit,
		Kind:                 input.Kind,
		Description:          input.Description,
		CollectiveId:         input.CollectiveId,
		FromCollectiveId:     input.FromCollectiveId,
		HostCollectiveId:     input.HostCollectiveId,
		OrderId:              input.OrderId,
		ExpenseId:            input.ExpenseId,
		Amount:               input.Amount,
		Currency:             input.Currency,
		HostCurrency:         input.HostCurrency,
		HostCurrencyFxRate:   fxRate,
		AmountInHostCurrency: input.Amount.Mul(fxRate),
		NetAmount:            netAmount,
		IsDebt:               &isDebt,
		IsRefund:             newBool(false),
		OccurredAt:           occurredAt,
	}
	debit := Transaction{
		TransactionGroup:     group,
		Type:                 TransactionTypeDebit,
		Kind:                 input.Kind,
		Description:          input.Description,
		CollectiveId:         input.FromCollectiveId,
		FromCollectiveId:     input.CollectiveId,
		HostCollectiveId:     input.HostCollectiveId,
		OrderId:              input.OrderId,
		ExpenseId:            input.ExpenseId,
		Amount:               input.Amount.Neg(),
		Currency:             input.Currency,
		HostCurrency:         input.HostCurrency,
		HostCurrencyFxRate:   fxRate,
		AmountInHostCurrency: input.Amount.Neg().Mul(fxRate),
		NetAmount:            netAmount.Neg(),
		IsDebt:               &isDebt,
		IsRefund:             newBool(false),
		OccurredAt:           occurredAt,
	}

	if err := tx.Create(&credit).Error; err != nil {
		return "", nil, err
	}
	if err := tx.Create(&debit).Error; err != nil {
		return "", nil, err
	}
	return group, []*Transaction{&credit, &debit}, nil
}

func newBool(b bool) *bool { return &b }

// RefundGroup inserts reversed entries for every entry of the group
// (credit/debit swapped, amounts negated), links both groups, and appends
// offsetting settlement rows for any debt entries. Originals are never
// mutated beyond the refund linkage column. Errors if the group was already
// refunded.
func RefundGroup(tx *gorm.DB, transactionGroup string) ([]*Transaction, error) {

	var originals []*Transaction
	if err := tx.Where("transaction_group = ?", transactionGroup).
		Order("id asc").Find(&originals).Error; err != nil {
		return nil, err
	}
	if len(originals) == 0 {
		return nil, errors.New("transaction group not found")
	}

	for _, t := range originals {
		if t.RefundTransactionGroup != nil {
			return nil, errors.New("transaction group has already been refunded")
		}
		if t.IsRefund != nil && *t.IsRefund {
			return nil, errors.New("refund entries cannot be refunded")
		}
	}

	refundGroup := uuid.NewString()
	now := time.Now().UTC()

	var reversals []*Transaction
	for _, t := range originals {
		reversal := Transaction{
			TransactionGroup:       refundGroup,
			Type:                   t.Type.Opposite(),
			Kind:                   t.Kind,
			Description:            "Refund of " + t.Description,
			CollectiveId:           t.CollectiveId,
			FromCollectiveId:       t.FromCollectiveId,
			HostCollectiveId:       t.HostCollectiveId,
			OrderId:                t.OrderId,
			ExpenseId:              t.ExpenseId,
			Amount:                 t.Amount.Neg(),
			Currency:               t.Currency,
			HostCurrency:           t.HostCurrency,
			HostCurrencyFxRate:     t.HostCurrencyFxRate,
			AmountInHostCurrency:   t.AmountInHostCurrency.Neg(),
			NetAmount:              t.NetAmount.Neg(),
			IsDebt:                 t.IsDebt,
			IsRefund:               newBool(true),
			RefundTransactionGroup: &transactionGroup,
			OccurredAt:             now,
		}
		if err := tx.Create(&reversal).Error; err != nil {
			return nil, err
		}
		reversals = append(reversals, &reversal)
	}

	// refund linkage on originals (the only column the hook allows)
	for _, t := range originals {
		if err := tx.Model(t).Update("RefundTransactionGroup", refundGroup).Error; err != nil {
			return nil, err
		}
	}

	// net out any settlements accrued by debt entries of this group
	for _, t := range originals {
		if t.IsDebt != nil && *t.IsDebt && t.Type == TransactionTypeCredit {
			if err := OffsetSettlementForRefund(tx, t.HostCollectiveId, transactionGroup, t.Kind, t.AmountInHostCurrency, t.HostCurrency); err != nil {
				return nil, err
			}
		}
	}

	return reversals, nil
}

// ActiveOrderEntries returns the non-refunded ledger entries of an order.
// Refunded groups are excluded by anti-joining against their reversals.
func ActiveOrderEntries(ctx context.Context, hostCollectiveId int, orderId int) ([]*Transaction, error) {
	var results []*Transaction
	db := config.GetDB()
	sql := `
		SELECT
		    t.*
		FROM
		    transactions AS t
		        LEFT JOIN
		    transactions r ON r.refund_transaction_group = t.transaction_group
		        AND r.is_refund = true
		WHERE
		    t.host_collective_id = ?
		        AND t.order_id = ?
		        AND t.is_refund = false
		        AND r.id IS NULL
		ORDER BY t.id
	`
	if err := db.WithContext(ctx).Raw(sql, hostCollectiveId, orderId).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GroupEntries returns all entries of a transaction group.
func GroupEntries(ctx context.Context, transactionGroup string) ([]*Transaction, error) {
	var results []*Transaction
	db := config.GetDB()
	if err := db.WithContext(ctx).Where("transaction_group = ?", transactionGroup).
		Order("id asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type TransactionsConnection struct {
	Edges    []*TransactionsEdge `json:"edges"`
	PageInfo *PageInfo           `json:"pageInfo"`
}

type TransactionsEdge Edge[Transaction]

func (t Transaction) GetCursor() string {
	return t.CreatedAt.String()
}

func PaginateTransactions(ctx context.Context,
	collectiveId int,
	limit *int,
	after *string,
	kind *TransactionKind,
	transactionType *TransactionType,
) (*TransactionsConnection, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if kind != nil && *kind != "" {
		dbCtx.Where("kind = ?", *kind)
	}
	if transactionType != nil && *transactionType != "" {
		dbCtx.Where("type = ?", *transactionType)
	}

	edges, pageInfo, err := FetchPageCompositeCursor[Transaction](dbCtx, *limit, after, "created_at", "<")
	if err != nil {
		return nil, err
	}
	var connection TransactionsConnection
	connection.PageInfo = pageInfo
	for _, edge := range edges {
		transactionEdge := TransactionsEdge(edge)
		connection.Edges = append(connection.Edges, &transactionEdge)
	}

	return &connection, err
}

// CollectiveBalance sums the signed amounts of a collective's entries per
// currency. Signed storage makes the balance a plain SUM.
type CollectiveBalanceRow struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

func CollectiveBalance(ctx context.Context, collectiveId int) ([]*CollectiveBalanceRow, error) {
	var results []*CollectiveBalanceRow
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&Transaction{}).
		Select("currency, SUM(amount) AS balance").
		Where("collective_id = ?", collectiveId).
		Group("currency").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
