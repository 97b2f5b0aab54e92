package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money leaving a collective: reimbursements (RECEIPT), invoices
// from payees (INVOICE), and platform settlement invoices (SETTLEMENT).
// Attachments is a JSON array of receipt URLs and is stripped from outbox
// payloads.
type Expense struct {
	ID               int         `gorm:"primary_key" json:"id"`
	SequenceNo       int64       `gorm:"not null;index" json:"sequence_no"`
	CollectiveId     int         `gorm:"not null;index" json:"collective_id" binding:"required"`
	HostCollectiveId int         `gorm:"not null;index" json:"host_collective_id"`
	UserId           int         `gorm:"not null;index" json:"user_id"`
	PayoutMethodId   *int        `gorm:"index" json:"payout_method_id"`
	ExpenseType      ExpenseType `gorm:"type:enum('RECEIPT','INVOICE','SETTLEMENT');not null" json:"expense_type"`
	Description      string      `gorm:"size:255;not null" json:"description" binding:"required"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency         string          `gorm:"size:3;not null" json:"currency"`
	Status           ExpenseStatus   `gorm:"type:enum('DRAFT','PENDING','APPROVED','REJECTED','PAID','CANCELED');default:'PENDING';not null;index" json:"status"`
	Attachments      string          `gorm:"type:text" json:"attachments"`
	ApprovedAt       *time.Time      `json:"approved_at"`
	RejectedAt       *time.Time      `json:"rejected_at"`
	PaidAt           *time.Time      `json:"paid_at"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewExpense struct {
	CollectiveId   int             `json:"collective_id" binding:"required"`
	PayoutMethodId *int            `json:"payout_method_id"`
	ExpenseType    ExpenseType     `json:"expense_type" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
	Attachments    string          `json:"attachments"`
}

func (input *NewExpense) validate(ctx context.Context) (*Collective, error) {
	if !input.Amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}
	if input.ExpenseType == ExpenseTypeSettlement {
		return nil, errors.New("settlement expenses are created by the platform")
	}
	if input.ExpenseType == ExpenseTypeReceipt && input.Attachments == "" {
		return nil, errors.New("receipt expenses require an attachment")
	}
	urls, err := attachmentURLs(input.Attachments)
	if err != nil {
		return nil, err
	}
	for _, u := range urls {
		if err := utils.VerifyAttachmentURL(ctx, u); err != nil {
			return nil, err
		}
	}

	collective, err := GetResource[Collective](ctx, input.CollectiveId)
	if err != nil {
		return nil, errors.New("collective not found")
	}
	if collective.HostCollectiveId == nil || collective.ApprovedAt == nil {
		return nil, errors.New("collective has no approved host")
	}

	if input.PayoutMethodId != nil {
		if err := utils.ValidateResourceId[PayoutMethod](ctx, input.CollectiveId, *input.PayoutMethodId); err != nil {
			return nil, errors.New("payout method not found")
		}
	}
	return collective, nil
}

// CreateExpense submits an expense against a collective. Any authenticated
// user may submit; approval stays with the collective's admins.
func CreateExpense(ctx context.Context, input *NewExpense) (*Expense, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	collective, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}

	seqNo, err := utils.GetSequence[Expense](ctx, input.CollectiveId)
	if err != nil {
		return nil, err
	}

	expense := Expense{
		SequenceNo:       seqNo,
		CollectiveId:     input.CollectiveId,
		HostCollectiveId: *collective.HostCollectiveId,
		UserId:           userId,
		PayoutMethodId:   input.PayoutMethodId,
		ExpenseType:      input.ExpenseType,
		Description:      input.Description,
		Amount:           input.Amount,
		Currency:         input.Currency,
		Status:           ExpenseStatusPending,
		Attachments:      input.Attachments,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense edits a still-pending expense. Submitter only.
func UpdateExpense(ctx context.Context, id int, input *NewExpense) (*Expense, error) {

	expense, err := utils.FetchSingleModel[Expense](ctx, id)
	if err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	if expense.UserId != userId {
		return nil, errors.New("only the submitter can edit an expense")
	}
	if expense.Status != ExpenseStatusPending && expense.Status != ExpenseStatusDraft {
		return nil, errors.New("only pending expenses can be edited")
	}
	if expense.ExpenseType == ExpenseTypeSettlement {
		return nil, errors.New("settlement expenses cannot be edited")
	}
	if _, err := input.validate(ctx); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&expense).Updates(map[string]interface{}{
		"PayoutMethodId": input.PayoutMethodId,
		"Description":    input.Description,
		"Amount":         input.Amount,
		"Currency":       input.Currency,
		"Attachments":    input.Attachments,
	}).Error
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ApproveExpense: PENDING -> APPROVED, collective admin only.
func ApproveExpense(ctx context.Context, id int) (*Expense, error) {

	expense, err := utils.FetchSingleModel[Expense](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := IsAdminOfCollective(ctx, expense.CollectiveId); err != nil {
		return nil, err
	}
	if expense.Status != ExpenseStatusPending {
		return nil, errors.New("only pending expenses can be approved")
	}

	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&expense).Updates(map[string]interface{}{
			"Status":     ExpenseStatusApproved,
			"ApprovedAt": now,
		}).Error; err != nil {
			return err
		}
		return SaveActivityUpdate(tx.WithContext(ctx), expense.ID, expense, "expense approved")
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// RejectExpense: PENDING -> REJECTED, collective admin only.
func RejectExpense(ctx context.Context, id int) (*Expense, error) {

	expense, err := utils.FetchSingleModel[Expense](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := IsAdminOfCollective(ctx, expense.CollectiveId); err != nil {
		return nil, err
	}
	if expense.Status != ExpenseStatusPending {
		return nil, errors.New("only pending expenses can be rejected")
	}

	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Model(&expense).Updates(map[string]interface{}{
		"Status":     ExpenseStatusRejected,
		"RejectedAt": now,
	}).Error
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// PayExpense marks an approved expense PAID and writes the outbox message.
// The posting worker inserts the ledger entries and, for SETTLEMENT
// expenses, marks the attached settlements SETTLED. Host admin only: the
// host moves the money.
func PayExpense(ctx context.Context, id int) (*Expense, error) {

	expense, err := utils.FetchSingleModel[Expense](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := IsAdminOfCollective(ctx, expense.HostCollectiveId); err != nil {
		return nil, err
	}
	if expense.Status != ExpenseStatusApproved {
		return nil, errors.New("only approved expenses can be paid")
	}

	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&expense).Updates(map[string]interface{}{
			"Status": ExpenseStatusPaid,
			"PaidAt": now,
		}).Error; err != nil {
			return err
		}
		return PublishToLedger(ctx, tx, expense.HostCollectiveId, now, expense.ID,
			LedgerReferenceTypeExpensePayment, expense, nil, PubSubMessageActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// MarkExpenseAsUnpaid reverses a paid expense. The worker refunds the
// payment's transaction group; settlement expenses stay final.
func MarkExpenseAsUnpaid(ctx context.Context, id int) (*Expense, error) {

	expense, err := utils.FetchSingleModel[Expense](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := IsAdminOfCollective(ctx, expense.HostCollectiveId); err != nil {
		return nil, err
	}
	if expense.Status != ExpenseStatusPaid {
		return nil, errors.New("only paid expenses can be marked as unpaid")
	}
	if expense.ExpenseType == ExpenseTypeSettlement {
		return nil, errors.New("settlement expenses cannot be marked as unpaid")
	}

	before := *expense
	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&expense).Updates(map[string]interface{}{
			"Status": ExpenseStatusApproved,
			"PaidAt": nil,
		}).Error; err != nil {
			return err
		}
		return PublishToLedger(ctx, tx, expense.HostCollectiveId, now, expense.ID,
			LedgerReferenceTypeExpensePayment, expense, &before, PubSubMessageActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes a rejected or still-pending expense.
func DeleteExpense(ctx context.Context, id int) (*Expense, error) {

	expense, err := utils.FetchSingleModel[Expense](ctx, id)
	if err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	if expense.UserId != userId {
		if err := IsAdminOfCollective(ctx, expense.CollectiveId); err != nil {
			return nil, err
		}
	}
	switch expense.Status {
	case ExpenseStatusDraft, ExpenseStatusPending, ExpenseStatusRejected:
	default:
		return nil, errors.New("approved or paid expenses cannot be deleted")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&expense).Error; err != nil {
		return nil, err
	}

	// best effort: orphaned receipts are garbage, not data
	if urls, err := attachmentURLs(expense.Attachments); err == nil {
		for _, u := range urls {
			if key := utils.ExtractObjectKeyFromURL(u); key != "" {
				_ = utils.DeleteObjectFromGCS(ctx, key)
			}
		}
	}
	return expense, nil
}

func attachmentURLs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(s), &urls); err != nil {
		return nil, errors.New("attachments must be a JSON array of URLs")
	}
	return urls, nil
}

// CreateSettlementExpense turns a host's OWED settlements into a SETTLEMENT
// expense (the platform's invoice to the host) and marks them INVOICED, all
// in one DB transaction. One expense per currency with a positive net; a
// currency that nets to zero or negative (refund offsets outweigh debts)
// stays OWED to net against future debts.
func CreateSettlementExpense(ctx context.Context, hostCollectiveId int) ([]*Expense, error) {

	if isAdmin, ok := utils.GetIsAdminFromContext(ctx); !ok || !isAdmin {
		return nil, errors.New("platform admin only")
	}

	host, err := utils.FetchSingleModel[Collective](ctx, hostCollectiveId)
	if err != nil {
		return nil, err
	}
	if host.IsHost == nil || !*host.IsHost {
		return nil, errors.New("collective is not a host")
	}

	// one invoice run per host at a time
	release, err := utils.HostLock(ctx, hostCollectiveId, "settlement-invoice", "expense.go", "CreateSettlementExpense")
	if err != nil {
		return nil, err
	}
	defer release()

	summary, err := HostOwedSummary(ctx, hostCollectiveId)
	if err != nil {
		return nil, err
	}
	totals := map[string]decimal.Decimal{}
	for _, row := range summary {
		total := totals[row.Currency]
		totals[row.Currency] = total.Add(row.TotalOwed)
	}

	groups, err := OwedTransactionGroups(ctx, hostCollectiveId)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.New("host has no owed settlements")
	}

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	var expenses []*Expense
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for currency, total := range totals {
			// a non-positive net would produce an unpayable negative invoice
			if !total.IsPositive() {
				continue
			}

			seqNo, err := utils.GetSequence[Expense](ctx, hostCollectiveId)
			if err != nil {
				return err
			}
			expense := Expense{
				SequenceNo:       seqNo,
				CollectiveId:     hostCollectiveId,
				HostCollectiveId: hostCollectiveId,
				UserId:           userId,
				ExpenseType:      ExpenseTypeSettlement,
				Description:      fmt.Sprintf("Platform settlement (%s)", currency),
				Amount:           total,
				Currency:         currency,
				Status:           ExpenseStatusApproved,
			}
			if err := tx.Create(&expense).Error; err != nil {
				return err
			}

			currencyGroups, err := owedGroupsForCurrency(tx, hostCollectiveId, currency, groups)
			if err != nil {
				return err
			}
			if err := MarkSettlementsAsInvoiced(tx, hostCollectiveId, currencyGroups, expense.ID); err != nil {
				return err
			}
			expenses = append(expenses, &expense)
		}
		if len(expenses) == 0 {
			return errors.New("no positive owed balance to invoice")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func owedGroupsForCurrency(tx *gorm.DB, hostCollectiveId int, currency string, groups []string) ([]string, error) {
	var currencyGroups []string
	err := tx.Model(&TransactionSettlement{}).
		Where("host_collective_id = ? AND status = ? AND currency = ? AND transaction_group IN ?",
			hostCollectiveId, SettlementStatusOwed, currency, groups).
		Distinct("transaction_group").
		Order("transaction_group").
		Pluck("transaction_group", &currencyGroups).Error
	return currencyGroups, err
}

func GetExpense(ctx context.Context, id int) (*Expense, error) {
	return utils.FetchSingleModel[Expense](ctx, id)
}

func GetExpenses(ctx context.Context, collectiveId int, status *ExpenseStatus) ([]*Expense, error) {

	db := config.GetDB()
	var results []*Expense

	fieldNames, err := utils.GetQueryFields(ctx, &Expense{})
	if err != nil {
		return nil, err
	}

	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	err = dbCtx.Select(fieldNames).Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

type ExpensesConnection struct {
	Edges    []*ExpensesEdge `json:"edges"`
	PageInfo *PageInfo       `json:"pageInfo"`
}

type ExpensesEdge Edge[Expense]

func (obj Expense) GetId() int {
	return obj.ID
}

func (e Expense) GetCursor() string {
	return e.CreatedAt.String()
}

func PaginateExpenses(ctx context.Context,
	collectiveId int,
	limit *int,
	after *string,
	status *ExpenseStatus,
	expenseType *ExpenseType,
) (*ExpensesConnection, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if status != nil && *status != "" {
		dbCtx.Where("status = ?", *status)
	}
	if expenseType != nil && *expenseType != "" {
		dbCtx.Where("expense_type = ?", *expenseType)
	}

	edges, pageInfo, err := FetchPageCompositeCursor[Expense](dbCtx, *limit, after, "created_at", "<")
	if err != nil {
		return nil, err
	}
	var connection ExpensesConnection
	connection.PageInfo = pageInfo
	for _, edge := range edges {
		expenseEdge := ExpensesEdge(edge)
		connection.Edges = append(connection.Edges, &expenseEdge)
	}

	return &connection, err
}
