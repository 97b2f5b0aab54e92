package workflow

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
)

// ProcessExpensePaymentWorkflow posts an expense payment (Create) or reverses
// it (Delete, for mark-as-unpaid). Paying a SETTLEMENT expense also moves the
// invoiced settlement rows to SETTLED.
func ProcessExpensePaymentWorkflow(tx *gorm.DB, logger *logrus.Logger, msg config.PubSubMessage) error {

	switch msg.Action {
	case string(models.PubSubMessageActionCreate):

		var expense models.Expense
		if err := json.Unmarshal(msg.NewObj, &expense); err != nil {
			config.LogError(logger, "expensePaymentWorkflow.go", "ProcessExpensePaymentWorkflow > Create", "Unmarshal msg.NewObj", msg.NewObj, err)
			return err
		}
		if err := postExpensePayment(tx, &expense, msg); err != nil {
			config.LogError(logger, "expensePaymentWorkflow.go", "ProcessExpensePaymentWorkflow > Create", "postExpensePayment", expense.ID, err)
			return err
		}

	case string(models.PubSubMessageActionDelete):

		var oldExpense models.Expense
		if err := json.Unmarshal(msg.OldObj, &oldExpense); err != nil {
			config.LogError(logger, "expensePaymentWorkflow.go", "ProcessExpensePaymentWorkflow > Delete", "Unmarshal msg.OldObj", msg.OldObj, err)
			return err
		}
		if err := reverseExpensePayment(tx, &oldExpense); err != nil {
			config.LogError(logger, "expensePaymentWorkflow.go", "ProcessExpensePaymentWorkflow > Delete", "reverseExpensePayment", oldExpense.ID, err)
			return err
		}

	default:
		return fmt.Errorf("unsupported action %q for expense posting", msg.Action)
	}

	return markRecordProcessed(tx, msg.ID)
}

func postExpensePayment(tx *gorm.DB, expense *models.Expense, msg config.PubSubMessage) error {

	host, err := fetchCollective(tx, expense.HostCollectiveId)
	if err != nil {
		return err
	}

	payeeCollectiveId, err := expensePayeeCollectiveId(tx, expense)
	if err != nil {
		return err
	}

	// money leaves the collective, credits the payee
	_, _, err = models.CreateDoubleEntry(tx, models.NewTransactionPair{
		Kind:             models.TransactionKindExpense,
		Description:      expense.Description,
		CollectiveId:     payeeCollectiveId,
		FromCollectiveId: expense.CollectiveId,
		HostCollectiveId: expense.HostCollectiveId,
		ExpenseId:        &expense.ID,
		Amount:           expense.Amount,
		Currency:         expense.Currency,
		HostCurrency:     host.Currency,
		OccurredAt:       msg.OccurredAt,
	})
	if err != nil {
		return err
	}

	// paying the platform's invoice settles the invoiced debt rows
	if expense.ExpenseType == models.ExpenseTypeSettlement {
		if err := models.MarkExpenseSettlementsAsSettled(tx, expense.ID); err != nil {
			return err
		}
	}
	return nil
}

// expensePayeeCollectiveId resolves who receives the money: the platform for
// settlement invoices, otherwise the submitter's individual collective.
func expensePayeeCollectiveId(tx *gorm.DB, expense *models.Expense) (int, error) {
	if expense.ExpenseType == models.ExpenseTypeSettlement {
		return models.PlatformCollectiveId, nil
	}
	var user models.User
	if err := tx.Where("id = ?", expense.UserId).Take(&user).Error; err != nil {
		return 0, err
	}
	if user.CollectiveId == 0 {
		return 0, errors.New("payee has no individual collective")
	}
	return user.CollectiveId, nil
}

func reverseExpensePayment(tx *gorm.DB, oldExpense *models.Expense) error {

	groups, err := activeExpenseGroups(tx, oldExpense.HostCollectiveId, oldExpense.ID)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return errors.New("no active ledger entries for expense")
	}
	for _, group := range groups {
		if _, err := models.RefundGroup(tx, group); err != nil {
			return err
		}
	}
	return nil
}

// activeExpenseGroups returns the distinct non-refunded transaction groups
// that posted this expense.
func activeExpenseGroups(tx *gorm.DB, hostCollectiveId int, expenseId int) ([]string, error) {
	var groups []string
	sql := `
		SELECT DISTINCT t.transaction_group
		FROM
		    transactions AS t
		        LEFT JOIN
		    transactions r ON r.refund_transaction_group = t.transaction_group
		        AND r.is_refund = true
		WHERE
		    t.host_collective_id = ?
		        AND t.expense_id = ?
		        AND t.is_refund = false
		        AND r.id IS NULL
	`
	if err := tx.Raw(sql, hostCollectiveId, expenseId).Scan(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
