package workflow

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
)

// ProcessRefundWorkflow reverses every active transaction group of a refunded
// order. RefundGroup inserts the reversed entries, links both groups, and
// nets out any settlement the host accrued for the group.
func ProcessRefundWorkflow(tx *gorm.DB, logger *logrus.Logger, msg config.PubSubMessage) error {

	var order models.Order
	if err := json.Unmarshal(msg.NewObj, &order); err != nil {
		config.LogError(logger, "refundWorkflow.go", "ProcessRefundWorkflow", "Unmarshal msg.NewObj", msg.NewObj, err)
		return err
	}

	groups, err := activeOrderGroups(tx, order.HostCollectiveId, order.ID)
	if err != nil {
		config.LogError(logger, "refundWorkflow.go", "ProcessRefundWorkflow", "activeOrderGroups", order.ID, err)
		return err
	}
	if len(groups) == 0 {
		return errors.New("no active ledger entries for order")
	}

	for _, group := range groups {
		if _, err := models.RefundGroup(tx, group); err != nil {
			config.LogError(logger, "refundWorkflow.go", "ProcessRefundWorkflow", "RefundGroup", group, err)
			return err
		}
	}

	// idempotent against replays; the API already set REFUNDED
	if err := models.SetOrderStatus(tx, order.ID, models.OrderStatusRefunded); err != nil {
		return err
	}

	return markRecordProcessed(tx, msg.ID)
}

func activeOrderGroups(tx *gorm.DB, hostCollectiveId int, orderId int) ([]string, error) {
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
		        AND t.order_id = ?
		        AND t.is_refund = false
		        AND r.id IS NULL
	`
	if err := tx.Raw(sql, hostCollectiveId, orderId).Scan(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
