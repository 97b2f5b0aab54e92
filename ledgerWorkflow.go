package main

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/collectivehq/platform_backend/workflow"
)

var (
	hostMutexMap = make(map[int]*sync.Mutex)
	globalMutex  = &sync.Mutex{}
)

func RunLedgerWorkflow() error {
	logger := config.GetLogger()
	ctx := context.Background()
	client, err := config.GetClient(ctx)
	if err != nil {
		return err
	}
	topic, err := config.CreateTopicIfNotExists(client, os.Getenv("PUBSUB_TOPIC"))
	if err != nil {
		return err
	}
	sub, err := config.CreateSubscriptionIfNotExists(client, os.Getenv("PUBSUB_SUBSCRIPTION"), topic)
	if err != nil {
		return err
	}
	// Specify the number of concurrent processes
	sub.ReceiveSettings.MaxOutstandingMessages = 10

	callback := func(ctx context.Context, msg *pubsub.Message) {
		m := config.PubSubMessage{}
		err := json.Unmarshal(msg.Data, &m)
		if err != nil {
			config.LogError(logger, "ledgerWorkflow.go", "RunLedgerWorkflow", "Unmarshaling pubsub message", msg.Data, err)
			return
		}

		// Get or create the mutex for the current host
		globalMutex.Lock()
		mutex, exists := hostMutexMap[m.HostCollectiveId]
		if !exists {
			mutex = &sync.Mutex{}
			hostMutexMap[m.HostCollectiveId] = mutex
		}
		globalMutex.Unlock()

		// Lock the specific host mutex
		mutex.Lock()
		defer mutex.Unlock()

		ctx = utils.SetHostCollectiveIdInContext(ctx, m.HostCollectiveId)
		ctx = utils.SetUserIdInContext(ctx, 0)
		ctx = utils.SetUserNameInContext(ctx, "System")
		ctx = utils.SetCorrelationIdInContext(ctx, m.CorrelationId)
		if err := ProcessMessage(ctx, logger, m); err != nil {
			logger.WithFields(logrus.Fields{
				"field":              "LedgerWorkflow",
				"host_collective_id": m.HostCollectiveId,
				"reference_type":     m.ReferenceType,
				"reference_id":       m.ReferenceId,
				"message_id":         msg.ID,
			}).Error("pubsub processing failed: " + err.Error())
			msg.Nack()
			return
		}
		msg.Ack()
	}

	go func() {
		err := sub.Receive(ctx, callback)

		if err != nil {
			config.LogError(logger, "ledgerWorkflow.go", "RunLedgerWorkflow", "Failed to receive messages", nil, err)
		}
	}()

	return nil
}

func ProcessMessage(ctx context.Context, logger *logrus.Logger, m config.PubSubMessage) error {
	db := config.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		// Enforce strict per-host ordering across instances.
		if err := workflow.AcquireHostPostingLock(tx.WithContext(ctx), m.HostCollectiveId); err != nil {
			return err
		}
		defer workflow.ReleaseHostPostingLock(tx.WithContext(ctx), m.HostCollectiveId)

		handlerName := m.ReferenceType
		messageId := strconv.Itoa(m.ID)

		skip, err := workflow.BeginIdempotency(tx.WithContext(ctx), m.HostCollectiveId, handlerName, messageId)
		if err != nil {
			return err
		}
		if skip {
			return nil
		}

		// the referenced document must exist before its entries are posted
		if err := models.ValidateLedgerReference(ctx, m.HostCollectiveId, m.ReferenceId, models.LedgerReferenceType(m.ReferenceType)); err != nil {
			_ = workflow.MarkIdempotencyFailed(tx.WithContext(ctx), m.HostCollectiveId, handlerName, messageId, err)
			return err
		}

		// IMPORTANT: do not call tx.Commit()/tx.Rollback() inside db.Transaction.
		// Returning error triggers rollback; returning nil commits.
		if err := ProcessWorkflow(tx.WithContext(ctx), logger, m); err != nil {
			_ = workflow.MarkIdempotencyFailed(tx.WithContext(ctx), m.HostCollectiveId, handlerName, messageId, err)
			return err
		}
		if err := workflow.MarkIdempotencySucceeded(tx.WithContext(ctx), m.HostCollectiveId, handlerName, messageId); err != nil {
			return err
		}
		return nil
	})
}

func ProcessWorkflow(tx *gorm.DB, logger *logrus.Logger, msg config.PubSubMessage) error {
	switch msg.ReferenceType {
	case string(models.LedgerReferenceTypeOrder):
		return workflow.ProcessOrderWorkflow(tx, logger, msg)
	case string(models.LedgerReferenceTypeExpensePayment):
		return workflow.ProcessExpensePaymentWorkflow(tx, logger, msg)
	case string(models.LedgerReferenceTypeRefund):
		return workflow.ProcessRefundWorkflow(tx, logger, msg)
	}
	return nil
}
