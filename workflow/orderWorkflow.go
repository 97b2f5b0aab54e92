package workflow

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
)

// ProcessOrderWorkflow posts a confirmed contribution: the contribution pair,
// the processor fee, the host fee, and the debts the host accrues to the
// platform (platform tip, host-fee share).
func ProcessOrderWorkflow(tx *gorm.DB, logger *logrus.Logger, msg config.PubSubMessage) error {

	if msg.Action != string(models.PubSubMessageActionCreate) {
		return fmt.Errorf("unsupported action %q for order posting", msg.Action)
	}

	var order models.Order
	if err := json.Unmarshal(msg.NewObj, &order); err != nil {
		config.LogError(logger, "orderWorkflow.go", "ProcessOrderWorkflow", "Unmarshal msg.NewObj", msg.NewObj, err)
		return err
	}

	host, err := fetchCollective(tx, order.HostCollectiveId)
	if err != nil {
		config.LogError(logger, "orderWorkflow.go", "ProcessOrderWorkflow", "fetchCollective host", order.HostCollectiveId, err)
		return err
	}

	if err := postContribution(tx, &order, host, msg.OccurredAt); err != nil {
		config.LogError(logger, "orderWorkflow.go", "ProcessOrderWorkflow", "postContribution", order.ID, err)
		return err
	}

	return markRecordProcessed(tx, msg.ID)
}

func postContribution(tx *gorm.DB, order *models.Order, host *models.Collective, occurredAt time.Time) error {

	hostCurrency := host.Currency

	// 1. the contribution itself: backer's collective -> receiving collective
	_, _, err := models.CreateDoubleEntry(tx, models.NewTransactionPair{
		Kind:             models.TransactionKindContribution,
		Description:      contributionDescription(order),
		CollectiveId:     order.CollectiveId,
		FromCollectiveId: order.FromCollectiveId,
		HostCollectiveId: order.HostCollectiveId,
		OrderId:          &order.ID,
		Amount:           order.Amount,
		Currency:         order.Currency,
		HostCurrency:     hostCurrency,
		NetAmount:        order.Amount.Sub(order.ProcessorFee),
		OccurredAt:       occurredAt,
	})
	if err != nil {
		return err
	}

	// 2. the processor's cut leaves the collective
	if order.ProcessorFee.IsPositive() {
		_, _, err = models.CreateDoubleEntry(tx, models.NewTransactionPair{
			Kind:             models.TransactionKindPaymentProcessorFee,
			Description:      "Payment processor fee",
			CollectiveId:     models.PlatformCollectiveId,
			FromCollectiveId: order.CollectiveId,
			HostCollectiveId: order.HostCollectiveId,
			OrderId:          &order.ID,
			Amount:           order.ProcessorFee,
			Currency:         order.Currency,
			HostCurrency:     hostCurrency,
			OccurredAt:       occurredAt,
		})
		if err != nil {
			return err
		}
	}

	// 3. host fee on the contribution, and the platform's share of it as debt
	hostFee := percentageOf(order.Amount, host.HostFeePercent)
	if hostFee.IsPositive() && order.CollectiveId != order.HostCollectiveId {
		_, _, err = models.CreateDoubleEntry(tx, models.NewTransactionPair{
			Kind:             models.TransactionKindHostFee,
			Description:      "Host fee",
			CollectiveId:     order.HostCollectiveId,
			FromCollectiveId: order.CollectiveId,
			HostCollectiveId: order.HostCollectiveId,
			OrderId:          &order.ID,
			Amount:           hostFee,
			Currency:         order.Currency,
			HostCurrency:     hostCurrency,
			OccurredAt:       occurredAt,
		})
		if err != nil {
			return err
		}

		sharePercent, err := decimal.NewFromString(config.HostFeeSharePercent())
		if err != nil {
			return err
		}
		feeShare := percentageOf(hostFee, sharePercent)
		if feeShare.IsPositive() && order.HostCollectiveId != models.PlatformCollectiveId {
			_, _, err = models.CreateDebtEntry(tx, models.NewTransactionPair{
				Kind:             models.TransactionKindHostFeeShareDebt,
				Description:      "Host fee share owed to platform",
				CollectiveId:     models.PlatformCollectiveId,
				FromCollectiveId: order.HostCollectiveId,
				HostCollectiveId: order.HostCollectiveId,
				OrderId:          &order.ID,
				Amount:           feeShare,
				Currency:         order.Currency,
				HostCurrency:     hostCurrency,
				OccurredAt:       occurredAt,
			})
			if err != nil {
				return err
			}
		}
	}

	// 4. the backer's tip to the platform, accrued as host debt unless the
	// host is on legacy billing
	if order.PlatformTipAmount.IsPositive() && order.HostCollectiveId != models.PlatformCollectiveId {
		tipPair := models.NewTransactionPair{
			Kind:             models.TransactionKindPlatformTipDebt,
			Description:      "Platform tip",
			CollectiveId:     models.PlatformCollectiveId,
			FromCollectiveId: order.HostCollectiveId,
			HostCollectiveId: order.HostCollectiveId,
			OrderId:          &order.ID,
			Amount:           order.PlatformTipAmount,
			Currency:         order.Currency,
			HostCurrency:     hostCurrency,
			OccurredAt:       occurredAt,
		}
		if config.PlatformTipDebtDisabledFor(strconv.Itoa(order.HostCollectiveId)) {
			tipPair.Kind = models.TransactionKindPlatformTip
			_, _, err = models.CreateDoubleEntry(tx, tipPair)
		} else {
			_, _, err = models.CreateDebtEntry(tx, tipPair)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// percentageOf rounds to 4 places, matching the ledger's amount precision.
func percentageOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(4)
}

func contributionDescription(order *models.Order) string {
	if order.Description != "" {
		return order.Description
	}
	return fmt.Sprintf("Contribution #%d", order.SequenceNo)
}

func fetchCollective(tx *gorm.DB, id int) (*models.Collective, error) {
	var collective models.Collective
	if err := tx.Where("id = ?", id).Take(&collective).Error; err != nil {
		return nil, err
	}
	return &collective, nil
}

func markRecordProcessed(tx *gorm.DB, recordId int) error {
	return tx.Model(&models.PubSubMessageRecord{}).
		Where("id = ?", recordId).
		Updates(map[string]interface{}{"is_processed": true, "processed_at": gorm.Expr("NOW()")}).Error
}
