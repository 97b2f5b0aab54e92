package models

import (
	"context"
	"errors"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a contribution to a collective. Confirming an order writes an
// outbox message; the posting worker turns it into ledger entries.
type Order struct {
	ID               int   `gorm:"primary_key" json:"id"`
	SequenceNo       int64 `gorm:"not null;index" json:"sequence_no"`
	CollectiveId     int   `gorm:"not null;index" json:"collective_id" binding:"required"`
	FromCollectiveId int   `gorm:"not null;index" json:"from_collective_id"`
	HostCollectiveId int   `gorm:"not null;index" json:"host_collective_id"`
	UserId           int   `gorm:"not null;index" json:"user_id"`
	TierId           *int  `gorm:"index" json:"tier_id"`
	PaymentMethodId  *int  `gorm:"index" json:"payment_method_id"`
	Description      string `gorm:"size:255" json:"description"`
	Amount            decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency          string          `gorm:"size:3;not null" json:"currency"`
	PlatformTipAmount decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"platform_tip_amount"`
	ProcessorFee      decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"processor_fee"`
	Status            OrderStatus     `gorm:"type:enum('PENDING','PAID','REFUNDED','CANCELED','ERROR');default:'PENDING';not null;index" json:"status"`
	ConfirmedAt       *time.Time      `json:"confirmed_at"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewOrder struct {
	CollectiveId      int             `json:"collective_id" binding:"required"`
	TierId            *int            `json:"tier_id"`
	PaymentMethodId   *int            `json:"payment_method_id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Currency          string          `json:"currency" binding:"required"`
	PlatformTipAmount decimal.Decimal `json:"platform_tip_amount"`
}

func (input *NewOrder) validate(ctx context.Context, fromCollectiveId int) (*Collective, error) {
	if !input.Amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}
	if input.PlatformTipAmount.IsNegative() {
		return nil, errors.New("platform tip cannot be negative")
	}

	collective, err := GetResource[Collective](ctx, input.CollectiveId)
	if err != nil {
		return nil, errors.New("collective not found")
	}
	if collective.HostCollectiveId == nil || collective.ApprovedAt == nil {
		return nil, errors.New("collective has no approved host and cannot receive contributions")
	}
	if collective.IsActive == nil || !*collective.IsActive {
		return nil, errors.New("collective is not active")
	}

	if input.TierId != nil {
		if err := utils.ValidateResourceId[Tier](ctx, input.CollectiveId, *input.TierId); err != nil {
			return nil, errors.New("tier not found")
		}
	}
	if input.PaymentMethodId != nil {
		if err := utils.ValidateResourceId[PaymentMethod](ctx, fromCollectiveId, *input.PaymentMethodId); err != nil {
			return nil, errors.New("payment method not found")
		}
	}
	return collective, nil
}

// CreateOrder records a pending contribution from the caller's individual
// collective. Nothing reaches the ledger until the order is confirmed.
func CreateOrder(ctx context.Context, input *NewOrder) (*Order, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	user, err := utils.FetchSingleModel[User](ctx, userId)
	if err != nil {
		return nil, err
	}
	if user.CollectiveId == 0 {
		return nil, errors.New("user has no individual collective")
	}

	collective, err := input.validate(ctx, user.CollectiveId)
	if err != nil {
		return nil, err
	}

	seqNo, err := utils.GetSequence[Order](ctx, input.CollectiveId)
	if err != nil {
		return nil, err
	}

	order := Order{
		SequenceNo:        seqNo,
		CollectiveId:      input.CollectiveId,
		FromCollectiveId:  user.CollectiveId,
		HostCollectiveId:  *collective.HostCollectiveId,
		UserId:            userId,
		TierId:            input.TierId,
		PaymentMethodId:   input.PaymentMethodId,
		Description:       input.Description,
		Amount:            input.Amount,
		Currency:          input.Currency,
		PlatformTipAmount: input.PlatformTipAmount,
		Status:            OrderStatusPending,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ConfirmOrder marks the order PAID and writes the outbox message that the
// posting worker turns into ledger entries. ProcessorFee comes from the
// payment processor's capture response.
func ConfirmOrder(ctx context.Context, id int, processorFee decimal.Decimal) (*Order, error) {

	order, err := utils.FetchSingleModel[Order](ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != OrderStatusPending {
		return nil, errors.New("only pending orders can be confirmed")
	}
	if processorFee.IsNegative() {
		return nil, errors.New("processor fee cannot be negative")
	}

	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"Status":       OrderStatusPaid,
			"ProcessorFee": processorFee,
			"ConfirmedAt":  now,
		}).Error; err != nil {
			return err
		}
		return PublishToLedger(ctx, tx, order.HostCollectiveId, now, order.ID,
			LedgerReferenceTypeOrder, order, nil, PubSubMessageActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func CancelOrder(ctx context.Context, id int) (*Order, error) {

	order, err := utils.FetchSingleModel[Order](ctx, id)
	if err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	if order.UserId != userId {
		if err := IsAdminOfCollective(ctx, order.CollectiveId); err != nil {
			return nil, err
		}
	}
	if order.Status != OrderStatusPending {
		return nil, errors.New("only pending orders can be canceled")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&order).Updates(map[string]interface{}{
		"Status": OrderStatusCanceled,
	}).Error
	if err != nil {
		return nil, err
	}
	return order, nil
}

// RefundOrder marks a paid order REFUNDED and enqueues the reversal. The
// worker inserts reversed ledger entries and offsets any settlement.
func RefundOrder(ctx context.Context, id int) (*Order, error) {

	order, err := utils.FetchSingleModel[Order](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := IsAdminOfCollective(ctx, order.HostCollectiveId); err != nil {
		return nil, err
	}
	if order.Status != OrderStatusPaid {
		return nil, errors.New("only paid orders can be refunded")
	}

	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"Status": OrderStatusRefunded,
		}).Error; err != nil {
			return err
		}
		return PublishToLedger(ctx, tx, order.HostCollectiveId, now, order.ID,
			LedgerReferenceTypeRefund, order, nil, PubSubMessageActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetOrderStatus is for the posting worker, not the API surface.
func SetOrderStatus(tx *gorm.DB, orderId int, status OrderStatus) error {
	return tx.Model(&Order{ID: orderId}).Updates(map[string]interface{}{
		"Status": status,
	}).Error
}

func GetOrder(ctx context.Context, id int) (*Order, error) {
	return utils.FetchSingleModel[Order](ctx, id)
}

func GetOrders(ctx context.Context, collectiveId int, status *OrderStatus) ([]*Order, error) {

	db := config.GetDB()
	var results []*Order

	fieldNames, err := utils.GetQueryFields(ctx, &Order{})
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

type OrdersConnection struct {
	Edges    []*OrdersEdge `json:"edges"`
	PageInfo *PageInfo     `json:"pageInfo"`
}

type OrdersEdge Edge[Order]

func (obj Order) GetId() int {
	return obj.ID
}

func (o Order) GetCursor() string {
	return o.CreatedAt.String()
}

func PaginateOrders(ctx context.Context,
	collectiveId int,
	limit *int,
	after *string,
	status *OrderStatus,
) (*OrdersConnection, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if status != nil && *status != "" {
		dbCtx.Where("status = ?", *status)
	}

	edges, pageInfo, err := FetchPageCompositeCursor[Order](dbCtx, *limit, after, "created_at", "<")
	if err != nil {
		return nil, err
	}
	var connection OrdersConnection
	connection.PageInfo = pageInfo
	for _, edge := range edges {
		orderEdge := OrdersEdge(edge)
		connection.Edges = append(connection.Edges, &orderEdge)
	}

	return &connection, err
}
