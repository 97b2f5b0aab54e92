package models

import (
	"context"
	"errors"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
)

// PaymentMethod is how a contributor pays: card on file, bank transfer,
// collective balance. The processor token is opaque to the platform.
type PaymentMethod struct {
	ID             int       `gorm:"primary_key" json:"id"`
	CollectiveId   int       `gorm:"not null;index" json:"collective_id" binding:"required"`
	Name           string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Service        string    `gorm:"size:20;not null" json:"service" binding:"required"`
	ProcessorToken *string   `gorm:"size:255" json:"processor_token"`
	Last4          *string   `gorm:"size:4" json:"last4"`
	Currency       string    `gorm:"size:3;not null" json:"currency"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsActive       *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPaymentMethod struct {
	CollectiveId   int        `json:"collective_id" binding:"required"`
	Name           string     `json:"name" binding:"required"`
	Service        string     `json:"service" binding:"required"`
	ProcessorToken *string    `json:"processor_token"`
	Last4          *string    `json:"last4"`
	Currency       string     `json:"currency" binding:"required"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewPaymentMethod) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[PaymentMethod](ctx, input.CollectiveId, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreatePaymentMethod(ctx context.Context, input *NewPaymentMethod) (*PaymentMethod, error) {

	db := config.GetDB()

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	paymentMethod := PaymentMethod{
		CollectiveId:   input.CollectiveId,
		Name:           input.Name,
		Service:        input.Service,
		ProcessorToken: input.ProcessorToken,
		Last4:          input.Last4,
		Currency:       input.Currency,
		ExpiresAt:      input.ExpiresAt,
	}

	err := db.WithContext(ctx).Create(&paymentMethod).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisList[PaymentMethod](input.CollectiveId); err != nil {
		return nil, err
	}

	return &paymentMethod, nil
}

func UpdatePaymentMethod(ctx context.Context, id int, input *NewPaymentMethod) (*PaymentMethod, error) {

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	paymentMethod, err := utils.FetchModel[PaymentMethod](ctx, input.CollectiveId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&paymentMethod).Updates(map[string]interface{}{
		"Name":      input.Name,
		"Last4":     input.Last4,
		"ExpiresAt": input.ExpiresAt,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := RemoveRedisBoth(*paymentMethod); err != nil {
		return nil, err
	}
	return paymentMethod, nil
}

func DeletePaymentMethod(ctx context.Context, collectiveId int, id int) (*PaymentMethod, error) {

	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}

	result, err := utils.FetchModel[PaymentMethod](ctx, collectiveId, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Order](ctx, 0, "payment_method_id = ? AND status = ?", id, OrderStatusPending)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("payment method has pending orders and cannot be deleted")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	if err := RemoveRedisBoth(*result); err != nil {
		return nil, err
	}
	return result, nil
}

func GetPaymentMethod(ctx context.Context, id int) (*PaymentMethod, error) {
	return GetResource[PaymentMethod](ctx, id)
}

func GetPaymentMethods(ctx context.Context, collectiveId int) ([]*PaymentMethod, error) {

	db := config.GetDB()
	var results []*PaymentMethod

	fieldNames, err := utils.GetQueryFields(ctx, &PaymentMethod{})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Where("collective_id = ?", collectiveId).
		Select(fieldNames).Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
