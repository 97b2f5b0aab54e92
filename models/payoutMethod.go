package models

import (
	"context"
	"errors"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
)

// PayoutMethod is where an expense gets paid out to: bank account, PayPal,
// or another collective's balance. Details stay an opaque JSON document.
type PayoutMethod struct {
	ID           int       `gorm:"primary_key" json:"id"`
	CollectiveId int       `gorm:"not null;index" json:"collective_id" binding:"required"`
	Name         string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Service      string    `gorm:"size:20;not null" json:"service" binding:"required"`
	Details      string    `gorm:"type:text" json:"details"`
	Currency     string    `gorm:"size:3;not null" json:"currency"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPayoutMethod struct {
	CollectiveId int    `json:"collective_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Service      string `json:"service" binding:"required"`
	Details      string `json:"details"`
	Currency     string `json:"currency" binding:"required"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewPayoutMethod) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[PayoutMethod](ctx, input.CollectiveId, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreatePayoutMethod(ctx context.Context, input *NewPayoutMethod) (*PayoutMethod, error) {

	db := config.GetDB()

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	payoutMethod := PayoutMethod{
		CollectiveId: input.CollectiveId,
		Name:         input.Name,
		Service:      input.Service,
		Details:      input.Details,
		Currency:     input.Currency,
	}

	err := db.WithContext(ctx).Create(&payoutMethod).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisList[PayoutMethod](input.CollectiveId); err != nil {
		return nil, err
	}

	return &payoutMethod, nil
}

func UpdatePayoutMethod(ctx context.Context, id int, input *NewPayoutMethod) (*PayoutMethod, error) {

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	payoutMethod, err := utils.FetchModel[PayoutMethod](ctx, input.CollectiveId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&payoutMethod).Updates(map[string]interface{}{
		"Name":    input.Name,
		"Details": input.Details,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := RemoveRedisBoth(*payoutMethod); err != nil {
		return nil, err
	}
	return payoutMethod, nil
}

func DeletePayoutMethod(ctx context.Context, collectiveId int, id int) (*PayoutMethod, error) {

	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}

	result, err := utils.FetchModel[PayoutMethod](ctx, collectiveId, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Expense](ctx, 0,
		"payout_method_id = ? AND status IN ?", id, []ExpenseStatus{ExpenseStatusPending, ExpenseStatusApproved})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("payout method has open expenses and cannot be deleted")
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

func GetPayoutMethod(ctx context.Context, id int) (*PayoutMethod, error) {
	return GetResource[PayoutMethod](ctx, id)
}

func GetPayoutMethods(ctx context.Context, collectiveId int) ([]*PayoutMethod, error) {

	db := config.GetDB()
	var results []*PayoutMethod

	fieldNames, err := utils.GetQueryFields(ctx, &PayoutMethod{})
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
