package models

import (
	"context"
	"errors"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/shopspring/decimal"
)

// Tier is a named contribution level of a collective with a suggested amount.
type Tier struct {
	ID           int             `gorm:"primary_key" json:"id"`
	CollectiveId int             `gorm:"not null;index" json:"collective_id" binding:"required"`
	Name         string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Description  string          `gorm:"size:255" json:"description"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency     string          `gorm:"size:3;not null" json:"currency"`
	Interval     *string         `gorm:"size:10" json:"interval"`
	IsActive     *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewTier struct {
	CollectiveId int             `json:"collective_id" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Interval     *string         `json:"interval"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewTier) validate(ctx context.Context, id int) error {
	if input.Amount.IsNegative() {
		return errors.New("amount cannot be negative")
	}
	// name unique within the collective
	if err := utils.ValidateUnique[Tier](ctx, input.CollectiveId, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreateTier(ctx context.Context, input *NewTier) (*Tier, error) {

	db := config.GetDB()

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	collective, err := GetResource[Collective](ctx, input.CollectiveId)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = collective.Currency
	}

	tier := Tier{
		CollectiveId: input.CollectiveId,
		Name:         input.Name,
		Description:  input.Description,
		Amount:       input.Amount,
		Currency:     currency,
		Interval:     input.Interval,
	}

	err = db.WithContext(ctx).Create(&tier).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisList[Tier](input.CollectiveId); err != nil {
		return nil, err
	}

	return &tier, nil
}

func UpdateTier(ctx context.Context, id int, input *NewTier) (*Tier, error) {

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	tier, err := utils.FetchModel[Tier](ctx, input.CollectiveId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&tier).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Description": input.Description,
		"Amount":      input.Amount,
		"Interval":    input.Interval,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := RemoveRedisBoth(*tier); err != nil {
		return nil, err
	}
	return tier, nil
}

func DeleteTier(ctx context.Context, collectiveId int, id int) (*Tier, error) {

	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}

	result, err := utils.FetchModel[Tier](ctx, collectiveId, id)
	if err != nil {
		return nil, err
	}

	// tiers referenced by orders stay for reporting
	count, err := utils.ResourceCountWhere[Order](ctx, collectiveId, "tier_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("tier has orders and cannot be deleted")
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

func GetTier(ctx context.Context, collectiveId int, id int) (*Tier, error) {
	return GetResource[Tier](ctx, id)
}

func GetTiers(ctx context.Context, collectiveId int) ([]*Tier, error) {

	db := config.GetDB()
	var results []*Tier

	fieldNames, err := utils.GetQueryFields(ctx, &Tier{})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Where("collective_id = ?", collectiveId).
		Select(fieldNames).Order("amount").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveTier(ctx context.Context, collectiveId int, id int, isActive bool) (*Tier, error) {
	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}
	return ToggleActiveModel[Tier](ctx, collectiveId, id, isActive)
}
