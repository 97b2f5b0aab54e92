package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlatformCollectiveId is the seeded collective representing the platform
// itself. Platform tips and host-fee shares credit this collective.
const PlatformCollectiveId = 1

// shared input validator for the models package
var validate = validator.New()

type Collective struct {
	ID               int            `gorm:"primary_key" json:"id"`
	CollectiveType   CollectiveType `gorm:"type:enum('COLLECTIVE','ORGANIZATION','INDIVIDUAL','FUND','PROJECT','EVENT');default:'COLLECTIVE';not null" json:"collective_type"`
	Name             string         `gorm:"size:255;not null" json:"name" binding:"required"`
	Slug             string         `gorm:"size:100;not null;unique" json:"slug" binding:"required"`
	Description      string         `gorm:"type:text" json:"description"`
	Currency         string         `gorm:"size:3;not null;default:'USD'" json:"currency"`
	HostCollectiveId *int           `gorm:"index" json:"host_collective_id"`
	ApprovedAt       *time.Time     `json:"approved_at"`
	IsHost           *bool          `gorm:"not null;default:false" json:"is_host"`
	// HostFeePercent only matters on hosts: the fee they take on
	// contributions to their hosted collectives.
	HostFeePercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"host_fee_percent"`
	IsActive       *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCollective struct {
	CollectiveType CollectiveType `json:"collective_type"`
	Name           string         `json:"name" validate:"required,min=2,max=255"`
	Slug           string         `json:"slug" validate:"required"`
	Description    string         `json:"description"`
	Currency       string         `json:"currency" validate:"required,len=3"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewCollective) validate(ctx context.Context, id int) error {
	if err := validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("validation failed: %v", utils.ProcessValidationErrors(verrs))
		}
		return err
	}

	input.Slug = strings.ToLower(strings.TrimSpace(input.Slug))
	if !utils.IsValidSlug(input.Slug) {
		return errors.New("invalid slug")
	}
	// slug is platform-wide unique
	if err := utils.ValidateUnique[Collective](ctx, 0, "slug", input.Slug, id); err != nil {
		return err
	}
	return nil
}

func CreateCollective(ctx context.Context, input *NewCollective) (*Collective, error) {

	db := config.GetDB()

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	collectiveType := input.CollectiveType
	if collectiveType == "" {
		collectiveType = CollectiveTypeCollective
	}

	collective := Collective{
		CollectiveType: collectiveType,
		Name:           input.Name,
		Slug:           input.Slug,
		Description:    input.Description,
		Currency:       strings.ToUpper(input.Currency),
		IsHost:         utils.NewFalse(),
		IsActive:       utils.NewTrue(),
	}

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&collective).Error; err != nil {
			return err
		}
		// creator becomes the first admin
		member := Member{
			CollectiveId: collective.ID,
			UserId:       userId,
			Role:         MemberRoleAdmin,
			Since:        time.Now().UTC(),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return &collective, nil
}

func UpdateCollective(ctx context.Context, id int, input *NewCollective) (*Collective, error) {

	if err := IsAdminOfCollective(ctx, id); err != nil {
		return nil, err
	}
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	collective, err := utils.FetchSingleModel[Collective](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&collective).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Slug":        input.Slug,
		"Description": input.Description,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Collective](id); err != nil {
		return nil, err
	}
	return collective, nil
}

// DeleteCollective refuses once the collective has ledger activity; the
// ledger is append-only and orphaned entries are worse than a dead slug.
func DeleteCollective(ctx context.Context, id int) (*Collective, error) {

	if err := IsAdminOfCollective(ctx, id); err != nil {
		return nil, err
	}

	collective, err := utils.FetchSingleModel[Collective](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&Transaction{}).
		Where("collective_id = ? OR from_collective_id = ?", id, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("collective has ledger activity and cannot be deleted")
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collective_id = ?", id).Delete(&Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&collective).Error
	})
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Collective](id); err != nil {
		return nil, err
	}
	return collective, nil
}

func GetCollective(ctx context.Context, id int) (*Collective, error) {
	return utils.FetchSingleModel[Collective](ctx, id)
}

func GetCollectiveBySlug(ctx context.Context, slug string) (*Collective, error) {

	db := config.GetDB()
	var result Collective

	err := db.WithContext(ctx).Where("slug = ?", strings.ToLower(slug)).First(&result).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &result, nil
}

func GetCollectives(ctx context.Context, name *string, collectiveType *CollectiveType, hostCollectiveId *int) ([]*Collective, error) {

	db := config.GetDB()
	var results []*Collective

	fieldNames, err := utils.GetQueryFields(ctx, &Collective{})
	if err != nil {
		return nil, err
	}

	dbCtx := db.WithContext(ctx).Model(&Collective{})
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ? OR slug LIKE ?", "%"+*name+"%", "%"+*name+"%")
	}
	if collectiveType != nil && *collectiveType != "" {
		dbCtx = dbCtx.Where("collective_type = ?", *collectiveType)
	}
	if hostCollectiveId != nil && *hostCollectiveId > 0 {
		dbCtx = dbCtx.Where("host_collective_id = ?", *hostCollectiveId)
	}
	err = dbCtx.Select(fieldNames).Order("name").Limit(config.SearchLimit).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ApplyToHost records a pending host application. HostCollectiveId is set but
// ApprovedAt stays empty until the host approves.
func ApplyToHost(ctx context.Context, collectiveId int, hostCollectiveId int) (*Collective, error) {

	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}
	if collectiveId == hostCollectiveId {
		return nil, errors.New("collective cannot host itself")
	}

	host, err := utils.FetchSingleModel[Collective](ctx, hostCollectiveId)
	if err != nil {
		return nil, err
	}
	if host.IsHost == nil || !*host.IsHost {
		return nil, errors.New("collective is not a host")
	}

	collective, err := utils.FetchSingleModel[Collective](ctx, collectiveId)
	if err != nil {
		return nil, err
	}
	if collective.HostCollectiveId != nil && collective.ApprovedAt != nil {
		return nil, errors.New("collective already has a host")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&collective).Updates(map[string]interface{}{
		"HostCollectiveId": hostCollectiveId,
		"ApprovedAt":       nil,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Collective](collectiveId); err != nil {
		return nil, err
	}
	return collective, nil
}

// SetHost approves a pending host application. Caller must be an admin of
// the HOST collective.
func SetHost(ctx context.Context, collectiveId int, hostCollectiveId int) (*Collective, error) {

	if err := IsAdminOfCollective(ctx, hostCollectiveId); err != nil {
		return nil, err
	}

	collective, err := utils.FetchSingleModel[Collective](ctx, collectiveId)
	if err != nil {
		return nil, err
	}
	if collective.HostCollectiveId == nil || *collective.HostCollectiveId != hostCollectiveId {
		return nil, errors.New("collective has not applied to this host")
	}
	if collective.ApprovedAt != nil {
		return nil, errors.New("host application already approved")
	}

	now := time.Now().UTC()
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&collective).Updates(map[string]interface{}{
			"ApprovedAt": now,
		}).Error; err != nil {
			return err
		}
		return SaveActivityUpdate(tx.WithContext(ctx), collective.ID, collective, "host application approved")
	})
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Collective](collectiveId); err != nil {
		return nil, err
	}
	return collective, nil
}

// ActivateAsHost flags a collective as a fiscal host. HostFeePercent is the
// fee the host takes on contributions to its hosted collectives.
func ActivateAsHost(ctx context.Context, collectiveId int, hostFeePercent decimal.Decimal) (*Collective, error) {

	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}
	if hostFeePercent.IsNegative() || hostFeePercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, errors.New("host fee percent must be between 0 and 100")
	}

	collective, err := utils.FetchSingleModel[Collective](ctx, collectiveId)
	if err != nil {
		return nil, err
	}
	if collective.HostCollectiveId != nil {
		return nil, errors.New("hosted collective cannot become a host")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&collective).Updates(map[string]interface{}{
		"IsHost":         true,
		"HostFeePercent": hostFeePercent,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Collective](collectiveId); err != nil {
		return nil, err
	}
	return collective, nil
}

// GetCollectiveBalances exposes the ledger SUM per currency.
func GetCollectiveBalances(ctx context.Context, collectiveId int) ([]*CollectiveBalanceRow, error) {
	if err := utils.ValidateResourceId[Collective](ctx, 0, collectiveId); err != nil {
		return nil, err
	}
	return CollectiveBalance(ctx, collectiveId)
}
