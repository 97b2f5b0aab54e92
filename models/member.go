package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Member binds a user to a collective with a role. One row per
// (collective, user).
type Member struct {
	ID           int        `gorm:"primary_key" json:"id"`
	CollectiveId int        `gorm:"not null;index:uniq_member,unique" json:"collective_id" binding:"required"`
	UserId       int        `gorm:"not null;index:uniq_member,unique;index" json:"user_id" binding:"required"`
	Role         MemberRole `gorm:"type:enum('BACKER','MEMBER','ADMIN','ACCOUNTANT','HOST');not null" json:"role" binding:"required"`
	Description  string     `gorm:"size:255" json:"description"`
	Since        time.Time  `gorm:"not null" json:"since"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMember struct {
	CollectiveId int        `json:"collective_id" validate:"required,gt=0"`
	UserId       int        `json:"user_id" validate:"required,gt=0"`
	Role         MemberRole `json:"role" validate:"required"`
	Description  string     `json:"description" validate:"max=255"`
	Since        *time.Time `json:"since"`
}

type EditMemberInput struct {
	Role        *MemberRole `json:"role"`
	Description *string     `json:"description" validate:"omitempty,max=255"`
	Since       *time.Time  `json:"since"`
}

// IsAdminOfCollective checks the caller against the members table. Platform
// admins pass every collective.
func IsAdminOfCollective(ctx context.Context, collectiveId int) error {
	if isAdmin, ok := utils.GetIsAdminFromContext(ctx); ok && isAdmin {
		return nil
	}

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return errors.New("user id is required")
	}

	db := config.GetDB()
	var count int64
	err := db.WithContext(ctx).Model(&Member{}).
		Where("collective_id = ? AND user_id = ? AND role = ?", collectiveId, userId, MemberRoleAdmin).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count <= 0 {
		return errors.New("caller is not an admin of the collective")
	}
	return nil
}

func adminCount(tx *gorm.DB, collectiveId int) (int64, error) {
	var count int64
	err := tx.Model(&Member{}).
		Where("collective_id = ? AND role = ?", collectiveId, MemberRoleAdmin).
		Count(&count).Error
	return count, err
}

// validate input for create. Duplicate membership and dangling references
// are rejected here so the resolver stays glue.
func (input *NewMember) validate(ctx context.Context) error {
	if err := validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("validation failed: %v", utils.ProcessValidationErrors(verrs))
		}
		return err
	}

	if err := utils.ValidateResourceId[Collective](ctx, 0, input.CollectiveId); err != nil {
		return errors.New("collective not found")
	}
	if err := utils.ValidateResourceId[User](ctx, 0, input.UserId); err != nil {
		return errors.New("user not found")
	}

	count, err := utils.ResourceCountWhere[Member](ctx, input.CollectiveId, "user_id = ?", input.UserId)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("user is already a member of the collective")
	}
	return nil
}

func CreateMember(ctx context.Context, input *NewMember) (*Member, error) {

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	since := time.Now().UTC()
	if input.Since != nil {
		since = *input.Since
	}

	member := Member{
		CollectiveId: input.CollectiveId,
		UserId:       input.UserId,
		Role:         input.Role,
		Description:  input.Description,
		Since:        since,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return SaveActivityCreate(tx.WithContext(ctx), member.ID, &member, "member added")
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func EditMember(ctx context.Context, id int, input *EditMemberInput) (*Member, error) {

	if err := validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return nil, fmt.Errorf("validation failed: %v", utils.ProcessValidationErrors(verrs))
		}
		return nil, err
	}

	member, err := utils.FetchSingleModel[Member](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := IsAdminOfCollective(ctx, member.CollectiveId); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Role != nil {
		updates["Role"] = *input.Role
	}
	if input.Description != nil {
		updates["Description"] = *input.Description
	}
	if input.Since != nil {
		updates["Since"] = *input.Since
	}
	if len(updates) == 0 {
		return member, nil
	}

	before := *member

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// demoting the only admin would lock the collective
		if input.Role != nil && member.Role == MemberRoleAdmin && *input.Role != MemberRoleAdmin {
			count, err := adminCount(tx, member.CollectiveId)
			if err != nil {
				return err
			}
			if count <= 1 {
				return errors.New("cannot demote the only admin of the collective")
			}
		}
		if err := tx.Model(&member).Updates(updates).Error; err != nil {
			return err
		}
		return SaveActivityUpdate(tx.WithContext(ctx), member.ID, &before, "member edited")
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func RemoveMember(ctx context.Context, id int) (*Member, error) {

	member, err := utils.FetchSingleModel[Member](ctx, id)
	if err != nil {
		return nil, err
	}

	// an admin may remove anyone; a user may remove their own membership
	userId, _ := utils.GetUserIdFromContext(ctx)
	if member.UserId != userId {
		if err := IsAdminOfCollective(ctx, member.CollectiveId); err != nil {
			return nil, err
		}
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if member.Role == MemberRoleAdmin {
			count, err := adminCount(tx, member.CollectiveId)
			if err != nil {
				return err
			}
			if count <= 1 {
				return errors.New("cannot remove the only admin of the collective")
			}
		}
		if err := tx.Delete(&member).Error; err != nil {
			return err
		}
		return SaveActivityDelete(tx.WithContext(ctx), member.ID, member, "member removed")
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func GetMember(ctx context.Context, id int) (*Member, error) {
	return utils.FetchSingleModel[Member](ctx, id)
}

func GetMembers(ctx context.Context, collectiveId int, role *MemberRole) ([]*Member, error) {

	db := config.GetDB()
	var results []*Member

	fieldNames, err := utils.GetQueryFields(ctx, &Member{})
	if err != nil {
		return nil, err
	}

	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if role != nil && *role != "" {
		dbCtx = dbCtx.Where("role = ?", *role)
	}
	err = dbCtx.Select(fieldNames).Order("since").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetMemberships lists the caller's memberships across collectives.
func GetMemberships(ctx context.Context) ([]*Member, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var results []*Member
	err := db.WithContext(ctx).Where("user_id = ?", userId).Order("since").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
