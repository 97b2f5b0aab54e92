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

const invitationLifespan = 30 * 24 * time.Hour

type MemberInvitation struct {
	ID           int                    `gorm:"primary_key" json:"id"`
	CollectiveId int                    `gorm:"not null;index" json:"collective_id" binding:"required"`
	UserId       int                    `gorm:"not null;index" json:"user_id" binding:"required"`
	Role         MemberRole             `gorm:"type:enum('BACKER','MEMBER','ADMIN','ACCOUNTANT','HOST');not null" json:"role" binding:"required"`
	Description  string                 `gorm:"size:255" json:"description"`
	Status       MemberInvitationStatus `gorm:"type:enum('PENDING','ACCEPTED','DECLINED');default:'PENDING';not null;index" json:"status"`
	ExpiresAt    time.Time              `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMemberInvitation struct {
	CollectiveId int        `json:"collective_id" validate:"required,gt=0"`
	UserId       int        `json:"user_id" validate:"required,gt=0"`
	Role         MemberRole `json:"role" validate:"required"`
	Description  string     `json:"description" validate:"max=255"`
}

func (input *NewMemberInvitation) validate(ctx context.Context) error {
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

	count, err = utils.ResourceCountWhere[MemberInvitation](ctx, input.CollectiveId,
		"user_id = ? AND status = ? AND expires_at > ?", input.UserId, MemberInvitationStatusPending, time.Now().UTC())
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("user already has a pending invitation")
	}
	return nil
}

func CreateMemberInvitation(ctx context.Context, input *NewMemberInvitation) (*MemberInvitation, error) {

	if err := IsAdminOfCollective(ctx, input.CollectiveId); err != nil {
		return nil, err
	}
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	invitation := MemberInvitation{
		CollectiveId: input.CollectiveId,
		UserId:       input.UserId,
		Role:         input.Role,
		Description:  input.Description,
		Status:       MemberInvitationStatusPending,
		ExpiresAt:    time.Now().UTC().Add(invitationLifespan),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// fetch a pending invitation addressed to the caller
func fetchOwnPendingInvitation(ctx context.Context, id int) (*MemberInvitation, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	invitation, err := utils.FetchSingleModel[MemberInvitation](ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation.UserId != userId {
		return nil, errors.New("invitation is addressed to another user")
	}
	if invitation.Status != MemberInvitationStatusPending {
		return nil, errors.New("invitation is no longer pending")
	}
	if time.Now().UTC().After(invitation.ExpiresAt) {
		return nil, errors.New("invitation has expired")
	}
	return invitation, nil
}

// AcceptMemberInvitation creates the membership and closes the invitation in
// one DB transaction.
func AcceptMemberInvitation(ctx context.Context, id int) (*Member, error) {

	invitation, err := fetchOwnPendingInvitation(ctx, id)
	if err != nil {
		return nil, err
	}

	member := Member{
		CollectiveId: invitation.CollectiveId,
		UserId:       invitation.UserId,
		Role:         invitation.Role,
		Description:  invitation.Description,
		Since:        time.Now().UTC(),
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Member{}).
			Where("collective_id = ? AND user_id = ?", invitation.CollectiveId, invitation.UserId).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("user is already a member of the collective")
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		if err := tx.Model(&invitation).Updates(map[string]interface{}{
			"Status": MemberInvitationStatusAccepted,
		}).Error; err != nil {
			return err
		}
		return SaveActivityCreate(tx.WithContext(ctx), member.ID, &member, "invitation accepted")
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func DeclineMemberInvitation(ctx context.Context, id int) (*MemberInvitation, error) {

	invitation, err := fetchOwnPendingInvitation(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&invitation).Updates(map[string]interface{}{
		"Status": MemberInvitationStatusDeclined,
	}).Error
	if err != nil {
		return nil, err
	}
	return invitation, nil
}

func GetMemberInvitations(ctx context.Context, collectiveId int) ([]*MemberInvitation, error) {

	if err := IsAdminOfCollective(ctx, collectiveId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var results []*MemberInvitation
	err := db.WithContext(ctx).
		Where("collective_id = ? AND status = ?", collectiveId, MemberInvitationStatusPending).
		Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
