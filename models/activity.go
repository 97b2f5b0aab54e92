package models

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"gorm.io/gorm"
)

// Activity is the audit trail written alongside mutations.
type Activity struct {
	ID            int       `gorm:"primary_key" json:"id"`
	CollectiveId  int       `gorm:"index;not null" json:"collective_id"`
	ActionType    string    `gorm:"size:10;not null" json:"action_type" binding:"required"`
	Before        string    `gorm:"type:text" json:"before"`
	After         string    `gorm:"type:text" json:"after"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	ReferenceId   int       `gorm:"index" json:"reference_id"`
	ReferenceType string    `gorm:"size:255" json:"reference_type"`
	UserId        int       `gorm:"index;not null" json:"user_id"`
	UserName      string    `gorm:"size:100" json:"user_name"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func createActivity(tx *gorm.DB,
	actionType string,
	referenceId int,
	referenceType string,
	before interface{},
	after interface{},
	description string) (err error) {

	var activity Activity

	b, _ := json.Marshal(before)
	a, _ := json.Marshal(after)

	ctx := tx.Statement.Context
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return errors.New("user id is required")
	}
	userName, ok := utils.GetUserNameFromContext(ctx)
	if !ok {
		return errors.New("user name is required")
	}

	// collective scope comes from whichever side of the mutation carries it
	if scoped, ok := before.(CollectiveScoped); ok {
		activity.CollectiveId = scoped.GetCollectiveId()
	}
	if scoped, ok := after.(CollectiveScoped); ok {
		activity.CollectiveId = scoped.GetCollectiveId()
	}

	activity.ActionType = actionType
	activity.Before = string(b)
	activity.After = string(a)
	activity.Description = description
	activity.ReferenceId = referenceId
	activity.ReferenceType = referenceType
	activity.UserId = userId
	activity.UserName = userName

	err = tx.Create(&activity).Error
	return err
}

func SaveActivityCreate(tx *gorm.DB, id int, obj interface{}, description string) error {
	return createActivity(tx, "CREATE", id, tx.Statement.Table, nil, obj, description)
}

func SaveActivityUpdate(tx *gorm.DB, id int, currentValue interface{}, description string) error {

	var newValue = tx.Statement.Dest

	return createActivity(tx, "UPDATE", id, tx.Statement.Table, currentValue, newValue, description)
}

func SaveActivityDelete(tx *gorm.DB, id int, obj interface{}, description string) error {
	return createActivity(tx, "DELETE", id, tx.Statement.Table, obj, nil, description)
}

type ActivitiesConnection struct {
	Edges    []*ActivitiesEdge `json:"edges"`
	PageInfo *PageInfo         `json:"pageInfo"`
}

type ActivitiesEdge Edge[Activity]

func (obj Activity) GetId() int {
	return obj.ID
}

// activities paginate on id alone: the audit trail is append-only, so id
// order is insertion order and the cursor needs no tie-breaker
func (a Activity) GetCursor() string {
	return strconv.Itoa(a.ID)
}

func GetActivities(ctx context.Context, collectiveId int, referenceId *int, referenceType *string, userId *int) ([]*Activity, error) {

	db := config.GetDB()
	var results []*Activity

	fieldNames, err := utils.GetQueryFields(ctx, &Activity{})
	if err != nil {
		return nil, err
	}

	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if referenceId != nil && *referenceId > 0 {
		dbCtx = dbCtx.Where("reference_id = ?", referenceId)
	}
	if referenceType != nil && len(*referenceType) > 0 {
		dbCtx = dbCtx.Where("reference_type = ?", referenceType)
	}
	if userId != nil && *userId > 0 {
		dbCtx = dbCtx.Where("user_id = ?", userId)
	}
	err = dbCtx.Select(fieldNames).Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func PaginateActivities(ctx context.Context,
	collectiveId int,
	limit *int,
	after *string,
	referenceType *string,
	referenceId *int,
	userId *int,
	actionType *string,
) (*ActivitiesConnection, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("collective_id = ?", collectiveId)
	if referenceType != nil && *referenceType != "" {
		dbCtx.Where("reference_type = ?", *referenceType)
	}
	if referenceId != nil && *referenceId > 0 {
		dbCtx.Where("reference_id = ?", *referenceId)
	}
	if userId != nil && *userId > 0 {
		dbCtx.Where("user_id = ?", *userId)
	}
	if actionType != nil && *actionType != "" {
		dbCtx.Where("action_type = ?", *actionType)
	}

	edges, pageInfo, err := FetchPagePureCursor[Activity](dbCtx, *limit, after, "id", "<")
	if err != nil {
		return nil, err
	}
	var connection ActivitiesConnection
	connection.PageInfo = pageInfo
	for _, edge := range edges {
		activityEdge := ActivitiesEdge(edge)
		connection.Edges = append(connection.Edges, &activityEdge)
	}

	return &connection, err
}
