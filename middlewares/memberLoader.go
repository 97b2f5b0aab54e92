package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type memberReader struct {
	db *gorm.DB
}

func (r *memberReader) getMembers(ctx context.Context, ids []int) []*dataloader.Result[*models.Member] {
	var results []models.Member

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Member](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetMember(ctx context.Context, id int) (*models.Member, error) {
	loaders := For(ctx)
	return loaders.MemberLoader.Load(ctx, id)()
}

type memberByCollectiveReader struct {
	db *gorm.DB
}

func (r *memberByCollectiveReader) getMembersByCollective(ctx context.Context, collectiveIds []int) []*dataloader.Result[[]*models.Member] {
	var results []models.Member

	err := r.db.WithContext(ctx).Where("collective_id IN ?", collectiveIds).
		Order("since").Find(&results).Error
	if err != nil {
		return handleError[[]*models.Member](len(collectiveIds), err)
	}
	return generateLoaderArrayResults(results, collectiveIds)
}

// GetCollectiveMembers returns a collective's members efficiently
func GetCollectiveMembers(ctx context.Context, collectiveId int) ([]*models.Member, error) {
	loaders := For(ctx)
	return loaders.memberByCollectiveLoader.Load(ctx, collectiveId)()
}
