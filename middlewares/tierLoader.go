package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type tierReader struct {
	db *gorm.DB
}

func (r *tierReader) getTiers(ctx context.Context, ids []int) []*dataloader.Result[*models.Tier] {
	var results []models.Tier

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Tier](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetTier(ctx context.Context, id int) (*models.Tier, error) {
	loaders := For(ctx)
	return loaders.TierLoader.Load(ctx, id)()
}

type tierByCollectiveReader struct {
	db *gorm.DB
}

func (r *tierByCollectiveReader) getTiersByCollective(ctx context.Context, collectiveIds []int) []*dataloader.Result[[]*models.Tier] {
	var results []models.Tier

	err := r.db.WithContext(ctx).Where("collective_id IN ?", collectiveIds).
		Order("amount").Find(&results).Error
	if err != nil {
		return handleError[[]*models.Tier](len(collectiveIds), err)
	}
	return generateLoaderArrayResults(results, collectiveIds)
}

func GetCollectiveTiers(ctx context.Context, collectiveId int) ([]*models.Tier, error) {
	loaders := For(ctx)
	return loaders.tierByCollectiveLoader.Load(ctx, collectiveId)()
}
