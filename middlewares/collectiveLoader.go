package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type collectiveReader struct {
	db *gorm.DB
}

func (r *collectiveReader) getCollectives(ctx context.Context, ids []int) []*dataloader.Result[*models.Collective] {
	var results []models.Collective

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Collective](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

// GetCollective returns a single collective by id efficiently
func GetCollective(ctx context.Context, id int) (*models.Collective, error) {
	loaders := For(ctx)
	return loaders.CollectiveLoader.Load(ctx, id)()
}

// GetCollectives returns many collectives by ids efficiently
func GetCollectives(ctx context.Context, ids []int) ([]*models.Collective, []error) {
	loaders := For(ctx)
	return loaders.CollectiveLoader.LoadMany(ctx, ids)()
}
