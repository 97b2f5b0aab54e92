package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type orderReader struct {
	db *gorm.DB
}

func (r *orderReader) getOrders(ctx context.Context, ids []int) []*dataloader.Result[*models.Order] {
	var results []models.Order

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Order](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetOrder(ctx context.Context, id int) (*models.Order, error) {
	loaders := For(ctx)
	return loaders.OrderLoader.Load(ctx, id)()
}
