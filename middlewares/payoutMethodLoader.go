package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type payoutMethodReader struct {
	db *gorm.DB
}

func (r *payoutMethodReader) getPayoutMethods(ctx context.Context, ids []int) []*dataloader.Result[*models.PayoutMethod] {
	var results []models.PayoutMethod

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.PayoutMethod](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetPayoutMethod(ctx context.Context, id int) (*models.PayoutMethod, error) {
	loaders := For(ctx)
	return loaders.PayoutMethodLoader.Load(ctx, id)()
}
