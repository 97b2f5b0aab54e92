package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type paymentMethodReader struct {
	db *gorm.DB
}

func (r *paymentMethodReader) getPaymentMethods(ctx context.Context, ids []int) []*dataloader.Result[*models.PaymentMethod] {
	var results []models.PaymentMethod

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.PaymentMethod](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetPaymentMethod(ctx context.Context, id int) (*models.PaymentMethod, error) {
	loaders := For(ctx)
	return loaders.PaymentMethodLoader.Load(ctx, id)()
}
