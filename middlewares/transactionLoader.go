package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type transactionByOrderReader struct {
	db *gorm.DB
}

func (r *transactionByOrderReader) getTransactionsByOrder(ctx context.Context, orderIds []int) []*dataloader.Result[[]*models.Transaction] {
	var results []models.Transaction

	err := r.db.WithContext(ctx).Where("order_id IN ?", orderIds).
		Order("id").Find(&results).Error
	if err != nil {
		return handleError[[]*models.Transaction](len(orderIds), err)
	}
	return generateLoaderArrayResults(results, orderIds)
}

// GetOrderTransactions returns an order's ledger entries efficiently
func GetOrderTransactions(ctx context.Context, orderId int) ([]*models.Transaction, error) {
	loaders := For(ctx)
	return loaders.transactionByOrderLoader.Load(ctx, orderId)()
}
