package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type settlementByExpenseReader struct {
	db *gorm.DB
}

func (r *settlementByExpenseReader) getSettlementsByExpense(ctx context.Context, expenseIds []int) []*dataloader.Result[[]*models.TransactionSettlement] {
	var results []models.TransactionSettlement

	err := r.db.WithContext(ctx).Where("expense_id IN ?", expenseIds).
		Order("id").Find(&results).Error
	if err != nil {
		return handleError[[]*models.TransactionSettlement](len(expenseIds), err)
	}
	return generateLoaderArrayResults(results, expenseIds)
}

// GetExpenseSettlements returns the settlements attached to a settlement expense
func GetExpenseSettlements(ctx context.Context, expenseId int) ([]*models.TransactionSettlement, error) {
	loaders := For(ctx)
	return loaders.settlementByExpenseLoader.Load(ctx, expenseId)()
}
