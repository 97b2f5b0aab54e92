package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/models"
)

type expenseReader struct {
	db *gorm.DB
}

func (r *expenseReader) getExpenses(ctx context.Context, ids []int) []*dataloader.Result[*models.Expense] {
	var results []models.Expense

	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Expense](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	loaders := For(ctx)
	return loaders.ExpenseLoader.Load(ctx, id)()
}
