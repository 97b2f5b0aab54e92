package middlewares

import (
	"context"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap your data loaders to inject via middleware
type Loaders struct {
	CollectiveLoader    *dataloader.Loader[int, *models.Collective]
	UserLoader          *dataloader.Loader[int, *models.User]
	MemberLoader        *dataloader.Loader[int, *models.Member]
	TierLoader          *dataloader.Loader[int, *models.Tier]
	PaymentMethodLoader *dataloader.Loader[int, *models.PaymentMethod]
	PayoutMethodLoader  *dataloader.Loader[int, *models.PayoutMethod]
	OrderLoader         *dataloader.Loader[int, *models.Order]
	ExpenseLoader       *dataloader.Loader[int, *models.Expense]

	memberByCollectiveLoader  *dataloader.Loader[int, []*models.Member]
	tierByCollectiveLoader    *dataloader.Loader[int, []*models.Tier]
	transactionByOrderLoader  *dataloader.Loader[int, []*models.Transaction]
	settlementByExpenseLoader *dataloader.Loader[int, []*models.TransactionSettlement]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	// define the data loader
	collectiveReader := &collectiveReader{db: conn}
	userReader := &userReader{db: conn}
	memberReader := &memberReader{db: conn}
	tierReader := &tierReader{db: conn}
	paymentMethodReader := &paymentMethodReader{db: conn}
	payoutMethodReader := &payoutMethodReader{db: conn}
	orderReader := &orderReader{db: conn}
	expenseReader := &expenseReader{db: conn}
	memberByCollectiveReader := &memberByCollectiveReader{db: conn}
	tierByCollectiveReader := &tierByCollectiveReader{db: conn}
	transactionByOrderReader := &transactionByOrderReader{db: conn}
	settlementByExpenseReader := &settlementByExpenseReader{db: conn}

	return &Loaders{
		CollectiveLoader:    dataloader.NewBatchedLoader(collectiveReader.getCollectives, dataloader.WithWait[int, *models.Collective](time.Millisecond)),
		UserLoader:          dataloader.NewBatchedLoader(userReader.getUsers, dataloader.WithWait[int, *models.User](time.Millisecond)),
		MemberLoader:        dataloader.NewBatchedLoader(memberReader.getMembers, dataloader.WithWait[int, *models.Member](time.Millisecond)),
		TierLoader:          dataloader.NewBatchedLoader(tierReader.getTiers, dataloader.WithWait[int, *models.Tier](time.Millisecond)),
		PaymentMethodLoader: dataloader.NewBatchedLoader(paymentMethodReader.getPaymentMethods, dataloader.WithWait[int, *models.PaymentMethod](time.Millisecond)),
		PayoutMethodLoader:  dataloader.NewBatchedLoader(payoutMethodReader.getPayoutMethods, dataloader.WithWait[int, *models.PayoutMethod](time.Millisecond)),
		OrderLoader:         dataloader.NewBatchedLoader(orderReader.getOrders, dataloader.WithWait[int, *models.Order](time.Millisecond)),
		ExpenseLoader:       dataloader.NewBatchedLoader(expenseReader.getExpenses, dataloader.WithWait[int, *models.Expense](time.Millisecond)),

		memberByCollectiveLoader:  dataloader.NewBatchedLoader(memberByCollectiveReader.getMembersByCollective, dataloader.WithWait[int, []*models.Member](time.Millisecond)),
		tierByCollectiveLoader:    dataloader.NewBatchedLoader(tierByCollectiveReader.getTiersByCollective, dataloader.WithWait[int, []*models.Tier](time.Millisecond)),
		transactionByOrderLoader:  dataloader.NewBatchedLoader(transactionByOrderReader.getTransactionsByOrder, dataloader.WithWait[int, []*models.Transaction](time.Millisecond)),
		settlementByExpenseLoader: dataloader.NewBatchedLoader(settlementByExpenseReader.getSettlementsByExpense, dataloader.WithWait[int, []*models.TransactionSettlement](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), loadersKey, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results
// (T must be a struct)
func generateLoaderResults[T models.Data](results []T, ids []int) []*dataloader.Result[*T] {
	// generate resultMap from results
	resultMap := make(map[int]T)
	var resultZero T
	resultMap[0] = resultZero.GetDefault(0).(T)
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data := resultMap[id]
		if reflect.ValueOf(data).IsZero() {
			data = data.GetDefault(id).(T)
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &data})
	}
	return loaderResults
}

// T must be struct
// each id has many related results
func generateLoaderArrayResults[T models.RelatedData](results []T, referenceIds []int) (loaderResults []*dataloader.Result[[]*T]) {
	resultMap := make(map[int][]*T)
	for _, result := range results {
		// creating a new variable every turn, to avoid pointing to the adddress of result
		copy := result
		resultMap[result.GetReferenceId()] = append(resultMap[result.GetReferenceId()], &copy)
	}
	for _, id := range referenceIds {
		resultArray := resultMap[id]
		loaderResults = append(loaderResults, &dataloader.Result[[]*T]{Data: resultArray})
	}
	return loaderResults
}
