package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"
	"errors"
	"fmt"

	"github.com/collectivehq/platform_backend/middlewares"
	"github.com/collectivehq/platform_backend/models"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/shopspring/decimal"
)

// Host is the resolver for the host field.
func (r *collectiveResolver) Host(ctx context.Context, obj *models.Collective) (*models.Collective, error) {
	if obj.HostCollectiveId == nil {
		return nil, nil
	}
	return middlewares.GetCollective(ctx, *obj.HostCollectiveId)
}

// Members is the resolver for the members field.
func (r *collectiveResolver) Members(ctx context.Context, obj *models.Collective) ([]*models.Member, error) {
	return middlewares.GetCollectiveMembers(ctx, obj.ID)
}

// Tiers is the resolver for the tiers field.
func (r *collectiveResolver) Tiers(ctx context.Context, obj *models.Collective) ([]*models.Tier, error) {
	return middlewares.GetCollectiveTiers(ctx, obj.ID)
}

// Balances is the resolver for the balances field.
func (r *collectiveResolver) Balances(ctx context.Context, obj *models.Collective) ([]*models.CollectiveBalanceRow, error) {
	return models.CollectiveBalance(ctx, obj.ID)
}

// Collective is the resolver for the collective field.
func (r *expenseResolver) Collective(ctx context.Context, obj *models.Expense) (*models.Collective, error) {
	return middlewares.GetCollective(ctx, obj.CollectiveId)
}

// PayoutMethod is the resolver for the payoutMethod field.
func (r *expenseResolver) PayoutMethod(ctx context.Context, obj *models.Expense) (*models.PayoutMethod, error) {
	if obj.PayoutMethodId == nil {
		return nil, nil
	}
	return middlewares.GetPayoutMethod(ctx, *obj.PayoutMethodId)
}

// Settlements is the resolver for the settlements field.
func (r *expenseResolver) Settlements(ctx context.Context, obj *models.Expense) ([]*models.TransactionSettlement, error) {
	return middlewares.GetExpenseSettlements(ctx, obj.ID)
}

// User is the resolver for the user field.
func (r *memberResolver) User(ctx context.Context, obj *models.Member) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// Collective is the resolver for the collective field.
func (r *memberResolver) Collective(ctx context.Context, obj *models.Member) (*models.Collective, error) {
	return middlewares.GetCollective(ctx, obj.CollectiveId)
}

// User is the resolver for the user field.
func (r *memberInvitationResolver) User(ctx context.Context, obj *models.MemberInvitation) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// Collective is the resolver for the collective field.
func (r *memberInvitationResolver) Collective(ctx context.Context, obj *models.MemberInvitation) (*models.Collective, error) {
	return middlewares.GetCollective(ctx, obj.CollectiveId)
}

// Register is the resolver for the register field.
func (r *mutationResolver) Register(ctx context.Context, input models.NewUser) (*models.User, error) {
	return models.CreateUser(ctx, &input)
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, username string, password string) (*models.LoginInfo, error) {
	return models.Login(ctx, username, password)
}

// Logout is the resolver for the logout field.
func (r *mutationResolver) Logout(ctx context.Context) (bool, error) {
	return models.Logout(ctx)
}

// ChangePassword is the resolver for the changePassword field.
func (r *mutationResolver) ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*models.User, error) {
	return models.ChangePassword(ctx, oldPassword, newPassword)
}

// CreateCollective is the resolver for the createCollective field.
func (r *mutationResolver) CreateCollective(ctx context.Context, input models.NewCollective) (*models.Collective, error) {
	return models.CreateCollective(ctx, &input)
}

// UpdateCollective is the resolver for the updateCollective field.
func (r *mutationResolver) UpdateCollective(ctx context.Context, id int, input models.NewCollective) (*models.Collective, error) {
	return models.UpdateCollective(ctx, id, &input)
}

// DeleteCollective is the resolver for the deleteCollective field.
func (r *mutationResolver) DeleteCollective(ctx context.Context, id int) (*models.Collective, error) {
	return models.DeleteCollective(ctx, id)
}

// ApplyToHost is the resolver for the applyToHost field.
func (r *mutationResolver) ApplyToHost(ctx context.Context, collectiveID int, hostCollectiveID int) (*models.Collective, error) {
	return models.ApplyToHost(ctx, collectiveID, hostCollectiveID)
}

// SetHost is the resolver for the setHost field.
func (r *mutationResolver) SetHost(ctx context.Context, collectiveID int, hostCollectiveID int) (*models.Collective, error) {
	return models.SetHost(ctx, collectiveID, hostCollectiveID)
}

// ActivateAsHost is the resolver for the activateAsHost field.
func (r *mutationResolver) ActivateAsHost(ctx context.Context, collectiveID int, hostFeePercent decimal.Decimal) (*models.Collective, error) {
	return models.ActivateAsHost(ctx, collectiveID, hostFeePercent)
}

// CreateMember is the resolver for the createMember field.
func (r *mutationResolver) CreateMember(ctx context.Context, input models.NewMember) (*models.Member, error) {
	return models.CreateMember(ctx, &input)
}

// EditMember is the resolver for the editMember field.
func (r *mutationResolver) EditMember(ctx context.Context, id int, input models.EditMemberInput) (*models.Member, error) {
	return models.EditMember(ctx, id, &input)
}

// RemoveMember is the resolver for the removeMember field.
func (r *mutationResolver) RemoveMember(ctx context.Context, id int) (*models.Member, error) {
	return models.RemoveMember(ctx, id)
}

// CreateMemberInvitation is the resolver for the createMemberInvitation field.
func (r *mutationResolver) CreateMemberInvitation(ctx context.Context, input models.NewMemberInvitation) (*models.MemberInvitation, error) {
	return models.CreateMemberInvitation(ctx, &input)
}

// AcceptMemberInvitation is the resolver for the acceptMemberInvitation field.
func (r *mutationResolver) AcceptMemberInvitation(ctx context.Context, id int) (*models.Member, error) {
	return models.AcceptMemberInvitation(ctx, id)
}

// DeclineMemberInvitation is the resolver for the declineMemberInvitation field.
func (r *mutationResolver) DeclineMemberInvitation(ctx context.Context, id int) (*models.MemberInvitation, error) {
	return models.DeclineMemberInvitation(ctx, id)
}

// CreateTier is the resolver for the createTier field.
func (r *mutationResolver) CreateTier(ctx context.Context, input models.NewTier) (*models.Tier, error) {
	return models.CreateTier(ctx, &input)
}

// UpdateTier is the resolver for the updateTier field.
func (r *mutationResolver) UpdateTier(ctx context.Context, id int, input models.NewTier) (*models.Tier, error) {
	return models.UpdateTier(ctx, id, &input)
}

// DeleteTier is the resolver for the deleteTier field.
func (r *mutationResolver) DeleteTier(ctx context.Context, collectiveID int, id int) (*models.Tier, error) {
	return models.DeleteTier(ctx, collectiveID, id)
}

// ToggleActiveTier is the resolver for the toggleActiveTier field.
func (r *mutationResolver) ToggleActiveTier(ctx context.Context, collectiveID int, id int, isActive bool) (*models.Tier, error) {
	return models.ToggleActiveTier(ctx, collectiveID, id, isActive)
}

// CreatePaymentMethod is the resolver for the createPaymentMethod field.
func (r *mutationResolver) CreatePaymentMethod(ctx context.Context, input models.NewPaymentMethod) (*models.PaymentMethod, error) {
	return models.CreatePaymentMethod(ctx, &input)
}

// UpdatePaymentMethod is the resolver for the updatePaymentMethod field.
func (r *mutationResolver) UpdatePaymentMethod(ctx context.Context, id int, input models.NewPaymentMethod) (*models.PaymentMethod, error) {
	return models.UpdatePaymentMethod(ctx, id, &input)
}

// DeletePaymentMethod is the resolver for the deletePaymentMethod field.
func (r *mutationResolver) DeletePaymentMethod(ctx context.Context, collectiveID int, id int) (*models.PaymentMethod, error) {
	return models.DeletePaymentMethod(ctx, collectiveID, id)
}

// CreatePayoutMethod is the resolver for the createPayoutMethod field.
func (r *mutationResolver) CreatePayoutMethod(ctx context.Context, input models.NewPayoutMethod) (*models.PayoutMethod, error) {
	return models.CreatePayoutMethod(ctx, &input)
}

// UpdatePayoutMethod is the resolver for the updatePayoutMethod field.
func (r *mutationResolver) UpdatePayoutMethod(ctx context.Context, id int, input models.NewPayoutMethod) (*models.PayoutMethod, error) {
	return models.UpdatePayoutMethod(ctx, id, &input)
}

// DeletePayoutMethod is the resolver for the deletePayoutMethod field.
func (r *mutationResolver) DeletePayoutMethod(ctx context.Context, collectiveID int, id int) (*models.PayoutMethod, error) {
	return models.DeletePayoutMethod(ctx, collectiveID, id)
}

// CreateOrder is the resolver for the createOrder field.
func (r *mutationResolver) CreateOrder(ctx context.Context, input models.NewOrder) (*models.Order, error) {
	return models.CreateOrder(ctx, &input)
}

// ConfirmOrder is the resolver for the confirmOrder field.
func (r *mutationResolver) ConfirmOrder(ctx context.Context, id int, processorFee decimal.Decimal) (*models.Order, error) {
	return models.ConfirmOrder(ctx, id, processorFee)
}

// CancelOrder is the resolver for the cancelOrder field.
func (r *mutationResolver) CancelOrder(ctx context.Context, id int) (*models.Order, error) {
	return models.CancelOrder(ctx, id)
}

// RefundOrder is the resolver for the refundOrder field.
func (r *mutationResolver) RefundOrder(ctx context.Context, id int) (*models.Order, error) {
	return models.RefundOrder(ctx, id)
}

// CreateExpense is the resolver for the createExpense field.
func (r *mutationResolver) CreateExpense(ctx context.Context, input models.NewExpense) (*models.Expense, error) {
	return models.CreateExpense(ctx, &input)
}

// UpdateExpense is the resolver for the updateExpense field.
func (r *mutationResolver) UpdateExpense(ctx context.Context, id int, input models.NewExpense) (*models.Expense, error) {
	return models.UpdateExpense(ctx, id, &input)
}

// ApproveExpense is the resolver for the approveExpense field.
func (r *mutationResolver) ApproveExpense(ctx context.Context, id int) (*models.Expense, error) {
	return models.ApproveExpense(ctx, id)
}

// RejectExpense is the resolver for the rejectExpense field.
func (r *mutationResolver) RejectExpense(ctx context.Context, id int) (*models.Expense, error) {
	return models.RejectExpense(ctx, id)
}

// PayExpense is the resolver for the payExpense field.
func (r *mutationResolver) PayExpense(ctx context.Context, id int) (*models.Expense, error) {
	return models.PayExpense(ctx, id)
}

// MarkExpenseAsUnpaid is the resolver for the markExpenseAsUnpaid field.
func (r *mutationResolver) MarkExpenseAsUnpaid(ctx context.Context, id int) (*models.Expense, error) {
	return models.MarkExpenseAsUnpaid(ctx, id)
}

// DeleteExpense is the resolver for the deleteExpense field.
func (r *mutationResolver) DeleteExpense(ctx context.Context, id int) (*models.Expense, error) {
	return models.DeleteExpense(ctx, id)
}

// CreateSettlementExpenses is the resolver for the createSettlementExpenses field.
func (r *mutationResolver) CreateSettlementExpenses(ctx context.Context, hostCollectiveID int) ([]*models.Expense, error) {
	return models.CreateSettlementExpense(ctx, hostCollectiveID)
}

// Collective is the resolver for the collective field.
func (r *orderResolver) Collective(ctx context.Context, obj *models.Order) (*models.Collective, error) {
	return middlewares.GetCollective(ctx, obj.CollectiveId)
}

// FromCollective is the resolver for the fromCollective field.
func (r *orderResolver) FromCollective(ctx context.Context, obj *models.Order) (*models.Collective, error) {
	return middlewares.GetCollective(ctx, obj.FromCollectiveId)
}

// Tier is the resolver for the tier field.
func (r *orderResolver) Tier(ctx context.Context, obj *models.Order) (*models.Tier, error) {
	if obj.TierId == nil {
		return nil, nil
	}
	return middlewares.GetTier(ctx, *obj.TierId)
}

// PaymentMethod is the resolver for the paymentMethod field.
func (r *orderResolver) PaymentMethod(ctx context.Context, obj *models.Order) (*models.PaymentMethod, error) {
	if obj.PaymentMethodId == nil {
		return nil, nil
	}
	return middlewares.GetPaymentMethod(ctx, *obj.PaymentMethodId)
}

// Transactions is the resolver for the transactions field.
func (r *orderResolver) Transactions(ctx context.Context, obj *models.Order) ([]*models.Transaction, error) {
	return middlewares.GetOrderTransactions(ctx, obj.ID)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*models.User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("unauthorized")
	}
	return models.GetUser(ctx, userId)
}

// GetUser is the resolver for the getUser field.
func (r *queryResolver) GetUser(ctx context.Context, id int) (*models.User, error) {
	return models.GetUser(ctx, id)
}

// GetAllUsers is the resolver for the getAllUsers field.
func (r *queryResolver) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return models.GetAllUsers(ctx)
}

// GetCollective is the resolver for the getCollective field.
func (r *queryResolver) GetCollective(ctx context.Context, id int) (*models.Collective, error) {
	return models.GetCollective(ctx, id)
}

// GetCollectiveBySlug is the resolver for the getCollectiveBySlug field.
func (r *queryResolver) GetCollectiveBySlug(ctx context.Context, slug string) (*models.Collective, error) {
	return models.GetCollectiveBySlug(ctx, slug)
}

// GetCollectives is the resolver for the getCollectives field.
func (r *queryResolver) GetCollectives(ctx context.Context, name *string, collectiveType *models.CollectiveType, hostCollectiveID *int) ([]*models.Collective, error) {
	return models.GetCollectives(ctx, name, collectiveType, hostCollectiveID)
}

// GetCollectiveBalances is the resolver for the getCollectiveBalances field.
func (r *queryResolver) GetCollectiveBalances(ctx context.Context, collectiveID int) ([]*models.CollectiveBalanceRow, error) {
	return models.GetCollectiveBalances(ctx, collectiveID)
}

// GetMember is the resolver for the getMember field.
func (r *queryResolver) GetMember(ctx context.Context, id int) (*models.Member, error) {
	return models.GetMember(ctx, id)
}

// GetMembers is the resolver for the getMembers field.
func (r *queryResolver) GetMembers(ctx context.Context, collectiveID int, role *models.MemberRole) ([]*models.Member, error) {
	return models.GetMembers(ctx, collectiveID, role)
}

// GetMemberships is the resolver for the getMemberships field.
func (r *queryResolver) GetMemberships(ctx context.Context) ([]*models.Member, error) {
	return models.GetMemberships(ctx)
}

// GetMemberInvitations is the resolver for the getMemberInvitations field.
func (r *queryResolver) GetMemberInvitations(ctx context.Context, collectiveID int) ([]*models.MemberInvitation, error) {
	return models.GetMemberInvitations(ctx, collectiveID)
}

// GetTier is the resolver for the getTier field.
func (r *queryResolver) GetTier(ctx context.Context, collectiveID int, id int) (*models.Tier, error) {
	return models.GetTier(ctx, collectiveID, id)
}

// GetTiers is the resolver for the getTiers field.
func (r *queryResolver) GetTiers(ctx context.Context, collectiveID int) ([]*models.Tier, error) {
	return models.GetTiers(ctx, collectiveID)
}

// GetPaymentMethods is the resolver for the getPaymentMethods field.
func (r *queryResolver) GetPaymentMethods(ctx context.Context, collectiveID int) ([]*models.PaymentMethod, error) {
	return models.GetPaymentMethods(ctx, collectiveID)
}

// GetPayoutMethods is the resolver for the getPayoutMethods field.
func (r *queryResolver) GetPayoutMethods(ctx context.Context, collectiveID int) ([]*models.PayoutMethod, error) {
	return models.GetPayoutMethods(ctx, collectiveID)
}

// GetOrder is the resolver for the getOrder field.
func (r *queryResolver) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return models.GetOrder(ctx, id)
}

// GetOrders is the resolver for the getOrders field.
func (r *queryResolver) GetOrders(ctx context.Context, collectiveID int, status *models.OrderStatus) ([]*models.Order, error) {
	return models.GetOrders(ctx, collectiveID, status)
}

// PaginateOrders is the resolver for the paginateOrders field.
func (r *queryResolver) PaginateOrders(ctx context.Context, collectiveID int, limit int, after *string, status *models.OrderStatus) (*models.OrdersConnection, error) {
	return models.PaginateOrders(ctx, collectiveID, &limit, after, status)
}

// GetExpense is the resolver for the getExpense field.
func (r *queryResolver) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	return models.GetExpense(ctx, id)
}

// GetExpenses is the resolver for the getExpenses field.
func (r *queryResolver) GetExpenses(ctx context.Context, collectiveID int, status *models.ExpenseStatus) ([]*models.Expense, error) {
	return models.GetExpenses(ctx, collectiveID, status)
}

// PaginateExpenses is the resolver for the paginateExpenses field.
func (r *queryResolver) PaginateExpenses(ctx context.Context, collectiveID int, limit int, after *string, status *models.ExpenseStatus, expenseType *models.ExpenseType) (*models.ExpensesConnection, error) {
	return models.PaginateExpenses(ctx, collectiveID, &limit, after, status, expenseType)
}

// PaginateTransactions is the resolver for the paginateTransactions field.
func (r *queryResolver) PaginateTransactions(ctx context.Context, collectiveID int, limit int, after *string, kind *models.TransactionKind, transactionType *models.TransactionType) (*models.TransactionsConnection, error) {
	return models.PaginateTransactions(ctx, collectiveID, &limit, after, kind, transactionType)
}

// PaginateSettlements is the resolver for the paginateSettlements field.
func (r *queryResolver) PaginateSettlements(ctx context.Context, hostCollectiveID int, limit int, after *string, status *models.SettlementStatus) (*models.SettlementsConnection, error) {
	return models.PaginateSettlements(ctx, hostCollectiveID, &limit, after, status)
}

// GetHostsWithOwedSettlements is the resolver for the getHostsWithOwedSettlements field.
func (r *queryResolver) GetHostsWithOwedSettlements(ctx context.Context) ([]int, error) {
	return models.HostsWithOwedSettlements(ctx)
}

// GetHostOwedSummary is the resolver for the getHostOwedSummary field.
func (r *queryResolver) GetHostOwedSummary(ctx context.Context, hostCollectiveID int) ([]*models.SettlementSummaryRow, error) {
	return models.HostOwedSummary(ctx, hostCollectiveID)
}

// GetActivities is the resolver for the getActivities field.
func (r *queryResolver) GetActivities(ctx context.Context, collectiveID int, referenceID *int, referenceType *string, userID *int) ([]*models.Activity, error) {
	return models.GetActivities(ctx, collectiveID, referenceID, referenceType, userID)
}

// PaginateActivities is the resolver for the paginateActivities field.
func (r *queryResolver) PaginateActivities(ctx context.Context, collectiveID int, limit int, after *string, referenceType *string, referenceID *int, userID *int, actionType *string) (*models.ActivitiesConnection, error) {
	return models.PaginateActivities(ctx, collectiveID, &limit, after, referenceType, referenceID, userID, actionType)
}

// Amount is the resolver for the amount field.
func (r *settlementSummaryResolver) Amount(ctx context.Context, obj *models.SettlementSummaryRow) (*decimal.Decimal, error) {
	panic(fmt.Errorf("not implemented: Amount - amount"))
}

// Order is the resolver for the order field.
func (r *transactionResolver) Order(ctx context.Context, obj *models.Transaction) (*models.Order, error) {
	if obj.OrderId == nil {
		return nil, nil
	}
	return middlewares.GetOrder(ctx, *obj.OrderId)
}

// Expense is the resolver for the expense field.
func (r *transactionResolver) Expense(ctx context.Context, obj *models.Transaction) (*models.Expense, error) {
	if obj.ExpenseId == nil {
		return nil, nil
	}
	return middlewares.GetExpense(ctx, *obj.ExpenseId)
}

// Expense is the resolver for the expense field.
func (r *transactionSettlementResolver) Expense(ctx context.Context, obj *models.TransactionSettlement) (*models.Expense, error) {
	if obj.ExpenseId == nil {
		return nil, nil
	}
	return middlewares.GetExpense(ctx, *obj.ExpenseId)
}

// Collective is the resolver for the collective field.
func (r *userResolver) Collective(ctx context.Context, obj *models.User) (*models.Collective, error) {
	return middlewares.GetCollective(ctx, obj.CollectiveId)
}

// Collective returns CollectiveResolver implementation.
func (r *Resolver) Collective() CollectiveResolver { return &collectiveResolver{r} }

// Expense returns ExpenseResolver implementation.
func (r *Resolver) Expense() ExpenseResolver { return &expenseResolver{r} }

// Member returns MemberResolver implementation.
func (r *Resolver) Member() MemberResolver { return &memberResolver{r} }

// MemberInvitation returns MemberInvitationResolver implementation.
func (r *Resolver) MemberInvitation() MemberInvitationResolver { return &memberInvitationResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Order returns OrderResolver implementation.
func (r *Resolver) Order() OrderResolver { return &orderResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// SettlementSummary returns SettlementSummaryResolver implementation.
func (r *Resolver) SettlementSummary() SettlementSummaryResolver {
	return &settlementSummaryResolver{r}
}

// Transaction returns TransactionResolver implementation.
func (r *Resolver) Transaction() TransactionResolver { return &transactionResolver{r} }

// TransactionSettlement returns TransactionSettlementResolver implementation.
func (r *Resolver) TransactionSettlement() TransactionSettlementResolver {
	return &transactionSettlementResolver{r}
}

// User returns UserResolver implementation.
func (r *Resolver) User() UserResolver { return &userResolver{r} }

type collectiveResolver struct{ *Resolver }
type expenseResolver struct{ *Resolver }
type memberResolver struct{ *Resolver }
type memberInvitationResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type orderResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type settlementSummaryResolver struct{ *Resolver }
type transactionResolver struct{ *Resolver }
type transactionSettlementResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
