package models

import (
	"time"

	"github.com/collectivehq/platform_backend/utils"
)

type Identifier interface {
	GetId() int
}

// Data is what the per-request loaders batch on. GetDefault fills the slot
// of a missing id so one bad key cannot fail a whole batch.
type Data interface {
	Identifier
	GetDefault(int) Data
}

// RelatedData is for one-to-many loaders: the key is the parent's id.
type RelatedData interface {
	GetReferenceId() int
}

func (obj Collective) GetId() int {
	return obj.ID
}

func (obj Collective) GetDefault(id int) Data {
	return Collective{
		ID:        id,
		IsHost:    utils.NewFalse(),
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj User) GetId() int {
	return obj.ID
}

func (obj User) GetDefault(id int) Data {
	return User{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Member) GetId() int {
	return obj.ID
}

func (obj Member) GetDefault(id int) Data {
	return Member{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Member) GetReferenceId() int {
	return obj.CollectiveId
}

func (obj MemberInvitation) GetId() int {
	return obj.ID
}

func (obj MemberInvitation) GetDefault(id int) Data {
	return MemberInvitation{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Tier) GetId() int {
	return obj.ID
}

func (obj Tier) GetDefault(id int) Data {
	return Tier{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Tier) GetReferenceId() int {
	return obj.CollectiveId
}

func (obj PaymentMethod) GetId() int {
	return obj.ID
}

func (obj PaymentMethod) GetDefault(id int) Data {
	return PaymentMethod{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj PayoutMethod) GetId() int {
	return obj.ID
}

func (obj PayoutMethod) GetDefault(id int) Data {
	return PayoutMethod{
		ID:        id,
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Order) GetDefault(id int) Data {
	return Order{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Expense) GetDefault(id int) Data {
	return Expense{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (obj Transaction) GetId() int {
	return obj.ID
}

func (obj Transaction) GetDefault(id int) Data {
	return Transaction{
		ID:        id,
		IsDebt:    utils.NewFalse(),
		IsRefund:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// transactions are loaded per order
func (obj Transaction) GetReferenceId() int {
	if obj.OrderId == nil {
		return 0
	}
	return *obj.OrderId
}

func (obj TransactionSettlement) GetId() int {
	return obj.ID
}

// settlements are loaded per settlement expense
func (obj TransactionSettlement) GetReferenceId() int {
	if obj.ExpenseId == nil {
		return 0
	}
	return *obj.ExpenseId
}

func (obj TransactionSettlement) GetDefault(id int) Data {
	return TransactionSettlement{
		ID:             id,
		IsRefundOffset: utils.NewFalse(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}
