package models

/* CollectiveScoped implementations */

func (obj Collective) GetCollectiveId() int {
	return obj.ID
}

func (obj Member) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj MemberInvitation) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj Tier) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj PaymentMethod) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj PayoutMethod) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj Order) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj Expense) GetCollectiveId() int {
	return obj.CollectiveId
}

func (obj Transaction) GetCollectiveId() int {
	return obj.CollectiveId
}

/* host scope, for ledger-side models */

type HostScoped interface {
	GetHostCollectiveId() int
}

func (obj Order) GetHostCollectiveId() int {
	return obj.HostCollectiveId
}

func (obj Expense) GetHostCollectiveId() int {
	return obj.HostCollectiveId
}

func (obj Transaction) GetHostCollectiveId() int {
	return obj.HostCollectiveId
}

func (obj TransactionSettlement) GetHostCollectiveId() int {
	return obj.HostCollectiveId
}

func (obj PubSubMessageRecord) GetHostCollectiveId() int {
	return obj.HostCollectiveId
}
