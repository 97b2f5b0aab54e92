package models

import (
	"errors"
	"io"
	"strconv"
)

type CollectiveType string

const (
	CollectiveTypeCollective   CollectiveType = "COLLECTIVE"
	CollectiveTypeOrganization CollectiveType = "ORGANIZATION"
	CollectiveTypeIndividual   CollectiveType = "INDIVIDUAL"
	CollectiveTypeFund         CollectiveType = "FUND"
	CollectiveTypeProject      CollectiveType = "PROJECT"
	CollectiveTypeEvent        CollectiveType = "EVENT"
)

// convert enum to send response
func (t CollectiveType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

// convert input to enum type
func (t *CollectiveType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("collective type must be string")
	}
	collectiveTypes := map[string]CollectiveType{
		"COLLECTIVE":   CollectiveTypeCollective,
		"ORGANIZATION": CollectiveTypeOrganization,
		"INDIVIDUAL":   CollectiveTypeIndividual,
		"FUND":         CollectiveTypeFund,
		"PROJECT":      CollectiveTypeProject,
		"EVENT":        CollectiveTypeEvent,
	}
	*t, ok = collectiveTypes[str]
	if !ok {
		return errors.New("invalid collective type")
	}
	return nil
}

type MemberRole string

const (
	MemberRoleBacker     MemberRole = "BACKER"
	MemberRoleMember     MemberRole = "MEMBER"
	MemberRoleAdmin      MemberRole = "ADMIN"
	MemberRoleAccountant MemberRole = "ACCOUNTANT"
	MemberRoleHost       MemberRole = "HOST"
)

func (r MemberRole) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(r))))
}

func (r *MemberRole) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("member role must be string")
	}
	memberRoles := map[string]MemberRole{
		"BACKER":     MemberRoleBacker,
		"MEMBER":     MemberRoleMember,
		"ADMIN":      MemberRoleAdmin,
		"ACCOUNTANT": MemberRoleAccountant,
		"HOST":       MemberRoleHost,
	}
	*r, ok = memberRoles[str]
	if !ok {
		return errors.New("invalid member role")
	}
	return nil
}

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

func (t TransactionType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *TransactionType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("transaction type must be string")
	}
	switch str {
	case "CREDIT":
		*t = TransactionTypeCredit
	case "DEBIT":
		*t = TransactionTypeDebit
	default:
		return errors.New("invalid transaction type")
	}
	return nil
}

// Opposite returns the other leg's type.
func (t TransactionType) Opposite() TransactionType {
	if t == TransactionTypeCredit {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}

type TransactionKind string

const (
	TransactionKindContribution        TransactionKind = "CONTRIBUTION"
	TransactionKindExpense             TransactionKind = "EXPENSE"
	TransactionKindPlatformTip         TransactionKind = "PLATFORM_TIP"
	TransactionKindPlatformTipDebt     TransactionKind = "PLATFORM_TIP_DEBT"
	TransactionKindHostFee             TransactionKind = "HOST_FEE"
	TransactionKindHostFeeShare        TransactionKind = "HOST_FEE_SHARE"
	TransactionKindHostFeeShareDebt    TransactionKind = "HOST_FEE_SHARE_DEBT"
	TransactionKindPaymentProcessorFee TransactionKind = "PAYMENT_PROCESSOR_FEE"
	TransactionKindBalanceTransfer     TransactionKind = "BALANCE_TRANSFER"
)

// debt kinds create a settlement row instead of moving money immediately
func (k TransactionKind) IsDebt() bool {
	return k == TransactionKindPlatformTipDebt || k == TransactionKindHostFeeShareDebt
}

func (k TransactionKind) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(k))))
}

func (k *TransactionKind) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("transaction kind must be string")
	}
	transactionKinds := map[string]TransactionKind{
		"CONTRIBUTION":          TransactionKindContribution,
		"EXPENSE":               TransactionKindExpense,
		"PLATFORM_TIP":          TransactionKindPlatformTip,
		"PLATFORM_TIP_DEBT":     TransactionKindPlatformTipDebt,
		"HOST_FEE":              TransactionKindHostFee,
		"HOST_FEE_SHARE":        TransactionKindHostFeeShare,
		"HOST_FEE_SHARE_DEBT":   TransactionKindHostFeeShareDebt,
		"PAYMENT_PROCESSOR_FEE": TransactionKindPaymentProcessorFee,
		"BALANCE_TRANSFER":      TransactionKindBalanceTransfer,
	}
	*k, ok = transactionKinds[str]
	if !ok {
		return errors.New("invalid transaction kind")
	}
	return nil
}

type SettlementStatus string

const (
	SettlementStatusOwed     SettlementStatus = "OWED"
	SettlementStatusInvoiced SettlementStatus = "INVOICED"
	SettlementStatusSettled  SettlementStatus = "SETTLED"
)

// settlements only move forward: OWED -> INVOICED -> SETTLED
func (s SettlementStatus) CanTransitionTo(next SettlementStatus) bool {
	switch s {
	case SettlementStatusOwed:
		return next == SettlementStatusInvoiced
	case SettlementStatusInvoiced:
		return next == SettlementStatusSettled
	default:
		return false
	}
}

func (s SettlementStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(s))))
}

func (s *SettlementStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("settlement status must be string")
	}
	switch str {
	case "OWED":
		*s = SettlementStatusOwed
	case "INVOICED":
		*s = SettlementStatusInvoiced
	case "SETTLED":
		*s = SettlementStatusSettled
	default:
		return errors.New("invalid settlement status")
	}
	return nil
}

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusRefunded OrderStatus = "REFUNDED"
	OrderStatusCanceled OrderStatus = "CANCELED"
	OrderStatusError    OrderStatus = "ERROR"
)

func (s OrderStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(s))))
}

func (s *OrderStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("order status must be string")
	}
	orderStatuses := map[string]OrderStatus{
		"PENDING":  OrderStatusPending,
		"PAID":     OrderStatusPaid,
		"REFUNDED": OrderStatusRefunded,
		"CANCELED": OrderStatusCanceled,
		"ERROR":    OrderStatusError,
	}
	*s, ok = orderStatuses[str]
	if !ok {
		return errors.New("invalid order status")
	}
	return nil
}

type ExpenseStatus string

const (
	ExpenseStatusDraft    ExpenseStatus = "DRAFT"
	ExpenseStatusPending  ExpenseStatus = "PENDING"
	ExpenseStatusApproved ExpenseStatus = "APPROVED"
	ExpenseStatusRejected ExpenseStatus = "REJECTED"
	ExpenseStatusPaid     ExpenseStatus = "PAID"
	ExpenseStatusCanceled ExpenseStatus = "CANCELED"
)

func (s ExpenseStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(s))))
}

func (s *ExpenseStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("expense status must be string")
	}
	expenseStatuses := map[string]ExpenseStatus{
		"DRAFT":    ExpenseStatusDraft,
		"PENDING":  ExpenseStatusPending,
		"APPROVED": ExpenseStatusApproved,
		"REJECTED": ExpenseStatusRejected,
		"PAID":     ExpenseStatusPaid,
		"CANCELED": ExpenseStatusCanceled,
	}
	*s, ok = expenseStatuses[str]
	if !ok {
		return errors.New("invalid expense status")
	}
	return nil
}

type ExpenseType string

const (
	ExpenseTypeReceipt    ExpenseType = "RECEIPT"
	ExpenseTypeInvoice    ExpenseType = "INVOICE"
	ExpenseTypeSettlement ExpenseType = "SETTLEMENT"
)

func (t ExpenseType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *ExpenseType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("expense type must be string")
	}
	switch str {
	case "RECEIPT":
		*t = ExpenseTypeReceipt
	case "INVOICE":
		*t = ExpenseTypeInvoice
	case "SETTLEMENT":
		*t = ExpenseTypeSettlement
	default:
		return errors.New("invalid expense type")
	}
	return nil
}

type MemberInvitationStatus string

const (
	MemberInvitationStatusPending  MemberInvitationStatus = "PENDING"
	MemberInvitationStatusAccepted MemberInvitationStatus = "ACCEPTED"
	MemberInvitationStatusDeclined MemberInvitationStatus = "DECLINED"
)

func (s MemberInvitationStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(s))))
}

func (s *MemberInvitationStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("member invitation status must be string")
	}
	switch str {
	case "PENDING":
		*s = MemberInvitationStatusPending
	case "ACCEPTED":
		*s = MemberInvitationStatusAccepted
	case "DECLINED":
		*s = MemberInvitationStatusDeclined
	default:
		return errors.New("invalid member invitation status")
	}
	return nil
}

// LedgerReferenceType identifies the document a ledger message refers to.
// Short codes keep the outbox enum column compact.
type LedgerReferenceType string

const (
	LedgerReferenceTypeOrder           LedgerReferenceType = "OD"
	LedgerReferenceTypeExpensePayment  LedgerReferenceType = "EP"
	LedgerReferenceTypeRefund          LedgerReferenceType = "RF"
	LedgerReferenceTypeBalanceTransfer LedgerReferenceType = "BT"
)

func (t LedgerReferenceType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *LedgerReferenceType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("ledger reference type must be string")
	}
	ledgerReferenceTypes := map[string]LedgerReferenceType{
		"OD": LedgerReferenceTypeOrder,
		"EP": LedgerReferenceTypeExpensePayment,
		"RF": LedgerReferenceTypeRefund,
		"BT": LedgerReferenceTypeBalanceTransfer,
	}
	*t, ok = ledgerReferenceTypes[str]
	if !ok {
		return errors.New("invalid ledger reference type")
	}
	return nil
}

type PubSubMessageAction string

const (
	PubSubMessageActionCreate PubSubMessageAction = "C"
	PubSubMessageActionUpdate PubSubMessageAction = "U"
	PubSubMessageActionDelete PubSubMessageAction = "D"
)

// convert enum to send response
func (t PubSubMessageAction) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

// convert input to enum type
func (t *PubSubMessageAction) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("pub sub message action must be string")
	}
	switch str {
	case "C":
		*t = PubSubMessageActionCreate
	case "U":
		*t = PubSubMessageActionUpdate
	case "D":
		*t = PubSubMessageActionDelete
	default:
		return errors.New("invalid pub sub message action")
	}
	return nil
}

type UserRole string

const (
	UserRoleAdmin UserRole = "Admin"
	UserRoleUser  UserRole = "User"
)

func (r UserRole) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(r))))
}

func (r *UserRole) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("user role must be string")
	}
	switch str {
	case "Admin":
		*r = UserRoleAdmin
	case "User":
		*r = UserRoleUser
	default:
		return errors.New("invalid user role")
	}
	return nil
}
