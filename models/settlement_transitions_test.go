package models_test

import (
	"testing"

	"github.com/collectivehq/platform_backend/models"
)

func TestSettlementStatusTransitions(t *testing.T) {
	cases := []struct {
		from models.SettlementStatus
		to   models.SettlementStatus
		want bool
	}{
		{models.SettlementStatusOwed, models.SettlementStatusInvoiced, true},
		{models.SettlementStatusInvoiced, models.SettlementStatusSettled, true},

		// no skipping forward
		{models.SettlementStatusOwed, models.SettlementStatusSettled, false},
		// no going back
		{models.SettlementStatusInvoiced, models.SettlementStatusOwed, false},
		{models.SettlementStatusSettled, models.SettlementStatusInvoiced, false},
		{models.SettlementStatusSettled, models.SettlementStatusOwed, false},
		// terminal state
		{models.SettlementStatusSettled, models.SettlementStatusSettled, false},
		{models.SettlementStatusOwed, models.SettlementStatusOwed, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestDebtKinds(t *testing.T) {
	debtKinds := []models.TransactionKind{
		models.TransactionKindPlatformTipDebt,
		models.TransactionKindHostFeeShareDebt,
	}
	for _, k := range debtKinds {
		if !k.IsDebt() {
			t.Errorf("%s should be a debt kind", k)
		}
	}

	nonDebtKinds := []models.TransactionKind{
		models.TransactionKindContribution,
		models.TransactionKindExpense,
		models.TransactionKindPlatformTip,
		models.TransactionKindHostFee,
		models.TransactionKindPaymentProcessorFee,
		models.TransactionKindBalanceTransfer,
	}
	for _, k := range nonDebtKinds {
		if k.IsDebt() {
			t.Errorf("%s should not be a debt kind", k)
		}
	}
}

func TestTransactionTypeOpposite(t *testing.T) {
	if models.TransactionTypeCredit.Opposite() != models.TransactionTypeDebit {
		t.Error("credit leg must pair with a debit")
	}
	if models.TransactionTypeDebit.Opposite() != models.TransactionTypeCredit {
		t.Error("debit leg must pair with a credit")
	}
}
