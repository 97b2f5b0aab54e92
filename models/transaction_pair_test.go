package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validPair() NewTransactionPair {
	return NewTransactionPair{
		Kind:             TransactionKindContribution,
		CollectiveId:     10,
		FromCollectiveId: 20,
		HostCollectiveId: 2,
		Amount:           decimal.NewFromInt(100),
		Currency:         "USD",
		HostCurrency:     "USD",
	}
}

func TestTransactionPairValidate(t *testing.T) {
	valid := validPair()
	if err := valid.validate(); err != nil {
		t.Fatalf("valid pair rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*NewTransactionPair)
	}{
		{"zero amount", func(p *NewTransactionPair) { p.Amount = decimal.Zero }},
		{"negative amount", func(p *NewTransactionPair) { p.Amount = decimal.NewFromInt(-5) }},
		{"missing currency", func(p *NewTransactionPair) { p.Currency = "" }},
		{"missing host currency", func(p *NewTransactionPair) { p.HostCurrency = "" }},
		{"missing collective", func(p *NewTransactionPair) { p.CollectiveId = 0 }},
		{"missing counterparty", func(p *NewTransactionPair) { p.FromCollectiveId = 0 }},
		{"self transaction", func(p *NewTransactionPair) { p.FromCollectiveId = p.CollectiveId }},
		{"missing host", func(p *NewTransactionPair) { p.HostCollectiveId = 0 }},
	}
	for _, c := range cases {
		pair := validPair()
		c.mutate(&pair)
		if err := pair.validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
