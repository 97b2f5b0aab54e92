package workflow

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/collectivehq/platform_backend/models"
)

func TestPercentageOf(t *testing.T) {
	cases := []struct {
		amount  string
		percent string
		want    string
	}{
		{"100", "5", "5"},
		{"100", "0", "0"},
		{"33.33", "5", "1.6665"},
		// rounds half up at 4 places
		{"10.01", "2.5", "0.2503"},
		{"0.01", "5", "0.0005"},
		{"1000000", "15", "150000"},
	}
	for _, c := range cases {
		amount, _ := decimal.NewFromString(c.amount)
		percent, _ := decimal.NewFromString(c.percent)
		want, _ := decimal.NewFromString(c.want)
		if got := percentageOf(amount, percent); !got.Equal(want) {
			t.Errorf("percentageOf(%s, %s%%) = %s, want %s", c.amount, c.percent, got, want)
		}
	}
}

func TestContributionDescription(t *testing.T) {
	withDescription := &models.Order{Description: "Monthly backer", SequenceNo: 7}
	if got := contributionDescription(withDescription); got != "Monthly backer" {
		t.Errorf("got %q", got)
	}

	withoutDescription := &models.Order{SequenceNo: 7}
	if got := contributionDescription(withoutDescription); got != "Contribution #7" {
		t.Errorf("got %q", got)
	}
}
