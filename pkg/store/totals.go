package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/money"
)

// Totals is the derived order aggregate. All three values are rounded with
// the same half-up rule the storefront uses, so they compare with exact
// decimal equality against the rendered summary.
type Totals struct {
	Sum   decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

// ComputeTotals derives the order aggregate from item prices:
// sum = round2(Σ price), tax = round2(sum * rate), total = round2(sum + tax).
func ComputeTotals(items []Item, taxRate decimal.Decimal) Totals {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price)
	}
	sum = money.Round2(sum)
	tax := money.Round2(sum.Mul(taxRate))
	total := money.Round2(sum.Add(tax))
	return Totals{Sum: sum, Tax: tax, Total: total}
}

// Equal is exact decimal equality over all three values.
func (t Totals) Equal(o Totals) bool {
	return t.Sum.Equal(o.Sum) && t.Tax.Equal(o.Tax) && t.Total.Equal(o.Total)
}

func (t Totals) String() string {
	return fmt.Sprintf("Item total: %s, Tax: %s, Total: %s",
		t.Sum.StringFixed(2), t.Tax.StringFixed(2), t.Total.StringFixed(2))
}
