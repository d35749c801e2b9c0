// Package store holds the domain entities extracted from transient UI state:
// items, product cards with their interactive capabilities, and order totals.
// Entities are values; they are rebuilt on every extraction and never cached
// across a page mutation.
package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/money"
)

// Item is the value object describing one purchasable product. ImageRef is
// empty on pages that do not render an image (cart, order overview).
type Item struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageRef    string
}

// Equal is structural equality over all present fields. Prices compare as
// decimals, so "7.99" and "7.990" are the same item.
func (i Item) Equal(o Item) bool {
	return i.Name == o.Name &&
		i.Description == o.Description &&
		i.Price.Equal(o.Price) &&
		i.ImageRef == o.ImageRef
}

// Key returns a hashable identity string for set-style comparisons.
func (i Item) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s", i.Name, i.Description, money.Round2(i.Price).StringFixed(2), i.ImageRef)
}

// WithoutImage returns a copy with the image reference dropped, for
// comparisons against pages that never render one.
func (i Item) WithoutImage() Item {
	i.ImageRef = ""
	return i
}

func (i Item) String() string {
	return fmt.Sprintf("Name: %s, Description: %s, Price: %s, ImageRef: %s",
		i.Name, i.Description, i.Price.StringFixed(2), i.ImageRef)
}
