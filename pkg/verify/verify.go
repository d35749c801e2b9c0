// Package verify is the assertion layer of the suite. It compares entities
// and aggregates produced from different pages or before and after a
// mutation, and reports through the standard testing hooks.
package verify

import (
	"strconv"

	"github.com/stretchr/testify/assert"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/pages"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
)

// ItemComplete checks that every value part of an extracted item is filled
// in and the price is positive.
func ItemComplete(t assert.TestingT, item store.Item) bool {
	ok := assert.NotEmpty(t, item.Name, "item name must not be empty")
	ok = assert.NotEmpty(t, item.Description, "item description must not be empty, item %q", item.Name) && ok
	ok = assert.True(t, item.Price.IsPositive(), "item price must be positive, item %q has %s", item.Name, item.Price) && ok
	return ok
}

// CardComplete checks the card's item and that its toggle label is one of
// the two legal values.
func CardComplete(t assert.TestingT, card store.ProductCard) bool {
	ok := ItemComplete(t, card.Item)

	label, err := card.ButtonLabel()
	if !assert.NoError(t, err, "reading toggle label of %q", card.Item.Name) {
		return false
	}
	ok = assert.Contains(t, []string{store.AddToCartLabel, store.RemoveLabel}, label,
		"toggle label of %q must be one of the two legal values", card.Item.Name) && ok
	return ok
}

// ButtonLabel checks a toggle label against the expected state.
func ButtonLabel(t assert.TestingT, got, want string) bool {
	return assert.Equal(t, want, got, "toggle label mismatch")
}

// ItemsMatch checks that two item collections hold the same items
// irrespective of order. Items compare structurally via their Key.
func ItemsMatch(t assert.TestingT, expected, actual []store.Item) bool {
	return assert.ElementsMatch(t, keys(expected), keys(actual), "item sets differ")
}

// ItemsEqualInOrder checks two item sequences for equality in order.
func ItemsEqualInOrder(t assert.TestingT, expected, actual []store.Item) bool {
	return assert.Equal(t, keys(expected), keys(actual), "item sequences differ")
}

// CardsMatchItems checks that the cards' items equal the expected items
// irrespective of order.
func CardsMatchItems(t assert.TestingT, expected []store.Item, cards []store.ProductCard) bool {
	actual := make([]store.Item, 0, len(cards))
	for _, c := range cards {
		actual = append(actual, c.Item)
	}
	return ItemsMatch(t, expected, actual)
}

func keys(items []store.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.WithoutImage().Key())
	}
	return out
}

// TotalsMatch checks computed against rendered totals with exact decimal
// equality.
func TotalsMatch(t assert.TestingT, computed, scraped store.Totals) bool {
	return assert.True(t, computed.Equal(scraped),
		"totals mismatch: computed %s, rendered %s", computed, scraped)
}

// CurrentURL checks the driver's current location.
func CurrentURL(t assert.TestingT, drv browser.Driver, want string) bool {
	got, err := drv.CurrentURL()
	if !assert.NoError(t, err, "reading current url") {
		return false
	}
	return assert.Equal(t, want, got, "url mismatch")
}

// CartBadge checks the badge against an expected count; zero means the
// badge must be absent.
func CartBadge(t assert.TestingT, hdr *pages.Header, want int) bool {
	count, present, err := hdr.CartCount(false)
	if !assert.NoError(t, err, "reading cart badge") {
		return false
	}
	if want == 0 {
		return assert.False(t, present, "cart badge rendered for an empty cart, reads %q", count)
	}
	if !assert.True(t, present, "cart badge absent, expected %d", want) {
		return false
	}
	return assert.Equal(t, strconv.Itoa(want), count, "cart badge count mismatch")
}
