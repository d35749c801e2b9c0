package store

import (
	"fmt"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
)

// ProductCard is one rendered product plus its interactive capabilities.
// The capabilities are references into the live page, not owned state; they
// go stale after the next cart-mutating action and must not be stored across
// one. Identity is the Item alone.
type ProductCard struct {
	Item Item

	nameLink     browser.Element
	imageLink    browser.Element // nil on pages without a product image
	toggleButton browser.Element
}

// NewProductCard builds a card from its item value and capabilities.
// imageLink may be nil.
func NewProductCard(item Item, nameLink, imageLink, toggleButton browser.Element) ProductCard {
	return ProductCard{
		Item:         item,
		nameLink:     nameLink,
		imageLink:    imageLink,
		toggleButton: toggleButton,
	}
}

// Equal compares cards by their Item only; capability references are
// excluded from identity.
func (c ProductCard) Equal(o ProductCard) bool {
	return c.Item.Equal(o.Item)
}

// ClickName opens the item detail page through the name link.
func (c ProductCard) ClickName() error {
	return c.nameLink.Click()
}

// HasImageLink reports whether the card carries an image capability.
func (c ProductCard) HasImageLink() bool {
	return c.imageLink != nil
}

// ClickImage opens the item detail page through the image link.
func (c ProductCard) ClickImage() error {
	if c.imageLink == nil {
		return browser.ErrNoSuchElement
	}
	return c.imageLink.Click()
}

// Toggle presses the add/remove button. The outcome is not verified here;
// callers re-query the page to observe the new state.
func (c ProductCard) Toggle() error {
	return c.toggleButton.Click()
}

// ButtonLabel returns the toggle button's current label, which encodes cart
// membership ("Add to cart" vs "Remove").
func (c ProductCard) ButtonLabel() (string, error) {
	return c.toggleButton.Text()
}

// ButtonDisplayed reports whether the toggle button is visible.
func (c ProductCard) ButtonDisplayed() (bool, error) {
	return c.toggleButton.Displayed()
}

// ButtonClickable reports whether the toggle button is visible and enabled.
func (c ProductCard) ButtonClickable() (bool, error) {
	displayed, err := c.toggleButton.Displayed()
	if err != nil || !displayed {
		return false, err
	}
	return c.toggleButton.Enabled()
}

func (c ProductCard) String() string {
	label, err := c.ButtonLabel()
	if err != nil {
		label = "<unreadable>"
	}
	return fmt.Sprintf("%s, Button: %s", c.Item, label)
}
