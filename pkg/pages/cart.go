package pages

import (
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

var (
	cartItemLoc         = browser.Class("cart_item")
	continueShoppingLoc = browser.ID("continue-shopping")
	checkoutLoc         = browser.ID("checkout")
)

// Cart models the cart page.
type Cart struct {
	base
}

// NewCart builds the cart model over drv.
func NewCart(drv browser.Driver, log *logging.Logger, opts ...Option) *Cart {
	return &Cart{base: newBase(drv, log, opts)}
}

// ListCards reads the currently rendered cart contents. Cart cards carry no
// image capability.
func (p *Cart) ListCards() ([]store.ProductCard, error) {
	roots, err := browser.FindAllOptional(p.drv, cartItemLoc)
	if err != nil {
		return nil, err
	}
	return p.collectCards(browser.NormalizeList(roots), "cart")
}

// GetCard reads the card at index from a fresh list.
func (p *Cart) GetCard(index int) (store.ProductCard, error) {
	cards, err := p.ListCards()
	if err != nil {
		return store.ProductCard{}, err
	}
	if index < 0 || index >= len(cards) {
		return store.ProductCard{}, xerrors.Newf(xerrors.CodeIndexOutOfRange, "index %d outside cart of %d", index, len(cards)).
			WithContext("index", index).
			WithContext("size", len(cards))
	}
	return cards[index], nil
}

// ContinueShopping returns to the catalog. The affordance is mandatory.
func (p *Cart) ContinueShopping() error {
	return p.click(continueShoppingLoc, "continue shopping button")
}

// GoToCheckout enters the checkout information step. The affordance is
// mandatory.
func (p *Cart) GoToCheckout() error {
	return p.click(checkoutLoc, "checkout button")
}
