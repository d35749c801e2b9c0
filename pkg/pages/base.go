// Package pages models the storefront screens. Each model re-reads the page
// on every call; element references obtained through a model are valid only
// until the next mutating action.
package pages

import (
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/money"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// ExtractPolicy decides what a list extraction does with a malformed card.
// PolicyPropagate aborts the whole extraction; PolicySkip logs the card and
// omits it from the result. The policy is fixed per model instance so one
// page never mixes behaviors.
type ExtractPolicy int

const (
	PolicyPropagate ExtractPolicy = iota
	PolicySkip
)

// Option configures a page model at construction time.
type Option func(*base)

// WithExtractPolicy overrides the default PolicyPropagate.
func WithExtractPolicy(p ExtractPolicy) Option {
	return func(b *base) { b.policy = p }
}

type base struct {
	drv    browser.Driver
	log    *logging.Logger
	policy ExtractPolicy
}

func newBase(drv browser.Driver, log *logging.Logger, opts []Option) base {
	if log == nil {
		log = logging.Nop()
	}
	b := base{drv: drv, log: log, policy: PolicyPropagate}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Locators shared by every card-bearing page. The storefront renders the
// same name/desc/price structure on inventory, cart, and checkout overview.
var (
	cardNameLoc   = browser.Class("inventory_item_name")
	cardDescLoc   = browser.Class("inventory_item_desc")
	cardPriceLoc  = browser.Class("inventory_item_price")
	cardImageLoc  = browser.CSS(".inventory_item_img img")
	cardToggleLoc = browser.Tag("button")
)

// extractItem reads the value parts of one rendered card.
func (b base) extractItem(root browser.Element) (store.Item, error) {
	nameEl, err := browser.FindMandatoryIn(root, cardNameLoc, "product name")
	if err != nil {
		return store.Item{}, err
	}
	name, err := nameEl.Text()
	if err != nil {
		return store.Item{}, err
	}

	descEl, err := browser.FindMandatoryIn(root, cardDescLoc, "product description")
	if err != nil {
		return store.Item{}, err
	}
	desc, err := descEl.Text()
	if err != nil {
		return store.Item{}, err
	}

	priceEl, err := browser.FindMandatoryIn(root, cardPriceLoc, "product price")
	if err != nil {
		return store.Item{}, err
	}
	raw, err := priceEl.Text()
	if err != nil {
		return store.Item{}, err
	}
	price, err := money.ExtractPrice(raw)
	if err != nil {
		return store.Item{}, err
	}

	item := store.Item{Name: name, Description: desc, Price: price}

	img, err := browser.FindOptionalIn(root, cardImageLoc)
	if err != nil {
		return store.Item{}, err
	}
	if img != nil {
		src, err := img.Attribute("src")
		if err != nil {
			return store.Item{}, err
		}
		item.ImageRef = src
	}
	return item, nil
}

// extractCard reads one rendered card plus its interactive capabilities.
// The image link is optional; pages without product images yield cards
// without one.
func (b base) extractCard(root browser.Element) (store.ProductCard, error) {
	item, err := b.extractItem(root)
	if err != nil {
		return store.ProductCard{}, err
	}

	nameEl, err := browser.FindMandatoryIn(root, cardNameLoc, "product name link")
	if err != nil {
		return store.ProductCard{}, err
	}
	imageEl, err := browser.FindOptionalIn(root, cardImageLoc)
	if err != nil {
		return store.ProductCard{}, err
	}
	toggle, err := browser.FindMandatoryIn(root, cardToggleLoc, "toggle button")
	if err != nil {
		return store.ProductCard{}, err
	}
	return store.NewProductCard(item, nameEl, imageEl, toggle), nil
}

// collectCards applies the extraction policy across a rendered card list.
func (b base) collectCards(roots []browser.Element, page string) ([]store.ProductCard, error) {
	cards := make([]store.ProductCard, 0, len(roots))
	for i, root := range roots {
		card, err := b.extractCard(root)
		if err != nil {
			if b.policy == PolicySkip {
				_ = b.log.Warn(logging.CategoryPage, "card_skipped", "omitting malformed card", map[string]any{
					"page":  page,
					"index": i,
					"error": err.Error(),
				})
				continue
			}
			return nil, xerrors.Wrap(err, xerrors.CodeCardExtraction, "extracting product card").
				WithContext("page", page).
				WithContext("index", i)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// collectItems is collectCards without capabilities, for read-only listings.
func (b base) collectItems(roots []browser.Element, page string) ([]store.Item, error) {
	items := make([]store.Item, 0, len(roots))
	for i, root := range roots {
		item, err := b.extractItem(root)
		if err != nil {
			if b.policy == PolicySkip {
				_ = b.log.Warn(logging.CategoryPage, "item_skipped", "omitting malformed item", map[string]any{
					"page":  page,
					"index": i,
					"error": err.Error(),
				})
				continue
			}
			return nil, xerrors.Wrap(err, xerrors.CodeCardExtraction, "extracting item").
				WithContext("page", page).
				WithContext("index", i)
		}
		items = append(items, item)
	}
	return items, nil
}

// click resolves a mandatory element and activates it.
func (b base) click(loc browser.Locator, label string) error {
	el, err := browser.FindMandatory(b.drv, loc, label)
	if err != nil {
		return err
	}
	return el.Click()
}

// text resolves a mandatory element and reads its text.
func (b base) text(loc browser.Locator, label string) (string, error) {
	el, err := browser.FindMandatory(b.drv, loc, label)
	if err != nil {
		return "", err
	}
	return el.Text()
}
