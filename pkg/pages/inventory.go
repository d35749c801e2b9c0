package pages

import (
	"math/rand"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// SortOrder is one of the four catalog sort criteria. The values are the
// option values of the sort dropdown.
type SortOrder string

const (
	SortNameAsc   SortOrder = "az"
	SortNameDesc  SortOrder = "za"
	SortPriceAsc  SortOrder = "lohi"
	SortPriceDesc SortOrder = "hilo"
)

var (
	inventoryItemLoc = browser.Class("inventory_item")
	sortSelectLoc    = browser.Class("product_sort_container")
)

// Inventory models the catalog page. Card lists are rebuilt on every call;
// nothing is cached across mutations.
type Inventory struct {
	base
}

// NewInventory builds the catalog model over drv.
func NewInventory(drv browser.Driver, log *logging.Logger, opts ...Option) *Inventory {
	return &Inventory{base: newBase(drv, log, opts)}
}

// ListCards reads the currently rendered catalog.
func (p *Inventory) ListCards() ([]store.ProductCard, error) {
	roots, err := browser.FindAllOptional(p.drv, inventoryItemLoc)
	if err != nil {
		return nil, err
	}
	return p.collectCards(browser.NormalizeList(roots), "inventory")
}

// Count returns the number of rendered catalog entries.
func (p *Inventory) Count() (int, error) {
	roots, err := p.drv.FindAll(inventoryItemLoc)
	if err != nil {
		return 0, err
	}
	return len(roots), nil
}

// SortBy triggers a UI-level re-sort; the next ListCards reflects the new
// order.
func (p *Inventory) SortBy(order SortOrder) error {
	sel, err := browser.FindMandatory(p.drv, sortSelectLoc, "sort dropdown")
	if err != nil {
		return err
	}
	if err := sel.SelectByValue(string(order)); err != nil {
		return err
	}
	_ = p.log.Info(logging.CategoryPage, "catalog_sorted", "catalog re-sorted", map[string]any{"order": string(order)})
	return nil
}

// PickRandomCard makes a uniform choice over the current catalog.
func (p *Inventory) PickRandomCard(rng *rand.Rand) (store.ProductCard, error) {
	cards, err := p.ListCards()
	if err != nil {
		return store.ProductCard{}, err
	}
	if len(cards) == 0 {
		return store.ProductCard{}, xerrors.New(xerrors.CodeEmptyCatalog, "catalog has no cards")
	}
	return cards[rng.Intn(len(cards))], nil
}

// AddByIndex toggles the card at index on a freshly fetched list. The card
// must currently be out of the cart for this to be an add; the model does
// not verify the direction, matching the toggle affordance.
func (p *Inventory) AddByIndex(index int) error {
	return p.toggleByIndex(index)
}

// RemoveByIndex toggles the card at index on a freshly fetched list.
func (p *Inventory) RemoveByIndex(index int) error {
	return p.toggleByIndex(index)
}

func (p *Inventory) toggleByIndex(index int) error {
	cards, err := p.ListCards()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(cards) {
		return xerrors.Newf(xerrors.CodeIndexOutOfRange, "index %d outside catalog of %d", index, len(cards)).
			WithContext("index", index).
			WithContext("size", len(cards))
	}
	return cards[index].Toggle()
}

// ButtonLabel reads the toggle label of the card at index from a fresh list.
func (p *Inventory) ButtonLabel(index int) (string, error) {
	cards, err := p.ListCards()
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(cards) {
		return "", xerrors.Newf(xerrors.CodeIndexOutOfRange, "index %d outside catalog of %d", index, len(cards)).
			WithContext("index", index).
			WithContext("size", len(cards))
	}
	return cards[index].ButtonLabel()
}

// AddRandomItems toggles count distinct random catalog entries.
func (p *Inventory) AddRandomItems(rng *rand.Rand, count int) error {
	_, err := p.AddRandomItemsReturningIndices(rng, count)
	return err
}

// AddRandomItemsReturningIndices toggles count distinct random entries and
// returns the chosen indices. The size check happens before any mutation, and
// the card list is re-fetched after each toggle because the rendered list has
// no stable identity across mutations.
func (p *Inventory) AddRandomItemsReturningIndices(rng *rand.Rand, count int) ([]int, error) {
	cards, err := p.ListCards()
	if err != nil {
		return nil, err
	}
	if count > len(cards) {
		return nil, xerrors.Newf(xerrors.CodeInsufficientCatalog, "cannot add %d items from a catalog of %d", count, len(cards)).
			WithContext("count", count).
			WithContext("size", len(cards))
	}

	chosen := make(map[int]bool, count)
	indices := make([]int, 0, count)
	for len(indices) < count {
		idx := rng.Intn(len(cards))
		if chosen[idx] {
			continue
		}
		if err := cards[idx].Toggle(); err != nil {
			return indices, err
		}
		chosen[idx] = true
		indices = append(indices, idx)

		cards, err = p.ListCards()
		if err != nil {
			return indices, err
		}
	}
	_ = p.log.Info(logging.CategoryPage, "random_items_added", "toggled random catalog entries", map[string]any{"indices": indices})
	return indices, nil
}

// CardsByIndices reads the cards at the given indices from one fresh list.
func (p *Inventory) CardsByIndices(indices []int) ([]store.ProductCard, error) {
	cards, err := p.ListCards()
	if err != nil {
		return nil, err
	}
	picked := make([]store.ProductCard, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(cards) {
			return nil, xerrors.Newf(xerrors.CodeIndexOutOfRange, "index %d outside catalog of %d", idx, len(cards)).
				WithContext("index", idx).
				WithContext("size", len(cards))
		}
		picked = append(picked, cards[idx])
	}
	return picked, nil
}

// OpenRandomDetailByName opens a random card's detail page through its name
// link and returns the item it had on the catalog page.
func (p *Inventory) OpenRandomDetailByName(rng *rand.Rand) (store.Item, error) {
	card, err := p.PickRandomCard(rng)
	if err != nil {
		return store.Item{}, err
	}
	if err := card.ClickName(); err != nil {
		return store.Item{}, err
	}
	return card.Item, nil
}

// OpenRandomDetailByImage opens a random card's detail page through its
// image link.
func (p *Inventory) OpenRandomDetailByImage(rng *rand.Rand) (store.Item, error) {
	card, err := p.PickRandomCard(rng)
	if err != nil {
		return store.Item{}, err
	}
	if err := card.ClickImage(); err != nil {
		return store.Item{}, err
	}
	return card.Item, nil
}
