package pages

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// fakeNode is a minimal in-memory element for exercising extraction without
// a rendered page.
type fakeNode struct {
	text     string
	attrs    map[string]string
	children map[string]*fakeNode
}

func (n *fakeNode) Click() error               { return nil }
func (n *fakeNode) SendKeys(string) error      { return nil }
func (n *fakeNode) SelectByValue(string) error { return nil }
func (n *fakeNode) Text() (string, error)      { return n.text, nil }
func (n *fakeNode) Displayed() (bool, error)   { return true, nil }
func (n *fakeNode) Enabled() (bool, error)     { return true, nil }

func (n *fakeNode) Attribute(k string) (string, error) {
	return n.attrs[k], nil
}

func (n *fakeNode) Find(loc browser.Locator) (browser.Element, error) {
	child, ok := n.children[loc.CSSSelector()]
	if !ok {
		return nil, browser.ErrNoSuchElement
	}
	return child, nil
}

func (n *fakeNode) FindAll(loc browser.Locator) ([]browser.Element, error) {
	child, ok := n.children[loc.CSSSelector()]
	if !ok {
		return nil, nil
	}
	return []browser.Element{child}, nil
}

func fakeCard(name, price string) *fakeNode {
	return &fakeNode{children: map[string]*fakeNode{
		".inventory_item_name":  {text: name},
		".inventory_item_desc":  {text: "a fine product"},
		".inventory_item_price": {text: price},
		"button":                {text: "Add to cart"},
	}}
}

func TestCollectCardsPropagatesMalformedCard(t *testing.T) {
	b := newBase(nil, nil, nil)
	roots := []browser.Element{
		fakeCard("First", "$10.00"),
		fakeCard("Second", "free!"),
		fakeCard("Third", "$5.00"),
	}

	_, err := b.collectCards(roots, "test")
	require.Error(t, err)
	require.True(t, xerrors.IsCode(err, xerrors.CodeCardExtraction), "got %v", err)
	require.Contains(t, err.Error(), string(xerrors.CodeMalformedPrice))
}

func TestCollectCardsSkipsMalformedCard(t *testing.T) {
	b := newBase(nil, nil, []Option{WithExtractPolicy(PolicySkip)})
	roots := []browser.Element{
		fakeCard("First", "$10.00"),
		fakeCard("Second", "free!"),
		fakeCard("Third", "$5.00"),
	}

	cards, err := b.collectCards(roots, "test")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.Equal(t, "First", cards[0].Item.Name)
	require.Equal(t, "Third", cards[1].Item.Name)
}

func TestCollectCardsMissingMandatoryPart(t *testing.T) {
	card := fakeCard("Broken", "$1.00")
	delete(card.children, ".inventory_item_price")

	b := newBase(nil, nil, nil)
	_, err := b.collectCards([]browser.Element{card}, "test")
	require.Error(t, err)
	require.Contains(t, err.Error(), string(xerrors.CodeElementNotFound))
}
