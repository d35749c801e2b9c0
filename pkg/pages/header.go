package pages

import (
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

var (
	titleLoc    = browser.Class("title")
	badgeLoc    = browser.Class("shopping_cart_badge")
	cartLinkLoc = browser.ID("shopping_cart_container")
)

// Header models the shared page header: the title and the cart badge. The
// badge encodes zero by being absent; it never renders a literal "0".
type Header struct {
	base
}

// NewHeader builds the header model over drv.
func NewHeader(drv browser.Driver, log *logging.Logger, opts ...Option) *Header {
	return &Header{base: newBase(drv, log, opts)}
}

// Title reads the page title. The title is mandatory.
func (p *Header) Title() (string, error) {
	return p.text(titleLoc, "page title")
}

// CartCount reads the badge text. The second return reports presence: an
// absent badge means an empty cart. With required set, absence fails with
// BADGE_NOT_FOUND instead.
func (p *Header) CartCount(required bool) (string, bool, error) {
	badge, err := browser.FindOptional(p.drv, badgeLoc)
	if err != nil {
		return "", false, err
	}
	if badge == nil {
		if required {
			url, _ := p.drv.CurrentURL()
			return "", false, xerrors.New(xerrors.CodeBadgeNotFound, "cart badge not rendered").
				WithContext("url", url)
		}
		return "", false, nil
	}
	count, err := badge.Text()
	if err != nil {
		return "", false, err
	}
	return count, true, nil
}

// IsCartEmpty reports whether the badge is absent.
func (p *Header) IsCartEmpty() (bool, error) {
	_, present, err := p.CartCount(false)
	if err != nil {
		return false, err
	}
	return !present, nil
}

// OpenCart navigates to the cart page through the header link.
func (p *Header) OpenCart() error {
	return p.click(cartLinkLoc, "cart link")
}
