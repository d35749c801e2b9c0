package pages

import (
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/money"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
)

var (
	detailNameLoc   = browser.Class("inventory_details_name")
	detailDescLoc   = browser.Class("inventory_details_desc")
	detailPriceLoc  = browser.Class("inventory_details_price")
	detailImageLoc  = browser.Class("inventory_details_img")
	detailToggleLoc = browser.CSS(".inventory_details_desc_container button")
	backLoc         = browser.ID("back-to-products")
)

// ItemDetail models a single product's detail page.
type ItemDetail struct {
	base
}

// NewItemDetail builds the detail model over drv.
func NewItemDetail(drv browser.Driver, log *logging.Logger, opts ...Option) *ItemDetail {
	return &ItemDetail{base: newBase(drv, log, opts)}
}

// Item reads the rendered product. All value parts are mandatory on this
// page, the image included.
func (p *ItemDetail) Item() (store.Item, error) {
	name, err := p.text(detailNameLoc, "product name")
	if err != nil {
		return store.Item{}, err
	}
	desc, err := p.text(detailDescLoc, "product description")
	if err != nil {
		return store.Item{}, err
	}
	raw, err := p.text(detailPriceLoc, "product price")
	if err != nil {
		return store.Item{}, err
	}
	price, err := money.ExtractPrice(raw)
	if err != nil {
		return store.Item{}, err
	}

	img, err := browser.FindMandatory(p.drv, detailImageLoc, "product image")
	if err != nil {
		return store.Item{}, err
	}
	src, err := img.Attribute("src")
	if err != nil {
		return store.Item{}, err
	}
	return store.Item{Name: name, Description: desc, Price: price, ImageRef: src}, nil
}

// Toggle presses the add/remove button. The button is absent for unknown
// items, in which case this fails as element-not-found.
func (p *ItemDetail) Toggle() error {
	return p.click(detailToggleLoc, "toggle button")
}

// ToggleLabel reads the add/remove button label.
func (p *ItemDetail) ToggleLabel() (string, error) {
	return p.text(detailToggleLoc, "toggle button")
}

// HasToggle reports whether the add/remove button is rendered; unknown
// items render none.
func (p *ItemDetail) HasToggle() (bool, error) {
	el, err := browser.FindOptional(p.drv, detailToggleLoc)
	if err != nil {
		return false, err
	}
	return el != nil, nil
}

// BackToProducts returns to the catalog page.
func (p *ItemDetail) BackToProducts() error {
	return p.click(backLoc, "back to products button")
}
