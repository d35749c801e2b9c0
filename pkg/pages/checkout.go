package pages

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/money"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
)

var (
	firstNameLoc   = browser.ID("first-name")
	lastNameLoc    = browser.ID("last-name")
	postalCodeLoc  = browser.ID("postal-code")
	continueLoc    = browser.ID("continue")
	cancelLoc      = browser.ID("cancel")
	finishLoc      = browser.ID("finish")
	backHomeLoc    = browser.ID("back-to-products")
	subtotalLoc    = browser.Class("summary_subtotal_label")
	taxLoc         = browser.Class("summary_tax_label")
	grandTotalLoc  = browser.Class("summary_total_label")
	completeHdrLoc = browser.Class("complete-header")
	completeTxtLoc = browser.Class("complete-text")
)

// CheckoutInformation models the first checkout step: the identity form.
type CheckoutInformation struct {
	base
}

// NewCheckoutInformation builds the information-step model over drv.
func NewCheckoutInformation(drv browser.Driver, log *logging.Logger, opts ...Option) *CheckoutInformation {
	return &CheckoutInformation{base: newBase(drv, log, opts)}
}

func (p *CheckoutInformation) EnterFirstName(v string) error {
	return p.enter(firstNameLoc, "first name field", v)
}

func (p *CheckoutInformation) EnterLastName(v string) error {
	return p.enter(lastNameLoc, "last name field", v)
}

func (p *CheckoutInformation) EnterPostalCode(v string) error {
	return p.enter(postalCodeLoc, "postal code field", v)
}

func (p *CheckoutInformation) enter(loc browser.Locator, label, value string) error {
	el, err := browser.FindMandatory(p.drv, loc, label)
	if err != nil {
		return err
	}
	return el.SendKeys(value)
}

// FirstNameDisplayed probes the first name field's visibility.
func (p *CheckoutInformation) FirstNameDisplayed() (bool, error) {
	return p.displayed(firstNameLoc, "first name field")
}

func (p *CheckoutInformation) LastNameDisplayed() (bool, error) {
	return p.displayed(lastNameLoc, "last name field")
}

func (p *CheckoutInformation) PostalCodeDisplayed() (bool, error) {
	return p.displayed(postalCodeLoc, "postal code field")
}

func (p *CheckoutInformation) displayed(loc browser.Locator, label string) (bool, error) {
	el, err := browser.FindMandatory(p.drv, loc, label)
	if err != nil {
		return false, err
	}
	return el.Displayed()
}

// Placeholders returns the three field placeholders in form order.
func (p *CheckoutInformation) Placeholders() ([3]string, error) {
	var out [3]string
	locs := []browser.Locator{firstNameLoc, lastNameLoc, postalCodeLoc}
	labels := []string{"first name field", "last name field", "postal code field"}
	for i := range locs {
		el, err := browser.FindMandatory(p.drv, locs[i], labels[i])
		if err != nil {
			return out, err
		}
		out[i], err = el.Attribute("placeholder")
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// FillRandomIdentity writes plausible random values into all three fields
// without submitting. Used by non-destructive smoke flows.
func (p *CheckoutInformation) FillRandomIdentity(rng *rand.Rand) error {
	firstNames := []string{"Alex", "Dana", "Kim", "Riley", "Sam", "Taylor"}
	lastNames := []string{"Harper", "Lindqvist", "Morales", "Okoye", "Silva", "Watts"}

	if err := p.EnterFirstName(firstNames[rng.Intn(len(firstNames))]); err != nil {
		return err
	}
	if err := p.EnterLastName(lastNames[rng.Intn(len(lastNames))]); err != nil {
		return err
	}
	return p.EnterPostalCode(fmt.Sprintf("%05d", rng.Intn(100000)))
}

// Continue submits the identity form, moving to the order overview.
func (p *CheckoutInformation) Continue() error {
	return p.click(continueLoc, "continue button")
}

// Cancel returns to the cart.
func (p *CheckoutInformation) Cancel() error {
	return p.click(cancelLoc, "cancel button")
}

// CheckoutOverview models the second checkout step: the order summary.
type CheckoutOverview struct {
	base
}

// NewCheckoutOverview builds the overview model over drv.
func NewCheckoutOverview(drv browser.Driver, log *logging.Logger, opts ...Option) *CheckoutOverview {
	return &CheckoutOverview{base: newBase(drv, log, opts)}
}

// OrderedItems reads the items rendered in the summary list.
func (p *CheckoutOverview) OrderedItems() ([]store.Item, error) {
	roots, err := browser.FindAllOptional(p.drv, cartItemLoc)
	if err != nil {
		return nil, err
	}
	return p.collectItems(browser.NormalizeList(roots), "checkout overview")
}

// ScrapedTotals reads the three rendered summary values.
func (p *CheckoutOverview) ScrapedTotals() (store.Totals, error) {
	var t store.Totals
	var err error
	if t.Sum, err = p.scrapeAmount(subtotalLoc, "item total"); err != nil {
		return store.Totals{}, err
	}
	if t.Tax, err = p.scrapeAmount(taxLoc, "tax"); err != nil {
		return store.Totals{}, err
	}
	if t.Total, err = p.scrapeAmount(grandTotalLoc, "total"); err != nil {
		return store.Totals{}, err
	}
	return t, nil
}

func (p *CheckoutOverview) scrapeAmount(loc browser.Locator, label string) (decimal.Decimal, error) {
	raw, err := p.text(loc, label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return money.ExtractPrice(raw)
}

// ComputedTotals derives the totals from the rendered items under the shared
// rounding rule, independent of the scraped summary values.
func (p *CheckoutOverview) ComputedTotals(taxRate decimal.Decimal) (store.Totals, error) {
	items, err := p.OrderedItems()
	if err != nil {
		return store.Totals{}, err
	}
	return store.ComputeTotals(items, taxRate), nil
}

// Finish places the order, moving to the completion page.
func (p *CheckoutOverview) Finish() error {
	return p.click(finishLoc, "finish button")
}

// Cancel returns to the cart.
func (p *CheckoutOverview) Cancel() error {
	return p.click(cancelLoc, "cancel button")
}

// CheckoutComplete models the final checkout step.
type CheckoutComplete struct {
	base
}

// NewCheckoutComplete builds the completion model over drv.
func NewCheckoutComplete(drv browser.Driver, log *logging.Logger, opts ...Option) *CheckoutComplete {
	return &CheckoutComplete{base: newBase(drv, log, opts)}
}

// CompleteHeader reads the order confirmation heading.
func (p *CheckoutComplete) CompleteHeader() (string, error) {
	return p.text(completeHdrLoc, "completion header")
}

// CompleteText reads the order confirmation body.
func (p *CheckoutComplete) CompleteText() (string, error) {
	return p.text(completeTxtLoc, "completion text")
}

// BackHomeLabel reads the back-home button label.
func (p *CheckoutComplete) BackHomeLabel() (string, error) {
	return p.text(backHomeLoc, "back home button")
}

// IsBackHomeDisplayed probes the back-home button's visibility.
func (p *CheckoutComplete) IsBackHomeDisplayed() (bool, error) {
	el, err := browser.FindMandatory(p.drv, backHomeLoc, "back home button")
	if err != nil {
		return false, err
	}
	return el.Displayed()
}

// BackHome returns to the catalog; the cart is left empty.
func (p *CheckoutComplete) BackHome() error {
	return p.click(backHomeLoc, "back home button")
}
