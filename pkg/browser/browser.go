// Package browser defines the port between page models and whatever is
// actually driving the storefront UI. Page models depend only on Driver and
// Element; adapters live in subpackages.
package browser

import "fmt"

// Strategy selects how a Locator is interpreted.
type Strategy string

const (
	ByID    Strategy = "id"
	ByClass Strategy = "class"
	ByTag   Strategy = "tag"
	ByName  Strategy = "name"
	ByCSS   Strategy = "css"
)

// Locator declaratively identifies zero or more elements on the current page.
// Locators are fixed, page-specific constants, never user input.
type Locator struct {
	Strategy Strategy
	Value    string
}

func ID(v string) Locator    { return Locator{Strategy: ByID, Value: v} }
func Class(v string) Locator { return Locator{Strategy: ByClass, Value: v} }
func Tag(v string) Locator   { return Locator{Strategy: ByTag, Value: v} }
func Name(v string) Locator  { return Locator{Strategy: ByName, Value: v} }
func CSS(v string) Locator   { return Locator{Strategy: ByCSS, Value: v} }

// CSSSelector renders the locator as a CSS selector. Both adapters resolve
// locators through CSS, so every strategy must have a CSS form.
func (l Locator) CSSSelector() string {
	switch l.Strategy {
	case ByID:
		return "#" + l.Value
	case ByClass:
		return "." + l.Value
	case ByTag:
		return l.Value
	case ByName:
		return fmt.Sprintf("[name=%q]", l.Value)
	default:
		return l.Value
	}
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Value)
}

// Element is a handle to one rendered UI element. Handles are valid only
// until the next page-mutating action; afterwards adapters may report
// ErrStaleElement.
type Element interface {
	// Click activates the element: follows a link, presses a button.
	Click() error
	// SendKeys types text into an input field.
	SendKeys(text string) error
	// SelectByValue picks an option of a select element by its value.
	SelectByValue(value string) error
	// Text returns the trimmed visible text of the element.
	Text() (string, error)
	// Attribute returns the named attribute, empty string when unset.
	Attribute(name string) (string, error)
	// Displayed reports whether the element is visible.
	Displayed() (bool, error)
	// Enabled reports whether the element accepts interaction.
	Enabled() (bool, error)
	// Find locates a descendant; ErrNoSuchElement when absent.
	Find(loc Locator) (Element, error)
	// FindAll locates all matching descendants; empty slice when none.
	FindAll(loc Locator) ([]Element, error)
}

// Driver is one browser session driving one sequential stream of UI actions.
type Driver interface {
	// Navigate loads the given URL.
	Navigate(url string) error
	// CurrentURL returns the URL of the current page.
	CurrentURL() (string, error)
	// Find locates the first match on the page; ErrNoSuchElement when absent.
	Find(loc Locator) (Element, error)
	// FindAll locates all matches on the page; empty slice when none.
	FindAll(loc Locator) ([]Element, error)
	// Close releases the session.
	Close() error
}

// Screenshotter is an optional driver capability used for failure capture.
type Screenshotter interface {
	Screenshot() ([]byte, error)
}
