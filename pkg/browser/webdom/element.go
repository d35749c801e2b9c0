package webdom

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
)

type element struct {
	drv *Driver
	sel *goquery.Selection
	gen uint64
}

func (e *element) live() error {
	if e.drv.closed {
		return browser.ErrSessionClosed
	}
	if e.gen != e.drv.gen {
		return browser.ErrStaleElement
	}
	return nil
}

// Click follows the nearest enclosing link or submits the enclosing form of
// the nearest button, matching what a real click would do on a scriptless
// page.
func (e *element) Click() error {
	if err := e.live(); err != nil {
		return err
	}
	target := e.sel.Closest("a, button, input")
	if target.Length() == 0 {
		return fmt.Errorf("element %s is not clickable", goquery.NodeName(e.sel))
	}

	switch goquery.NodeName(target) {
	case "a":
		href := target.AttrOr("href", "")
		if href == "" {
			return nil
		}
		u, err := e.drv.resolve(href)
		if err != nil {
			return err
		}
		return e.drv.fetch(http.MethodGet, u, nil)
	case "button", "input":
		if goquery.NodeName(target) == "input" {
			if t := target.AttrOr("type", ""); t != "submit" && t != "" {
				return fmt.Errorf("input of type %q is not clickable", t)
			}
		}
		form := target.Closest("form")
		if form.Length() == 0 {
			return fmt.Errorf("button has no enclosing form")
		}
		return e.drv.submit(form, target.AttrOr("name", ""), target.AttrOr("value", ""))
	}
	return fmt.Errorf("element %s is not clickable", goquery.NodeName(target))
}

// SendKeys types into a text field by setting its value in the DOM.
func (e *element) SendKeys(text string) error {
	if err := e.live(); err != nil {
		return err
	}
	switch goquery.NodeName(e.sel) {
	case "input":
		e.sel.SetAttr("value", text)
	case "textarea":
		e.sel.SetText(text)
	default:
		return fmt.Errorf("element %s does not accept keyboard input", goquery.NodeName(e.sel))
	}
	return nil
}

// SelectByValue picks the option with the given value and submits the
// enclosing form, standing in for the change event a real select fires.
func (e *element) SelectByValue(value string) error {
	if err := e.live(); err != nil {
		return err
	}
	if goquery.NodeName(e.sel) != "select" {
		return fmt.Errorf("element %s is not a select", goquery.NodeName(e.sel))
	}
	found := false
	e.sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		opt.RemoveAttr("selected")
		if opt.AttrOr("value", "") == value {
			opt.SetAttr("selected", "selected")
			found = true
		}
	})
	if !found {
		return fmt.Errorf("select has no option with value %q: %w", value, browser.ErrNoSuchElement)
	}
	form := e.sel.Closest("form")
	if form.Length() == 0 {
		return nil
	}
	return e.drv.submit(form, "", "")
}

// Text returns the visible text with whitespace collapsed.
func (e *element) Text() (string, error) {
	if err := e.live(); err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(e.sel.Text()), " "), nil
}

// Attribute returns the named attribute, resolving src and href against the
// page URL.
func (e *element) Attribute(name string) (string, error) {
	if err := e.live(); err != nil {
		return "", err
	}
	val := e.sel.AttrOr(name, "")
	if val != "" && (name == "src" || name == "href") {
		u, err := e.drv.resolve(val)
		if err == nil {
			return u.String(), nil
		}
	}
	return val, nil
}

func (e *element) Displayed() (bool, error) {
	if err := e.live(); err != nil {
		return false, err
	}
	if goquery.NodeName(e.sel) == "input" && e.sel.AttrOr("type", "") == "hidden" {
		return false, nil
	}
	hidden := false
	for s := e.sel; s.Length() > 0; s = s.Parent() {
		if goquery.NodeName(s) == "html" {
			break
		}
		if _, ok := s.Attr("hidden"); ok {
			hidden = true
			break
		}
		if style, ok := s.Attr("style"); ok && strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none") {
			hidden = true
			break
		}
	}
	return !hidden, nil
}

func (e *element) Enabled() (bool, error) {
	if err := e.live(); err != nil {
		return false, err
	}
	_, disabled := e.sel.Attr("disabled")
	return !disabled, nil
}

func (e *element) Find(loc browser.Locator) (browser.Element, error) {
	if err := e.live(); err != nil {
		return nil, err
	}
	sel := e.sel.Find(loc.CSSSelector())
	if sel.Length() == 0 {
		return nil, browser.ErrNoSuchElement
	}
	return &element{drv: e.drv, sel: sel.First(), gen: e.gen}, nil
}

func (e *element) FindAll(loc browser.Locator) ([]browser.Element, error) {
	if err := e.live(); err != nil {
		return nil, err
	}
	sel := e.sel.Find(loc.CSSSelector())
	els := make([]browser.Element, 0, sel.Length())
	for i := 0; i < sel.Length(); i++ {
		els = append(els, &element{drv: e.drv, sel: sel.Eq(i), gen: e.gen})
	}
	return els, nil
}

// submit serializes a form and performs its request.
func (d *Driver) submit(form *goquery.Selection, submitterName, submitterValue string) error {
	vals := formValues(form)
	if submitterName != "" {
		vals.Set(submitterName, submitterValue)
	}

	action := form.AttrOr("action", "")
	var target *url.URL
	var err error
	if action == "" {
		target = d.url
	} else {
		target, err = d.resolve(action)
		if err != nil {
			return err
		}
	}

	method := strings.ToUpper(form.AttrOr("method", http.MethodGet))
	if method == http.MethodPost {
		return d.fetch(http.MethodPost, target, vals)
	}
	u := *target
	u.RawQuery = vals.Encode()
	return d.fetch(http.MethodGet, &u, nil)
}

// formValues collects the successful controls of a form the way a browser
// would on submit.
func formValues(form *goquery.Selection) url.Values {
	vals := url.Values{}
	form.Find("input").Each(func(_ int, in *goquery.Selection) {
		name := in.AttrOr("name", "")
		if name == "" {
			return
		}
		switch in.AttrOr("type", "text") {
		case "submit", "button", "reset", "image":
			// submitter handled by the caller
		case "checkbox", "radio":
			if _, checked := in.Attr("checked"); checked {
				vals.Add(name, in.AttrOr("value", "on"))
			}
		default:
			vals.Add(name, in.AttrOr("value", ""))
		}
	})
	form.Find("select").Each(func(_ int, sel *goquery.Selection) {
		name := sel.AttrOr("name", "")
		if name == "" {
			return
		}
		opts := sel.Find("option")
		if opts.Length() == 0 {
			return
		}
		chosen := opts.First()
		opts.EachWithBreak(func(_ int, opt *goquery.Selection) bool {
			if _, ok := opt.Attr("selected"); ok {
				chosen = opt
				return false
			}
			return true
		})
		vals.Add(name, chosen.AttrOr("value", chosen.Text()))
	})
	form.Find("textarea").Each(func(_ int, ta *goquery.Selection) {
		if name := ta.AttrOr("name", ""); name != "" {
			vals.Add(name, ta.Text())
		}
	})
	return vals
}
