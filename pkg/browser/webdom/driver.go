// Package webdom is a browser.Driver over plain HTTP and a parsed DOM. It
// drives server-rendered pages the way a scriptless browser would: links are
// followed, buttons submit their enclosing form, typed text lands in form
// fields. It exists so the page models can run hermetically against the
// storefront replica, with no real browser in the loop.
package webdom

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
)

// Driver holds one HTTP session and the DOM of the last loaded page.
type Driver struct {
	client *http.Client
	log    *logging.Logger

	// gen increments on every page load; elements created against an older
	// generation are stale.
	gen    uint64
	url    *url.URL
	doc    *goquery.Document
	closed bool
}

// New creates a driver with a fresh cookie jar.
func New(log *logging.Logger) (*Driver, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Driver{
		client: &http.Client{Jar: jar},
		log:    log,
	}, nil
}

// Navigate loads the given URL with a GET request.
func (d *Driver) Navigate(raw string) error {
	if d.closed {
		return browser.ErrSessionClosed
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing url %q: %w", raw, err)
	}
	_ = d.log.Debug(logging.CategoryDriver, "navigate", "loading page", map[string]any{"url": raw})
	return d.fetch(http.MethodGet, u, nil)
}

// CurrentURL returns the URL of the current page.
func (d *Driver) CurrentURL() (string, error) {
	if d.closed {
		return "", browser.ErrSessionClosed
	}
	if d.url == nil {
		return "", nil
	}
	return d.url.String(), nil
}

// Find locates the first match on the page.
func (d *Driver) Find(loc browser.Locator) (browser.Element, error) {
	if err := d.loaded(); err != nil {
		return nil, err
	}
	sel := d.doc.Find(loc.CSSSelector())
	if sel.Length() == 0 {
		return nil, browser.ErrNoSuchElement
	}
	return &element{drv: d, sel: sel.First(), gen: d.gen}, nil
}

// FindAll locates all matches on the page.
func (d *Driver) FindAll(loc browser.Locator) ([]browser.Element, error) {
	if err := d.loaded(); err != nil {
		return nil, err
	}
	sel := d.doc.Find(loc.CSSSelector())
	els := make([]browser.Element, 0, sel.Length())
	for i := 0; i < sel.Length(); i++ {
		els = append(els, &element{drv: d, sel: sel.Eq(i), gen: d.gen})
	}
	return els, nil
}

// Close ends the session; all elements become unusable.
func (d *Driver) Close() error {
	d.closed = true
	d.doc = nil
	return nil
}

func (d *Driver) loaded() error {
	if d.closed {
		return browser.ErrSessionClosed
	}
	if d.doc == nil {
		return fmt.Errorf("no page loaded")
	}
	return nil
}

// fetch performs a request and replaces the current document, bumping the
// generation so outstanding elements go stale.
func (d *Driver) fetch(method string, u *url.URL, form url.Values) error {
	var req *http.Request
	var err error
	if method == http.MethodPost {
		req, err = http.NewRequest(method, u.String(), strings.NewReader(form.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequest(method, u.String(), nil)
	}
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: status %d", method, u, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parsing response from %s: %w", u, err)
	}

	d.doc = doc
	d.url = resp.Request.URL
	d.gen++
	return nil
}

// resolve makes a possibly-relative reference absolute against the current
// page URL.
func (d *Driver) resolve(ref string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return nil, fmt.Errorf("parsing reference %q: %w", ref, err)
	}
	if d.url == nil {
		return u, nil
	}
	return d.url.ResolveReference(u), nil
}
