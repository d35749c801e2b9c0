// Package playwright adapts a real Chromium session to the browser port.
// It is the driver used against the live storefront; hermetic runs use
// webdom instead.
package playwright

import (
	"fmt"
	"strings"

	pw "github.com/playwright-community/playwright-go"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
)

// Options configures the browser launch.
type Options struct {
	Headless bool
}

// Driver is one Chromium page wired to the browser port. It also implements
// browser.Screenshotter.
type Driver struct {
	runner  *pw.Playwright
	browser pw.Browser
	page    pw.Page
	log     *logging.Logger
	closed  bool
}

// New launches Chromium and opens a fresh page.
func New(opts Options, log *logging.Logger) (*Driver, error) {
	if log == nil {
		log = logging.Nop()
	}
	runner, err := pw.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	b, err := runner.Chromium.Launch(pw.BrowserTypeLaunchOptions{
		Headless: pw.Bool(opts.Headless),
	})
	if err != nil {
		_ = runner.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}
	page, err := b.NewPage()
	if err != nil {
		_ = b.Close()
		_ = runner.Stop()
		return nil, fmt.Errorf("opening page: %w", err)
	}
	return &Driver{runner: runner, browser: b, page: page, log: log}, nil
}

func (d *Driver) Navigate(url string) error {
	if d.closed {
		return browser.ErrSessionClosed
	}
	_ = d.log.Debug(logging.CategoryDriver, "navigate", "loading page", map[string]any{"url": url})
	if _, err := d.page.Goto(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (d *Driver) CurrentURL() (string, error) {
	if d.closed {
		return "", browser.ErrSessionClosed
	}
	return d.page.URL(), nil
}

func (d *Driver) Find(loc browser.Locator) (browser.Element, error) {
	if d.closed {
		return nil, browser.ErrSessionClosed
	}
	handle, err := d.page.QuerySelector(loc.CSSSelector())
	if err != nil {
		return nil, mapErr(err)
	}
	if handle == nil {
		return nil, browser.ErrNoSuchElement
	}
	return &element{drv: d, handle: handle}, nil
}

func (d *Driver) FindAll(loc browser.Locator) ([]browser.Element, error) {
	if d.closed {
		return nil, browser.ErrSessionClosed
	}
	handles, err := d.page.QuerySelectorAll(loc.CSSSelector())
	if err != nil {
		return nil, mapErr(err)
	}
	els := make([]browser.Element, 0, len(handles))
	for _, h := range handles {
		els = append(els, &element{drv: d, handle: h})
	}
	return els, nil
}

// Screenshot captures the full current page as PNG.
func (d *Driver) Screenshot() ([]byte, error) {
	if d.closed {
		return nil, browser.ErrSessionClosed
	}
	shot, err := d.page.Screenshot(pw.PageScreenshotOptions{FullPage: pw.Bool(true)})
	if err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}
	return shot, nil
}

// Close tears down the page, the browser, and the playwright runner.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	var firstErr error
	if err := d.page.Close(); err != nil {
		firstErr = err
	}
	if err := d.browser.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := d.runner.Stop(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

type element struct {
	drv    *Driver
	handle pw.ElementHandle
}

func (e *element) Click() error {
	if e.drv.closed {
		return browser.ErrSessionClosed
	}
	return mapErr(e.handle.Click())
}

func (e *element) SendKeys(text string) error {
	if e.drv.closed {
		return browser.ErrSessionClosed
	}
	return mapErr(e.handle.Fill(text))
}

func (e *element) SelectByValue(value string) error {
	if e.drv.closed {
		return browser.ErrSessionClosed
	}
	selected, err := e.handle.SelectOption(pw.SelectOptionValues{Values: &[]string{value}})
	if err != nil {
		return mapErr(err)
	}
	if len(selected) == 0 {
		return fmt.Errorf("select has no option with value %q: %w", value, browser.ErrNoSuchElement)
	}
	return nil
}

func (e *element) Text() (string, error) {
	if e.drv.closed {
		return "", browser.ErrSessionClosed
	}
	text, err := e.handle.InnerText()
	if err != nil {
		return "", mapErr(err)
	}
	return strings.TrimSpace(text), nil
}

func (e *element) Attribute(name string) (string, error) {
	if e.drv.closed {
		return "", browser.ErrSessionClosed
	}
	val, err := e.handle.GetAttribute(name)
	if err != nil {
		return "", mapErr(err)
	}
	return val, nil
}

func (e *element) Displayed() (bool, error) {
	if e.drv.closed {
		return false, browser.ErrSessionClosed
	}
	visible, err := e.handle.IsVisible()
	if err != nil {
		return false, mapErr(err)
	}
	return visible, nil
}

func (e *element) Enabled() (bool, error) {
	if e.drv.closed {
		return false, browser.ErrSessionClosed
	}
	enabled, err := e.handle.IsEnabled()
	if err != nil {
		return false, mapErr(err)
	}
	return enabled, nil
}

func (e *element) Find(loc browser.Locator) (browser.Element, error) {
	if e.drv.closed {
		return nil, browser.ErrSessionClosed
	}
	handle, err := e.handle.QuerySelector(loc.CSSSelector())
	if err != nil {
		return nil, mapErr(err)
	}
	if handle == nil {
		return nil, browser.ErrNoSuchElement
	}
	return &element{drv: e.drv, handle: handle}, nil
}

func (e *element) FindAll(loc browser.Locator) ([]browser.Element, error) {
	if e.drv.closed {
		return nil, browser.ErrSessionClosed
	}
	handles, err := e.handle.QuerySelectorAll(loc.CSSSelector())
	if err != nil {
		return nil, mapErr(err)
	}
	els := make([]browser.Element, 0, len(handles))
	for _, h := range handles {
		els = append(els, &element{drv: e.drv, handle: h})
	}
	return els, nil
}

// mapErr translates playwright failure messages to the port's sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not attached"):
		return fmt.Errorf("%w: %s", browser.ErrStaleElement, msg)
	case strings.Contains(msg, "Target closed") || strings.Contains(msg, "has been closed"):
		return fmt.Errorf("%w: %s", browser.ErrSessionClosed, msg)
	}
	return err
}
