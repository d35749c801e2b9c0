package pages

import (
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

var (
	usernameLoc     = browser.ID("user-name")
	passwordLoc     = browser.ID("password")
	loginButtonLoc  = browser.ID("login-button")
	errorBannerLoc  = browser.Class("error-message-container")
	errorTextLoc    = browser.CSS(".error-message-container h3")
	errorDismissLoc = browser.Class("error-button")
)

// Login models the login page.
type Login struct {
	base
}

// NewLogin builds the login model over drv.
func NewLogin(drv browser.Driver, log *logging.Logger, opts ...Option) *Login {
	return &Login{base: newBase(drv, log, opts)}
}

func (p *Login) EnterUsername(v string) error {
	el, err := browser.FindMandatory(p.drv, usernameLoc, "username field")
	if err != nil {
		return err
	}
	return el.SendKeys(v)
}

func (p *Login) EnterPassword(v string) error {
	el, err := browser.FindMandatory(p.drv, passwordLoc, "password field")
	if err != nil {
		return err
	}
	return el.SendKeys(v)
}

// Submit presses the login button.
func (p *Login) Submit() error {
	return p.click(loginButtonLoc, "login button")
}

// Login fills both credential fields and submits. It fails with LOGIN_FAILED
// when the page comes back with an error banner instead of moving on.
func (p *Login) Login(username, password string) error {
	if err := p.EnterUsername(username); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	if err := p.Submit(); err != nil {
		return err
	}

	banner, err := p.ErrorMessage()
	if err != nil {
		return err
	}
	if banner != "" {
		return xerrors.Newf(xerrors.CodeLoginFailed, "login rejected").
			WithContext("username", username).
			WithContext("banner", banner)
	}
	_ = p.log.Info(logging.CategoryFlow, "login", "logged in", map[string]any{"username": username})
	return nil
}

// ErrorMessage reads the error banner text, empty when no banner is shown.
func (p *Login) ErrorMessage() (string, error) {
	el, err := browser.FindOptional(p.drv, errorTextLoc)
	if err != nil {
		return "", err
	}
	if el == nil {
		return "", nil
	}
	return el.Text()
}

// HasError reports whether the error banner is rendered.
func (p *Login) HasError() (bool, error) {
	el, err := browser.FindOptional(p.drv, errorBannerLoc)
	if err != nil {
		return false, err
	}
	return el != nil, nil
}

// DismissError clears the error banner. The dismiss control is mandatory
// whenever this is called.
func (p *Login) DismissError() error {
	return p.click(errorDismissLoc, "error dismiss button")
}
