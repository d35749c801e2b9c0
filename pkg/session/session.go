// Package session owns the lifecycle of one test run: a driver, a logger,
// a seeded random source, and the page models built over them. One session
// drives one sequential stream of UI actions; nothing is shared across runs.
package session

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser"
	pwdriver "github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser/playwright"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/config"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/pages"
)

// Session bundles one run's driver, config, and models.
type Session struct {
	cfg *config.Config
	log *logging.Logger
	drv browser.Driver
	rng *rand.Rand

	ownsDriver bool
}

// New wraps an existing driver. The caller keeps ownership of drv; Close
// will not touch it. Used by hermetic runs that bring their own driver.
func New(cfg *config.Config, log *logging.Logger, drv browser.Driver) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{
		cfg: cfg,
		log: log,
		drv: drv,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Launch starts a Chromium session per the configuration and wraps it. The
// session owns the driver and tears it down on Close.
func Launch(cfg *config.Config, log *logging.Logger) (*Session, error) {
	if log == nil {
		log = logging.Nop()
	}
	drv, err := pwdriver.New(pwdriver.Options{Headless: cfg.Headless}, log)
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	s := New(cfg, log, drv)
	s.ownsDriver = true
	return s, nil
}

// Driver exposes the underlying driver for URL assertions.
func (s *Session) Driver() browser.Driver { return s.drv }

// RNG is the run's random source.
func (s *Session) RNG() *rand.Rand { return s.rng }

// Seed makes the run's random selection reproducible.
func (s *Session) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Config returns the run configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Login opens the base URL and signs in with the configured credentials.
func (s *Session) Login() error {
	if err := s.drv.Navigate(s.cfg.BaseURL); err != nil {
		return err
	}
	return s.LoginPage().Login(s.cfg.LoginUsername, s.cfg.LoginPassword)
}

// Page model accessors. Models are cheap stateless views; a fresh one per
// call keeps no references alive across mutations.

func (s *Session) LoginPage() *pages.Login { return pages.NewLogin(s.drv, s.log) }

func (s *Session) Inventory() *pages.Inventory { return pages.NewInventory(s.drv, s.log) }

func (s *Session) Cart() *pages.Cart { return pages.NewCart(s.drv, s.log) }

func (s *Session) Header() *pages.Header { return pages.NewHeader(s.drv, s.log) }

func (s *Session) CheckoutInformation() *pages.CheckoutInformation {
	return pages.NewCheckoutInformation(s.drv, s.log)
}

func (s *Session) CheckoutOverview() *pages.CheckoutOverview {
	return pages.NewCheckoutOverview(s.drv, s.log)
}

func (s *Session) CheckoutComplete() *pages.CheckoutComplete {
	return pages.NewCheckoutComplete(s.drv, s.log)
}

func (s *Session) ItemDetail() *pages.ItemDetail { return pages.NewItemDetail(s.drv, s.log) }

// CaptureFailure stores a screenshot under the log directory when the
// driver supports it. It returns the written path, or "" when the driver
// has no screenshot capability.
func (s *Session) CaptureFailure(name string) (string, error) {
	shooter, ok := s.drv.(browser.Screenshotter)
	if !ok {
		return "", nil
	}
	shot, err := shooter.Screenshot()
	if err != nil {
		return "", fmt.Errorf("capturing screenshot: %w", err)
	}

	dir := filepath.Join(s.cfg.LogDir, "screenshots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating screenshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", name, time.Now().Format("20060102-150405")))
	if err := os.WriteFile(path, shot, 0644); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	_ = s.log.Info(logging.CategorySession, "screenshot", "failure screenshot captured", map[string]any{"path": path})
	return path, nil
}

// Close releases the driver when the session owns it.
func (s *Session) Close() error {
	if !s.ownsDriver {
		return nil
	}
	return s.drv.Close()
}
