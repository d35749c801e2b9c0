package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// Default configuration values exported for documentation and validation
const (
	DefaultBaseURL              = "https://www.saucedemo.com"
	DefaultUsername             = "standard_user"
	DefaultPassword             = "secret_sauce"
	DefaultTaxRate              = "0.08"
	DefaultExpectedProductCount = 6
	DefaultLogDir               = ".storecheck/logs"
)

// PageURLs are the expected URLs for navigation assertions. Relative paths
// are resolved against BaseURL at load time.
type PageURLs struct {
	Inventory        string `yaml:"inventory"`
	Cart             string `yaml:"cart"`
	CheckoutStepOne  string `yaml:"checkout_step_one"`
	CheckoutOverview string `yaml:"checkout_overview"`
	CheckoutComplete string `yaml:"checkout_complete"`
	ItemDetail       string `yaml:"item_detail"`
}

// Config is the complete framework configuration. It is read-only for the
// duration of one test execution.
type Config struct {
	BaseURL              string   `yaml:"base_url"`
	LoginUsername        string   `yaml:"login_username"`
	LoginPassword        string   `yaml:"login_password"`
	TaxRate              string   `yaml:"tax_rate"`
	ExpectedProductCount int      `yaml:"expected_product_count"`
	Headless             bool     `yaml:"headless"`
	LogDir               string   `yaml:"log_dir"`
	Pages                PageURLs `yaml:"pages"`

	taxRate decimal.Decimal
}

// Default returns the configuration pointed at the public demo storefront.
func Default() *Config {
	return &Config{
		BaseURL:              DefaultBaseURL,
		LoginUsername:        DefaultUsername,
		LoginPassword:        DefaultPassword,
		TaxRate:              DefaultTaxRate,
		ExpectedProductCount: DefaultExpectedProductCount,
		Headless:             true,
		LogDir:               DefaultLogDir,
		Pages: PageURLs{
			Inventory:        "/inventory.html",
			Cart:             "/cart.html",
			CheckoutStepOne:  "/checkout-step-one.html",
			CheckoutOverview: "/checkout-step-two.html",
			CheckoutComplete: "/checkout-complete.html",
			ItemDetail:       "/inventory-item.html",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment overrides, then validates it. path may be empty.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, xerrors.Wrap(err, xerrors.CodeConfigLoad, "reading config file").
				WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, xerrors.Wrap(err, xerrors.CodeConfigLoad, "parsing config file").
				WithContext("path", path)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values, so CI can
// retarget a run without editing the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STORECHECK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("STORECHECK_USERNAME"); v != "" {
		cfg.LoginUsername = v
	}
	if v := os.Getenv("STORECHECK_PASSWORD"); v != "" {
		cfg.LoginPassword = v
	}
	if v := os.Getenv("STORECHECK_TAX_RATE"); v != "" {
		cfg.TaxRate = v
	}
	if v := os.Getenv("STORECHECK_PRODUCT_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ExpectedProductCount = n
		}
	}
	if v := os.Getenv("STORECHECK_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		cfg.Headless = v != "false"
	}
}

// Validate checks the configuration and caches parsed values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return xerrors.New(xerrors.CodeConfigInvalid, "base_url is required")
	}
	if c.LoginUsername == "" {
		return xerrors.New(xerrors.CodeConfigInvalid, "login_username is required")
	}
	if c.ExpectedProductCount <= 0 {
		return xerrors.Newf(xerrors.CodeConfigInvalid, "expected_product_count must be positive, got %d", c.ExpectedProductCount)
	}

	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return xerrors.Wrap(err, xerrors.CodeConfigInvalid, "tax_rate did not parse").
			WithContext("tax_rate", c.TaxRate)
	}
	if rate.IsNegative() {
		return xerrors.Newf(xerrors.CodeConfigInvalid, "tax_rate must be non-negative, got %s", c.TaxRate)
	}
	c.taxRate = rate
	return nil
}

// Tax returns the parsed tax rate. Validate must have succeeded first.
func (c *Config) Tax() decimal.Decimal {
	return c.taxRate
}

// PageURL resolves a configured page path against the base URL. Absolute
// URLs pass through unchanged.
func (c *Config) PageURL(page string) string {
	if page == "" || page[0] != '/' {
		return page
	}
	base := c.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return fmt.Sprintf("%s%s", base, page)
}
