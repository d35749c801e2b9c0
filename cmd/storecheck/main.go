// storecheck runs a non-destructive smoke flow against the configured
// storefront: login, catalog verification, an add/remove round trip, and a
// checkout dry run that is cancelled before placing an order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/config"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/session"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/verify"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitSetup   = 2
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to YAML config file")
		seed        = flag.Int64("seed", 0, "seed for random selection (0 = time-based)")
		itemCount   = flag.Int("items", 3, "number of random items for the cart round trip")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("storecheck %s (%s, built %s)\n", version, commit, buildDate)
		os.Exit(exitOK)
	}

	os.Exit(run(*configPath, *seed, *itemCount))
}

func run(configPath string, seed int64, itemCount int) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return exitSetup
	}

	log, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return exitSetup
	}
	defer log.Close()
	fmt.Printf("run %s -> %s\n", log.RunID(), cfg.BaseURL)

	sess, err := session.Launch(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		return exitSetup
	}
	defer sess.Close()
	if seed != 0 {
		sess.Seed(seed)
	}

	rec := &recorder{}
	if err := smoke(sess, rec, itemCount); err != nil {
		fmt.Fprintf(os.Stderr, "smoke flow aborted: %v\n", err)
		if path, serr := sess.CaptureFailure("smoke"); serr == nil && path != "" {
			fmt.Fprintf(os.Stderr, "screenshot: %s\n", path)
		}
		return exitFailure
	}
	if len(rec.failures) > 0 {
		for _, f := range rec.failures {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
		}
		if path, serr := sess.CaptureFailure("smoke"); serr == nil && path != "" {
			fmt.Fprintf(os.Stderr, "screenshot: %s\n", path)
		}
		return exitFailure
	}

	fmt.Println("smoke flow passed")
	return exitOK
}

// smoke drives the flow; hard errors abort, soft mismatches accumulate in
// rec.
func smoke(sess *session.Session, rec *recorder, itemCount int) error {
	cfg := sess.Config()

	if err := sess.Login(); err != nil {
		return err
	}
	verify.CurrentURL(rec, sess.Driver(), cfg.PageURL(cfg.Pages.Inventory))

	// Catalog shape.
	inventory := sess.Inventory()
	cards, err := inventory.ListCards()
	if err != nil {
		return err
	}
	if len(cards) != cfg.ExpectedProductCount {
		rec.Errorf("catalog has %d cards, expected %d", len(cards), cfg.ExpectedProductCount)
	}
	for _, card := range cards {
		verify.CardComplete(rec, card)
	}

	// Cart round trip with random items.
	indices, err := inventory.AddRandomItemsReturningIndices(sess.RNG(), itemCount)
	if err != nil {
		return err
	}
	verify.CartBadge(rec, sess.Header(), len(indices))

	added, err := inventory.CardsByIndices(indices)
	if err != nil {
		return err
	}
	expected := make([]store.Item, 0, len(added))
	for _, c := range added {
		expected = append(expected, c.Item)
	}

	if err := sess.Header().OpenCart(); err != nil {
		return err
	}
	inCart, err := sess.Cart().ListCards()
	if err != nil {
		return err
	}
	verify.CardsMatchItems(rec, expected, inCart)

	// Checkout dry run: confirm the rendered totals and back out.
	if err := sess.Cart().GoToCheckout(); err != nil {
		return err
	}
	info := sess.CheckoutInformation()
	if err := info.FillRandomIdentity(sess.RNG()); err != nil {
		return err
	}
	if err := info.Continue(); err != nil {
		return err
	}

	overview := sess.CheckoutOverview()
	scraped, err := overview.ScrapedTotals()
	if err != nil {
		return err
	}
	computed, err := overview.ComputedTotals(cfg.Tax())
	if err != nil {
		return err
	}
	verify.TotalsMatch(rec, computed, scraped)

	if err := overview.Cancel(); err != nil {
		return err
	}

	// Leave the cart the way we found it.
	if err := sess.Cart().ContinueShopping(); err != nil {
		return err
	}
	for range indices {
		fresh, err := inventory.ListCards()
		if err != nil {
			return err
		}
		for i, card := range fresh {
			label, err := card.ButtonLabel()
			if err != nil {
				return err
			}
			if label == store.RemoveLabel {
				if err := inventory.RemoveByIndex(i); err != nil {
					return err
				}
				break
			}
		}
	}
	empty, err := sess.Header().IsCartEmpty()
	if err != nil {
		return err
	}
	if !empty {
		rec.Errorf("cart not empty after cleanup")
	}
	return nil
}

// recorder satisfies the verification layer's reporting interface outside
// of a test binary.
type recorder struct {
	failures []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}
