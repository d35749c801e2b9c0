package pages_test

import (
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/browser/webdom"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/logging"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/pages"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/storefront"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/verify"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// newStore starts a storefront replica and a logged-in driver against it.
func newStore(t *testing.T, opts storefront.Options) (*webdom.Driver, string) {
	t.Helper()
	srv := httptest.NewServer(storefront.New(opts))
	t.Cleanup(srv.Close)

	drv, err := webdom.New(logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = drv.Close() })

	require.NoError(t, drv.Navigate(srv.URL+"/"))
	require.NoError(t, pages.NewLogin(drv, nil).Login("standard_user", "secret_sauce"))
	return drv, srv.URL
}

func defaultStore(t *testing.T) (*webdom.Driver, string) {
	t.Helper()
	return newStore(t, storefront.DefaultOptions())
}

func rng() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func TestListCardsReadsFullCatalog(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)

	cards, err := inv.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 6)

	for _, card := range cards {
		verify.CardComplete(t, card)
		require.NotEmpty(t, card.Item.ImageRef)
		require.True(t, card.HasImageLink())

		label, err := card.ButtonLabel()
		require.NoError(t, err)
		require.Equal(t, store.AddToCartLabel, label)
	}

	count, err := inv.Count()
	require.NoError(t, err)
	require.Equal(t, len(cards), count)
}

func TestSortOrders(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)

	names := func() []string {
		cards, err := inv.ListCards()
		require.NoError(t, err)
		out := make([]string, len(cards))
		for i, c := range cards {
			out[i] = c.Item.Name
		}
		return out
	}
	prices := func() []decimal.Decimal {
		cards, err := inv.ListCards()
		require.NoError(t, err)
		out := make([]decimal.Decimal, len(cards))
		for i, c := range cards {
			out[i] = c.Item.Price
		}
		return out
	}
	reversed := func(in []string) []string {
		out := make([]string, len(in))
		for i, v := range in {
			out[len(in)-1-i] = v
		}
		return out
	}

	require.NoError(t, inv.SortBy(pages.SortNameAsc))
	asc := names()
	for i := 1; i < len(asc); i++ {
		require.LessOrEqual(t, asc[i-1], asc[i])
	}

	require.NoError(t, inv.SortBy(pages.SortNameDesc))
	require.Equal(t, reversed(asc), names())

	require.NoError(t, inv.SortBy(pages.SortPriceAsc))
	cheap := prices()
	for i := 1; i < len(cheap); i++ {
		require.True(t, cheap[i-1].LessThanOrEqual(cheap[i]),
			"prices not non-decreasing at %d: %s > %s", i, cheap[i-1], cheap[i])
	}

	require.NoError(t, inv.SortBy(pages.SortPriceDesc))
	dear := prices()
	require.Equal(t, len(cheap), len(dear))
	for i := 1; i < len(dear); i++ {
		require.True(t, dear[i].LessThanOrEqual(dear[i-1]))
	}
}

func TestToggleLabelRoundTrip(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)

	label, err := inv.ButtonLabel(0)
	require.NoError(t, err)
	require.Equal(t, store.AddToCartLabel, label)

	require.NoError(t, inv.AddByIndex(0))
	label, err = inv.ButtonLabel(0)
	require.NoError(t, err)
	require.Equal(t, store.RemoveLabel, label)
	verify.CartBadge(t, hdr, 1)

	require.NoError(t, inv.RemoveByIndex(0))
	label, err = inv.ButtonLabel(0)
	require.NoError(t, err)
	require.Equal(t, store.AddToCartLabel, label)

	empty, err := hdr.IsCartEmpty()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestAddRandomItemsReturningIndices(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)

	indices, err := inv.AddRandomItemsReturningIndices(rng(), 3)
	require.NoError(t, err)
	require.Len(t, indices, 3)

	seen := map[int]bool{}
	for _, idx := range indices {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 6)
		require.False(t, seen[idx], "index %d chosen twice", idx)
		seen[idx] = true
	}

	verify.CartBadge(t, hdr, 3)

	added, err := inv.CardsByIndices(indices)
	require.NoError(t, err)
	expected := make([]store.Item, 0, len(added))
	for _, c := range added {
		expected = append(expected, c.Item)
	}

	require.NoError(t, hdr.OpenCart())
	inCart, err := pages.NewCart(drv, nil).ListCards()
	require.NoError(t, err)
	require.Len(t, inCart, 3)
	verify.CardsMatchItems(t, expected, inCart)
}

func TestAddByIndexOutOfRange(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)

	err := inv.AddByIndex(10)
	require.True(t, xerrors.IsCode(err, xerrors.CodeIndexOutOfRange), "got %v", err)

	// The failed call performed no mutation.
	empty, err := hdr.IsCartEmpty()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestAddRandomItemsInsufficientCatalog(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)

	_, err := inv.AddRandomItemsReturningIndices(rng(), 7)
	require.True(t, xerrors.IsCode(err, xerrors.CodeInsufficientCatalog), "got %v", err)

	empty, err := hdr.IsCartEmpty()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestPickRandomCardEmptyCatalog(t *testing.T) {
	opts := storefront.DefaultOptions()
	opts.Catalog = nil
	drv, _ := newStore(t, opts)
	inv := pages.NewInventory(drv, nil)

	_, err := inv.PickRandomCard(rng())
	require.True(t, xerrors.IsCode(err, xerrors.CodeEmptyCatalog), "got %v", err)
}

func TestPickRandomCard(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)

	card, err := inv.PickRandomCard(rng())
	require.NoError(t, err)
	verify.CardComplete(t, card)
}

func TestHeaderTitleAndBadge(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)

	title, err := hdr.Title()
	require.NoError(t, err)
	require.Equal(t, store.ProductsTitle, title)

	// Required badge lookup on an empty cart is a hard failure.
	_, _, err = hdr.CartCount(true)
	require.True(t, xerrors.IsCode(err, xerrors.CodeBadgeNotFound), "got %v", err)

	// Optional lookup reports absence without error.
	count, present, err := hdr.CartCount(false)
	require.NoError(t, err)
	require.False(t, present)
	require.Empty(t, count)

	require.NoError(t, inv.AddByIndex(2))
	count, present, err = hdr.CartCount(true)
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, "1", count)
}

func TestCartModel(t *testing.T) {
	drv, base := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)
	cart := pages.NewCart(drv, nil)

	require.NoError(t, inv.AddByIndex(0))
	require.NoError(t, inv.AddByIndex(3))
	require.NoError(t, hdr.OpenCart())

	title, err := hdr.Title()
	require.NoError(t, err)
	require.Equal(t, store.CartTitle, title)

	cards, err := cart.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	for _, c := range cards {
		verify.CardComplete(t, c)
		require.False(t, c.HasImageLink())

		label, err := c.ButtonLabel()
		require.NoError(t, err)
		require.Equal(t, store.RemoveLabel, label)
	}

	_, err = cart.GetCard(5)
	require.True(t, xerrors.IsCode(err, xerrors.CodeIndexOutOfRange), "got %v", err)

	first, err := cart.GetCard(0)
	require.NoError(t, err)
	require.NoError(t, first.Toggle())

	cards, err = cart.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 1)
	verify.CartBadge(t, hdr, 1)

	require.NoError(t, cart.ContinueShopping())
	verify.CurrentURL(t, drv, base+"/inventory.html")
}

func TestCartEmptyAgreesWithList(t *testing.T) {
	drv, _ := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)
	cart := pages.NewCart(drv, nil)

	require.NoError(t, hdr.OpenCart())
	cards, err := cart.ListCards()
	require.NoError(t, err)
	empty, err := hdr.IsCartEmpty()
	require.NoError(t, err)
	require.Equal(t, len(cards) == 0, empty)

	require.NoError(t, cart.ContinueShopping())
	require.NoError(t, inv.AddByIndex(4))
	require.NoError(t, hdr.OpenCart())

	cards, err = cart.ListCards()
	require.NoError(t, err)
	empty, err = hdr.IsCartEmpty()
	require.NoError(t, err)
	require.Equal(t, len(cards) == 0, empty)
	require.False(t, empty)
}

func TestCheckoutFullFlow(t *testing.T) {
	drv, base := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)
	cart := pages.NewCart(drv, nil)

	// Name-ascending order puts backpack, bike light, and bolt t-shirt
	// first: 29.99 + 9.99 + 15.99.
	for _, idx := range []int{0, 1, 2} {
		require.NoError(t, inv.AddByIndex(idx))
	}
	expected, err := inv.CardsByIndices([]int{0, 1, 2})
	require.NoError(t, err)
	expectedItems := make([]store.Item, 0, 3)
	for _, c := range expected {
		expectedItems = append(expectedItems, c.Item)
	}

	require.NoError(t, hdr.OpenCart())
	require.NoError(t, cart.GoToCheckout())

	info := pages.NewCheckoutInformation(drv, nil)
	title, err := hdr.Title()
	require.NoError(t, err)
	require.Equal(t, store.CheckoutStepOneTitle, title)

	placeholders, err := info.Placeholders()
	require.NoError(t, err)
	require.Equal(t, [3]string{
		store.FirstNamePlaceholder,
		store.LastNamePlaceholder,
		store.PostalCodePlaceholder,
	}, placeholders)

	for _, probe := range []func() (bool, error){
		info.FirstNameDisplayed, info.LastNameDisplayed, info.PostalCodeDisplayed,
	} {
		shown, err := probe()
		require.NoError(t, err)
		require.True(t, shown)
	}

	require.NoError(t, info.EnterFirstName("Dana"))
	require.NoError(t, info.EnterLastName("Silva"))
	require.NoError(t, info.EnterPostalCode("10115"))
	require.NoError(t, info.Continue())

	overview := pages.NewCheckoutOverview(drv, nil)
	title, err = hdr.Title()
	require.NoError(t, err)
	require.Equal(t, store.CheckoutOverviewTitle, title)

	ordered, err := overview.OrderedItems()
	require.NoError(t, err)
	verify.ItemsMatch(t, expectedItems, ordered)

	scraped, err := overview.ScrapedTotals()
	require.NoError(t, err)
	want := store.Totals{
		Sum:   decimal.RequireFromString("55.97"),
		Tax:   decimal.RequireFromString("4.48"),
		Total: decimal.RequireFromString("60.45"),
	}
	require.True(t, want.Equal(scraped), "rendered totals %s, want %s", scraped, want)

	computed, err := overview.ComputedTotals(decimal.RequireFromString("0.08"))
	require.NoError(t, err)
	verify.TotalsMatch(t, computed, scraped)

	require.NoError(t, overview.Finish())

	complete := pages.NewCheckoutComplete(drv, nil)
	title, err = hdr.Title()
	require.NoError(t, err)
	require.Equal(t, store.CheckoutCompleteTitle, title)

	header, err := complete.CompleteHeader()
	require.NoError(t, err)
	require.Equal(t, store.CompleteHeader, header)

	text, err := complete.CompleteText()
	require.NoError(t, err)
	require.Equal(t, store.CompleteText, text)

	label, err := complete.BackHomeLabel()
	require.NoError(t, err)
	require.Equal(t, store.BackHomeButtonText, label)

	shown, err := complete.IsBackHomeDisplayed()
	require.NoError(t, err)
	require.True(t, shown)

	require.NoError(t, complete.BackHome())
	verify.CurrentURL(t, drv, base+"/inventory.html")

	empty, err := hdr.IsCartEmpty()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestCheckoutCancelPaths(t *testing.T) {
	drv, base := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)
	cart := pages.NewCart(drv, nil)

	require.NoError(t, inv.AddByIndex(1))
	require.NoError(t, hdr.OpenCart())
	require.NoError(t, cart.GoToCheckout())

	info := pages.NewCheckoutInformation(drv, nil)
	require.NoError(t, info.Cancel())
	verify.CurrentURL(t, drv, base+"/cart.html")

	require.NoError(t, cart.GoToCheckout())
	require.NoError(t, info.FillRandomIdentity(rng()))
	require.NoError(t, info.Continue())

	overview := pages.NewCheckoutOverview(drv, nil)
	require.NoError(t, overview.Cancel())
	verify.CurrentURL(t, drv, base+"/cart.html")

	// Cancelling left the cart untouched.
	cards, err := cart.ListCards()
	require.NoError(t, err)
	require.Len(t, cards, 1)
}

func TestLoginErrors(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		banner   string
	}{
		{"empty username", "", "secret_sauce", store.UsernameRequiredError},
		{"empty password", "standard_user", "", store.PasswordRequiredError},
		{"locked out", "locked_out_user", "secret_sauce", store.LockedOutError},
		{"bad credentials", "standard_user", "wrong", store.CredentialsError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(storefront.New(storefront.DefaultOptions()))
			t.Cleanup(srv.Close)
			drv, err := webdom.New(logging.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = drv.Close() })
			require.NoError(t, drv.Navigate(srv.URL+"/"))

			login := pages.NewLogin(drv, nil)
			err = login.Login(tc.username, tc.password)
			require.True(t, xerrors.IsCode(err, xerrors.CodeLoginFailed), "got %v", err)

			banner, err := login.ErrorMessage()
			require.NoError(t, err)
			require.Equal(t, tc.banner, banner)

			hasError, err := login.HasError()
			require.NoError(t, err)
			require.True(t, hasError)

			require.NoError(t, login.DismissError())
			hasError, err = login.HasError()
			require.NoError(t, err)
			require.False(t, hasError)
		})
	}
}

func TestItemDetailByName(t *testing.T) {
	drv, base := defaultStore(t)
	inv := pages.NewInventory(drv, nil)
	hdr := pages.NewHeader(drv, nil)

	picked, err := inv.OpenRandomDetailByName(rng())
	require.NoError(t, err)

	cur, err := drv.CurrentURL()
	require.NoError(t, err)
	require.Contains(t, cur, base+"/inventory-item.html?id=")

	detail := pages.NewItemDetail(drv, nil)
	shown, err := detail.Item()
	require.NoError(t, err)
	require.Equal(t, picked.WithoutImage().Key(), shown.WithoutImage().Key())
	require.NotEmpty(t, shown.ImageRef)

	label, err := detail.ToggleLabel()
	require.NoError(t, err)
	require.Equal(t, store.AddToCartLabel, label)

	require.NoError(t, detail.Toggle())
	label, err = detail.ToggleLabel()
	require.NoError(t, err)
	require.Equal(t, store.RemoveLabel, label)
	verify.CartBadge(t, hdr, 1)

	require.NoError(t, detail.BackToProducts())
	verify.CurrentURL(t, drv, base+"/inventory.html")
}

func TestItemDetailByImage(t *testing.T) {
	drv, base := defaultStore(t)
	inv := pages.NewInventory(drv, nil)

	picked, err := inv.OpenRandomDetailByImage(rng())
	require.NoError(t, err)

	cur, err := drv.CurrentURL()
	require.NoError(t, err)
	require.Contains(t, cur, base+"/inventory-item.html?id=")

	shown, err := pages.NewItemDetail(drv, nil).Item()
	require.NoError(t, err)
	require.Equal(t, picked.WithoutImage().Key(), shown.WithoutImage().Key())
}

func TestItemDetailUnknownItem(t *testing.T) {
	drv, base := defaultStore(t)
	require.NoError(t, drv.Navigate(base+"/inventory-item.html?id=bogus"))

	detail := pages.NewItemDetail(drv, nil)
	shown, err := detail.Item()
	require.NoError(t, err)
	require.Equal(t, store.ItemNotFoundName, shown.Name)
	require.Equal(t, store.ItemNotFoundDescription, shown.Description)

	hasToggle, err := detail.HasToggle()
	require.NoError(t, err)
	require.False(t, hasToggle)

	err = detail.Toggle()
	require.True(t, xerrors.IsCode(err, xerrors.CodeElementNotFound), "got %v", err)
}
