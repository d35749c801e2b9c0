// Package storefront is an in-process, server-rendered replica of the demo
// storefront. It exists so the page models and drivers can be exercised
// hermetically: login, catalog with sorting, cart toggles, badge, and the
// three-step checkout all behave like the public site, with totals computed
// under the same rounding rule the framework uses.
package storefront

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/money"
	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/store"
)

const sessionCookie = "session-id"

// Options configures the replica.
type Options struct {
	Catalog   []Product
	TaxRate   decimal.Decimal
	Users     map[string]string // username -> password
	LockedOut []string
}

// DefaultOptions mirrors the public demo store: six products, 8% tax, the
// standard user set with one locked-out account.
func DefaultOptions() Options {
	return Options{
		Catalog: DefaultCatalog(),
		TaxRate: decimal.RequireFromString("0.08"),
		Users: map[string]string{
			"standard_user":           "secret_sauce",
			"locked_out_user":         "secret_sauce",
			"problem_user":            "secret_sauce",
			"performance_glitch_user": "secret_sauce",
		},
		LockedOut: []string{"locked_out_user"},
	}
}

type session struct {
	user       string
	cart       map[int]bool
	loginError string
	firstName  string
	lastName   string
	postalCode string
}

// Server is the replica storefront. It implements http.Handler.
type Server struct {
	opts   Options
	locked map[string]bool
	router chi.Router

	mu       sync.Mutex
	sessions map[string]*session
}

// New builds a replica server from opts.
func New(opts Options) *Server {
	s := &Server{
		opts:     opts,
		locked:   make(map[string]bool),
		sessions: make(map[string]*session),
	}
	for _, u := range opts.LockedOut {
		s.locked[u] = true
	}

	r := chi.NewRouter()
	r.Get("/", s.handleLoginPage)
	r.Post("/login", s.handleLogin)
	r.Post("/dismiss-error", s.handleDismissError)
	r.Get("/inventory.html", s.requireUser(s.handleInventory))
	r.Get("/inventory-item.html", s.requireUser(s.handleItemDetail))
	r.Get("/cart.html", s.requireUser(s.handleCart))
	r.Post("/cart/toggle", s.requireUser(s.handleCartToggle))
	r.Get("/checkout-step-one.html", s.requireUser(s.handleCheckoutStepOne))
	r.Post("/checkout-step-one", s.requireUser(s.handleCheckoutInfo))
	r.Get("/checkout-step-two.html", s.requireUser(s.handleCheckoutOverview))
	r.Post("/checkout-finish", s.requireUser(s.handleCheckoutFinish))
	r.Get("/checkout-complete.html", s.requireUser(s.handleCheckoutComplete))
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type sessionKey struct{}

// getSession finds or creates the session for this request. The session is
// cached on the request context so middleware and handler share one lookup
// even before the cookie round-trips.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) (*session, *http.Request) {
	if sess, ok := r.Context().Value(sessionKey{}).(*session); ok {
		return sess, r
	}

	s.mu.Lock()
	var sess *session
	if c, err := r.Cookie(sessionCookie); err == nil {
		sess = s.sessions[c.Value]
	}
	if sess == nil {
		id := uuid.NewString()
		sess = &session{cart: make(map[int]bool)}
		s.sessions[id] = sess
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/"})
	}
	s.mu.Unlock()

	return sess, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess))
}

func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, r := s.getSession(w, r)
		if sess.user == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	s.render(w, "login", map[string]any{"Error": sess.loginError})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("user-name")
	password := r.PostFormValue("password")

	switch {
	case username == "":
		sess.loginError = store.UsernameRequiredError
	case password == "":
		sess.loginError = store.PasswordRequiredError
	case s.locked[username] && s.opts.Users[username] == password:
		sess.loginError = store.LockedOutError
	case s.opts.Users[username] != password:
		sess.loginError = store.CredentialsError
	default:
		sess.loginError = ""
		sess.user = username
		http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDismissError(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	sess.loginError = ""
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type renderedItem struct {
	ID     int
	Name   string
	Desc   string
	Price  string
	Image  string
	InCart bool
}

func (s *Server) renderedCatalog(sess *session, sortKey string) []renderedItem {
	catalog := make([]Product, len(s.opts.Catalog))
	copy(catalog, s.opts.Catalog)

	switch sortKey {
	case "za":
		sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Name > catalog[j].Name })
	case "lohi":
		sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Price.LessThan(catalog[j].Price) })
	case "hilo":
		sort.SliceStable(catalog, func(i, j int) bool { return catalog[j].Price.LessThan(catalog[i].Price) })
	default: // az
		sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Name < catalog[j].Name })
	}

	items := make([]renderedItem, 0, len(catalog))
	for _, p := range catalog {
		items = append(items, renderedItem{
			ID:     p.ID,
			Name:   p.Name,
			Desc:   p.Desc,
			Price:  p.Price.StringFixed(2),
			Image:  p.Image,
			InCart: sess.cart[p.ID],
		})
	}
	return items
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = "az"
	}

	s.render(w, "inventory", map[string]any{
		"Title":     store.ProductsTitle,
		"CartCount": len(sess.cart),
		"Sort":      sortKey,
		"Items":     s.renderedCatalog(sess, sortKey),
		"Back":      r.URL.RequestURI(),
	})
}

func (s *Server) cartItems(sess *session) []renderedItem {
	ids := make([]int, 0, len(sess.cart))
	for id := range sess.cart {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	items := make([]renderedItem, 0, len(ids))
	for _, id := range ids {
		p := s.opts.Catalog[id]
		items = append(items, renderedItem{
			ID:     p.ID,
			Name:   p.Name,
			Desc:   p.Desc,
			Price:  p.Price.StringFixed(2),
			Image:  p.Image,
			InCart: true,
		})
	}
	return items
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	s.render(w, "cart", map[string]any{
		"Title":     store.CartTitle,
		"CartCount": len(sess.cart),
		"Items":     s.cartItems(sess),
	})
}

func (s *Server) handleCartToggle(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil || id < 0 || id >= len(s.opts.Catalog) {
		http.Error(w, "unknown product", http.StatusBadRequest)
		return
	}
	if sess.cart[id] {
		delete(sess.cart, id)
	} else {
		sess.cart[id] = true
	}

	back := r.PostFormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") {
		back = "/inventory.html"
	}
	if _, err := url.Parse(back); err != nil {
		back = "/inventory.html"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (s *Server) handleCheckoutStepOne(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	s.render(w, "checkout-step-one", map[string]any{
		"Title":     store.CheckoutStepOneTitle,
		"CartCount": len(sess.cart),
	})
}

func (s *Server) handleCheckoutInfo(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess.firstName = r.PostFormValue("firstName")
	sess.lastName = r.PostFormValue("lastName")
	sess.postalCode = r.PostFormValue("postalCode")
	http.Redirect(w, r, "/checkout-step-two.html", http.StatusSeeOther)
}

func (s *Server) handleCheckoutOverview(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)

	sum := decimal.Zero
	for id := range sess.cart {
		sum = sum.Add(s.opts.Catalog[id].Price)
	}
	sum = money.Round2(sum)
	tax := money.Round2(sum.Mul(s.opts.TaxRate))
	total := money.Round2(sum.Add(tax))

	s.render(w, "checkout-step-two", map[string]any{
		"Title":     store.CheckoutOverviewTitle,
		"CartCount": len(sess.cart),
		"Items":     s.cartItems(sess),
		"Sum":       sum.StringFixed(2),
		"Tax":       tax.StringFixed(2),
		"Total":     total.StringFixed(2),
	})
}

func (s *Server) handleCheckoutFinish(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	sess.cart = make(map[int]bool)
	http.Redirect(w, r, "/checkout-complete.html", http.StatusSeeOther)
}

func (s *Server) handleCheckoutComplete(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)
	s.render(w, "checkout-complete", map[string]any{
		"Title":          store.CheckoutCompleteTitle,
		"CartCount":      len(sess.cart),
		"CompleteHeader": store.CompleteHeader,
		"CompleteText":   store.CompleteText,
	})
}

func (s *Server) handleItemDetail(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.getSession(w, r)

	data := map[string]any{
		"Title":     "", // the detail page has no header title
		"CartCount": len(sess.cart),
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id < 0 || id >= len(s.opts.Catalog) {
		data["Known"] = false
		data["Item"] = renderedItem{
			Name:  store.ItemNotFoundName,
			Desc:  store.ItemNotFoundDescription,
			Price: "0.00",
		}
	} else {
		p := s.opts.Catalog[id]
		data["Known"] = true
		data["Item"] = renderedItem{
			ID:     p.ID,
			Name:   p.Name,
			Desc:   p.Desc,
			Price:  p.Price.StringFixed(2),
			Image:  p.Image,
			InCart: sess.cart[p.ID],
		}
	}
	s.render(w, "item-detail", data)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
