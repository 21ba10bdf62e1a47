package viewmodel

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/geerin/backend/internal/domain"
)

// Aggregator defines the catalog operations the view-model depends on
type Aggregator interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateLocalProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error)
	UpdateLocalProduct(ctx context.Context, id int, req domain.UpdateProductRequest) (domain.Product, error)
	DeleteLocalProduct(ctx context.Context, id int) (domain.Product, error)
	GetProductDetail(ctx context.Context, id int) (domain.Product, error)
}

// ToastKind distinguishes transient notification styles
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification that auto-clears after a fixed delay
type Toast struct {
	Kind    ToastKind
	Message string
}

// DefaultToastTTL is how long a toast stays visible
const DefaultToastTTL = 2 * time.Second

const requiredFieldsMessage = "Name, price, and image URL are required."

// ProductForm holds the raw add/edit form fields. Price stays a string until
// submit, exactly as it arrives from a text input.
type ProductForm struct {
	Name     string
	Price    string
	ImageURL string
	Category string
}

// Options configures a ViewModel
type Options struct {
	// PersistLocalEdits routes edits of local-origin products through the
	// aggregator's update operation. When false (the default), all edits are
	// client-only overrides lost on the next reload. Remote-origin edits are
	// client-only either way.
	PersistLocalEdits bool

	// ToastTTL overrides the notification lifetime; zero means DefaultToastTTL
	ToastTTL time.Duration

	// Now overrides the clock, for tests
	Now func() time.Time
}

// ViewModel holds the client-side interactive state layered over the
// aggregator's output: the fetched set, the derived filtered view, the cart,
// and add/edit form state. It is single-goroutine by contract: user
// interactions are dispatched one at a time.
type ViewModel struct {
	svc  Aggregator
	opts Options
	now  func() time.Time

	products   []domain.Product
	filtered   []domain.Product
	categories []string
	loadErr    error

	search   string
	category string

	cart []domain.Product

	form        ProductForm
	formError   string
	formSuccess string

	editID    int
	editing   bool
	editForm  ProductForm
	editError string

	pendingDelete    int
	hasPendingDelete bool

	toast       *Toast
	toastExpiry time.Time
}

// New creates a view-model over the given aggregator
func New(svc Aggregator, opts Options) *ViewModel {
	if opts.ToastTTL == 0 {
		opts.ToastTTL = DefaultToastTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ViewModel{
		svc:  svc,
		opts: opts,
		now:  now,
	}
}

// Load runs the fetch cycle: pull the merged catalog, derive the category
// list (distinct non-empty values, first-seen order) and recompute the
// filtered view. On failure the view-model enters an error state; there is no
// automatic retry.
func (vm *ViewModel) Load(ctx context.Context) error {
	products, err := vm.svc.ListProducts(ctx)
	if err != nil {
		vm.loadErr = err
		return err
	}

	vm.loadErr = nil
	vm.products = products

	vm.categories = vm.categories[:0]
	seen := make(map[string]bool)
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			vm.categories = append(vm.categories, p.Category)
		}
	}

	vm.refilter()
	return nil
}

// LoadError returns the error from the last failed fetch cycle, if any
func (vm *ViewModel) LoadError() error {
	return vm.loadErr
}

// Products returns the full fetched set
func (vm *ViewModel) Products() []domain.Product {
	return vm.products
}

// Categories returns the derived category list in first-seen order
func (vm *ViewModel) Categories() []string {
	return vm.categories
}

// SetSearch updates the search text and recomputes the filtered view
func (vm *ViewModel) SetSearch(search string) {
	vm.search = search
	vm.refilter()
}

// SetCategory updates the selected category and recomputes the filtered view
func (vm *ViewModel) SetCategory(category string) {
	vm.category = category
	vm.refilter()
}

// Visible returns the current filtered view
func (vm *ViewModel) Visible() []domain.Product {
	return vm.filtered
}

// refilter recomputes the filtered view as a pure projection of the full set:
// case-insensitive substring match on name, exact match on category. The
// underlying set is never mutated.
func (vm *ViewModel) refilter() {
	search := strings.ToLower(vm.search)
	filtered := make([]domain.Product, 0, len(vm.products))
	for _, p := range vm.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if vm.category != "" && p.Category != vm.category {
			continue
		}
		filtered = append(filtered, p)
	}
	vm.filtered = filtered
}

// showToast sets the transient notification
func (vm *ViewModel) showToast(kind ToastKind, message string) {
	vm.toast = &Toast{Kind: kind, Message: message}
	vm.toastExpiry = vm.now().Add(vm.opts.ToastTTL)
}

// Toast returns the active notification, or nil once it has expired
func (vm *ViewModel) Toast() *Toast {
	if vm.toast == nil || vm.now().After(vm.toastExpiry) {
		return nil
	}
	return vm.toast
}

// parsePrice interprets a form price field. Empty, unparsable and
// non-positive values all count as missing.
func parsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

// formatPrice renders a price back into a form field
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
