package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cafe-pos/pos-svc/internal/catalog"
	"cafe-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrNoReceipt        = errors.New("no order has been placed yet")
	ErrInvalidSelection = errors.New("subcategory does not belong to the active category")
)

const (
	defaultLoadingDelay   = 300 * time.Millisecond
	defaultSaveTimeout    = 2 * time.Second
	defaultPublishTimeout = 3 * time.Second
)

type Option func(*Storefront)

func WithCurrency(currency domain.Currency) Option {
	return func(s *Storefront) { s.currency = currency }
}

// WithLoadingDelay sets how long the view reports loading after a
// subcategory switch.
func WithLoadingDelay(d time.Duration) Option {
	return func(s *Storefront) { s.loadingDelay = d }
}

func WithSaveTimeout(d time.Duration) Option {
	return func(s *Storefront) { s.saveTimeout = d }
}

// WithPublishTimeout bounds how long placing an order waits on the ticket
// publisher. The cart stays locked for that long.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *Storefront) { s.publishTimeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Storefront) { s.now = now }
}

// Storefront owns all terminal state. Its methods are the only way to change
// it and they run one at a time.
type Storefront struct {
	mu sync.Mutex

	catalog   *catalog.Catalog
	pricing   *Pricing
	store     SnapshotStore
	publisher TicketPublisher
	qr        QRGenerator
	logger    *zap.Logger

	currency       domain.Currency
	loadingDelay   time.Duration
	saveTimeout    time.Duration
	publishTimeout time.Duration
	now            func() time.Time

	categoryID       string
	subcategoryID    string
	productPager     *Pager
	subcategoryPager *Pager
	ledger           *Ledger
	steps            *StepTracker
	discountCode     string
	loadingUntil     time.Time
	receipt          *Receipt
}

func NewStorefront(cat *catalog.Catalog, pricing *Pricing, store SnapshotStore, publisher TicketPublisher, qr QRGenerator, logger *zap.Logger, opts ...Option) *Storefront {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Storefront{
		catalog:          cat,
		pricing:          pricing,
		store:            store,
		publisher:        publisher,
		qr:               qr,
		logger:           logger,
		currency:         domain.Currency{Symbol: "RM", Code: "MYR"},
		loadingDelay:     defaultLoadingDelay,
		saveTimeout:      defaultSaveTimeout,
		publishTimeout:   defaultPublishTimeout,
		now:              time.Now,
		productPager:     NewPager(ProductPageSize),
		subcategoryPager: NewPager(SubcategoryPageSize),
		ledger:           NewLedger(nil),
		steps:            NewStepTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if first, ok := cat.FirstCategory(); ok {
		s.categoryID = first.ID
		s.subcategoryID, _ = cat.FirstSubcategory(first.ID)
	}
	s.refreshPagers()
	return s
}

// Restore loads the saved cart once at startup. A missing, unreadable or
// malformed snapshot leaves the cart empty. It returns the restored line count.
func (s *Storefront) Restore(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.logger.Info("No saved cart, starting empty")
		return 0
	case err != nil:
		s.logger.Error("Failed to read saved cart, starting empty", zap.Error(err))
		return 0
	}

	lines, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Warn("Saved cart is malformed, starting empty", zap.Error(err))
		return 0
	}

	s.ledger = NewLedger(lines)
	s.logger.Info("Restored saved cart", zap.Int("lines", s.ledger.Len()))
	return s.ledger.Len()
}

func (s *Storefront) Categories() []domain.Category {
	return s.catalog.Categories()
}

func (s *Storefront) Customizations() CustomizationView {
	return CustomizationView{
		Sizes:   s.optionViews(domain.SizeOptions),
		Sugars:  s.optionViews(domain.SugarOptions),
		Default: domain.DefaultCustomizations(),
	}
}

// SelectCategory switches category and, in the same step, resets the
// subcategory to the category's first one and both pagers to page zero.
func (s *Storefront) SelectCategory(categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	firstSub, err := s.catalog.FirstSubcategory(categoryID)
	if err != nil {
		return err
	}
	s.categoryID = categoryID
	s.subcategoryID = firstSub
	s.subcategoryPager.Reset()
	s.productPager.Reset()
	s.refreshPagers()
	return nil
}

func (s *Storefront) SelectSubcategory(subcategoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.catalog.Subcategory(s.categoryID, subcategoryID); err != nil {
		if errors.Is(err, catalog.ErrUnknownSubcategory) {
			return fmt.Errorf("%w: %s", ErrInvalidSelection, subcategoryID)
		}
		return err
	}
	s.subcategoryID = subcategoryID
	s.productPager.Reset()
	s.refreshPagers()
	s.loadingUntil = s.now().Add(s.loadingDelay)
	return nil
}

func (s *Storefront) NextProductPage() PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productPager.Next()
	return pageView(s.productPager)
}

func (s *Storefront) PrevProductPage() PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productPager.Prev()
	return pageView(s.productPager)
}

func (s *Storefront) NextSubcategoryPage() PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subcategoryPager.Next()
	return pageView(s.subcategoryPager)
}

func (s *Storefront) PrevSubcategoryPage() PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subcategoryPager.Prev()
	return pageView(s.subcategoryPager)
}

func (s *Storefront) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

// AddToCart drops customizations for products that are not customizable.
func (s *Storefront) AddToCart(ctx context.Context, productID string, quantity int, customizations *domain.Customizations) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.Product(productID)
	if err != nil {
		return s.cartView(), err
	}
	if !product.Customizable {
		customizations = nil
	}
	if err := customizations.Validate(); err != nil {
		return s.cartView(), err
	}

	index := s.ledger.Add(product, quantity, customizations)
	s.logger.Debug("Added to cart",
		zap.String("product_id", productID),
		zap.Int("line", index),
		zap.Int("quantity", quantity))
	return s.cartView(), s.persist(ctx)
}

func (s *Storefront) UpdateQuantity(ctx context.Context, index, quantity int) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.UpdateQuantity(index, quantity) {
		return s.cartView(), nil
	}
	return s.cartView(), s.persist(ctx)
}

func (s *Storefront) RemoveItem(ctx context.Context, index int) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.Remove(index) {
		return s.cartView(), nil
	}
	return s.cartView(), s.persist(ctx)
}

func (s *Storefront) ClearCart(ctx context.Context) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.Clear() {
		return s.cartView(), nil
	}
	return s.cartView(), s.persist(ctx)
}

func (s *Storefront) ApplyDiscount(code string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.pricing.Discount(code)
	if err != nil {
		return s.cartView(), err
	}
	s.discountCode = d.Code
	return s.cartView(), nil
}

func (s *Storefront) ClearDiscount() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discountCode = ""
	return s.cartView()
}

// AdvanceStep moves the order progress forward. Leaving Confirmation places
// the order: the ticket goes to the kitchen and a receipt QR is produced.
// Neither failure blocks the step change.
func (s *Storefront) AdvanceStep(ctx context.Context) (StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.Len() == 0 {
		return s.stepView(), ErrCartEmpty
	}

	placing := s.steps.Current().IsLast()
	s.steps.Advance()
	if placing {
		s.placeOrder(ctx)
	}
	return s.stepView(), nil
}

func (s *Storefront) Receipt() (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.receipt == nil {
		return nil, ErrNoReceipt
	}
	r := *s.receipt
	return &r, nil
}

func (s *Storefront) View() StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := StorefrontView{
		ActiveCategory:    s.categoryID,
		ActiveSubcategory: s.subcategoryID,
		Loading:           s.now().Before(s.loadingUntil),
		Cart:              s.cartView(),
		Step:              s.stepView(),
	}

	for _, cat := range s.catalog.Categories() {
		view.Categories = append(view.Categories, CategoryTab{
			ID:     cat.ID,
			Name:   cat.Name,
			Active: cat.ID == s.categoryID,
		})
	}

	subs := s.subcategories()
	visibleSubs, _ := Paginate(subs, s.subcategoryPager.Size(), s.subcategoryPager.Page())
	view.Subcategories = make([]SubcategoryTab, 0, len(visibleSubs))
	for _, sub := range visibleSubs {
		view.Subcategories = append(view.Subcategories, SubcategoryTab{
			ID:     sub.ID,
			Name:   sub.Name,
			Active: sub.ID == s.subcategoryID,
		})
	}
	view.SubcategoryPage = pageView(s.subcategoryPager)

	products := s.catalog.Filter(s.categoryID, s.subcategoryID)
	visible, _ := Paginate(products, s.productPager.Size(), s.productPager.Page())
	view.Products = make([]ProductView, 0, len(visible))
	for _, p := range visible {
		view.Products = append(view.Products, ProductView{
			Product:      p,
			PriceDisplay: s.format(p.Price),
		})
	}
	view.ProductPage = pageView(s.productPager)

	return view
}

func (s *Storefront) placeOrder(ctx context.Context) {
	ticket := domain.OrderTicket{
		ID:       uuid.NewString(),
		Lines:    s.ledger.Lines(),
		Quote:    s.pricing.Quote(s.ledger.Lines(), s.discountCode),
		Currency: s.currency,
		PlacedAt: s.now(),
	}
	s.receipt = &Receipt{Ticket: ticket}

	if s.publisher != nil {
		s.publish(ctx, ticket)
	}

	if s.qr != nil {
		qr, err := s.qr.Generate(ticket)
		if err != nil {
			s.logger.Error("Failed to generate receipt QR",
				zap.String("order_id", ticket.ID),
				zap.Error(err))
		} else {
			s.receipt.QRCode = qr
		}
	}

	s.logger.Info("Order placed",
		zap.String("order_id", ticket.ID),
		zap.Int("lines", len(ticket.Lines)),
		zap.String("total", ticket.Quote.Total.StringFixed(2)))
}

func (s *Storefront) publish(ctx context.Context, ticket domain.OrderTicket) {
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishTicket(ctx, ticket); err != nil {
		s.logger.Error("Failed to publish order ticket",
			zap.String("order_id", ticket.ID),
			zap.Error(err))
	}
}

func (s *Storefront) persist(ctx context.Context) error {
	data, err := EncodeSnapshot(s.ledger.Lines())
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	if err := s.store.Save(ctx, data); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func (s *Storefront) refreshPagers() {
	s.subcategoryPager.SetCount(len(s.subcategories()))
	s.productPager.SetCount(len(s.catalog.Filter(s.categoryID, s.subcategoryID)))
}

func (s *Storefront) subcategories() []domain.Subcategory {
	cat, err := s.catalog.Category(s.categoryID)
	if err != nil {
		return nil
	}
	return cat.Subcategories
}

func (s *Storefront) cartView() CartView {
	lines := s.ledger.Lines()
	quote := s.pricing.Quote(lines, s.discountCode)

	view := CartView{
		Lines:        make([]LineView, 0, len(lines)),
		LineCount:    len(lines),
		ItemCount:    s.ledger.ItemCount(),
		Subtotal:     s.amount(quote.Subtotal),
		Discount:     s.amount(quote.Discount),
		Tax:          s.amount(quote.Tax),
		Total:        s.amount(quote.Total),
		DiscountCode: quote.DiscountCode,
		TaxLabel:     "Tax (" + s.pricing.TaxRate().Mul(hundred).String() + "%)",
		Currency:     s.currency,
	}
	for i, line := range lines {
		view.Lines = append(view.Lines, LineView{
			Index:          i,
			ProductID:      line.Product.ID,
			Name:           line.Product.Name,
			Customizations: line.Customizations,
			Quantity:       line.Quantity,
			UnitPrice:      s.amount(line.UnitPrice),
			Extended:       s.amount(line.Extended()),
		})
	}
	return view
}

func (s *Storefront) stepView() StepView {
	current := s.steps.Current()
	view := StepView{
		Index:       int(current),
		Name:        current.String(),
		Steps:       domain.OrderSteps,
		Progress:    s.steps.Progress(),
		ActionLabel: "Continue",
	}
	if current.IsLast() {
		view.ActionLabel = "Place Order"
	}
	if s.receipt != nil {
		view.LastOrderID = s.receipt.Ticket.ID
	}
	return view
}

func (s *Storefront) optionViews(options []domain.Option) []OptionView {
	out := make([]OptionView, 0, len(options))
	for _, opt := range options {
		out = append(out, OptionView{Label: opt.Label, Price: s.amount(opt.Price)})
	}
	return out
}

// Rounding to cents happens here and nowhere else.
func (s *Storefront) amount(v decimal.Decimal) Amount {
	return Amount{Value: v, Display: s.format(v)}
}

func (s *Storefront) format(v decimal.Decimal) string {
	return s.currency.Symbol + v.StringFixed(2)
}

func pageView(p *Pager) PageView {
	return PageView{
		Page:       p.Page(),
		TotalPages: p.TotalPages(),
		HasNext:    p.HasNext(),
		HasPrev:    p.HasPrev(),
	}
}
