package session

import (
	"context"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/nikolayk812/dessert-cart/internal/catalog"
	"github.com/nikolayk812/dessert-cart/internal/domain"
	"github.com/nikolayk812/dessert-cart/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// Controller owns the catalog and the cart of one browsing session and is the
// only way to mutate them. It is not safe for concurrent use: commands are
// expected one at a time from the presentation layer.
type Controller struct {
	source   port.CatalogSource
	catalog  *catalog.Store
	cart     *domain.Cart
	currency currency.Unit

	phase   Phase
	summary *domain.OrderSummary
	started bool

	renderer Renderer
	log      *zap.Logger
	now      func() time.Time
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		c.renderer = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithCurrency(cur currency.Unit) Option {
	return func(c *Controller) {
		c.currency = cur
	}
}

func New(source port.CatalogSource, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		currency: currency.USD,
		phase:    PhaseBrowsing,
		log:      zap.NewNop(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.catalog, _ = catalog.NewStore(nil, c.currency)
	c.cart = domain.NewCart(c.catalog, c.currency)

	return c
}

// Start loads the catalog once. A failed load is not fatal: the session keeps
// running with an empty catalog and the wrapped domain.ErrFetch is returned.
func (c *Controller) Start(ctx context.Context) error {
	if c.started {
		return c.fail("start", errors.Wrap(domain.ErrInvalidState, "session already started"))
	}
	c.started = true

	store, err := catalog.Load(ctx, c.source, c.currency)
	c.catalog = store
	c.cart = domain.NewCart(store, c.currency)

	if err != nil {
		c.log.Error("catalog load failed, continuing with empty catalog", zap.Error(err))
		c.render()
		return err
	}

	c.log.Info("catalog loaded", zap.Int("products", store.Len()))
	c.render()

	return nil
}

func (c *Controller) AddToCart(id domain.ProductID) error {
	if err := c.requireBrowsing("add"); err != nil {
		return err
	}

	p, ok := c.catalog.Product(id)
	if !ok {
		return c.fail("add", errors.Wrapf(domain.ErrUnknownProduct, "%q", id))
	}

	if err := c.cart.AddItem(id, p.Price); err != nil {
		return c.fail("add", err)
	}

	return c.changed("add", id)
}

func (c *Controller) Increment(id domain.ProductID) error {
	if err := c.requireBrowsing("increment"); err != nil {
		return err
	}

	if err := c.cart.Increment(id); err != nil {
		return c.fail("increment", err)
	}

	return c.changed("increment", id)
}

func (c *Controller) Decrement(id domain.ProductID) error {
	if err := c.requireBrowsing("decrement"); err != nil {
		return err
	}

	if err := c.cart.Decrement(id); err != nil {
		return c.fail("decrement", err)
	}

	return c.changed("decrement", id)
}

func (c *Controller) RemoveFromCart(id domain.ProductID) error {
	if err := c.requireBrowsing("remove"); err != nil {
		return err
	}

	if err := c.cart.Remove(id); err != nil {
		return c.fail("remove", err)
	}

	return c.changed("remove", id)
}

// ConfirmOrder snapshots the cart and moves the session to PhaseReviewing.
// An empty cart returns domain.ErrEmptyCart and leaves the phase unchanged.
func (c *Controller) ConfirmOrder() (domain.OrderSummary, error) {
	if err := c.requireBrowsing("confirm"); err != nil {
		return domain.OrderSummary{}, err
	}

	summary, err := domain.NewOrderSummary(c.cart, c.catalog, c.now())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.log.Debug("confirm ignored, cart is empty")
			return domain.OrderSummary{}, err
		}
		return domain.OrderSummary{}, c.fail("confirm", err)
	}

	c.summary = &summary
	c.phase = PhaseReviewing

	c.log.Info("order confirmed",
		zap.Stringer("order_id", summary.ID),
		zap.Int("quantity", summary.TotalQuantity),
		zap.String("total", summary.Total.Display()),
	)
	c.render()

	return summary, nil
}

// StartNewOrder clears the cart and returns to browsing. It is the only way out of PhaseReviewing.
func (c *Controller) StartNewOrder() error {
	if c.phase != PhaseReviewing {
		return c.fail("new order", errors.Wrapf(domain.ErrInvalidState, "phase is %s", c.phase))
	}

	c.cart.Clear()
	c.summary = nil
	c.phase = PhaseBrowsing

	c.log.Debug("new order started")
	c.render()

	return nil
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) ProductState(id domain.ProductID) (bool, int) {
	qty, ok := c.cart.Quantity(id)
	return ok, qty
}

func (c *Controller) State() State {
	products := c.catalog.Products()
	states := make([]ProductState, 0, len(products))

	for _, p := range products {
		qty, ok := c.cart.Quantity(p.ID)
		states = append(states, ProductState{Product: p, InCart: ok, Quantity: qty})
	}

	s := State{
		Phase:         c.phase,
		Products:      states,
		Lines:         c.cart.LineItems(),
		TotalQuantity: c.cart.TotalQuantity(),
		TotalPrice:    c.cart.TotalPrice(),
	}

	if c.summary != nil {
		summary := *c.summary
		summary.Lines = slices.Clone(summary.Lines)
		s.Summary = &summary
	}

	return s
}

func (c *Controller) requireBrowsing(op string) error {
	if c.phase != PhaseBrowsing {
		return c.fail(op, errors.Wrapf(domain.ErrInvalidState, "phase is %s", c.phase))
	}
	return nil
}

func (c *Controller) changed(op string, id domain.ProductID) error {
	qty, _ := c.cart.Quantity(id)

	c.log.Debug("cart changed",
		zap.String("op", op),
		zap.String("product", id.String()),
		zap.Int("quantity", qty),
		zap.Int("total_quantity", c.cart.TotalQuantity()),
	)
	c.render()

	return nil
}

// fail logs contract violations between the presentation layer and the session.
func (c *Controller) fail(op string, err error) error {
	c.log.Error("command rejected", zap.String("op", op), zap.Error(err))
	return errors.Wrap(err, op)
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.State())
	}
}
