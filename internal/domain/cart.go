package domain

import (
	"slices"

	"github.com/go-faster/errors"
	"golang.org/x/text/currency"
)

type CartLine struct {
	ProductID ProductID
	Quantity  int
	UnitPrice Money
}

type LineItem struct {
	ProductID ProductID
	Quantity  int
	UnitPrice Money
	LineTotal Money
}

// Cart is the ledger of a single browsing session. A line is present only while
// its quantity is at least 1. Cart is not safe for concurrent use.
type Cart struct {
	catalog  ProductLookup
	currency currency.Unit

	lines map[ProductID]*CartLine
	order []ProductID
}

func NewCart(catalog ProductLookup, cur currency.Unit) *Cart {
	return &Cart{
		catalog:  catalog,
		currency: cur,
		lines:    make(map[ProductID]*CartLine),
	}
}

// AddItem puts the product in the cart at quantity 1, or adds 1 when it is already present.
// The unit price is captured on the first add only.
func (c *Cart) AddItem(id ProductID, unitPrice Money) error {
	if err := c.checkKnown(id); err != nil {
		return err
	}

	if line, ok := c.lines[id]; ok {
		line.Quantity++
		return nil
	}

	if unitPrice.IsNegative() {
		return errors.Wrapf(ErrInvalidPrice, "add %q: negative price %s", id, unitPrice.Display())
	}
	if !unitPrice.In(c.currency) {
		return errors.Wrapf(ErrInvalidPrice, "add %q: currency %s, cart is %s", id, unitPrice.Currency, c.currency)
	}

	c.lines[id] = &CartLine{
		ProductID: id,
		Quantity:  1,
		UnitPrice: unitPrice,
	}
	c.order = append(c.order, id)

	return nil
}

func (c *Cart) Increment(id ProductID) error {
	line, err := c.presentLine("increment", id)
	if err != nil {
		return err
	}

	line.Quantity++

	return nil
}

// Decrement lowers the quantity by one. A line at quantity 1 is removed instead of
// being kept at zero.
func (c *Cart) Decrement(id ProductID) error {
	line, err := c.presentLine("decrement", id)
	if err != nil {
		return err
	}

	if line.Quantity > 1 {
		line.Quantity--
		return nil
	}

	c.delete(id)

	return nil
}

func (c *Cart) Remove(id ProductID) error {
	if _, err := c.presentLine("remove", id); err != nil {
		return err
	}

	c.delete(id)

	return nil
}

func (c *Cart) Clear() {
	c.lines = make(map[ProductID]*CartLine)
	c.order = nil
}

func (c *Cart) Quantity(id ProductID) (int, bool) {
	line, ok := c.lines[id]
	if !ok {
		return 0, false
	}

	return line.Quantity, true
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice keeps full precision; rounding happens only in Money.Display.
func (c *Cart) TotalPrice() Money {
	total := ZeroMoney(c.currency)
	for _, line := range c.lines {
		total.Amount = total.Amount.Add(line.UnitPrice.Mul(line.Quantity).Amount)
	}

	return total
}

func (c *Cart) IsEmpty() bool {
	return c.TotalQuantity() == 0
}

// LineItems lists the lines in the order they were first added.
func (c *Cart) LineItems() []LineItem {
	items := make([]LineItem, 0, len(c.order))

	for _, id := range c.order {
		line := c.lines[id]
		items = append(items, LineItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.UnitPrice.Mul(line.Quantity),
		})
	}

	return items
}

func (c *Cart) checkKnown(id ProductID) error {
	if c.catalog == nil {
		return errors.Wrapf(ErrUnknownProduct, "%q: no catalog loaded", id)
	}
	if _, ok := c.catalog.Product(id); !ok {
		return errors.Wrapf(ErrUnknownProduct, "%q", id)
	}

	return nil
}

func (c *Cart) presentLine(op string, id ProductID) (*CartLine, error) {
	if err := c.checkKnown(id); err != nil {
		return nil, err
	}

	line, ok := c.lines[id]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidState, "%s %q: not in cart", op, id)
	}

	return line, nil
}

func (c *Cart) delete(id ProductID) {
	delete(c.lines, id)
	c.order = slices.DeleteFunc(c.order, func(other ProductID) bool {
		return other == id
	})
}
