package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderLine struct {
	LineItem

	Name     string
	ImageURL string
}

// OrderSummary is a snapshot of the cart taken at confirmation. It does not
// change when the cart is cleared afterwards.
type OrderSummary struct {
	ID            uuid.UUID
	Lines         []OrderLine
	TotalQuantity int
	Total         Money

	ConfirmedAt time.Time
}

func NewOrderSummary(cart *Cart, catalog ProductLookup, confirmedAt time.Time) (OrderSummary, error) {
	if cart.IsEmpty() {
		return OrderSummary{}, ErrEmptyCart
	}

	items := cart.LineItems()
	lines := make([]OrderLine, 0, len(items))

	for _, item := range items {
		line := OrderLine{LineItem: item, Name: item.ProductID.String()}
		if p, ok := catalog.Product(item.ProductID); ok {
			line.Name = p.Name
			line.ImageURL = p.Image.Desktop
		}
		lines = append(lines, line)
	}

	return OrderSummary{
		ID:            uuid.New(),
		Lines:         lines,
		TotalQuantity: cart.TotalQuantity(),
		Total:         cart.TotalPrice(),
		ConfirmedAt:   confirmedAt,
	}, nil
}
