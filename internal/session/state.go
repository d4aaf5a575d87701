package session

import "github.com/nikolayk812/dessert-cart/internal/domain"

type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseReviewing
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseReviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

// ProductState is a catalog product with its current cart membership.
type ProductState struct {
	Product  domain.Product
	InCart   bool
	Quantity int
}

// State is an immutable snapshot handed to the presentation layer after every change.
type State struct {
	Phase         Phase
	Products      []ProductState
	Lines         []domain.LineItem
	TotalQuantity int
	TotalPrice    domain.Money

	// Summary is set only while Phase is PhaseReviewing.
	Summary *domain.OrderSummary
}

type Renderer interface {
	Render(State)
}

type RendererFunc func(State)

func (f RendererFunc) Render(s State) {
	f(s)
}
