package view

import (
	"fmt"

	"github.com/nikolayk812/dessert-cart/internal/session"
)

const emptyCartMessage = "Your added items will appear here."

type ProductCard struct {
	Name     string
	Category string
	Price    string
	ImageURL string

	// Exactly one of the add button and the quantity selector is shown.
	ShowAddButton        bool
	ShowQuantitySelector bool
	Quantity             int
}

type CartLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type CartPanel struct {
	Empty        bool
	EmptyMessage string
	Header       string
	Lines        []CartLine

	OrderTotal        string
	ShowConfirmButton bool
}

type ConfirmationLine struct {
	CartLine

	ImageURL string
}

type Confirmation struct {
	Visible    bool
	OrderID    string
	Lines      []ConfirmationLine
	OrderTotal string
}

type Screen struct {
	Cards        []ProductCard
	Cart         CartPanel
	CartBadge    int
	Confirmation Confirmation
}

// Build derives everything the page shows, including which controls are visible,
// from a session snapshot. It holds no state of its own.
func Build(s session.State) Screen {
	screen := Screen{
		Cards:     make([]ProductCard, 0, len(s.Products)),
		CartBadge: s.TotalQuantity,
	}

	for _, p := range s.Products {
		screen.Cards = append(screen.Cards, ProductCard{
			Name:                 p.Product.Name,
			Category:             p.Product.Category,
			Price:                p.Product.Price.String(),
			ImageURL:             p.Product.Image.Desktop,
			ShowAddButton:        !p.InCart,
			ShowQuantitySelector: p.InCart,
			Quantity:             p.Quantity,
		})
	}

	screen.Cart = buildCartPanel(s)
	screen.Confirmation = buildConfirmation(s)

	return screen
}

func buildCartPanel(s session.State) CartPanel {
	if s.TotalQuantity == 0 {
		return CartPanel{Empty: true, EmptyMessage: emptyCartMessage}
	}

	panel := CartPanel{
		Header:            fmt.Sprintf("Your Cart (%d)", s.TotalQuantity),
		Lines:             make([]CartLine, 0, len(s.Lines)),
		OrderTotal:        s.TotalPrice.String(),
		ShowConfirmButton: s.Phase == session.PhaseBrowsing,
	}

	for _, line := range s.Lines {
		panel.Lines = append(panel.Lines, CartLine{
			Name:      line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			LineTotal: line.LineTotal.String(),
		})
	}

	return panel
}

func buildConfirmation(s session.State) Confirmation {
	if s.Phase != session.PhaseReviewing || s.Summary == nil {
		return Confirmation{}
	}

	c := Confirmation{
		Visible:    true,
		OrderID:    s.Summary.ID.String(),
		Lines:      make([]ConfirmationLine, 0, len(s.Summary.Lines)),
		OrderTotal: s.Summary.Total.String(),
	}

	for _, line := range s.Summary.Lines {
		c.Lines = append(c.Lines, ConfirmationLine{
			CartLine: CartLine{
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice.String(),
				LineTotal: line.LineTotal.String(),
			},
			ImageURL: line.ImageURL,
		})
	}

	return c
}
