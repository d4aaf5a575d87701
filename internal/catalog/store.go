package catalog

import (
	"context"
	"slices"

	"github.com/go-faster/errors"
	"github.com/nikolayk812/dessert-cart/internal/domain"
	"github.com/nikolayk812/dessert-cart/internal/port"
	"golang.org/x/text/currency"
)

// Store is the read-only catalog of a session. It never changes after construction.
type Store struct {
	products []domain.Product
	byID     map[domain.ProductID]int
}

// NewStore rejects a product priced in anything other than cur, since the cart
// could never accept it.
func NewStore(products []domain.Product, cur currency.Unit) (*Store, error) {
	s := &Store{
		products: slices.Clone(products),
		byID:     make(map[domain.ProductID]int, len(products)),
	}

	for i, p := range s.products {
		if p.ID == "" {
			return nil, errors.Errorf("product[%d]: id is empty", i)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, errors.Errorf("product[%d]: duplicate id %q", i, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, errors.Errorf("product %q: price is negative", p.ID)
		}
		if !p.Price.In(cur) {
			return nil, errors.Errorf("product %q: priced in %s, catalog is %s", p.ID, p.Price.Currency, cur)
		}
		s.byID[p.ID] = i
	}

	return s, nil
}

// Load reads the catalog once. On failure it returns an empty store alongside the
// error so the session can keep running with nothing to show.
func Load(ctx context.Context, src port.CatalogSource, cur currency.Unit) (*Store, error) {
	empty := &Store{byID: map[domain.ProductID]int{}}

	if src == nil {
		return empty, fetchError("Load", errors.New("catalog source is nil"))
	}

	products, err := src.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrFetch) {
			return empty, errors.Wrap(err, "src.Load")
		}
		return empty, fetchError("src.Load", err)
	}

	store, err := NewStore(products, cur)
	if err != nil {
		return empty, fetchError("NewStore", err)
	}

	return store, nil
}

func (s *Store) Product(id domain.ProductID) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}

	return s.products[i], true
}

// Products returns the catalog in load order.
func (s *Store) Products() []domain.Product {
	return slices.Clone(s.products)
}

func (s *Store) Len() int {
	return len(s.products)
}
