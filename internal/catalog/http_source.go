package catalog

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/nikolayk812/dessert-cart/internal/domain"
	"golang.org/x/text/currency"
)

// HTTPSource fetches the catalog payload with a single GET. There is no retry.
type HTTPSource struct {
	url      string
	currency currency.Unit
	client   *http.Client
}

func NewHTTPSource(url string, cur currency.Unit, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPSource{url: url, currency: cur, client: client}
}

func (s *HTTPSource) Load(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fetchError("http.NewRequestWithContext", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fetchError("client.Do", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fetchError("client.Do", errors.Errorf("unexpected status %d", resp.StatusCode))
	}

	products, err := ParseProducts(resp.Body, s.currency)
	if err != nil {
		return nil, fetchError("ParseProducts", err)
	}

	return products, nil
}
