package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/dessert-cart/internal/catalog"
	"github.com/nikolayk812/dessert-cart/internal/domain"
	"github.com/nikolayk812/dessert-cart/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

const testdataCatalog = "testdata/data.json"

func TestFileSource_Load(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		path      string
		wantNames []string
		wantError bool
	}{
		{
			name:      "load testdata catalog: ok",
			path:      testdataCatalog,
			wantNames: []string{"Waffle with Berries", "Vanilla Bean Crème Brûlée", "Macaron Mix of Five"},
		},
		{
			name:      "missing file: error",
			path:      filepath.Join(t.TempDir(), "nope.json"),
			wantError: true,
		},
		{
			name:      "not json: error",
			payload:   "<html>",
			wantError: true,
		},
		{
			name:      "negative price: error",
			payload:   `[{"name":"A","category":"x","price":-1,"image":{"desktop":"a.jpg"}}]`,
			wantError: true,
		},
		{
			name:      "missing price: error",
			payload:   `[{"name":"A","category":"x","image":{"desktop":"a.jpg"}}]`,
			wantError: true,
		},
		{
			name:      "empty name: error",
			payload:   `[{"name":"  ","category":"x","price":1,"image":{"desktop":"a.jpg"}}]`,
			wantError: true,
		},
		{
			name: "duplicate name: error",
			payload: `[{"name":"A","category":"x","price":1,"image":{"desktop":"a.jpg"}},
				{"name":"A","category":"y","price":2,"image":{"desktop":"b.jpg"}}]`,
			wantError: true,
		},
		{
			name:      "missing desktop image: error",
			payload:   `[{"name":"A","category":"x","price":1,"image":{}}]`,
			wantError: true,
		},
		{
			name:      "empty array: ok",
			payload:   `[]`,
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = writeTemp(t, tt.payload)
			}

			products, err := catalog.NewFileSource(path, currency.USD).Load(t.Context())
			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrFetch)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Name)
				assert.Equal(t, currency.USD, p.Price.Currency)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestHTTPSource_Load(t *testing.T) {
	payload, err := os.ReadFile(testdataCatalog)
	require.NoError(t, err)

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantLen   int
		wantError bool
	}{
		{
			name: "fetch catalog: ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(payload)
			},
			wantLen: 3,
		},
		{
			name: "server error: error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantError: true,
		},
		{
			name: "malformed payload: error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"name":"not an array"}`))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			products, err := catalog.NewHTTPSource(srv.URL+"/data.json", currency.USD, srv.Client()).Load(t.Context())
			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrFetch)
				return
			}
			require.NoError(t, err)
			assert.Len(t, products, tt.wantLen)
			assert.Equal(t, "6.50", products[0].Price.Display())
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	client := srv.Client()
	srv.Close()

	_, err := catalog.NewHTTPSource(url, currency.USD, client).Load(t.Context())
	require.ErrorIs(t, err, domain.ErrFetch)
}

func TestHTTPSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := catalog.NewHTTPSource("http://127.0.0.1:1/data.json", currency.USD, nil).Load(ctx)
	require.ErrorIs(t, err, domain.ErrFetch)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad(t *testing.T) {
	t.Run("load from file: ok", func(t *testing.T) {
		store, err := catalog.Load(t.Context(), catalog.NewFileSource(testdataCatalog, currency.USD), currency.USD)
		require.NoError(t, err)

		assert.Equal(t, 3, store.Len())
		p, ok := store.Product("Macaron Mix of Five")
		require.True(t, ok)
		assert.Equal(t, "Macaron", p.Category)
		assert.Equal(t, "8.00", p.Price.Display())
	})

	t.Run("failed source leaves empty store: error", func(t *testing.T) {
		store, err := catalog.Load(t.Context(), catalog.NewFileSource("does/not/exist.json", currency.USD), currency.USD)
		require.ErrorIs(t, err, domain.ErrFetch)
		require.NotNil(t, store)
		assert.Zero(t, store.Len())
		assert.Empty(t, store.Products())
	})

	t.Run("non-fetch source error is classified: error", func(t *testing.T) {
		store, err := catalog.Load(t.Context(), failingSource{err: assert.AnError}, currency.USD)
		require.ErrorIs(t, err, domain.ErrFetch)
		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, store.Len())
	})

	t.Run("products in another currency: error", func(t *testing.T) {
		store, err := catalog.Load(t.Context(), catalog.NewFileSource(testdataCatalog, currency.USD), currency.EUR)
		require.ErrorIs(t, err, domain.ErrFetch)
		require.ErrorContains(t, err, "priced in USD, catalog is EUR")
		require.NotNil(t, store)
		assert.Zero(t, store.Len())

		_, ok := store.Product("Waffle with Berries")
		assert.False(t, ok)
	})

	t.Run("nil source: error", func(t *testing.T) {
		_, err := catalog.Load(t.Context(), nil, currency.USD)
		require.ErrorIs(t, err, domain.ErrFetch)
	})
}

func TestNewStore(t *testing.T) {
	price := domain.NewMoney(decimal.RequireFromString("6.50"), currency.USD)
	waffle := domain.Product{ID: "Waffle", Name: "Waffle", Price: price}

	tests := []struct {
		name     string
		products []domain.Product
		cur      currency.Unit
		wantErr  string
	}{
		{
			name:     "matching currency: ok",
			products: []domain.Product{waffle},
			cur:      currency.USD,
		},
		{
			name:     "foreign currency: error",
			products: []domain.Product{waffle},
			cur:      currency.GBP,
			wantErr:  `product "Waffle": priced in USD, catalog is GBP`,
		},
		{
			name:     "duplicate id: error",
			products: []domain.Product{waffle, waffle},
			cur:      currency.USD,
			wantErr:  `product[1]: duplicate id "Waffle"`,
		},
		{
			name:     "empty id: error",
			products: []domain.Product{{Name: "Waffle", Price: price}},
			cur:      currency.USD,
			wantErr:  "product[0]: id is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := catalog.NewStore(tt.products, tt.cur)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.products), store.Len())
		})
	}
}

func TestStore_ProductsIsACopy(t *testing.T) {
	store, err := catalog.Load(t.Context(), catalog.NewFileSource(testdataCatalog, currency.USD), currency.USD)
	require.NoError(t, err)

	products := store.Products()
	products[0].Name = "changed"

	p, ok := store.Product("Waffle with Berries")
	require.True(t, ok)
	assert.Equal(t, "Waffle with Berries", p.Name)
}

type failingSource struct {
	err error
}

var _ port.CatalogSource = failingSource{}

func (s failingSource) Load(context.Context) ([]domain.Product, error) {
	return nil, s.err
}

func writeTemp(t *testing.T, payload string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	return path
}
