package catalog

import (
	"context"
	"os"

	"github.com/nikolayk812/dessert-cart/internal/domain"
	"golang.org/x/text/currency"
)

type FileSource struct {
	path     string
	currency currency.Unit
}

func NewFileSource(path string, cur currency.Unit) *FileSource {
	return &FileSource{path: path, currency: cur}
}

func (s *FileSource) Load(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError("ctx.Err", err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fetchError("os.Open", err)
	}
	defer f.Close()

	products, err := ParseProducts(f, s.currency)
	if err != nil {
		return nil, fetchError("ParseProducts", err)
	}

	return products, nil
}
