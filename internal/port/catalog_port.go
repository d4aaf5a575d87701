package port

import (
	"context"

	"github.com/nikolayk812/dessert-cart/internal/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Product, error)
}

type CatalogRepository interface {
	CatalogSource
	Replace(ctx context.Context, products []domain.Product) error
}
