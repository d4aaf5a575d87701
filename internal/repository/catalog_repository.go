package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/dessert-cart/internal/db"
	"github.com/nikolayk812/dessert-cart/internal/domain"
	"github.com/nikolayk812/dessert-cart/internal/port"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// Load reads the products table in catalog order. Any failure is reported as domain.ErrFetch.
func (r *catalogRepository) Load(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w: %w", domain.ErrFetch, err)
	}

	products, err := mapListProductsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapListProductsRowsToDomain: %w: %w", domain.ErrFetch, err)
	}

	return products, nil
}

// Replace swaps the whole catalog in one transaction, keeping the slice order.
func (r *catalogRepository) Replace(ctx context.Context, products []domain.Product) error {
	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product[%d]: id is empty", i)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("product[%s]: %w", p.ID, domain.ErrInvalidPrice)
		}
	}

	_, err := withTx(ctx, r.pool, r.q, catalogWriteTx, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteProducts(ctx); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteProducts: %w", err)
		}

		for i, p := range products {
			if err := q.InsertProduct(ctx, mapDomainToInsertParams(i, p)); err != nil {
				return struct{}{}, fmt.Errorf("q.InsertProduct[%s]: %w", p.ID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapDomainToInsertParams(position int, p domain.Product) db.InsertProductParams {
	return db.InsertProductParams{
		Name:           p.ID.String(),
		Position:       int32(position),
		Category:       p.Category,
		PriceAmount:    p.Price.Amount,
		PriceCurrency:  p.Price.Currency.String(),
		ImageThumbnail: p.Image.Thumbnail,
		ImageMobile:    p.Image.Mobile,
		ImageTablet:    p.Image.Tablet,
		ImageDesktop:   p.Image.Desktop,
	}
}

func mapListProductsRowToDomain(row db.ListProductsRow) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	id, err := domain.ParseProductID(row.Name)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseProductID: %w", err)
	}

	return domain.Product{
		ID:       id,
		Name:     row.Name,
		Category: row.Category,
		Price:    domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Image: domain.Image{
			Thumbnail: row.ImageThumbnail,
			Mobile:    row.ImageMobile,
			Tablet:    row.ImageTablet,
			Desktop:   row.ImageDesktop,
		},
	}, nil
}

func mapListProductsRowsToDomain(rows []db.ListProductsRow) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		p, err := mapListProductsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapListProductsRowToDomain: %w", err)
		}

		products = append(products, p)
	}

	return products, nil
}
