package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/nikolayk812/dessert-cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type productRecord struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Image    imageRecord      `json:"image"`
}

type imageRecord struct {
	Thumbnail string `json:"thumbnail"`
	Mobile    string `json:"mobile"`
	Tablet    string `json:"tablet"`
	Desktop   string `json:"desktop"`
}

// ParseProducts decodes a data.json style payload: a JSON array of
// {name, category, price, image:{thumbnail, mobile, tablet, desktop}} records.
func ParseProducts(r io.Reader, cur currency.Unit) ([]domain.Product, error) {
	var records []productRecord

	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "json.Decode")
	}

	products := make([]domain.Product, 0, len(records))
	seen := make(map[domain.ProductID]struct{}, len(records))

	for i, rec := range records {
		p, err := mapRecordToDomain(rec, cur)
		if err != nil {
			return nil, errors.Wrapf(err, "record[%d]", i)
		}

		if _, dup := seen[p.ID]; dup {
			return nil, errors.Errorf("record[%d]: duplicate product %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}

		products = append(products, p)
	}

	return products, nil
}

func mapRecordToDomain(rec productRecord, cur currency.Unit) (domain.Product, error) {
	id, err := domain.ParseProductID(rec.Name)
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "domain.ParseProductID")
	}

	if rec.Price == nil {
		return domain.Product{}, errors.Errorf("product %q: price is missing", id)
	}
	if rec.Price.IsNegative() {
		return domain.Product{}, errors.Errorf("product %q: price %s is negative", id, rec.Price)
	}
	if rec.Image.Desktop == "" {
		return domain.Product{}, errors.Errorf("product %q: desktop image is empty", id)
	}

	return domain.Product{
		ID:       id,
		Name:     id.String(),
		Category: rec.Category,
		Price:    domain.NewMoney(*rec.Price, cur),
		Image: domain.Image{
			Thumbnail: rec.Image.Thumbnail,
			Mobile:    rec.Image.Mobile,
			Tablet:    rec.Image.Tablet,
			Desktop:   rec.Image.Desktop,
		},
	}, nil
}

func fetchError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrFetch, err)
}
