package domain

import (
	"strings"

	"github.com/go-faster/errors"
)

// ProductID identifies a product by its catalog name.
type ProductID string

func ParseProductID(s string) (ProductID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("product id is empty")
	}

	return ProductID(s), nil
}

func (id ProductID) String() string {
	return string(id)
}

type Image struct {
	Thumbnail string
	Mobile    string
	Tablet    string
	Desktop   string
}

type Product struct {
	ID       ProductID
	Name     string
	Category string
	Price    Money
	Image    Image
}

// ProductLookup resolves identifiers against a loaded catalog.
type ProductLookup interface {
	Product(id ProductID) (Product, bool)
}
