package catalog

import (
	"context"
	"strings"

	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
)

// Service exposes read-only catalog lookups.
type Service interface {
	List(ctx context.Context) []Product
	GetByID(ctx context.Context, id int64) (Product, error)
	GetByBarcode(ctx context.Context, barcode string) (Product, error)
	ListByCategory(ctx context.Context, category string) []Product
	Search(ctx context.Context, query string) []Product
}

type service struct {
	products  []Product
	byID      map[int64]Product
	byBarcode map[string]Product
}

// NewService builds a catalog from the static seed inventory.
func NewService() Service {
	return NewServiceWithProducts(seedProducts())
}

// NewServiceWithProducts builds a catalog from the given products,
// assigning sequential ids to entries that lack one. After this the
// catalog never mutates, so lookups need no locking.
func NewServiceWithProducts(products []Product) Service {
	s := &service{
		products:  make([]Product, 0, len(products)),
		byID:      make(map[int64]Product, len(products)),
		byBarcode: make(map[string]Product, len(products)),
	}
	nextID := int64(1)
	for _, product := range products {
		if product.ID == 0 {
			product.ID = nextID
		}
		if product.ID >= nextID {
			nextID = product.ID + 1
		}
		product.IsAvailable = product.IsAvailable || product.StockQuantity > 0
		s.products = append(s.products, product)
		s.byID[product.ID] = product
		if product.Barcode != "" {
			s.byBarcode[product.Barcode] = product
		}
	}
	return s
}

func (s *service) List(ctx context.Context) []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) GetByID(ctx context.Context, id int64) (Product, error) {
	product, ok := s.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) GetByBarcode(ctx context.Context, barcode string) (Product, error) {
	product, ok := s.byBarcode[barcode]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) ListByCategory(ctx context.Context, category string) []Product {
	var out []Product
	for _, product := range s.products {
		if strings.EqualFold(product.Category, category) {
			out = append(out, product)
		}
	}
	return out
}

// Search matches a case-insensitive substring against the name,
// Hindi name, category and brand, mirroring the storefront's
// free-text box.
func (s *service) Search(ctx context.Context, query string) []Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}
	var out []Product
	for _, product := range s.products {
		if strings.Contains(strings.ToLower(product.Name), term) ||
			strings.Contains(product.NameHindi, query) ||
			strings.Contains(strings.ToLower(product.Category), term) ||
			strings.Contains(strings.ToLower(product.Brand), term) {
			out = append(out, product)
		}
	}
	return out
}
