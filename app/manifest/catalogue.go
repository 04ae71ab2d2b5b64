package manifest

import (
	"errors"
	"strings"

	"github.com/transactify/transactify/app/entity"
)

var ErrInvalidProduct = errors.New("product name must be non-empty and price must be positive")

// AddProduct inserts or overwrites a catalogue entry and persists the
// manifest immediately. Prices are minor currency units (cents).
func (s *Store) AddProduct(name string, priceCents int64) error {
	if strings.TrimSpace(name) == "" || priceCents <= 0 {
		return ErrInvalidProduct
	}

	m, err := s.Load()
	if err != nil {
		return err
	}
	m.PriceIndex.Set(name, entity.PriceEntry{Price: priceCents})
	return s.Save(m)
}

// RemoveProduct deletes a catalogue entry and persists the manifest. A
// name that is not present is a no-op; the manifest is not rewritten.
func (s *Store) RemoveProduct(name string) error {
	m, err := s.Load()
	if err != nil {
		return err
	}
	if !m.PriceIndex.Delete(name) {
		return nil
	}
	return s.Save(m)
}

// ListProducts returns the catalogue in insertion order.
func (s *Store) ListProducts() ([]entity.Product, error) {
	m, err := s.Load()
	if err != nil {
		return nil, err
	}
	return m.PriceIndex.Products(), nil
}
