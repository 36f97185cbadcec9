// Package catalog serves the static product catalog. Data is seeded once at
// construction and never mutated, so reads need no locking.
package catalog

import (
	"errors"
	"sort"
	"strings"

	"zentro/internal/models"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Sort orders accepted by Search.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// Service answers catalog queries.
type Service struct {
	products   []models.Product
	categories []models.Category
	byID       map[string]models.Product
}

// NewService builds a catalog from the demo seed data.
func NewService() *Service {
	return newService(seedProducts, seedCategories)
}

func newService(products []models.Product, categories []models.Category) *Service {
	s := &Service{
		products:   products,
		categories: categories,
		byID:       make(map[string]models.Product, len(products)),
	}
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return s
}

// List returns every product.
func (s *Service) List() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns the browsing categories.
func (s *Service) Categories() []models.Category {
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Featured returns the featured subset.
func (s *Service) Featured() []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns the products in one category.
func (s *Service) ByCategory(categoryID string) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// FindByID resolves a single product.
func (s *Service) FindByID(id string) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Search filters by name/description substring and category, then sorts.
// An empty query or the category "all" matches everything.
func (s *Service) Search(query, categoryID, sortBy string) []models.Product {
	query = strings.ToLower(query)

	var out []models.Product
	for _, p := range s.products {
		matchesSearch := query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := categoryID == "" || categoryID == "all" || p.Category == categoryID
		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}
	return out
}
