package catalog

import (
	"strings"

	"github.com/sunset/storefront/internal/domain/shared"
)

// Category groups products for browsing. Slug is the URL-safe
// identifier used by the storefront filters.
type Category struct {
	shared.BaseEntity
	Name string
	Slug string
}

// NewCategory creates a category, deriving the slug from the name.
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category name is required")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       Slugify(name),
	}, nil
}

// Slugify lowercases the name and replaces whitespace runs with dashes.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
