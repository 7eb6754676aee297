// Package catalog holds the static sector reference data the onboarding flow
// reads from. Data is fixed at build time; the catalog has no mutators.
package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// minSearchTerm is the shortest term Search answers. Shorter terms match too
// much to be useful.
const minSearchTerm = 3

// Catalog is an immutable, indexed sector table.
type Catalog struct {
	sectors    []domain.Sector
	categories []domain.Category
	byName     map[string]int
	byCategory map[string][]int
	categoryAt map[string]int
}

// New indexes the given table. Sector names must be unique and every sector
// must reference a known category.
func New(sectors []domain.Sector, categories []domain.Category) (*Catalog, error) {
	c := &Catalog{
		sectors:    sectors,
		categories: categories,
		byName:     make(map[string]int, len(sectors)),
		byCategory: make(map[string][]int, len(categories)),
		categoryAt: make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if _, dup := c.categoryAt[cat.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat.ID)
		}
		c.categoryAt[cat.ID] = i
	}
	for i, s := range sectors {
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate sector %q", s.Name)
		}
		if _, ok := c.categoryAt[s.Category]; !ok {
			return nil, fmt.Errorf("catalog: sector %q: %w: %q", s.Name, domain.ErrCategoryNotFound, s.Category)
		}
		c.byName[s.Name] = i
		c.byCategory[s.Category] = append(c.byCategory[s.Category], i)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultSectors, defaultCategories)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the sector with the given name.
func (c *Catalog) Lookup(name string) (domain.Sector, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Sector{}, false
	}
	return c.sectors[i], true
}

// SectorsIn returns the members of category in catalog order. Unknown
// categories yield an empty result.
func (c *Catalog) SectorsIn(category string) []domain.Sector {
	idx := c.byCategory[category]
	out := make([]domain.Sector, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.sectors[i])
	}
	return out
}

// Search matches term case-insensitively against sector names, descriptions
// and tags. Terms shorter than three characters return nothing.
func (c *Catalog) Search(term string) []domain.Sector {
	term = strings.ToLower(strings.TrimSpace(term))
	if utf8.RuneCountInString(term) < minSearchTerm {
		return nil
	}

	var out []domain.Sector
	for _, s := range c.sectors {
		if matches(s, term) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s domain.Sector, term string) bool {
	if strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.Description), term) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (domain.Category, bool) {
	i, ok := c.categoryAt[id]
	if !ok {
		return domain.Category{}, false
	}
	return c.categories[i], true
}

// Categories returns every category with its computed sector count.
func (c *Catalog) Categories() []domain.CategorySummary {
	out := make([]domain.CategorySummary, len(c.categories))
	for i, cat := range c.categories {
		out[i] = domain.CategorySummary{Category: cat, SectorCount: len(c.byCategory[cat.ID])}
	}
	return out
}

// Sectors returns the whole table in catalog order.
func (c *Catalog) Sectors() []domain.Sector {
	out := make([]domain.Sector, len(c.sectors))
	copy(out, c.sectors)
	return out
}
