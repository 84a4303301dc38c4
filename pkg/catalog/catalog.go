// Package catalog holds the static registry of entity hierarchies used
// to name the nodes of a generated structure graph. A categorization is
// an ordered list of abstraction levels, most abstract first; each
// level maps to a pool of concrete item names.
package catalog

// Categorization is an ordered hierarchy of abstraction levels,
// e.g. District -> Supermarket -> Product -> Ingredient.
type Categorization struct {
	Name   string
	Levels []string
}

// Catalog maps categorizations to concrete named items per level.
// Pure data; the only behavior is lookup.
type Catalog struct {
	categorizations []Categorization
	items           map[string][][]string // category -> subcategory groups
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		categorizations: make([]Categorization, 0),
		items:           make(map[string][][]string),
	}
}

// Register adds a categorization to the catalog.
func (c *Catalog) Register(cat Categorization) {
	c.categorizations = append(c.categorizations, cat)
}

// RegisterItems adds item name groups for a category. Groups model
// subcategory clusters (e.g. produce vs. dairy products); lookups
// flatten them.
func (c *Catalog) RegisterItems(category string, groups ...[]string) {
	c.items[category] = append(c.items[category], groups...)
}

// Categorizations returns every registered categorization.
func (c *Catalog) Categorizations() []Categorization {
	return c.categorizations
}

// Items returns the flattened item names registered for a category.
// A missing category yields ok=false and no items; callers are expected
// to synthesize placeholder names rather than fail.
func (c *Catalog) Items(category string) ([]string, bool) {
	groups, ok := c.items[category]
	if !ok {
		return nil, false
	}
	flat := make([]string, 0)
	for _, group := range groups {
		flat = append(flat, group...)
	}
	return flat, true
}
