package catalog

import (
	"fmt"
	"math"
	"strings"
)

const maxRating = 5.0

// Catalog is the ordered, read-only sequence of items loaded at startup.
type Catalog struct {
	items  []*Item
	byName map[string]*Item
}

// New validates items and builds a catalog preserving their order.
func New(items []*Item) (*Catalog, error) {
	c := &Catalog{
		items:  make([]*Item, 0, len(items)),
		byName: make(map[string]*Item, len(items)),
	}
	for idx, item := range items {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", idx, err)
		}
		if _, exists := c.byName[item.Name]; exists {
			return nil, fmt.Errorf("item %d: %w: %q", idx, ErrDuplicateName, item.Name)
		}
		c.byName[item.Name] = item
		c.items = append(c.items, item)
	}
	return c, nil
}

func validateItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", ErrInvalidItem)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if math.IsNaN(item.Rating) || item.Rating < 0 || item.Rating > maxRating {
		return fmt.Errorf("%w: %q rating %.2f outside [0, %.0f]", ErrInvalidItem, item.Name, item.Rating, maxRating)
	}
	seen := make(map[string]struct{}, len(item.Substitutions))
	for _, sub := range item.Substitutions {
		if strings.TrimSpace(sub.Ingredient) == "" {
			return fmt.Errorf("%w: %q has a substitution with an empty key", ErrInvalidItem, item.Name)
		}
		if _, dup := seen[sub.Ingredient]; dup {
			return fmt.Errorf("%w: %q repeats substitution %q", ErrInvalidItem, item.Name, sub.Ingredient)
		}
		seen[sub.Ingredient] = struct{}{}
	}
	return nil
}

// Items returns the catalog order. Callers must not modify the slice.
func (c *Catalog) Items() []*Item {
	if c == nil {
		return nil
	}
	return c.items
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Lookup finds an item by its unique name.
func (c *Catalog) Lookup(name string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	item, ok := c.byName[name]
	return item, ok
}
