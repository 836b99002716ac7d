// Package catalog holds the read-only cookie catalog and the loader that
// builds it from YAML seed data.
package catalog

// Substitution pairs an ingredient with its suggested alternative.
type Substitution struct {
	Ingredient string
	Text       string
}

// Item is one catalog entry. Everything except the review ledger is fixed
// once the catalog is built.
type Item struct {
	Name          string
	Ingredients   []string
	Substitutions []Substitution
	Process       string
	Rating        float64

	reviews []string
}

// NewItem returns an item seeded with the given reviews.
func NewItem(name string, ingredients []string, subs []Substitution, process string, rating float64, reviews []string) *Item {
	return &Item{
		Name:          name,
		Ingredients:   append([]string(nil), ingredients...),
		Substitutions: append([]Substitution(nil), subs...),
		Process:       process,
		Rating:        rating,
		reviews:       append([]string(nil), reviews...),
	}
}

// Substitution returns the alternative text for an ingredient key.
func (it *Item) Substitution(ingredient string) (string, bool) {
	for _, sub := range it.Substitutions {
		if sub.Ingredient == ingredient {
			return sub.Text, true
		}
	}
	return "", false
}

// Reviews returns a copy of the review ledger in posting order.
func (it *Item) Reviews() []string {
	return append([]string(nil), it.reviews...)
}

// ReviewCount reports how many reviews the item has.
func (it *Item) ReviewCount() int {
	return len(it.reviews)
}

// AddReview appends text to the ledger. The ledger is append-only.
func (it *Item) AddReview(text string) {
	it.reviews = append(it.reviews, text)
}
