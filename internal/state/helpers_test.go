package state

import (
	"testing"

	"github.com/kk-code-lab/cookiebox/internal/catalog"
)

func newTestCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	items := make([]*catalog.Item, 0, len(names))
	for _, name := range names {
		items = append(items, catalog.NewItem(name, nil, nil, "", 3, nil))
	}
	c, err := catalog.New(items)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func newCookieState(t *testing.T) *AppState {
	t.Helper()
	c, err := catalog.New([]*catalog.Item{
		catalog.NewItem("Chocolate Chip Cookies", []string{"1 cup butter"}, nil, "Bake.", 4.8, []string{"Absolutely delicious and easy to make!"}),
		catalog.NewItem("Oatmeal Raisin Cookies", []string{"2 cups rolled oats"}, nil, "Bake.", 4.6, []string{"Super chewy and flavorful!"}),
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return NewAppState(c)
}

func mustReduce(t *testing.T, reducer *StateReducer, state *AppState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("reduce %T: %v", action, err)
		}
	}
}

func itemNames(items []*Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
