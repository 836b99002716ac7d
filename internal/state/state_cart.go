package state

import "slices"

// AddToCart appends name unless it is already present. The input slice is
// never modified.
func AddToCart(cart []string, name string) []string {
	if cartContains(cart, name) {
		return cart
	}
	out := make([]string, len(cart), len(cart)+1)
	copy(out, cart)
	return append(out, name)
}

func cartContains(cart []string, name string) bool {
	return slices.Contains(cart, name)
}
