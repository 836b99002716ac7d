package state

// SelectItem resolves index against filtered. Out-of-range indices yield
// nil; they are never clamped onto a different item.
func SelectItem(filtered []*Item, index int) *Item {
	if index < 0 || index >= len(filtered) {
		return nil
	}
	return filtered[index]
}

func (s *AppState) setSelection(index int) {
	if s.SelectedIndex != index {
		s.DetailScroll = 0
	}
	s.SelectedIndex = index
}

func (s *AppState) moveSelection(delta int) {
	filtered := s.FilteredItems()
	if len(filtered) == 0 {
		return
	}

	idx := s.SelectedIndex
	if idx < 0 || idx >= len(filtered) {
		// Stale selection: start from the edge the user is moving away from.
		if delta > 0 {
			s.setSelection(0)
		} else {
			s.setSelection(len(filtered) - 1)
		}
		return
	}

	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(filtered)-1 {
		idx = len(filtered) - 1
	}
	s.setSelection(idx)
}
