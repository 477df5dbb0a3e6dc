// Package comparison manages the user's comparison selection and builds side-by-side tables.
package comparison

import (
	"slices"

	"github.com/wfap/offerdesk/internal/model"
)

// Selection is a deduplicated set of offer keys kept in the order they were selected.
// It is an immutable value: Add, Remove and Clear return a new Selection.
type Selection struct {
	keys []model.OfferKey
}

// NewSelection builds a selection from keys, dropping duplicates after their first occurrence.
func NewSelection(keys ...model.OfferKey) Selection {
	var s Selection
	for _, k := range keys {
		s = s.Add(k)
	}
	return s
}

// Add returns a selection including key. Adding a present key is a no-op.
func (s Selection) Add(key model.OfferKey) Selection {
	if s.Contains(key) {
		return s
	}
	keys := make([]model.OfferKey, len(s.keys), len(s.keys)+1)
	copy(keys, s.keys)
	return Selection{keys: append(keys, key)}
}

// Remove returns a selection without key. Removing an absent key is a no-op.
func (s Selection) Remove(key model.OfferKey) Selection {
	i := slices.Index(s.keys, key)
	if i < 0 {
		return s
	}
	keys := make([]model.OfferKey, 0, len(s.keys)-1)
	keys = append(keys, s.keys[:i]...)
	keys = append(keys, s.keys[i+1:]...)
	return Selection{keys: keys}
}

// Clear returns the empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Contains reports whether key is selected.
func (s Selection) Contains(key model.OfferKey) bool {
	return slices.Contains(s.keys, key)
}

// Len returns the number of selected offers.
func (s Selection) Len() int {
	return len(s.keys)
}

// Keys returns the selected keys in selection order.
func (s Selection) Keys() []model.OfferKey {
	return slices.Clone(s.keys)
}

// Equal reports whether both selections hold the same keys in the same order.
func (s Selection) Equal(other Selection) bool {
	return slices.Equal(s.keys, other.keys)
}

// Retain returns the selection restricted to keys for which keep returns true, preserving order.
func (s Selection) Retain(keep func(model.OfferKey) bool) Selection {
	var out Selection
	for _, k := range s.keys {
		if keep(k) {
			out.keys = append(out.keys, k)
		}
	}
	return out
}
