package annotation

import (
	"github.com/Nakamura9310/snapmark/domain/geometry"
)

// Store owns the ordered collection of annotations for one editing session.
// Insertion order is z-order: later insertions draw on top. The store is
// mutated only by the session's input loop; it holds no locks.
//
// Single-selection is a caller policy; the store itself allows any number of
// selected annotations.
type Store struct {
	items    []Annotation
	measurer TextMeasurer
}

// NewStore returns an empty store. A nil measurer falls back to
// EstimateMeasurer.
func NewStore(m TextMeasurer) *Store {
	if m == nil {
		m = EstimateMeasurer{}
	}
	return &Store{measurer: m}
}

// Len returns the number of annotations.
func (s *Store) Len() int { return len(s.items) }

// Insert assigns a fresh id, appends the annotation at the top of the
// z-order, and returns the id. Any id already present on the value is
// replaced; insertion never fails.
func (s *Store) Insert(a Annotation) ID {
	a.ID = NewID()
	s.items = append(s.items, a)
	return a.ID
}

// Remove deletes the annotation with the given id, preserving the relative
// order of the rest. Removing an unknown id is a no-op and returns false.
func (s *Store) Remove(id ID) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies an in-place edit to the annotation with the given id.
// Unknown ids are a no-op; UI races such as delete-then-edit must not fail.
// The mutator cannot change the annotation's id.
func (s *Store) Update(id ID, mutate func(*Annotation)) bool {
	if mutate == nil {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == id {
			mutate(&s.items[i])
			s.items[i].ID = id
			return true
		}
	}
	return false
}

// Get returns a copy of the annotation with the given id.
func (s *Store) Get(id ID) (Annotation, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return s.items[i], true
		}
	}
	return Annotation{}, false
}

// HitTest walks the annotations in reverse z-order (topmost first) and
// returns the first whose bounds contain p, so overlapping shapes resolve to
// the one drawn on top.
func (s *Store) HitTest(p geometry.Point) (ID, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Bounds(s.measurer).Contains(p) {
			return s.items[i].ID, true
		}
	}
	return ID{}, false
}

// SetSelected toggles the transient selection flag on one annotation.
func (s *Store) SetSelected(id ID, selected bool) bool {
	return s.Update(id, func(a *Annotation) { a.Selected = selected })
}

// ClearSelected clears the selection flag on every annotation.
func (s *Store) ClearSelected() {
	for i := range s.items {
		s.items[i].Selected = false
	}
}

// Selected returns the id of the first selected annotation in z-order.
func (s *Store) Selected() (ID, bool) {
	for i := range s.items {
		if s.items[i].Selected {
			return s.items[i].ID, true
		}
	}
	return ID{}, false
}

// InZOrder returns a snapshot of the annotations bottom-to-top. The slice is
// a copy: later store mutations do not show through, so it can be handed to a
// compositor running off the input loop.
func (s *Store) InZOrder() []Annotation {
	out := make([]Annotation, len(s.items))
	copy(out, s.items)
	return out
}
