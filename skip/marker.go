package skip

import (
	"github.com/pkg/errors"
)

// Marker is a stable handle to an item in a List. It stays valid through
// inserts, removes and splits elsewhere in the list; when the item it tracks
// is itself split, the marker is rebased onto whichever half contains its
// offset. Removing the tracked item invalidates the marker.
//
// Markers do not own the item and must not be read concurrently with list
// mutation.
type Marker[T any] struct {
	list *listImpl[T]
	node *node[T]
	off  int
}

// Valid reports whether the marker still tracks a stored item. O(1).
func (m *Marker[T]) Valid() bool {
	return m.node != nil
}

// Item returns the tracked item and the marker's offset into it.
// Fails with ErrInvalidated once the item has been removed.
func (m *Marker[T]) Item() (item T, offset int, err error) {
	if m.node == nil {
		return item, 0, errors.WithStack(ErrInvalidated)
	}
	return m.node.item, m.off, nil
}

// Position returns the marker's absolute position, the tracked item's
// current start plus the marker offset. Costs ~O(logn).
// Fails with ErrInvalidated once the item has been removed.
func (m *Marker[T]) Position() (int, error) {
	if m.node == nil {
		return 0, errors.WithStack(ErrInvalidated)
	}
	return m.list.positionOf(m.node) + m.off, nil
}

// Release detaches the marker early so its node no longer references it.
// The marker reads as invalidated afterwards. Optional; a released marker
// just stops costing its node a slot.
func (m *Marker[T]) Release() {
	if m.node == nil {
		return
	}
	marks := m.node.marks
	for i, o := range marks {
		if o == m {
			marks[i] = marks[len(marks)-1]
			m.node.marks = marks[:len(marks)-1]
			break
		}
	}
	m.node = nil
}

func (l *listImpl[T]) marker(n *node[T], off int) *Marker[T] {
	m := &Marker[T]{list: l, node: n, off: off}
	n.marks = append(n.marks, m)
	return m
}

// invalidate detaches every marker on e, so each reports ErrInvalidated from
// now on. O(markers on e) only.
func (l *listImpl[T]) invalidate(e *node[T]) {
	for _, m := range e.marks {
		m.node = nil
	}
	e.marks = nil
}

// rebase moves e's markers onto the two halves replacing it. Markers with an
// offset inside the left half keep their offset; the rest, including a
// marker exactly on the split point, move to the right half rebased to its
// local coordinate.
func rebase[T any](e, left, right *node[T]) {
	for _, m := range e.marks {
		if m.off < left.length {
			m.node = left
			left.marks = append(left.marks, m)
		} else {
			m.node = right
			m.off -= left.length
			right.marks = append(right.marks, m)
		}
	}
	e.marks = nil
}
