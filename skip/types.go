// Package skip implements a positional skip list over variable-length items.
//
// Positions are measured by a caller-supplied length function, so "position
// 500" can mean "the 500th character" across items that each span many
// characters. The list supports O(logn) insert/remove/lookup anywhere in the
// sequence, stable markers that survive edits elsewhere, and a cursor that
// batches nearby edits without repeated head-to-target searches.
package skip

import (
	"iter"
)

// Config controls a List.
type Config[T any] struct {
	// Length reports the span of an item in position units. Required.
	// It must return a non-negative value which stays stable while the item
	// is stored; New panics if Length is nil.
	Length func(item T) int

	// Split divides an item at an offset strictly inside it, returning the
	// two halves. The halves must have positive lengths which sum to the
	// original length. If nil, inserting strictly inside an item fails with
	// ErrInvalidInsertion.
	Split func(item T, at int) (left, right T)

	// MaxHeight caps the height of list nodes. Defaults to 32.
	MaxHeight int

	// Bias is the chance a node grows one more level, in (0,1). Defaults to 0.5.
	Bias float64

	// Seed seeds the height generator, for reproducible runs.
	// Zero draws a random seed.
	Seed uint32
}

// List is a positional skip list.
// It supports zero-length items.
// It is not goroutine-safe; callers needing concurrent access must provide
// their own exclusion around every call, including marker reads.
type List[T any] interface {
	// Len returns the total length of all items. O(1).
	Len() int

	// Count returns the number of items held. O(1).
	Count() int

	// Insert places an item so that it starts at the given position,
	// 0 <= position <= Len(). A position strictly inside an existing item
	// splits that item via Config.Split, or fails with ErrInvalidInsertion
	// if no Split is configured. Costs ~O(logn).
	// The returned Marker tracks the start of the inserted item.
	Insert(position int, item T) (*Marker[T], error)

	// Remove deletes the range [position, position+length).
	// The range must start and end on item boundaries; a partial overlap
	// fails with ErrMisalignedRange and changes nothing. Zero-length items
	// strictly inside the range are removed with it; zero-length items at
	// the far boundary survive. Costs ~O(logn+m) for m removed items.
	Remove(position, length int) error

	// Find returns the item covering the position and the offset into it,
	// for 0 <= position < Len(). Costs ~O(logn).
	Find(position int) (item T, offset int, err error)

	// MarkerAt creates a Marker for the item covering the position, with the
	// offset into it, mirroring Find. Costs ~O(logn).
	MarkerAt(position int) (*Marker[T], error)

	// Cursor returns a cursor positioned at the start of the list.
	// At most one cursor may be in use per list at a time, and direct List
	// mutation invalidates it; this is a caller obligation, not checked.
	Cursor() Cursor[T]

	// Iter yields (position, item) pairs in sequence order.
	// Behavior is undefined if the list is mutated during iteration.
	Iter() iter.Seq2[int, T]

	// DebugPrint logs the level structure of the list.
	DebugPrint()
}

// Cursor is a stateful edit handle over one List, amortizing repeated nearby
// operations by keeping its place instead of re-searching from the head.
//
// A sequence of cursor operations applies sequentially: if one fails, the
// list reflects exactly the operations that completed before it. There is no
// rollback; callers needing all-or-nothing batches must pre-validate.
type Cursor[T any] interface {
	// Pos returns the cursor's absolute position. O(1).
	Pos() int

	// Seek moves to an absolute position, 0 <= position <= Len().
	// Cheap within the current item, otherwise a full ~O(logn) descent.
	Seek(position int) error

	// Item returns the item at the cursor and the offset into it, without
	// moving. Fails with ErrOutOfRange at the end of the list.
	Item() (item T, offset int, err error)

	// Insert places an item at the cursor and advances past it.
	// Splitting follows the same rules as List.Insert.
	Insert(item T) error

	// Delete removes the given length forward of the cursor, which must sit
	// on an item boundary. The cursor stays at the resulting boundary.
	Delete(length int) error

	// Advance moves forward by delta position units, walking node to node.
	Advance(delta int) error

	// Retreat moves backward by delta position units, walking node to node.
	Retreat(delta int) error
}
