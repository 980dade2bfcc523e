package skip

import (
	"github.com/pkg/errors"
)

// splitInsert handles an insert landing strictly inside e's item, at offset
// at with 0 < at < e.length. The item is split, e is unlinked, and three
// fresh nodes (left half, new item, right half) take over its span. Markers
// on e are rebased onto the halves before it goes away.
//
// Everything that can fail is checked before the first mutation.
func (l *listImpl[T]) splitInsert(e *node[T], at int, item T, length int) (*Marker[T], error) {
	if l.cfg.Split == nil {
		return nil, errors.Wrapf(ErrInvalidInsertion, "offset %d inside an item of length %d", at, e.length)
	}

	left, right := l.cfg.Split(e.item, at)
	ll := l.cfg.Length(left)
	rl := l.cfg.Length(right)
	if ll <= 0 || rl <= 0 || ll+rl != e.length {
		return nil, errors.Wrapf(ErrSplitLength, "split produced %d+%d, item has length %d", ll, rl, e.length)
	}

	pos := l.positionOf(e)

	leftNode := l.newNode(left, ll)
	rightNode := l.newNode(right, rl)
	rebase(e, leftNode, rightNode)

	l.unlink(e)
	l.invalidate(e) // no-op after rebase; keeps the removal contract uniform
	l.returnToPool(e)

	var stack [heightLimit]seekEntry[T]

	l.seekTo(pos, &stack)
	l.link(&stack, pos, leftNode)

	l.seekTo(pos+ll, &stack)
	l.link(&stack, pos+ll, rightNode)

	// the boundary-biased seek stops at the end of the left half, so the new
	// node lands between the halves even when it has zero length
	n := l.newNode(item, length)
	l.seekTo(pos+ll, &stack)
	l.link(&stack, pos+ll, n)

	return l.marker(n, 0), nil
}
