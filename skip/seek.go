package skip

// seekEntry records, for one level, the last node starting at or before a
// target position and the distance from that node's start to the target.
type seekEntry[T any] struct {
	node *node[T]
	off  int
}

// seekTo fills stack[0:height] with the per-level boundary entries for pos.
// The descent is boundary-biased: a position on an item boundary resolves to
// the node before it, with off equal to that node's level span. The level-0
// entry therefore has 0 <= off <= node.length, with off < length only when
// pos lands strictly inside the item. pos must already be range-checked.
func (l *listImpl[T]) seekTo(pos int, stack *[heightLimit]seekEntry[T]) {
	n := &l.head
	off := pos

	for h := l.height - 1; h >= 0; h-- {
		// advance while the target is strictly past this link
		for off > n.levels[h].span {
			off -= n.levels[h].span
			n = n.levels[h].next // nil here would mean corrupted spans
		}
		stack[h] = seekEntry[T]{node: n, off: off}
	}
}

// locate returns the node covering pos and the offset into it.
// Unlike seekTo it biases past boundaries (and zero-length items), so the
// offset is within [0, length) for any pos < Len. At pos == Len it lands on
// the last node with off == length.
func (l *listImpl[T]) locate(pos int) (*node[T], int) {
	n := &l.head
	off := pos

	for h := l.height - 1; h >= 0; h-- {
		for n.levels[h].next != nil && off >= n.levels[h].span {
			off -= n.levels[h].span
			n = n.levels[h].next
		}
	}

	return n, off
}

// rseekNodes fills target with, per level, the node at or before curr which
// participates at that level, by climbing the prev links.
func (l *listImpl[T]) rseekNodes(curr *node[T], target *[heightLimit]*node[T]) {
	i := 0
	for {
		ll := len(curr.levels)
		for i < ll {
			target[i] = curr
			i++
			if i == l.height {
				return
			}
		}
		curr = curr.levels[ll-1].prev
	}
}
