package skip

import (
	"github.com/pkg/errors"
	"github.com/taylorza/go-lfsr"
)

// New builds a List for the given Config, applying defaults.
// It panics if Config.Length is nil.
func New[T any](config Config[T]) List[T] {
	if config.Length == nil {
		panic("skip: Config.Length is required")
	}
	if config.MaxHeight <= 0 {
		config.MaxHeight = defaultMaxHeight
	} else if config.MaxHeight > heightLimit {
		config.MaxHeight = heightLimit
	}
	if config.Bias <= 0 || config.Bias >= 1 {
		config.Bias = 0.5
	}

	l := &listImpl[T]{
		cfg:    config,
		bias:   uint32(config.Bias * 256),
		height: 1,
		rng:    newHeightSource(config.Seed),
		pool:   make([]*node[T], 0, poolSize),
	}
	l.head.levels = make([]level[T], 1, config.MaxHeight) // never alloc again
	l.head.levels[0] = level[T]{prev: &l.head}
	return l
}

type listImpl[T any] struct {
	cfg  Config[T]
	bias uint32 // Config.Bias as a threshold out of 256

	head   node[T]
	height int // matches len(head.levels)
	len    int
	count  int

	rng  *lfsr.Lfsr32
	pool []*node[T]
}

func (l *listImpl[T]) Len() int {
	return l.len
}

func (l *listImpl[T]) Count() int {
	return l.count
}

func (l *listImpl[T]) Find(position int) (item T, offset int, err error) {
	if position < 0 || position >= l.len {
		return item, 0, errors.Wrapf(ErrOutOfRange, "find position=%d len=%d", position, l.len)
	}

	n, off := l.locate(position)
	return n.item, off, nil
}

func (l *listImpl[T]) MarkerAt(position int) (*Marker[T], error) {
	if position < 0 || position >= l.len {
		return nil, errors.Wrapf(ErrOutOfRange, "marker position=%d len=%d", position, l.len)
	}

	n, off := l.locate(position)
	return l.marker(n, off), nil
}

func (l *listImpl[T]) Insert(position int, item T) (*Marker[T], error) {
	if position < 0 || position > l.len {
		return nil, errors.Wrapf(ErrOutOfRange, "insert position=%d len=%d", position, l.len)
	}
	length := l.cfg.Length(item)
	if length < 0 {
		panic("skip: item must have a non-negative length")
	}

	var stack [heightLimit]seekEntry[T]
	l.seekTo(position, &stack)

	if e := stack[0]; e.off > 0 && e.off < e.node.length {
		// strictly inside an existing item
		return l.splitInsert(e.node, e.off, item, length)
	}

	n := l.newNode(item, length)
	l.link(&stack, position, n)
	return l.marker(n, 0), nil
}

func (l *listImpl[T]) Remove(position, length int) error {
	if position < 0 || length < 0 || position+length > l.len {
		return errors.Wrapf(ErrOutOfRange, "remove position=%d length=%d len=%d", position, length, l.len)
	}
	if length == 0 {
		return nil
	}

	var stack [heightLimit]seekEntry[T]
	l.seekTo(position, &stack)

	if e := stack[0]; e.off != e.node.length {
		return errors.Wrapf(ErrMisalignedRange, "remove position=%d lands inside an item", position)
	}
	if err := l.checkRun(stack[0].node, length); err != nil {
		return err
	}

	l.removeRun(&stack, length)
	return nil
}

// checkRun verifies that the nodes following boundary sum to exactly length,
// so that removal never has to stop partway through an item.
func (l *listImpl[T]) checkRun(boundary *node[T], length int) error {
	remain := length
	for n := boundary.levels[0].next; remain > 0; n = n.levels[0].next {
		remain -= n.length
		if remain < 0 {
			return errors.Wrapf(ErrMisalignedRange, "remove length=%d ends inside an item", length)
		}
	}
	return nil
}

// removeRun unlinks nodes after the boundary described by stack until exactly
// length position units are gone. Must be pre-validated with checkRun.
// The stack entries stay valid: their nodes all sit at or before the
// boundary, and their offsets measure to a position nothing here moves.
func (l *listImpl[T]) removeRun(stack *[heightLimit]seekEntry[T], length int) {
	remain := length
	for remain > 0 {
		e := stack[0].node.levels[0].next
		remain -= e.length

		for i := 0; i < l.height; i++ {
			n := stack[i].node
			nl := &n.levels[i]
			if i >= len(e.levels) {
				// this link passes over e
				nl.span -= e.length
				continue
			}

			el := &e.levels[i]
			nl.span += el.span - e.length
			nl.next = el.next
			if el.next != nil {
				el.next.levels[i].prev = n
			}
		}

		l.len -= e.length
		l.count--
		l.invalidate(e)
		l.returnToPool(e)
	}
}

// link places n so that it starts at pos, using the boundary entries in
// stack. It grows the head if n is taller than the list, and updates the
// stack entries for those new levels so callers holding the stack (the
// cursor) stay consistent.
func (l *listImpl[T]) link(stack *[heightLimit]seekEntry[T], pos int, n *node[T]) {
	nh := len(n.levels)

	for l.height < nh {
		// retroactively set up the new level as if it existed all along
		l.head.levels = append(l.head.levels, level[T]{prev: &l.head, span: l.len})
		stack[l.height] = seekEntry[T]{node: &l.head, off: pos}
		l.height++
	}

	for i := 0; i < nh; i++ {
		p := stack[i].node
		pl := &p.levels[i]

		n.levels[i] = level[T]{
			next: pl.next,
			prev: p,
			span: n.length + pl.span - stack[i].off,
		}
		if pl.next != nil {
			pl.next.levels[i].prev = n
		}
		pl.next = n
		pl.span = stack[i].off
	}

	for i := nh; i < l.height; i++ {
		stack[i].node.levels[i].span += n.length
	}

	l.len += n.length
	l.count++
}

// unlink removes e from every level, shrinking the links that pass over it.
func (l *listImpl[T]) unlink(e *node[T]) {
	var nodes [heightLimit]*node[T]
	l.rseekNodes(e, &nodes)

	for i := 0; i < l.height; i++ {
		if i >= len(e.levels) {
			nodes[i].levels[i].span -= e.length
			continue
		}

		el := &e.levels[i]
		p := el.prev
		pl := &p.levels[i]
		pl.next = el.next
		pl.span += el.span - e.length
		if el.next != nil {
			el.next.levels[i].prev = p
		}
	}

	l.len -= e.length
	l.count--
}

// positionOf reconstructs the absolute start position of n by climbing the
// prev links, highest level first. ~O(logn).
func (l *listImpl[T]) positionOf(n *node[T]) int {
	pos := 0
	for n != &l.head {
		link := len(n.levels) - 1
		p := n.levels[link].prev
		pos += p.levels[link].span
		n = p
	}
	return pos
}
