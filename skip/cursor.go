package skip

import (
	"github.com/pkg/errors"
)

// cursorImpl keeps a full per-level seek stack for its position, so edits at
// or near the cursor reuse it instead of descending from the head again.
//
// The stack holds the boundary-biased entries seekTo produces: stack[0]
// points at the node whose span contains the position, with the offset into
// it; a position on an item boundary is held as the end of the node before
// it. Operations preserve that bias so the stack is always usable as the
// predecessor array for linking and unlinking.
type cursorImpl[T any] struct {
	list  *listImpl[T]
	pos   int
	stack [heightLimit]seekEntry[T]
}

func (l *listImpl[T]) Cursor() Cursor[T] {
	c := &cursorImpl[T]{list: l}
	l.seekTo(0, &c.stack)
	return c
}

func (c *cursorImpl[T]) Pos() int {
	return c.pos
}

func (c *cursorImpl[T]) Seek(position int) error {
	l := c.list
	if position < 0 || position > l.len {
		return errors.Wrapf(ErrOutOfRange, "seek position=%d len=%d", position, l.len)
	}

	// cheap if the target stays within the current node
	start := c.pos - c.stack[0].off
	if position > start && position <= start+c.stack[0].node.length {
		shift := position - c.pos
		for i := 0; i < l.height; i++ {
			c.stack[i].off += shift
		}
		c.pos = position
		return nil
	}

	l.seekTo(position, &c.stack)
	c.pos = position
	return nil
}

func (c *cursorImpl[T]) Item() (item T, offset int, err error) {
	e := c.stack[0]
	if e.off < e.node.length {
		return e.node.item, e.off, nil
	}

	// on a boundary; peek past it, skipping zero-length items like Find does
	next := e.node.levels[0].next
	for next != nil && next.length == 0 {
		next = next.levels[0].next
	}
	if next == nil {
		return item, 0, errors.Wrapf(ErrOutOfRange, "peek at end of list, position=%d", c.pos)
	}
	return next.item, 0, nil
}

func (c *cursorImpl[T]) Insert(item T) error {
	l := c.list
	length := l.cfg.Length(item)
	if length < 0 {
		panic("skip: item must have a non-negative length")
	}

	if e := c.stack[0]; e.off > 0 && e.off < e.node.length {
		// mid-item; the split relinks the surrounding nodes, so rebuild the
		// stack at the far side of the inserted item afterwards
		m, err := l.splitInsert(e.node, e.off, item, length)
		if err != nil {
			return err
		}
		at, _ := m.Position()
		m.Release()

		c.pos = at + length
		l.seekTo(c.pos, &c.stack)
		return nil
	}

	n := l.newNode(item, length)
	l.link(&c.stack, c.pos, n)

	// advance past the inserted item
	nh := len(n.levels)
	for i := 0; i < nh; i++ {
		c.stack[i] = seekEntry[T]{node: n, off: n.length}
	}
	for i := nh; i < l.height; i++ {
		c.stack[i].off += n.length
	}
	c.pos += n.length
	return nil
}

func (c *cursorImpl[T]) Delete(length int) error {
	l := c.list
	if length < 0 || c.pos+length > l.len {
		return errors.Wrapf(ErrOutOfRange, "delete length=%d position=%d len=%d", length, c.pos, l.len)
	}
	if length == 0 {
		return nil
	}
	if e := c.stack[0]; e.off != e.node.length {
		return errors.Wrapf(ErrMisalignedRange, "delete position=%d lands inside an item", c.pos)
	}
	if err := l.checkRun(c.stack[0].node, length); err != nil {
		return err
	}

	// the stack doubles as the predecessor array; everything removed sits
	// after the cursor, so its entries stay valid
	l.removeRun(&c.stack, length)
	return nil
}

func (c *cursorImpl[T]) Advance(delta int) error {
	if delta < 0 {
		return c.Retreat(-delta)
	}
	l := c.list
	target := c.pos + delta
	if target > l.len {
		return errors.Wrapf(ErrOutOfRange, "advance to %d len=%d", target, l.len)
	}

	for c.pos < target {
		e := c.stack[0]
		rem := e.node.length - e.off
		if c.pos+rem >= target {
			shift := target - c.pos
			for i := 0; i < l.height; i++ {
				c.stack[i].off += shift
			}
			c.pos = target
			return nil
		}
		c.advanceNode()
	}
	return nil
}

func (c *cursorImpl[T]) Retreat(delta int) error {
	if delta < 0 {
		return c.Advance(-delta)
	}
	if delta == 0 {
		return nil
	}
	target := c.pos - delta
	if target < 0 {
		return errors.Wrapf(ErrOutOfRange, "retreat to %d", target)
	}

	// walk back to the node containing the target, keeping the boundary bias
	// (a target on a boundary resolves to the end of the node before it)
	for c.stack[0].node != &c.list.head && target <= c.pos-c.stack[0].off {
		c.retreatNode()
	}

	if shift := c.pos - target; shift > 0 {
		for i := 0; i < c.list.height; i++ {
			c.stack[i].off -= shift
		}
		c.pos = target
	}
	return nil
}

// advanceNode moves the cursor to the start of the next node.
func (c *cursorImpl[T]) advanceNode() {
	e := c.stack[0]
	step := e.node.length - e.off
	next := e.node.levels[0].next

	nh := len(next.levels)
	for i := 0; i < nh; i++ {
		c.stack[i] = seekEntry[T]{node: next}
	}
	for i := nh; i < c.list.height; i++ {
		c.stack[i].off += step
	}
	c.pos += step
}

// retreatNode moves the cursor to the start of its current node, re-expressed
// as the end of each level's previous node.
func (c *cursorImpl[T]) retreatNode() {
	e := c.stack[0].node
	step := c.stack[0].off

	for i := 0; i < len(e.levels) && i < c.list.height; i++ {
		p := e.levels[i].prev
		c.stack[i] = seekEntry[T]{node: p, off: p.levels[i].span}
	}
	for i := len(e.levels); i < c.list.height; i++ {
		c.stack[i].off -= step
	}
	c.pos -= step
}
