package skip

const (
	poolSize = 8

	// heightLimit is the hard cap on Config.MaxHeight; seek stacks are
	// sized against it so they can live on the stack.
	heightLimit = 64

	defaultMaxHeight = 32
)

// level is one forward/backward link of a node.
// span is the distance, in position units, from the start of this node to the
// start of next (or to the end of the list when next is nil). At level 0 the
// next node is adjacent, so span always equals the node's own length.
type level[T any] struct {
	next *node[T] // nil at the end of the list
	prev *node[T] // always set; the head points at itself
	span int
}

type node[T any] struct {
	item   T
	length int // cached Config.Length(item)
	levels []level[T]

	// marks are the markers tracking this node, so that removing or
	// splitting it touches only its own markers.
	marks []*Marker[T]
}

func (l *listImpl[T]) newNode(item T, length int) *node[T] {
	if len(l.pool) != 0 {
		at := len(l.pool) - 1
		n := l.pool[at]
		l.pool = l.pool[:at]

		n.item = item
		n.length = length
		return n
	}

	return &node[T]{
		item:   item,
		length: length,
		levels: make([]level[T], l.randomHeight()),
	}
}

func (l *listImpl[T]) returnToPool(e *node[T]) {
	if len(l.pool) == poolSize {
		return
	}

	// clear stored data in case it holds pointers for GC
	var zero level[T]
	for i := range e.levels {
		e.levels[i] = zero
	}
	var zt T
	e.item = zt
	e.length = 0
	e.marks = nil

	l.pool = append(l.pool, e)
}
