package skip

import (
	"iter"
)

func (l *listImpl[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		pos := 0
		for e := l.head.levels[0].next; e != nil; e = e.levels[0].next {
			if !yield(pos, e.item) {
				return
			}
			pos += e.length
		}
	}
}
