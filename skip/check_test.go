package skip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkList walks the whole structure and verifies every internal invariant:
// span accounting at every level, prev links, length/count totals and marker
// back-references.
func checkList[T any](t *testing.T, list List[T]) {
	t.Helper()
	l := list.(*listImpl[T])

	require.Equal(t, l.height, len(l.head.levels), "height must match head levels")
	require.LessOrEqual(t, l.height, l.cfg.MaxHeight)

	// level-0 walk establishes the start position of every node
	start := map[*node[T]]int{&l.head: 0}
	var order []*node[T]

	pos := 0
	count := 0
	for e := l.head.levels[0].next; e != nil; e = e.levels[0].next {
		start[e] = pos
		order = append(order, e)
		pos += e.length
		count++

		require.GreaterOrEqual(t, e.length, 0)
		require.LessOrEqual(t, len(e.levels), l.height, "node taller than list")
		for _, m := range e.marks {
			require.Same(t, e, m.node, "marker back-reference")
		}
	}
	require.Equal(t, l.len, pos, "Len must equal the sum of item lengths")
	require.Equal(t, l.count, count)

	// every level must link the same sequence in order, with spans measuring
	// start-to-start distances
	all := append([]*node[T]{&l.head}, order...)
	for _, n := range all {
		for i, lv := range n.levels {
			if i == 0 && n != &l.head {
				require.Equal(t, n.length, lv.span, "level-0 span is the item length")
			}
			if lv.next == nil {
				require.Equal(t, l.len-start[n], lv.span, "tail span must reach the end")
				continue
			}
			require.Equal(t, start[lv.next]-start[n], lv.span, "span must measure to the next start")
			require.GreaterOrEqual(t, len(lv.next.levels), i+1, "next node missing this level")
			require.Same(t, n, lv.next.levels[i].prev, "prev link")
		}
	}
	require.Same(t, &l.head, l.head.levels[0].prev, "head prev points at itself")
}
