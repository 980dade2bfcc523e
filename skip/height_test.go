package skip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func nodeHeights(l List[string]) []int {
	li := l.(*listImpl[string])
	var hs []int
	for e := li.head.levels[0].next; e != nil; e = e.levels[0].next {
		hs = append(hs, len(e.levels))
	}
	return hs
}

func TestHeightsDeterministicWithSeed(t *testing.T) {
	build := func() List[string] {
		l := newStringList(12345)
		at := 0
		for range 200 {
			_, err := l.Insert(at, "word")
			require.NoError(t, err)
			at += 4
		}
		return l
	}

	a := build()
	b := build()
	require.Equal(t, nodeHeights(a), nodeHeights(b))
}

func TestHeightsWithinBounds(t *testing.T) {
	l := New(Config[string]{
		Length:    func(s string) int { return len(s) },
		MaxHeight: 4,
		Seed:      99,
	})
	li := l.(*listImpl[string])

	for range 1000 {
		h := li.randomHeight()
		require.GreaterOrEqual(t, h, 1)
		require.LessOrEqual(t, h, 4)
	}
}

func TestHeightDistributionRoughlyGeometric(t *testing.T) {
	l := newStringList(4242)
	li := l.(*listImpl[string])

	ones := 0
	for range 1000 {
		if li.randomHeight() == 1 {
			ones++
		}
	}

	// about half the draws should stop at a single level
	require.Greater(t, ones, 350)
	require.Less(t, ones, 650)
}

func TestConfigDefaults(t *testing.T) {
	l := New(Config[string]{
		Length:    func(s string) int { return len(s) },
		MaxHeight: 1000,
		Bias:      -3,
	})
	li := l.(*listImpl[string])

	require.Equal(t, heightLimit, li.cfg.MaxHeight)
	require.Equal(t, uint32(128), li.bias)

	require.Panics(t, func() {
		New(Config[string]{})
	})
}
