package skip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkerTracksThroughEdits(t *testing.T) {
	l := newStringList(21)

	_, err := l.Insert(0, "AAAAA")
	require.NoError(t, err)
	_, err = l.Insert(5, "BBBBB")
	require.NoError(t, err)

	// absolute position 7 is offset 2 into the second item
	m, err := l.MarkerAt(7)
	require.NoError(t, err)

	item, off, err := m.Item()
	require.NoError(t, err)
	require.Equal(t, "BBBBB", item)
	require.Equal(t, 2, off)

	// an insert in front shifts the marker without touching it
	_, err = l.Insert(0, "CCC")
	require.NoError(t, err)

	at, err := m.Position()
	require.NoError(t, err)
	require.Equal(t, 10, at)

	item, off, err = m.Item()
	require.NoError(t, err)
	require.Equal(t, "BBBBB", item)
	require.Equal(t, 2, off)

	// an insert behind changes nothing
	_, err = l.Insert(13, "DDD")
	require.NoError(t, err)

	at, err = m.Position()
	require.NoError(t, err)
	require.Equal(t, 10, at)

	// removing in front shifts it back
	require.NoError(t, l.Remove(0, 3))

	at, err = m.Position()
	require.NoError(t, err)
	require.Equal(t, 7, at)
	checkList(t, l)
}

func TestMarkerInvalidation(t *testing.T) {
	l := newStringList(22)

	_, err := l.Insert(0, "AAAAA")
	require.NoError(t, err)
	_, err = l.Insert(5, "BBBBB")
	require.NoError(t, err)

	m, err := l.MarkerAt(7)
	require.NoError(t, err)
	require.True(t, m.Valid())

	require.NoError(t, l.Remove(5, 5))

	require.False(t, m.Valid())
	_, _, err = m.Item()
	require.ErrorIs(t, err, ErrInvalidated)
	_, err = m.Position()
	require.ErrorIs(t, err, ErrInvalidated)
	checkList(t, l)
}

func TestMarkerSurvivesNeighbourRemoval(t *testing.T) {
	l := newStringList(23)

	_, err := l.Insert(0, "AAAAA")
	require.NoError(t, err)
	_, err = l.Insert(5, "BBBBB")
	require.NoError(t, err)

	m, err := l.MarkerAt(7)
	require.NoError(t, err)

	require.NoError(t, l.Remove(0, 5))

	require.True(t, m.Valid())
	at, err := m.Position()
	require.NoError(t, err)
	require.Equal(t, 2, at)
}

func TestMarkerRebaseOnSplit(t *testing.T) {
	l := newStringList(24)

	_, err := l.Insert(0, "0123456789")
	require.NoError(t, err)

	mLeft, err := l.MarkerAt(4)
	require.NoError(t, err)
	mPoint, err := l.MarkerAt(5)
	require.NoError(t, err)
	mRight, err := l.MarkerAt(6)
	require.NoError(t, err)

	// splits the item into "01234" and "56789" around the insert
	_, err = l.Insert(5, "XY")
	require.NoError(t, err)
	require.Equal(t, "01234XY56789", contents(l))
	checkList(t, l)

	item, off, err := mLeft.Item()
	require.NoError(t, err)
	require.Equal(t, "01234", item)
	require.Equal(t, 4, off)
	at, err := mLeft.Position()
	require.NoError(t, err)
	require.Equal(t, 4, at)

	// a marker exactly on the split point lands at the start of the right half
	item, off, err = mPoint.Item()
	require.NoError(t, err)
	require.Equal(t, "56789", item)
	require.Zero(t, off)
	at, err = mPoint.Position()
	require.NoError(t, err)
	require.Equal(t, 7, at)

	item, off, err = mRight.Item()
	require.NoError(t, err)
	require.Equal(t, "56789", item)
	require.Equal(t, 1, off)
	at, err = mRight.Position()
	require.NoError(t, err)
	require.Equal(t, 8, at)
}

func TestMarkerRelease(t *testing.T) {
	l := newStringList(25)

	m, err := l.Insert(0, "AAAAA")
	require.NoError(t, err)
	m2, err := l.MarkerAt(2)
	require.NoError(t, err)

	n := m.node
	require.Len(t, n.marks, 2)

	m.Release()
	require.False(t, m.Valid())
	require.Len(t, n.marks, 1)
	require.Same(t, m2, n.marks[0])

	// releasing twice is harmless
	m.Release()
	require.Len(t, n.marks, 1)

	// the survivor still works
	at, err := m2.Position()
	require.NoError(t, err)
	require.Equal(t, 2, at)
}

func TestInsertReturnsStartMarker(t *testing.T) {
	l := newStringList(26)

	_, err := l.Insert(0, "AAAAA")
	require.NoError(t, err)
	m, err := l.Insert(5, "BBBBB")
	require.NoError(t, err)

	at, err := m.Position()
	require.NoError(t, err)
	require.Equal(t, 5, at)

	_, err = l.Insert(0, "CC")
	require.NoError(t, err)

	at, err = m.Position()
	require.NoError(t, err)
	require.Equal(t, 7, at)

	item, off, err := m.Item()
	require.NoError(t, err)
	require.Equal(t, "BBBBB", item)
	require.Zero(t, off)
}
