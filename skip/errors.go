package skip

import (
	"github.com/pkg/errors"
)

// Sentinel errors reported by List, Cursor and Marker operations.
// Returned errors wrap these with context; match with errors.Is.
var (
	// ErrOutOfRange reports a position or length outside [0, Len()].
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidInsertion reports an insert strictly inside an item on a
	// list configured without a Split function.
	ErrInvalidInsertion = errors.New("insert lands inside an item and no split is configured")

	// ErrMisalignedRange reports a remove range that does not start and end
	// on item boundaries.
	ErrMisalignedRange = errors.New("remove range not aligned to item boundaries")

	// ErrSplitLength reports a Split function whose halves do not have
	// positive lengths summing to the original item's length.
	ErrSplitLength = errors.New("split halves do not preserve item length")

	// ErrInvalidated reports a marker whose item has been removed.
	ErrInvalidated = errors.New("marker no longer tracks a stored item")
)
