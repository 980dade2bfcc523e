package skip

import (
	"math/rand/v2"

	"github.com/taylorza/go-lfsr"
)

func newHeightSource(seed uint32) *lfsr.Lfsr32 {
	for seed == 0 {
		seed = rand.Uint32() // an LFSR cannot leave the zero state
	}
	return lfsr.NewLfsr32(seed)
}

// randomHeight draws a geometric height: each extra level happens with
// chance Bias, capped at MaxHeight. One byte of the LFSR stream decides
// each level against a threshold out of 256.
func (l *listImpl[T]) randomHeight() int {
	height := 1
	for height < l.cfg.MaxHeight {
		v, _ := l.rng.Next()
		if uint32(uint8(v)) >= l.bias {
			break
		}
		height++
	}
	return height
}
