package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// PaddingMask derives the per-position validity mask of an embedding
// tensor.
//
// A time position is padding iff its channel vector is all-zero; this is
// the sole padding signal, there is no separate length field. The mask is
//
//	mask[b, t, 0] = 1  if sum(|emb[b, t, :]|) != 0
//	                0  otherwise
//
// Input: [batch, time, channels]. Output: [batch, time, 1], broadcastable
// over channels, so emb.Mul(mask) zeroes padding positions.
//
// The mask must be recomputed whenever the time dimension changes:
// pooling can turn a window of padding positions into a new all-zero
// output position.
func PaddingMask(emb *tensor.Tensor) *tensor.Tensor {
	shape := emb.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("padding mask: expected 3D input [B,T,C], got %dD", len(shape)))
	}

	return emb.Abs().SumDim(2, true).NotEqualScalar(0)
}
