package nn

import (
	"fmt"
	"math/rand"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Embedding is a lookup table mapping discrete token ids to dense
// vectors.
//
// Weight: [num_embed, embed_dim], initialized from N(0, 1).
type Embedding struct {
	weight   *Parameter
	numEmbed int
	embedDim int
	backend  tensor.Backend
}

// NewEmbedding creates a new Embedding layer.
func NewEmbedding(name string, numEmbeddings, embeddingDim int, backend tensor.Backend) *Embedding {
	if numEmbeddings <= 0 || embeddingDim <= 0 {
		panic(fmt.Sprintf("embedding: invalid dimensions num=%d, dim=%d", numEmbeddings, embeddingDim))
	}

	weight := tensor.Zeros(tensor.Shape{numEmbeddings, embeddingDim}, backend)
	data := weight.Data()
	for i := range data {
		data[i] = float32(rand.NormFloat64())
	}

	return &Embedding{
		weight:   NewParameter(name+".weight", weight),
		numEmbed: numEmbeddings,
		embedDim: embeddingDim,
		backend:  backend,
	}
}

// Forward performs embedding lookup for a batch of id sequences.
//
// Sequences shorter than the longest one are padded with all-zero
// vectors, which downstream stages treat as padding positions via the
// mask convention.
//
// Output: [batch, max_len, embed_dim].
//
// Panics if any id is outside [0, NumEmbed).
func (e *Embedding) Forward(ids [][]int) *tensor.Tensor {
	if len(ids) == 0 {
		panic("embedding: empty batch")
	}

	maxLen := 0
	for _, seq := range ids {
		if len(seq) > maxLen {
			maxLen = len(seq)
		}
	}
	if maxLen == 0 {
		panic("embedding: all sequences are empty")
	}

	out := tensor.Zeros(tensor.Shape{len(ids), maxLen, e.embedDim}, e.backend)
	outData := out.Data()
	weightData := e.weight.Tensor().Data()

	for b, seq := range ids {
		for t, id := range seq {
			if id < 0 || id >= e.numEmbed {
				panic(fmt.Sprintf("embedding: id %d out of range [0, %d)", id, e.numEmbed))
			}
			dst := (b*maxLen + t) * e.embedDim
			src := id * e.embedDim
			copy(outData[dst:dst+e.embedDim], weightData[src:src+e.embedDim])
		}
	}

	return out
}

// Weight returns the embedding weight parameter.
func (e *Embedding) Weight() *Parameter {
	return e.weight
}

// NumEmbed returns the vocabulary size.
func (e *Embedding) NumEmbed() int {
	return e.numEmbed
}

// EmbedDim returns the embedding dimension.
func (e *Embedding) EmbedDim() int {
	return e.embedDim
}

// Parameters returns the embedding weight.
func (e *Embedding) Parameters() []*Parameter {
	return []*Parameter{e.weight}
}
