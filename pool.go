package bidi

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Isolating run sequences are short-lived, high-fluctuation objects: a
// paragraph with many embeddings and isolates allocates and discards
// many of them per call. Following the same reasoning the teacher module
// applies to its Recognizers ("Recognizers are short-lived objects. To
// avoid multiple allocation of small objects we will pool them"), the
// *isolatingRunSequence values themselves are pooled rather than
// allocated fresh per paragraph.
type sequencePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalSequencePool *sequencePool

func init() {
	globalSequencePool = &sequencePool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &isolatingRunSequence{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalSequencePool.opool = pool.NewObjectPool(globalSequencePool.ctx, factory, config)
}

// borrowSequence returns a pooled, zeroed *isolatingRunSequence.
func borrowSequence() *isolatingRunSequence {
	o, err := globalSequencePool.opool.BorrowObject(globalSequencePool.ctx)
	if err != nil {
		return &isolatingRunSequence{}
	}
	seq := o.(*isolatingRunSequence)
	seq.positions = seq.positions[:0]
	seq.level = 0
	seq.sos, seq.eos = 0, 0
	return seq
}

// releaseSequence returns seq to the pool.
func releaseSequence(seq *isolatingRunSequence) {
	_ = globalSequencePool.opool.ReturnObject(globalSequencePool.ctx, seq)
}

// releaseSequences returns every sequence in seqs to the pool.
func releaseSequences(seqs []*isolatingRunSequence) {
	for _, seq := range seqs {
		releaseSequence(seq)
	}
}
