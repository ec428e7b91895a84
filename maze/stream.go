package maze

import (
	"math/rand/v2"
)

// Second PCG word, fixed so a stream is fully determined by its seed
const streamSalt = 0x9e3779b97f4a7c15

// Stream is a deterministic pseudo-random sequence re-initialized from a seed
type Stream struct {
	seed int64
	src  *rand.PCG
	rng  *rand.Rand
}

// NewStream creates a stream positioned at the start of seed's sequence
func NewStream(seed int64) *Stream {
	src := rand.NewPCG(uint64(seed), streamSalt)
	s := &Stream{src: src, rng: rand.New(src)}
	s.Reset(seed)
	return s
}

// Reset rewinds the stream to the start of seed's sequence
func (s *Stream) Reset(seed int64) {
	s.seed = seed
	s.src.Seed(uint64(seed), streamSalt)
}

// Seed returns the seed of the current sequence
func (s *Stream) Seed() int64 {
	return s.seed
}

// NextInRange draws an integer in [min, max]; max < min yields min
func (s *Stream) NextInRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

// Entropy is the uncontrolled source used only to draw fresh seeds
type Entropy interface {
	Int32() int32
}

// EntropyFunc adapts a function to Entropy
type EntropyFunc func() int32

func (f EntropyFunc) Int32() int32 { return f() }

// processEntropy draws from the process-wide math/rand/v2 source
type processEntropy struct{}

func (processEntropy) Int32() int32 { return rand.Int32() }
