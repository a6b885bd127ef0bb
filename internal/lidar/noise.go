package lidar

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Noise draws zero-mean Gaussian range offsets from its own PCG stream.
// It is not safe for concurrent use; Scanner serialises access.
type Noise struct {
	src rand.Source
}

// NewNoise returns a noise source seeded with seed. Equal seeds give equal
// sample sequences.
func NewNoise(seed uint64) *Noise {
	return &Noise{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// Sample returns one draw from N(0, std²). A zero std returns exactly zero
// without consuming the stream; a negative std is treated as its magnitude.
func (n *Noise) Sample(std float64) float64 {
	if std == 0 {
		return 0
	}
	d := distuv.Normal{Mu: 0, Sigma: math.Abs(std), Src: n.src}
	return d.Rand()
}
