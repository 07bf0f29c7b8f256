// Package die implements a weighted die with an arbitrary set of faces.
//
// A die is created with a fixed set of distinct faces, each starting with a
// weight of 1.0. Weights can be changed face by face, and every roll samples
// faces with probability proportional to the weights current at the moment of
// the call.
package die

import (
	"cmp"
	"math"
	"slices"
	"sort"

	"github.com/KirkDiggler/montecarlo/random"
)

// Config holds configuration for a die
type Config[F cmp.Ordered] struct {
	// Faces is the ordered set of distinct face values
	Faces []F

	// Source is the randomness source used for draws.
	// Defaults to a time-seeded source when nil.
	Source random.Source
}

// Die represents a single weighted die
type Die[F cmp.Ordered] struct {
	faces   []F
	weights map[F]float64
	source  random.Source
}

// New creates a new die with every face weighted 1.0
func New[F cmp.Ordered](cfg *Config[F]) (*Die[F], error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Faces) == 0 {
		return nil, ErrNoFaces
	}

	weights := make(map[F]float64, len(cfg.Faces))
	for _, face := range cfg.Faces {
		if _, exists := weights[face]; exists {
			return nil, ErrDuplicateFace
		}
		weights[face] = 1.0
	}

	source := cfg.Source
	if source == nil {
		source = random.New(nil)
	}

	return &Die[F]{
		faces:   slices.Clone(cfg.Faces),
		weights: weights,
		source:  source,
	}, nil
}

// SetWeight overwrites the weight of a single face.
//
// Zero and negative weights are accepted here; making the die rollable again
// is the caller's responsibility. Roll reports ErrNoValidWeights when the
// current weights cannot form a distribution.
func (d *Die[F]) SetWeight(face F, weight float64) error {
	if _, exists := d.weights[face]; !exists {
		return ErrFaceNotFound
	}
	if math.IsNaN(weight) {
		return ErrInvalidWeight
	}

	d.weights[face] = weight
	return nil
}

// Roll draws n faces with replacement, each with probability equal to its
// weight divided by the total weight at the time of the call. The draws are
// returned in draw order.
func (d *Die[F]) Roll(n int) ([]F, error) {
	if n < 0 {
		return nil, ErrInvalidRollCount
	}

	cumulative, total, err := d.cumulativeWeights()
	if err != nil {
		return nil, err
	}

	results := make([]F, n)
	for i := range results {
		results[i] = d.draw(cumulative, total)
	}
	return results, nil
}

// RollOne draws a single face
func (d *Die[F]) RollOne() (F, error) {
	results, err := d.Roll(1)
	if err != nil {
		var zero F
		return zero, err
	}
	return results[0], nil
}

// Snapshot is an immutable copy of a die's state
type Snapshot[F cmp.Ordered] struct {
	// Faces in their original construction order
	Faces []F

	// Weights maps each face to its current weight
	Weights map[F]float64
}

// Show returns a snapshot of the die's faces and current weights.
// Mutating the snapshot does not affect the die.
func (d *Die[F]) Show() Snapshot[F] {
	weights := make(map[F]float64, len(d.weights))
	for face, weight := range d.weights {
		weights[face] = weight
	}
	return Snapshot[F]{
		Faces:   slices.Clone(d.faces),
		Weights: weights,
	}
}

// Faces returns a copy of the die's face list in construction order
func (d *Die[F]) Faces() []F {
	return slices.Clone(d.faces)
}

// cumulativeWeights builds the running weight totals used for sampling.
// It rejects weight sets that cannot form a distribution.
func (d *Die[F]) cumulativeWeights() ([]float64, float64, error) {
	cumulative := make([]float64, len(d.faces))
	total := 0.0
	for i, face := range d.faces {
		weight := d.weights[face]
		if weight < 0 || math.IsNaN(weight) {
			return nil, 0, ErrNoValidWeights
		}
		total += weight
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, 0, ErrNoValidWeights
	}
	return cumulative, total, nil
}

// draw picks a face by binary search over the cumulative weights.
// Faces with zero weight are never selected.
func (d *Die[F]) draw(cumulative []float64, total float64) F {
	u := d.source.Float64() * total
	idx := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > u
	})
	if idx >= len(d.faces) {
		idx = len(d.faces) - 1
	}
	return d.faces[idx]
}
