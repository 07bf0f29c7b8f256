// Package analyzer computes descriptive statistics over a played game's
// outcome table: jackpots, per-roll face counts, and combination and
// permutation tallies.
package analyzer

import (
	"cmp"
	"slices"
)

// Game is the read-only view of a game an analyzer consumes
type Game[F cmp.Ordered] interface {
	// Rows returns a copy of the wide outcome table
	Rows() [][]F

	// DieLabels returns the column labels in die order
	DieLabels() []string
}

// Analyzer derives statistics from one game's results.
// Every method reads the game's current table fresh, so results always
// reflect the most recent play.
type Analyzer[F cmp.Ordered] struct {
	game Game[F]
}

// New creates an analyzer for the given game
func New[F cmp.Ordered](g Game[F]) (*Analyzer[F], error) {
	if g == nil {
		return nil, ErrNilGame
	}
	return &Analyzer[F]{game: g}, nil
}

// Jackpot counts the rolls in which every die showed the same face.
// An empty table yields 0.
func (a *Analyzer[F]) Jackpot() int {
	rows, ok := a.snapshot()
	if !ok {
		return 0
	}

	jackpots := 0
	for _, row := range rows {
		allSame := true
		for _, face := range row[1:] {
			if face != row[0] {
				allSame = false
				break
			}
		}
		if allSame {
			jackpots++
		}
	}
	return jackpots
}

// FaceCounts tabulates, per roll, how many dice showed each face
type FaceCounts[F cmp.Ordered] struct {
	// Faces are the distinct faces observed anywhere in the game, ascending
	Faces []F

	// Counts has one row per roll and one column per entry of Faces
	Counts [][]int
}

// FaceCountsPerRoll counts per roll how many dice showed each face observed
// anywhere in the game. An empty or irregular table yields an empty value
// rather than an error.
func (a *Analyzer[F]) FaceCountsPerRoll() *FaceCounts[F] {
	rows, ok := a.snapshot()
	if !ok {
		return &FaceCounts[F]{}
	}

	columns := make(map[F]int)
	var faces []F
	for _, row := range rows {
		for _, face := range row {
			if _, seen := columns[face]; !seen {
				columns[face] = 0
				faces = append(faces, face)
			}
		}
	}
	slices.Sort(faces)
	for j, face := range faces {
		columns[face] = j
	}

	counts := make([][]int, len(rows))
	for i, row := range rows {
		rowCounts := make([]int, len(faces))
		for _, face := range row {
			rowCounts[columns[face]]++
		}
		counts[i] = rowCounts
	}

	return &FaceCounts[F]{
		Faces:  faces,
		Counts: counts,
	}
}

// TupleCount is the number of rolls that produced one distinct tuple of faces
type TupleCount[F cmp.Ordered] struct {
	// Faces is the tuple; sorted for combinations, in die order for
	// permutations
	Faces []F

	// Count is the number of rolls that produced the tuple
	Count int
}

// ComboCount groups rolls by their order-independent combination of faces and
// returns counts per distinct combination, highest count first. An empty
// table yields an empty slice.
func (a *Analyzer[F]) ComboCount() []TupleCount[F] {
	return a.tupleCounts(true)
}

// PermutationCount groups rolls by their order-sensitive tuple of faces and
// returns counts per distinct permutation, highest count first. An empty
// table yields an empty slice.
func (a *Analyzer[F]) PermutationCount() []TupleCount[F] {
	return a.tupleCounts(false)
}

func (a *Analyzer[F]) tupleCounts(sortFaces bool) []TupleCount[F] {
	rows, ok := a.snapshot()
	if !ok {
		return []TupleCount[F]{}
	}

	tuples := make([][]F, len(rows))
	for i, row := range rows {
		tuple := slices.Clone(row)
		if sortFaces {
			slices.Sort(tuple)
		}
		tuples[i] = tuple
	}

	// Sort lexicographically so identical tuples are adjacent, then count runs
	slices.SortFunc(tuples, slices.Compare)

	counts := []TupleCount[F]{}
	for i := 0; i < len(tuples); {
		j := i
		for j < len(tuples) && slices.Equal(tuples[j], tuples[i]) {
			j++
		}
		counts = append(counts, TupleCount[F]{
			Faces: tuples[i],
			Count: j - i,
		})
		i = j
	}

	// Highest count first; ties break on the tuple so output is deterministic
	slices.SortFunc(counts, func(x, y TupleCount[F]) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return slices.Compare(x.Faces, y.Faces)
	})
	return counts
}

// snapshot returns the game's current table when it is usable for
// tabulation. A nil, zero-row, zero-column, or ragged table reports ok false;
// callers degrade to an empty result instead of failing.
func (a *Analyzer[F]) snapshot() ([][]F, bool) {
	rows := a.game.Rows()
	if len(rows) == 0 {
		return nil, false
	}
	width := len(rows[0])
	if width == 0 {
		return nil, false
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, false
		}
	}
	return rows, true
}
