package game

import (
	"cmp"
	"time"

	"github.com/KirkDiggler/montecarlo/clock"
	"github.com/KirkDiggler/montecarlo/uuid"
)

// Die is the view of a die a game needs to play it
type Die[F cmp.Ordered] interface {
	// RollOne draws a single face with the die's current weights
	RollOne() (F, error)

	// Faces returns the die's face list
	Faces() []F
}

// Config holds configuration for a game
type Config[F cmp.Ordered] struct {
	// Dice is the ordered list of dice to play. Dice are shared references;
	// the same die may appear more than once or belong to other games.
	Dice []Die[F]

	// Clock stamps play sessions. Defaults to the system clock.
	Clock clock.Clock

	// UUIDGenerator identifies play sessions. Defaults to random UUIDs.
	UUIDGenerator uuid.UUID
}

// Form selects the shape of a results table
type Form string

const (
	// FormWide is the native table: one row per roll, one column per die
	FormWide Form = "wide"

	// FormNarrow is the long table: one row per (roll, die) pair
	FormNarrow Form = "narrow"
)

// Outcome is a single cell of the narrow results table
type Outcome[F cmp.Ordered] struct {
	// Roll is the 0-based roll number
	Roll int

	// Die is the label of the die that produced the outcome
	Die string

	// Face is the face the die showed
	Face F
}

// Results is a copy of a game's outcome table in the requested form.
// Exactly one of Wide and Narrow is populated, matching Form.
type Results[F cmp.Ordered] struct {
	// Form is the shape of the table
	Form Form

	// DieLabels are the wide-form column labels, in die order
	DieLabels []string

	// Wide holds one row per roll and one column per die
	Wide [][]F

	// Narrow holds one entry per (roll, die) pair, roll-major
	Narrow []Outcome[F]
}

// PlaySession records metadata about the most recent play
type PlaySession struct {
	// ID is the unique identifier for the session
	ID string

	// NumRolls is the number of rolls played
	NumRolls int

	// PlayedAt is when the session was played
	PlayedAt time.Time
}
