// Package game plays an ordered collection of dice and records the outcomes
// in a rectangular table, one row per roll and one column per die.
package game

import (
	"cmp"
	"fmt"

	"github.com/KirkDiggler/montecarlo/clock"
	"github.com/KirkDiggler/montecarlo/uuid"
)

// Game represents a game played with one or more dice
type Game[F cmp.Ordered] struct {
	dice    []Die[F]
	clock   clock.Clock
	uuidGen uuid.UUID

	// rows is the outcome table of the most recent play, replaced wholesale
	// on every Play call
	rows    [][]F
	session *PlaySession
}

// New creates a new game over the given dice.
// The dice are stored as given; no homogeneity across face sets is required.
func New[F cmp.Ordered](cfg *Config[F]) (*Game[F], error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Dice) == 0 {
		return nil, ErrNoDice
	}
	for _, d := range cfg.Dice {
		if d == nil {
			return nil, ErrNilDie
		}
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	return &Game[F]{
		dice:    cfg.Dice,
		clock:   clk,
		uuidGen: uuidGen,
	}, nil
}

// Play rolls every die numRolls times and replaces the stored results.
//
// Each cell is its own single draw against the die's weights at that instant.
// The previous table survives untouched unless every draw succeeds.
func (g *Game[F]) Play(numRolls int) (*PlaySession, error) {
	if numRolls < 0 {
		return nil, ErrInvalidRollCount
	}

	// Roll die by die, matching the original column-major order
	columns := make([][]F, len(g.dice))
	for j, d := range g.dice {
		column := make([]F, numRolls)
		for i := 0; i < numRolls; i++ {
			face, err := d.RollOne()
			if err != nil {
				return nil, fmt.Errorf("rolling %s: %w", dieLabel(j), err)
			}
			column[i] = face
		}
		columns[j] = column
	}

	rows := make([][]F, numRolls)
	for i := range rows {
		row := make([]F, len(g.dice))
		for j := range row {
			row[j] = columns[j][i]
		}
		rows[i] = row
	}

	session := &PlaySession{
		ID:       g.uuidGen.NewUUID(),
		NumRolls: numRolls,
		PlayedAt: g.clock.Now(),
	}

	g.rows = rows
	g.session = session
	return session, nil
}

// Show returns a copy of the most recent results in the requested form.
// A game that has never been played yields an empty table, not an error.
func (g *Game[F]) Show(form Form) (*Results[F], error) {
	switch form {
	case FormWide:
		return &Results[F]{
			Form:      FormWide,
			DieLabels: g.DieLabels(),
			Wide:      g.Rows(),
		}, nil
	case FormNarrow:
		labels := g.DieLabels()
		narrow := make([]Outcome[F], 0, len(g.rows)*len(g.dice))
		for i, row := range g.rows {
			for j, face := range row {
				narrow = append(narrow, Outcome[F]{
					Roll: i,
					Die:  labels[j],
					Face: face,
				})
			}
		}
		return &Results[F]{
			Form:      FormNarrow,
			DieLabels: labels,
			Narrow:    narrow,
		}, nil
	default:
		return nil, ErrInvalidForm
	}
}

// Rows returns a copy of the wide outcome table
func (g *Game[F]) Rows() [][]F {
	rows := make([][]F, len(g.rows))
	for i, row := range g.rows {
		copied := make([]F, len(row))
		copy(copied, row)
		rows[i] = copied
	}
	return rows
}

// DieLabels returns the column labels, one per die in play order
func (g *Game[F]) DieLabels() []string {
	labels := make([]string, len(g.dice))
	for j := range g.dice {
		labels[j] = dieLabel(j)
	}
	return labels
}

// LastSession returns metadata for the most recent play, or nil if the game
// has never been played
func (g *Game[F]) LastSession() *PlaySession {
	if g.session == nil {
		return nil
	}
	session := *g.session
	return &session
}

func dieLabel(position int) string {
	return fmt.Sprintf("die_%d", position)
}
