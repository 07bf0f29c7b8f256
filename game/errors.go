package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNoDice           GameError = "game requires at least one die"
	ErrNilDie           GameError = "dice cannot contain a nil die"
	ErrInvalidForm      GameError = "form must be 'wide' or 'narrow'"
	ErrInvalidRollCount GameError = "roll count cannot be negative"
)
