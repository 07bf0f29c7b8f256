package die

// DieError is a custom error type for die-related errors
type DieError string

// Error implements the error interface
func (e DieError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        DieError = "config cannot be nil"
	ErrNoFaces          DieError = "faces must be a non-empty slice"
	ErrDuplicateFace    DieError = "faces must be distinct"
	ErrFaceNotFound     DieError = "face not found on the die"
	ErrInvalidWeight    DieError = "weight must be a number"
	ErrInvalidRollCount DieError = "roll count cannot be negative"
	ErrNoValidWeights   DieError = "weights must be non-negative with a positive total"
)
