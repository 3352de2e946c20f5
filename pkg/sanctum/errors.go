package sanctum

import "errors"

var (
	ErrInvalidStage       = errors.New("invalid stage")
	ErrInvalidRing        = errors.New("invalid ring")
	ErrPuzzleLocked       = errors.New("mechanism is still locked")
	ErrStageMismatch      = errors.New("puzzle belongs to a different stage")
	ErrAlreadyReactivated = errors.New("sanctum already fully reactivated")
)
