package lore

import (
	"errors"
	"fmt"
)

var (
	ErrServiceUnavailable = errors.New("lore service unavailable")
	ErrNoCredential       = fmt.Errorf("%w: no API key configured", ErrServiceUnavailable)
	ErrInvalidStage       = errors.New("stage must be positive")
)
