package scatter

import (
	"errors"
)

var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownAxis      = errors.New("unknown axis")
)
