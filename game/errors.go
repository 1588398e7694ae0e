package game

import "errors"

var (
	ErrInvalidGrid       = errors.New("grid extent must be positive")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrNegativeCount     = errors.New("negative group count")
	ErrDuplicatePosition = errors.New("position reported more than once")
	ErrContestedCell     = errors.New("cell reported for more than one faction")
	ErrIllegalMove       = errors.New("illegal move")
)
