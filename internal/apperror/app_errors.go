package apperror

import "errors"

var (
	ErrIndexOutOfRange     = errors.New("board index out of range")
	ErrPositionAlreadyFull = errors.New("position is already full")
	ErrInvalidInput        = errors.New("provide a positive number (1-9)")
)
