package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidPosition = errors.New("invalid position")
	ErrMalformedMove   = errors.New("malformed move")
	ErrInvalidMove     = errors.New("illegal move")
)
