package apperror

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameNotFound     = errors.New("game not found")
	ErrConcurrentUpdate = errors.New("game was modified concurrently")
)
