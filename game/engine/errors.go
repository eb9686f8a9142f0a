package engine

import "errors"

// Sentinel errors returned by the engine. All are synchronous and local;
// the engine never retries. Callers match them with errors.Is.
var (
	ErrOutOfBounds        = errors.New("position out of bounds")
	ErrCellOccupied       = errors.New("position already occupied")
	ErrInsufficientSupply = errors.New("not enough locations available")
	ErrNotFound           = errors.New("city not found")
	ErrNotInHand          = errors.New("location not in hand")
	ErrNotYourTurn        = errors.New("player cannot play now")
	ErrSwapNotAllowed     = errors.New("swapping is not allowed")
	ErrInvalidOptionValue = errors.New("invalid option value")
	ErrNoPlayers          = errors.New("cannot play game without players")
	ErrGameOver           = errors.New("game is over")
)
