package antichess

import "errors"

// Move rejections. All of them leave the turn with the same player.
var (
	ErrNoPiece            = errors.New("no piece at the starting position")
	ErrOpponentPiece      = errors.New("cannot move opponent's piece")
	ErrIllegalDestination = errors.New("invalid move for the selected piece")
	ErrCaptureRequired    = errors.New("a capture move is available and must be taken")
)

var (
	ErrBadSquare    = errors.New("invalid square")
	ErrBadPlacement = errors.New("invalid placement")
	ErrGameFinished = errors.New("game already finished")
)

// IsRejection reports whether err is one of the move rejections above.
func IsRejection(err error) bool {
	return errors.Is(err, ErrNoPiece) ||
		errors.Is(err, ErrOpponentPiece) ||
		errors.Is(err, ErrIllegalDestination) ||
		errors.Is(err, ErrCaptureRequired)
}
