package antichess

import "fmt"

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the 8×8 grid. It is the sole owner of every piece in play.
type Board struct {
	grid [8][8]Piece
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for col, k := range backRank {
		b.grid[0][col] = NewPiece(k, Black)
		b.grid[1][col] = NewPiece(Pawn, Black)
		b.grid[6][col] = NewPiece(Pawn, White)
		b.grid[7][col] = NewPiece(k, White)
	}
	return b
}

func NewEmptyBoard() *Board { return &Board{} }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// At returns the piece on sq, or NoPiece for empty or off-board squares.
func (b *Board) At(sq Square) Piece {
	if !sq.InBounds() {
		return NoPiece
	}
	return b.grid[sq.Row][sq.Col]
}

// Place puts p on sq, replacing any occupant. Used for setup only.
func (b *Board) Place(sq Square, p Piece) {
	if sq.InBounds() {
		b.grid[sq.Row][sq.Col] = p
	}
}

func (b *Board) Remove(sq Square) { b.Place(sq, NoPiece) }

func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsZero()
}

// IsEnemy is false for empty squares and for pieces of color.
func (b *Board) IsEnemy(sq Square, color Color) bool {
	p := b.At(sq)
	return !p.IsZero() && p.Color != color
}

func (b *Board) Count(color Color) int {
	n := 0
	b.each(func(_ Square, p Piece) {
		if p.Color == color {
			n++
		}
	})
	return n
}

func (b *Board) each(fn func(Square, Piece)) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; !p.IsZero() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// IsCapturePossible reports whether any piece of color can land on an enemy piece.
// The scan is recomputed on every call.
func (b *Board) IsCapturePossible(color Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p.IsZero() || p.Color != color {
				continue
			}
			for _, to := range p.ValidMoves(Square{Row: row, Col: col}, b) {
				if b.IsEnemy(to, color) {
					return true
				}
			}
		}
	}
	return false
}

// ValidateMove checks a move by color and returns the reason it is rejected, or nil.
func (b *Board) ValidateMove(from, to Square, color Color) error {
	if !from.InBounds() || !to.InBounds() {
		return fmt.Errorf("%w: %s-%s", ErrBadSquare, from, to)
	}
	p := b.At(from)
	if p.IsZero() {
		return ErrNoPiece
	}
	if p.Color != color {
		return ErrOpponentPiece
	}
	if !containsSquare(p.ValidMoves(from, b), to) {
		return ErrIllegalDestination
	}
	if b.IsCapturePossible(color) && !b.IsEnemy(to, color) {
		return ErrCaptureRequired
	}
	return nil
}

func (b *Board) IsValidMove(from, to Square, color Color) bool {
	return b.ValidateMove(from, to, color) == nil
}

// MakeMove relocates the piece on from to to without validation and returns
// whatever was captured (NoPiece when to was empty).
func (b *Board) MakeMove(from, to Square) Piece {
	moving := b.At(from)
	captured := b.At(to)
	b.Place(to, moving)
	b.Remove(from)
	return captured
}

// IsGameOver is true once either colour has no pieces left.
func (b *Board) IsGameOver() bool {
	return b.Count(White) == 0 || b.Count(Black) == 0
}

// DetermineWinner returns the colour that still has pieces when the other has none.
// ok is false while both sides have pieces or when the board is empty.
func (b *Board) DetermineWinner() (winner Color, ok bool) {
	white, black := b.Count(White), b.Count(Black)
	switch {
	case white > 0 && black == 0:
		return White, true
	case black > 0 && white == 0:
		return Black, true
	default:
		return "", false
	}
}

func containsSquare(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
