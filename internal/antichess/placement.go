package antichess

import (
	"fmt"
	"strings"
	"unicode"

	nchess "github.com/corentings/chess/v2"
)

// Placement encodes the board as the piece-placement field of a FEN string.
func (b *Board) Placement() string {
	return b.toChessBoard().String()
}

func (b *Board) toChessBoard() *nchess.Board {
	m := make(map[nchess.Square]nchess.Piece)
	b.each(func(sq Square, p Piece) {
		m[toChessSquare(sq)] = toChessPiece(p)
	})
	return nchess.NewBoard(m)
}

func toChessSquare(sq Square) nchess.Square {
	return nchess.NewSquare(nchess.File(sq.Col), nchess.Rank(7-sq.Row))
}

func toChessPiece(p Piece) nchess.Piece {
	c := nchess.White
	if p.Color == Black {
		c = nchess.Black
	}
	var t nchess.PieceType
	switch p.Kind {
	case Pawn:
		t = nchess.Pawn
	case Rook:
		t = nchess.Rook
	case Knight:
		t = nchess.Knight
	case Bishop:
		t = nchess.Bishop
	case Queen:
		t = nchess.Queen
	case King:
		t = nchess.King
	default:
		return nchess.NoPiece
	}
	return nchess.NewPiece(t, c)
}

// ParsePlacement builds a board from a FEN piece-placement field. Kings are optional
// and any number of pieces per side is accepted, since anti-chess positions often lack both.
func ParsePlacement(text string) (*Board, error) {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		text = text[:i]
	}
	ranks := strings.Split(text, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: want 8 ranks, got %d", ErrBadPlacement, len(ranks))
	}
	b := NewEmptyBoard()
	for row, rank := range ranks {
		col := 0
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				col += int(r - '0')
				continue
			}
			k, ok := kindFromLetter(unicode.ToUpper(r))
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q in rank %d", ErrBadPlacement, r, 8-row)
			}
			if col > 7 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrBadPlacement, 8-row)
			}
			color := Black
			if unicode.IsUpper(r) {
				color = White
			}
			b.grid[row][col] = NewPiece(k, color)
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrBadPlacement, 8-row, col)
		}
	}
	return b, nil
}
