package antichess

import (
	"fmt"
	"strings"
)

// Color identifies a side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string { return string(c) }

// forward is the row delta a pawn of this colour advances by.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind is the piece type tag. The zero value marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// Letter returns the uppercase board letter for the kind.
func (k Kind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

func kindFromLetter(r rune) (Kind, bool) {
	switch r {
	case 'P':
		return Pawn, true
	case 'R':
		return Rook, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return NoKind, false
	}
}

// Piece is an immutable (kind, colour) pair. Position is implied by the board cell holding it.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

func NewPiece(k Kind, c Color) Piece { return Piece{Kind: k, Color: c} }

func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Symbol is the uppercase letter for White pieces and lowercase for Black.
func (p Piece) Symbol() string {
	if p.IsZero() {
		return ""
	}
	if p.Color == White {
		return p.Kind.Letter()
	}
	return strings.ToLower(p.Kind.Letter())
}

func (p Piece) String() string {
	if p.IsZero() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

// Square addresses one board cell. Row 0 is Black's back rank, row 7 is White's.
type Square struct {
	Row int
	Col int
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String renders the square in lowercase algebraic form, e.g. "e2".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

// ParseSquare converts text such as "A2" or "h8" into a Square.
func ParseSquare(text string) (Square, error) {
	t := strings.ToUpper(strings.TrimSpace(text))
	if len(t) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, text)
	}
	file, rank := t[0], t[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, text)
	}
	return Square{Row: 8 - int(rank-'0'), Col: int(file - 'A')}, nil
}
