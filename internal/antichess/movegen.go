package antichess

type delta struct{ dr, dc int }

var (
	orthogonalDirs = []delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = []delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets  = []delta{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = []delta{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// ValidMoves lists the pseudo-legal destinations of p standing on from.
// The mandatory-capture rule is not applied here.
func (p Piece) ValidMoves(from Square, b *Board) []Square {
	if b == nil || !from.InBounds() {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return p.pawnMoves(from, b)
	case Rook:
		return p.slide(from, b, orthogonalDirs, nil)
	case Bishop:
		return p.slide(from, b, diagonalDirs, nil)
	case Queen:
		moves := p.slide(from, b, orthogonalDirs, nil)
		return p.slide(from, b, diagonalDirs, moves)
	case Knight:
		return p.step(from, b, knightOffsets)
	case King:
		return p.step(from, b, kingOffsets)
	default:
		return nil
	}
}

func (p Piece) pawnMoves(from Square, b *Board) []Square {
	var moves []Square
	dr := p.Color.forward()

	ahead := from.offset(dr, 0)
	if !ahead.InBounds() {
		return nil
	}
	if b.IsEmpty(ahead) {
		moves = append(moves, ahead)
	}
	for _, dc := range []int{-1, 1} {
		diag := from.offset(dr, dc)
		if diag.InBounds() && b.IsEnemy(diag, p.Color) {
			moves = append(moves, diag)
		}
	}
	return moves
}

// slide walks each direction until the edge or the first occupied square,
// which is included only when it holds an enemy.
func (p Piece) slide(from Square, b *Board, dirs []delta, moves []Square) []Square {
	for _, d := range dirs {
		for sq := from.offset(d.dr, d.dc); sq.InBounds(); sq = sq.offset(d.dr, d.dc) {
			if b.IsEmpty(sq) {
				moves = append(moves, sq)
				continue
			}
			if b.IsEnemy(sq, p.Color) {
				moves = append(moves, sq)
			}
			break
		}
	}
	return moves
}

func (p Piece) step(from Square, b *Board, offsets []delta) []Square {
	var moves []Square
	for _, d := range offsets {
		sq := from.offset(d.dr, d.dc)
		if !sq.InBounds() {
			continue
		}
		if b.IsEmpty(sq) || b.IsEnemy(sq, p.Color) {
			moves = append(moves, sq)
		}
	}
	return moves
}
