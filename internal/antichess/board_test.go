package antichess

import (
	"errors"
	"testing"
)

func mustPlacement(t *testing.T, text string) *Board {
	t.Helper()
	b, err := ParsePlacement(text)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", text, err)
	}
	return b
}

func TestEmptyAndEnemyAreConsistent(t *testing.T) {
	b := NewBoard()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			s := Square{Row: row, Col: col}
			for _, c := range []Color{White, Black} {
				if b.IsEmpty(s) && b.IsEnemy(s, c) {
					t.Fatalf("%s is empty yet enemy for %s", s, c)
				}
			}
		}
	}
	if !b.IsEnemy(sq(t, "e7"), White) || b.IsEnemy(sq(t, "e7"), Black) {
		t.Fatalf("e7 should be enemy for white only")
	}
}

func TestValidateMoveReasons(t *testing.T) {
	b := NewBoard()
	cases := []struct {
		name     string
		from, to string
		color    Color
		want     error
	}{
		{"empty origin", "e4", "e5", White, ErrNoPiece},
		{"opponent piece", "e7", "e6", White, ErrOpponentPiece},
		{"double step", "e2", "e4", White, ErrIllegalDestination},
		{"onto own piece", "e1", "e2", White, ErrIllegalDestination},
		{"legal pawn step", "e2", "e3", White, nil},
		{"legal knight", "g8", "f6", Black, nil},
	}
	for _, tc := range cases {
		err := b.ValidateMove(sq(t, tc.from), sq(t, tc.to), tc.color)
		if !errors.Is(err, tc.want) || (tc.want == nil && err != nil) {
			t.Fatalf("%s: ValidateMove = %v, want %v", tc.name, err, tc.want)
		}
		if b.IsValidMove(sq(t, tc.from), sq(t, tc.to), tc.color) != (tc.want == nil) {
			t.Fatalf("%s: IsValidMove disagrees with ValidateMove", tc.name)
		}
	}
}

func TestMandatoryCaptureRejectsQuietMove(t *testing.T) {
	// white rook a1 can take the pawn on a5; h2-h3 is a quiet move elsewhere
	b := mustPlacement(t, "8/8/8/p7/8/8/7P/R7")
	if !b.IsCapturePossible(White) {
		t.Fatalf("expected a capture for white")
	}
	if err := b.ValidateMove(sq(t, "h2"), sq(t, "h3"), White); !errors.Is(err, ErrCaptureRequired) {
		t.Fatalf("quiet move: got %v, want ErrCaptureRequired", err)
	}
	if err := b.ValidateMove(sq(t, "a1"), sq(t, "a3"), White); !errors.Is(err, ErrCaptureRequired) {
		t.Fatalf("quiet rook move: got %v, want ErrCaptureRequired", err)
	}
	if err := b.ValidateMove(sq(t, "a1"), sq(t, "a5"), White); err != nil {
		t.Fatalf("capture should be legal: %v", err)
	}
	if b.IsCapturePossible(Black) {
		t.Fatalf("black has no capture here")
	}
}

func TestMandatoryCaptureHoldsForEveryQuietMove(t *testing.T) {
	b := mustPlacement(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR")
	if !b.IsCapturePossible(White) {
		t.Fatalf("exd5 should be available")
	}
	b.each(func(from Square, p Piece) {
		if p.Color != White {
			return
		}
		for _, to := range p.ValidMoves(from, b) {
			err := b.ValidateMove(from, to, White)
			if b.IsEnemy(to, White) {
				if err != nil {
					t.Fatalf("capture %s%s rejected: %v", from, to, err)
				}
				continue
			}
			if !errors.Is(err, ErrCaptureRequired) {
				t.Fatalf("quiet %s%s allowed while capture exists: %v", from, to, err)
			}
		}
	})
}

func TestMakeMoveRelocates(t *testing.T) {
	b := mustPlacement(t, "8/8/8/p7/8/8/7P/R7")
	before := b.Count(White) + b.Count(Black)

	captured := b.MakeMove(sq(t, "a1"), sq(t, "a5"))
	if captured != NewPiece(Pawn, Black) {
		t.Fatalf("expected to capture black pawn, got %v", captured)
	}
	if !b.IsEmpty(sq(t, "a1")) || b.At(sq(t, "a5")) != NewPiece(Rook, White) {
		t.Fatalf("rook not relocated: %s", b.Placement())
	}
	if after := b.Count(White) + b.Count(Black); after != before-1 {
		t.Fatalf("capture should remove one piece: before=%d after=%d", before, after)
	}

	captured = b.MakeMove(sq(t, "h2"), sq(t, "h3"))
	if !captured.IsZero() {
		t.Fatalf("quiet move captured %v", captured)
	}
	if after := b.Count(White) + b.Count(Black); after != before-1 {
		t.Fatalf("quiet move changed piece count")
	}
}

func TestGameOverAndWinner(t *testing.T) {
	b := mustPlacement(t, "8/8/8/8/8/8/8/R7")
	if !b.IsGameOver() {
		t.Fatalf("black has no pieces; game should be over")
	}
	if w, ok := b.DetermineWinner(); !ok || w != White {
		t.Fatalf("DetermineWinner = %v,%v want white", w, ok)
	}

	start := NewBoard()
	if start.IsGameOver() {
		t.Fatalf("start position is not over")
	}
	if _, ok := start.DetermineWinner(); ok {
		t.Fatalf("no winner while both sides have pieces")
	}
	if _, ok := NewEmptyBoard().DetermineWinner(); ok {
		t.Fatalf("empty board has no winner")
	}
	if !NewEmptyBoard().IsGameOver() {
		t.Fatalf("empty board is over")
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	const start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	if got := NewBoard().Placement(); got != start {
		t.Fatalf("Placement = %q, want %q", got, start)
	}
	b := mustPlacement(t, start+" w - - 0 1")
	if *b != *NewBoard() {
		t.Fatalf("parsed start placement differs from NewBoard")
	}
	custom := "8/8/8/p7/8/8/7P/R7"
	if got := mustPlacement(t, custom).Placement(); got != custom {
		t.Fatalf("round trip %q -> %q", custom, got)
	}
}

func TestParsePlacementErrors(t *testing.T) {
	for _, in := range []string{"", "8/8/8", "9/8/8/8/8/8/8/8", "x7/8/8/8/8/8/8/8", "7/8/8/8/8/8/8/8"} {
		if _, err := ParsePlacement(in); !errors.Is(err, ErrBadPlacement) {
			t.Fatalf("ParsePlacement(%q) = %v, want ErrBadPlacement", in, err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	cases := map[string]Square{
		"A2": {Row: 6, Col: 0},
		"h8": {Row: 0, Col: 7},
		"e2": {Row: 6, Col: 4},
		"D3": {Row: 5, Col: 3},
	}
	for in, want := range cases {
		got, err := ParseSquare(in)
		if err != nil || got != want {
			t.Fatalf("ParseSquare(%q) = %v,%v want %v", in, got, err, want)
		}
		if got.String() != string([]byte{in[0] | 0x20, in[1]}) {
			t.Fatalf("String() = %q for %q", got.String(), in)
		}
	}
	for _, bad := range []string{"", "A", "A10", "I1", "A0", "A9", "22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrBadSquare) {
			t.Fatalf("ParseSquare(%q) should fail, got %v", bad, err)
		}
	}
}
