package antichess

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/obslog"
)

type scriptedSource struct {
	t     *testing.T
	moves []MoveRequest
	asked []Player
}

func (s *scriptedSource) NextMove(_ context.Context, p Player) (MoveRequest, error) {
	s.asked = append(s.asked, p)
	if len(s.moves) == 0 {
		return MoveRequest{}, io.EOF
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next, nil
}

type recordingView struct {
	boards   int
	captures []Player
	rejected []error
	finished []Outcome
}

func (v *recordingView) ShowBoard(*Board)                { v.boards++ }
func (v *recordingView) CaptureAvailable(p Player)       { v.captures = append(v.captures, p) }
func (v *recordingView) Rejected(_ Player, reason error) { v.rejected = append(v.rejected, reason) }
func (v *recordingView) Finished(o Outcome)              { v.finished = append(v.finished, o) }

func move(t *testing.T, from, to string) MoveRequest {
	t.Helper()
	return MoveRequest{From: sq(t, from), To: sq(t, to)}
}

func fixedClock() func() time.Time {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame("  ", "")
	if g.Player(White).Name != DefaultWhiteName || g.Player(Black).Name != DefaultBlackName {
		t.Fatalf("unexpected default names: %+v %+v", g.Player(White), g.Player(Black))
	}
	if g.CurrentPlayer().Color != White {
		t.Fatalf("white should move first")
	}
	if g.ID() == "" || g.Status() != StatusActive {
		t.Fatalf("unexpected initial state: id=%q status=%s", g.ID(), g.Status())
	}
	if g.Board().Placement() != NewBoard().Placement() {
		t.Fatalf("game should start from the standard position")
	}
}

func TestPlayAlternatesOnlyOnValidMoves(t *testing.T) {
	g := NewGame("Alice", "Bob")

	if _, err := g.Play(move(t, "e2", "e4")); !errors.Is(err, ErrIllegalDestination) {
		t.Fatalf("double step should be rejected, got %v", err)
	}
	if g.CurrentPlayer().Color != White {
		t.Fatalf("turn must not change after a rejected move")
	}

	if _, err := g.Play(move(t, "e2", "e3")); err != nil {
		t.Fatalf("e2e3: %v", err)
	}
	if g.CurrentPlayer().Name != "Bob" {
		t.Fatalf("black should be on move, got %+v", g.CurrentPlayer())
	}

	if _, err := g.Play(move(t, "e3", "e4")); !errors.Is(err, ErrOpponentPiece) {
		t.Fatalf("black moving a white pawn: got %v", err)
	}
	if _, err := g.Play(move(t, "d7", "d6")); err != nil {
		t.Fatalf("d7d6: %v", err)
	}
	if g.CurrentPlayer().Color != White {
		t.Fatalf("white should be on move again")
	}
}

func TestQuitDeclaresOpponent(t *testing.T) {
	g := NewGame("Alice", "Bob", WithClock(fixedClock()))
	if _, err := g.Play(move(t, "e2", "e3")); err != nil {
		t.Fatalf("e2e3: %v", err)
	}
	out, err := g.Play(MoveRequest{Quit: true})
	if err != nil {
		t.Fatalf("quit: %v", err)
	}
	if out.Status != StatusQuit || !out.HasWinner {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Winner.Name != "Alice" || out.Quitter.Name != "Bob" {
		t.Fatalf("winner=%q quitter=%q, want Alice/Bob", out.Winner.Name, out.Quitter.Name)
	}
	if !out.EndedAt.After(out.StartedAt) {
		t.Fatalf("end time should follow start time: %v %v", out.StartedAt, out.EndedAt)
	}
	if _, err := g.Play(move(t, "e3", "e4")); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("moves after the end should fail, got %v", err)
	}
}

func TestPlayEliminationEndsGame(t *testing.T) {
	g := NewGame("W", "B", WithBoard(mustPlacement(t, "8/8/8/p7/8/8/8/R7")))
	out, err := g.Play(move(t, "a1", "a5"))
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if out.Status != StatusEliminated || !out.HasWinner || out.Winner.Color != White {
		t.Fatalf("unexpected outcome after last capture: %+v", out)
	}
	if out.Placement != "8/8/8/R7/8/8/8/8" {
		t.Fatalf("placement = %q", out.Placement)
	}
}

func TestRunEnforcesCaptureAndFinishes(t *testing.T) {
	g := NewGame("W", "B", WithBoard(mustPlacement(t, "8/8/8/p7/8/8/8/R7")))
	src := &scriptedSource{t: t, moves: []MoveRequest{
		move(t, "a1", "a2"),
		move(t, "a1", "a5"),
	}}
	view := &recordingView{}

	out, err := g.Run(context.Background(), src, view)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if view.boards != 3 {
		t.Fatalf("expected board shown 3 times, got %d", view.boards)
	}
	if len(view.captures) != 2 || view.captures[0].Color != White {
		t.Fatalf("expected two capture notices for white, got %+v", view.captures)
	}
	if len(view.rejected) != 1 || !errors.Is(view.rejected[0], ErrCaptureRequired) {
		t.Fatalf("expected one ErrCaptureRequired rejection, got %v", view.rejected)
	}
	if len(view.finished) != 1 || view.finished[0].Winner.Color != White {
		t.Fatalf("expected white reported as winner, got %+v", view.finished)
	}
	if out.Status != StatusEliminated {
		t.Fatalf("status = %s", out.Status)
	}
	for _, p := range src.asked {
		if p.Color != White {
			t.Fatalf("only white should have been asked, got %+v", src.asked)
		}
	}
}

func TestRunQuitMidGame(t *testing.T) {
	g := NewGame("Alice", "Bob")
	src := &scriptedSource{t: t, moves: []MoveRequest{
		move(t, "b1", "c3"),
		{Quit: true},
	}}
	view := &recordingView{}
	out, err := g.Run(context.Background(), src, view)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusQuit || out.Winner.Name != "Alice" {
		t.Fatalf("expected Alice to win after Bob quits: %+v", out)
	}
	if len(view.finished) != 1 {
		t.Fatalf("Finished should be reported once, got %d", len(view.finished))
	}
}

func TestRunAlreadyDecidedBoard(t *testing.T) {
	g := NewGame("W", "B", WithBoard(mustPlacement(t, "8/8/8/8/8/8/8/R7")))
	view := &recordingView{}
	out, err := g.Run(context.Background(), &scriptedSource{t: t}, view)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusEliminated || out.Winner.Color != White {
		t.Fatalf("lone white rook against no black pieces: expected white to win, got %+v", out)
	}
}

func TestRunEmptyBoardIsDraw(t *testing.T) {
	g := NewGame("W", "B", WithBoard(NewEmptyBoard()))
	out, err := g.Run(context.Background(), &scriptedSource{t: t}, &recordingView{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Status != StatusDraw || out.HasWinner {
		t.Fatalf("expected draw, got %+v", out)
	}
}

func TestRunPropagatesSourceError(t *testing.T) {
	g := NewGame("W", "B")
	_, err := g.Run(context.Background(), &scriptedSource{t: t}, &recordingView{})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected wrapped EOF, got %v", err)
	}
	if g.Status() != StatusActive {
		t.Fatalf("source failure must not end the game, status=%s", g.Status())
	}
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGame("W", "B")
	view := &recordingView{}
	if _, err := g.Run(ctx, &scriptedSource{t: t}, view); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if view.boards != 0 {
		t.Fatalf("nothing should be shown after cancellation")
	}
}

func TestOutcomeTracksLastAcceptedMove(t *testing.T) {
	g := NewGame("W", "B", WithID("  game-1 "))
	if out := g.Outcome(); out.GameID != "game-1" || out.HasLastMove {
		t.Fatalf("fresh game: id=%q hasLastMove=%v", out.GameID, out.HasLastMove)
	}

	if _, err := g.Play(move(t, "e2", "e3")); err != nil {
		t.Fatalf("e2e3: %v", err)
	}
	if _, err := g.Play(move(t, "d7", "d5")); !errors.Is(err, ErrIllegalDestination) {
		t.Fatalf("double step should be rejected, got %v", err)
	}
	out := g.Outcome()
	if !out.HasLastMove || out.LastMove != move(t, "e2", "e3") {
		t.Fatalf("rejected move must not replace the last move, got %+v", out.LastMove)
	}

	out, err := g.Play(MoveRequest{Quit: true})
	if err != nil {
		t.Fatalf("quit: %v", err)
	}
	if out.LastMove != move(t, "e2", "e3") {
		t.Fatalf("quitting must keep the last board move, got %+v", out.LastMove)
	}
}

func TestPlayLogsMovesAndRejections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	defer obslog.Replace(zap.New(core))()

	g := NewGame("W", "B", WithID("game-1"), WithBoard(mustPlacement(t, "8/8/8/p7/8/8/8/R7")))
	if _, err := g.Play(move(t, "a1", "b1")); !errors.Is(err, ErrCaptureRequired) {
		t.Fatalf("quiet move with a capture available: got %v", err)
	}
	if _, err := g.Play(move(t, "a1", "a5")); err != nil {
		t.Fatalf("capture: %v", err)
	}

	rejects := logs.FilterMessage("antichess_reject").All()
	if len(rejects) != 1 {
		t.Fatalf("expected one rejection event, got %d", len(rejects))
	}
	if f := rejects[0].ContextMap(); f["game_id"] != "game-1" || f["move"] != "a1b1" {
		t.Fatalf("rejection fields = %v", f)
	}

	moves := logs.FilterMessage("antichess_move").All()
	if len(moves) != 1 {
		t.Fatalf("expected one move event, got %d", len(moves))
	}
	f := moves[0].ContextMap()
	if f["game_id"] != "game-1" || f["move"] != "a1a5" || f["black_left"] != int64(0) {
		t.Fatalf("move fields = %v", f)
	}
	if logs.FilterMessage("antichess_finish").Len() != 1 {
		t.Fatalf("capturing the last black piece should log the finish")
	}
}
