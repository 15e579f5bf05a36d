package antichess

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/obslog"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultWhiteName = "Player 1"
	DefaultBlackName = "Player 2"
)

// Status represents the game lifecycle state.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusEliminated Status = "ELIMINATED"
	StatusQuit       Status = "QUIT"
	StatusDraw       Status = "DRAW"
)

// Player is a named side. Colours are fixed for the whole game.
type Player struct {
	Name  string
	Color Color
}

// MoveRequest is either a from/to pair or a quit signal.
type MoveRequest struct {
	From Square
	To   Square
	Quit bool
}

func (r MoveRequest) String() string {
	if r.Quit {
		return "quit"
	}
	return r.From.String() + r.To.String()
}

// MoveSource supplies the next request of the player to move. It blocks until input arrives.
type MoveSource interface {
	NextMove(ctx context.Context, p Player) (MoveRequest, error)
}

// View receives everything the turn loop wants shown to the players.
type View interface {
	ShowBoard(b *Board)
	CaptureAvailable(p Player)
	Rejected(p Player, reason error)
	Finished(o Outcome)
}

// Outcome summarises a game, finished or not.
type Outcome struct {
	GameID    string
	Status    Status
	White     Player
	Black     Player
	Winner    Player
	HasWinner bool
	Quitter   Player
	Placement string
	// LastMove is the most recent accepted move; HasLastMove is false before the first one.
	LastMove    MoveRequest
	HasLastMove bool
	StartedAt   time.Time
	EndedAt     time.Time
}

func (o Outcome) Finished() bool { return o.Status != StatusActive }

// Game is the turn-taking state machine around one board and two players.
type Game struct {
	id      string
	board   *Board
	white   Player
	black   Player
	current Color
	status  Status

	winner    Color
	hasWinner bool
	quitter   Color

	lastMove    MoveRequest
	hasLastMove bool

	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

type Option func(*Game)

// WithBoard starts the game from a custom position instead of the standard one.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		if strings.TrimSpace(id) != "" {
			g.id = strings.TrimSpace(id)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGame creates a game with White to move. Blank names fall back to the defaults.
func NewGame(whiteName, blackName string, opts ...Option) *Game {
	whiteName = strings.TrimSpace(whiteName)
	if whiteName == "" {
		whiteName = DefaultWhiteName
	}
	blackName = strings.TrimSpace(blackName)
	if blackName == "" {
		blackName = DefaultBlackName
	}
	g := &Game{
		id:      uuid.NewString(),
		white:   Player{Name: whiteName, Color: White},
		black:   Player{Name: blackName, Color: Black},
		current: White,
		status:  StatusActive,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = NewBoard()
	}
	g.startedAt = g.now()
	obslog.L().Info("antichess_start",
		zap.String("game_id", g.id),
		zap.String("white", g.white.Name),
		zap.String("black", g.black.Name),
		zap.String("placement", g.board.Placement()),
	)
	return g
}

func (g *Game) ID() string     { return g.id }
func (g *Game) Board() *Board  { return g.board }
func (g *Game) Status() Status { return g.status }

func (g *Game) Player(c Color) Player {
	if c == White {
		return g.white
	}
	return g.black
}

// CurrentPlayer is the player who has the move.
func (g *Game) CurrentPlayer() Player { return g.Player(g.current) }

// Play performs one transition. A quit ends the game in favour of the opponent; a
// rejected move returns the reason and keeps the same player on move.
func (g *Game) Play(req MoveRequest) (Outcome, error) {
	if g.status != StatusActive {
		return g.Outcome(), ErrGameFinished
	}
	mover := g.CurrentPlayer()

	if req.Quit {
		g.quitter = mover.Color
		g.finish(StatusQuit, mover.Color.Opposite(), true)
		return g.Outcome(), nil
	}

	if err := g.board.ValidateMove(req.From, req.To, mover.Color); err != nil {
		obslog.L().Debug("antichess_reject",
			zap.String("game_id", g.id),
			zap.String("color", mover.Color.String()),
			zap.String("move", req.String()),
			zap.Error(err),
		)
		return g.Outcome(), err
	}

	captured := g.board.MakeMove(req.From, req.To)
	g.lastMove = MoveRequest{From: req.From, To: req.To}
	g.hasLastMove = true
	g.current = g.current.Opposite()
	obslog.L().Info("antichess_move",
		zap.String("game_id", g.id),
		zap.String("color", mover.Color.String()),
		zap.String("move", req.String()),
		zap.String("captured", captured.String()),
		zap.Int("white_left", g.board.Count(White)),
		zap.Int("black_left", g.board.Count(Black)),
	)
	g.settle()
	return g.Outcome(), nil
}

// settle ends the game when the board says it is over. It reports whether the game is finished.
func (g *Game) settle() bool {
	if g.status != StatusActive {
		return true
	}
	if !g.board.IsGameOver() {
		return false
	}
	if winner, ok := g.board.DetermineWinner(); ok {
		g.finish(StatusEliminated, winner, true)
	} else {
		g.finish(StatusDraw, "", false)
	}
	return true
}

func (g *Game) finish(status Status, winner Color, hasWinner bool) {
	g.status = status
	g.winner = winner
	g.hasWinner = hasWinner
	g.endedAt = g.now()
	fields := []zap.Field{
		zap.String("game_id", g.id),
		zap.String("status", string(status)),
		zap.String("placement", g.board.Placement()),
	}
	if hasWinner {
		fields = append(fields, zap.String("winner", g.Player(winner).Name), zap.String("winner_color", winner.String()))
	}
	obslog.L().Info("antichess_finish", fields...)
}

// Outcome returns a snapshot of the current result.
func (g *Game) Outcome() Outcome {
	o := Outcome{
		GameID:      g.id,
		Status:      g.status,
		White:       g.white,
		Black:       g.black,
		HasWinner:   g.hasWinner,
		Placement:   g.board.Placement(),
		LastMove:    g.lastMove,
		HasLastMove: g.hasLastMove,
		StartedAt:   g.startedAt,
		EndedAt:     g.endedAt,
	}
	if g.hasWinner {
		o.Winner = g.Player(g.winner)
	}
	if g.status == StatusQuit {
		o.Quitter = g.Player(g.quitter)
	}
	return o
}

// Run drives the turn loop until the board is decided, a player quits, the source
// fails, or ctx is cancelled.
func (g *Game) Run(ctx context.Context, src MoveSource, view View) (Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return g.Outcome(), err
		}
		view.ShowBoard(g.board)
		if g.settle() {
			out := g.Outcome()
			view.Finished(out)
			return out, nil
		}

		p := g.CurrentPlayer()
		if g.board.IsCapturePossible(p.Color) {
			view.CaptureAvailable(p)
		}

		req, err := src.NextMove(ctx, p)
		if err != nil {
			return g.Outcome(), fmt.Errorf("read move: %w", err)
		}

		out, err := g.Play(req)
		switch {
		case err == nil && out.Status == StatusQuit:
			view.Finished(out)
			return out, nil
		case err == nil:
		case IsRejection(err) || errors.Is(err, ErrBadSquare):
			view.Rejected(p, err)
		default:
			return out, err
		}
	}
}
