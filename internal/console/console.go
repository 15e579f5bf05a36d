// Package console is the terminal boundary of the game: it prints the board,
// reads player names and move text, and reports rejections and results.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/msgcat"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/obslog"
	"go.uber.org/zap"
)

var ErrBadFormat = errors.New("move must be two squares separated by a space")

type line struct {
	text string
	err  error // io.EOF at end of input
}

// Console implements antichess.View and antichess.MoveSource over a line-oriented stream.
type Console struct {
	in  io.Reader
	out io.Writer
	cat *msgcat.Catalog

	once  sync.Once
	lines chan line
}

var (
	_ antichess.View       = (*Console)(nil)
	_ antichess.MoveSource = (*Console)(nil)
)

func New(in io.Reader, out io.Writer, cat *msgcat.Catalog) *Console {
	return &Console{in: in, out: out, cat: cat}
}

// scan feeds c.lines from the input until it ends. The reader goroutine is
// started on first use and outlives a cancelled read; the pending line is
// delivered to the next caller.
func (c *Console) scan() {
	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		c.lines <- line{text: sc.Text()}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	c.lines <- line{err: err}
	close(c.lines)
}

// readLine blocks until a line arrives or ctx is done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.once.Do(func() {
		c.lines = make(chan line)
		go c.scan()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// ReadNames asks for both display names. Blank answers are returned as-is; the
// game substitutes the defaults.
func (c *Console) ReadNames(ctx context.Context) (white, black string, err error) {
	c.println(c.cat.Text(msgcat.SessionWelcome, nil))
	if white, err = c.ask(ctx, msgcat.SessionWhiteName); err != nil {
		return "", "", err
	}
	if black, err = c.ask(ctx, msgcat.SessionBlackName); err != nil {
		return "", "", err
	}
	return white, black, nil
}

func (c *Console) ask(ctx context.Context, prompt msgcat.Key) (string, error) {
	fmt.Fprint(c.out, c.cat.Text(prompt, nil))
	text, err := c.readLine(ctx)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// NextMove prompts until it reads a well-formed move or quit. End of input counts as quit.
func (c *Console) NextMove(ctx context.Context, p antichess.Player) (antichess.MoveRequest, error) {
	for {
		fmt.Fprint(c.out, c.cat.Text(msgcat.TurnPrompt, playerData(p)))
		text, err := c.readLine(ctx)
		if errors.Is(err, io.EOF) {
			obslog.L().Info("console_eof", zap.String("player", p.Name))
			fmt.Fprintln(c.out)
			return antichess.MoveRequest{Quit: true}, nil
		}
		if err != nil {
			if ctx.Err() == nil {
				err = fmt.Errorf("read input: %w", err)
			}
			return antichess.MoveRequest{}, err
		}
		req, err := ParseMove(text)
		switch {
		case err == nil:
			return req, nil
		case errors.Is(err, ErrBadFormat):
			c.println(c.cat.Text(msgcat.TurnBadFormat, nil))
		default:
			c.println(c.cat.Text(msgcat.TurnBadSquare, nil))
		}
	}
}

// ParseMove turns "A2 B3" or "quit" into a request.
func ParseMove(text string) (antichess.MoveRequest, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "quit") {
		return antichess.MoveRequest{Quit: true}, nil
	}
	parts := strings.Split(text, " ")
	if len(parts) != 2 {
		return antichess.MoveRequest{}, ErrBadFormat
	}
	from, err := antichess.ParseSquare(parts[0])
	if err != nil {
		return antichess.MoveRequest{}, err
	}
	to, err := antichess.ParseSquare(parts[1])
	if err != nil {
		return antichess.MoveRequest{}, err
	}
	return antichess.MoveRequest{From: from, To: to}, nil
}

func (c *Console) ShowBoard(b *antichess.Board) {
	if err := WriteBoard(c.out, b); err != nil {
		obslog.L().Warn("console_board_write_error", zap.Error(err))
	}
}

func (c *Console) CaptureAvailable(antichess.Player) {
	c.println(c.cat.Text(msgcat.TurnCaptureAvailable, nil))
}

func (c *Console) Rejected(_ antichess.Player, reason error) {
	c.println(c.cat.Text(RejectionKey(reason), nil))
	c.println(c.cat.Text(msgcat.RejectRetry, nil))
}

// RejectionKey maps a move rejection to its catalog key.
func RejectionKey(err error) msgcat.Key {
	switch {
	case errors.Is(err, antichess.ErrNoPiece):
		return msgcat.RejectNoPiece
	case errors.Is(err, antichess.ErrOpponentPiece):
		return msgcat.RejectOpponentPiece
	case errors.Is(err, antichess.ErrIllegalDestination):
		return msgcat.RejectIllegalDestination
	case errors.Is(err, antichess.ErrCaptureRequired):
		return msgcat.RejectCaptureRequired
	default:
		return msgcat.RejectBadSquare
	}
}

func (c *Console) Finished(o antichess.Outcome) {
	switch {
	case o.Status == antichess.StatusQuit:
		c.println(c.cat.Text(msgcat.FinishQuit, map[string]string{"Quitter": o.Quitter.Name}))
		c.println(c.cat.Text(msgcat.FinishQuitWinner, playerData(o.Winner)))
	case o.HasWinner:
		c.println(c.cat.Text(msgcat.FinishWinner, playerData(o.Winner)))
	default:
		c.println(c.cat.Text(msgcat.FinishDraw, nil))
	}
}

func (c *Console) println(s string) { fmt.Fprintln(c.out, s) }

func playerData(p antichess.Player) map[string]string {
	return map[string]string{"Name": p.Name, "Color": p.Color.String()}
}
