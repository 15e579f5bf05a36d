// Package results archives summaries of finished games. Only the outcome is
// kept; a game in progress is never stored.
package results

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
)

var (
	ErrNotFinished = errors.New("game is not finished")
	ErrNotFound    = errors.New("result not found")
	ErrInvalid     = errors.New("invalid result record")
)

// Method explains how the game ended.
type Method string

const (
	MethodElimination Method = "elimination"
	MethodQuit        Method = "quit"
	MethodDraw        Method = "draw"
)

// Record is the archived summary of one finished game. Winner holds a colour
// ("white" or "black") or is empty for a draw.
type Record struct {
	ID        string    `json:"id"`
	White     string    `json:"white"`
	Black     string    `json:"black"`
	Winner    string    `json:"winner,omitempty"`
	Method    Method    `json:"method"`
	Placement string    `json:"placement"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Store persists finished-game records.
type Store interface {
	Save(ctx context.Context, r *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Recent(ctx context.Context, limit int) ([]*Record, error)
	Close() error
}

const defaultRecentLimit = 10

// FromOutcome converts a finished outcome into a record.
func FromOutcome(o antichess.Outcome) (*Record, error) {
	if !o.Finished() {
		return nil, ErrNotFinished
	}
	r := &Record{
		ID:        o.GameID,
		White:     o.White.Name,
		Black:     o.Black.Name,
		Placement: o.Placement,
		StartedAt: o.StartedAt,
		EndedAt:   o.EndedAt,
	}
	if o.HasWinner {
		r.Winner = o.Winner.Color.String()
	}
	switch o.Status {
	case antichess.StatusQuit:
		r.Method = MethodQuit
	case antichess.StatusDraw:
		r.Method = MethodDraw
	default:
		r.Method = MethodElimination
	}
	return r, nil
}

// WinnerName resolves the winning colour back to the player's name.
func (r *Record) WinnerName() string {
	switch r.Winner {
	case antichess.White.String():
		return r.White
	case antichess.Black.String():
		return r.Black
	default:
		return ""
	}
}

func (r *Record) validate() error {
	if r == nil || strings.TrimSpace(r.ID) == "" {
		return ErrInvalid
	}
	return nil
}
