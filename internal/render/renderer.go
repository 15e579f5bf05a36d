// Package render draws a board position as a PNG snapshot.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
)

var ErrNilBoard = errors.New("board is nil")

type Options struct {
	// Header is shown in a panel above the board when non-empty.
	Header string
	// Highlight tints the listed squares, e.g. the last move.
	Highlight []antichess.Square
	// Width scales the finished image to this many pixels wide, keeping the aspect ratio.
	Width int
}

// OutcomeOptions titles the snapshot with the players and tints the squares of
// the last accepted move.
func OutcomeOptions(o antichess.Outcome, width int) Options {
	opts := Options{
		Header: fmt.Sprintf("%s vs %s", o.White.Name, o.Black.Name),
		Width:  width,
	}
	if o.HasLastMove {
		opts.Highlight = []antichess.Square{o.LastMove.From, o.LastMove.To}
	}
	return opts
}

type Renderer struct {
	face font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

const (
	squareSize   = 60
	boardSize    = squareSize * 8
	sideMargin   = 28
	bottomMargin = 28
	headerHeight = 34
	headerGap    = 14
	panelRadius  = 8
	panelPadding = 16
)

var (
	backgroundColor     = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	lightSquare         = color.RGBA{R: 233, G: 207, B: 163, A: 255}
	darkSquare          = color.RGBA{R: 187, G: 136, B: 96, A: 255}
	highlightFill       = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	hudPanelColor       = color.NRGBA{R: 28, G: 31, B: 46, A: 250}
	hudTextPrimary      = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
	coordinateTextColor = color.NRGBA{R: 8, G: 214, B: 120, A: 255}
)

func (r *Renderer) RenderPNG(ctx context.Context, b *antichess.Board, opts Options) ([]byte, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topMargin := sideMargin
	header := strings.TrimSpace(opts.Header)
	if header != "" {
		topMargin = headerGap + headerHeight + headerGap
	}
	origin := image.Point{X: sideMargin, Y: topMargin}
	boardRect := image.Rect(origin.X, origin.Y, origin.X+boardSize, origin.Y+boardSize)

	img := image.NewRGBA(image.Rect(0, 0, boardSize+sideMargin*2, topMargin+boardSize+bottomMargin))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)

	if header != "" {
		r.drawHeader(img, boardRect, header)
	}
	drawSquares(img, origin)
	for _, sq := range opts.Highlight {
		if sq.InBounds() {
			imagedraw.Draw(img, squareRect(sq, origin), image.NewUniform(highlightFill), image.Point{}, imagedraw.Over)
		}
	}
	if err := r.drawPieces(img, b, origin); err != nil {
		return nil, err
	}
	r.drawCoordinates(img, origin)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out image.Image = img
	if opts.Width > 0 && opts.Width != img.Bounds().Dx() {
		out = resize.Resize(uint(opts.Width), 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(img *image.RGBA, boardRect image.Rectangle, text string) {
	drawer := &font.Drawer{Dst: img, Face: r.face}
	text = truncateWithEllipsis(r.face, text, boardRect.Dx()-panelPadding*2)
	width := drawer.MeasureString(text).Round() + panelPadding*2
	if width > boardRect.Dx() {
		width = boardRect.Dx()
	}
	left := boardRect.Min.X + (boardRect.Dx()-width)/2
	panel := image.Rect(left, headerGap, left+width, headerGap+headerHeight)
	drawRoundedPanel(img, panel, panelRadius, hudPanelColor)
	drawCenteredString(drawer, panel, text, hudTextPrimary)
}

func drawSquares(dst imagedraw.Image, origin image.Point) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := antichess.Square{Row: row, Col: col}
			imagedraw.Draw(dst, squareRect(sq, origin), image.NewUniform(squareColor(sq)), image.Point{}, imagedraw.Src)
		}
	}
}

func (r *Renderer) drawPieces(dst *image.RGBA, b *antichess.Board, origin image.Point) error {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := antichess.Square{Row: row, Col: col}
			p := b.At(sq)
			if p.IsZero() {
				continue
			}
			disc, err := renderPieceImage(p, squareSize)
			if err != nil {
				return err
			}
			rect := squareRect(sq, origin)
			imagedraw.Draw(dst, rect, disc, image.Point{}, imagedraw.Over)
			drawer := &font.Drawer{Dst: dst, Face: r.face}
			drawCenteredString(drawer, rect, p.Kind.Letter(), letterColor(p.Color))
		}
	}
	return nil
}

func (r *Renderer) drawCoordinates(dst imagedraw.Image, origin image.Point) {
	drawer := &font.Drawer{Dst: dst, Face: r.face, Src: image.NewUniform(coordinateTextColor)}
	ascent := r.face.Metrics().Ascent.Ceil()
	boardBottom := origin.Y + boardSize
	for i := 0; i < 8; i++ {
		rankCenter := origin.Y + i*squareSize + squareSize/2
		drawCenteredText(drawer, strconv.Itoa(8-i), origin.X-sideMargin/2, rankCenter+ascent/2)

		fileCenter := origin.X + i*squareSize + squareSize/2
		drawCenteredText(drawer, string(rune('a'+i)), fileCenter, boardBottom+ascent+4)
	}
}

func squareRect(sq antichess.Square, origin image.Point) image.Rectangle {
	x := origin.X + sq.Col*squareSize
	y := origin.Y + sq.Row*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

// a8 sits at row 0, col 0 and is a light square.
func squareColor(sq antichess.Square) color.Color {
	if (sq.Row+sq.Col)%2 == 0 {
		return lightSquare
	}
	return darkSquare
}
