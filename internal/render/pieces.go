package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
)

type pieceCacheKey struct {
	color antichess.Color
	size  int
}

var (
	pieceCache   = map[pieceCacheKey]image.Image{}
	pieceCacheMu sync.RWMutex
)

type discStyle struct {
	fill, stroke string
}

var discStyles = map[antichess.Color]discStyle{
	antichess.White: {fill: "#f7f4ec", stroke: "#2b2b2b"},
	antichess.Black: {fill: "#2b2b2b", stroke: "#f7f4ec"},
}

func letterColor(c antichess.Color) color.Color {
	if c == antichess.White {
		return color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	}
	return color.NRGBA{R: 245, G: 245, B: 245, A: 255}
}

func pieceSVG(c antichess.Color) string {
	style := discStyles[c]
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">`+
			`<circle cx="50" cy="50" r="36" fill="%s" stroke="%s" stroke-width="5"/>`+
			`</svg>`,
		style.fill, style.stroke,
	)
}

// renderPieceImage rasterises the disc for p's colour; the letter is drawn by the caller.
func renderPieceImage(p antichess.Piece, size int) (image.Image, error) {
	key := pieceCacheKey{color: p.Color, size: size}

	pieceCacheMu.RLock()
	if img, ok := pieceCache[key]; ok {
		pieceCacheMu.RUnlock()
		return img, nil
	}
	pieceCacheMu.RUnlock()

	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(p.Color)))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	pieceCacheMu.Lock()
	pieceCache[key] = img
	pieceCacheMu.Unlock()

	return img, nil
}
