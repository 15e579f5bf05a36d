package console

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
)

const (
	fileLabels  = "  a b c d e f g h"
	emptySquare = "."
)

// WriteBoard prints the grid with rank 8 at the top, White in uppercase and Black in lowercase.
func WriteBoard(w io.Writer, b *antichess.Board) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fileLabels + "\n")
	for row := 0; row < 8; row++ {
		label := strconv.Itoa(8 - row)
		bw.WriteString(label + " ")
		for col := 0; col < 8; col++ {
			p := b.At(antichess.Square{Row: row, Col: col})
			if p.IsZero() {
				bw.WriteString(emptySquare)
			} else {
				bw.WriteString(p.Symbol())
			}
			bw.WriteByte(' ')
		}
		bw.WriteString(label + "\n")
	}
	bw.WriteString(fileLabels + "\n")
	return bw.Flush()
}
