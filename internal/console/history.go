package console

import (
	"fmt"
	"io"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/msgcat"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/results"
)

const historyTimeLayout = "2006-01-02 15:04"

// WriteHistory lists archived games newest first.
func WriteHistory(w io.Writer, cat *msgcat.Catalog, records []*results.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, cat.Text(msgcat.HistoryEmpty, nil))
		return
	}
	fmt.Fprintln(w, cat.Text(msgcat.HistoryHeader, nil))
	for _, r := range records {
		result := r.WinnerName()
		if result == "" {
			result = cat.Text(msgcat.HistoryDraw, nil)
		}
		fmt.Fprintln(w, cat.Text(msgcat.HistoryLine, map[string]string{
			"Ended":  r.EndedAt.Local().Format(historyTimeLayout),
			"White":  r.White,
			"Black":  r.Black,
			"Result": result,
			"Method": string(r.Method),
		}))
	}
}
