package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/sandeepkv93/intervald/internal/model"
	"github.com/sandeepkv93/intervald/internal/storage"
)

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func formatTotal(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	h := totalSec / 3600
	rest := totalSec % 3600
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, rest/60)
	}
	return model.FormatClock(rest)
}

func historyRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, table.Row{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			model.FormatClock(s.DurationSeconds),
			model.FormatClock(s.ElapsedSeconds),
			string(s.Outcome),
		})
	}
	return rows
}
