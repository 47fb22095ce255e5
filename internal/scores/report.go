package scores

import (
	"fmt"
	"io"
	"strings"
)

// Report column widths.
const (
	RankWidth  = 4
	ScoreWidth = 10
	NameWidth  = 31
	DateWidth  = 10
	Width      = RankWidth + 2 + ScoreWidth + 2 + NameWidth + 2 + DateWidth
)

// DateLayout is the ISO date shown in each row, in local time.
const DateLayout = "2006-01-02"

// FormatRow renders the record at zero-based rank as one table row.
func FormatRow(rank int, r Record) string {
	return fmt.Sprintf("%*d. %*d  %-*s  %*s",
		RankWidth, rank+1,
		ScoreWidth, r.Score,
		NameWidth, r.Name,
		DateWidth, r.Date.Local().Format(DateLayout),
	)
}

// TitleLine centres title over the table.
func TitleLine(title string) string {
	return fmt.Sprintf("%*s", Width/2+(len(title)+3)/2, title)
}

// Rule is the separator line under the title.
func Rule() string {
	return strings.Repeat("=", Width)
}

// Report writes the title, a rule and every ranked record of b to w.
func Report(w io.Writer, title string, b *Board) error {
	var sb strings.Builder
	sb.WriteString(TitleLine(title))
	sb.WriteByte('\n')
	sb.WriteString(Rule())
	sb.WriteByte('\n')
	for i, rec := range b.seq.All() {
		sb.WriteString(FormatRow(i, rec))
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("scores: write report: %w", err)
	}
	return nil
}
