package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"

	"github.com/piwi3910/apsuite/internal/engine"
)

// Report is the JSON document printed by the solve commands.
type Report struct {
	RunID      string   `json:"run_id"`
	Family     string   `json:"family"`
	Algorithm  string   `json:"algorithm"`
	Objective  float64  `json:"objective"`
	LowerBound float64  `json:"lower_bound"`
	Ratio      *float64 `json:"ratio"`
	Gap        *float64 `json:"gap"`
	RuntimeS   float64  `json:"runtime_s"`
	Result     any      `json:"result"`
}

// ComparisonReport is the JSON document printed by compare.
type ComparisonReport struct {
	RunID  string                 `json:"run_id"`
	Family string                 `json:"family"`
	Rows   []engine.ComparisonRow `json:"rows"`
}

func newRunID() string {
	return uuid.New().String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	colorHeader = lipgloss.Color("#874BFD")
	colorBest   = lipgloss.Color("#00FF99")
	colorSub    = lipgloss.Color("#64748B")

	headerStyle = lipgloss.NewStyle().Foreground(colorHeader).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(colorBest).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(colorSub)
)

// formatOptional renders a ratio or gap, "-" when undefined.
func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}

func formatObjective(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

// renderComparison draws rows as a table; rows with the smallest objective
// are highlighted.
func renderComparison(family string, rows []engine.ComparisonRow) string {
	best := -1
	for i, r := range rows {
		if best < 0 || r.Objective < rows[best].Objective {
			best = i
		}
	}

	withLP := false
	for _, r := range rows {
		if r.LPBound != nil {
			withLP = true
		}
	}

	headers := []string{"Algorithm", "Objective", "LB", "Ratio", "Gap"}
	if withLP {
		headers = append(headers, "LP", "Ratio vs LP")
	}
	headers = append(headers, "Time")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)

	for _, r := range rows {
		cells := []string{
			r.Algorithm,
			formatObjective(r.Objective),
			formatObjective(r.LowerBound),
			formatOptional(r.Ratio),
			formatOptional(r.Gap),
		}
		if withLP {
			cells = append(cells, formatOptional(r.LPBound), formatOptional(r.RatioVsLP))
		}
		cells = append(cells, formatDuration(r.Duration))
		t.Row(cells...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row >= 0 && row < len(rows) && rows[best].Objective == rows[row].Objective:
			return bestStyle
		default:
			return cellStyle
		}
	})

	return fmt.Sprintf("%s\n%s\n", headerStyle.Render(family), t.Render())
}
