package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// DrawForceProfile creates an ASCII bar chart of the resultant compression
// along the route. The ┆ column marks the buckle initiation force; rows past
// it are flagged.
func DrawForceProfile(profile model.ResultProfile, rows int) string {
	var sb strings.Builder

	if len(profile) == 0 || rows < 1 {
		return ""
	}
	cols := 40

	// Scale to the largest compression shown
	peak := 0.0
	for _, p := range profile {
		peak = math.Max(peak, math.Max(-p.FRes, -p.FB))
	}
	if peak == 0 {
		peak = 1
	}
	scale := float64(cols) / peak

	sb.WriteString("\n")
	sb.WriteString("  RESULTANT AXIAL COMPRESSION\n")
	sb.WriteString("  ───────────────────────────\n\n")

	stride := max(1, (len(profile)-1)/rows)
	for i := 0; i < len(profile); i += stride {
		p := profile[i]
		bar := int(math.Max(0, -p.FRes) * scale)
		mark := int(math.Max(0, -p.FB) * scale)

		cells := []rune(strings.Repeat("█", bar) + strings.Repeat(" ", cols-bar+1))
		if mark > 0 && mark < len(cells) && cells[mark] == ' ' {
			cells[mark] = '┆'
		}

		flag := ""
		if p.FRes < p.FB {
			flag = " ◄ buckle"
		}
		sb.WriteString(fmt.Sprintf("  %9.1f m │%s %8.1f kN%s\n", p.X, string(cells), p.FRes/1000, flag))

		// Always finish on the last point
		if i+stride >= len(profile) && i != len(profile)-1 {
			i = len(profile) - 1 - stride
		}
	}

	sb.WriteString(fmt.Sprintf("\n  ┆ = buckle initiation force F_b = %.1f kN\n", profile[0].FB/1000))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := width(title)
	for _, line := range lines {
		if w := width(line); w > maxLen {
			maxLen = w
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// width counts runes so that °, ² and box characters line up
func width(s string) int {
	return len([]rune(s))
}

func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(0, n-width(s)))
}
