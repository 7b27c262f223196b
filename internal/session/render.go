package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

const ruleWidth = 60

func rule(ch string) string {
	return ruleStyle.Render(strings.Repeat(ch, ruleWidth))
}

func header(title string) string {
	var b strings.Builder
	b.WriteString("\n" + rule("=") + "\n")
	b.WriteString(titleStyle.Render("           "+title) + "\n")
	b.WriteString(rule("=") + "\n")
	return b.String()
}

func renderMenu() string {
	var b strings.Builder
	b.WriteString("\n" + rule("=") + "\n")
	b.WriteString(titleStyle.Render("       HOUSE PRICE PREDICTION SYSTEM") + "\n")
	b.WriteString("         (KC House Dataset — Linear Regression)\n")
	b.WriteString(rule("=") + "\n")
	b.WriteString("  1. Load & Display Dataset Info\n")
	b.WriteString("  2. Select Feature Columns\n")
	b.WriteString("  3. Train Model & Display R-squared Score\n")
	b.WriteString("  4. Predict House Price for New Input\n")
	b.WriteString("  5. View Prediction History\n")
	b.WriteString("  6. Exit\n")
	b.WriteString(rule("=") + "\n")
	return b.String()
}

func warnLine(msg string) string {
	return warnStyle.Render("  [!] " + msg)
}

func okLine(msg string) string {
	return okStyle.Render("  [✓] " + msg)
}

// headTable renders column headers and rows as a fixed-width text table for
// the first-rows preview.
func headTable(columns []string, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	var b strings.Builder
	for i, c := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%*s", widths[i], c)
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i := range columns {
			if i > 0 {
				b.WriteString("  ")
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			fmt.Fprintf(&b, "%*s", widths[i], cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}
