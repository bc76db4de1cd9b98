package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bastiangx/codeserve/pkg/suggest"
)

const (
	maxLabelWidth = 40
	maxDocWidth   = 60
)

var (
	fg     = lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	subtle = lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}
	iris   = lipgloss.AdaptiveColor{Light: "#907aa9", Dark: "#c4a7e7"}
	foam   = lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#9ccfd8"}
	gold   = lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"}
	love   = lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}
	hlMed  = lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"}
)

type styles struct {
	title    lipgloss.Style
	prompt   lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	label    lipgloss.Style
	selected lipgloss.Style
	warn     lipgloss.Style
	err      lipgloss.Style
	kinds    map[suggest.Kind]lipgloss.Style
}

// newStyles binds the palette to w so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(fg),
		prompt:   r.NewStyle().Foreground(iris),
		muted:    r.NewStyle().Foreground(subtle),
		accent:   r.NewStyle().Foreground(foam),
		label:    r.NewStyle().Foreground(fg),
		selected: r.NewStyle().Bold(true).Foreground(fg).Background(hlMed),
		warn:     r.NewStyle().Foreground(gold),
		err:      r.NewStyle().Foreground(love),
		kinds: map[suggest.Kind]lipgloss.Style{
			suggest.KindKeyword:    r.NewStyle().Foreground(iris),
			suggest.KindSnippet:    r.NewStyle().Foreground(gold),
			suggest.KindBufferWord: r.NewStyle().Foreground(foam),
		},
	}
}

// row renders one popup line: index, padded label, kind and optionally the doc.
func (s styles) row(i int, it suggest.Item, width int, selected, showDocs bool) string {
	marker := "  "
	labelStyle := s.label
	if selected {
		marker = "> "
		labelStyle = s.selected
	}

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteString(fmt.Sprintf("%2d. ", i+1))
	sb.WriteString(labelStyle.Render(padRight(runewidth.Truncate(it.Display(), width, "…"), width)))
	sb.WriteString("  ")
	sb.WriteString(s.kinds[it.Kind].Render(padRight(it.Kind.String(), 7)))
	if showDocs && it.Doc != "" {
		sb.WriteString("  ")
		sb.WriteString(s.muted.Render(runewidth.Truncate(firstLine(it.Doc), maxDocWidth, "…")))
	}
	return sb.String()
}

func labelWidth(items []suggest.Item) int {
	w := 0
	for _, it := range items {
		w = max(w, runewidth.StringWidth(it.Display()))
	}
	return min(w, maxLabelWidth)
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
