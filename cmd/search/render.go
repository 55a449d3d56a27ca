package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	searchUC "elastic-views/internal/usecase/search"
)

// textStyles are bound to the output writer so colours are dropped when it
// is not a terminal.
type textStyles struct {
	title lipgloss.Style
	score lipgloss.Style
	meta  lipgloss.Style
	empty lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		score: r.NewStyle().Foreground(lipgloss.Color("214")),
		meta:  r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		empty: r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// renderText writes a human-readable result page.
func renderText(w io.Writer, data *searchUC.Data) error {
	st := newTextStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render(fmt.Sprintf("%d results for %q in %s", data.TotalResults, data.Term, data.Index)))
	b.WriteString("\n\n")

	if len(data.Results) == 0 {
		b.WriteString(st.empty.Render("No results"))
		b.WriteString("\n")
	}

	for i, rec := range data.Results {
		n := data.Page.StartIndex() + int64(i)
		label := rec.ID
		if rec.HasLink() {
			label = rec.Name + "  " + st.meta.Render(rec.URL)
		}
		fmt.Fprintf(&b, "%3d. %s %s\n", n, st.score.Render(fmt.Sprintf("[%.3f]", rec.Score)), label)
	}

	b.WriteString("\n")
	b.WriteString(st.meta.Render(fmt.Sprintf("page %d of %d", data.Page.Number, data.Page.NumPages)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
