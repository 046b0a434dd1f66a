package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/waylist/internal/listing"
	"github.com/rshade/waylist/internal/pagination"
	"github.com/rshade/waylist/internal/source"
)

// Row layout.
const (
	labelWidth       = 32
	collectionWidth  = 14
	placeholderWidth = 24
	minSummaryWidth  = 10
	rowGap           = 2
)

// View renders the model (Bubble Tea interface).
func (m ListModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.showFilter {
		b.WriteString("Collection: " + m.filter.View())
		b.WriteString("\n")
	}

	lines := RenderEntries(m.layout(), m.width)
	bounds := m.pane.Bounds()
	for row := bounds.Top; row < bounds.Bottom(); row++ {
		if row < len(lines) {
			b.WriteString(lines[row])
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m ListModel) renderHeader() string {
	title := "Diagrams"
	if c := m.sess.query.Collection; c != "" {
		title += " / " + c
	}
	header := HeaderStyle.Render(title)
	if m.sess.result.Total > 0 || len(m.sess.result.Items) > 0 {
		header += "  " + SubtleStyle.Render(m.Progress().String())
	}
	return header
}

func (m ListModel) renderStatusBar() string {
	var parts []string
	switch {
	case m.sess.err != nil:
		parts = append(parts, CriticalStyle.Render("Error: "+m.sess.err.Error()))
	case m.sess.result.IsPending:
		parts = append(parts, m.spinner.View()+" Loading...")
	case m.sess.exhausted && len(m.sess.result.Items) == 0:
		parts = append(parts, WarningStyle.Render("No diagrams"))
	case m.sess.exhausted:
		parts = append(parts, SubtleStyle.Render("End of results"))
	}
	parts = append(parts, "j/k: scroll | /: filter | c: collection | r: more | q: quit")
	return StatusBarStyle.Render(strings.Join(parts, "  "))
}

// RenderEntries renders one line per entry followed by a blank sentinel line.
func RenderEntries(layout listing.Layout[source.Diagram], width int) []string {
	lines := make([]string, 0, len(layout.Entries)+1)
	for _, e := range layout.Entries {
		lines = append(lines, renderEntry(e, width))
	}
	if layout.Sentinel {
		lines = append(lines, "")
	}
	return lines
}

func renderEntry(e listing.Entry[source.Diagram], width int) string {
	d, ok := e.Diagram()
	if !ok {
		bar := strings.Repeat("░", placeholderWidth-(e.Index%4)*3) //nolint:mnd // Staggered widths.
		return PlaceholderStyle.Render(bar)
	}

	label := LabelStyle.Width(labelWidth).MaxWidth(labelWidth).Render(truncate(d.Label, labelWidth))
	cols := []string{label}
	used := labelWidth + rowGap

	if e.ShowCollection {
		cols = append(cols, CollectionStyle.Width(collectionWidth).Render(truncate(d.Collection, collectionWidth)))
		used += collectionWidth + rowGap
	}

	summaryWidth := width - used
	if summaryWidth >= minSummaryWidth && d.Summary != "" {
		cols = append(cols, SubtleStyle.Render(truncate(d.Summary, summaryWidth)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cols)...)
}

func joinWithGap(cols []string) []string {
	out := make([]string, 0, len(cols)*2) //nolint:mnd // Column plus gap.
	gap := strings.Repeat(" ", rowGap)
	for i, c := range cols {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, c)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// WritePlain writes the layout without styling, for non-interactive output.
func WritePlain(w io.Writer, layout listing.Layout[source.Diagram], progress pagination.Progress) error {
	for _, e := range layout.Entries {
		var line string
		if d, ok := e.Diagram(); ok {
			line = d.ID + "\t" + d.Label
			if e.ShowCollection {
				line += "\t" + d.Collection
			}
		} else {
			line = "…"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, progress.String())
	return err
}
