// Package render draws numerological reports as terminal tables.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/export"
)

// Lookup resolves labels and single-digit interpretations.
// *interpret.Catalog satisfies it.
type Lookup interface {
	Msg(key string) string
	MsgWith(key string, data map[string]any) string
	Digit(table string, n int) (string, bool)
}

var (
	colorPrimary = lipgloss.Color("#8BC34A")
	colorAccent  = lipgloss.Color("#FFB300")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#2a3850")
)

// Styles holds the lipgloss styles of every report element.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Active  lipgloss.Style
	Border  lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginTop(1),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Active:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		Border:  lipgloss.NewStyle().Foreground(colorBorder),
		Text:    lipgloss.NewStyle().Width(config.RenderWidth),
		Muted:   lipgloss.NewStyle().Italic(true).Foreground(colorMuted).Width(config.RenderWidth),
	}
}

// Renderer turns engine results into printable text.
type Renderer struct {
	Styles Styles
	l      Lookup
}

// New returns a renderer using the default styles.
func New(l Lookup) *Renderer {
	return &Renderer{Styles: DefaultStyles(), l: l}
}

func (r *Renderer) title(key string) string {
	return r.Styles.Title.Render(r.l.Msg(key))
}

// grid draws a bordered table. Rows for which highlight returns true use
// the Active style.
func (r *Renderer) grid(headers []string, rows [][]string, highlight func(row int) bool) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.Styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.Styles.Header
			case highlight != nil && highlight(row):
				return r.Styles.Active
			default:
				return r.Styles.Cell
			}
		}).
		Render()
}

// paragraph wraps text, dropping the markdown emphasis of catalog entries.
func (r *Renderer) paragraph(text string) string {
	return r.Styles.Text.Render(plain(text))
}

func plain(text string) string {
	return strings.ReplaceAll(text, config.MarkMarkdown, "")
}

// Document renders the scalar fields of d as a key/value table. Nested
// tables are skipped; callers render them with their own layout.
func (r *Renderer) Document(titleKey string, d *export.Document) string {
	rows := make([][]string, 0, d.Len())
	for _, f := range d.Fields() {
		v, ok := cell(f.Value)
		if !ok {
			continue
		}
		rows = append(rows, []string{f.Key, v})
	}
	return join(
		r.title(titleKey),
		r.grid([]string{r.l.Msg(config.TKeyColKey), r.l.Msg(config.TKeyColValue)}, rows, nil),
	)
}

func cell(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case []string:
		return strings.Join(x, "\n"), true
	case []*export.Document, nil:
		return "", false
	default:
		return fmt.Sprint(x), true
	}
}

func join(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		sb.WriteString(p)
		if !strings.HasSuffix(p, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
