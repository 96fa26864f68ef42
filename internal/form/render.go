package form

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FieldHeight is the number of rows a field occupies: a bordered single line.
const FieldHeight = 3

// RenderType is the visual class of a field.
type RenderType int

const (
	RenderNormal RenderType = iota
	RenderInvalid
	RenderHovered
	RenderActive
)

// String returns a human-readable name for the render type
func (t RenderType) String() string {
	switch t {
	case RenderNormal:
		return "normal"
	case RenderInvalid:
		return "invalid"
	case RenderHovered:
		return "hovered"
	case RenderActive:
		return "active"
	default:
		return fmt.Sprintf("RenderType(%d)", t)
	}
}

// ResolveRenderType picks the visual class of field i. Active beats hovered,
// hovered beats invalid, invalid beats normal.
func ResolveRenderType(sel Selection, i int, submitted, valid bool) RenderType {
	switch {
	case sel.IsActive(i):
		return RenderActive
	case sel.IsHovered(i):
		return RenderHovered
	case submitted && !valid:
		return RenderInvalid
	default:
		return RenderNormal
	}
}

// FieldView describes how one field is drawn.
type FieldView struct {
	Title   string
	Content string
	Type    RenderType
}

// Renderer draws a form. It only reads from the form it borrows.
type Renderer struct {
	form *Form
}

// Plan returns one view per field, in display order. Control characters in
// titles and values are shown as spaces so every field stays on one line.
func (r Renderer) Plan() []FieldView {
	sel := r.form.Selected()
	submitted := r.form.Submitted()

	status := r.form.Status()
	views := make([]FieldView, len(status))
	for i, fs := range status {
		views[i] = FieldView{
			Title:   singleLine(fs.Name),
			Content: singleLine(fs.Value),
			Type:    ResolveRenderType(sel, i, submitted, fs.Valid),
		}
	}
	return views
}

// Layout splits area into one slot per field and a trailing filler slot.
func (r Renderer) Layout(area Rect) []Rect {
	constraints := make([]Constraint, 0, r.form.Len()+1)
	for range r.form.Len() {
		constraints = append(constraints, Length(FieldHeight))
	}
	constraints = append(constraints, Fill())
	return SplitVertical(area, constraints)
}

// Render draws the form into area and returns the frame, one line per row.
func (r Renderer) Render(area Rect) string {
	if area.Empty() {
		return ""
	}

	views := r.Plan()
	slots := r.Layout(area)

	lines := make([]string, 0, area.Height)
	for i, view := range views {
		lines = append(lines, r.renderField(slots[i], view)...)
	}

	filler := slots[len(slots)-1]
	for range filler.Height {
		lines = append(lines, strings.Repeat(" ", filler.Width))
	}

	return strings.Join(lines, "\n")
}

func (r Renderer) renderField(area Rect, view FieldView) []string {
	if area.Empty() {
		return nil
	}

	var lines []string
	switch {
	case area.Width < 2:
		// too narrow for a border
	case view.Type == RenderNormal:
		lines = r.renderNormal(area, view)
	case view.Type == RenderInvalid:
		lines = r.renderInvalid(area, view)
	case view.Type == RenderHovered:
		lines = r.renderHovered(area, view)
	case view.Type == RenderActive:
		lines = r.renderActive(area, view)
	default:
		lines = r.renderNormal(area, view)
	}

	if len(lines) > area.Height {
		lines = lines[:area.Height]
	}
	for len(lines) < area.Height {
		lines = append(lines, strings.Repeat(" ", area.Width))
	}
	return lines
}

// singleLine replaces control characters with spaces.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func (r Renderer) renderNormal(area Rect, view FieldView) []string {
	return drawBlock(area.Width, view.Title, view.Content, r.form.DefaultStyle(), lipgloss.NewStyle())
}

func (r Renderer) renderHovered(area Rect, view FieldView) []string {
	return drawBlock(area.Width, view.Title, view.Content, r.form.HoveredStyle(), lipgloss.NewStyle())
}

func (r Renderer) renderActive(area Rect, view FieldView) []string {
	cursor := lipgloss.NewStyle().Reverse(true).Render(" ")
	style := r.form.ActiveStyle()
	return drawBlock(area.Width, view.Title, view.Content+cursor, style, style)
}

func (r Renderer) renderInvalid(area Rect, view FieldView) []string {
	style := r.form.InvalidStyle()
	return drawBlock(area.Width, view.Title, view.Content, style, style)
}

// drawBlock draws a rounded box with the title set into the top border and
// body on the single inner line. Text wider than the box is truncated. width
// must be at least 2.
func drawBlock(width int, title, body string, borderStyle, titleStyle lipgloss.Style) []string {
	b := lipgloss.RoundedBorder()
	inner := width - 2

	title = ansi.Truncate(title, inner, "")
	top := borderStyle.Render(b.TopLeft) +
		titleStyle.Render(title) +
		borderStyle.Render(strings.Repeat(b.Top, inner-ansi.StringWidth(title))+b.TopRight)

	body = ansi.Truncate(body, inner, "")
	middle := borderStyle.Render(b.Left) +
		body + strings.Repeat(" ", inner-ansi.StringWidth(body)) +
		borderStyle.Render(b.Right)

	bottom := borderStyle.Render(b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight)

	return []string{top, middle, bottom}
}
