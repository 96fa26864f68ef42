package form

import (
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// ANSI colors used by the default styles
var (
	RedColor  = lipgloss.Color("1")
	CyanColor = lipgloss.Color("6")
)

// FieldBuffer holds the label and the editable value of one field.
type FieldBuffer struct {
	name  string
	value []rune
}

// NewFieldBuffer creates a field with a pre-filled value.
func NewFieldBuffer(name, value string) FieldBuffer {
	return FieldBuffer{name: name, value: []rune(value)}
}

// Name returns the field label
func (fb FieldBuffer) Name() string {
	return fb.name
}

// Value returns the current buffer contents
func (fb FieldBuffer) Value() string {
	return string(fb.value)
}

// Form is the state of an interactive form: its fields, the current
// selection, whether it was submitted, and how fields are validated and
// styled.
//
// The field list must not be empty for navigation to do anything. An empty
// form is accepted but every navigation call on it is a no-op.
type Form struct {
	fields    []FieldBuffer
	selected  Selection
	submitted bool
	validate  Validator

	defaultStyle lipgloss.Style
	invalidStyle lipgloss.Style
	hoveredStyle lipgloss.Style
	activeStyle  lipgloss.Style
}

// New creates a form with empty fields and the given validator. A nil
// validator falls back to NonEmpty.
func New(names []string, validate Validator) *Form {
	fields := make([]FieldBuffer, len(names))
	for i, name := range names {
		fields[i] = FieldBuffer{name: name}
	}
	f := newForm(fields)
	if validate != nil {
		f.validate = validate
	}
	return f
}

// FromNames creates a form with empty fields and the NonEmpty validator.
func FromNames(names ...string) *Form {
	return New(names, nil)
}

// FromFields creates a form with pre-filled fields and the NonEmpty validator.
func FromFields(fields ...FieldBuffer) *Form {
	copied := make([]FieldBuffer, len(fields))
	for i, fb := range fields {
		copied[i] = FieldBuffer{name: fb.name, value: append([]rune(nil), fb.value...)}
	}
	return newForm(copied)
}

func newForm(fields []FieldBuffer) *Form {
	return &Form{
		fields:       fields,
		selected:     NoSelection(),
		validate:     NonEmpty,
		defaultStyle: DefaultFieldStyle(),
		invalidStyle: DefaultInvalidStyle(),
		hoveredStyle: DefaultHoveredStyle(),
		activeStyle:  DefaultActiveStyle(),
	}
}

// DefaultFieldStyle has no decoration
func DefaultFieldStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

// DefaultInvalidStyle is bold red
func DefaultInvalidStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(RedColor).Bold(true)
}

// DefaultHoveredStyle is cyan
func DefaultHoveredStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CyanColor)
}

// DefaultActiveStyle is bold cyan
func DefaultActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CyanColor).Bold(true)
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.fields)
}

// Field returns field i. It panics if i is out of range.
func (f *Form) Field(i int) FieldBuffer {
	return f.fields[i]
}

// Widget returns a renderer borrowing the form. The renderer must not be kept
// beyond the current render pass.
func (f *Form) Widget() Renderer {
	return Renderer{form: f}
}

// Select replaces the current selection. Indices outside [0, Len) wrap
// modulo Len, and on an empty form the selection is cleared.
func (f *Form) Select(s Selection) {
	f.selected = s.within(len(f.fields))
}

// Selected returns the current selection.
func (f *Form) Selected() Selection {
	return f.selected
}

// Deselect clears the selection.
func (f *Form) Deselect() {
	f.selected = NoSelection()
}

// Submitted reports whether the form has been submitted.
func (f *Form) Submitted() bool {
	return f.submitted
}

// SetSubmitted sets the submitted flag without returning a status.
func (f *Form) SetSubmitted(submitted bool) {
	f.submitted = submitted
}

// SetValidator replaces the validation predicate. A nil validator restores
// NonEmpty.
func (f *Form) SetValidator(v Validator) *Form {
	if v == nil {
		v = NonEmpty
	}
	f.validate = v
	return f
}

// Submit marks the form as submitted and returns the status of every field.
// The selection and the buffers are left untouched.
func (f *Form) Submit() Statuses {
	f.submitted = true
	return f.Status()
}

// Status returns the current status of every field. Validity is recomputed on
// each call and is always true before the form is submitted.
func (f *Form) Status() Statuses {
	status := make(Statuses, len(f.fields))
	for i, fb := range f.fields {
		value := fb.Value()
		status[i] = FieldStatus{
			Name:  fb.name,
			Value: value,
			Valid: !f.submitted || f.validate(value),
		}
	}
	return status
}

// NextField moves the selection to the next field, wrapping at the end.
// From NoSelection it hovers the first field. No-op on an empty form.
func (f *Form) NextField() {
	if len(f.fields) == 0 {
		return
	}
	f.selected = f.selected.next(len(f.fields))
}

// PrevField moves the selection to the previous field, wrapping at the start.
// From NoSelection it hovers the first field. No-op on an empty form.
func (f *Form) PrevField() {
	if len(f.fields) == 0 {
		return
	}
	f.selected = f.selected.prev(len(f.fields))
}

// Input applies one key press. Keys without a meaning in the current mode are
// ignored.
func (f *Form) Input(k Key) {
	if f.selected.Mode() == ModeActive {
		f.inputActive(k, f.selected.index)
		return
	}

	switch {
	case k.Code == KeyEsc:
		f.Deselect()
	case k.isNext():
		f.NextField()
	case k.isPrev():
		f.PrevField()
	case k.Code == KeyEnter:
		if len(f.fields) == 0 {
			return
		}
		if i, ok := f.selected.Index(); ok {
			f.selected = Active(i)
		} else {
			f.selected = Active(0)
		}
	}
}

func (f *Form) inputActive(k Key, i int) {
	switch k.Code {
	case KeyEnter:
		f.NextField()
	case KeyEsc:
		f.selected = Hovered(i)
	case KeyBackspace:
		f.popField(i)
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			f.appendField(i, k.Rune)
		}
	}
}

// AppendSelection appends r to the active field. No-op unless a field is
// active.
func (f *Form) AppendSelection(r rune) {
	if f.selected.Mode() == ModeActive {
		f.appendField(f.selected.index, r)
	}
}

// PopSelection removes the last character of the active field. No-op unless a
// field is active.
func (f *Form) PopSelection() {
	if f.selected.Mode() == ModeActive {
		f.popField(f.selected.index)
	}
}

func (f *Form) appendField(i int, r rune) {
	f.fields[i].value = append(f.fields[i].value, r)
}

func (f *Form) popField(i int) {
	if v := f.fields[i].value; len(v) > 0 {
		f.fields[i].value = v[:len(v)-1]
	}
}

// SetDefaultStyle sets the style of normal fields.
func (f *Form) SetDefaultStyle(s lipgloss.Style) *Form {
	f.defaultStyle = s
	return f
}

// SetInvalidStyle sets the style of invalid fields after submission.
func (f *Form) SetInvalidStyle(s lipgloss.Style) *Form {
	f.invalidStyle = s
	return f
}

// SetHoveredStyle sets the border style of the hovered field.
func (f *Form) SetHoveredStyle(s lipgloss.Style) *Form {
	f.hoveredStyle = s
	return f
}

// SetActiveStyle sets the style of the field being edited.
func (f *Form) SetActiveStyle(s lipgloss.Style) *Form {
	f.activeStyle = s
	return f
}

// DefaultStyle returns the style of normal fields.
func (f *Form) DefaultStyle() lipgloss.Style { return f.defaultStyle }

// InvalidStyle returns the style of invalid fields.
func (f *Form) InvalidStyle() lipgloss.Style { return f.invalidStyle }

// HoveredStyle returns the style of the hovered field.
func (f *Form) HoveredStyle() lipgloss.Style { return f.hoveredStyle }

// ActiveStyle returns the style of the active field.
func (f *Form) ActiveStyle() lipgloss.Style { return f.activeStyle }
