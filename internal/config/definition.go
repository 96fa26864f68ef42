package config

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuiform/internal/form"
)

// CurrentVersion is the only definition format version understood.
const CurrentVersion = 1

// Validation rules
const (
	RuleNonEmpty  = "non-empty"
	RuleMinLength = "min-length"
	RulePattern   = "pattern"
)

// Definition describes a form: its title, fields, validation rule and styles.
type Definition struct {
	Version    int        `yaml:"version"`
	Title      string     `yaml:"title,omitempty"`
	Fields     []Field    `yaml:"fields"`
	Validation Validation `yaml:"validation,omitempty"`
	Styles     Styles     `yaml:"styles,omitempty"`
}

// Field is one labeled field with an optional pre-filled value.
type Field struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

// Validation selects the predicate applied to every field on submission.
type Validation struct {
	Rule      string `yaml:"rule,omitempty"`       // non-empty (default), min-length, pattern
	MinLength int    `yaml:"min_length,omitempty"` // For min-length, optional with pattern
	Pattern   string `yaml:"pattern,omitempty"`    // For pattern, Go regexp syntax
}

// Styles overrides the default field styles. Nil entries keep the defaults.
type Styles struct {
	Default *StyleOverride `yaml:"default,omitempty"`
	Invalid *StyleOverride `yaml:"invalid,omitempty"`
	Hovered *StyleOverride `yaml:"hovered,omitempty"`
	Active  *StyleOverride `yaml:"active,omitempty"`
}

// StyleOverride is a serializable subset of a lipgloss style.
type StyleOverride struct {
	Foreground string `yaml:"foreground,omitempty"` // ANSI number or hex color
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
}

// Style converts the override into a lipgloss style.
func (s StyleOverride) Style() lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline)
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	return style
}

// DefaultDefinition returns the sign-in form used when no file exists.
func DefaultDefinition() *Definition {
	return &Definition{
		Version: CurrentVersion,
		Title:   "Sign in",
		Fields: []Field{
			{Name: "Account"},
			{Name: "Username / Email"},
			{Name: "Password"},
		},
		Validation: Validation{Rule: RuleNonEmpty},
	}
}

// Validate checks the definition and reports every problem at once.
func (d *Definition) Validate() error {
	var problems []string

	if d.Version != CurrentVersion {
		problems = append(problems, fmt.Sprintf("unsupported version %d (expected %d)", d.Version, CurrentVersion))
	}

	if len(d.Fields) == 0 {
		problems = append(problems, "at least one field is required")
	}
	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		if f.Name == "" {
			problems = append(problems, fmt.Sprintf("field %d: name cannot be empty", i+1))
			continue
		}
		if seen[f.Name] {
			problems = append(problems, fmt.Sprintf("field %d: duplicate name %q", i+1, f.Name))
		}
		seen[f.Name] = true
	}

	if _, err := d.Validation.Validator(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return NewValidationError(problems...)
	}
	return nil
}

// Validator builds the form validator for the rule.
func (v Validation) Validator() (form.Validator, error) {
	switch v.Rule {
	case "", RuleNonEmpty:
		return form.NonEmpty, nil
	case RuleMinLength:
		if v.MinLength < 1 {
			return nil, fmt.Errorf("validation: min_length must be at least 1, got %d", v.MinLength)
		}
		return form.MinLength(v.MinLength), nil
	case RulePattern:
		if v.Pattern == "" {
			return nil, fmt.Errorf("validation: pattern cannot be empty")
		}
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return nil, fmt.Errorf("validation: invalid pattern: %w", err)
		}
		if v.MinLength > 0 {
			return form.All(form.MinLength(v.MinLength), form.MatchPattern(re)), nil
		}
		return form.MatchPattern(re), nil
	default:
		return nil, fmt.Errorf("validation: unknown rule %q (want %s, %s or %s)", v.Rule, RuleNonEmpty, RuleMinLength, RulePattern)
	}
}

// Build validates the definition and creates the form it describes.
func (d *Definition) Build() (*form.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	validator, err := d.Validation.Validator()
	if err != nil {
		return nil, err
	}

	fields := make([]form.FieldBuffer, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = form.NewFieldBuffer(f.Name, f.Value)
	}

	f := form.FromFields(fields...).SetValidator(validator)

	if s := d.Styles.Default; s != nil {
		f.SetDefaultStyle(s.Style())
	}
	if s := d.Styles.Invalid; s != nil {
		f.SetInvalidStyle(s.Style())
	}
	if s := d.Styles.Hovered; s != nil {
		f.SetHoveredStyle(s.Style())
	}
	if s := d.Styles.Active; s != nil {
		f.SetActiveStyle(s.Style())
	}

	return f, nil
}

// FieldNames returns the field labels in order.
func (d *Definition) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}
