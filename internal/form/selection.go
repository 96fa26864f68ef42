package form

import "fmt"

// Mode identifies which variant a Selection holds.
type Mode int

const (
	ModeNone    Mode = iota // Nothing selected
	ModeHovered             // A field is highlighted
	ModeActive              // A field is being edited
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeHovered:
		return "hovered"
	case ModeActive:
		return "active"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Selection is the current focus of a form. The index is only meaningful for
// ModeHovered and ModeActive. Selections are comparable with ==.
type Selection struct {
	mode  Mode
	index int
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{mode: ModeNone}
}

// Hovered returns a selection highlighting field i.
func Hovered(i int) Selection {
	return Selection{mode: ModeHovered, index: i}
}

// Active returns a selection editing field i.
func Active(i int) Selection {
	return Selection{mode: ModeActive, index: i}
}

// Mode returns the selection variant.
func (s Selection) Mode() Mode {
	return s.mode
}

// Index returns the selected field index. ok is false for NoSelection.
func (s Selection) Index() (index int, ok bool) {
	if s.mode == ModeNone {
		return 0, false
	}
	return s.index, true
}

// IsHovered reports whether field i is the hovered field.
func (s Selection) IsHovered(i int) bool {
	return s.mode == ModeHovered && s.index == i
}

// IsActive reports whether field i is the field being edited.
func (s Selection) IsActive(i int) bool {
	return s.mode == ModeActive && s.index == i
}

// String implements fmt.Stringer
func (s Selection) String() string {
	switch s.mode {
	case ModeHovered:
		return fmt.Sprintf("Hovered(%d)", s.index)
	case ModeActive:
		return fmt.Sprintf("Active(%d)", s.index)
	default:
		return "NoSelection"
	}
}

// next moves the selection forward over n fields.
func (s Selection) next(n int) Selection {
	switch s.mode {
	case ModeNone:
		return Hovered(0)
	case ModeHovered:
		return Hovered((s.index + 1) % n)
	case ModeActive:
		return Active((s.index + 1) % n)
	default:
		panic(fmt.Sprintf("form: unknown selection mode %d", s.mode))
	}
}

// prev moves the selection backward over n fields, wrapping 0 to n-1.
func (s Selection) prev(n int) Selection {
	switch s.mode {
	case ModeNone:
		return Hovered(0)
	case ModeHovered:
		return Hovered((s.index - 1 + n) % n)
	case ModeActive:
		return Active((s.index - 1 + n) % n)
	default:
		panic(fmt.Sprintf("form: unknown selection mode %d", s.mode))
	}
}

// within maps the index into [0, n) modulo n. With no fields every selection
// becomes NoSelection.
func (s Selection) within(n int) Selection {
	if s.mode == ModeNone {
		return s
	}
	if n == 0 {
		return NoSelection()
	}
	s.index = ((s.index % n) + n) % n
	return s
}
