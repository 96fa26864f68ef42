package form

import "fmt"

// KeyCode is a logical key, already decoded from a terminal event by the
// embedding application.
type KeyCode int

const (
	KeyUnknown   KeyCode = iota // Anything the form does not handle
	KeyRune                     // A typed character, see Key.Rune
	KeyEnter                    // Commit
	KeyEsc                      // Cancel / leave mode
	KeyBackspace                // Delete last character
	KeyUp                       // Previous field
	KeyDown                     // Next field
)

// Navigation runes accepted while no field is being edited.
const (
	NextFieldRune = 'j'
	PrevFieldRune = 'k'
)

// Key is one decoded key press.
type Key struct {
	Code KeyCode
	Rune rune // Set when Code is KeyRune
}

// RuneKey returns the key for a typed character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// CodeKey returns a key without a character payload.
func CodeKey(code KeyCode) Key {
	return Key{Code: code}
}

// String implements fmt.Stringer
func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("KeyCode(%d)", k.Code)
	}
}

func (k Key) isNext() bool {
	return k.Code == KeyDown || (k.Code == KeyRune && k.Rune == NextFieldRune)
}

func (k Key) isPrev() bool {
	return k.Code == KeyUp || (k.Code == KeyRune && k.Rune == PrevFieldRune)
}
