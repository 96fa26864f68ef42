// Package form implements an interactive text form for terminal user interfaces.
//
// A Form is an ordered list of labeled single-line fields plus a selection, a
// submitted flag and a validation predicate. The embedding application owns the
// event loop: it decodes terminal events into Keys, feeds them to Form.Input,
// and renders the form every frame through Form.Widget.
//
// # Selection Model
//
// The selection has three modes:
//
//   - NoSelection: nothing is highlighted
//   - Hovered(i): field i is highlighted and will be edited on Enter
//   - Active(i): field i receives typed characters
//
// Navigation wraps around the field list in both directions. Entering
// navigation from NoSelection always lands on the first field.
//
// # Validation
//
// Validity is never stored. Status recomputes it on every call, and before the
// first Submit every field reports valid:
//
//	f := form.New([]string{"Account", "Username", "Password"}, form.NonEmpty)
//	f.Status().AllValid() // true
//	f.Submit().AllValid() // false, all fields are empty
//
// # Rendering
//
// Renderer is a read-only view over a Form. It splits the drawing area into one
// three-line slot per field plus a trailing filler and draws each field as a
// rounded, titled box. The visual class of a field resolves in strict priority
// order: active, hovered, invalid, normal.
//
//	view := f.Widget().Render(form.Rect{Width: 60, Height: 12})
//
// # Thread Safety
//
// A Form is not safe for concurrent use. Input and rendering are expected to
// alternate on a single goroutine, which is what Bubble Tea guarantees for
// Update and View.
package form
