// Package app embeds a form in a Bubble Tea program.
//
// The form package only understands logical keys and rectangles. This package
// is the embedding application: it decodes tea.KeyMsg into form keys, tracks
// the window size, decides what a submission means, and switches between the
// form screen and the submitted screen.
//
// # Screen Flow
//
//  1. Form screen:
//     - j/k or ↑/↓ move between fields, Enter starts editing
//     - While editing, typed characters go into the field, Enter moves to the
//       next field, Esc stops editing
//     - With nothing selected, s submits and q or Esc quits
//     - A rejected submission keeps the form and highlights invalid fields
//  2. Submitted screen:
//     - Lists the submitted values in a success box
//     - Esc or e returns to the form, q quits
//
// # Usage Example
//
//	f := form.FromNames("Account", "Username / Email", "Password")
//	program := tea.NewProgram(app.New("Sign in", f), tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Bubble Tea calls Update and View from one goroutine, so the form is only
// ever mutated between renders.
package app
