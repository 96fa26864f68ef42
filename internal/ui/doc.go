// Package ui provides the shared lipgloss styling used around the form: the
// color palette, terminal size helpers, command headers and result boxes.
//
// The form widget itself lives in package form and only depends on lipgloss
// styles passed to it. This package is for everything drawn next to it: the
// title bar of the demo application, the box listing submitted values, and
// the summary printed by the show command.
//
// # Components
//
//   - Header: title, command line and ordered parameters in a rounded box
//   - Result: success, failure or warning box with ordered details
//
// Both render to plain strings so they can be printed directly or embedded in
// a Bubble Tea View.
package ui
