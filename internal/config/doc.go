// Package config loads and saves the YAML definition of a form.
//
// A definition lists the fields (with optional pre-filled values), the
// validation rule applied to every field on submission, and optional overrides
// for the four field styles. Build turns a definition into a *form.Form.
//
// # Configuration File Location
//
// Without an explicit path the definition is read from:
//   - Linux: $XDG_CONFIG_HOME/tuiform/form.yaml or $HOME/.config/tuiform/form.yaml
//   - macOS: $HOME/.config/tuiform/form.yaml
//   - Windows: %LOCALAPPDATA%\tuiform\form.yaml
//
// A missing file at the default location yields DefaultDefinition. A missing
// file at an explicit path is an error.
//
// # Example
//
//	version: 1
//	title: Sign in
//	fields:
//	  - name: Account
//	  - name: Username / Email
//	  - name: Password
//	validation:
//	  rule: min-length
//	  min_length: 3
//	styles:
//	  active:
//	    foreground: "#7D56F4"
//	    bold: true
//
// # Environment
//
// TUIFORM_CONFIG, TUIFORM_LOG_LEVEL and TUIFORM_LOG_FILE provide defaults for
// the matching command line flags (see LoadEnv).
//
// # Security
//
// Values typed into the form are never written back to the definition file.
// Save only persists what the definition already holds.
package config
