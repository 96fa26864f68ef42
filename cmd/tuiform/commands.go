package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tuiform/internal/app"
	"github.com/muurk/tuiform/internal/config"
	"github.com/muurk/tuiform/internal/logging"
	"github.com/muurk/tuiform/internal/ui"
)

// Command flags
var (
	forceInit bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	def, path, err := config.Load(configPath)
	if err != nil {
		return err
	}

	f, err := def.Build()
	if err != nil {
		return err
	}

	logging.Info("starting form",
		zap.String("config", path),
		zap.Int("fields", f.Len()),
	)

	p := tea.NewProgram(app.New(def.Title, f), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	return nil
}

// initCmd writes the default form definition
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter form definition",
	Long: `Write the default sign-in form definition to the config file.

The file is written to --config if given, otherwise to the user config
directory. An existing file is left untouched unless --force is set.`,
	Example: `  # Write to the default location
  tuiform init

  # Write somewhere else, replacing any existing file
  tuiform init --config ./form.yaml --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	written, err := config.DefaultDefinition().Save(path)
	if err != nil {
		return err
	}

	logging.Info("wrote form definition", zap.String("path", written))
	fmt.Printf("%s Wrote form definition to %s\n", ui.SuccessMarker, written)
	return nil
}

// showCmd prints the resolved form definition
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the form definition",
	Long: `Load and validate the form definition, then print its fields and
validation rule without opening the form.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	def, path, err := config.Load(configPath)
	if err != nil {
		if config.IsValidationError(err) {
			fmt.Println(ui.NewFailureResult("Invalid form definition", err, []ui.Detail{{Key: "Config", Value: path}}))
			return errors.New("form definition is invalid")
		}
		return err
	}

	fmt.Println(ui.NewHeader(def.Title, "tuiform show", []ui.Detail{
		{Key: "Config", Value: path},
		{Key: "Fields", Value: strconv.Itoa(len(def.Fields))},
		{Key: "Validation", Value: describeValidation(def.Validation)},
	}))

	_, statErr := os.Stat(path)
	fmt.Println(definitionResult(def, statErr == nil))

	return nil
}

// definitionResult lists the fields of def. A definition that did not come
// from a file is shown as a warning with a hint to create one.
func definitionResult(def *config.Definition, fromFile bool) *ui.Result {
	details := make([]ui.Detail, len(def.Fields))
	for i, f := range def.Fields {
		value := f.Value
		if value == "" {
			value = "(empty)"
		}
		details[i] = ui.Detail{Key: f.Name, Value: value}
	}

	if !fromFile {
		return ui.NewWarningResult("No definition file, showing the default form", details).
			AddDetail("Hint", "run 'tuiform init' to write it")
	}
	return ui.NewSuccessResult("Form definition is valid", details)
}

func describeValidation(v config.Validation) string {
	switch v.Rule {
	case config.RuleMinLength:
		return fmt.Sprintf("%s (%d)", v.Rule, v.MinLength)
	case config.RulePattern:
		if v.MinLength > 0 {
			return fmt.Sprintf("%s (%s, min %d)", v.Rule, v.Pattern, v.MinLength)
		}
		return fmt.Sprintf("%s (%s)", v.Rule, v.Pattern)
	case "":
		return config.RuleNonEmpty
	default:
		return v.Rule
	}
}
