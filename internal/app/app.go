package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuiform/internal/form"
	"github.com/muurk/tuiform/internal/logging"
	"github.com/muurk/tuiform/internal/ui"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenForm      Screen = "form"
	ScreenSubmitted Screen = "submitted"
)

// Model is the top-level Bubble Tea model around a form
type Model struct {
	Title string
	Form  *form.Form

	CurrentScreen Screen

	// Submission state
	Submission form.Statuses // Values accepted by the last valid submission
	Rejected   []string      // Invalid field names from the last rejected submission

	// UI state
	Width  int
	Height int

	// Help
	Help          help.Model
	NavigateKeys  navigateKeyMap
	EditKeys      editKeyMap
	SubmittedKeys submittedKeyMap
}

// New creates a model showing f on the form screen
func New(title string, f *form.Form) Model {
	width, height := ui.GetTerminalSize()

	return Model{
		Title:         title,
		Form:          f,
		CurrentScreen: ScreenForm,
		Width:         width,
		Height:        height,
		Help:          help.New(),
		NavigateKeys:  newNavigateKeyMap(),
		EditKeys:      newEditKeyMap(),
		SubmittedKeys: newSubmittedKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.CurrentScreen {
		case ScreenSubmitted:
			return m.updateSubmitted(msg)
		default:
			return m.updateForm(msg)
		}
	}

	return m, nil
}

// updateForm handles keys on the form screen. Application keys only apply
// with nothing selected; every key is then forwarded to the form.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Form.Selected().Mode() == form.ModeNone {
		switch {
		case key.Matches(msg, m.NavigateKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.NavigateKeys.Submit):
			return m.submit()
		}
	}

	for _, k := range KeysFromMsg(msg) {
		m.Form.Input(k)
		logging.LogKey(k.String(), m.Form.Selected().String())
	}

	return m, nil
}

// submit validates the form and moves to the submitted screen when every
// field is valid.
func (m Model) submit() (tea.Model, tea.Cmd) {
	status := m.Form.Submit()

	if !status.AllValid() {
		m.Rejected = nil
		for _, i := range status.Invalid() {
			m.Rejected = append(m.Rejected, status[i].Name)
		}
		logging.LogSubmission(false, m.Rejected)
		return m, nil
	}

	logging.LogSubmission(true, nil)
	m.Rejected = nil
	m.Submission = status
	m.Form.Deselect()
	return m.transitionTo(ScreenSubmitted), nil
}

// updateSubmitted handles keys on the submitted screen
func (m Model) updateSubmitted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.SubmittedKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.SubmittedKeys.Back):
		return m.transitionTo(ScreenForm), nil
	}
	return m, nil
}

// transitionTo switches to a new screen
func (m Model) transitionTo(screen Screen) Model {
	logging.LogScreen(string(m.CurrentScreen), string(screen))
	m.CurrentScreen = screen
	return m
}

// View implements tea.Model
func (m Model) View() string {
	switch m.CurrentScreen {
	case ScreenSubmitted:
		return m.renderSubmitted()
	default:
		return m.renderForm()
	}
}

// renderForm draws the title, the form in the remaining space, an optional
// rejection notice, and the help footer.
func (m Model) renderForm() string {
	var top []string
	if m.Title != "" {
		top = append(top, ui.TitleStyle.Render(m.Title))
	}
	if len(m.Rejected) > 0 {
		top = append(top, ui.ErrorMessageStyle.Render(
			fmt.Sprintf(" %s %d field(s) need attention: %s", ui.FailureMarker, len(m.Rejected), strings.Join(m.Rejected, ", ")),
		))
	}

	footer := ui.HelpStyle.Render(m.helpView())

	used := len(top) + lipgloss.Height(footer)
	area := form.Rect{Width: m.Width, Height: max(m.Height-used, 0)}
	body := m.Form.Widget().Render(area)

	parts := append(top, body, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) helpView() string {
	if m.Form.Selected().Mode() == form.ModeActive {
		return m.Help.View(m.EditKeys)
	}
	return m.Help.View(m.NavigateKeys.withSelection(m.Form.Selected()))
}

// renderSubmitted lists the accepted values
func (m Model) renderSubmitted() string {
	details := make([]ui.Detail, len(m.Submission))
	for i, fs := range m.Submission {
		details[i] = ui.Detail{Key: fs.Name, Value: fs.String()}
	}

	result := ui.NewSuccessResult("Form submitted", details).SetWidth(m.Width)

	return lipgloss.JoinVertical(lipgloss.Left,
		result.Render(),
		"",
		ui.HelpStyle.Render(m.Help.View(m.SubmittedKeys)),
	)
}
