// Package tui provides the Terminal User Interface for the daylog
// application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/daylog/internal/cli"
	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/service"
	"github.com/xolan/daylog/internal/tui/ui"
)

// sessionLoadedMsg carries the current session's entries and the
// persisted activity log size
type sessionLoadedMsg struct {
	entries      []entry.Entry
	historyTotal int
	err          error
}

// entryAddedMsg reports the outcome of logging an entry
type entryAddedMsg struct {
	entry *entry.Entry
	err   error
}

// sessionSavedMsg reports the outcome of saving the session
type sessionSavedMsg struct {
	result *service.SaveResult
	err    error
}

// sessionDiscardedMsg reports the outcome of discarding the session
type sessionDiscardedMsg struct {
	count int
	err   error
}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	width        int
	height       int
	entries      []entry.Entry
	historyTotal int
	status       string
	isError      bool

	input textinput.Model

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)

	input := textinput.New()
	input.Placeholder = "9h30 studied statistics"
	input.Focus()

	return Model{
		services:      services,
		input:         input,
		themeProvider: themeProvider,
		styles:        themeProvider.Styles(),
		keys:          ui.DefaultKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadSession())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Save):
			return m, m.saveSession()

		case key.Matches(msg, m.keys.Discard):
			return m, m.discardSession()

		case key.Matches(msg, m.keys.CycleTheme):
			themeName := m.themeProvider.NextTheme()
			m.styles = m.themeProvider.Styles()
			m.status = fmt.Sprintf("Theme: %s", m.themeProvider.CurrentDisplayName())
			m.isError = false
			return m, m.saveThemeConfig(themeName)

		case key.Matches(msg, m.keys.Submit):
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, m.addEntry(raw)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		return m, nil

	case sessionLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Failed to load session: %v", msg.err)
			m.isError = true
			return m, nil
		}
		m.entries = msg.entries
		m.historyTotal = msg.historyTotal
		return m, nil

	case entryAddedMsg:
		if msg.err != nil {
			m.status = addErrorStatus(msg.err)
			m.isError = true
			return m, nil
		}
		m.status = fmt.Sprintf("Logged: %s", cli.FormatEntry(*msg.entry))
		m.isError = false
		return m, m.loadSession()

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = saveErrorStatus(msg.err)
			m.isError = true
			return m, nil
		}
		m.status = fmt.Sprintf("Saved %d %s to the activity log",
			len(msg.result.Records), cli.Pluralize("period", len(msg.result.Records)))
		m.isError = false
		return m, m.loadSession()

	case sessionDiscardedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Failed to discard session: %v", msg.err)
			m.isError = true
			return m, nil
		}
		word := "entries"
		if msg.count == 1 {
			word = "entry"
		}
		m.status = fmt.Sprintf("Discarded %d %s", msg.count, word)
		m.isError = false
		return m, m.loadSession()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("daylog: current session"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.EmptySession.Render("No entries yet. Type one below to get started."))
		b.WriteString("\n")
	} else {
		for _, e := range m.entries {
			b.WriteString(fmt.Sprintf("%s%s\n",
				m.styles.EntryTime.Render(e.Time.String()),
				m.styles.EntryActivity.Render(e.Activity)))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpDesc.Render(fmt.Sprintf("%d %s in the activity log",
		m.historyTotal, cli.Pluralize("period", m.historyTotal))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n")

	if m.status != "" {
		if m.isError {
			b.WriteString(m.styles.StatusError.Render(m.status))
		} else {
			b.WriteString(m.styles.StatusInfo.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return m.styles.App.Render(b.String())
}

// renderHelp renders the key help line
func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Submit,
		m.keys.Save,
		m.keys.Discard,
		m.keys.CycleTheme,
		m.keys.Quit,
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s",
			m.styles.HelpKey.Render(b.Help().Key),
			m.styles.HelpDesc.Render(b.Help().Desc)))
	}
	return strings.Join(parts, "  ")
}

// addErrorStatus converts an add failure into a status line
func addErrorStatus(err error) string {
	return fmt.Sprintf("Not logged: %v. Start with a time like '9h30' or '09:30'.", err)
}

// saveErrorStatus converts a save failure into a status line
func saveErrorStatus(err error) string {
	return fmt.Sprintf("Not saved: %v", err)
}

// loadSession reads the current session's entries and the size of the
// persisted activity log
func (m Model) loadSession() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.Entry.List()
		msg := sessionLoadedMsg{entries: entries, err: err}
		if hist, herr := m.services.Log.History(service.DateRangeSpec{Type: service.DateRangeAll}); herr == nil {
			msg.historyTotal = hist.Total
		}
		return msg
	}
}

// addEntry logs a new entry from the input line
func (m Model) addEntry(raw string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Entry.Add(raw)
		return entryAddedMsg{entry: e, err: err}
	}
}

// saveSession writes the session to the activity log
func (m Model) saveSession() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Log.Save()
		return sessionSavedMsg{result: result, err: err}
	}
}

// discardSession drops the session without saving
func (m Model) discardSession() tea.Cmd {
	return func() tea.Msg {
		count, err := m.services.Entry.Discard()
		return sessionDiscardedMsg{count: count, err: err}
	}
}

// saveThemeConfig persists the chosen theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
