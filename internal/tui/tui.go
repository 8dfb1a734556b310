package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todosh/internal/manager"
	"github.com/idilsaglam/todosh/internal/model"
	"github.com/idilsaglam/todosh/internal/ui"
)

var (
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	barStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) line() string {
	box := ui.BoxUnchecked
	if i.item.Completed {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s  %s", box, i.item.Title, ui.FormatDate(i.item.DueDate))
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.line() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	box := faintStyle.Render(ui.BoxUnchecked)
	title := it.item.Title
	if it.item.Completed {
		box = checkedStyle.Render(ui.BoxChecked)
		title = ui.DoneStyle.Render(title)
	}
	due := faintStyle.Render(ui.FormatDate(it.item.DueDate))
	line := fmt.Sprintf("%s %s  %s", box, title, due)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type modelTUI struct {
	mgr  *manager.Manager
	list list.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// A failed persist ends the session; the error travels out of Run.
	fatal error
}

func toListItems(items []model.Item) []list.Item {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	return li
}

func header(mgr *manager.Manager) string {
	done := len(mgr.Filter(manager.FilterCompleted))
	pending := len(mgr.Filter(manager.FilterActive))
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Todos"),
		checkedStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), mgr.Len(),
	)
}

// Run opens the full-screen list. Every edit goes through the manager, so
// each change hits the data file immediately, same as the line loop.
func Run(mgr *manager.Manager) error {
	l := list.New(toListItems(mgr.Filter(manager.FilterAll)), itemDelegate{}, 0, 0)
	l.Title = header(mgr)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind, delBind} }

	m := modelTUI{mgr: mgr, list: l}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item title..."
	m.ti.CharLimit = 200

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(modelTUI); ok && fm.fatal != nil {
		return fm.fatal
	}
	return nil
}

func (m *modelTUI) reload() {
	m.list.SetItems(toListItems(m.mgr.Filter(manager.FilterAll)))
	m.list.Title = header(m.mgr)
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				if _, err := m.mgr.Create(title, nil); err != nil {
					m.fatal = err
					return m, tea.Quit
				}
				m.reload()
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if li, ok := m.list.SelectedItem().(listItem); ok {
				if err := m.mgr.Toggle(li.item.ID); err != nil {
					m.fatal = err
					return m, tea.Quit
				}
				m.reload()
			}
			return m, nil
		case "d":
			if li, ok := m.list.SelectedItem().(listItem); ok {
				if err := m.mgr.Delete(li.item.ID); err != nil {
					m.fatal = err
					return m, tea.Quit
				}
				m.reload()
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += ": " + errStyle.Render(m.addErr)
		}
		content += "\n" + barStyle.Render(title+"\n"+m.ti.View())
	}
	return content
}
