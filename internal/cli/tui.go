package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listPaneStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the load order interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context(), openOptions{})
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(newEditorModel(s), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			if m, ok := final.(editorModel); ok && m.saved {
				printSuccess("Saved load order")
				printFile(s.modsCfg)
			}
			return nil
		},
	}
}

// =============================================================================
// editorModel - Interactive load order editor
// =============================================================================

type pane int

const (
	paneActive pane = iota
	paneInactive
)

// editorModel is the bubbletea model of the edit command. It edits the
// session's catalog in place; issues are recomputed after each change to
// the active list, not on every frame.
type editorModel struct {
	s      *session
	pane   pane
	cursor [2]int
	offset [2]int
	height int

	status   string
	statusOK bool
	dirty    bool
	saved    bool
	// confirmQuit is set after the first quit with unsaved changes.
	confirmQuit bool
}

func newEditorModel(s *session) editorModel {
	return editorModel{s: s, height: 12}
}

func (m editorModel) list(p pane) *modlist.List {
	if p == paneActive {
		return m.s.cat.Active
	}
	return m.s.cat.Inactive
}

// selected returns the mod under the cursor of the current pane.
func (m editorModel) selected() (modlist.ID, bool) {
	l := m.list(m.pane)
	i := m.cursor[m.pane]
	if i < 0 || i >= l.Len() {
		return "", false
	}
	return l.At(i).ID, true
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key != "q" && key != "esc" {
			m.confirmQuit = false
		}
		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			if m.dirty && !m.confirmQuit {
				m.confirmQuit = true
				m.setStatus(false, "Unsaved changes; press q again to quit without saving")
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "tab":
			m.pane = 1 - m.pane
			m.clamp()
		case "shift+up", "K":
			m.reorder(-1)
		case "shift+down", "J":
			m.reorder(1)
		case " ", "enter":
			m.toggle()
		case "f":
			m.autofix()
		case "s":
			m.save()
		}
	case tea.WindowSizeMsg:
		// Two tables with headers, borders, help and status lines.
		m.height = (msg.Height - 14) / 2
		if m.height < 3 {
			m.height = 3
		}
		m.scroll(paneActive)
		m.scroll(paneInactive)
	}
	return m, nil
}

func (m *editorModel) setStatus(ok bool, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusOK = ok
}

func (m *editorModel) moveCursor(delta int) {
	m.cursor[m.pane] += delta
	m.clamp()
}

// clamp keeps both cursors inside their lists and in view.
func (m *editorModel) clamp() {
	for _, p := range []pane{paneActive, paneInactive} {
		n := m.list(p).Len()
		if m.cursor[p] >= n {
			m.cursor[p] = n - 1
		}
		if m.cursor[p] < 0 {
			m.cursor[p] = 0
		}
		m.scroll(p)
	}
}

func (m *editorModel) scroll(p pane) {
	if m.cursor[p] < m.offset[p] {
		m.offset[p] = m.cursor[p]
	}
	if m.cursor[p] >= m.offset[p]+m.height {
		m.offset[p] = m.cursor[p] - m.height + 1
	}
}

// changed records a structural edit of the active list.
func (m *editorModel) changed() {
	m.s.refresh()
	m.dirty = true
	m.saved = false
}

func (m *editorModel) reorder(delta int) {
	if m.pane != paneActive {
		return
	}
	id, ok := m.selected()
	if !ok {
		return
	}
	to := m.cursor[paneActive] + delta
	if to < 0 || to >= m.s.cat.Active.Len() {
		return
	}
	if err := m.s.cat.Active.MoveTo(id, to); err != nil {
		m.setStatus(false, "%v", err)
		return
	}
	m.cursor[paneActive] = to
	m.scroll(paneActive)
	m.changed()
}

func (m *editorModel) toggle() {
	id, ok := m.selected()
	if !ok {
		return
	}
	if m.s.cat.Toggle(id) {
		m.setStatus(true, "Activated %s", id)
	} else {
		m.setStatus(true, "Deactivated %s", id)
	}
	m.clamp()
	m.changed()
}

func (m *editorModel) autofix() {
	before := m.s.issues.Len()
	if before == 0 {
		m.setStatus(true, "Nothing to fix")
		return
	}
	if m.s.cfg != nil && m.s.cfg.Anchors {
		modlist.PinAnchors(m.s.cat.Rules, m.s.cat.Active)
		m.s.refresh()
	}
	err := modlist.Autofix(m.s.cat.Rules, m.s.cat.Active, m.s.cat.Inactive, m.s.issues)
	m.clamp()
	m.changed()

	var fe *modlist.FixError
	switch {
	case err == nil:
		m.setStatus(true, "Fixed %d issue(s)", before)
	case errors.As(err, &fe):
		m.setStatus(false, "Autofix stopped: %s", fixStopReason(fe))
	default:
		m.setStatus(false, "Autofix failed: %v", err)
	}
}

func (m *editorModel) save() {
	if err := m.s.save(); err != nil {
		m.setStatus(false, "Not saved: %s", apperrors.UserMessage(err))
		return
	}
	m.dirty = false
	m.saved = true
	m.setStatus(true, "Saved %s", m.s.modsCfg)
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Load Order"))
	b.WriteString("  ")
	if n := m.s.issues.Len(); n > 0 {
		b.WriteString(StyleError.Render(fmt.Sprintf("%d issue(s)", n)))
	} else {
		b.WriteString(StyleSuccess.Render("no issues"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  shift+↑/↓ move  space toggle  tab switch  f fix  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.paneView(paneActive, "Active"))
	b.WriteString("\n")
	b.WriteString(m.paneView(paneInactive, "Inactive"))
	b.WriteString("\n")

	if id, ok := m.selected(); ok && m.pane == paneActive {
		for _, is := range m.s.issues.For(id) {
			b.WriteString("  " + StyleError.Render(iconError+" "+describeIssue(is)) + "\n")
		}
	}
	if m.status != "" {
		style := StyleWarning
		if m.statusOK {
			style = StyleSuccess
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m editorModel) paneView(p pane, title string) string {
	l := m.list(p)
	heading := fmt.Sprintf("%s (%d)", title, l.Len())
	if p == m.pane {
		heading = listPaneStyle.Render("▸ " + heading)
	} else {
		heading = listDimStyle.Render("  " + heading)
	}

	end := min(m.offset[p]+m.height, l.Len())
	rows := [][]string{}
	for i := m.offset[p]; i < end; i++ {
		e := l.At(i)
		cursor := "  "
		if p == m.pane && i == m.cursor[p] {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, strconv.Itoa(i + 1), e.ID.String(), e.Info.Name})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Package ID", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.offset[p] + row
			if idx >= l.Len() {
				return lipgloss.NewStyle()
			}
			isCurrent := p == m.pane && idx == m.cursor[p]
			base := lipgloss.NewStyle()
			if p == paneActive && len(m.s.issues[l.At(idx).ID]) > 0 {
				base = base.Foreground(colorRed)
			} else if p == paneInactive {
				base = base.Foreground(colorGray)
			}
			if isCurrent {
				if p == paneActive && len(m.s.issues[l.At(idx).ID]) > 0 {
					return base.Bold(true)
				}
				return listSelectedStyle
			}
			return base
		})

	return heading + "\n" + t.Render() + "\n" +
		listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.cursor[p]+1, l.Len()), l.Len()))
}
