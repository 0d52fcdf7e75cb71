// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/sapling/render"
)

const (
	focusPrompt = iota
	focusHistory
	focusTree
	focusCount
)

const maxLogLines = 200

// Model is the explorer state
type Model struct {
	ready bool

	textInput    textinput.Model
	historyList  list.Model
	treeViewport viewport.Model
	logViewport  viewport.Model

	session   *Session
	helpCache *cache.Cache

	focusIndex int
	showHelp   bool
	helpTopic  int
	logLines   []string

	styles     *Styles
	treeStyles *render.Styles

	width  int
	height int
}

// Styles holds the explorer chrome styling
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// historyItem is an executed command in the history list
type historyItem struct {
	command string
}

func (i historyItem) FilterValue() string { return i.command }
func (i historyItem) Title() string       { return i.command }
func (i historyItem) Description() string { return "" }

// InitialModel builds the explorer around an existing session
func InitialModel(session *Session, hc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30, remove 20, random 50, check..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	historyList := list.New([]list.Item{}, delegate, 0, 0)
	historyList.SetShowTitle(false)
	historyList.SetShowHelp(false)
	historyList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)
	logViewport := viewport.New(0, 0)

	m := Model{
		textInput:    ti,
		historyList:  historyList,
		treeViewport: treeViewport,
		logViewport:  logViewport,
		session:      session,
		helpCache:    hc,
		focusIndex:   focusPrompt,
		styles:       NewStyles(),
		treeStyles:   render.NewStyles(),
	}
	m.appendLog(m.styles.HelpDesc.Render("type `help` for commands, f1 for keys"))
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		case "f2":
			if m.showHelp {
				m.helpTopic = (m.helpTopic + 1) % len(helpTopics)
				m.refreshTree()
			}
			return m, nil
		case "ctrl+y":
			var b strings.Builder
			if err := render.DOT[int](&b, m.session.Tree(), render.DOTOptions{Name: m.session.cfg.Render.GraphName}); err != nil {
				m.appendError(err)
				return m, nil
			}
			m.copy("DOT source", b.String())
			return m, nil
		case "ctrl+z":
			m.copy("drawing", render.Sideways[int](m.session.Tree(), render.TextOptions{Plain: true}))
			return m, nil
		case "enter":
			switch m.focusIndex {
			case focusPrompt:
				m.execute(m.textInput.Value())
				m.textInput.SetValue("")
				return m, nil
			case focusHistory:
				if item, ok := m.historyList.SelectedItem().(historyItem); ok {
					m.textInput.SetValue(item.command)
					m.textInput.CursorEnd()
					m.setFocus(focusPrompt)
				}
				return m, nil
			}
		case "pgup":
			vp := m.focusedViewport()
			vp.LineUp(vp.Height / 2)
			return m, nil
		case "pgdown":
			vp := m.focusedViewport()
			vp.LineDown(vp.Height / 2)
			return m, nil
		}

		switch m.focusIndex {
		case focusPrompt:
			m.textInput, cmd = m.textInput.Update(msg)
		case focusHistory:
			m.historyList, cmd = m.historyList.Update(msg)
		case focusTree:
			m.treeViewport, cmd = m.treeViewport.Update(msg)
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTree()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(i int) {
	m.focusIndex = i
	if i == focusPrompt {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func (m *Model) focusedViewport() *viewport.Model {
	if m.focusIndex == focusTree {
		return &m.treeViewport
	}
	return &m.logViewport
}

// execute runs one command line against the session and updates every pane
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.appendLog(m.styles.Title.Render("avl> " + line))

	out, err := m.session.Exec(line)
	if err != nil {
		m.appendError(err)
		return
	}
	if out != "" {
		m.appendLog(out)
	}

	history := m.session.History()
	items := make([]list.Item, len(history))
	for i, c := range history {
		items[len(history)-1-i] = historyItem{command: c}
	}
	m.historyList.SetItems(items)
	m.refreshTree()
}

func (m *Model) appendLog(text string) {
	m.logLines = append(m.logLines, strings.Split(text, "\n")...)
	if over := len(m.logLines) - maxLogLines; over > 0 {
		m.logLines = m.logLines[over:]
	}
	m.logViewport.SetContent(strings.Join(m.logLines, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) appendError(err error) {
	m.appendLog(m.styles.ErrorMessage.Render("✗ " + err.Error()))
}

func (m *Model) copy(what, text string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.appendError(fmt.Errorf("copy %s: %w", what, err))
		return
	}
	m.appendLog(m.styles.SuccessMessage.Render("📋 copied " + what + " to clipboard"))
}

// refreshTree redraws the right pane: the tree, or the help page when open
func (m *Model) refreshTree() {
	if m.showHelp {
		topic := helpTopics[m.helpTopic].Name
		page, err := renderHelpPage(m.helpCache, topic, max(m.treeViewport.Width-2, 20), renderHelpTopic)
		if err != nil {
			page = err.Error()
		}
		m.treeViewport.SetContent(page)
		m.treeViewport.GotoTop()
		return
	}
	m.treeViewport.SetContent(render.Sideways[int](m.session.Tree(), render.TextOptions{
		Plain:  m.session.cfg.Render.Plain,
		Styles: m.treeStyles,
	}))
}

func (m *Model) updateLayout() {
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6
	historyHeight := bodyHeight / 3
	logHeight := bodyHeight - historyHeight - 3

	m.textInput.Width = leftWidth - 10
	m.historyList.SetSize(leftWidth-2, max(historyHeight-2, 1))
	m.logViewport.Width = leftWidth - 2
	m.logViewport.Height = max(logHeight-2, 1)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = max(bodyHeight-1, 1)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focused bool, width int, title string, body string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.Width(width).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(title),
			body,
		))
	}

	prompt := box(m.focusIndex == focusPrompt, leftWidth, " 🌱 Command", m.textInput.View())
	history := box(m.focusIndex == focusHistory, leftWidth, " 📋 History", m.historyList.View())
	output := box(false, leftWidth, " 🧾 Output", m.logViewport.View())

	rightTitle := " 🌳 Tree  " + m.session.Summary()
	if m.showHelp {
		rightTitle = " 📖 Help: " + helpTopics[m.helpTopic].Name
	}
	tree := box(m.focusIndex == focusTree, rightWidth, rightTitle, m.treeViewport.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, prompt, history, output),
		tree,
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderKeyHelp())
}

func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "tab", "f1", "f2", "ctrl+y", "ctrl+z", "esc"}
	descs := []string{"run", "switch focus", "help", "next topic", "copy DOT", "copy drawing", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the explorer on session
func runExplorer(session *Session, hc *cache.Cache) error {
	program := tea.NewProgram(
		InitialModel(session, hc),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && len(m.session.History()) > 0 {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", Green, m.session.Summary(), Reset)
	}
	return nil
}
