package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

type boardModel struct {
	ctx     context.Context
	planner *engine.Planner

	width  int
	height int

	entries []engine.Entry
	stats   engine.Stats

	showCompleted bool
	sortBy        engine.SortBy
	selected      int

	lastLog string
	err     error
}

type refreshedMsg struct {
	entries []engine.Entry
	stats   engine.Stats
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, planner *engine.Planner) boardModel {
	return boardModel{
		ctx:     ctx,
		planner: planner,
		sortBy:  engine.SortByPriority,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{
			entries: m.planner.List(m.showCompleted, m.sortBy),
			stats:   m.planner.Stats(),
		}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.planner.Complete(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		m.entries = msg.entries
		m.stats = msg.stats
		if m.selected >= len(m.entries) {
			m.selected = len(m.entries) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %d: +%d XP (level %d → %d)", msg.res.TaskID, msg.res.XPGained, msg.res.LevelBefore, msg.res.LevelAfter)
		if len(msg.res.Unlocked) > 0 {
			m.lastLog += " — unlocked: " + strings.Join(msg.res.Unlocked, ", ")
		}
		return m, m.refreshCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Final save on the way out, mirroring save-and-exit.
			if err := m.planner.Save(); err != nil {
				m.lastLog = "Save failed: " + err.Error()
			}
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshing…"
			return m, m.refreshCmd()
		case "tab":
			m.showCompleted = !m.showCompleted
			m.selected = 0
			return m, m.refreshCmd()
		case "s":
			m.sortBy = nextSort(m.sortBy)
			return m, m.refreshCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.showCompleted {
				m.lastLog = "Switch to pending tasks to complete one."
				return m, nil
			}
			if m.selected < 0 || m.selected >= len(m.entries) {
				return m, nil
			}
			e := m.entries[m.selected]
			m.lastLog = fmt.Sprintf("Completing %d…", e.ID)
			return m, m.completeCmd(e.ID)
		}
	}
	return m, nil
}

func nextSort(s engine.SortBy) engine.SortBy {
	switch s {
	case engine.SortByPriority:
		return engine.SortByDue
	case engine.SortByDue:
		return engine.SortByID
	default:
		return engine.SortByPriority
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	bar := ui.ProgressBar(engine.XPIntoLevel(m.stats.XP), engine.XPPerLevel, 30)
	return fmt.Sprintf("Study Planner | Level %d | XP %d %s %d/%d",
		m.stats.Level, m.stats.XP, bar, engine.XPIntoLevel(m.stats.XP), engine.XPPerLevel)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Pending: %d", m.stats.Pending))
	lines = append(lines, fmt.Sprintf("- Completed: %d", m.stats.Completed))
	lines = append(lines, fmt.Sprintf("- Total: %d", m.stats.Total))
	lines = append(lines, "")
	lines = append(lines, "Achievements")
	if len(m.stats.Achievements) == 0 {
		lines = append(lines, "(none yet)")
	} else {
		for _, a := range m.stats.Achievements {
			lines = append(lines, "- "+a)
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- tab: pending/completed")
	lines = append(lines, "- s: cycle sort")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	title := "Pending Tasks"
	if m.showCompleted {
		title = "Completed Tasks"
	}
	out := []string{fmt.Sprintf("%s (sort: %s)", title, m.sortBy)}

	if len(m.entries) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, e := range m.entries {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		due := "no due"
		if e.Task.DueDate != nil {
			due = "due " + e.Task.DueDate.Format("2006-01-02")
		}
		out = append(out, fmt.Sprintf("%s[%d] %s (%s) P%d — %s", cursor, e.ID, e.Task.Title, e.Task.Category, e.Task.Priority, due))
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
