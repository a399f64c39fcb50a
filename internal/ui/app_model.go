package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputNewTask
	inputNewColumn
	inputEditTitle
	inputEditDescription
	inputEditDates
	inputToggleTag
)

type prefsSavedMsg struct {
	err error
}

// PreferenceRecorder persists UI state between runs.
type PreferenceRecorder interface {
	Remember(ctx context.Context, prefs domain.Preferences) error
}

type Model struct {
	session *application.BoardSession
	prefs   PreferenceRecorder
	log     logrus.FieldLogger

	board       domain.Board
	preferences domain.Preferences

	activeColumn int
	row          int
	selected     int
	month        time.Time
	day          int
	titleFilter  string

	viewMode    domain.ViewMode
	showDetails bool
	inputMode   inputMode

	textInput textinput.Model
	textArea  textarea.Model

	statusLine string
	dateFormat userDateFormat

	width  int
	height int

	keys keyMap
	now  func() time.Time
}

func NewModel(session *application.BoardSession, prefsRecorder PreferenceRecorder, prefs domain.Preferences, log logrus.FieldLogger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type..."
	ti.CharLimit = 512
	ti.Prompt = "> "

	ta := textarea.New()
	ta.Placeholder = "Markdown..."
	ta.SetHeight(8)
	ta.Prompt = ""

	view := prefs.ViewMode
	if view == "" {
		view = domain.ViewBoard
	}
	now := time.Now().UTC()
	return Model{
		session:     session,
		prefs:       prefsRecorder,
		log:         log,
		board:       session.Snapshot(),
		preferences: prefs,
		month:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		day:         now.Day() - 1,
		viewMode:    view,
		showDetails: prefs.ShowDetails,
		textInput:   ti,
		textArea:    ta,
		dateFormat:  detectUserDateFormat(),
		keys:        newKeyMap(),
		now:         time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.updateInputMode(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textArea.SetWidth(max(20, msg.Width/2-6))
		return m, nil
	case prefsSavedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("save preferences failed")
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleView):
		m.viewMode = nextView(m.viewMode)
		m.ensureSelection()
		return m, m.rememberCmd()
	case key.Matches(msg, m.keys.ToggleDetails):
		m.showDetails = !m.showDetails
		return m, m.rememberCmd()
	case key.Matches(msg, m.keys.Search):
		m.startInput(inputSearch, "Search title", m.titleFilter)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.ClearSearch):
		m.titleFilter = ""
		m.statusLine = ""
		m.ensureSelection()
		return m, nil
	case key.Matches(msg, m.keys.NewTask):
		if len(m.board.Columns) == 0 {
			m.statusLine = "add a column first (C)"
			return m, nil
		}
		m.startInput(inputNewTask, "Task title", "")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.NewColumn):
		m.startInput(inputNewColumn, "Column title", "")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.EditTitle):
		if task, ok := m.currentTask(); ok {
			m.startInput(inputEditTitle, "Title", task.Title)
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.EditDescription):
		if task, ok := m.currentTask(); ok {
			m.inputMode = inputEditDescription
			m.textArea.SetValue(task.Description)
			m.textArea.Focus()
			m.statusLine = "Edit description (Ctrl+S save, Esc cancel)"
		}
		return m, nil
	case key.Matches(msg, m.keys.EditDates):
		if task, ok := m.currentTask(); ok {
			m.startInput(inputEditDates, m.datesPlaceholder(), m.formatDateRange(task))
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleTag):
		if _, ok := m.currentTask(); ok {
			m.startInput(inputToggleTag, "tag or tag:color", "")
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.CyclePriority):
		if task, ok := m.currentTask(); ok {
			next := nextPriority(task.Priority)
			m.apply(fmt.Sprintf("priority %s", next), func(s *application.BoardSession) (domain.Board, error) {
				return s.UpdateTask(task.ID, domain.TaskChanges{Priority: domain.Some(next)})
			})
		}
		return m, nil
	case key.Matches(msg, m.keys.DeleteTask):
		if task, ok := m.currentTask(); ok {
			m.apply("task deleted", func(s *application.BoardSession) (domain.Board, error) {
				return s.DeleteTask(task.ID)
			})
			m.ensureSelection()
		}
		return m, nil
	case key.Matches(msg, m.keys.MoveLeft):
		m.moveAcross(-1)
		return m, nil
	case key.Matches(msg, m.keys.MoveRight):
		m.moveAcross(1)
		return m, nil
	case key.Matches(msg, m.keys.MoveUp):
		m.moveWithin(-1)
		return m, nil
	case key.Matches(msg, m.keys.MoveDown):
		m.moveWithin(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevMonth):
		if m.viewMode == domain.ViewCalendar {
			m.month = m.month.AddDate(0, -1, 0)
			m.ensureSelection()
		}
		return m, nil
	case key.Matches(msg, m.keys.NextMonth):
		if m.viewMode == domain.ViewCalendar {
			m.month = m.month.AddDate(0, 1, 0)
			m.ensureSelection()
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.step(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.step(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.step(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.step(1, 0)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := max(5, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	var mainPane string
	switch m.viewMode {
	case domain.ViewList:
		mainPane = m.renderListView(m.mainWidth(), bodyHeight)
	case domain.ViewCalendar:
		mainPane = m.renderCalendarView(m.mainWidth(), bodyHeight)
	default:
		mainPane = m.renderKanbanView(bodyHeight)
	}

	if detailWidth := m.detailWidth(); detailWidth > 0 {
		mainPane = lipgloss.NewStyle().Width(m.mainWidth()).Render(mainPane)
		mainPane = lipgloss.JoinHorizontal(lipgloss.Top, mainPane, m.renderDetailView(detailWidth, bodyHeight))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, mainPane, footer)
	return lipgloss.NewStyle().Padding(0, 1).Render(content)
}

func (m Model) detailWidth() int {
	if !m.showDetails {
		return 0
	}
	w := max(34, m.width/3)
	if m.width-w-1 < 20 {
		return 0
	}
	return w
}

func (m Model) mainWidth() int {
	if w := m.detailWidth(); w > 0 {
		return m.width - w - 1
	}
	return m.width
}

func (m *Model) startInput(mode inputMode, placeholder, value string) {
	m.inputMode = mode
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(value)
	m.textInput.Focus()
	m.statusLine = placeholder
}

func (m Model) updateInputMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	mode := m.inputMode
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.inputMode = inputNone
			m.textInput.Blur()
			m.textArea.Blur()
			m.statusLine = ""
			return m, nil
		case keyMsg.String() == "ctrl+s" && mode == inputEditDescription:
			m.inputMode = inputNone
			m.textArea.Blur()
			if task, ok := m.currentTask(); ok {
				description := m.textArea.Value()
				m.apply("description updated", func(s *application.BoardSession) (domain.Board, error) {
					return s.UpdateTask(task.ID, domain.TaskChanges{Description: domain.Some(description)})
				})
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Confirm) && mode != inputEditDescription:
			value := strings.TrimSpace(m.textInput.Value())
			m.inputMode = inputNone
			m.textInput.Blur()
			m.submitInput(mode, value)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if mode == inputEditDescription {
		m.textArea, cmd = m.textArea.Update(msg)
	} else {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	m.inputMode = mode
	return m, cmd
}

func (m *Model) submitInput(mode inputMode, value string) {
	m.statusLine = ""
	switch mode {
	case inputSearch:
		m.titleFilter = value
		m.ensureSelection()
	case inputNewTask:
		col := m.board.Columns[m.activeColumn]
		m.apply("task created", func(s *application.BoardSession) (domain.Board, error) {
			b, _, err := s.AddTask(col.ID, value)
			return b, err
		})
		if m.viewMode == domain.ViewBoard {
			m.row = len(m.board.TasksInColumn(col.ID)) - 1
		}
	case inputNewColumn:
		m.apply("column created", func(s *application.BoardSession) (domain.Board, error) {
			b, _, err := s.AddColumn(value)
			return b, err
		})
	case inputEditTitle:
		if task, ok := m.currentTask(); ok {
			m.apply("title updated", func(s *application.BoardSession) (domain.Board, error) {
				return s.UpdateTask(task.ID, domain.TaskChanges{Title: domain.Some(value)})
			})
		}
	case inputEditDates:
		task, ok := m.currentTask()
		if !ok {
			return
		}
		start, end, err := m.parseDateRange(value)
		if err != nil {
			m.statusLine = err.Error()
			return
		}
		m.apply("dates updated", func(s *application.BoardSession) (domain.Board, error) {
			return s.UpdateTask(task.ID, domain.TaskChanges{StartDate: domain.Some(start), EndDate: domain.Some(end)})
		})
	case inputToggleTag:
		if task, ok := m.currentTask(); ok {
			m.toggleTag(task, value)
		}
	}
	m.ensureSelection()
}

// toggleTag adds or removes label on task. "label:color" creates or recolors
// the board tag first.
func (m *Model) toggleTag(task domain.Task, input string) {
	label, color, hasColor := strings.Cut(input, ":")
	label = strings.TrimSpace(label)
	if label == "" {
		m.statusLine = "tag label is required"
		return
	}
	_, known := m.board.GlobalTags[label]
	if hasColor || !known {
		c := domain.TagGray
		if hasColor {
			c = domain.TagColor(strings.ToLower(strings.TrimSpace(color)))
		}
		if !m.apply("", func(s *application.BoardSession) (domain.Board, error) {
			return s.UpsertTag(label, c)
		}) {
			return
		}
	}

	tags := make([]string, 0, len(task.Tags)+1)
	removed := false
	for _, t := range task.Tags {
		if t == label {
			removed = true
			continue
		}
		tags = append(tags, t)
	}
	if !removed {
		tags = append(tags, label)
	}
	status := "tag added"
	if removed {
		status = "tag removed"
	}
	m.apply(status, func(s *application.BoardSession) (domain.Board, error) {
		return s.UpdateTask(task.ID, domain.TaskChanges{Tags: domain.Some(tags)})
	})
}

// apply runs one session mutation and installs the resulting snapshot.
func (m *Model) apply(status string, fn func(*application.BoardSession) (domain.Board, error)) bool {
	board, err := fn(m.session)
	if err != nil {
		m.statusLine = err.Error()
		return false
	}
	m.board = board
	if status != "" {
		m.statusLine = status
	}
	return true
}

// moveAcross drops the selected task on the neighbouring column.
func (m *Model) moveAcross(delta int) {
	if m.viewMode != domain.ViewBoard {
		return
	}
	task, ok := m.currentTask()
	if !ok {
		return
	}
	target := m.activeColumn + delta
	if target < 0 || target >= len(m.board.Columns) {
		return
	}
	col := m.board.Columns[target]
	if m.apply("moved to "+col.Title, func(s *application.BoardSession) (domain.Board, error) {
		return s.MoveTask(task.ID, engine.ToColumn(col.ID))
	}) {
		m.activeColumn = target
		m.row = len(m.board.Columns[target].TaskIDs) - 1
	}
}

// moveWithin swaps the selected task with its neighbour by dropping it on
// that neighbour.
func (m *Model) moveWithin(delta int) {
	if m.viewMode != domain.ViewBoard || len(m.board.Columns) == 0 {
		return
	}
	task, ok := m.currentTask()
	if !ok {
		return
	}
	ids := m.board.Columns[m.activeColumn].TaskIDs
	target := m.row + delta
	if target < 0 || target >= len(ids) {
		return
	}
	over := ids[target]
	if m.apply("", func(s *application.BoardSession) (domain.Board, error) {
		return s.MoveTask(task.ID, engine.OverTask(over))
	}) {
		m.row = target
	}
}

func (m *Model) step(dx, dy int) {
	switch m.viewMode {
	case domain.ViewList:
		m.selected += dy
	case domain.ViewCalendar:
		m.day += dx + 7*dy
	default:
		if dx != 0 {
			m.activeColumn += dx
		}
		m.row += dy
	}
	m.ensureSelection()
}

func (m *Model) ensureSelection() {
	m.activeColumn = clamp(m.activeColumn, 0, len(m.board.Columns)-1)
	if len(m.board.Columns) > 0 {
		m.row = clamp(m.row, 0, len(m.board.Columns[m.activeColumn].TaskIDs)-1)
	} else {
		m.row = 0
	}
	m.selected = clamp(m.selected, 0, len(m.listItems())-1)
	days := m.month.AddDate(0, 1, -1).Day()
	m.day = clamp(m.day, 0, days-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) currentTask() (domain.Task, bool) {
	switch m.viewMode {
	case domain.ViewList:
		items := m.listItems()
		if m.selected < 0 || m.selected >= len(items) {
			return domain.Task{}, false
		}
		return items[m.selected].Task, true
	case domain.ViewCalendar:
		days := application.CalendarMonth(m.board, m.month.Year(), m.month.Month())
		if m.day < 0 || m.day >= len(days) || len(days[m.day].Tasks) == 0 {
			return domain.Task{}, false
		}
		return days[m.day].Tasks[0], true
	default:
		if len(m.board.Columns) == 0 {
			return domain.Task{}, false
		}
		tasks := m.board.TasksInColumn(m.board.Columns[m.activeColumn].ID)
		if m.row < 0 || m.row >= len(tasks) {
			return domain.Task{}, false
		}
		return tasks[m.row], true
	}
}

func (m Model) listItems() []application.ListItem {
	return application.ListTasks(m.board, application.ListTaskFilters{TitleQuery: m.titleFilter})
}

func (m Model) rememberCmd() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	prefs := m.preferences
	prefs.LastBoardID = m.board.ID
	prefs.ViewMode = m.viewMode
	prefs.ShowDetails = m.showDetails
	recorder := m.prefs
	return func() tea.Msg {
		return prefsSavedMsg{err: recorder.Remember(context.Background(), prefs)}
	}
}

func nextView(v domain.ViewMode) domain.ViewMode {
	switch v {
	case domain.ViewBoard:
		return domain.ViewList
	case domain.ViewList:
		return domain.ViewCalendar
	default:
		return domain.ViewBoard
	}
}

func nextPriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityNone:
		return domain.PriorityLow
	case domain.PriorityLow:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityHigh
	default:
		return domain.PriorityNone
	}
}

func (m Model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))

	left := headerStyle.Render(m.board.Title)
	meta := fmt.Sprintf("view:%s  tasks:%d", m.viewMode, len(m.board.Tasks))
	if m.titleFilter != "" {
		meta += fmt.Sprintf("  search:%q", m.titleFilter)
	}
	right := metaStyle.Render(meta)
	if m.width > 20 {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.width/2).Render(left),
			lipgloss.NewStyle().Width(max(1, m.width-m.width/2-2)).Align(lipgloss.Right).Render(right),
		)
	}
	return left + " " + right
}

func (m Model) renderFooter() string {
	inputLine := ""
	switch m.inputMode {
	case inputNone:
	case inputEditDescription:
		inputLine = lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Render(m.textArea.View())
	default:
		inputLine = lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Render(m.textInput.View())
	}

	shortcuts := "n:new e:edit E:desc t:dates g:tag p:priority x:delete H/L J/K:move v:view d:details /:search q:quit"
	if m.viewMode == domain.ViewCalendar {
		shortcuts = "[ ]:month " + shortcuts
	}
	lines := []string{}
	if strings.TrimSpace(m.statusLine) != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("222")).Render(m.statusLine))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(shortcuts))
	if inputLine != "" {
		lines = append(lines, inputLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(input string, maxLen int) string {
	r := []rune(input)
	if maxLen <= 0 || len(r) <= maxLen {
		return input
	}
	if maxLen < 4 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
