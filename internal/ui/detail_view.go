package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/tiagokriok/taskflow/internal/domain"
)

const detailActivityLimit = 8

func (m Model) renderDetailView(width, height int) string {
	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250"))
	task, ok := m.currentTask()
	if !ok {
		return panelStyle.Render("No task selected")
	}
	inner := max(10, width-4)

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Render(truncate(task.Title, inner))
	dueText, dueColor := m.dueDisplay(task)
	meta := []string{
		lipgloss.NewStyle().Foreground(priorityColor(task.Priority)).Bold(true).Render(task.Priority.String()),
		lipgloss.NewStyle().Foreground(dueColor).Render(dueText),
		m.board.ColumnTitle(task.ColumnID),
	}
	if n := len(task.AssignedMembers); n > 0 {
		meta = append(meta, fmt.Sprintf("%d member(s)", n))
	}
	metaLine := lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Render(strings.Join(meta, " | "))

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221"))
	content := []string{header, metaLine}
	if chips := m.renderTagChips(task); chips != "" {
		content = append(content, chips)
	}
	content = append(content, "", sectionStyle.Render("Description"), renderMarkdown(task.Description, inner))
	content = append(content, "", sectionStyle.Render("Activity"))
	content = append(content, m.renderActivity(task, inner)...)
	return panelStyle.Render(strings.Join(content, "\n"))
}

// renderActivity lists the newest entries first.
func (m Model) renderActivity(task domain.Task, width int) []string {
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if len(task.ActivityLog) == 0 {
		return []string{metaStyle.Render("(none)")}
	}
	lines := make([]string, 0, detailActivityLimit*2)
	for i := len(task.ActivityLog) - 1; i >= 0 && len(task.ActivityLog)-i <= detailActivityLimit; i-- {
		e := task.ActivityLog[i]
		lines = append(lines, metaStyle.Render(m.formatActivityTime(e.Timestamp)))
		lines = append(lines, "  "+truncate(e.Details, width-2))
	}
	return lines
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(strings.ReplaceAll(md, "\r\n", "\n"))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(empty)")
	if md == "" {
		return empty
	}
	rendered, err := renderMarkdownWithGlamour(md, width)
	if err != nil {
		return md
	}
	rendered = strings.Trim(rendered, "\n")
	if rendered == "" {
		return empty
	}
	return rendered
}

func renderMarkdownWithGlamour(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := styles.DarkStyleConfig
	style.Document.Margin = uintPtr(0)
	style.H1.Prefix = " "
	style.H2.Prefix = "  "
	style.H3.Prefix = "   "
	style.H1.BackgroundColor = nil
	style.H1.Color = stringPtr("51")
	style.H1.Bold = boolPtr(true)
	style.H2.Bold = boolPtr(true)
	style.H2.Color = stringPtr("45")
	style.H3.Bold = boolPtr(true)
	style.H3.Color = stringPtr("44")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStyles(style),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func uintPtr(v uint) *uint {
	return &v
}
