package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/domain"
)

type seedTask struct {
	Title       string
	Description string
	Column      string
	Priority    domain.Priority
	StartOffset *int
	EndOffset   *int
	Tags        []string
	Members     []string
}

type seedBoard struct {
	Title   string
	Columns []string
	Tags    map[string]domain.TagColor
	Team    string
	Members []string
	Tasks   []seedTask
}

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create sample boards, tags, tasks and a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				for _, def := range seedBoards() {
					created, err := seed(ctx, a, ownerID, def)
					if err != nil {
						return err
					}
					if created {
						fmt.Printf("%s %s\n", BoldGreen("seeded"), def.Title)
					} else {
						fmt.Printf("%s %s\n", Dim("exists"), def.Title)
					}
				}
				return nil
			})
		},
	}
}

// seed creates one sample board unless a board with the same title exists.
func seed(ctx context.Context, a *app, ownerID string, def seedBoard) (bool, error) {
	existing, err := a.boards.ListBoards(ctx, ownerID)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		if strings.EqualFold(strings.TrimSpace(b.Title), def.Title) {
			return false, nil
		}
	}

	board, err := a.boards.CreateBoardWithColumns(ctx, ownerID, def.Title, def.Columns)
	if err != nil {
		return false, err
	}

	memberIDs := map[string]string{}
	if def.Team != "" {
		team, err := a.teams.Create(ctx, ownerID, def.Team)
		if err != nil {
			return false, err
		}
		for _, name := range def.Members {
			email := strings.ToLower(name) + "@example.com"
			m, err := a.teams.AddMember(ctx, team.ID, name, email)
			if err != nil {
				return false, err
			}
			memberIDs[name] = m.ID
		}
		if _, err := a.boards.AssignTeams(ctx, board.ID, []string{team.ID}); err != nil {
			return false, err
		}
	}

	session, err := a.boards.Open(ctx, board.ID)
	if err != nil {
		return false, err
	}
	for label, color := range def.Tags {
		if _, err := session.UpsertTag(label, color); err != nil {
			return false, err
		}
	}

	columnIDs := map[string]string{}
	for _, col := range board.Columns {
		columnIDs[col.Title] = col.ID
	}
	today := domain.DateOnly(time.Now().UTC())
	for _, ts := range def.Tasks {
		columnID, ok := columnIDs[ts.Column]
		if !ok {
			columnID = board.Columns[0].ID
		}
		_, task, err := session.AddTask(columnID, ts.Title)
		if err != nil {
			return false, err
		}
		changes := domain.TaskChanges{}
		if ts.Description != "" {
			changes.Description = domain.Some(ts.Description)
		}
		if ts.Priority != domain.PriorityNone {
			changes.Priority = domain.Some(ts.Priority)
		}
		if ts.StartOffset != nil {
			d := today.AddDate(0, 0, *ts.StartOffset)
			changes.StartDate = domain.Some(&d)
		}
		if ts.EndOffset != nil {
			d := today.AddDate(0, 0, *ts.EndOffset)
			changes.EndDate = domain.Some(&d)
		}
		if len(ts.Tags) > 0 {
			changes.Tags = domain.Some(ts.Tags)
		}
		if len(ts.Members) > 0 {
			ids := make([]string, 0, len(ts.Members))
			for _, name := range ts.Members {
				if id, ok := memberIDs[name]; ok {
					ids = append(ids, id)
				}
			}
			changes.AssignedMembers = domain.Some(ids)
		}
		if changes.IsEmpty() {
			continue
		}
		if _, err := session.UpdateTask(task.ID, changes); err != nil {
			return false, fmt.Errorf("seed task %q: %w", ts.Title, err)
		}
	}
	return true, nil
}

func seedBoards() []seedBoard {
	return []seedBoard{
		{
			Title:   "Product Launch",
			Columns: application.DefaultColumnTitles(),
			Tags: map[string]domain.TagColor{
				"release": domain.TagRed,
				"docs":    domain.TagBlue,
				"ops":     domain.TagOrange,
				"design":  domain.TagPurple,
			},
			Team:    "Launch Crew",
			Members: []string{"Ana", "Bruno", "Chen"},
			Tasks: []seedTask{
				{
					Title:       "Validate rollback path in production",
					Description: "## Objective\nEnsure rollback is documented and tested.\n\n- Validate DB backup restore\n- Validate feature flag rollback\n- Capture runbook updates",
					Column:      "Doing",
					Priority:    domain.PriorityHigh,
					StartOffset: intPtr(-2),
					EndOffset:   intPtr(-1),
					Tags:        []string{"release", "ops"},
					Members:     []string{"Ana"},
				},
				{
					Title:       "Markdown showcase",
					Description: seedMarkdownShowcase(),
					Column:      "Backlog",
					Priority:    domain.PriorityLow,
					EndOffset:   intPtr(4),
					Tags:        []string{"docs"},
				},
				{
					Title:       "Publish release notes",
					Description: "### Notes\nSummarize UX changes, keybindings, and known limitations.",
					Column:      "Backlog",
					Priority:    domain.PriorityMedium,
					StartOffset: intPtr(1),
					EndOffset:   intPtr(3),
					Tags:        []string{"docs", "release"},
					Members:     []string{"Bruno", "Chen"},
				},
				{
					Title:       "Landing page visuals",
					Description: "Hero image, feature grid and pricing table.",
					Column:      "Done",
					Tags:        []string{"design"},
					Members:     []string{"Chen"},
				},
				{
					Title:     "Plan launch retro",
					Column:    "Backlog",
					EndOffset: intPtr(14),
				},
			},
		},
		{
			Title:   "Home Ops",
			Columns: []string{"To do", "Waiting", "Done"},
			Tags: map[string]domain.TagColor{
				"finance": domain.TagGreen,
				"health":  domain.TagPink,
			},
			Tasks: []seedTask{
				{
					Title:       "Pay utilities and reconcile receipts",
					Description: "Track water, power, and internet payment confirmation IDs.",
					Column:      "To do",
					Priority:    domain.PriorityMedium,
					EndOffset:   intPtr(2),
					Tags:        []string{"finance"},
				},
				{
					Title:       "Schedule annual health check",
					Description: "Call clinic and confirm available dates.",
					Column:      "Waiting",
					StartOffset: intPtr(10),
					Tags:        []string{"health"},
				},
			},
		},
	}
}

func intPtr(v int) *int {
	return &v
}

func seedMarkdownShowcase() string {
	return `# Markdown Showcase

Regular text with **bold**, *italic*, ~~strikethrough~~, and inline code like ` + "`taskflow seed`" + `.

- Unordered item one
- Unordered item two
  - Nested child

1. Ordered item one
2. Ordered item two

> Keep the workflow simple and consistent.

~~~go
package main

import "fmt"

func main() {
    fmt.Println("taskflow markdown demo")
}
~~~

| Field | Example |
| --- | --- |
| Priority | high |
| Dates | 01/03/2024 - 05/03/2024 |
`
}
