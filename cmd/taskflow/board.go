package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

func boardCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}
	cmd.AddCommand(
		boardListCmd(configPath),
		boardCreateCmd(configPath),
		boardRenameCmd(configPath),
		boardDeleteCmd(configPath),
		boardShowCmd(configPath),
	)
	return cmd
}

// withApp opens the app for a one-shot command and closes it afterwards, so
// pending saves are flushed before exit.
func withApp(configPath string, fn func(ctx context.Context, a *app, ownerID string) error) error {
	ctx := context.Background()
	a, err := openApp(ctx, configPath, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()
	ownerID, err := a.ownerID()
	if err != nil {
		return err
	}
	return fn(ctx, a, ownerID)
}

func boardListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				boards, err := a.boards.ListBoards(ctx, ownerID)
				if err != nil {
					return err
				}
				if len(boards) == 0 {
					fmt.Println(Dim("no boards yet; run `taskflow board create <title>`"))
					return nil
				}
				for _, b := range boards {
					fmt.Printf("%s  %s\n", Dim(b.ID), Bold(b.Title))
				}
				return nil
			})
		},
	}
}

func boardCreateCmd(configPath *string) *cobra.Command {
	var columns []string
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				title := strings.Join(args, " ")
				var (
					board domain.Board
					err   error
				)
				if len(columns) > 0 {
					board, err = a.boards.CreateBoardWithColumns(ctx, ownerID, title, columns)
				} else {
					board, err = a.boards.CreateBoard(ctx, ownerID, title)
				}
				if err != nil {
					return err
				}
				fmt.Printf("%s %s (%s)\n", BoldGreen("created"), board.Title, board.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "column titles (default Backlog,Doing,Done)")
	return cmd
}

func boardRenameCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <board-id> <title>",
		Short: "Rename a board",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				if err := ownBoard(ctx, a, ownerID, args[0]); err != nil {
					return err
				}
				if err := a.boards.RenameBoard(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
					return err
				}
				fmt.Println(BoldGreen("renamed"))
				return nil
			})
		},
	}
}

func boardDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board with its columns and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				if err := ownBoard(ctx, a, ownerID, args[0]); err != nil {
					return err
				}
				if err := a.boards.DeleteBoard(ctx, args[0]); err != nil {
					return err
				}
				fmt.Println(BoldGreen("deleted"))
				return nil
			})
		},
	}
}

func boardShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <board-id>",
		Short: "Print a board's columns and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(ctx context.Context, a *app, ownerID string) error {
				if err := ownBoard(ctx, a, ownerID, args[0]); err != nil {
					return err
				}
				session, err := a.boards.Open(ctx, args[0])
				if err != nil {
					return err
				}
				printBoard(session.Snapshot())
				return nil
			})
		},
	}
}

func ownBoard(ctx context.Context, a *app, ownerID, boardID string) error {
	_, err := a.boards.OpenOwned(ctx, boardID, ownerID)
	return err
}

func printBoard(b domain.Board) {
	fmt.Println(BoldCyan(b.Title))
	for _, col := range b.Columns {
		fmt.Printf("\n%s %s\n", BoldYellow(col.Title), Dim(fmt.Sprintf("(%d)", len(col.TaskIDs))))
		for _, task := range b.TasksInColumn(col.ID) {
			line := fmt.Sprintf("  - %s  %s", task.Title, priorityLabel(string(task.Priority)))
			if tags := engine.ResolveTags(b, task); len(tags) > 0 {
				labels := make([]string, 0, len(tags))
				for _, t := range tags {
					labels = append(labels, t.Label)
				}
				line += "  " + Dim("["+strings.Join(labels, ", ")+"]")
			}
			if task.EndDate != nil {
				line += "  " + Dim("due "+task.EndDate.Format(engine.DateLayout))
			}
			fmt.Println(line)
		}
	}
}
