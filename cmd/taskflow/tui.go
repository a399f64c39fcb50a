package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tiagokriok/taskflow/internal/ui"
)

func tuiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the last used board in the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), *configPath)
		},
	}
}

func runTUI(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// The alternate screen owns the terminal, so logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	a, err := openApp(ctx, configPath, logFile)
	if err != nil {
		return err
	}
	defer a.Close()

	summary, prefs, err := a.context.Resolve(ctx)
	if err != nil {
		return err
	}
	session, err := a.boards.Open(ctx, summary.ID)
	if err != nil {
		return fmt.Errorf("open board %s: %w", summary.ID, err)
	}
	if err := a.context.Remember(ctx, prefs); err != nil {
		a.log.WithError(err).Warn("remember board")
	}

	model := ui.NewModel(session, a.context, prefs, a.log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "taskflow")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "taskflow.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
