package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goalboard/goalboard/internal/components"
	configpkg "github.com/goalboard/goalboard/internal/config"
	"github.com/goalboard/goalboard/internal/logger"
	"github.com/goalboard/goalboard/internal/tui/board"
)

func newBoardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board <board-file>",
		Short: "Open a board file in the interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, flags, args[0])
		},
	}

	return cmd
}

func runBoard(cmd *cobra.Command, flags *rootFlags, path string) error {
	log, err := logger.New(logger.Options{Level: flags.logLevel(), Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	theme, err := flags.resolveTheme()
	if err != nil {
		return err
	}

	doc, err := configpkg.ParseBoard(path)
	if err != nil {
		log.Error(err, "board file rejected")
		return err
	}

	model, err := board.NewModel(doc, components.NewCellFactory(theme), log)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board viewer failed: %w", err)
	}

	return nil
}
