package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goalboard/goalboard/internal/components"
	configpkg "github.com/goalboard/goalboard/internal/config"
	"github.com/goalboard/goalboard/internal/itemconv"
	"github.com/goalboard/goalboard/internal/logger"
)

type showOptions struct {
	width int
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <board-file>",
		Short: "Render a board file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width (defaults to the terminal width)")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions, path string) error {
	log, err := logger.New(logger.Options{Level: flags.logLevel(), Console: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	theme, err := flags.resolveTheme()
	if err != nil {
		return err
	}

	board, err := configpkg.ParseBoard(path)
	if err != nil {
		log.Error(err, "board file rejected")
		return err
	}
	log.WithFields(map[string]any{"board": path, "goals": len(board.Goals)}).Debug("board loaded")

	width := opts.width
	if width <= 0 {
		width = detectWidth()
	}

	factory := components.NewCellFactory(theme)
	styles := showStyles(theme)

	fmt.Fprintln(cmd.OutOrStdout(), styles.title.Render(board.Name))

	for _, goal := range board.Goals {
		fmt.Fprintln(cmd.OutOrStdout(), styles.goal.Render(goal.Name))

		rows, err := itemconv.ToItems(goal, nil)
		if err != nil {
			return err
		}
		for _, row := range rows {
			cell, err := factory.Cell(row)
			if err != nil {
				return err
			}
			cell.SetWidth(width - 2)
			fmt.Fprintln(cmd.OutOrStdout(), styles.row.Render(cell.View()))
		}
	}

	summary := components.NewSummary(components.Summarize(board))
	fmt.Fprintln(cmd.OutOrStdout(), styles.summary.Render(summary.View()))

	return nil
}

// detectWidth returns the attached terminal's width, or a conservative
// default when stdout is not a TTY.
func detectWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
