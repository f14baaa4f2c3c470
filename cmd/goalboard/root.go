package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goalboard/goalboard/internal/components"
)

type rootFlags struct {
	verbose bool
	theme   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "goalboard",
		Short:         "Goalboard renders goal and subgoal boards in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "default", "Colour theme (default or dark)")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newBoardCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) resolveTheme() (components.Theme, error) {
	switch f.theme {
	case "", "default":
		return components.DefaultTheme(), nil
	case "dark":
		return components.DarkTheme(), nil
	default:
		return components.Theme{}, fmt.Errorf("unknown theme %q (expected default or dark)", f.theme)
	}
}

func (f *rootFlags) logLevel() string {
	if f.verbose {
		return "debug"
	}
	return "info"
}
