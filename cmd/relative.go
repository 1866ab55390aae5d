package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/artifactpath/internal/domain"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

// relativeCmd represents the relative command.
var relativeCmd = newRelativeCmd()

func newRelativeCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "relative <location>",
		Short: "Print an artifact path relative to the report directory",
		Long:  "Print the artifact path relative to the report directory without touching the filesystem.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := m.ParseArtifactKind(kindName)
			if err != nil {
				return err
			}

			return workflow.Relative(context.Background(), domain.ResolveArgs{
				StrategyArgs: strategyArgs(),
				Kind:         kind,
				Example:      m.Location(args[0]),
			})
		},
	}

	cmd.Flags().StringVarP(&kindName, kindFlagName, "k", defaultKind, kindHelp)

	return cmd
}

func init() {
	rootCmd.AddCommand(relativeCmd)
}
