package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/artifactpath/internal/domain"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

// pathCmd represents the path command.
var pathCmd = newPathCmd()

func newPathCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "path <location>",
		Short: "Print the absolute path of an example artifact",
		Long: `Print the absolute path where the artifact of the given kind is stored for
the example at <location> ("<source path>:<line>"). The containing directory
is created when missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := m.ParseArtifactKind(kindName)
			if err != nil {
				return err
			}

			return workflow.Resolve(context.Background(), domain.ResolveArgs{
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
	rootCmd.AddCommand(pathCmd)
}
