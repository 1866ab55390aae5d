package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/artifactpath/internal/domain"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

var materializeParallelFlag int

// materializeCmd represents the materialize command.
var materializeCmd = newMaterializeCmd()

func newMaterializeCmd() *cobra.Command {
	var examplesFile string

	cmd := &cobra.Command{
		Use:   "materialize [location...]",
		Short: "Resolve every artifact path of a batch of examples",
		Long: `Resolve the paths of all artifact kinds for each example and create their
directories. Examples come from --examples (a YAML file with an "examples"
list) followed by the locations given as arguments.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Materialize(context.Background(), domain.MaterializeArgs{
				StrategyArgs: strategyArgs(),
				Examples:     m.ParseLocations(args),
				ExamplesFile: m.Path(examplesFile),
				Threads:      viper.GetInt(parallelConfigKey),
			})
		},
	}

	cmd.Flags().StringVarP(&examplesFile, examplesFlagName, "e", "", "YAML file listing example locations")
	cmd.Flags().IntVarP(&materializeParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(materializeCmd)
}
