package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/artifactpath/internal/domain"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

// hashCmd represents the hash command.
var hashCmd = newHashCmd()

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <location>...",
		Short: "Print the digest of example locations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Hash(context.Background(), domain.HashArgs{
				StrategyArgs: strategyArgs(),
				Examples:     m.ParseLocations(args),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
