// Package cmd provides the root command and CLI setup for artifactpath.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/artifactpath/internal/adapter"
	"gooze.dev/pkg/artifactpath/internal/controller"
	"gooze.dev/pkg/artifactpath/internal/domain"
)

var fsAdapter adapter.FileSystem
var exampleSource adapter.ExampleSource
var outputUI *controller.SimpleUI
var workflow domain.Workflow

// reportFlag is the location of the final report; artifacts live next to it.
var reportFlag string

var hashFlag string
var formatFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalFileSystem()
	exampleSource = adapter.NewYAMLExampleSource()
	outputUI = controller.NewSimpleUI(rootCmd, controller.FormatTable)
	workflow = domain.NewWorkflow(fsAdapter, exampleSource, outputUI)
}

const rootLongDescription = `artifactpath computes where the artifacts captured while running browser
test examples (HTML snapshots, screenshots, remote control logs) are stored.

Artifacts live under resources/<report name>/ next to the final report, one
file per example and kind, named after a digest of the example location
("<source path>:<line>").`

const kindHelp = "artifact kind: html, system-screenshot, page-screenshot or remote-control-log"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "artifactpath",
		Short: "Report artifact path strategy",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			format, err := controller.ParseOutputFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			outputUI.Configure(cmd, format)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportFlag, reportFlagName, "r",
			viper.GetString(reportConfigKey),
			"location of the final report; artifacts are stored next to it",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringVar(&hashFlag, hashFlagName, viper.GetString(hashConfigKey), "example digest: sha256 or blake3")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(hashFlagName), hashConfigKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: table or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func strategyArgs() domain.StrategyArgs {
	return domain.StrategyArgs{
		Report:        viper.GetString(reportConfigKey),
		HashAlgorithm: viper.GetString(hashConfigKey),
	}
}
