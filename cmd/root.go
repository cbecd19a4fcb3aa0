package cmd

import (
	"fmt"

	"sourcecombiner/pkg/combine"
	"sourcecombiner/pkg/logging"
	"sourcecombiner/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "sourcecombiner"

// UsageMessage is printed when fewer than two positional arguments are given.
const UsageMessage = "You must provide at least 2 arguments. The first is the source directory path and the second is the output file path."

// NewRootCmd builds the sourcecombiner command tree.
func NewRootCmd() *cobra.Command {
	var (
		debug         bool
		extension     string
		excludeMarker string
	)

	rootCmd := &cobra.Command{
		Use:   "sourcecombiner <input-directory> <output-file> [open-after-write]",
		Short: "Combine a source tree into a single file",
		Long: `sourcecombiner concatenates every source file under a directory into one output file.
Using directives are hoisted, deduplicated and sorted at the top; per-file using
lines, blank lines and [assembly:] attributes are dropped from the bodies.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(debug, appName, version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), UsageMessage)
				return nil
			}

			opts := combine.Options{
				SourceDir:     args[0],
				Output:        args[1],
				Extension:     extension,
				ExcludeMarker: excludeMarker,
			}
			if len(args) > 2 {
				opts.OpenAfterWrite = combine.ParseOpenFlag(args[2])
			}

			logger := logging.Logger
			res, err := combine.Run(opts, logger)
			if err != nil {
				return err
			}
			logger.Debug("Run finished", zap.Any("result", res))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging at debug level")
	rootCmd.Flags().StringVar(&extension, "ext", combine.DefaultExtension, "Extension of the source files to combine")
	rootCmd.Flags().StringVar(&excludeMarker, "exclude", combine.DefaultExcludeMarker, "Skip files whose name contains this text")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
