// Package cli runs the ad synthesis engine from the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"adsynth-workers/internal/common/logger"

	"github.com/spf13/cobra"
)

var Version = "dev"

type rootOptions struct {
	verbose bool
}

// NewRootCmd builds a fresh command tree. Tests build one per case.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "adsynth",
		Short:         "Generate Arabic performance ad sets from a product profile",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine decisions to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(opts),
		newScoreHookCmd(opts),
		newPlatformsCmd(),
		newBrandCheckCmd(opts),
		newActivitiesCmd(),
	)
	return rootCmd
}

func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "adsynth %s\n", Version)
		},
	}
}

func (o *rootOptions) logger() logger.Logger {
	if o.verbose {
		return logger.NewStructured("debug", "console")
	}
	return logger.NewStructured("warn", "console")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
