package main

import (
	"fmt"
	"os"

	"github.com/bvdwalt/mediastamp-go/pkg/process"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "mediastamp [directory]",
		Short:   "Set media file modification times from their filenames",
		Long:    "Mediastamp rewrites the modification time of photo and video files based on the capture date embedded in their filenames (PXL_YYYYMMDD_HHMMSSmmm and lv_0_YYYYMMDDHHMMSS naming conventions, interpreted as UTC).",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := args[0]

			info, err := os.Stat(directory)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("'%s' is not a valid directory", directory)
			}

			cmd.Printf("Processing directory: %s\n", directory)
			cmd.Println("Expected timezone in the filenames: UTC")
			cmd.Println("")

			opts := process.DefaultOptions()
			opts.Verbosity = verbosity
			opts.Out = cmd.OutOrStdout()
			opts.ErrOut = cmd.ErrOrStderr()

			tally, err := process.Process(directory, opts)
			if err != nil {
				return err
			}

			cmd.Println("")
			cmd.Println("Summary:")
			cmd.Printf("  Successfully processed: %d files\n", tally.Success)
			cmd.Printf("  Failed or skipped: %d files\n", tally.Failure)

			return nil
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v shows skipped files, -vv shows all processing details)")

	return rootCmd
}
