package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typedb/typedb-sub018/internal/build"
)

// NewVersionCommand returns the command to get graphkb version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the graphkb version",
		Long:  "Return the graphkb version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "graphkb version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}
