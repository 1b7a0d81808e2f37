package cmd

import (
	"fmt"

	"github.com/alexiusacademia/beamvib/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamvib",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "beamvib v%s\n", version.Version)
		fmt.Fprintln(out, "Euler-Bernoulli Beam Vibration Modes")
		fmt.Fprintf(out, "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
