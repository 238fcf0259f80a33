package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apps4uco/sailfish/internal/version"
)

var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for sailfish: semantic version, git
commit, Go version and target platform.

Examples:
  sailfish version            # full version info
  sailfish version --short    # one line`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "show short version only")
}

func runVersion(cmd *cobra.Command, args []string) error {
	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), version.Short())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
	return nil
}
