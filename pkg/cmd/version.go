package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/app"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the software version",
	Long:  `Displays software build and version details`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Name:\t\t\t%s\n", app.Name))
		sb.WriteString(fmt.Sprintf("Version:\t\t%s\n", app.Version))
		sb.WriteString(fmt.Sprintf("Repository:\t\t%s\n", app.Repository))
		sb.WriteString(fmt.Sprintf("Package:\t\t%s\n", app.Package))
		sb.WriteString(fmt.Sprintf("Git Branch:\t\t%s\n", app.GitBranch))
		sb.WriteString(fmt.Sprintf("Git Tag:\t\t%s\n", app.GitTag))
		sb.WriteString(fmt.Sprintf("Git Hash:\t\t%s\n", app.GitHash))
		sb.WriteString(fmt.Sprintf("Build User:\t\t%s\n", app.BuildUser))
		sb.WriteString(fmt.Sprintf("Build Date:\t\t%s", app.BuildDate))
		return writeOutput(cmd.OutOrStdout(), app.GetVersion(), sb.String())
	},
}
