package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

func init() {
	rootCmd.AddCommand(PlatformCmd)
}

type platformInfo struct {
	Platform   native.Platform `yaml:"platform" json:"platform"`
	BinaryPath string          `yaml:"binary-path" json:"binary_path"`
	Found      bool            `yaml:"found" json:"found"`
}

var PlatformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Displays the native binary resolved for this platform",
	Long: `Displays the platform, architecture and native library path the
loader resolves for the running process, and whether the file exists.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {

		platform, err := native.CurrentPlatform()
		if err != nil {
			return err
		}
		root := InitParams.BinariesRoot
		if root == "" {
			root = native.DefaultBinariesRoot()
		}
		path, err := native.BinaryPath(root, platform)
		if err != nil {
			return err
		}
		_, err = native.LocateFor(platformFs, root, platform)
		info := platformInfo{
			Platform:   platform,
			BinaryPath: path,
			Found:      err == nil,
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Platform:\t%s\n", platform.Name))
		sb.WriteString(fmt.Sprintf("Architecture:\t%s\n", platform.Architecture))
		sb.WriteString(fmt.Sprintf("Binary:\t\t%s\n", path))
		sb.WriteString(fmt.Sprintf("Found:\t\t%t", info.Found))
		return writeOutput(cmd.OutOrStdout(), info, sb.String())
	},
}

// Filesystem the platform command checks for the binary
var platformFs afero.Fs = afero.NewOsFs()
