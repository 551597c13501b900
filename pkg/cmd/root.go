package cmd

import (
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeremyhahn/go-argon2/pkg/app"
)

var (
	App          *app.App
	InitParams   *app.AppInitParams
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Argon2 password hashing",
	Long: `Hashes and verifies passwords with the Argon2 reference library.
The native libargon2 binary for the running platform is loaded from the
binaries root without cgo. A pure Go backend is available for platforms
without a native binary.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	SilenceUsage:     true,
	TraverseChildren: true,
}

func init() {

	InitParams = &app.AppInitParams{}

	rootCmd.PersistentFlags().BoolVarP(&InitParams.Debug, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&InitParams.ConfigDir, "config-dir", "", "/etc/argon2", "Configuration file directory")
	rootCmd.PersistentFlags().StringVarP(&InitParams.LogDir, "log-dir", "", "", "Log file directory. Logs are discarded when empty")
	rootCmd.PersistentFlags().StringVarP(&InitParams.LogLevel, "log-level", "", "", "Log level [ trace | debug | info | warn | error ]")
	rootCmd.PersistentFlags().StringVarP(&InitParams.Backend, "backend", "", "", "Hashing backend [ native | software ]")
	rootCmd.PersistentFlags().StringVarP(&InitParams.BinariesRoot, "binaries-root", "", "", "Folder holding the per-platform native binaries")
	rootCmd.PersistentFlags().StringVarP(&InitParams.LibraryPath, "library", "", "", "Path to a libargon2 shared library, bypasses platform discovery")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format [ text | json | yaml ]")

	viper.BindPFlags(rootCmd.PersistentFlags())

	if runtime.GOOS == "darwin" {
		signal.Ignore(syscall.Signal(0xd))
	}
}

// Initializes the application on first use. Commands run from tests
// find App already set.
func initApp() error {
	if App != nil && App.Argon2 != nil {
		return nil
	}
	a, err := app.NewApp().Init(InitParams)
	if err != nil {
		return err
	}
	App = a
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Runs the CLI and exits with a non-zero status on failure
func Main() {
	if err := Execute(); err != nil {
		var mismatch *mismatchError
		if errors.As(err, &mismatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
