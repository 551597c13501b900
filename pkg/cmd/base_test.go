package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jeremyhahn/go-argon2/pkg/app"
	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/software"
	"github.com/jeremyhahn/go-argon2/pkg/config"
	"github.com/jeremyhahn/go-argon2/pkg/logging"
)

func TestMain(m *testing.M) {
	logger := logging.NoopLogger()
	library := software.New()
	App = &app.App{
		Argon2:   argon2.NewArgon2(logger, library, nil),
		Config:   &config.Config{},
		Defaults: argon2.DefaultContext(),
		FS:       afero.NewMemMapFs(),
		Library:  library,
		Logger:   logger,
	}
	os.Exit(m.Run())
}

// Executes the root command with args, resetting every flag to its
// default first so values do not leak between tests.
func executeCommand(args ...string) (string, error) {

	resetFlags(rootCmd)

	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return b.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
