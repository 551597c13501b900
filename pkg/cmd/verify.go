package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

var (
	ErrPasswordMismatch = errors.New("argon2: password does not match")
)

var (
	verifyPassword,
	verifyType string
)

// Returned when the password does not match so Main can exit with a
// distinct status
type mismatchError struct{}

func (e *mismatchError) Error() string {
	return ErrPasswordMismatch.Error()
}

func (e *mismatchError) Unwrap() error {
	return ErrPasswordMismatch
}

func init() {

	VerifyCmd.Flags().StringVarP(&verifyPassword, "password", "p", "", "The password to verify. Prompts when empty")
	VerifyCmd.Flags().StringVar(&verifyType, "type", "", "Argon2 type [ argon2d | argon2i | argon2id ]. Defaults to the configured type")

	rootCmd.AddCommand(VerifyCmd)
}

var VerifyCmd = &cobra.Command{
	Use:   "verify ENCODED",
	Short: "Verifies a password against an encoded hash",
	Long: `Verifies a password against an encoded argon2 hash string. Exits
with status 2 when the password does not match.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		variant := App.Argon2.Defaults().Type
		if verifyType != "" {
			t, err := native.ParseType(verifyType)
			if err != nil {
				return err
			}
			variant = t
		}
		password, err := passwordOrPrompt(verifyPassword)
		if err != nil {
			return err
		}

		result, err := App.Argon2.Verify(password, args[0], variant)
		if err != nil {
			return err
		}
		if result.Error != "" {
			return &native.NativeError{Result: result.Status}
		}
		if err := writeOutput(cmd.OutOrStdout(), result, fmt.Sprintf("%t", result.Success)); err != nil {
			return err
		}
		if !result.Success {
			return &mismatchError{}
		}
		return nil
	},
}
