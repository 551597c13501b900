package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
)

var (
	hashPassword,
	hashSalt string
	hashRaw   bool
	hashFlags contextFlags
)

func init() {

	HashCmd.Flags().StringVarP(&hashPassword, "password", "p", "", "The password to hash. Prompts when empty")
	HashCmd.Flags().StringVarP(&hashSalt, "salt", "s", "", "The salt. A random salt is generated when empty")
	HashCmd.Flags().BoolVar(&hashRaw, "raw", false, "Output the raw hash instead of the encoded string")
	hashFlags.register(HashCmd)

	rootCmd.AddCommand(HashCmd)
}

var HashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hashes a password",
	Long: `Hashes a password and prints the encoded hash string, or the
base64 encoded raw hash with --raw.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		ctx, err := hashFlags.context(App.Argon2.Defaults())
		if err != nil {
			return err
		}
		password, err := passwordOrPrompt(hashPassword)
		if err != nil {
			return err
		}
		mode := argon2.EncodedOutput
		if hashRaw {
			mode = argon2.RawOutput
		}

		result, err := App.Argon2.Hash(password, []byte(hashSalt), &ctx, mode)
		if err != nil {
			return err
		}
		if err := result.Err(); err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), result, result.Encoded)
	},
}
