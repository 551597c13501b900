package cmd

import (
	"github.com/spf13/cobra"
)

var (
	ctxPassword,
	ctxSalt,
	ctxSecret,
	ctxAssociatedData string
	ctxFlags contextFlags
)

func init() {

	ContextHashCmd.Flags().StringVarP(&ctxPassword, "password", "p", "", "The password to hash. Prompts when empty")
	ContextHashCmd.Flags().StringVarP(&ctxSalt, "salt", "s", "", "The salt. A random salt is generated when empty")
	ContextHashCmd.Flags().StringVar(&ctxSecret, "secret", "", "Optional secret key (pepper)")
	ContextHashCmd.Flags().StringVar(&ctxAssociatedData, "ad", "", "Optional associated data")
	ctxFlags.register(ContextHashCmd)

	rootCmd.AddCommand(ContextHashCmd)
}

var ContextHashCmd = &cobra.Command{
	Use:   "context-hash",
	Short: "Hashes a password with a secret and associated data",
	Long: `Hashes a password through the argon2 context API, mixing in an
optional secret and associated data. Prints the base64 encoded raw hash.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		ctx, err := ctxFlags.context(App.Argon2.Defaults())
		if err != nil {
			return err
		}
		password, err := passwordOrPrompt(ctxPassword)
		if err != nil {
			return err
		}
		if ctxSecret != "" {
			ctx.Secret = []byte(ctxSecret)
		}
		if ctxAssociatedData != "" {
			ctx.AssociatedData = []byte(ctxAssociatedData)
		}

		result, err := App.Argon2.ContextHash(password, []byte(ctxSalt), &ctx)
		if err != nil {
			return err
		}
		if err := result.Err(); err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), result, result.Encoded)
	},
}
