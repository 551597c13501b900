package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

var lengthFlags contextFlags

func init() {

	lengthFlags.register(EncodedLengthCmd)

	rootCmd.AddCommand(EncodedLengthCmd)
}

type encodedLength struct {
	Length uint64 `yaml:"length" json:"length"`
}

var EncodedLengthCmd = &cobra.Command{
	Use:   "encoded-length",
	Short: "Prints the encoded hash buffer length",
	Long: `Prints the length of the buffer, including the trailing NUL, needed
to hold an encoded hash for the given parameters.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		ctx, err := lengthFlags.context(App.Argon2.Defaults())
		if err != nil {
			return err
		}
		length := App.Argon2.EncodedLength(
			ctx.TimeCost,
			ctx.MemoryCost,
			ctx.Parallelism,
			ctx.SaltLength,
			ctx.HashLength,
			ctx.Type)
		if length == 0 {
			return &native.NativeError{Result: native.ResultIncorrectType}
		}
		return writeOutput(cmd.OutOrStdout(),
			encodedLength{Length: uint64(length)},
			fmt.Sprintf("%d", length))
	},
}
