package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
	"github.com/jeremyhahn/go-argon2/pkg/prompt"
)

// Hashing parameters accepted by the hash commands. Zero values keep
// the configured defaults.
type contextFlags struct {
	timeCost    uint32
	memoryCost  uint32
	parallelism uint32
	saltLength  uint32
	hashLength  uint32
	version     uint32
	variant     string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32VarP(&f.timeCost, "time-cost", "t", 0, "Number of iterations")
	cmd.Flags().Uint32VarP(&f.memoryCost, "memory-cost", "m", 0, "Memory usage in KiB")
	cmd.Flags().Uint32VarP(&f.parallelism, "parallelism", "l", 0, "Number of lanes and threads")
	cmd.Flags().Uint32Var(&f.saltLength, "salt-len", 0, "Length of a generated salt")
	cmd.Flags().Uint32Var(&f.hashLength, "hash-len", 0, "Length of the raw hash")
	cmd.Flags().Uint32Var(&f.version, "algorithm-version", 0, "Argon2 version [ 16 | 19 ]")
	cmd.Flags().StringVar(&f.variant, "type", "", "Argon2 type [ argon2d | argon2i | argon2id ]")
}

// Returns the configured defaults overlaid with the flags
func (f *contextFlags) context(defaults argon2.Context) (argon2.Context, error) {
	ctx := defaults
	if f.timeCost > 0 {
		ctx.TimeCost = f.timeCost
	}
	if f.memoryCost > 0 {
		ctx.MemoryCost = f.memoryCost
	}
	if f.parallelism > 0 {
		ctx.Parallelism = f.parallelism
	}
	if f.saltLength > 0 {
		ctx.SaltLength = f.saltLength
	}
	if f.hashLength > 0 {
		ctx.HashLength = f.hashLength
	}
	if f.version > 0 {
		ctx.Version = argon2.Version(f.version)
	}
	if f.variant != "" {
		t, err := native.ParseType(f.variant)
		if err != nil {
			return argon2.Context{}, err
		}
		ctx.Type = t
	}
	return ctx, nil
}

// Returns the password flag value, prompting when it is empty
func passwordOrPrompt(password string) ([]byte, error) {
	if password != "" {
		return []byte(password), nil
	}
	return prompt.Password()
}
