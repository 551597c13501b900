package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

const (
	Name        = "config"
	EnvPrefix   = "ARGON2"
	ConfigType  = "yaml"
	DefaultPort = 8080
)

var (
	ErrInvalidBackend = errors.New("config: invalid library backend")
)

type Backend string

const (
	// Binds libargon2 through the native loader
	BackendNative Backend = "native"

	// Emulates libargon2 with golang.org/x/crypto/argon2
	BackendSoftware Backend = "software"
)

func ParseBackend(backend string) (Backend, error) {
	switch strings.ToLower(backend) {
	case "", string(BackendNative):
		return BackendNative, nil
	case string(BackendSoftware):
		return BackendSoftware, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidBackend, backend)
}

// Argon2 holds the default hashing parameters. The type is
// configured by name (argon2d, argon2i, argon2id).
type Argon2 struct {
	TimeCost    uint32 `yaml:"time-cost" json:"time_cost" mapstructure:"time-cost"`
	MemoryCost  uint32 `yaml:"memory-cost" json:"memory_cost" mapstructure:"memory-cost"`
	Parallelism uint32 `yaml:"parallelism" json:"parallelism" mapstructure:"parallelism"`
	SaltLength  uint32 `yaml:"salt-len" json:"salt_len" mapstructure:"salt-len"`
	HashLength  uint32 `yaml:"hash-len" json:"hash_len" mapstructure:"hash-len"`
	Type        string `yaml:"type" json:"type" mapstructure:"type"`
	Version     uint32 `yaml:"version" json:"version" mapstructure:"version"`
	Flags       uint32 `yaml:"flags" json:"flags" mapstructure:"flags"`
}

// Converts the configured parameters to a hashing context
func (a Argon2) Context() (argon2.Context, error) {
	t, err := native.ParseType(a.Type)
	if err != nil {
		return argon2.Context{}, err
	}
	return argon2.Context{
		TimeCost:    a.TimeCost,
		MemoryCost:  a.MemoryCost,
		Parallelism: a.Parallelism,
		SaltLength:  a.SaltLength,
		HashLength:  a.HashLength,
		Type:        t,
		Version:     argon2.Version(a.Version),
		Flags:       argon2.Flags(a.Flags),
	}, nil
}

// Library selects the hashing backend. Path, when set, names the
// shared library directly and bypasses platform discovery beneath
// BinariesRoot.
type Library struct {
	Backend      string `yaml:"backend" json:"backend" mapstructure:"backend"`
	BinariesRoot string `yaml:"binaries-root" json:"binaries_root" mapstructure:"binaries-root"`
	Path         string `yaml:"path" json:"path" mapstructure:"path"`
}

type Config struct {
	Argon2     Argon2     `yaml:"argon2" json:"argon2" mapstructure:"argon2"`
	Debug      bool       `yaml:"debug" json:"debug" mapstructure:"debug"`
	Library    Library    `yaml:"library" json:"library" mapstructure:"library"`
	LogDir     string     `yaml:"log-dir" json:"log_dir" mapstructure:"log-dir"`
	LogLevel   string     `yaml:"log-level" json:"log_level" mapstructure:"log-level"`
	WebService WebService `yaml:"webservice" json:"webservice" mapstructure:"webservice"`
}

// Registers the library defaults so a missing config file or key
// falls back to DefaultContext.
func SetDefaults(v *viper.Viper) {
	ctx := argon2.DefaultContext()
	v.SetDefault("argon2.time-cost", ctx.TimeCost)
	v.SetDefault("argon2.memory-cost", ctx.MemoryCost)
	v.SetDefault("argon2.parallelism", ctx.Parallelism)
	v.SetDefault("argon2.salt-len", ctx.SaltLength)
	v.SetDefault("argon2.hash-len", ctx.HashLength)
	v.SetDefault("argon2.type", ctx.Type.String())
	v.SetDefault("argon2.version", uint32(ctx.Version))
	v.SetDefault("argon2.flags", uint32(ctx.Flags))
	v.SetDefault("library.backend", string(BackendNative))
	v.SetDefault("library.binaries-root", "")
	v.SetDefault("library.path", "")
	v.SetDefault("log-dir", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("debug", false)
	v.SetDefault("webservice.listen", "")
	v.SetDefault("webservice.port", DefaultPort)
	v.SetDefault("webservice.read-timeout", 5)
	v.SetDefault("webservice.write-timeout", 30)
	v.SetDefault("webservice.idle-timeout", 120)
	v.SetDefault("webservice.shutdown-timeout", 5)
}

// Load reads config.yaml from configDir, $HOME/.{appName}/ and the
// working directory, in that order, overlays ARGON2_* environment
// variables and unmarshals the result. A missing config file is not
// an error.
func Load(v *viper.Viper, appName, configDir string) (*Config, error) {
	SetDefaults(v)

	v.SetConfigName(Name)
	v.SetConfigType(ConfigType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s/", appName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if _, err := ParseBackend(config.Library.Backend); err != nil {
		return nil, err
	}
	return &config, nil
}
