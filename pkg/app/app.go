package app

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/software"
	"github.com/jeremyhahn/go-argon2/pkg/config"
	"github.com/jeremyhahn/go-argon2/pkg/logging"
)

var (
	ErrNotInitialized = errors.New("argon2: application not initialized")
)

const logFileName = "argon2.log"

type App struct {
	Argon2   *argon2.Argon2  `yaml:"-" json:"-"`
	Config   *config.Config  `yaml:"config" json:"config"`
	Defaults argon2.Context  `yaml:"defaults" json:"defaults"`
	FS       afero.Fs        `yaml:"-" json:"-"`
	Library  native.Library  `yaml:"-" json:"-"`
	Logger   *logging.Logger `yaml:"-" json:"-"`
	Random   io.Reader       `yaml:"-" json:"-"`
	Viper    *viper.Viper    `yaml:"-" json:"-"`
	closer   func() error
}

func NewApp() *App {
	return &App{
		FS:     afero.NewOsFs(),
		Random: rand.Reader,
		Viper:  viper.GetViper(),
	}
}

// Command line overrides applied on top of the config file
type AppInitParams struct {
	Backend      string
	BinariesRoot string
	ConfigDir    string
	Debug        bool
	LibraryPath  string
	LogDir       string
	LogLevel     string
}

// Init loads the configuration, initializes the logger and binds
// the configured hashing backend.
func (app *App) Init(initParams *AppInitParams) (*App, error) {
	if initParams == nil {
		initParams = &AppInitParams{}
	}
	if err := app.initConfig(initParams); err != nil {
		return nil, err
	}
	if err := app.initLogger(); err != nil {
		return nil, err
	}
	if err := app.initLibrary(); err != nil {
		app.Logger.Error(err)
		return nil, err
	}
	app.Argon2 = argon2.CreateArgon2(app.Logger, app.Library, app.Random, app.Defaults)
	return app, nil
}

func (app *App) initConfig(initParams *AppInitParams) error {
	cfg, err := config.Load(app.Viper, Name, initParams.ConfigDir)
	if err != nil {
		return err
	}
	if initParams.Debug {
		cfg.Debug = true
	}
	if initParams.LogDir != "" {
		cfg.LogDir = initParams.LogDir
	}
	if initParams.LogLevel != "" {
		cfg.LogLevel = initParams.LogLevel
	}
	if initParams.Backend != "" {
		cfg.Library.Backend = initParams.Backend
	}
	if initParams.BinariesRoot != "" {
		cfg.Library.BinariesRoot = initParams.BinariesRoot
	}
	if initParams.LibraryPath != "" {
		cfg.Library.Path = initParams.LibraryPath
	}
	defaults, err := cfg.Argon2.Context()
	if err != nil {
		return err
	}
	app.Config = cfg
	app.Defaults = defaults
	return nil
}

func (app *App) initLogger() error {
	level, err := logging.ParseLevel(app.Config.LogLevel)
	if err != nil {
		return err
	}
	if app.Config.Debug {
		level = slog.LevelDebug
	}
	if app.Config.LogDir == "" {
		app.Logger = logging.NewLogger(level, nil)
		return nil
	}
	logger, err := logging.NewFileLogger(app.FS, level, app.Config.LogDir, logFileName)
	if err != nil {
		return err
	}
	app.Logger = logger
	app.Logger.Debug("logger initialized",
		"log-dir", app.Config.LogDir,
		"config", app.Viper.ConfigFileUsed())
	return nil
}

func (app *App) initLibrary() error {
	backend, err := config.ParseBackend(app.Config.Library.Backend)
	if err != nil {
		return err
	}
	switch backend {
	case config.BackendSoftware:
		app.Library = software.New()
	case config.BackendNative:
		table, err := app.openNative()
		if err != nil {
			return err
		}
		app.Library = table
		app.closer = table.Close
	}
	app.Logger.Info("hashing backend initialized", "library", app.Library.String())
	return nil
}

func (app *App) openNative() (*native.SymbolTable, error) {
	lib := app.Config.Library
	switch {
	case lib.Path != "":
		return native.OpenPath(lib.Path)
	case lib.BinariesRoot != "":
		return native.Open(app.FS, lib.BinariesRoot)
	}
	return native.Default()
}

// Returns the platform descriptor and binary path native discovery
// resolves to for the current configuration
func (app *App) Platform() (PlatformInfo, error) {
	if app.Config == nil {
		return PlatformInfo{}, ErrNotInitialized
	}
	info := PlatformInfo{}
	if app.Library != nil {
		info.Library = app.Library.String()
	}
	platform, err := native.CurrentPlatform()
	if err != nil {
		return info, err
	}
	root := app.Config.Library.BinariesRoot
	if root == "" {
		root = native.DefaultBinariesRoot()
	}
	path, err := native.BinaryPath(root, platform)
	if err != nil {
		return info, err
	}
	info.Platform = platform
	info.BinaryPath = path
	return info, nil
}

// Releases the native library. The process-wide default binding
// is left in place.
func (app *App) Close() error {
	if app.closer == nil {
		return nil
	}
	if err := app.closer(); err != nil {
		return fmt.Errorf("%w: %w", native.ErrBindingFailure, err)
	}
	return nil
}

type PlatformInfo struct {
	Platform   native.Platform `yaml:"platform" json:"platform"`
	BinaryPath string          `yaml:"binary-path" json:"binary_path"`
	Library    string          `yaml:"library" json:"library"`
}
