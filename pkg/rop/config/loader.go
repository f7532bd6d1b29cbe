package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix scopes the environment variables Load reads. Nested keys are
// separated by a double underscore: FLOWLESS_LOGGING__LEVEL=debug.
const EnvPrefix = "FLOWLESS_"

// LoaderConfig holds optional file overrides.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
	Environ    func() []string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnviron replaces os.Environ, for tests.
func WithEnviron(environ func() []string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Environ = environ }
}

type defaulter interface {
	ApplyDefaults()
}

// Load fills cfg from, in increasing priority, the YAML config file, the
// .env file and the process environment. Defaults are applied afterwards
// and the result is validated through its validate struct tags.
func Load(cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{Environ: os.Environ}
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" {
		values, err := godotenv.Read(lc.EnvFile)
		if err != nil {
			return fmt.Errorf("failed to read env file %s: %w", lc.EnvFile, err)
		}
		for key, value := range values {
			bindEnv(v, key, value)
		}
	}

	for _, env := range lc.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if ok {
			bindEnv(v, key, value)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if d, ok := cfg.(defaulter); ok {
		d.ApplyDefaults()
	}

	return Validate(cfg)
}

// bindEnv maps FLOWLESS_A__B=value onto the viper key a.b.
func bindEnv(v *viper.Viper, key, value string) {
	if !strings.HasPrefix(key, EnvPrefix) {
		return
	}
	path := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	v.Set(strings.ReplaceAll(path, "__", "."), value)
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks cfg against its validate struct tags.
func Validate(cfg any) error {
	if err := getValidator().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
