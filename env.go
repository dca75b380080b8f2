package snowflakedriver

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/sync/singleflight"
)

const (
	EnvPrefix = "ADBC_SNOWFLAKE_"
	// ADBCVersionEnv selects the ADBC version used by FromEnv.
	ADBCVersionEnv = EnvPrefix + "ADBC_VERSION"
)

// envConfig field names are relative to EnvPrefix.
type envConfig struct {
	ADBCVersion string `env:"ADBC_VERSION"`
}

var envKeys = []string{ADBCVersionEnv}

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// DotenvLoader populates the environment from a local file.
// FromEnv always discards its error.
type DotenvLoader func() error

type envOptions struct {
	lookup LookupFunc
	dotenv DotenvLoader
}

// EnvOption configures how FromEnv reads the environment.
type EnvOption func(*envOptions)

// WithLookupFunc replaces os.LookupEnv. A nil f is ignored.
func WithLookupFunc(f LookupFunc) EnvOption {
	return func(o *envOptions) {
		if f != nil {
			o.lookup = f
		}
	}
}

// WithDotenvLoader replaces the .env loader; nil disables it.
func WithDotenvLoader(f DotenvLoader) EnvOption {
	return func(o *envOptions) {
		o.dotenv = f
	}
}

// WithDotenvFiles loads the given files instead of ./.env.
// Variables already present in the process environment are kept.
func WithDotenvFiles(files ...string) EnvOption {
	return WithDotenvLoader(func() error {
		return loadDotenv(files...)
	})
}

// WithoutDotenv skips .env loading.
func WithoutDotenv() EnvOption {
	return WithDotenvLoader(nil)
}

var dotenvGroup singleflight.Group

func loadDotenv(files ...string) error {
	_, err, _ := dotenvGroup.Do(strings.Join(files, "\x00"), func() (any, error) {
		return nil, godotenv.Load(files...)
	})
	return err
}

func defaultEnvOptions() *envOptions {
	return &envOptions{
		lookup: os.LookupEnv,
		dotenv: func() error {
			return loadDotenv()
		},
	}
}

func readEnvConfig(lookup LookupFunc) (envConfig, error) {
	environ := make(map[string]string, len(envKeys))
	for _, key := range envKeys {
		if value, ok := lookup(key); ok {
			environ[key] = value
		}
	}
	var cfg envConfig
	if len(environ) == 0 {
		// an empty Environment would make env fall back to os.Environ
		return cfg, nil
	}
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	return cfg, err
}
