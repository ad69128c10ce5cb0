package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption customizes Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load loads configuration for a service into cfg. It reads config.yml from
// standard locations, loads a .env file if present, then lets environment
// variables override file values (AUTH_JWT_SECRET → auth.jwt.secret).
func Load(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.configFile == "" {
		lc.configFile = findFirst(
			fmt.Sprintf("./cmd/%s/config.yml", serviceName),
			"./config/config.yml",
			"./config.yml",
		)
	}
	if lc.envFile == "" {
		lc.envFile = findFirst(fmt.Sprintf(".env.%s", serviceName), ".env")
	}

	if lc.envFile != "" {
		if err := godotenv.Load(lc.envFile); err != nil {
			fmt.Printf("[config] warning: failed to load .env file %s: %v\n", lc.envFile, err)
		}
	}

	v := viper.New()
	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.configFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeys(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}
	return nil
}

// findFirst returns the first path that exists, or "".
func findFirst(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnvKeys maps UPPER_SNAKE environment variables onto nested viper keys
// so AUTH_JWT_SECRET overrides auth.jwt.secret even when the key is absent
// from the config file.
func bindEnvKeys(v *viper.Viper) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		lower := strings.ToLower(key)
		if !strings.Contains(lower, "_") {
			continue
		}
		v.Set(strings.ReplaceAll(lower, "_", "."), value)
	}
}
