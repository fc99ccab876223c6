// Config loading for the catindex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "CATINDEX"

	cfgKeyTopK     = "top_k"
	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"
	cfgKeyFixture  = "fixture"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# catindex configuration

# Number of categories returned by "top" when -k is not given.
top_k: 3

# Output mode: text or json.
output: text

# Log level: debug, info, warn, error.
log_level: warn

# Default fixture file (optional; overridable by --file).
# fixture:
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error. CATINDEX_* environment variables
// override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyTopK, types.DefaultTopK)
	v.SetDefault(cfgKeyOutput, types.DefaultOutput)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetDefault(cfgKeyFixture, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// decodeConfig copies the known keys into a types.Config.
func decodeConfig(v *viper.Viper) types.Config {
	return types.Config{
		TopK:     v.GetInt(cfgKeyTopK),
		Output:   v.GetString(cfgKeyOutput),
		LogLevel: v.GetString(cfgKeyLogLevel),
		Fixture:  v.GetString(cfgKeyFixture),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
