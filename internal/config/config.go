package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	homeDirName = ".webforge"
	fileName    = "config"
	fileType    = "yaml"
	envPrefix   = "WEBFORGE"
)

// Settings is the explicit configuration snapshot threaded through
// constructors instead of ambient global lookups.
type Settings struct {
	// PackageManager forces npm or yarn; empty means lockfile detection.
	PackageManager string

	// Host and Port are the user's dev-server defaults; zero values defer
	// to plugin fragments and built-in defaults.
	Host string
	Port int

	// BundlerCommand is the external bundler executable.
	BundlerCommand string
}

// Dir returns the path to the webforge config directory (~/.webforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}

// FilePath returns the full path to the config file (~/.webforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("bundler", "webpack")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LoadSettings reads the configuration and returns its snapshot.
func LoadSettings() Settings {
	Load()
	return Settings{
		PackageManager: viper.GetString("packageManager"),
		Host:           viper.GetString("devServer.host"),
		Port:           viper.GetInt("devServer.port"),
		BundlerCommand: viper.GetString("bundler"),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
