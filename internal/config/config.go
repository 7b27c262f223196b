package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds everything the session needs to run: where the dataset and
// the prediction history live, and the training split parameters.
type Config struct {
	DataPath     string  `mapstructure:"data_path" yaml:"data_path"`
	HistoryPath  string  `mapstructure:"history_path" yaml:"history_path"`
	TestFraction float64 `mapstructure:"test_fraction" yaml:"test_fraction"`
	Seed         int64   `mapstructure:"seed" yaml:"seed"`
	LogLevel     string  `mapstructure:"log_level" yaml:"log_level"`
	LogFile      string  `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HOUSEPRICER")
	v.AutomaticEnv()

	v.SetDefault("data_path", "kc_house_data.csv")
	v.SetDefault("history_path", "data.txt")
	v.SetDefault("test_fraction", 0.2)
	v.SetDefault("seed", 42)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".housepricer")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return nil, fmt.Errorf("test_fraction must be in (0, 1), got %v", c.TestFraction)
	}
	return &c, nil
}

// Save writes the given configuration to cfgFile. If cfgFile is empty it
// writes to ~/.housepricer/config.yaml, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".housepricer")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
