// Package config loads loom.yml, the project-level generator settings.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the Loom project configuration.
type Config struct {
	// Model is the path of the model document to generate from.
	Model  string       `mapstructure:"model"`
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig represents where and as what the generated code lands.
type OutputConfig struct {
	// Dir is the directory generated files are written under.
	Dir string `mapstructure:"dir"`
	// Namespace is the import path of the generated package.
	Namespace string `mapstructure:"namespace"`
	// Package is the generated package name. Defaults to the last segment
	// of the namespace.
	Package string `mapstructure:"package"`
}

// Load loads the configuration from loom.yml in the working directory,
// falling back to defaults when the file is absent.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("model", "model.yaml")
	v.SetDefault("output.dir", "generated")

	v.SetConfigName("loom")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("LOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks mandatory fields and fills derivable defaults.
func (c *Config) Validate() error {
	if c.Output.Namespace == "" {
		return fmt.Errorf("output.namespace is required (the import path of the generated package)")
	}
	if c.Output.Package == "" {
		segments := strings.Split(c.Output.Namespace, "/")
		c.Output.Package = segments[len(segments)-1]
	}
	return nil
}
