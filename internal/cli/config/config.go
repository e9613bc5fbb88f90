// Package config loads the reskit.yml project configuration.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/reskit/reskit/internal/resource"
)

// Config is the project configuration surface.
type Config struct {
	Resources      []string `mapstructure:"resources"`
	Ignore         []string `mapstructure:"ignore"`
	Output         string   `mapstructure:"output"`
	TestOutput     string   `mapstructure:"test_output"`
	Package        string   `mapstructure:"package"`
	Access         string   `mapstructure:"access"`
	Categories     []string `mapstructure:"categories"`
	VariantTags    []string `mapstructure:"variant_tags"`
	SettingsKeys   []string `mapstructure:"settings_keys"`
	Configurations []string `mapstructure:"configurations"`
}

// Load reads reskit.yml (or reskit.yaml) from the working directory,
// falling back to defaults when absent.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("resources", []string{"resources"})
	v.SetDefault("output", "res/res.go")
	v.SetDefault("package", "res")
	v.SetDefault("access", "public")
	v.SetDefault("categories", categoryNames())
	v.SetDefault("variant_tags", []string{"light", "dark"})
	v.SetDefault("configurations", []string{"Debug", "Release"})

	v.SetConfigName("reskit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file - defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Output == "" {
		return fmt.Errorf("config: output must not be empty")
	}
	if cfg.Package == "" {
		return fmt.Errorf("config: package must not be empty")
	}
	if cfg.Access != "public" && cfg.Access != "internal" {
		return fmt.Errorf("config: access must be public or internal, got %q", cfg.Access)
	}
	if _, err := cfg.EnabledCategories(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EnabledCategories resolves the configured category names.
func (c *Config) EnabledCategories() ([]resource.Category, error) {
	out := make([]resource.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := resource.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}

// InProject reports whether the working directory looks like a reskit
// project (a config file or a resources directory exists).
func InProject() bool {
	for _, name := range []string{"reskit.yml", "reskit.yaml"} {
		if _, err := os.Stat(name); err == nil {
			return true
		}
	}
	_, err := os.Stat("resources")
	return err == nil
}

func categoryNames() []string {
	cats := resource.AllCategories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.String()
	}
	return out
}
