// Package config loads appgen.yml, environment overrides and .env files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gamezxz/crypto-price-tracker/internal/catalog"
	"github.com/Gamezxz/crypto-price-tracker/internal/xcodeproj"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = "appgen.yml"

// EnvPrefix prefixes every environment override, e.g. APPGEN_PROJECT_NAME.
const EnvPrefix = "APPGEN"

// Config is the full appgen configuration.
type Config struct {
	Output  OutputConfig      `yaml:"output"`
	Project xcodeproj.Project `yaml:"project"`
	Render  RenderConfig      `yaml:"render"`
}

// OutputConfig controls where files are written.
type OutputConfig struct {
	Root  string `yaml:"root"`
	Icons string `yaml:"icons"` // icon set directory relative to Root
}

// RenderConfig tunes the icon renderer.
type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 means one per CPU
}

// Default returns the configuration used when no file or override exists.
func Default() Config {
	return Config{
		Output:  OutputConfig{Root: ".", Icons: catalog.DefaultDir},
		Project: xcodeproj.DefaultProject(),
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output.root", d.Output.Root)
	v.SetDefault("output.icons", d.Output.Icons)
	v.SetDefault("project.name", d.Project.Name)
	v.SetDefault("project.display_name", d.Project.DisplayName)
	v.SetDefault("project.bundle_id", d.Project.BundleID)
	v.SetDefault("project.marketing_version", d.Project.MarketingVersion)
	v.SetDefault("project.deployment_target", d.Project.DeploymentTarget)
	v.SetDefault("project.category", d.Project.Category)
	v.SetDefault("render.workers", d.Render.Workers)
}

// Load reads path (YAML) on top of the defaults and applies APPGEN_*
// environment overrides. A missing file is not an error unless required.
func Load(path string, required bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
			if !missing || required {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Output: OutputConfig{
			Root:  v.GetString("output.root"),
			Icons: v.GetString("output.icons"),
		},
		Project: xcodeproj.Project{
			Name:             v.GetString("project.name"),
			DisplayName:      v.GetString("project.display_name"),
			BundleID:         v.GetString("project.bundle_id"),
			MarketingVersion: v.GetString("project.marketing_version"),
			DeploymentTarget: v.GetString("project.deployment_target"),
			Category:         v.GetString("project.category"),
		},
		Render: RenderConfig{
			Workers: v.GetInt("render.workers"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that are not covered by xcodeproj.Project.
func (c *Config) Validate() error {
	if c.Output.Icons == "" {
		return errors.New("output.icons must not be empty")
	}
	if filepath.IsAbs(c.Output.Icons) {
		return fmt.Errorf("output.icons must be relative to output.root, got %s", c.Output.Icons)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	return nil
}

// LoadDotEnv exports the variables in path unless they are already set.
// A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

const header = "# appgen configuration. Environment variables prefixed with APPGEN_\n" +
	"# override any key, e.g. APPGEN_PROJECT_BUNDLE_ID.\n"

// Marshal encodes cfg as an appgen.yml document.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
