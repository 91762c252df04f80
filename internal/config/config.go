package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mostrodesk/internal/login"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	HostDesktop  = "desktop"
	HostTerminal = "terminal"
)

type AppConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Asset    string `mapstructure:"asset" yaml:"asset"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
}

func Defaults() AppConfig {
	return AppConfig{
		Host:     HostDesktop,
		Asset:    login.DefaultLogoPath,
		LogLevel: "info",
	}
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "mostrodesk", "mostrodesk.yaml"), nil
}

// Load merges defaults, the config file, MOSTRODESK_* environment variables
// and flags, in increasing precedence. file may be empty.
func Load(file string, flags *pflag.FlagSet) (AppConfig, error) {
	var c AppConfig
	d := Defaults()

	v := viper.New()
	v.SetDefault("host", d.Host)
	v.SetDefault("asset", d.Asset)
	v.SetDefault("log-level", d.LogLevel)

	v.SetConfigName("mostrodesk")
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(ExpandPath(file))
	}
	if p, err := Path(); err == nil {
		v.AddConfigPath(filepath.Dir(p))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("mostrodesk")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	c.Asset = ExpandPath(c.Asset)
	return c, c.Validate()
}

func (c AppConfig) Validate() error {
	switch c.Host {
	case HostDesktop, HostTerminal:
		return nil
	}
	return fmt.Errorf("unknown host %q (expected %q or %q)", c.Host, HostDesktop, HostTerminal)
}

func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
