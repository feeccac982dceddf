// Package config loads finmetrics settings from defaults, an optional YAML
// file, FINMETRICS_* environment variables and command line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName  = "finmetrics"
	envPrefix = "finmetrics"
)

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Store struct {
	Dir string `mapstructure:"dir"`
}

// Calculator inputs are percentages, as typed on the command line.
type Calculator struct {
	Up       float64 `mapstructure:"up"`
	Down     float64 `mapstructure:"down"`
	Prob     float64 `mapstructure:"prob"`
	Periods  int     `mapstructure:"periods"`
	Target   float64 `mapstructure:"target"`
	MaxRatio float64 `mapstructure:"max_ratio"`
	Steps    int     `mapstructure:"steps"`
}

// Simulator inputs; Up, Down and Prob are percentages.
type Simulator struct {
	Initial   float64 `mapstructure:"initial"`
	Up        float64 `mapstructure:"up"`
	Down      float64 `mapstructure:"down"`
	Prob      float64 `mapstructure:"prob"`
	Periods   int     `mapstructure:"periods"`
	Runs      int     `mapstructure:"runs"`
	Workers   int     `mapstructure:"workers"`
	Seed      uint64  `mapstructure:"seed"`
	KeepPaths int     `mapstructure:"keep_paths"`
}

type Config struct {
	Theme      string     `mapstructure:"theme"`
	NoColor    bool       `mapstructure:"no_color"`
	Log        Log        `mapstructure:"log"`
	Store      Store      `mapstructure:"store"`
	Calculator Calculator `mapstructure:"calculator"`
	Simulator  Simulator  `mapstructure:"simulator"`
}

// Defaults are the starting values of every setting.
func Defaults() map[string]any {
	return map[string]any{
		"theme":    "classic",
		"no_color": false,

		"log.level": "info",
		"log.file":  "",

		"store.dir": defaultStoreDir(),

		"calculator.up":        100.0,
		"calculator.down":      -60.0,
		"calculator.prob":      50.0,
		"calculator.periods":   2,
		"calculator.target":    20.0,
		"calculator.max_ratio": 5.0,
		"calculator.steps":     20,

		"simulator.initial":    10000.0,
		"simulator.up":         60.0,
		"simulator.down":       -20.0,
		"simulator.prob":       50.0,
		"simulator.periods":    10,
		"simulator.runs":       10000,
		"simulator.workers":    0,
		"simulator.seed":       uint64(0),
		"simulator.keep_paths": 1000,
	}
}

func defaultStoreDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "finmetrics", "runs")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "finmetrics", "runs")
	}
	return filepath.Join(".finmetrics", "runs")
}

// userConfigDir returns the directory searched for finmetrics.yaml.
func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "finmetrics"), nil
}

// Bindings maps config keys to the command line flags that override them.
type Bindings map[string]*pflag.Flag

// Load resolves the configuration. explicitPath, when non-empty, must point to
// a readable file. Flags in bindings only take effect when set by the user.
// Only the shared settings and the given sections are validated.
func Load(explicitPath string, bindings Bindings, sections ...Section) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if dir, err := userConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine, anything else is not
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range bindings {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return c, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(sections...); err != nil {
		return c, err
	}
	return c, nil
}

// Path reports which file Load would read, or "" if none exists.
func Path(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	candidates := []string{}
	if dir, err := userConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, fileName+".yaml"))
	}
	candidates = append(candidates, fileName+".yaml")
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
