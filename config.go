package graphlab

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// PlotConfig holds the initial renderer state.
type PlotConfig struct {
	Title      string   `yaml:"title"`
	Mode       PlotMode `yaml:"mode"`
	ShowLabels bool     `yaml:"show_labels"`
}

// Config is the full application configuration. The zero value is not
// valid; start from DefaultConfig.
type Config struct {
	Window        RunConfig  `yaml:"window"`
	Domain        Domain     `yaml:"domain"`
	Plot          PlotConfig `yaml:"plot"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
	Debug         bool       `yaml:"debug"`
}

// ErrInvalidConfig wraps configuration validation failures.
var ErrInvalidConfig = errors.New("graphlab: invalid config")

// DefaultConfig returns a 900×600 resizable window (minimum 500×400) showing
// CubedCosine over DefaultDomain as a labelled line chart.
func DefaultConfig() Config {
	return Config{
		Window: RunConfig{
			Title:     "Graph Drawing Lab",
			Width:     900,
			Height:    600,
			MinWidth:  500,
			MinHeight: 400,
		},
		Domain: DefaultDomain,
		Plot: PlotConfig{
			Title:      CubedCosineTitle,
			Mode:       PlotLine,
			ShowLabels: true,
		},
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Validate checks the domain and window sizes.
func (c Config) Validate() error {
	if err := c.Domain.Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.MinWidth < 0 || c.Window.MinHeight < 0 {
		return fmt.Errorf("%w: negative minimum window size", ErrInvalidConfig)
	}
	if c.Plot.Mode != PlotLine && c.Plot.Mode != PlotScatter {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidMode)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("graphlab: read config: %w", err)
	}
	return ParseConfig(data)
}

// Encode returns c as YAML, e.g. to write a starter config file.
func (c Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
