package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/dataset"
	"github.com/spf13/viper"
)

const (
	KeyAddress = "http.address"
	KeyUrl     = "dataset.url"
	KeyFile    = "dataset.file"
	KeyTimeout = "dataset.timeout"
	KeyWidth   = "chart.width"
	KeyHeight  = "chart.height"
	KeyMargin  = "chart.margin"
	KeyTicks   = "chart.ticks"
	KeyPalette = "chart.palette"
	KeyMark    = "chart.mark"
	KeyMinify  = "chart.minify"
	KeyLevel   = "log.level"

	envPrefix = "SCATTER"

	MaxTicks = 100
)

var (
	ErrDimension = errors.New("invalid chart dimension")
	ErrTicks     = errors.New("invalid number of ticks")
)

type Config struct {
	Address string

	Url     string
	File    string
	Timeout time.Duration

	Width   float64
	Height  float64
	Margin  float64
	Ticks   int
	Palette string
	Mark    string
	Minify  bool

	LogLevel string
}

// New returns a viper instance with the defaults set and the environment
// bound: chart.width is read from SCATTER_CHART_WIDTH.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddress, ":8080")
	v.SetDefault(KeyUrl, dataset.DefaultUrl)
	v.SetDefault(KeyFile, "")
	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyWidth, scatter.DefaultWidth)
	v.SetDefault(KeyHeight, scatter.DefaultHeight)
	v.SetDefault(KeyMargin, scatter.DefaultMargin)
	v.SetDefault(KeyTicks, scatter.DefaultTicks)
	v.SetDefault(KeyPalette, "category10")
	v.SetDefault(KeyMark, "circle")
	v.SetDefault(KeyMinify, false)
	v.SetDefault(KeyLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file when given and returns the resulting configuration.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	cfg := Config{
		Address:  v.GetString(KeyAddress),
		Url:      v.GetString(KeyUrl),
		File:     v.GetString(KeyFile),
		Timeout:  v.GetDuration(KeyTimeout),
		Width:    v.GetFloat64(KeyWidth),
		Height:   v.GetFloat64(KeyHeight),
		Margin:   v.GetFloat64(KeyMargin),
		Ticks:    v.GetInt(KeyTicks),
		Palette:  v.GetString(KeyPalette),
		Mark:     v.GetString(KeyMark),
		Minify:   v.GetBool(KeyMinify),
		LogLevel: v.GetString(KeyLevel),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Margin < 0 {
		return ErrDimension
	}
	if c.Width <= c.Margin*2 || c.Height <= c.Margin*2 {
		return fmt.Errorf("%w: margin %.0f too large for %.0fx%.0f", ErrDimension, c.Margin, c.Width, c.Height)
	}
	if c.Ticks < 0 || c.Ticks > MaxTicks {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrTicks, c.Ticks, MaxTicks)
	}
	return nil
}

func (c Config) Plot() (scatter.Config, error) {
	pal, err := scatter.PaletteByName(c.Palette)
	if err != nil {
		return scatter.Config{}, err
	}
	return scatter.Config{
		Width:   c.Width,
		Height:  c.Height,
		Margin:  c.Margin,
		Ticks:   c.Ticks,
		Palette: pal,
	}, nil
}

func (c Config) Chart() (scatter.Chart, error) {
	pc, err := c.Plot()
	if err != nil {
		return scatter.Chart{}, err
	}
	mark, err := scatter.MarkByName(c.Mark)
	if err != nil {
		return scatter.Chart{}, err
	}
	ch := scatter.NewChart(pc)
	ch.Mark = mark
	ch.Minify = c.Minify
	return ch, nil
}
