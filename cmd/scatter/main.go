package main

import (
	"fmt"
	"os"

	"github.com/midbel/scatter/internal/config"
	"github.com/midbel/scatter/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	var (
		v    = config.New()
		file string
	)
	root := &cobra.Command{
		Use:           "scatter",
		Short:         "scatter plot of the iris flower dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&file, "config", "c", "", "configuration file")
	root.PersistentFlags().String("url", "", "url of the dataset")
	root.PersistentFlags().String("file", "", "local dataset file (overrides url)")
	root.PersistentFlags().Duration("timeout", 0, "timeout of the dataset fetch")
	root.PersistentFlags().Float64("width", 0, "chart width")
	root.PersistentFlags().Float64("height", 0, "chart height")
	root.PersistentFlags().Float64("margin", 0, "chart margin")
	root.PersistentFlags().Int("ticks", 0, "number of ticks per axis")
	root.PersistentFlags().String("palette", "", "colour palette (category10, tableau10)")
	root.PersistentFlags().String("mark", "", "shape of the marks (circle, square, diamond)")
	root.PersistentFlags().Bool("minify", false, "minify the svg output")
	root.PersistentFlags().String("log-level", "", "log level")

	bindFlags(v, root, map[string]string{
		config.KeyUrl:     "url",
		config.KeyFile:    "file",
		config.KeyTimeout: "timeout",
		config.KeyWidth:   "width",
		config.KeyHeight:  "height",
		config.KeyMargin:  "margin",
		config.KeyTicks:   "ticks",
		config.KeyPalette: "palette",
		config.KeyMark:    "mark",
		config.KeyMinify:  "minify",
		config.KeyLevel:   "log-level",
	})

	load := func() (config.Config, error) {
		cfg, err := config.Load(v, file)
		if err != nil {
			return cfg, err
		}
		logging.Setup(cfg.LogLevel)
		return cfg, nil
	}
	root.AddCommand(serveCommand(v, load), drawCommand(load))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}
