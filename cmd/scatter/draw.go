package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/dataset"
	"github.com/midbel/scatter/internal/config"
	"github.com/spf13/cobra"
)

type drawOptions struct {
	X    string
	Y    string
	Hide []string
	Out  string
}

func drawCommand(load func() (config.Config, error)) *cobra.Command {
	var opts drawOptions
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "render the scatter plot once as svg",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runDraw(ctx, cfg, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.X, "x", "x", string(scatter.SepalLength), "attribute of the horizontal axis")
	cmd.Flags().StringVarP(&opts.Y, "y", "y", string(scatter.SepalWidth), "attribute of the vertical axis")
	cmd.Flags().StringArrayVar(&opts.Hide, "hide", nil, "species to hide (repeatable)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func runDraw(ctx context.Context, cfg config.Config, opts drawOptions) error {
	pc, err := cfg.Plot()
	if err != nil {
		return err
	}
	chart, err := cfg.Chart()
	if err != nil {
		return err
	}
	records, err := dataset.New(cfg.Url, cfg.File, cfg.Timeout).Load(ctx)
	if err != nil {
		return err
	}
	plot := scatter.NewPlot(pc)
	plot.Load(records)

	sel := plot.Selector()
	if err := sel.Change(scatter.Horizontal.String(), opts.X); err != nil {
		return fmt.Errorf("%s: %w", opts.X, err)
	}
	if err := sel.Change(scatter.Vertical.String(), opts.Y); err != nil {
		return fmt.Errorf("%s: %w", opts.Y, err)
	}
	for _, name := range opts.Hide {
		i := plot.Categories().Index(name)
		if i < 0 {
			return fmt.Errorf("%s: unknown species", name)
		}
		if plot.Categories()[i].Visible {
			plot.Toggle(i)
		}
	}
	return writeChart(opts.Out, chart, plot.View())
}

func writeChart(file string, chart scatter.Chart, view scatter.View) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return chart.Render(w, view)
}
