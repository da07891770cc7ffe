package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/dataset"
	"github.com/midbel/scatter/internal/config"
	"github.com/midbel/scatter/internal/metrics"
	"github.com/midbel/scatter/internal/session"
	"github.com/midbel/scatter/internal/web"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func serveCommand(v *viper.Viper, load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the interactive scatter plot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringP("address", "a", "", "listening address")
	if err := v.BindPFlag(config.KeyAddress, cmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	pc, err := cfg.Plot()
	if err != nil {
		return err
	}
	chart, err := cfg.Chart()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		sess   = session.New(scatter.NewPlot(pc))
		source = dataset.New(cfg.Url, cfg.File, cfg.Timeout)
		server = &http.Server{
			Addr:    cfg.Address,
			Handler: web.New(sess, chart).Handler(),
		}
		grp, gctx = errgroup.WithContext(ctx)
	)
	grp.Go(func() error {
		return sess.Run(gctx)
	})
	grp.Go(func() error {
		loadDataset(gctx, sess, source)
		return nil
	})
	grp.Go(func() error {
		log.Info().Str("address", cfg.Address).Msg("listening")
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	grp.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sctx)
	})
	return grp.Wait()
}

// loadDataset fetches the dataset once. A failure leaves the plot empty.
func loadDataset(ctx context.Context, sess *session.Session, source dataset.Source) {
	records, err := source.Load(ctx)
	metrics.IncLoad(err == nil)
	if err != nil {
		log.Error().Err(err).Msg("dataset not loaded")
		return
	}
	if _, err := sess.Load(ctx, records); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("dataset not loaded")
	}
}
