package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"cityDesk/internal/components"
	"cityDesk/internal/config"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		components.SetupLogger("local").Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer logger.Info("http server stopped")
		return comps.HttpServer.Run(gctx)
	})
	g.Go(func() error {
		return comps.SLAMonitor.Run(gctx)
	})
	if comps.Notifier != nil {
		g.Go(func() error {
			return comps.Notifier.Run(gctx)
		})
	}

	<-gctx.Done()
	logger.Info("initiating shutdown", "reason", context.Cause(gctx))

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	logger.Info("shutting down the services...")
	comps.ShutdownAll()

	if err != nil {
		logger.Error("service failed", "err", err)
		return err
	}
	logger.Info("gracefully shut down")
	return nil
}
