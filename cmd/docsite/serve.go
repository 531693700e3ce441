package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/docsite"
	xlog "github.com/eringen/docsite/internal/log"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		noStore  bool
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the inspector and reload the config on every change",
		Long: `serve starts the inspector HTTP server. It shows the navigation outline,
resolves sidebars for any route and reports broken links, reloading the site
config whenever the file changes. Each distinct valid config is recorded as a
snapshot unless --no-store is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, !noStore, debounce)
		},
	}
	cmd.Flags().String("addr", ":4173", "listen address")
	cmd.Flags().String("site-url", "", "canonical site URL; enables /sitemap.xml")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "do not record snapshots")
	cmd.Flags().DurationVar(&debounce, "debounce", docsite.DefaultDebounce, "delay between a file change and the reload")
	return cmd
}

func (a *app) serve(ctx context.Context, withStore bool, debounce time.Duration) error {
	logger := xlog.WithComponent("cli")

	cache := docsite.NewConfigCache(docsite.FileLoader(a.settings.File), 0)
	opts := []docsite.Option{}
	if docs := a.docsFS(); docs != nil {
		opts = append(opts, docsite.WithDocs(docs))
	}
	if withStore {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, docsite.WithStore(store))
	}

	srv := docsite.NewServer(docsite.ServerConfig{
		Addr:    a.settings.Addr,
		SiteURL: a.settings.SiteURL,
		Source:  a.settings.File,
	}, cache, opts...)
	defer srv.Close()

	// Load once up front so a broken file is reported before serving.
	if _, err := cache.Get(); err != nil {
		logger.Warn().Err(err).Str(xlog.FieldEvent, "config.initial_load_failed").Msg("serving without a valid config until the file is fixed")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(ctx)
	})
	g.Go(func() error {
		return docsite.Watch(ctx, a.settings.File, cache, debounce)
	})
	return g.Wait()
}
