package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hupe1980/idkey"
	"github.com/hupe1980/idkey/catalog"
	"github.com/hupe1980/idkey/model"
	"github.com/hupe1980/idkey/prom"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		sel         selectionFlags
		node        string
		metricsAddr string
		minInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run a pass whenever a catalog file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = a.cfg.Metrics.Addr
			}

			var optFns []idkey.Option
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				optFns = append(optFns, idkey.WithMetricsCollector(prom.New(reg)))
				srv := serveMetrics(metricsAddr, reg)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
				a.logger.InfoContext(ctx, "serving metrics", "addr", metricsAddr)
			}
			key := idkey.New(append([]idkey.Option{idkey.WithLogger(a.logger)}, optFns...)...)

			onChange := func(cat *model.Catalog, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("Reload failed:"), err)
					return
				}
				if err := key.SetCatalog(ctx, cat); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("Reload failed:"), err)
					return
				}
				selection, err := sel.build(cat)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("Invalid selection:"), err)
					return
				}
				res, _ := key.Apply(ctx, selection)
				fmt.Fprintf(out, "%s %s\n", gray(time.Now().Format(time.TimeOnly)), cyan("catalog reloaded"))
				printItems(out, key.VisibleItems(), cat.Len())
				printPassError(cmd.ErrOrStderr(), res)
			}

			w := catalog.NewWatcher(args[0], onChange, a.catalogOptions(node),
				catalog.WithMinReloadInterval(minInterval),
				catalog.WithWatcherLogger(a.logger.Logger),
			)
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().StringVar(&node, "node", "", "guide node to key (default: the start node)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().DurationVar(&minInterval, "min-interval", 250*time.Millisecond, "minimum time between reloads")
	return cmd
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Printf("%s metrics server: %v\n", red("Error:"), err)
		}
	}()
	return srv
}
