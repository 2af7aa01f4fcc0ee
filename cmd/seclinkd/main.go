// Copyright 2026 Seclink Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// seclinkd tracks the host's network state through the kernel's routing
// socket and exposes it over a small HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seclink/seclink/kernelnet"
	"github.com/seclink/seclink/pkg/log"
	"github.com/seclink/seclink/pkg/private/serrors"
)

func main() {
	var configFile string
	cmd := &cobra.Command{
		Use:           "seclinkd",
		Short:         "Network state tracker and route manager",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			if err := log.Setup(log.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			}); err != nil {
				return err
			}
			defer log.Flush()
			defer log.HandlePanic()
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "configuration file")
	cmd.MarkFlagRequired("config")
	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print a sample configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), configSample)
		},
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	calls := &daemonCallbacks{
		ignorePatterns: cfg.Kernel.IgnoreInterfaces,
		logger:         log.Root(),
	}
	network, err := kernelnet.New(kernelnet.Config{
		Callbacks:     calls,
		WithoutEvents: cfg.Kernel.WithoutEvents,
		Metrics:       kernelnet.NewMetrics(prometheus.DefaultRegisterer),
		Logger:        log.Root(),
	})
	if err != nil {
		return serrors.Wrap("creating kernel backend", err)
	}
	defer network.Destroy()

	g, errCtx := errgroup.WithContext(ctx)
	if cfg.API.Addr != "" {
		a := &api{network: network, calls: calls}
		g.Go(func() error {
			defer log.HandlePanic()
			return serve(errCtx, "API", cfg.API.Addr, a.handler())
		})
	}
	if cfg.Metrics.Prometheus != "" {
		http.Handle("/metrics", promhttp.Handler())
		g.Go(func() error {
			defer log.HandlePanic()
			// nil handler serves the default mux, including pprof.
			return serve(errCtx, "metrics", cfg.Metrics.Prometheus, nil)
		})
	}
	log.Info("seclinkd running")
	return g.Wait()
}

// serve runs an HTTP server until the context is cancelled.
func serve(ctx context.Context, name, addr string, h http.Handler) error {
	server := &http.Server{Addr: addr, Handler: h}
	go func() {
		defer log.HandlePanic()
		<-ctx.Done()
		server.Close()
	}()
	log.Info("Exposing "+name, "addr", addr)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return serrors.Wrap("serving "+name, err, "addr", addr)
	}
	return nil
}
