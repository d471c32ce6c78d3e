package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/healthjobfinder/internal/search"
	"github.com/jonathan/healthjobfinder/internal/server"
	"github.com/jonathan/healthjobfinder/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start an HTTP server exposing job search, market insights and saved filters as a JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := a.newClient(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			filters, err := store.Open(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = filters.Close() }()

			svc := search.NewService(client, search.WithLogger(a.log))
			srv := server.New(server.Config{Port: port, RateLimit: a.cfg.RateLimitPerMinute()}, svc, filters, a.log)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config, 8080)")
	return cmd
}
