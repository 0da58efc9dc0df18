package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	var (
		port     int
		sceneDir string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:          "pathtracer-web",
		Short:        "Serve scene listings and renders over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			logger.Info("path tracer web server", "url", "http://localhost:"+cmd.Flag("port").Value.String())
			return server.NewServer(port, sceneDir, logger).Start(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to serve on")
	cmd.Flags().StringVar(&sceneDir, "scenes", "scenes", "directory of scene description files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every request")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
