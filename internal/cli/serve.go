package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/sharesout/internal/config"
	"github.com/rshade/sharesout/internal/server"
)

// NewServeCmd creates the serve command, which runs the page server.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the shares outstanding page over HTTP",
		Long: `Runs an HTTP server rendering the shares outstanding page.

  GET /              page for ?CIK=<digits>, default dataset otherwise
  GET /api/shares    the same view as JSON
  GET /data.json     the default dataset
  GET /healthz       liveness

Stops on SIGINT or SIGTERM.`,
		Example: `  # Serve on the configured address
  sharesout serve

  # Serve on port 9000
  sharesout serve --addr :9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if addr == "" {
				addr = cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p := newPipeline(cfg)
			srv := server.New(p.loader, p.static, p.locale, *zerolog.Ctx(ctx))

			cmd.Printf("Serving on %s\n", addr)
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return fmt.Errorf("serving on %s: %w", addr, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")

	return cmd
}
