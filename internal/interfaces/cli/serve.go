package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolCanvas/internal/bootstrap"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
)

// NewServeCmd creates the serve command, which runs the MolCanvas API server
// in the foreground until interrupted.
func NewServeCmd() *cobra.Command {
	var migrationsURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MolCanvas API server",
		Long:  "Runs the HTTP API server with the configured database, cache,\nevent, and object-store backends until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if cliCtx.ConfigErr != nil {
				return fmt.Errorf("serve requires a valid configuration: %w", cliCtx.ConfigErr)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cliCtx.Logger.Info("starting molcanvas server",
				logging.String("version", Version),
				logging.Int("port", cliCtx.Config.Server.Port),
			)

			return bootstrap.Run(ctx, cliCtx.Config, cliCtx.Logger, bootstrap.Options{
				Version:       Version,
				MigrationsURL: migrationsURL,
			})
		},
	}

	cmd.Flags().StringVar(&migrationsURL, "migrations", "file://migrations", "database migrations source URL (empty to skip)")

	return cmd
}

//Personal.AI order the ending
