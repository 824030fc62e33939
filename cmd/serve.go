package cmd

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CorrelAid/compress_uploader/configs"
	"github.com/CorrelAid/compress_uploader/inits"
	"github.com/CorrelAid/compress_uploader/logger"
	"github.com/CorrelAid/compress_uploader/metrics"
	"github.com/CorrelAid/compress_uploader/server"
)

func registerServeCommand() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the upload page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configs.GetConfig()
			log := logger.Logger()

			db, err := inits.NewHistoryDB()
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: cfg.Client.GetTimeoutDuration()}
			srv := server.New(cfg, client, db, metrics.New(), *log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	rootCmd.AddCommand(serveCmd)
}
