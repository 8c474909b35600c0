package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the api server and catalog refresh loop",
	Long:  `start the api server and catalog refresh loop`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		go func() {
			if err := a.manager.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("catalog refresh loop stopped", zap.Error(err))
			}
		}()

		srv := server.New(log, a.manager, a.cfg)
		if err := srv.Serve(ctx); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
