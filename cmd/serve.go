package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/forwardswap/transactor/controller"
	"github.com/forwardswap/transactor/handler"
	"github.com/forwardswap/transactor/metrics"
	"github.com/forwardswap/transactor/transactor"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reply controller that accepts the transactor commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		t, err := open_transactor(ctx, app_config, logger)
		if err != nil {
			return fmt.Errorf("open_transactor: %w", err)
		}
		defer t.Close()

		return serve(ctx, t)
	},
}

func serve(ctx context.Context, t *transactor.Transactor) error {
	app_config.SetDefaults(controller.ControllerConfigurations)

	reply, err := controller.NewReply(app_config.GetUint64("TRANSACTOR_PORT"), logger)
	if err != nil {
		return fmt.Errorf("controller.NewReply: %w", err)
	}
	defer reply.Close()

	logger.Info("serving the transactor",
		"node", t.Endpoint(),
		"address", t.Address().Hex(),
		"smartcontract", t.Smartcontract().Address.Hex(),
	)

	group, ctx := errgroup.WithContext(ctx)

	if app_config.Exist("TRANSACTOR_METRICS_ADDR") {
		m := metrics.New()
		t.SetMetrics(m)
		group.Go(func() error {
			return m.Serve(ctx, app_config.GetString("TRANSACTOR_METRICS_ADDR"), logger)
		})
	}

	group.Go(func() error {
		return reply.Run(ctx, handler.Handlers(), t)
	})

	return group.Wait()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
