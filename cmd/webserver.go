package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/chemreact/pkg/ai"
	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/infras/tracing"
	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/router"
)

// NewWebServerCmd ...
func NewWebServerCmd() *cobra.Command {
	var seed bool

	webServerCmd := cobra.Command{
		Use:   "webserver",
		Short: "webserver start http server.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			logging.InitLogger()
			logger := logging.GetSystemLogger()

			database.InitDBClient(ctx)
			if seed {
				if err := migrateAndSeed(ctx); err != nil {
					logger.Fatalf("failed to seed catalog: %s", err)
				}
			}

			tracingCfg, err := envs.LoadTracingConfig()
			if err != nil {
				logger.Fatal(err)
			}
			shutdown, err := tracing.Setup(ctx, tracingCfg)
			if err != nil {
				logger.Fatalf("failed to setup tracing: %s", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = shutdown(shutdownCtx)
			}()

			aiCfg, err := envs.LoadAIConfig()
			if err != nil {
				logger.Fatal(err)
			}
			if err = ai.InitExplainer(aiCfg); err != nil {
				logger.Fatalf("failed to init ai explainer: %s", err)
			}

			color.Green("Starting server at http://0.0.0.0:%s/api", envs.ServerPort)
			color.Cyan("AI providers: %v (fallback: %s)", aiCfg.Providers, ai.SourceLocal)
			if err = router.Run(); err != nil {
				logger.Errorf("failed to start server: %s", err)
			}
		},
	}

	webServerCmd.Flags().BoolVar(&seed, "seed", false, "apply migrations and load catalog data before starting")

	return &webServerCmd
}

func init() {
	rootCmd.AddCommand(NewWebServerCmd())
}
