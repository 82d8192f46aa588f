package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/storage"
)

// 执行全部迁移并写入种子数据
func migrateAndSeed(ctx context.Context) error {
	if err := database.RunMigrate(ctx, ""); err != nil {
		return err
	}
	storage.InitCatalog()
	result, err := storage.SeedCatalog(ctx, database.Client(ctx), storage.Catalog)
	if err != nil {
		return err
	}
	color.Green(
		"catalog loaded: elements %d created / %d updated, molecules %d / %d, reactions %d / %d",
		result.Elements.Created, result.Elements.Updated,
		result.Molecules.Created, result.Molecules.Updated,
		result.Reactions.Created, result.Reactions.Updated,
	)
	return nil
}

var loadDataCmd = &cobra.Command{
	Use:   "loaddata",
	Short: "Load elements, molecules and reactions into the database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		logging.InitLogger()
		database.InitDBClient(ctx)

		if err := migrateAndSeed(ctx); err != nil {
			logging.GetSystemLogger().Fatalf("failed to load data: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(loadDataCmd)
}
