package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vkarsten/warehouse-management-system/pkg/application/services"
	"github.com/vkarsten/warehouse-management-system/pkg/config"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
	"github.com/vkarsten/warehouse-management-system/pkg/infrastructure/repositories/jsonfile"
	"github.com/vkarsten/warehouse-management-system/pkg/infrastructure/repositories/memory"
	"github.com/vkarsten/warehouse-management-system/pkg/logger"
)

// --- Global Command Variables ---
var (
	envFile     string
	catalogPath string

	rootLogger *zap.Logger
	queries    *services.QueryService
	orders     *services.OrderService

	rootCmd = &cobra.Command{
		Use:   "warehouse",
		Short: "Browse warehouse stock and place orders from your terminal",
		Long: `Warehouse is a terminal inventory browser. Without a subcommand it
starts an interactive session; the subcommands expose the same queries
directly for scripting.`,
		PersistentPreRunE: initApp,
		RunE:              runSession, // Defined in cmd_session.go
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List every warehouse with its items and totals",
		RunE:  runList, // Defined in cmd_queries.go
	}

	categoriesCmd = &cobra.Command{
		Use:   "categories",
		Short: "Show the numbered category menu with item counts",
		RunE:  runCategories, // Defined in cmd_queries.go
	}

	searchCmd = &cobra.Command{
		Use:   "search <item name>",
		Short: "Report availability of an item across warehouses",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch, // Defined in cmd_queries.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to an optional .env file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a JSON catalog document (overrides WAREHOUSE_CATALOG)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(searchCmd)
}

// initApp loads configuration and the catalog, then wires the services. A
// catalog that fails to load aborts startup; there is no partial catalog.
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	rootLogger = logger.Must(logger.New(cfg.LogLevel))

	loader := jsonfile.NewLoader()
	var records []*entities.StockRecord
	if cfg.CatalogPath != "" {
		records, err = loader.LoadFile(cfg.CatalogPath)
	} else {
		records, err = loader.LoadDefault()
	}
	if err != nil {
		rootLogger.Error("catalog load failed", zap.Error(err))
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	catalog := memory.NewCatalogRepository(len(records))
	if err := catalog.LoadRecords(records); err != nil {
		return fmt.Errorf("failed to populate catalog: %w", err)
	}

	queries = services.NewQueryService(catalog)
	orders = services.NewOrderService(queries)

	rootLogger.Debug("catalog loaded",
		zap.Int("records", len(records)),
		zap.Int("warehouses", len(catalog.Warehouses())),
		zap.Int("categories", len(catalog.Categories())),
	)
	return nil
}
