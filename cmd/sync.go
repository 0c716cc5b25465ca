package cmd

import (
	"context"
	"log"

	"content-platform/core/config"
	"content-platform/core/database"
	"content-platform/core/logger"
	"content-platform/core/storage"
	"content-platform/feature/metadata"
	contentsync "content-platform/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// syncCmd groups the reconciliation commands so operators can run them
// without the HTTP server.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the database with R2 metadata documents",
}

var syncFromR2Cmd = &cobra.Command{
	Use:   "from-r2",
	Short: "Rebuild database rows from the metadata documents in storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := buildSyncService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		result, err := svc.SyncFromR2(context.Background())
		if err != nil {
			return err
		}
		logg.Info("Sync completed",
			zap.Int("performers", result.Performers),
			zap.Int("content", result.Content),
			zap.Int("skipped", result.Skipped))
		return nil
	},
}

var syncRebuildCmd = &cobra.Command{
	Use:   "rebuild-metadata",
	Short: "Regenerate every metadata document from database rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := buildSyncService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		result, err := svc.RebuildMetadata(context.Background())
		if err != nil {
			return err
		}
		logg.Info("Metadata rebuild completed",
			zap.Int("performers", result.Performers),
			zap.Int("content", result.Content),
			zap.Int("skipped", result.Skipped))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report drift between the database and storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := buildSyncService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		status, err := svc.Status(context.Background())
		if err != nil {
			return err
		}
		logg.Info("Sync status",
			zap.Bool("synced", status.Synced),
			zap.Int64("neon_performers", status.Neon.Performers),
			zap.Int64("neon_content", status.Neon.Content),
			zap.Int64("r2_performers", status.R2.Performers),
			zap.Int64("r2_content", status.R2.Content),
			zap.Strings("performers_missing_in_db", status.Drift.PerformersMissingInDB),
			zap.Strings("performers_missing_in_r2", status.Drift.PerformersMissingInR2),
			zap.Strings("content_missing_in_db", status.Drift.ContentMissingInDB),
			zap.Strings("content_missing_in_r2", status.Drift.ContentMissingInR2))
		return nil
	},
}

// buildSyncService wires config, logger, database, and storage the same
// way the start command does, minus the HTTP server.
func buildSyncService() (*contentsync.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	var db *gorm.DB
	if db, err = database.Connect(cfg.Database); err != nil {
		return nil, nil, err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	store := metadata.NewStore(client, cfg.Storage.Bucket, logg)

	return contentsync.NewService(db, store, logg), logg, nil
}

func init() {
	syncCmd.AddCommand(syncFromR2Cmd)
	syncCmd.AddCommand(syncRebuildCmd)
	syncCmd.AddCommand(syncStatusCmd)
	RootCmd.AddCommand(syncCmd)
}
