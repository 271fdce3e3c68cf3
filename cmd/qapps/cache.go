package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/qapps/pkg/cache"
	"github.com/lvim-tech/qapps/pkg/config"
	"github.com/lvim-tech/qapps/pkg/desktop"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the application catalog cache",
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rescan descriptor directories and rewrite the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cat := desktop.Scan(cfg.Apps.Directories, cfg.Home)
		store := cache.New(cfg.Apps.CacheFile, cfg.Apps.Directories)
		if err := store.Save(cat); err != nil {
			return fmt.Errorf("failed to write cache: %w", err)
		}

		fmt.Printf("Cached %d applications in %s\n", len(cat), cfg.Apps.CacheFile)
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the cache file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := os.Remove(cfg.Apps.CacheFile); err != nil && !os.IsNotExist(err) {
			return err
		}
		fmt.Printf("Removed %s\n", cfg.Apps.CacheFile)
		return nil
	},
}

var cacheWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stay resident and rebuild the cache when descriptor directories change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store := cache.New(cfg.Apps.CacheFile, cfg.Apps.Directories)
		watcher, err := store.Watch(func() desktop.Catalog {
			return desktop.Scan(cfg.Apps.Directories, cfg.Home)
		})
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer watcher.Stop()

		log.Info("watching descriptor directories", "dirs", cfg.Apps.Directories)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheRefreshCmd, cacheCleanCmd, cacheWatchCmd)
	rootCmd.AddCommand(cacheCmd)
}
