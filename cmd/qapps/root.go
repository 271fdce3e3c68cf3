package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/qapps/pkg/cache"
	"github.com/lvim-tech/qapps/pkg/config"
	"github.com/lvim-tech/qapps/pkg/desktop"
	"github.com/lvim-tech/qapps/pkg/launcher"
	"github.com/lvim-tech/qapps/pkg/run"
	"github.com/lvim-tech/qapps/pkg/utils"
)

var (
	launcherName string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "qapps",
	Short: "Desktop application launcher menu",
	Long: `qapps scans .desktop files from prioritized directories, shows the
application names through an external selector (dmenu, rofi, fzf, bemenu, or
fuzzel), and execs the selection - or whatever command line you type into the
menu. A timestamp-gated cache skips rescanning when nothing changed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&launcherName, "launcher", "l", "",
		"selector to use (dmenu, rofi, fzf, bemenu, fuzzel)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// An empty catalog still shows the menu: the selector accepts free-typed
	// command lines even with nothing to pick from.
	cat := loadCatalog(cfg)

	name := launcherName
	if name == "" {
		name = cfg.DefaultLauncher
	}
	l, err := launcher.New(name, cfg)
	if err != nil {
		return err
	}

	selection, err := l.Show(cat.Names(), "run")
	if err != nil {
		// Dismissing the menu is a clean no-op.
		if launcher.IsCancelled(err) {
			return nil
		}
		return err
	}

	plan := run.Resolve(cat, selection, run.Options{
		Terminal: cfg.Terminal,
		Home:     cfg.Home,
	})
	log.Debug("launching", "argv", plan.Argv, "dir", plan.Dir)

	if err := plan.Exec(); err != nil {
		utils.NotifyError(&cfg.Notifications, "qapps", err.Error())
		return err
	}
	return nil
}

// loadCatalog returns the cached catalog when it is still fresh, otherwise
// rescans and rewrites the cache. A cache that cannot be written only costs
// the next run a rescan.
func loadCatalog(cfg *config.Config) desktop.Catalog {
	store := cache.New(cfg.Apps.CacheFile, cfg.Apps.Directories)

	if cat, ok := store.Load(); ok {
		log.Debug("catalog loaded from cache", "entries", len(cat))
		return cat
	}

	cat := desktop.Scan(cfg.Apps.Directories, cfg.Home)
	log.Debug("catalog rebuilt", "entries", len(cat))
	if err := store.Save(cat); err != nil {
		log.Debug("cannot write cache", "path", cfg.Apps.CacheFile, "err", err)
	}
	return cat
}
