package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"safety-board/app"
	"safety-board/config"
	"safety-board/grid"
	"safety-board/log"
	"safety-board/storage"
	"safety-board/ui/layout"
)

var (
	version   = "0.3.0"
	storeFlag string
	rootCmd   = &cobra.Command{
		Use:   "safety-board",
		Short: "Safety Board - a rearrangeable workplace safety dashboard for the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			return app.Run(ctx, cfg, store)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the saved layout and slot assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			if err := storage.NewAdapterFromConfig(store, cfg).Clear(); err != nil {
				return fmt.Errorf("failed to reset storage: %w", err)
			}
			fmt.Println("Layout and slots have been reset to the defaults")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and the saved layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			saved, err := storage.NewAdapterFromConfig(store, cfg).Export()
			if err != nil {
				return fmt.Errorf("failed to read saved layout: %w", err)
			}
			fmt.Printf("Store: %s\n%s\n", store.Path(), saved)
			fmt.Printf("Log: %s\n", log.FileName())

			width, height, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				fmt.Println("Terminal: not a terminal")
				return nil
			}
			m := layout.Metrics{CellWidthPx: float64(cfg.CellWidthPx), CellHeightPx: float64(cfg.CellHeightPx)}
			wpx, hpx := m.Px(width, height)
			fmt.Printf("Terminal: %dx%d cells, %.0fx%.0f px, root scale %.2f, mode %s\n",
				width, height, wpx, hpx, grid.RootScale(wpx, hpx), layout.DetermineMode(width, height))
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of safety-board",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("safety-board version %s\n", version)
		},
	}
)

// openStore opens the file store named by --store, or the configured one.
func openStore(cfg *config.Config) (*config.FileStore, error) {
	if storeFlag != "" {
		cfg.StorePath = storeFlag
	}
	path, err := cfg.ResolveStorePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	return config.NewFileStore(path), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storeFlag, "store", "s", "",
		"Store file holding the layout and slots (relative paths are resolved against ~/.safety-board)")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
