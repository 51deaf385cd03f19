package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/keelpoint/sitemotion/config"
	"github.com/keelpoint/sitemotion/content"
	"github.com/keelpoint/sitemotion/logging"
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Keelpoint marketing page motion engine",
	Long: `Showcase drives the scroll and pointer synchronized presentation of the
marketing page in a terminal, and inspects the weekly insight rotation and
scroll phase mapping from the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML tuning file layered over the defaults")
	rootCmd.PersistentFlags().String("content", "", "YAML site content file, the embedded site when empty")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file, discarded when empty")
}

// environment is the state every subcommand shares
type environment struct {
	cfg     config.Config
	site    *content.Site
	log     *slog.Logger
	logFile io.Closer
}

func (e *environment) Close() error {
	if e.logFile == nil {
		return nil
	}
	return e.logFile.Close()
}

// loadEnvironment resolves the persistent flags into config, content and logger
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	configPath, _ := cmd.Flags().GetString("config")
	contentPath, _ := cmd.Flags().GetString("content")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File, _ = cmd.Flags().GetString("log-file")
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	w, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}

	site, err := loadSite(contentPath)
	if err != nil {
		w.Close()
		return nil, err
	}

	return &environment{
		cfg:     cfg,
		site:    site,
		log:     logging.New(level, w),
		logFile: w,
	}, nil
}

func loadSite(path string) (*content.Site, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}
