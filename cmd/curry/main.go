// curry is a terminal conveyor-belt eating game: eat a hundred plates of
// curry as fast as you can.
//
// Usage:
//
//	curry                 - Play (same as curry play)
//	curry play            - Play the game
//	curry best            - Show the best time and saved volume
//	curry runs            - Browse finished runs, fastest first
//	curry reset           - Forget the best time (and optionally the runs)
//	curry demo            - Let a bot play a headless run
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: config tick_ms)
//	--db <path>           - Database path (default: ~/.curry/curry.db, "" = memory)
//	--namespace <name>    - Record namespace (default: curry)
//	--config <path>       - Custom config YAML
//	--log-file <path>     - Log file (default: ~/.curry/curry.log, "" = off)
//	--debug               - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/curry-rush/internal/config"
	"github.com/vovakirdan/curry-rush/internal/record"
	"github.com/vovakirdan/curry-rush/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagNamespace string
	flagConfig    string
	flagLogFile   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "curry",
	Short: "Curry Rush - eat a hundred curries against the clock",
	Long: `Curry Rush is a terminal arcade game. Plates roll along a conveyor
toward you; tap to eat. Very hot curry speeds the belt up, biting the
wrong thing costs you time, and water cools you down.

Available commands:
  play   - Play the game (default)
  best   - Show your best time
  runs   - Browse finished runs
  reset  - Forget the best time
  demo   - Watch a bot play a headless run

Examples:
  curry
  curry play --fps 120
  curry runs --plain
  curry demo --speed 20`,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config's tick_ms)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.curry/curry.db", "Path to the database (empty = in memory)")
	rootCmd.PersistentFlags().StringVar(&flagNamespace, "namespace", "curry", "Record namespace")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.curry/curry.log", "Log file (empty = no logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(demoCmd)
}

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stdout or stderr.
func newLogger() (*log.Logger, func()) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		f, err := openLogFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "curry",
		Level:           level,
	})
	return logger, closeFn
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadConfig loads the game config, exiting on invalid files.
func loadConfig() config.CurryConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openRecords opens the store and wraps it in a record adapter. Without a
// database (empty --db, or the file can't be opened) records live in memory
// and the returned store is nil.
func openRecords(logger *log.Logger) (*record.Adapter, *storage.Store) {
	if flagDBPath == "" {
		return record.NewAdapter(record.NewMemory(), flagNamespace, logger), nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, records will not persist", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return record.NewAdapter(record.NewMemory(), flagNamespace, logger), nil
	}
	return record.NewAdapter(store, flagNamespace, logger), store
}

// mustOpenStore opens the database for the reporting commands.
func mustOpenStore() *storage.Store {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: this command needs a database (--db)")
		os.Exit(1)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
