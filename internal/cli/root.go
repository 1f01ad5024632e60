package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lazypower/sparks/internal/config"
	"github.com/lazypower/sparks/internal/logging"
	"github.com/lazypower/sparks/internal/shell"
	"github.com/lazypower/sparks/internal/store"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "sparks",
	Short: "Track your dating contacts from the terminal",
	Long:  "Sparks keeps a local record of who you're talking to, how long it's been going, and who's gone quiet. Single Go binary, one SQLite file.",
	RunE:  runShell,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Path to the contacts database (default ~/.sparks/sparks.db)")
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath picks the database location: --db flag, then SPARKS_DB,
// then the default under the home directory.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := os.Getenv("SPARKS_DB"); env != "" {
		return env, nil
	}
	return store.DefaultDBPath()
}

func runShell(cmd *cobra.Command, args []string) error {
	logging.Setup()

	cfg := config.Default()
	path, err := resolveDBPath()
	if err != nil {
		return fmt.Errorf("resolve db path: %w", err)
	}
	cfg.Database.Path = path

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	slog.Debug("database open", "path", db.Path)

	sh := shell.New(db, cfg, os.Stdin, os.Stdout)
	sh.Banner = isatty.IsTerminal(os.Stdin.Fd())

	// The loop blocks on stdin, so an interrupt is handled out of band:
	// say goodbye, close the store, exit clean.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		sh.Farewell()
		db.Close()
		os.Exit(0)
	}()

	return sh.Run()
}
