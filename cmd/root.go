package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/takak2166/notion-clipper/internal/extension"
	"github.com/takak2166/notion-clipper/internal/logger"
	"github.com/takak2166/notion-clipper/internal/selection"
	"github.com/takak2166/notion-clipper/internal/settings"
)

type rootOptions struct {
	storePath  string
	useKeyring bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	// .env is optional; it only supplies flag defaults
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	cmd := &cobra.Command{
		Use:   "notion-clipper",
		Short: "Add selected text and notes to a Notion database",
		Long: `Capture a text selection or typed fields and create a page for it in a
Notion database.

Save your integration token and database ID once with "config"; the database
must have Name, Date and Description properties.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(opts.logLevel); err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.storePath, "store", envOr("NOTION_CLIPPER_STORE", defaultStorePath()), "Path to the settings database")
	cmd.PersistentFlags().BoolVar(&opts.useKeyring, "keyring", false, "Keep the Notion token in the OS keyring")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newConfigCmd(opts),
		newSelectCmd(opts),
		newAddCmd(opts),
		newStatusCmd(opts),
	)

	return cmd
}

// openExtension opens the settings store and hosts the extension contexts
// around page. The returned func releases both.
func (o *rootOptions) openExtension(page selection.Page) (*extension.Extension, func(), error) {
	if dir := filepath.Dir(o.storePath); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, nil, fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	db, err := settings.OpenSQLite(o.storePath)
	if err != nil {
		return nil, nil, err
	}

	var store settings.Store = db
	if o.useKeyring {
		store = settings.NewKeyringStore(db)
	}

	ext := extension.New(extension.Config{
		Store: store,
		Page:  page,
	})

	closeFn := func() {
		ext.Close()
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close settings database", err)
		}
	}
	return ext, closeFn, nil
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "notion-clipper.db"
	}
	return filepath.Join(dir, "notion-clipper", "settings.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// noSelection is the page of commands that never read a live selection
var noSelection = selection.PageFunc(func() string { return "" })
