// Command novasearch is the shell-layer client for the NovaSearch file
// index. It only calls into the core query/record API and renders the
// output; the index itself is built by the separate indexer daemon.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/novasearch/novasearch/internal/config"
	"github.com/novasearch/novasearch/internal/searcher"
	"github.com/novasearch/novasearch/internal/storage"
	"github.com/novasearch/novasearch/internal/usage"
)

var version = "dev"

var (
	flagDB    string
	flagLimit int
)

var rootCmd = &cobra.Command{
	Use:          "novasearch",
	Short:        "Query the NovaSearch file index",
	Version:      version,
	SilenceUsage: true,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a ranked filename search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConn(func(ctx context.Context, conn *storage.Conn) error {
			results, err := searcher.New(conn).Search(ctx, args[0], flagLimit)
			if err != nil {
				// A failed search degrades to an empty listing; the
				// diagnostic goes to stderr.
				log.Printf("search failed: %v", err)
				return nil
			}
			printResults(results)
			return nil
		})
	},
}

var recordCmd = &cobra.Command{
	Use:   "record <path>",
	Short: "Record that a file was launched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := storage.New(dbPath())
		if err != nil {
			return err
		}
		rec, err := usage.New(conn)
		if err != nil {
			return err
		}
		recorded, err := rec.RecordLaunch(context.Background(), args[0])
		if err != nil {
			// Usage stats are best-effort; report and move on.
			log.Printf("failed to record launch: %v", err)
			return nil
		}
		if !recorded {
			log.Printf("%s is not indexed yet, launch not recorded", args[0])
		}
		return nil
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most frequently launched files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConn(func(ctx context.Context, conn *storage.Conn) error {
			results, err := searcher.New(conn).MostUsed(ctx, flagLimit)
			if err != nil {
				return err
			}
			printResults(results)
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <path>",
	Short: "Show launch statistics for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConn(func(ctx context.Context, conn *storage.Conn) error {
			st, err := usage.Lookup(ctx, conn, args[0])
			if err == storage.ErrNotFound {
				fmt.Println("never launched")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("launched %d times, last %s\n",
				st.LaunchCount, humanize.Time(time.Unix(st.LastLaunched, 0)))
			return nil
		})
	},
}

var shortcutCmd = &cobra.Command{
	Use:   "shortcut",
	Short: "Print the effective hotkey in keybinder format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ConfigPath())
		if err != nil {
			return err
		}
		fmt.Println(cfg.Shortcut())
		return nil
	},
}

// dbPath resolves the index location: --db flag, then the config file's
// [database] override, then the well-known default.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Printf("failed to read config: %v", err)
		return config.DatabasePath()
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return config.DatabasePath()
}

// withConn opens the read-only connection (blocking through the retry
// protocol if the indexer holds the write lock) and hands it to fn.
func withConn(fn func(context.Context, *storage.Conn) error) error {
	ctx := context.Background()

	conn, err := storage.New(dbPath())
	if err != nil {
		return err
	}
	if err := conn.Open(ctx); err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}

func printResults(results []searcher.Result) {
	for _, r := range results {
		fileType := "-"
		if r.FileType != nil {
			fileType = *r.FileType
		}
		fmt.Printf("%-40s %-10s %8s  %s\n",
			r.Filename, fileType,
			humanize.Bytes(uint64(r.Size)),
			r.Path)
	}
}

func main() {
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "index database path (default ~/.local/share/novasearch/index.db)")
	searchCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum results (default 50)")
	topCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum results (default 50)")

	rootCmd.AddCommand(searchCmd, recordCmd, topCmd, statsCmd, shortcutCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
