package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ifcgraph/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the parse, layout and render cache",
	}
	cmd.AddCommand(c.cacheInfoCommand(), c.cachePruneCommand(), c.cacheClearCommand(), c.cachePathCommand())
	return cmd
}

// openCache returns the cache directory and, when it exists, a FileCache on it.
func openCache() (string, *cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", nil, fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return dir, nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	return dir, fc, err
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location, size and settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, fc, err := openCache()
			if err != nil {
				return err
			}
			var u cache.Usage
			if fc != nil {
				if u, err = fc.Usage(); err != nil {
					return err
				}
			}

			cfg := c.settings()
			ttl := cfg.Cache.TTL
			if ttl == "" {
				ttl = "never expires"
			}
			printKeyValue(c.Console, "directory", dir)
			printKeyValue(c.Console, "enabled", fmt.Sprint(cfg.Cache.Enabled && !c.noCache))
			printKeyValue(c.Console, "ttl", ttl)
			printKeyValue(c.Console, "entries", humanize.Comma(int64(u.Entries)))
			printKeyValue(c.Console, "expired", humanize.Comma(int64(u.Expired)))
			printKeyValue(c.Console, "size", humanize.Bytes(uint64(u.Bytes)))
			return nil
		},
	}
}

func (c *CLI) cachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired and unreadable cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fc, err := openCache()
			if err != nil {
				return err
			}
			if fc == nil {
				printInfo(c.Console, "Cache is empty")
				return nil
			}
			n, err := fc.Prune()
			if err != nil {
				return err
			}
			printSuccess(c.Console, "Pruned %d stale entries", n)
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached graphs, layouts and images",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fc, err := openCache()
			if err != nil {
				return err
			}
			if fc == nil {
				printInfo(c.Console, "Cache is empty")
				return nil
			}
			n, err := fc.Clear()
			if err != nil {
				return err
			}
			printSuccess(c.Console, "Cleared %d cached entries", n)
			printDetail(c.Console, "Directory: %s", fc.Dir())
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.Out, dir)
			return nil
		},
	}
}
