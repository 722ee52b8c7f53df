package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ifcgraph/internal/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}
	cmd.AddCommand(c.configShowCommand(), c.configInitCommand(), c.configPathCommand())
	return cmd
}

// configFile is the --config path or the default location.
func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.DefaultPath()
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(c.Out, c.settings())
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile()
			if force {
				if err := config.Save(config.Default(), path); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printSuccess(c.Console, "Wrote default config")
				printFile(c.Console, path)
				return nil
			}
			created, err := config.EnsureExists(path)
			if err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			if !created {
				printInfo(c.Console, "Config already exists, use --force to overwrite")
				printFile(c.Console, path)
				return nil
			}
			printSuccess(c.Console, "Created config")
			printFile(c.Console, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.Out, c.configFile())
			return nil
		},
	}
}
