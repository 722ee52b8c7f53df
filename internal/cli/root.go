package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ifcgraph/internal/config"
	"github.com/matzehuels/ifcgraph/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Run without a subcommand, ifcgraph starts the interactive session: pick a
// file, enter a starting tag, save the image.
func (c *CLI) RootCommand() *cobra.Command {
	var open bool

	root := &cobra.Command{
		Use:   appName + " [file]",
		Short: "ifcgraph draws the reference graph of an IFC file",
		Long: `ifcgraph parses an IFC (STEP physical file) model, follows the references
of one record breadth-first and draws every record it reaches. Edges fade with
their distance from the starting record.

Run without arguments for the interactive session.`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The level applies before the config is read so load problems
			// are logged at debug too.
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.registerHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			if !flagChanged(cmd, "open") {
				open = c.settings().Display.Open
			}
			return c.runInteractive(cmd.Context(), file, open)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the parse/layout/render cache")
	root.Flags().BoolVar(&open, "open", true, "open the saved image with the system viewer")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
