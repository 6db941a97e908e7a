// Package cli wires the gridkit library into cobra commands.
package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/internal/config"
)

// Input holds the persistent flags shared by every subcommand.
type Input struct {
	configPath string
	verbose    bool
	conn       connFlag
	land       int
	frontier   int

	cfg config.Config
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := NewRootCommand(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the gridkit command tree.
func NewRootCommand(version string) *cobra.Command {
	in := &Input{}
	rootCmd := &cobra.Command{
		Use:               "gridkit",
		Short:             "Grid, geometry and search utilities over plain-text puzzle inputs",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: in.resolve,
	}
	rootCmd.PersistentFlags().StringVarP(&in.configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&in.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Var(&in.conn, "conn", "neighbor connectivity: 4 or 8")
	rootCmd.PersistentFlags().IntVar(&in.land, "land", 1, "minimum cell value counted as land")
	rootCmd.PersistentFlags().IntVar(&in.frontier, "max-frontier", 0, "BFS queue capacity (0 = cell count)")

	rootCmd.AddCommand(
		newBoundsCommand(in),
		newIslandsCommand(in),
		newBridgeCommand(in),
		newPathCommand(in),
		newDefragCommand(in),
		newTraceCommand(in),
		newHexCommand(in),
	)
	return rootCmd
}

// resolve loads the config file, then lets explicitly set flags override it.
func (in *Input) resolve(cmd *cobra.Command, _ []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	cfg, err := config.Load(in.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = in.verbose
	}
	if flags.Changed("conn") {
		cfg.Connectivity = int(in.conn)
	}
	if flags.Changed("land") {
		cfg.LandThreshold = in.land
	}
	if flags.Changed("max-frontier") {
		cfg.MaxFrontier = in.frontier
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	log.Debugf("config: %+v", cfg)
	in.cfg = cfg
	return nil
}
