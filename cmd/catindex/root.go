package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catindex/internal/paths"
	"github.com/mesh-intelligence/catindex/pkg/types"
)

// errUsage marks invalid flag values.
var errUsage = errors.New("invalid usage")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by subcommands of one root command. It is filled
// in by the root PersistentPreRunE.
type app struct {
	flags  rootFlags
	cfg    types.Config
	logger *zap.Logger
}

// NewRootCmd creates the top-level "catindex" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "catindex",
		Short:   "Query and script a hierarchical category index",
		Long:    "Catindex loads a forest of categories from a YAML or JSONL fixture\nand answers descendant, ancestor-path, and depth-ranking queries.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newListCmd(a))
	root.AddCommand(newChildrenCmd(a))
	root.AddCommand(newHierarchyCmd(a))
	root.AddCommand(newTopCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}

// setup resolves the config directory, loads config.yaml, applies flag
// overrides, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	cfg := decodeConfig(v)
	if a.flags.jsonMode {
		cfg.Output = types.OutputJSON
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: config: %w", errUsage, err)
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.Int("top_k", cfg.TopK),
		zap.String("output", cfg.Output),
	)
	return nil
}
