package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/nlogd/config"
	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nlog",
		Short:         "nlog dispatcher CLI",
		Long:          "nlog inspects and exercises a leveled log dispatcher built from a YAML configuration.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().String("config", "", "configuration file (default: console handler on stdout)")

	// levels
	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "List the severity table",
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := core.Levels()
			if name, _ := cmd.Flags().GetString("at-or-above"); name != "" {
				levels = core.LevelsAtOrAboveName(name)
			}
			for _, l := range levels {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", l, l)
			}
			return nil
		},
	}
	levelsCmd.Flags().String("at-or-above", "", "only list this level and the more severe ones")
	rootCmd.AddCommand(levelsCmd)

	// validate
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration ok")
			return nil
		},
	}
	rootCmd.AddCommand(validateCmd)

	// dump-config
	dumpCmd := &cobra.Command{
		Use:   "dump-config",
		Short: "Print the dispatcher built from the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()
			fmt.Fprint(cmd.OutOrStdout(), log.DumpConfig())
			return nil
		},
	}
	rootCmd.AddCommand(dumpCmd)

	// handlers
	handlersCmd := &cobra.Command{
		Use:   "handlers",
		Short: "List each configured handler and the levels it receives",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()
			for _, name := range log.HandlerNames() {
				levels := log.HandlerLevels(name)
				names := make([]string, len(levels))
				for i, l := range levels {
					names[i] = l.String()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(names, ", "))
			}
			return nil
		},
	}
	rootCmd.AddCommand(handlersCmd)

	// emit
	emitCmd := &cobra.Command{
		Use:   "emit [message]",
		Short: "Dispatch one message through the configured handlers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levelName, _ := cmd.Flags().GetString("level")
			level, err := config.ParseLevel(levelName)
			if err != nil {
				return err
			}
			pairs, _ := cmd.Flags().GetStringSlice("ctx")
			ctx, err := parseContext(pairs)
			if err != nil {
				return err
			}

			log, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			log.Log(level, strings.Join(args, " "), ctx)
			if stats := log.Stats(); stats.FailedTotal > 0 {
				return fmt.Errorf("%d handler(s) failed", stats.FailedTotal)
			}
			return nil
		},
	}
	emitCmd.Flags().String("level", "info", "level to dispatch at")
	emitCmd.Flags().StringSlice("ctx", nil, "context entries as key=value (repeatable)")
	rootCmd.AddCommand(emitCmd)

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	config.FromEnv(cfg)
	return cfg, nil
}

func buildLogger(cmd *cobra.Command) (*logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	return config.BuildWith(cfg, config.Options{
		Outputs: map[string]io.Writer{
			"":       cmd.OutOrStdout(),
			"stdout": cmd.OutOrStdout(),
			"stderr": errOut,
		},
		ErrorHook: func(name string, err error) {
			fmt.Fprintf(errOut, "handler %s: %v\n", name, err)
		},
	})
}

func parseContext(pairs []string) (core.Context, error) {
	ctx := make(core.Context, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid context entry %q, want key=value", p)
		}
		ctx[k] = v
	}
	return ctx, nil
}
