package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clarete/ambiparse"
	"github.com/clarete/ambiparse/examples/arith"
	"github.com/clarete/ambiparse/internal/config"
)

// flagKeys maps command line flags to the settings they override
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"trace":      "log.trace",
	"grammar":    "parse.grammar",
	"all":        "parse.all",
	"workers":    "parse.workers",
	"depth":      "check.depth",
}

type app struct {
	v   *viper.Viper
	cfg *config.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	var configPath string
	rootCmd := &cobra.Command{
		Use:          "ambiparse",
		Short:        "Arithmetic on top of an all-derivations parser",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, configPath)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a config file (yaml, toml or json)")
	flags.String("log-level", "info", "minimum level of the log messages")
	flags.String("log-format", "console", "log output format (console, json)")
	flags.Bool("trace", false, "log every combinator attempt of the grammar")

	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	return rootCmd
}

// load reads the settings of the command about to run.  Flags are
// bound here rather than when they're declared because different
// subcommands have flags for the same settings.
func (a *app) load(cmd *cobra.Command, configPath string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	if configPath != "" {
		a.v.SetConfigFile(configPath)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	a.cfg = config.FromViper(a.v)

	logger, err := newLogger(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = logger

	// grammars pick the default logger up when they're built, so
	// this must happen before any of them is created
	if a.cfg.GetBool("log.trace") {
		ambiparse.SetDefaultLogger(logger.Level(zerolog.DebugLevel))
	}
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log level: %w", err)
	}
	switch format := cfg.GetString("log.format"); format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format: %s", format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func grammarByName(name string) (arith.Parser, error) {
	switch name {
	case "precedence":
		return arith.Precedence(), nil
	case "ambiguous":
		return arith.Ambiguous(), nil
	default:
		return arith.Parser{}, fmt.Errorf("unknown grammar: %s", name)
	}
}
