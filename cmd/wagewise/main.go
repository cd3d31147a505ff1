package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wagewise/wagewise/internal/calculation"
	"github.com/wagewise/wagewise/internal/config"
	"github.com/wagewise/wagewise/internal/output"
	"github.com/wagewise/wagewise/internal/profile"
	"github.com/wagewise/wagewise/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zapEngineLogger adapts a zap SugaredLogger to the engine Logger interface.
type zapEngineLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapEngineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l zapEngineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

// newLogger builds a zap logger for the requested level and format.
func newLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "", "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "wagewise %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func evaluateCmd() *cobra.Command {
	var format string
	var pretty bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "evaluate [input-file]",
		Short: "Evaluate a wage and budget snapshot",
		Long:  "Loads a YAML input file and prints the full cash-flow, allocation and retirement picture.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel, "console")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			in, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(zapEngineLogger{sugar: logger.Sugar()})

			result := engine.Evaluate(in)
			if result == nil {
				fmt.Fprintln(os.Stdout, "Insufficient input: enter a positive wage amount.")
				return nil
			}

			switch format {
			case "table":
				tf := &output.TableFormatter{}
				fmt.Fprint(os.Stdout, tf.Format(result))
			case "json":
				jf := &output.JSONFormatter{Pretty: pretty}
				text, err := jf.Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, text)
			case "csv":
				cf := &output.CSVFormatter{}
				text, err := cf.Format(result)
				if err != nil {
					return err
				}
				fmt.Fprint(os.Stdout, text)
			default:
				return fmt.Errorf("invalid format %q (want table, json or csv)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, csv")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	return cmd
}

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var registry profile.Registry
			switch cfg.Store.Backend {
			case "sqlite":
				store, err := profile.NewSQLite(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				registry = store
			default:
				registry = profile.NewMemory()
			}

			engine := calculation.NewEngine()
			engine.SetLogger(zapEngineLogger{sugar: logger.Sugar()})

			srv := server.New(engine, registry, logger)
			return srv.ListenAndServe(cfg.Address)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to server config file")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "wagewise",
		Short: "Personal-finance decision engine",
		Long:  "Converts a wage, schedule, expenses and an optional financed purchase into daily, annual and retirement breakdowns.",
	}
	root.AddCommand(evaluateCmd(), serveCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
