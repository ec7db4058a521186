package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/fitcheck/internal/config"
	"github.com/dotcommander/fitcheck/internal/logging"
	"github.com/dotcommander/fitcheck/internal/output"
	"github.com/dotcommander/fitcheck/internal/outputters"
	"github.com/dotcommander/fitcheck/internal/scorecard"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var (
	configFile      string
	quiet           bool
	verbose         bool
	outputFormat    string
	outputFile      string
	measurementMode string
	concurrency     int
	logLevel        string
	logFormat       string
)

var rootCmd = &cobra.Command{
	Use:   "fitcheck",
	Short: "Fit scorecards from garment size charts and body measurements",
	Long: `fitcheck compares a garment's published size chart with your body
measurements and reports, per dimension, how the garment will sit: the ease
or difference, a named fit category, what that category means for this kind
of garment, and any construction caveats.

Measurement files are YAML or JSON. Inches throughout; flat (half
circumference) garment measurements are detected automatically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (default .fitcheckrc.{json,yaml,yml})")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress console output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show universal meanings, missing-measurement impact and fabric notes")
	flags.StringVarP(&outputFormat, "format", "f", "console", "Output format (console|compact|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	flags.StringVar(&measurementMode, "measurement-mode", scorecard.ModeAuto, "Garment measurement interpretation (auto|flat|circumference)")
	flags.IntVar(&concurrency, "concurrency", 8, "Maximum sizes evaluated in parallel")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flags.StringVar(&logFormat, "log-format", "console", "Log format (console|json)")

	viper.BindPFlag("quiet", flags.Lookup("quiet"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("measurementMode", flags.Lookup("measurement-mode"))
	viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.format", flags.Lookup("log-format"))
}

// runtime is what every subcommand needs after startup.
type runtime struct {
	cfg    *config.Config
	logger logging.Logger
	out    *outputters.Outputter
}

func setup(stdout io.Writer) (*runtime, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	output.Version = Version
	out := outputters.NewOutputter(cfg)
	out.SetStdout(stdout)

	logger.Debug("configuration loaded", map[string]interface{}{
		"format":          cfg.Format,
		"measurementMode": cfg.MeasurementMode,
		"concurrency":     cfg.Concurrency,
	})
	return &runtime{cfg: cfg, logger: logger, out: out}, nil
}

func (rt *runtime) evaluator() *scorecard.Evaluator {
	return scorecard.New(scorecard.Options{
		MeasurementMode: rt.cfg.MeasurementMode,
		MaxGoroutines:   rt.cfg.Concurrency,
	})
}
