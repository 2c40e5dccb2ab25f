package cmd

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/salon-sim/sim"
	"github.com/inference-sim/salon-sim/sim/trace"
)

var (
	// CLI flags for run settings
	configPath  string        // Optional settings YAML file
	logLevel    string        // Log verbosity level
	paceMode    string        // Tick pacing strategy
	tickDelay   time.Duration // Wall-clock delay per tick under realtime pacing
	showSummary bool          // Log the end-of-day summary
)

// rootCmd is the base command for the CLI. Running it without a subcommand simulates one day.
var rootCmd = &cobra.Command{
	Use:   "salon-sim",
	Short: "Discrete-time simulator of a hair salon's workday",
	Run:   runDay,
}

// runCmd simulates one workday using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulated salon workday",
	Run:   runDay,
}

func runDay(cmd *cobra.Command, args []string) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", settings.LogLevel)
	}
	logrus.SetLevel(level)

	logrus.Infof("Opening salon with stylists %v, pace=%s, tickDelay=%s",
		sim.DefaultRoster, settings.Pace, settings.TickDelay)

	startTime := time.Now()
	summary, err := simulateDay(settings, os.Stdout)
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	if settings.Summary {
		logSummary(newSummaryLogger(os.Stderr), summary)
	}
	logrus.Infof("Simulation complete in %s.", time.Since(startTime))
}

// resolveSettings layers explicitly set flags over the config file (if any) over defaults.
func resolveSettings(cmd *cobra.Command) (Settings, error) {
	settings := DefaultSettings()
	if configPath != "" {
		loaded, err := LoadSettings(configPath)
		if err != nil {
			return Settings{}, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if configPath == "" || flags.Changed("log") {
		settings.LogLevel = logLevel
	}
	if configPath == "" || flags.Changed("pace") {
		settings.Pace = paceMode
	}
	if configPath == "" || flags.Changed("tick-delay") {
		settings.TickDelay = tickDelay
	}
	if configPath == "" || flags.Changed("summary") {
		settings.Summary = showSummary
	}
	return settings, settings.Validate()
}

// simulateDay runs one workday with the default roster, writing the event log to out.
func simulateDay(settings Settings, out io.Writer) (*trace.DaySummary, error) {
	pacer, err := sim.NewPacer(settings.Pace, settings.TickDelay)
	if err != nil {
		return nil, err
	}
	journal := trace.NewJournal()
	salon := sim.NewSalonFromRoster(sim.DefaultRoster,
		sim.WithPacer(pacer),
		sim.WithOutput(out),
		sim.WithJournal(journal),
	)
	salon.Run()
	return trace.Summarize(journal), nil
}

// newSummaryLogger returns an info-level logger, so --summary is honored
// independently of --log.
func newSummaryLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	return l
}

func logSummary(l *logrus.Logger, s *trace.DaySummary) {
	l.WithFields(logrus.Fields{
		"arrivals": s.Arrivals,
		"served":   s.Served,
		"furious":  s.Furious,
		"closed":   s.LastEvent,
	}).Info("Day summary")
	for _, name := range sim.DefaultRoster {
		l.Infof("  %s: %d haircuts", name, s.HaircutsByStylist[name])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags binds the run-settings flags of c to the package-level flag variables.
func registerRunFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "Optional YAML settings file (pace, tick_delay, log_level, summary)")
	c.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&paceMode, "pace", string(sim.PaceRealTime), "Tick pacing (realtime, instant)")
	c.Flags().DurationVar(&tickDelay, "tick-delay", sim.DefaultTickDelay, "Wall-clock duration of one simulated minute under realtime pacing")
	c.Flags().BoolVar(&showSummary, "summary", false, "Log the end-of-day summary to stderr")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(rootCmd)
	registerRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
