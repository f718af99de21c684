package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/logging"
	"github.com/san-kum/algoscope/internal/registry"
	"github.com/san-kum/algoscope/internal/storage"
)

var (
	dataDir      string
	logLevel     string
	logFormat    string
	settingsFile string

	// algorithm input
	array    string
	edges    string
	ops      string
	costs    string
	start    string
	source   string
	sink     string
	target   int
	k        int
	capacity int
	buckets  int
	directed bool

	configFile string
	preset     string
	limit      int
	saveRun    bool
	quiet      bool
	dumpFrames bool

	interval time.Duration
	loop     bool
	chartOut string
	animate  bool

	settings *config.Settings
	logger   = logging.Discard()
	reg      = registry.NewDefault()
)

// inputFlags are the run flags that map onto config.InputConfig.
var inputFlags = []string{"array", "edges", "ops", "costs", "start", "source", "sink", "target", "k", "capacity", "buckets", "directed"}

func main() {
	rootCmd := &cobra.Command{
		Use:               "algoscope",
		Short:             "step-by-step algorithm visualizer",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              listAlgorithms,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.algoscope)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (yaml)")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE:  listAlgorithms,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm and record its history",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAlgorithm,
	}
	addInputFlags(runCmd)
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "print only the output")
	runCmd.Flags().BoolVar(&dumpFrames, "frames", false, "print every recorded step")

	playCmd := &cobra.Command{
		Use:   "play [algorithm|run_id]",
		Short: "step through a history interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playHistory,
	}
	addInputFlags(playCmd)
	playCmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "autoplay interval")
	playCmd.Flags().BoolVar(&loop, "loop", false, "loop playback")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the steps of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&animate, "animate", false, "print steps one at a time")
	showCmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "delay between animated steps")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run steps to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "write an HTML chart of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output file (default <run_id>.html)")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot structure size over the steps of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "run every preset of an algorithm concurrently",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}

	rootCmd.AddCommand(algorithmsCmd, runCmd, playCmd, showCmd, listCmd, presetsCmd,
		exportJSONCmd, exportCSVCmd, chartCmd, plotCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&array, "array", "", "integer array, e.g. \"5,2,4\"")
	cmd.Flags().StringVar(&edges, "edges", "", "edge list, e.g. \"A-B,B-C\" or \"S-A:3\"")
	cmd.Flags().StringVar(&ops, "ops", "", "operation script, e.g. \"put(1,1) get(1)\"")
	cmd.Flags().StringVar(&costs, "costs", "", "cost pairs, e.g. \"10:20,30:200\"")
	cmd.Flags().StringVar(&start, "start", "", "start node")
	cmd.Flags().StringVar(&source, "source", "", "flow source")
	cmd.Flags().StringVar(&sink, "sink", "", "flow sink")
	cmd.Flags().IntVar(&target, "target", 0, "target sum or amount")
	cmd.Flags().IntVar(&k, "k", 0, "window parameter")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "cache capacity")
	cmd.Flags().IntVar(&buckets, "buckets", 0, "hash table buckets")
	cmd.Flags().BoolVar(&directed, "directed", false, "treat edges as directed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum recorded frames")
}

// setup loads settings and builds the logger. Flags win over settings.
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings(settingsFile)
	if err != nil {
		return err
	}
	settings = s

	if dataDir == "" {
		dataDir = s.DataDir
	}
	if logLevel == "" {
		logLevel = s.LogLevel
	}
	if logFormat == "" {
		logFormat = s.LogFormat
	}

	w, err := logging.Output(s.LogFile)
	if err != nil {
		return err
	}
	l, err := logging.New(logLevel, logFormat, w)
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(logger)
	return nil
}

func openStore() (*storage.Store, error) {
	st := storage.New(dataDir, logger)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("init data dir: %w", err)
	}
	return st, nil
}
