package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/player"
	"github.com/san-kum/algoscope/internal/registry"
	"github.com/san-kum/algoscope/internal/session"
	"github.com/san-kum/algoscope/internal/trace"
	"github.com/san-kum/algoscope/internal/viz"
)

// buildConfig assembles a run config. Precedence, lowest first: built-in
// defaults, preset, settings, config file, flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	name := preset
	if name == "" && configFile == "" && !inputChanged(cmd) {
		name = "default"
	}
	if name != "" {
		p := config.GetPreset(cfg.Algorithm, name)
		if p == nil && preset != "" {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Algorithm))
		}
		if p != nil {
			cfg = p
		}
	}

	settings.Apply(cfg)

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			cfg.Algorithm = args[0]
		}
	}

	applyInputFlags(cmd, &cfg.Input)
	if cmd.Flags().Changed("limit") {
		cfg.MaxFrames = limit
	}
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		cfg.Playback.Interval = interval
	}
	if f := cmd.Flags().Lookup("loop"); f != nil && f.Changed {
		cfg.Playback.Loop = loop
	}

	return cfg, cfg.Validate()
}

func inputChanged(cmd *cobra.Command) bool {
	for _, name := range inputFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func applyInputFlags(cmd *cobra.Command, in *config.InputConfig) {
	flags := cmd.Flags()
	if flags.Changed("array") {
		in.Array = array
	}
	if flags.Changed("edges") {
		in.Edges = edges
	}
	if flags.Changed("ops") {
		in.Ops = ops
	}
	if flags.Changed("costs") {
		in.Costs = costs
	}
	if flags.Changed("start") {
		in.Start = start
	}
	if flags.Changed("source") {
		in.Source = source
	}
	if flags.Changed("sink") {
		in.Sink = sink
	}
	if flags.Changed("target") {
		in.Target = target
	}
	if flags.Changed("k") {
		in.K = k
	}
	if flags.Changed("capacity") {
		in.Capacity = capacity
	}
	if flags.Changed("buckets") {
		in.Buckets = buckets
	}
	if flags.Changed("directed") {
		in.Directed = directed
	}
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	sess, err := session.New(reg, cfg, logger)
	if err != nil {
		return err
	}
	entry := sess.Entry()
	if dumpFrames && !quiet {
		sess.Runner().AddObserver(viz.NewPrinter(os.Stdout, entry.Code))
	}

	logger.Info("running", "algorithm", entry.Name)
	result, err := sess.Run(cmd.Context())
	if err != nil {
		return err
	}

	if quiet {
		fmt.Println(result.Output)
		return nil
	}

	fmt.Printf("algorithm: %s\n", entry.Name)
	fmt.Printf("output: %v\n", result.Output)
	fmt.Printf("frames: %d", result.History.Len())
	if result.Truncated {
		fmt.Printf(" (truncated at %d)", cfg.MaxFrames)
	}
	fmt.Printf("\nelapsed: %v\n", result.Elapsed)
	printMetrics(result.Metrics)

	if saveRun {
		st, err := openStore()
		if err != nil {
			return err
		}
		runID, err := st.Save(cfg, entry.Code, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"metric", "value"})
	for _, name := range names {
		tbl.AppendRow(table.Row{name, fmt.Sprintf("%.4g", m[name])})
	}
	fmt.Println(tbl.Render())
}

// playHistory plays an algorithm run on the spot, or a saved run when the
// argument is not an algorithm name. Without an argument a picker opens.
func playHistory(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		name, ok, err := pickAlgorithm()
		if err != nil || !ok {
			return err
		}
		args = []string{name}
	}

	if _, err := reg.Get(args[0]); err == nil {
		return playAlgorithm(cmd, args)
	} else if !errors.Is(err, registry.ErrUnknownAlgorithm) {
		return err
	}
	return playSaved(cmd, args[0])
}

func pickAlgorithm() (string, bool, error) {
	entries := reg.List()
	items := make([]viz.Item, len(entries))
	for i, e := range entries {
		items[i] = viz.Item{Name: e.Name, Category: e.Category, Summary: e.Summary}
	}
	final, err := tea.NewProgram(viz.NewPicker(items), tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, err
	}
	name, ok := final.(viz.Picker).Selected()
	return name, ok, nil
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	sess, err := session.New(reg, cfg, logger)
	if err != nil {
		return err
	}
	run := func() ([]trace.Step, error) {
		res, err := sess.Run(context.Background())
		if err != nil {
			return nil, err
		}
		return res.History.Steps(), nil
	}

	steps, err := run()
	if err != nil {
		return err
	}
	p, err := player.New(steps, player.WithInterval(cfg.Playback.Interval), player.WithLoop(cfg.Playback.Loop))
	if err != nil {
		return err
	}
	m := viz.NewModel(sess.Entry().Name, sess.Entry().Code, p).WithReload(run)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// savedPlayback takes playback from settings unless a flag overrides it.
func savedPlayback(cmd *cobra.Command) config.PlaybackConfig {
	pb := config.PlaybackConfig{Interval: settings.Playback.Interval, Loop: settings.Playback.Loop}
	if cmd.Flags().Changed("interval") {
		pb.Interval = interval
	}
	if cmd.Flags().Changed("loop") {
		pb.Loop = loop
	}
	return pb
}

func playSaved(cmd *cobra.Command, prefix string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runID, err := st.Resolve(prefix)
	if err != nil {
		return fmt.Errorf("%s is neither an algorithm nor a run: %w", prefix, err)
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}

	pb := savedPlayback(cmd)
	p, err := player.New(steps, player.WithInterval(pb.Interval), player.WithLoop(pb.Loop))
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(viz.NewModel(meta.Algorithm, meta.Code, p), tea.WithAltScreen()).Run()
	return err
}
