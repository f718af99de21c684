package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/player"
	"github.com/san-kum/algoscope/internal/session"
	"github.com/san-kum/algoscope/internal/storage"
	"github.com/san-kum/algoscope/internal/viz"
)

func listAlgorithms(cmd *cobra.Command, args []string) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"algorithm", "category", "inputs", "summary"})
	for _, e := range reg.List() {
		tbl.AppendRow(table.Row{e.Name, e.Category, strings.Join(e.Inputs, ","), e.Summary})
	}
	fmt.Println(tbl.Render())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if _, err := reg.Get(args[0]); err != nil {
		return err
	}
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for algorithm: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"id", "algorithm", "saved", "frames", "elapsed", "output"})
	for _, run := range runs {
		frames := humanize.Comma(int64(run.Frames))
		if run.Truncated {
			frames += "+"
		}
		tbl.AppendRow(table.Row{
			shortID(run.ID),
			run.Algorithm,
			humanize.Time(run.Timestamp),
			frames,
			run.Elapsed.String(),
			run.Output,
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d runs", len(runs))})
	fmt.Println(tbl.Render())
	return nil
}

// loadRun resolves a run ID prefix and loads its metadata.
func loadRun(prefix string) (*storage.Store, *storage.RunMetadata, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	runID, err := st.Resolve(prefix)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	return st, meta, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(meta.ID)
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Printf("%s  %s\n", meta.Algorithm, meta.ID)
	fmt.Printf("saved %s, %d frames, output %s\n\n", humanize.Time(meta.Timestamp), meta.Frames, meta.Output)
	printer := viz.NewPrinter(os.Stdout, meta.Code)
	if !animate {
		printer.Steps(steps)
		return nil
	}
	p, err := player.New(steps, player.WithInterval(interval))
	if err != nil {
		return err
	}
	return p.Autoplay(cmd.Context(), printer.Step)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(meta.ID)
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, steps)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(meta.ID)
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, steps)
}

func chartRun(cmd *cobra.Command, args []string) error {
	st, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(meta.ID)
	if err != nil {
		return err
	}

	out := chartOut
	if out == "" {
		out = meta.ID + ".html"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	subtitle := fmt.Sprintf("%d frames, output %s", meta.Frames, meta.Output)
	if err := viz.WriteChart(f, meta.Algorithm, subtitle, steps); err != nil {
		return err
	}
	logger.Info("chart written", "run", meta.ID, "path", out)
	fmt.Printf("chart written to %s\n", out)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, meta, err := loadRun(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(meta.ID)
	if err != nil {
		return err
	}

	if len(steps) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("frames: %d\n\n", len(steps))

	fmt.Println(viz.Sparkline(viz.SizeSeries(steps), 70, 12, "structure size vs step"))
	fmt.Println()
	fmt.Println(viz.Sparkline(viz.LineSeries(steps), 70, 8, "pseudo-code line vs step"))
	return nil
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	rows, err := session.Bench(cmd.Context(), reg, args[0], logger)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s\n\n", args[0])
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"preset", "frames", "time", "frames/sec", "coverage", "peak size", "output"})
	for _, r := range rows {
		perSec := 0.0
		if r.Elapsed > 0 {
			perSec = float64(r.Frames) / r.Elapsed.Seconds()
		}
		tbl.AppendRow(table.Row{
			r.Preset,
			r.Frames,
			r.Elapsed.String(),
			humanize.Comma(int64(perSec)),
			fmt.Sprintf("%.0f%%", r.Metrics["line_coverage"]*100),
			r.Metrics["peak_size"],
			fmt.Sprint(r.Output),
		})
	}
	fmt.Println(tbl.Render())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
