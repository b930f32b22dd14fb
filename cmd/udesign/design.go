package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kmdouglass/udesigner/config"
	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/report"
	"github.com/kmdouglass/udesigner/watch"
)

// newDesignCmd builds the init/report command pair for one design type.
func newDesignCmd(d design.Designer, configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   d.Name(),
		Short: fmt.Sprintf("%s design commands", d.Title()),
	}

	cmd.AddCommand(newInitCmd(d))
	cmd.AddCommand(newReportCmd(d, configPath))

	return cmd
}

func newInitCmd(d design.Designer) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDefaults(d, outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", d.Name()+"_inputs.json",
		"The file to write the default inputs to")

	return cmd
}

func newReportCmd(d design.Designer, configPath *string) *cobra.Command {
	var (
		inputPatterns []string
		outputFile    string
		watchMode     bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a design document from an input file",
		Long: `Generate a design document from one or more input files.

Input paths may contain glob patterns (including **). With a single input the
output flag names the document; with several, each document is written next to
its input file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			inputs, err := resolveInputs(inputPatterns)
			if err != nil {
				return err
			}
			if len(inputs) > 1 && cmd.Flags().Changed("output") {
				return fmt.Errorf("--output is only valid with a single input file")
			}

			outputs := make(map[string]string, len(inputs))
			for _, in := range inputs {
				if len(inputs) == 1 {
					outputs[in] = outputFile
				} else {
					outputs[in] = deriveOutputPath(in)
				}
			}

			for _, in := range inputs {
				if err := renderOne(d, cfg, in, outputs[in]); err != nil {
					return err
				}
			}

			if watchMode {
				return watchAndRender(d, cfg, outputs)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&inputPatterns, "input", "i", nil,
		"Input file(s) or glob pattern(s) (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "output.html",
		"The output file to write the design document to")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Re-render whenever an input file changes")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// writeDefaults serializes the design type's default inputs as flat JSON.
func writeDefaults(d design.Designer, path string) error {
	data, err := json.MarshalIndent(d.Defaults(), "", "    ")
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write defaults: %w", err)
	}

	slog.Info("Wrote default inputs", "design", d.Name(), "path", path)
	return nil
}

// renderOne loads one input file, computes the design, and renders the
// document.
func renderOne(d design.Designer, cfg *config.Config, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse input file %s: %w", inputPath, err)
	}

	outcome, err := d.Compute(raw)
	if err != nil {
		return fmt.Errorf("compute design %s: %w", inputPath, err)
	}

	title := cfg.Report.Title
	if title == "" {
		title = d.Title()
	}

	doc := report.NewDocument(title, outcome)
	doc.MathJaxURL = cfg.Report.MathJaxURL

	if err := report.RenderFile(outputPath, doc); err != nil {
		return err
	}

	slog.Info("Rendered design document",
		"design", d.Name(),
		"input", inputPath,
		"output", outputPath,
		"violations", len(outcome.Violations))
	return nil
}

// watchAndRender blocks, re-rendering documents as their inputs change,
// until interrupted.
func watchAndRender(d design.Designer, cfg *config.Config, outputs map[string]string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	paths := make([]string, 0, len(outputs))
	for in := range outputs {
		paths = append(paths, in)
	}

	w, err := watch.New(watch.Config{
		Paths:         paths,
		DebounceDelay: cfg.Watch.Debounce,
		Logger:        slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch stopped")
			return nil
		case in := <-w.Events():
			// A broken intermediate save should not kill the watch loop.
			if err := renderOne(d, cfg, in, outputs[in]); err != nil {
				slog.Error("Render failed", "input", in, "error", err)
			}
		}
	}
}

// deriveOutputPath names a document after its input file.
func deriveOutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + ".html"
}
