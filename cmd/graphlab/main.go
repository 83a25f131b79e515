// Command graphlab opens a window plotting y = cos³(t²)/(1.5t+2).
//
// Usage:
//
//	graphlab [-config file.yaml] [-mode line|scatter] [-labels=false]
//	         [-export out.png] [-script steps.json] [-fps] [-debug]
//
// With -export the plot is written to a file and no window is opened.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/phanxgames/graphlab"
	"github.com/phanxgames/graphlab/export"
)

// options are the parsed command-line flags.
type options struct {
	configPath string
	mode       string
	labels     bool
	labelsSet  bool
	exportPath string
	scriptPath string
	showFPS    bool
	debug      bool
	dumpConfig bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("graphlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.mode, "mode", "", "plot mode: line or scatter")
	fs.BoolVar(&o.labels, "labels", true, "draw point coordinates")
	fs.StringVar(&o.exportPath, "export", "", "write the plot to this file (png, svg, pdf, jpg) instead of opening a window")
	fs.StringVar(&o.scriptPath, "script", "", "JSON test script to replay in the window")
	fs.BoolVar(&o.showFPS, "fps", false, "show FPS/TPS overlay")
	fs.BoolVar(&o.debug, "debug", false, "log per-paint statistics to stderr")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "print the effective config as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "labels" {
			o.labelsSet = true
		}
	})
	return o, nil
}

// buildConfig loads the config file, if any, and applies flag overrides.
func buildConfig(o options) (graphlab.Config, error) {
	cfg := graphlab.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = graphlab.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.mode != "" {
		m, err := graphlab.ParsePlotMode(o.mode)
		if err != nil {
			return cfg, err
		}
		cfg.Plot.Mode = m
	}
	if o.labelsSet {
		cfg.Plot.ShowLabels = o.labels
	}
	if o.showFPS {
		cfg.Window.ShowFPS = true
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

func exportPlot(cfg graphlab.Config, path string) error {
	samples, err := graphlab.Generate(graphlab.CubedCosine, cfg.Domain)
	if err != nil {
		return err
	}
	opts := export.DefaultOptions()
	opts.Title = cfg.Plot.Title
	opts.Mode = cfg.Plot.Mode
	opts.ShowLabels = cfg.Plot.ShowLabels
	return export.Save(samples, opts, path)
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := buildConfig(o)
	if err != nil {
		return err
	}

	if o.dumpConfig {
		data, err := cfg.Encode()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	if o.exportPath != "" {
		if err := exportPlot(cfg, o.exportPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "wrote %s\n", o.exportPath)
		return nil
	}

	w, err := graphlab.NewWindow(cfg)
	if err != nil {
		return err
	}
	if o.scriptPath != "" {
		data, err := os.ReadFile(o.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := graphlab.LoadTestScript(data)
		if err != nil {
			return err
		}
		w.SetTestRunner(runner)
	}
	return graphlab.Run(w, cfg.Window)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
