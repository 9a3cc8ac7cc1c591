package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shapecheck/internal/config"
	"shapecheck/internal/diag"
	"shapecheck/internal/driver"
	"shapecheck/internal/observ"
	"shapecheck/internal/prof"
	"shapecheck/internal/typecache"
	"shapecheck/internal/ui"
)

// app is the per-invocation state shared by the subcommands.
type app struct {
	cfg    config.Config
	color  bool
	quiet  bool
	styler ui.Styler
	opts   driver.Options
	width  int
}

// prepare loads configuration, applies the global flags and starts tracing.
// The returned cleanup must run before the command returns.
func prepare(cmd *cobra.Command) (*app, func(), error) {
	flags := cmd.Root().PersistentFlags()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return nil, nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	maxIssues, err := flags.GetInt("max-issues")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get max-issues flag: %w", err)
	}
	if maxIssues <= 0 {
		maxIssues = cfg.Analysis.MaxIssues
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	a := &app{cfg: cfg, quiet: quiet, width: 100}
	a.color = applyColorMode(mode)
	a.styler = ui.NewStyler(a.color)
	a.opts = driver.Options{MaxIssues: maxIssues, Dedup: cfg.Analysis.Dedup}
	timer, err := timingTimer(cmd)
	if err != nil {
		return nil, nil, err
	}
	if timer != nil {
		a.opts.Observer = func(ev driver.PhaseEvent) {
			if ev.Status == driver.PhaseEnd {
				timer.Add(ev.Name, ev.Elapsed, "")
			}
		}
	}
	if cfg.Cache.Enabled && !noCache {
		cache, err := openCache(cfg.Cache)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: type cache disabled: %v\n", err)
		} else {
			a.opts.Cache = cache
		}
	}

	profiles, err := startProfiles(cmd)
	if err != nil {
		return nil, nil, err
	}
	stopTracing, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		_ = profiles.Stop()
		return nil, nil, err
	}
	cleanup := func() {
		stopTracing()
		if err := profiles.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
		if timer != nil && timer.Len() > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		}
	}
	return a, cleanup, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Discover(wd)
}

func openCache(cfg config.CacheConfig) (*typecache.Cache, error) {
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = typecache.DefaultDir("shapecheck"); err != nil {
			return nil, err
		}
	}
	return typecache.Open(dir)
}

// timingTimer returns a timer when --timings is set.
func timingTimer(cmd *cobra.Command) (*observ.Timer, error) {
	show, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if !show {
		return nil, nil
	}
	return observ.NewTimer(), nil
}

func startProfiles(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	cpu, err := flags.GetString("cpuprofile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	mem, err := flags.GetString("memprofile")
	if err != nil {
		return nil, fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	return prof.Start(cpu, mem)
}

// writeDiagnostics sorts and prints bag, noting anything the limit dropped.
func writeDiagnostics(out io.Writer, bag *diag.Bag) error {
	bag.Sort()
	if err := diag.Pretty(out, bag.Items()); err != nil {
		return err
	}
	if n := bag.Dropped(); n > 0 {
		_, err := fmt.Fprintf(out, "... %d more diagnostic(s) not shown (raise --max-issues)\n", n)
		return err
	}
	return nil
}
