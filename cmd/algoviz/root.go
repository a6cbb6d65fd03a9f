package main

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/internal/render"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	out, errOut io.Writer

	flags struct {
		config    string
		logLevel  string
		logFormat string
		noColor   bool
		seed      int64
		speedMs   int
		frames    bool
		steps     bool
		format    string
	}

	cfg  *config.Config
	log  *slog.Logger
	rr   *render.Renderer
	rng  *rand.Rand
	seed int64
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "algoviz [command] (flags)",
		Short:         "step-by-step traces of sorting, searching, graph and tree algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "config file (default .algoviz.yaml in . or $HOME)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.Int64Var(&a.flags.seed, "seed", 0, "seed for random inputs (0 seeds from the clock)")
	pf.IntVar(&a.flags.speedMs, "speed", 0, "milliseconds between animation steps (100-900)")
	pf.BoolVar(&a.flags.frames, "frames", false, "print every frame at once instead of animating")
	pf.BoolVar(&a.flags.steps, "steps", false, "print a table of step descriptions")
	pf.StringVar(&a.flags.format, "format", "", "output format: text or yaml")

	root.AddCommand(
		newSortCmd(a),
		newSearchCmd(a),
		newGraphCmd(a),
		newTreeCmd(a),
	)
	return root
}

// setup loads the configuration, lets flags override it and builds the logger,
// renderer and random source.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}
	if flags.Changed("no-color") && a.flags.noColor {
		cfg.Render.Color = false
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = a.flags.seed
	}
	if flags.Changed("speed") {
		cfg.Playback.SpeedMs = a.flags.speedMs
	}
	if flags.Changed("format") {
		cfg.Render.Format = a.flags.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.Log.Level, cfg.Log.Format, a.errOut); err != nil {
		return errors.Wrap(err, "logger")
	}
	a.rr = render.New(cfg.Render.Color)

	a.seed = cfg.Random.Seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}
	a.rng = rand.New(rand.NewSource(a.seed))

	a.log.Debug("configured",
		"speed", cfg.Playback.Speed(), "format", cfg.Render.Format, "color", cfg.Render.Color, "seed", a.seed)
	return nil
}
