package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtask/builder"
	"github.com/katalvlaran/graphtask/core"
	"github.com/katalvlaran/graphtask/euler"
)

// app carries the resolved configuration and logger into every subcommand.
type app struct {
	configPath string
	cfg        Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:           "graphtask",
		Short:         "Random connected simple graphs and their Eulerian circuits",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	pf.IntP("vertices", "n", a.cfg.Vertices, "vertex count")
	pf.IntP("edges", "m", a.cfg.Edges, "edge count")
	pf.Int64("seed", a.cfg.Seed, "RNG seed (0 picks one from the clock)")
	pf.String("strategy", a.cfg.Strategy, "circuit strategy: restart or hierholzer")
	pf.Bool("connectivity-check", a.cfg.ConnectivityCheck, "reject graphs whose edges span several components")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}

	root.AddCommand(a.generateCmd(), a.circuitCmd(), a.trialsCmd())

	return root
}

// setup loads the config file, applies flags that were set explicitly and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("vertices") {
		cfg.Vertices, _ = fs.GetInt("vertices")
	}
	if fs.Changed("edges") {
		cfg.Edges, _ = fs.GetInt("edges")
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("strategy") {
		cfg.Strategy, _ = fs.GetString("strategy")
	}
	if fs.Changed("connectivity-check") {
		cfg.ConnectivityCheck, _ = fs.GetBool("connectivity-check")
	}
	if fs.Lookup("trials") != nil && fs.Changed("trials") {
		cfg.Trials, _ = fs.GetInt("trials")
	}
	if fs.Lookup("workers") != nil && fs.Changed("workers") {
		cfg.Workers, _ = fs.GetInt("workers")
	}
	if err = cfg.validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	lvl, _ := parseLevel(cfg.LogLevel)
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.cfg = cfg
	a.log.Debug("configuration resolved",
		"vertices", cfg.Vertices, "edges", cfg.Edges, "seed", cfg.Seed, "strategy", cfg.Strategy)

	return nil
}

// randomGraph builds RandomSimple(vertices, edges) from seed.
func (a *app) randomGraph(label string, seed int64) (*core.Graph, error) {
	return builder.BuildGraph(label, []builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSimple(a.cfg.Vertices, a.cfg.Edges))
}

// circuitOptions translates the config into euler options. Walk transitions
// are logged at debug level when trace is set.
func (a *app) circuitOptions(trace bool) []euler.Option {
	s, _ := euler.ParseStrategy(a.cfg.Strategy)
	opts := []euler.Option{euler.WithStrategy(s)}
	if a.cfg.ConnectivityCheck {
		opts = append(opts, euler.WithConnectivityCheck())
	}
	if trace {
		opts = append(opts, euler.WithOnState(func(st euler.State, at *core.Vertex) {
			label := ""
			if at != nil {
				label = at.Label()
			}
			a.log.Debug("circuit state", "state", st.String(), "at", label)
		}))
	}

	return opts
}
