package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphtask/euler"
)

// trialOutcome classifies a single seeded run.
type trialOutcome int

const (
	outcomeDone trialOutcome = iota
	outcomeNotEulerian
	outcomeNotConstructible
	outcomeInvalid
	numOutcomes
)

var outcomeNames = [numOutcomes]string{"done", "not-eulerian", "not-constructible", "invalid"}

// trialStats aggregates outcomes across concurrent trials.
type trialStats struct {
	mu       sync.Mutex
	counts   [numOutcomes]int
	attempts int // summed over successful trials
}

func (s *trialStats) record(o trialOutcome, attempts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[o]++
	if o == outcomeDone {
		s.attempts += attempts
	}
}

// classify maps a BuildCircuit error to an outcome. Errors outside the
// expected set abort the whole run.
func classify(err error) (trialOutcome, error) {
	switch {
	case err == nil:
		return outcomeDone, nil
	case errors.Is(err, euler.ErrNotEulerian):
		return outcomeNotEulerian, nil
	case errors.Is(err, euler.ErrNotConstructible):
		return outcomeNotConstructible, nil
	case errors.Is(err, euler.ErrNotClosed), errors.Is(err, euler.ErrInvalidTopology):
		return outcomeInvalid, nil
	default:
		return outcomeInvalid, err
	}
}

// runTrials builds cfg.Trials graphs with seeds Seed, Seed+1, … on at most
// cfg.Workers goroutines. Each trial owns its graph.
func (a *app) runTrials(cmd *cobra.Command) (*trialStats, error) {
	stats := &trialStats{}
	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(a.cfg.Workers)

	for i := 0; i < a.cfg.Trials; i++ {
		i := i
		seed := a.cfg.Seed + int64(i)
		group.Go(func() error {
			g, err := a.randomGraph(fmt.Sprintf("T%d", i), seed)
			if err != nil {
				return err
			}
			opts := append(a.circuitOptions(false), euler.WithContext(ctx))
			c, err := euler.BuildCircuit(g, opts...)
			o, err := classify(err)
			if err != nil {
				return fmt.Errorf("trial seed %d: %w", seed, err)
			}
			attempts := 0
			if c != nil {
				attempts = c.Attempts
				if err = euler.Verify(g); err != nil {
					return fmt.Errorf("trial seed %d: %w", seed, err)
				}
			}
			stats.record(o, attempts)
			a.log.Debug("trial finished", "seed", seed, "outcome", outcomeNames[o], "attempts", attempts)

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// trialsCmd runs many seeded trials concurrently and prints outcome counts.
func (a *app) trialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Run seeded trials concurrently and summarize circuit outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.runTrials(cmd)
			if err != nil {
				return err
			}
			a.log.Info("trials finished", "trials", a.cfg.Trials, "workers", a.cfg.Workers)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "trials=%d vertices=%d edges=%d strategy=%s\n",
				a.cfg.Trials, a.cfg.Vertices, a.cfg.Edges, a.cfg.Strategy)
			for o := trialOutcome(0); o < numOutcomes; o++ {
				fmt.Fprintf(out, "%-18s %d\n", outcomeNames[o], stats.counts[o])
			}
			if done := stats.counts[outcomeDone]; done > 0 {
				fmt.Fprintf(out, "%-18s %.2f\n", "mean-attempts", float64(stats.attempts)/float64(done))
			}

			return nil
		},
	}
	cmd.Flags().Int("trials", a.cfg.Trials, "number of seeded trials")
	cmd.Flags().Int("workers", a.cfg.Workers, "concurrent trials")

	return cmd
}
