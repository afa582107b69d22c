package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtask/euler"
	"github.com/katalvlaran/graphtask/matrix"
)

// generateCmd prints a random graph and its adjacency matrix.
func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a random connected simple graph and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.randomGraph("G", a.cfg.Seed)
			if err != nil {
				return err
			}
			m, err := matrix.NewAdjacencyMatrix(g)
			if err != nil {
				return err
			}
			a.log.Info("graph generated",
				"vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", a.cfg.Seed)

			out := cmd.OutOrStdout()
			writeGraph(out, g)
			writeMatrix(out, m)
			writeDegrees(out, g)

			return nil
		},
	}
}

// circuitCmd reproduces the classic run: generate, print, build the circuit,
// print the stamped orders.
func (a *app) circuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circuit",
		Short: "Generate a random graph and build an Eulerian circuit over it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.randomGraph("G", a.cfg.Seed)
			if err != nil {
				return err
			}
			m, err := matrix.NewAdjacencyMatrix(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeGraph(out, g)
			writeMatrix(out, m)
			writeDegrees(out, g)

			c, err := euler.BuildCircuit(g, a.circuitOptions(true)...)
			if err != nil {
				a.log.Warn("no Eulerian circuit", "seed", a.cfg.Seed, "err", err)
				return fmt.Errorf("circuit for seed %d: %w", a.cfg.Seed, err)
			}
			a.log.Info("circuit built",
				"edges", c.Len(), "attempts", c.Attempts, "strategy", c.Strategy.String())

			fmt.Fprintf(out, "Circuit: %s\n", c)
			writeOrders(out, g)

			return nil
		},
	}
}
