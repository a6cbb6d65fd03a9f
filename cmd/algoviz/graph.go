package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/engine"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		alg      string
		start    int
		to       int
		maxDepth int
		random   bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "trace a graph algorithm on the sample graph or a random one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := engine.NewSession(engine.WithLogger(a.log))
			if random {
				g, err := builder.RandomGraph(builder.WithRand(a.rng))
				if err != nil {
					return err
				}
				if err := s.SetGraph(g); err != nil {
					return err
				}
			}
			req := engine.Request{
				Family: engine.FamilyGraph, Algorithm: strings.ToLower(alg), Start: start, MaxDepth: maxDepth,
			}
			if cmd.Flags().Changed("to") {
				req.Dest = &to
			}
			out, err := s.RunTraceContext(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.present(cmd.Context(), out)
		},
	}
	cmd.Flags().StringVarP(&alg, "algorithm", "a", engine.BFS,
		"one of "+strings.Join(engine.GraphAlgorithms(), ", "))
	cmd.Flags().IntVar(&start, "start", 0, "start node (ignored by kruskal)")
	cmd.Flags().IntVar(&to, "to", 0, "report the path from --start to this node (bfs, dfs, dijkstra)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop bfs and dfs this many edges from the start; 0 means no limit")
	cmd.Flags().BoolVar(&random, "random", false, "trace a random connected graph instead of the sample graph")
	return cmd
}
