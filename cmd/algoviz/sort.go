package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/sorting"
)

func algorithmNames[T ~string](algs []T) string {
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

func newSortCmd(a *app) *cobra.Command {
	var alg string
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "trace a sorting algorithm (random values when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.valuesOrRandom(args)
			if err != nil {
				return err
			}
			out, err := engine.NewSession(engine.WithLogger(a.log)).RunTrace(engine.Request{
				Family: engine.FamilySort, Algorithm: alg, Values: values,
			})
			if err != nil {
				return err
			}
			return a.present(cmd.Context(), out)
		},
	}
	cmd.Flags().StringVarP(&alg, "algorithm", "a", string(sorting.Bubble),
		"one of "+algorithmNames(sorting.Algorithms()))
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		alg    string
		target int
	)
	cmd := &cobra.Command{
		Use:   "search [values...]",
		Short: "trace a search (random values and target when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.valuesOrRandom(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("target") {
				if target, err = builder.RandomTarget(values, builder.WithRand(a.rng)); err != nil {
					return err
				}
			}
			out, err := engine.NewSession(engine.WithLogger(a.log)).RunTrace(engine.Request{
				Family: engine.FamilySearch, Algorithm: alg, Values: values, Target: target,
			})
			if err != nil {
				return err
			}
			return a.present(cmd.Context(), out)
		},
	}
	cmd.Flags().StringVarP(&alg, "algorithm", "a", string(searching.Linear),
		"one of "+algorithmNames(searching.Algorithms()))
	cmd.Flags().IntVarP(&target, "target", "t", 0, "value to search for")
	return cmd
}

func (a *app) valuesOrRandom(args []string) ([]int, error) {
	if len(args) > 0 {
		return parseInts(args)
	}
	values, err := builder.RandomArray(builder.WithRand(a.rng))
	if err != nil {
		return nil, err
	}
	a.log.Debug("generated input", "values", values, "seed", a.seed)
	return values, nil
}
