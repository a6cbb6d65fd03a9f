package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/engine"
)

type opCall struct {
	op     engine.Operation
	values []int
}

// parseOps reads "op [value] op [value]..." for st. build takes every integer
// that follows it.
func parseOps(st engine.Structure, args []string) ([]opCall, error) {
	var calls []opCall
	for i := 0; i < len(args); {
		op, err := engine.ParseOperation(st, args[i])
		if err != nil {
			return nil, err
		}
		i++
		call := opCall{op: op}
		switch {
		case op.NeedsValue():
			if i == len(args) {
				return nil, errors.Wrapf(engine.ErrMissingValue, "%s %s", st, op)
			}
			vs, err := parseInts(args[i : i+1])
			if err != nil {
				return nil, err
			}
			call.values = vs
			i++
		case op == engine.OpBuild:
			for i < len(args) {
				v, err := strconv.Atoi(args[i])
				if err != nil {
					break
				}
				call.values = append(call.values, v)
				i++
			}
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func newTreeCmd(a *app) *cobra.Command {
	var empty bool
	cmd := &cobra.Command{
		Use:   "tree <bst|heap> <op> [value] [<op> [value]]...",
		Short: "run operations on a BST or max-heap that starts from a seed tree",
		Long: `Operations run in order against one structure, each building on the
tree the previous one committed.

  bst:  insert V, search V, delete V, clear
  heap: insert V, extract-max, build V..., clear`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := engine.ParseStructure(args[0])
			if err != nil {
				return err
			}
			calls, err := parseOps(st, args[1:])
			if err != nil {
				return err
			}

			opts := []engine.Option{engine.WithLogger(a.log)}
			if empty {
				opts = append(opts, engine.WithBST(nil), engine.WithHeap(nil))
			}
			s := engine.NewSession(opts...)
			for _, c := range calls {
				out, err := s.Apply(st, c.op, c.values...)
				if err != nil {
					return err
				}
				if err := a.present(cmd.Context(), out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&empty, "empty", false, "start from an empty tree instead of the seed")
	return cmd
}
