// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/config"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
	"github.com/matrixorigin/mo-scalar/pkg/container/vector"
	"github.com/matrixorigin/mo-scalar/pkg/logutil"
	"github.com/matrixorigin/mo-scalar/pkg/sql/colexec/evaluate"
	"github.com/matrixorigin/mo-scalar/pkg/sql/plan/function"
)

// rowSeparator separates the rows of one argument.
const rowSeparator = "|"

type opcheck struct {
	configFile string
	params     *config.Parameters
}

func newRootCommand() *cobra.Command {
	c := &opcheck{}
	cmd := &cobra.Command{
		Use:          "mo-opcheck",
		Short:        "Resolve and evaluate scalar operators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Context())
		},
	}
	cmd.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "toml configuration file")
	cmd.AddCommand(c.resolveCommand(), c.evalCommand())
	return cmd
}

func (c *opcheck) setup(ctx context.Context) error {
	if c.configFile == "" {
		c.params = &config.Parameters{}
		c.params.SetDefaultValues()
	} else {
		params, err := config.LoadFromFile(ctx, c.configFile)
		if err != nil {
			return err
		}
		c.params = params
	}
	logutil.SetupMOLogger(&c.params.Log)
	logutil.Debug("mo-opcheck configured",
		zap.String("config", c.configFile),
		zap.Int("parallelism", c.params.Eval.Parallelism),
		zap.Int("batch-size", c.params.Eval.BatchSize))
	return nil
}

func (c *opcheck) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <op> <type>...",
		Short: "Print the instance an operator resolves to for argument types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			typs := make([]types.Type, len(args)-1)
			for i, arg := range args[1:] {
				typ, err := types.ParseType(ctx, arg)
				if err != nil {
					return err
				}
				typs[i] = typ
			}
			f, err := function.ResolveByName(ctx, args[0], typs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.String())
			return nil
		},
	}
}

func (c *opcheck) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <type>:<literal>[|<literal>...]...",
		Short: "Evaluate an operator over typed literals",
		Long: "Evaluate an operator over typed literals. An argument holding several\n" +
			"literals separated by '|' is a column; every column must have the same\n" +
			"number of rows, and an argument with one literal applies to every row.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vecs := make([]*vector.Vector, len(args)-1)
			typs := make([]types.Type, len(args)-1)
			for i, arg := range args[1:] {
				typ, vec, err := parseColumn(ctx, arg)
				if err != nil {
					return err
				}
				vecs[i], typs[i] = vec, typ
			}
			rows := -1
			for i, vec := range vecs {
				if vec.IsConst() {
					continue
				}
				if rows >= 0 && vec.Length() != rows {
					return moerr.NewInvalidArg(ctx, fmt.Sprintf("column %d row count", i+1), vec.Length())
				}
				rows = vec.Length()
			}
			if rows < 0 {
				rows = 1
			}
			for i, vec := range vecs {
				if vec.IsConst() {
					vecs[i] = vector.NewConst(vec.GetDatum(0), rows)
				}
			}

			f, err := function.ResolveByName(ctx, args[0], typs)
			if err != nil {
				return err
			}
			e, err := evaluate.NewEvaluator(c.params.Eval.Parallelism, c.params.Eval.BatchSize)
			if err != nil {
				return err
			}
			defer e.Release()
			result, err := e.Eval(ctx, f, vecs...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "return type: %s\n", f.ReturnType())
			for i := 0; i < result.Length(); i++ {
				fmt.Fprintf(out, "result: %s\n", result.GetDatum(i))
			}
			return nil
		},
	}
}

// parseColumn parses "<type>:<literal>[|<literal>...]". One literal gives a
// const vector.
func parseColumn(ctx context.Context, arg string) (types.Type, *vector.Vector, error) {
	i := strings.IndexByte(arg, ':')
	if i < 0 {
		return types.Type{}, nil, moerr.NewInvalidInput(ctx, "argument '%s' is not <type>:<literal>", arg)
	}
	typ, err := types.ParseType(ctx, arg[:i])
	if err != nil {
		return typ, nil, err
	}
	literals := strings.Split(arg[i+1:], rowSeparator)
	ds := make([]datum.Datum, len(literals))
	for j, lit := range literals {
		v, err := datum.Parse(ctx, typ, lit)
		if err != nil {
			return typ, nil, err
		}
		ds[j] = v
	}
	if len(ds) == 1 {
		return typ, vector.NewConst(ds[0], 1), nil
	}
	return typ, vector.NewFromDatums(typ, ds...), nil
}
