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

package function

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
	"github.com/matrixorigin/mo-scalar/pkg/logutil"
	"github.com/matrixorigin/mo-scalar/pkg/logutil/logutil2"
)

// Operator resolves instances for argument types. Resolve returns nil when
// no implementation applies and panics on a kind the engine does not
// support. Operators are built once and safe for concurrent use.
type Operator interface {
	Name() string
	Resolve(args ...types.Type) *Instance
}

var (
	Plus   Operator = newArithmetic(opPlus)
	Minus  Operator = newArithmetic(opMinus)
	Times  Operator = newArithmetic(opTimes)
	Divide Operator = newArithmetic(opDivide)
	Modulo Operator = newArithmetic(opModulo)

	Lt  Operator = newComparison("<", lt)
	Lte Operator = newComparison("<=", lte)
	Gt  Operator = newComparison(">", gt)
	Gte Operator = newComparison(">=", gte)
	Eq  Operator = newEquality("=", eq)
	Ne  Operator = newEquality("<>", ne)

	Between Operator = &betweenOperator{name: "between"}
	Like    Operator = &likeOperator{name: "like"}
)

// operators maps every accepted operator name, in lower case, to its
// operator.
var operators = map[string]Operator{
	"+":       Plus,
	"plus":    Plus,
	"-":       Minus,
	"minus":   Minus,
	"*":       Times,
	"times":   Times,
	"/":       Divide,
	"divide":  Divide,
	"%":       Modulo,
	"modulo":  Modulo,
	"<":       Lt,
	"lt":      Lt,
	"<=":      Lte,
	"lte":     Lte,
	">":       Gt,
	"gt":      Gt,
	">=":      Gte,
	"gte":     Gte,
	"=":       Eq,
	"eq":      Eq,
	"<>":      Ne,
	"!=":      Ne,
	"ne":      Ne,
	"between": Between,
	"like":    Like,
}

func init() {
	logutil.Info("operator registry built", zap.Int("names", len(operators)))
}

// GetOperatorByName returns the operator called name.
func GetOperatorByName(ctx context.Context, name string) (Operator, error) {
	op, ok := operators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		logutil2.Debug(ctx, "unknown operator", zap.String("name", name))
		return nil, moerr.NewNotSupported(ctx, "operator '%s'", name)
	}
	return op, nil
}

// ResolveByName resolves the operator called name for args. It fails with
// ErrNoApplicableOverload when no implementation applies.
func ResolveByName(ctx context.Context, name string, args []types.Type) (*Instance, error) {
	op, err := GetOperatorByName(ctx, name)
	if err != nil {
		return nil, err
	}
	f := op.Resolve(args...)
	if f == nil {
		logutil2.Debug(ctx, "no applicable overload",
			zap.String("operator", op.Name()),
			zap.String("args", typeList(args)))
		return nil, moerr.NewNoApplicableOverload(ctx, op.Name(), typeList(args))
	}
	return f, nil
}

// ReturnType returns the result type of the operator called name over
// args, failing like ResolveByName.
func ReturnType(ctx context.Context, name string, args []types.Type) (types.Type, error) {
	f, err := ResolveByName(ctx, name, args)
	if err != nil {
		return types.Type{}, err
	}
	return f.ReturnType(), nil
}
