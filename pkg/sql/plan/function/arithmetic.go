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
	"math"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/exp/constraints"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

type arithOp uint8

const (
	opPlus arithOp = iota
	opMinus
	opTimes
	opDivide
	opModulo
)

var arithSymbols = [...]string{
	opPlus:   "+",
	opMinus:  "-",
	opTimes:  "*",
	opDivide: "/",
	opModulo: "%",
}

func (op arithOp) String() string {
	return arithSymbols[op]
}

// decimalType derives the result type of a decimal operation.
func (op arithOp) decimalType(l, r types.Type) types.Type {
	var typ types.Type
	switch op {
	case opPlus, opMinus:
		typ = types.PlusDecimalType(l, r)
	case opTimes:
		typ = types.TimesDecimalType(l, r)
	case opDivide:
		typ = types.DivideDecimalType(l, r)
	default:
		typ = types.ModuloDecimalType(l, r)
	}
	typ.Oid = l.Oid
	return typ
}

// arithmeticCases holds the per kind implementations of one arithmetic
// operator. Every kind of the NUMBER family is an anchor.
type arithmeticCases struct {
	tinyIntCase  factory
	smallIntCase factory
	intCase      factory
	bigIntCase   factory
	numericCase  factory
	decimalCase  factory
	realCase     factory
	doubleCase   factory
}

func newArithmeticCases(op arithOp) arithmeticCases {
	return arithmeticCases{
		tinyIntCase:  integerCase(op, datum.NewInt8),
		smallIntCase: integerCase(op, datum.NewInt16),
		intCase:      integerCase(op, datum.NewInt32),
		bigIntCase:   integerCase(op, datum.NewInt64),
		numericCase:  decimalCase(op),
		decimalCase:  decimalCase(op),
		realCase:     floatCase(op, types.T_float32),
		doubleCase:   floatCase(op, types.T_float64),
	}
}

func newArithmetic(op arithOp) *binaryOperator {
	cases := newArithmeticCases(op)
	o := &binaryOperator{name: op.String()}
	t := &o.table
	t.fill(types.FamilyNumber, types.T_int8, cases.tinyIntCase)
	t.fill(types.FamilyNumber, types.T_int16, cases.smallIntCase)
	t.fill(types.FamilyNumber, types.T_int32, cases.intCase)
	t.fill(types.FamilyNumber, types.T_int64, cases.bigIntCase)
	t.fill(types.FamilyNumber, types.T_numeric, cases.numericCase)
	t.fill(types.FamilyNumber, types.T_decimal, cases.decimalCase)
	t.fill(types.FamilyNumber, types.T_float32, cases.realCase)
	t.fill(types.FamilyNumber, types.T_float64, cases.doubleCase)
	return o
}

func integerCase[T constraints.Signed, R datum.Datum](op arithOp, box func(T) R) factory {
	return func(l, r types.Type) *Instance {
		ret := l
		fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			v, err := integerArith(ctx, op, ret, T(args[0].Int64()), T(args[1].Int64()))
			if err != nil {
				return nil, err
			}
			return box(v), nil
		}
		return newInstance(op.String(), ret, fn, l, r)
	}
}

func integerArith[T constraints.Signed](ctx context.Context, op arithOp, typ types.Type, a, b T) (T, error) {
	var r T
	ok := true
	switch op {
	case opPlus:
		r, ok = addChecked(a, b)
	case opMinus:
		r, ok = subChecked(a, b)
	case opTimes:
		r, ok = mulChecked(a, b)
	case opDivide, opModulo:
		if b == 0 {
			return 0, moerr.NewDivByZero(ctx)
		}
		if b == -1 && a == minSigned[T]() {
			ok = false
		} else if op == opDivide {
			r = a / b
		} else {
			r = a % b
		}
	}
	if !ok {
		return 0, moerr.NewOutOfRange(ctx, typ.String(), "%d %s %d", a, op, b)
	}
	return r, nil
}

func decimalCase(op arithOp) factory {
	return func(l, r types.Type) *Instance {
		ret := op.decimalType(l, r)
		fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			v, err := decimalArith(ctx, op, ret, toDecimal(ctx, args[0]), toDecimal(ctx, args[1]))
			if err != nil {
				return nil, err
			}
			return datum.NewDecimal(ret, v), nil
		}
		return newInstance(op.String(), ret, fn, l, r)
	}
}

func decimalArith(ctx context.Context, op arithOp, ret types.Type, a, b *apd.Decimal) (*apd.Decimal, error) {
	c := datum.DecimalContext
	r := new(apd.Decimal)
	var err error
	switch op {
	case opPlus:
		_, err = c.Add(r, a, b)
	case opMinus:
		_, err = c.Sub(r, a, b)
	case opTimes:
		_, err = c.Mul(r, a, b)
	case opDivide, opModulo:
		if b.IsZero() {
			return nil, moerr.NewDivByZero(ctx)
		}
		if op == opDivide {
			_, err = c.Quo(r, a, b)
		} else {
			_, err = c.Rem(r, a, b)
		}
	}
	if err != nil {
		return nil, moerr.NewOutOfRange(ctx, ret.String(), "%s %s %s", a.Text('f'), op, b.Text('f'))
	}
	// The derived precision is clamped, so only the largest precision is
	// enforced on the rounded value.
	return datum.RoundDecimal(ctx, r, types.NewDecimal(types.MaxDecimalPrecision, ret.Scale))
}

func floatCase(op arithOp, oid types.T) factory {
	return func(l, r types.Type) *Instance {
		ret := oid.ToType()
		fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			v, err := floatArith(ctx, op, toFloat64(ctx, args[0]), toFloat64(ctx, args[1]))
			if err != nil {
				return nil, err
			}
			if oid == types.T_float32 {
				return datum.NewFloat32(float32(v)), nil
			}
			return datum.NewFloat64(v), nil
		}
		return newInstance(op.String(), ret, fn, l, r)
	}
}

func floatArith(ctx context.Context, op arithOp, a, b float64) (float64, error) {
	switch op {
	case opPlus:
		return a + b, nil
	case opMinus:
		return a - b, nil
	case opTimes:
		return a * b, nil
	}
	if b == 0 {
		return 0, moerr.NewDivByZero(ctx)
	}
	if op == opDivide {
		return a / b, nil
	}
	return math.Mod(a, b), nil
}
