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

	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

var boolType = types.T_bool.ToType()

// compareFn turns the result of a three way comparison into a bool.
type compareFn func(c int) bool

func lt(c int) bool  { return c < 0 }
func lte(c int) bool { return c <= 0 }
func gt(c int) bool  { return c > 0 }
func gte(c int) bool { return c >= 0 }
func eq(c int) bool  { return c == 0 }
func ne(c int) bool  { return c != 0 }

// ordered families are filled for every comparison.
var orderedFamilies = []types.Family{
	types.FamilyBool,
	types.FamilyNumber,
	types.FamilyText,
	types.FamilyBinary,
	types.FamilyDate,
	types.FamilyTime,
	types.FamilyTimestamp,
}

func newComparison(name string, cmp compareFn) *binaryOperator {
	o := &binaryOperator{
		name:     name,
		override: decimalFastPath(name, cmp),
	}
	for _, fam := range orderedFamilies {
		o.table.fillFamily(fam, func(anchor types.T) factory {
			return orderedCase(name, cmp)
		})
	}
	return o
}

// newEquality builds = and <>. Equality is total: kinds without an ordered
// cell compare structurally or are simply unequal, and MISSING gives NULL.
func newEquality(name string, cmp compareFn) *binaryOperator {
	o := newComparison(name, cmp)
	equal := cmp(0)
	for _, k := range types.Members(types.FamilyCollection) {
		if k != types.T_unknown {
			o.table[k][k] = structuralCase(name, equal)
		}
	}
	o.table[types.T_unknown][types.T_unknown] = func(l, r types.Type) *Instance {
		return equalityInstance(name, l, r, func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			return datum.NewBool(equal), nil
		})
	}
	o.fallback = func(l, r types.Type) *Instance {
		return equalityInstance(name, l, r, func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			return datum.NewBool(!equal), nil
		})
	}
	// equality of every cell maps MISSING to NULL
	ordered, fast := o.table, o.override
	for i := range ordered {
		for j := range ordered[i] {
			if cell := ordered[i][j]; cell != nil {
				o.table[i][j] = missingAsNull(cell)
			}
		}
	}
	o.override = func(l, r types.Type) *Instance {
		if f := fast(l, r); f != nil {
			f.missingCall = false
			return f
		}
		return nil
	}
	return o
}

func missingAsNull(cell factory) factory {
	return func(l, r types.Type) *Instance {
		f := cell(l, r)
		f.missingCall = false
		return f
	}
}

func equalityInstance(name string, l, r types.Type, fn evalFn) *Instance {
	f := newInstance(name, boolType, fn, l, r)
	f.missingCall = false
	return f
}

// orderedCase compares two operands as values of the promoted kind.
func orderedCase(name string, cmp compareFn) factory {
	return func(l, r types.Type) *Instance {
		oid := l.Oid
		fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			return datum.NewBool(cmp(compareAs(ctx, oid, args[0], args[1]))), nil
		}
		return newInstance(name, boolType, fn, l, r)
	}
}

// decimalFastPath compares any two numbers by value when one of them is a
// decimal, whatever their precision and scale.
func decimalFastPath(name string, cmp compareFn) func(l, r types.Type) *Instance {
	return func(l, r types.Type) *Instance {
		if !l.IsDecimal() && !r.IsDecimal() {
			return nil
		}
		if !types.IsMember(types.FamilyNumber, l.Oid) || !types.IsMember(types.FamilyNumber, r.Oid) {
			return nil
		}
		fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			return datum.NewBool(cmp(compareNumbers(ctx, args[0], args[1]))), nil
		}
		return newInstance(name, boolType, fn, l, r)
	}
}

// structuralCase compares two collections of one kind element by element.
func structuralCase(name string, equal bool) factory {
	return func(l, r types.Type) *Instance {
		fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
			return datum.NewBool(equalValues(ctx, args[0], args[1]) == equal), nil
		}
		return equalityInstance(name, l, r, fn)
	}
}

// equalValues is structural equality: NULL and MISSING equal each other
// and nothing else, numbers compare by value, other scalars within their
// family, and collections element by element.
func equalValues(ctx context.Context, a, b datum.Datum) bool {
	aAbsent, bAbsent := a.IsNull() || a.IsMissing(), b.IsNull() || b.IsMissing()
	if aAbsent || bAbsent {
		return aAbsent == bAbsent
	}
	ak, bk := a.Type().Oid, b.Type().Oid
	af, aok := types.FamilyOf(ak)
	bf, bok := types.FamilyOf(bk)
	if !aok || !bok || af != bf {
		return false
	}
	switch af {
	case types.FamilyNumber:
		return compareNumbers(ctx, a, b) == 0
	case types.FamilyCollection:
		if ak != bk {
			return false
		}
		switch ak {
		case types.T_bag:
			return equalBags(ctx, a.Elems(), b.Elems())
		case types.T_struct:
			return equalStructs(ctx, a, b)
		}
		return equalSequences(ctx, a.Elems(), b.Elems())
	}
	oid := ak
	if types.Precedence(bk) > types.Precedence(ak) {
		oid = bk
	}
	return compareAs(ctx, oid, a, b) == 0
}

func equalSequences(ctx context.Context, a, b []datum.Datum) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalValues(ctx, a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalBags(ctx context.Context, a, b []datum.Datum) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !used[j] && equalValues(ctx, x, y) {
				used[j], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func equalStructs(ctx context.Context, a, b datum.Datum) bool {
	an, bn := a.FieldNames(), b.FieldNames()
	if len(an) != len(bn) {
		return false
	}
	av, bv := a.Elems(), b.Elems()
	fields := make(map[string]datum.Datum, len(bn))
	for i, name := range bn {
		fields[name] = bv[i]
	}
	for i, name := range an {
		v, ok := fields[name]
		if !ok || !equalValues(ctx, av[i], v) {
			return false
		}
	}
	return true
}
