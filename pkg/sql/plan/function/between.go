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

// betweenFamilies are the families BETWEEN accepts besides an exact DATE
// triple.
var betweenFamilies = []types.Family{
	types.FamilyNumber,
	types.FamilyText,
	types.FamilyTime,
	types.FamilyTimestamp,
}

// betweenOperator is the ternary v BETWEEN lo AND hi, resolved by family.
type betweenOperator struct {
	name string
}

func (op *betweenOperator) Name() string {
	return op.name
}

func (op *betweenOperator) Resolve(args ...types.Type) *Instance {
	if len(args) != 3 {
		return nil
	}
	dynamic := false
	for _, arg := range args {
		types.Precedence(arg.Oid)
		dynamic = dynamic || arg.Oid == types.T_dynamic
	}
	if dynamic {
		return newDynamicInstance(op, args...)
	}

	fam, ok := betweenFamily(args)
	if !ok {
		return nil
	}
	oid := args[0].Oid
	hasDecimal := false
	for _, arg := range args {
		if types.Precedence(arg.Oid) > types.Precedence(oid) {
			oid = arg.Oid
		}
		hasDecimal = hasDecimal || arg.IsDecimal()
	}
	compare := func(ctx context.Context, a, b datum.Datum) int {
		return compareAs(ctx, oid, a, b)
	}
	if fam == types.FamilyNumber && hasDecimal {
		compare = compareNumbers
	}
	fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
		v := args[0]
		return datum.NewBool(compare(ctx, v, args[1]) >= 0 && compare(ctx, v, args[2]) <= 0), nil
	}
	return newInstance(op.name, boolType, fn, args...)
}

func betweenFamily(args []types.Type) (types.Family, bool) {
	dates := 0
	for _, arg := range args {
		if arg.Oid == types.T_date {
			dates++
		}
	}
	if dates == len(args) {
		return types.FamilyDate, true
	}
	for _, fam := range betweenFamilies {
		typed, all := false, true
		for _, arg := range args {
			if !types.IsMember(fam, arg.Oid) {
				all = false
				break
			}
			typed = typed || arg.Oid != types.T_unknown
		}
		if all && typed {
			return fam, true
		}
	}
	return 0, false
}
