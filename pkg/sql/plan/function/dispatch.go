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
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

// factory builds the instance of a dispatch cell for two operand types.
type factory func(l, r types.Type) *Instance

// dispatchTable is indexed by the kinds of the left and right operands. A
// nil cell means the operator does not apply. Filled once when the operator
// is built and read only afterwards.
type dispatchTable [types.NumKinds][types.NumKinds]factory

// fill installs the cells of anchor within family: one pair of cells for
// every member ranked below anchor and the diagonal cell. Resolution hands
// a cell the promoted pair, so both operands of an off-diagonal cell already
// have the anchor's type, while the diagonal keeps both operand types.
func (t *dispatchTable) fill(family types.Family, anchor types.T, fn factory) {
	rank := types.Precedence(anchor)
	for _, m := range types.Members(family) {
		if types.Precedence(m) >= rank {
			continue
		}
		t[anchor][m] = fn
		t[m][anchor] = fn
	}
	t[anchor][anchor] = fn
}

// fillFamily fills every member of family as an anchor.
func (t *dispatchTable) fillFamily(family types.Family, fn func(anchor types.T) factory) {
	for _, m := range types.Members(family) {
		if m == types.T_unknown {
			continue
		}
		t.fill(family, m, fn(m))
	}
}

func (t *dispatchTable) lookup(l, r types.T) factory {
	return t[l][r]
}

// binaryOperator resolves by promotion and table lookup.
type binaryOperator struct {
	name  string
	table dispatchTable

	// override, if set, is asked before the table.
	override func(l, r types.Type) *Instance
	// fallback, if set, builds the instance of an empty cell.
	fallback factory
}

func (op *binaryOperator) Name() string {
	return op.name
}

func (op *binaryOperator) Resolve(args ...types.Type) *Instance {
	if len(args) != 2 {
		return nil
	}
	return op.resolve(args[0], args[1])
}

func (op *binaryOperator) resolve(l, r types.Type) *Instance {
	types.Precedence(l.Oid)
	types.Precedence(r.Oid)
	if l.Oid == types.T_dynamic || r.Oid == types.T_dynamic {
		return newDynamicInstance(op, l, r)
	}
	if op.override != nil {
		if f := op.override(l, r); f != nil {
			return f
		}
	}
	pl, pr := types.Promote(l, r)
	cell := op.table.lookup(l.Oid, r.Oid)
	if cell == nil {
		if op.fallback == nil {
			return nil
		}
		return op.fallback(l, r)
	}
	return cell(pl, pr)
}
