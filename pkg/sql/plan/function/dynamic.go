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

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

var dynamicType = types.T_dynamic.ToType()

// newDynamicInstance defers resolution to evaluation time, where op is
// resolved for the kinds of the actual values.
func newDynamicInstance(op Operator, args ...types.Type) *Instance {
	fn := func(ctx context.Context, vals []datum.Datum) (datum.Datum, error) {
		typs := make([]types.Type, len(vals))
		for i, v := range vals {
			typs[i] = v.Type()
			if typs[i].Oid != types.T_dynamic {
				continue
			}
			if v.IsNull() || v.IsMissing() {
				typs[i] = types.T_unknown.ToType()
			} else {
				return nil, moerr.NewInternalError(ctx, "value of %s has no runtime type", op.Name())
			}
		}
		f := op.Resolve(typs...)
		if f == nil {
			for _, v := range vals {
				if v.IsNull() || v.IsMissing() {
					return datum.Null(dynamicType), nil
				}
			}
			return nil, moerr.NewNoApplicableOverload(ctx, op.Name(), typeList(typs))
		}
		return f.Eval(ctx, vals...)
	}
	f := newInstance(op.Name(), dynamicType, fn, args...)
	f.nullCall, f.missingCall = false, false
	return f
}

func typeList(typs []types.Type) string {
	names := make([]string, len(typs))
	for i, typ := range typs {
		names[i] = typ.String()
	}
	return strings.Join(names, ", ")
}
