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

package evaluate

import (
	"context"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/nulls"
	"github.com/matrixorigin/mo-scalar/pkg/container/vector"
	"github.com/matrixorigin/mo-scalar/pkg/sql/plan/function"
)

// EvalVectors evaluates f row by row over vecs. Flat vectors must share
// one length; a const vector stands for every row.
// If all arguments are const, the result is const.
// If f gives NULL for any NULL argument, rows with a NULL argument are not
// evaluated.
func EvalVectors(ctx context.Context, f *function.Instance, vecs ...*vector.Vector) (*vector.Vector, error) {
	if len(vecs) != len(f.Args()) {
		return nil, moerr.NewInternalError(ctx, "%s expects %d vectors, got %d", f, len(f.Args()), len(vecs))
	}
	length, err := rowCount(ctx, vecs)
	if err != nil {
		return nil, err
	}
	rTyp := f.ReturnType()

	numConst := 0
	for _, v := range vecs {
		if v.IsConst() {
			numConst++
			if f.NullCall() && v.IsConstNull() {
				return vector.NewConstNull(rTyp, length), nil
			}
		}
	}
	row := make([]datum.Datum, len(vecs))
	if numConst == len(vecs) {
		for i, v := range vecs {
			row[i] = v.GetDatum(0)
		}
		r, err := f.Eval(ctx, row...)
		if err != nil {
			return nil, err
		}
		return vector.NewConst(r, length), nil
	}

	nsp := &nulls.Nulls{}
	if f.NullCall() {
		for _, v := range vecs {
			if !v.IsConst() {
				nulls.Set(nsp, v.GetNulls())
			}
		}
	}
	null := datum.Null(rTyp)
	rvec := vector.NewVec(rTyp)
	for i := 0; i < length; i++ {
		if nulls.Contains(nsp, uint64(i)) {
			rvec.Append(null)
			continue
		}
		for j, v := range vecs {
			row[j] = v.GetDatum(i)
		}
		r, err := f.Eval(ctx, row...)
		if err != nil {
			return nil, err
		}
		rvec.Append(r)
	}
	return rvec, nil
}

// rowCount returns the length of the flat vectors, or of the first vector
// when all are const.
func rowCount(ctx context.Context, vecs []*vector.Vector) (int, error) {
	length := -1
	for _, v := range vecs {
		if v.IsConst() {
			continue
		}
		if length < 0 {
			length = v.Length()
		} else if v.Length() != length {
			return 0, moerr.NewInternalError(ctx, "vector lengths differ: %d and %d", length, v.Length())
		}
	}
	if length < 0 {
		length = 0
		if len(vecs) > 0 {
			length = vecs[0].Length()
		}
	}
	return length, nil
}
