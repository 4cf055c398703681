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
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
	"github.com/matrixorigin/mo-scalar/pkg/container/vector"
	"github.com/matrixorigin/mo-scalar/pkg/sql/plan/function"
)

var integer = types.T_int32.ToType()

func int32Vec(vals ...any) *vector.Vector {
	v := vector.NewVec(integer)
	for _, val := range vals {
		if val == nil {
			v.Append(datum.Null(integer))
		} else {
			v.Append(datum.NewInt32(int32(val.(int))))
		}
	}
	return v
}

func TestEvalVectors(t *testing.T) {
	ctx := context.TODO()
	plus := function.Plus.Resolve(integer, integer)

	r, err := EvalVectors(ctx, plus, int32Vec(1, nil, 3), vector.NewConst(datum.NewInt32(10), 3))
	require.NoError(t, err)
	require.False(t, r.IsConst())
	require.Equal(t, "INTEGER[11 NULL 13]", r.String())

	r, err = EvalVectors(ctx, plus, vector.NewConst(datum.NewInt32(1), 4), vector.NewConst(datum.NewInt32(2), 4))
	require.NoError(t, err)
	require.True(t, r.IsConst())
	require.Equal(t, 4, r.Length())
	require.Equal(t, "INTEGER[3]-const(4)", r.String())

	r, err = EvalVectors(ctx, plus, int32Vec(1, 2), vector.NewConstNull(integer, 2))
	require.NoError(t, err)
	require.True(t, r.IsConstNull())
	require.Equal(t, 2, r.Length())

	_, err = EvalVectors(ctx, plus, int32Vec(1, 2), int32Vec(1))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))

	_, err = EvalVectors(ctx, plus, int32Vec(1))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))

	div := function.Divide.Resolve(integer, integer)
	_, err = EvalVectors(ctx, div, int32Vec(4, 5), int32Vec(2, 0))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrDivByZero))

	// a NULL row is never evaluated
	r, err = EvalVectors(ctx, div, int32Vec(4, nil), int32Vec(2, 0))
	require.NoError(t, err)
	require.Equal(t, "INTEGER[2 NULL]", r.String())
}

func TestEvalVectorsMissing(t *testing.T) {
	ctx := context.TODO()
	unknown := types.T_unknown.ToType()
	missing := vector.NewFromDatums(unknown, datum.Missing(), datum.Missing())

	lt := function.Lt.Resolve(integer, unknown)
	r, err := EvalVectors(ctx, lt, int32Vec(1, nil), missing)
	require.NoError(t, err)
	require.True(t, r.GetDatum(0).IsMissing())
	require.True(t, r.GetDatum(1).IsNull())

	eq := function.Eq.Resolve(integer, unknown)
	r, err = EvalVectors(ctx, eq, int32Vec(1, 2), missing)
	require.NoError(t, err)
	require.Equal(t, "BOOL[NULL NULL]", r.String())
}

func TestEvaluator(t *testing.T) {
	defer leaktest.AfterTest(t)()
	ctx := context.TODO()

	e, err := NewEvaluator(2, 3)
	require.NoError(t, err)
	defer releaseEvaluator(e)

	var l, r []any
	for i := 0; i < 10; i++ {
		l = append(l, i)
		if i%4 == 0 {
			r = append(r, nil)
		} else {
			r = append(r, i*10)
		}
	}
	times := function.Times.Resolve(integer, integer)
	got, err := e.Eval(ctx, times, int32Vec(l...), int32Vec(r...))
	require.NoError(t, err)
	want, err := EvalVectors(ctx, times, int32Vec(l...), int32Vec(r...))
	require.NoError(t, err)
	require.Equal(t, 10, got.Length())
	require.Equal(t, want.String(), got.String())

	got, err = e.Eval(ctx, times, int32Vec(l...), vector.NewConst(datum.NewInt32(2), 10))
	require.NoError(t, err)
	require.Equal(t, "INTEGER[0 2 4 6 8 10 12 14 16 18]", got.String())

	got, err = e.Eval(ctx, times, vector.NewConst(datum.NewInt32(2), 10), vector.NewConst(datum.NewInt32(3), 10))
	require.NoError(t, err)
	require.True(t, got.IsConst())

	div := function.Divide.Resolve(integer, integer)
	r[9] = 0
	_, err = e.Eval(ctx, div, int32Vec(l...), int32Vec(r...))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrDivByZero))
}

func TestEvaluatorCanceled(t *testing.T) {
	defer leaktest.AfterTest(t)()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, err := NewEvaluator(0, 2)
	require.NoError(t, err)
	defer releaseEvaluator(e)

	plus := function.Plus.Resolve(integer, integer)
	_, err = e.Eval(ctx, plus, int32Vec(1, 2, 3), int32Vec(1, 2, 3))
	require.ErrorIs(t, err, context.Canceled)

	r, err := e.Eval(ctx, plus, int32Vec(1, 2), int32Vec(1, 2))
	require.NoError(t, err)
	require.Equal(t, "INTEGER[2 4]", r.String())
}
