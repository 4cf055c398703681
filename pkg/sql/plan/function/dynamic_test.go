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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

func TestDynamicResolve(t *testing.T) {
	dyn := types.T_dynamic.ToType()
	for _, op := range []Operator{Plus, Divide, Lt, Eq, Ne} {
		f := op.Resolve(dyn, types.T_string.ToType())
		require.NotNil(t, f, op.Name())
		require.Equal(t, dyn, f.ReturnType())
		require.False(t, f.NullCall())
		require.False(t, f.MissingCall())
	}
}

func TestDynamicEval(t *testing.T) {
	ctx := context.TODO()
	dyn := types.T_dynamic.ToType()
	f := Plus.Resolve(dyn, dyn)

	r, err := f.Eval(ctx, datum.NewInt32(3), datum.NewInt64(4))
	require.NoError(t, err)
	require.Equal(t, datum.NewInt64(7), r)

	v, err := datum.Parse(ctx, dyn, "1.5")
	require.NoError(t, err)
	r, err = f.Eval(ctx, v, datum.NewInt32(2))
	require.NoError(t, err)
	require.True(t, r.Type().IsDecimal())
	require.Equal(t, "3.5", r.String())

	_, err = f.Eval(ctx, datum.NewString("a"), datum.NewInt32(2))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNoApplicableOverload))

	// resolved at runtime, so the body sees the NULL
	r, err = f.Eval(ctx, datum.Null(types.T_int32.ToType()), datum.NewInt32(2))
	require.NoError(t, err)
	require.True(t, r.IsNull())
	require.Equal(t, types.T_int32, r.Type().Oid)

	// nothing applies, but a NULL operand still gives NULL
	r, err = f.Eval(ctx, datum.Null(types.T_string.ToType()), datum.NewInt32(2))
	require.NoError(t, err)
	require.True(t, r.IsNull())
	require.Equal(t, types.T_dynamic, r.Type().Oid)

	r, err = f.Eval(ctx, datum.Null(dyn), datum.NewInt32(2))
	require.NoError(t, err)
	require.True(t, r.IsNull())

	r, err = f.Eval(ctx, datum.Missing(), datum.NewInt32(2))
	require.NoError(t, err)
	require.True(t, r.IsMissing())

	_, err = f.Eval(ctx, datum.NewInt32(1))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))
}

func TestDynamicEquality(t *testing.T) {
	ctx := context.TODO()
	f := Eq.Resolve(types.T_dynamic.ToType(), types.T_int32.ToType())

	r, err := f.Eval(ctx, datum.NewString("1"), datum.NewInt32(1))
	require.NoError(t, err)
	require.False(t, r.Bool())

	r, err = f.Eval(ctx, datum.Missing(), datum.NewInt32(1))
	require.NoError(t, err)
	require.True(t, r.IsNull())
}
