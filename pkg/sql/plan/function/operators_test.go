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

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	mock_datum "github.com/matrixorigin/mo-scalar/pkg/container/datum/test"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

func TestGetOperatorByName(t *testing.T) {
	ctx := context.TODO()
	for name, want := range map[string]Operator{
		"+":       Plus,
		"PLUS":    Plus,
		" minus ": Minus,
		"*":       Times,
		"/":       Divide,
		"%":       Modulo,
		"<":       Lt,
		"<=":      Lte,
		">":       Gt,
		">=":      Gte,
		"=":       Eq,
		"!=":      Ne,
		"<>":      Ne,
		"BETWEEN": Between,
		"Like":    Like,
	} {
		op, err := GetOperatorByName(ctx, name)
		require.NoError(t, err, name)
		require.Equal(t, want, op, name)
	}

	_, err := GetOperatorByName(ctx, "^^")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestResolveByName(t *testing.T) {
	ctx := context.TODO()

	f, err := ResolveByName(ctx, "+", []types.Type{types.T_int32.ToType(), types.T_int64.ToType()})
	require.NoError(t, err)
	require.Equal(t, "+(BIGINT, BIGINT) -> BIGINT", f.String())

	_, err = ResolveByName(ctx, "+", []types.Type{types.T_string.ToType(), types.T_int32.ToType()})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNoApplicableOverload))
	require.Equal(t, "operator + does not exist for argument types (STRING, INTEGER)", err.Error())

	_, err = ResolveByName(ctx, "nope", nil)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))

	typ, err := ReturnType(ctx, "/", []types.Type{types.NewDecimal(10, 2), types.NewDecimal(10, 2)})
	require.NoError(t, err)
	require.Equal(t, types.NewDecimal(23, 13), typ)

	typ, err = ReturnType(ctx, "between", []types.Type{types.T_int8.ToType(), types.T_int8.ToType(), types.T_int8.ToType()})
	require.NoError(t, err)
	require.Equal(t, boolType, typ)

	_, err = ReturnType(ctx, "like", []types.Type{types.T_int8.ToType(), types.T_string.ToType()})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNoApplicableOverload))
}

func TestScenarios(t *testing.T) {
	ctx := context.TODO()
	integer, bigint := types.T_int32.ToType(), types.T_int64.ToType()

	t.Run("integer plus bigint", func(t *testing.T) {
		f := Plus.Resolve(integer, bigint)
		require.NotNil(t, f)
		require.Equal(t, bigint, f.ReturnType())
		r, err := f.Eval(ctx, datum.NewInt32(3), datum.NewInt64(4))
		require.NoError(t, err)
		require.Equal(t, int64(7), r.Int64())
		require.Equal(t, types.T_int64, r.Type().Oid)
	})

	t.Run("decimal divide", func(t *testing.T) {
		d := types.NewDecimal(10, 2)
		f := Divide.Resolve(d, d)
		require.NotNil(t, f)
		require.Equal(t, types.NewDecimal(23, 13), f.ReturnType())
		r, err := f.Eval(ctx, mustParse(t, d, "10.00"), mustParse(t, d, "3.00"))
		require.NoError(t, err)
		require.Equal(t, "3.3333333333333", r.String())
	})

	t.Run("decimal less than integer", func(t *testing.T) {
		d := types.NewDecimal(5, 1)
		f := Lt.Resolve(d, integer)
		require.NotNil(t, f)
		require.Equal(t, boolType, f.ReturnType())
		r, err := f.Eval(ctx, mustParse(t, d, "3.5"), datum.NewInt32(3))
		require.NoError(t, err)
		require.False(t, r.Bool())
	})

	t.Run("string plus integer", func(t *testing.T) {
		require.Nil(t, Plus.Resolve(types.T_string.ToType(), integer))
		_, err := ResolveByName(ctx, "plus", []types.Type{types.T_string.ToType(), integer})
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrNoApplicableOverload))
	})

	t.Run("tinyint modulo zero", func(t *testing.T) {
		tiny := types.T_int8.ToType()
		f := Modulo.Resolve(tiny, tiny)
		require.NotNil(t, f)
		_, err := f.Eval(ctx, datum.NewInt8(5), datum.NewInt8(0))
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrDivByZero))
	})
}

func TestEvalWithMockDatum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integer := types.T_int32.ToType()
	mockDatum := func(v int64) *mock_datum.MockDatum {
		d := mock_datum.NewMockDatum(ctrl)
		d.EXPECT().Type().Return(integer).AnyTimes()
		d.EXPECT().IsNull().Return(false).AnyTimes()
		d.EXPECT().IsMissing().Return(false).AnyTimes()
		d.EXPECT().Int64().Return(v).MinTimes(1)
		return d
	}

	f := Times.Resolve(integer, integer)
	r, err := f.Eval(context.TODO(), mockDatum(6), mockDatum(7))
	require.NoError(t, err)
	require.Equal(t, int32(42), r.Int32())

	f = Gt.Resolve(integer, integer)
	r, err = f.Eval(context.TODO(), mockDatum(6), mockDatum(7))
	require.NoError(t, err)
	require.False(t, r.Bool())
}

func TestEvalConvertsPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := mock_datum.NewMockDatum(ctrl)
	d.EXPECT().IsNull().Return(false).AnyTimes()
	d.EXPECT().IsMissing().Return(false).AnyTimes()
	d.EXPECT().Text().DoAndReturn(func() string {
		panic("bad datum")
	})

	str := types.T_string.ToType()
	f := Like.Resolve(str, str)
	_, err := f.Eval(context.TODO(), d, datum.NewString("%"))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))
}
