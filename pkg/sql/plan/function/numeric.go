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
	"bytes"
	"context"
	"math"
	"strings"
	"unsafe"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/exp/constraints"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

func minSigned[T constraints.Signed]() T {
	var zero T
	return T(1) << (unsafe.Sizeof(zero)*8 - 1)
}

func addChecked[T constraints.Signed](a, b T) (T, bool) {
	r := a + b
	return r, (r > a) == (b > 0)
}

func subChecked[T constraints.Signed](a, b T) (T, bool) {
	r := a - b
	return r, (r < a) == (b > 0)
}

func mulChecked[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	lo := minSigned[T]()
	if (a == -1 && b == lo) || (b == -1 && a == lo) {
		return 0, false
	}
	r := a * b
	return r, r/b == a
}

func toDecimal(ctx context.Context, d datum.Datum) *apd.Decimal {
	switch d.Type().Oid {
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		return apd.New(d.Int64(), 0)
	case types.T_numeric, types.T_decimal:
		return d.Decimal()
	case types.T_float32, types.T_float64:
		r := new(apd.Decimal)
		if _, err := r.SetFloat64(d.Float64()); err != nil {
			panic(moerr.NewInternalErrorWithCause(ctx, err, "convert %s to decimal", d))
		}
		return r
	}
	panic(moerr.NewInternalError(ctx, "%s is not a number", d.Type()))
}

func toFloat64(ctx context.Context, d datum.Datum) float64 {
	switch d.Type().Oid {
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		return float64(d.Int64())
	case types.T_numeric, types.T_decimal:
		f, err := d.Decimal().Float64()
		if err != nil {
			panic(moerr.NewInternalErrorWithCause(ctx, err, "convert %s to double", d))
		}
		return f
	case types.T_float32, types.T_float64:
		return d.Float64()
	}
	panic(moerr.NewInternalError(ctx, "%s is not a number", d.Type()))
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareFloat orders NaN after every other value and equal to itself.
func compareFloat(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return compareOrdered(a, b)
}

func isFloatNaN(d datum.Datum) bool {
	oid := d.Type().Oid
	return (oid == types.T_float32 || oid == types.T_float64) && math.IsNaN(d.Float64())
}

// compareNumbers compares two numbers of any NUMBER kinds by value.
func compareNumbers(ctx context.Context, a, b datum.Datum) int {
	an, bn := isFloatNaN(a), isFloatNaN(b)
	if an || bn {
		return compareFloat(toFloat64(ctx, a), toFloat64(ctx, b))
	}
	if a.Type().IsInteger() && b.Type().IsInteger() {
		return compareOrdered(a.Int64(), b.Int64())
	}
	return toDecimal(ctx, a).Cmp(toDecimal(ctx, b))
}

// compareAs compares a and b as values of kind oid. Both belong to the
// family of oid.
func compareAs(ctx context.Context, oid types.T, a, b datum.Datum) int {
	switch oid {
	case types.T_bool:
		return compareBool(a.Bool(), b.Bool())
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		return compareOrdered(a.Int64(), b.Int64())
	case types.T_numeric, types.T_decimal:
		return toDecimal(ctx, a).Cmp(toDecimal(ctx, b))
	case types.T_float32, types.T_float64:
		return compareFloat(toFloat64(ctx, a), toFloat64(ctx, b))
	case types.T_char, types.T_varchar, types.T_string, types.T_clob:
		return strings.Compare(a.Text(), b.Text())
	case types.T_blob:
		return bytes.Compare(a.Bytes(), b.Bytes())
	case types.T_date, types.T_time, types.T_timez, types.T_timestamp, types.T_timestampz:
		ta, tb := a.Time(), b.Time()
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		}
		return 0
	}
	panic(moerr.NewNotSupported(ctx, "ordering of %s", oid))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
