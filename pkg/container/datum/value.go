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

package datum

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

const (
	flagNull uint8 = 1 << iota
	flagMissing
)

const (
	DateLayout       = "2006-01-02"
	TimeLayout       = "15:04:05.999999999"
	TimezLayout      = "15:04:05.999999999Z07:00"
	TimestampLayout  = "2006-01-02 15:04:05.999999999"
	TimestampzLayout = "2006-01-02 15:04:05.999999999Z07:00"
)

// Value is the Datum implementation. The zero Value is a NULL of kind
// UNKNOWN.
type Value struct {
	typ   types.Type
	flags uint8

	i     int64
	f     float64
	d     *apd.Decimal
	s     string
	b     []byte
	t     time.Time
	elems []Datum
	names []string
}

var _ Datum = Value{}

func Null(typ types.Type) Value {
	return Value{typ: typ, flags: flagNull}
}

func Missing() Value {
	return Value{flags: flagMissing}
}

func NewBool(v bool) Value {
	r := Value{typ: types.T_bool.ToType()}
	if v {
		r.i = 1
	}
	return r
}

func NewInt8(v int8) Value {
	return Value{typ: types.T_int8.ToType(), i: int64(v)}
}

func NewInt16(v int16) Value {
	return Value{typ: types.T_int16.ToType(), i: int64(v)}
}

func NewInt32(v int32) Value {
	return Value{typ: types.T_int32.ToType(), i: int64(v)}
}

func NewInt64(v int64) Value {
	return Value{typ: types.T_int64.ToType(), i: v}
}

// NewDecimal returns a value of the decimal type typ. The value is not
// rounded to typ's scale.
func NewDecimal(typ types.Type, v *apd.Decimal) Value {
	return Value{typ: typ, d: v}
}

func NewFloat32(v float32) Value {
	return Value{typ: types.T_float32.ToType(), f: float64(v)}
}

func NewFloat64(v float64) Value {
	return Value{typ: types.T_float64.ToType(), f: v}
}

// NewText returns a CHAR, VARCHAR, STRING or CLOB value.
func NewText(typ types.Type, v string) Value {
	return Value{typ: typ, s: v}
}

func NewString(v string) Value {
	return NewText(types.T_string.ToType(), v)
}

func NewBlob(v []byte) Value {
	return Value{typ: types.T_blob.ToType(), b: v}
}

// NewTime returns a DATE, TIME, TIMEZ, TIMESTAMP or TIMESTAMPZ value.
func NewTime(oid types.T, v time.Time) Value {
	return Value{typ: oid.ToType(), t: v}
}

func NewArray(elems ...Datum) Value {
	return Value{typ: types.T_array.ToType(), elems: elems}
}

func NewBag(elems ...Datum) Value {
	return Value{typ: types.T_bag.ToType(), elems: elems}
}

func NewRow(elems ...Datum) Value {
	return Value{typ: types.T_row.ToType(), elems: elems}
}

func NewStruct(names []string, elems []Datum) Value {
	return Value{typ: types.T_struct.ToType(), names: names, elems: elems}
}

func (v Value) Type() types.Type {
	return v.typ
}

func (v Value) IsNull() bool {
	return v.flags&flagNull != 0
}

func (v Value) IsMissing() bool {
	return v.flags&flagMissing != 0
}

func (v Value) mustBe(accessor string, oids ...types.T) {
	if v.flags != 0 {
		panic(moerr.NewInternalErrorNoCtx("%s called on a %s", accessor, v.String()))
	}
	for _, oid := range oids {
		if v.typ.Oid == oid {
			return
		}
	}
	panic(moerr.NewInternalErrorNoCtx("%s called on a value of type %s", accessor, v.typ))
}

func (v Value) Bool() bool {
	v.mustBe("Bool", types.T_bool)
	return v.i != 0
}

func (v Value) Int8() int8 {
	v.mustBe("Int8", types.T_int8)
	return int8(v.i)
}

func (v Value) Int16() int16 {
	v.mustBe("Int16", types.T_int16)
	return int16(v.i)
}

func (v Value) Int32() int32 {
	v.mustBe("Int32", types.T_int32)
	return int32(v.i)
}

func (v Value) Int64() int64 {
	v.mustBe("Int64", types.T_int8, types.T_int16, types.T_int32, types.T_int64)
	return v.i
}

func (v Value) Decimal() *apd.Decimal {
	v.mustBe("Decimal", types.T_numeric, types.T_decimal)
	return v.d
}

func (v Value) Float32() float32 {
	v.mustBe("Float32", types.T_float32)
	return float32(v.f)
}

func (v Value) Float64() float64 {
	v.mustBe("Float64", types.T_float32, types.T_float64)
	return v.f
}

func (v Value) Text() string {
	v.mustBe("Text", types.T_char, types.T_varchar, types.T_string, types.T_clob)
	return v.s
}

func (v Value) Bytes() []byte {
	v.mustBe("Bytes", types.T_blob)
	return v.b
}

func (v Value) Time() time.Time {
	v.mustBe("Time", types.T_date, types.T_time, types.T_timez, types.T_timestamp, types.T_timestampz)
	return v.t
}

func (v Value) Elems() []Datum {
	v.mustBe("Elems", types.T_array, types.T_bag, types.T_row, types.T_struct)
	return v.elems
}

func (v Value) FieldNames() []string {
	v.mustBe("FieldNames", types.T_struct)
	return v.names
}

func (v Value) String() string {
	switch {
	case v.IsMissing():
		return "MISSING"
	case v.IsNull():
		return "NULL"
	}
	switch v.typ.Oid {
	case types.T_bool:
		return strconv.FormatBool(v.i != 0)
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		return strconv.FormatInt(v.i, 10)
	case types.T_numeric, types.T_decimal:
		return v.d.Text('f')
	case types.T_float32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case types.T_float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case types.T_char, types.T_varchar, types.T_string, types.T_clob:
		return v.s
	case types.T_blob:
		return "0x" + hex.EncodeToString(v.b)
	case types.T_date:
		return v.t.Format(DateLayout)
	case types.T_time:
		return v.t.Format(TimeLayout)
	case types.T_timez:
		return v.t.Format(TimezLayout)
	case types.T_timestamp:
		return v.t.Format(TimestampLayout)
	case types.T_timestampz:
		return v.t.Format(TimestampzLayout)
	case types.T_array:
		return joinElems("[", v.elems, nil, "]")
	case types.T_bag:
		return joinElems("<<", v.elems, nil, ">>")
	case types.T_row:
		return joinElems("(", v.elems, nil, ")")
	case types.T_struct:
		return joinElems("{", v.elems, v.names, "}")
	}
	return v.typ.String()
}

func joinElems(open string, elems []Datum, names []string, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		if names != nil {
			sb.WriteString(names[i])
			sb.WriteString(": ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString(close)
	return sb.String()
}

// IntegerRange returns the bounds of an integer kind.
func IntegerRange(oid types.T) (lo, hi int64) {
	switch oid {
	case types.T_int8:
		return math.MinInt8, math.MaxInt8
	case types.T_int16:
		return math.MinInt16, math.MaxInt16
	case types.T_int32:
		return math.MinInt32, math.MaxInt32
	}
	return math.MinInt64, math.MaxInt64
}
