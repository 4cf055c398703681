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

package types

import (
	"fmt"
)

// T is the kind of a physical type.
type T uint8

const (
	// T_unknown is the kind of an untyped NULL. It belongs to every family.
	T_unknown T = iota
	T_bool

	// numeric kinds, ordered by widening range
	T_int8
	T_int16
	T_int32
	T_int64
	T_numeric
	T_decimal
	T_float32
	T_float64

	// text
	T_char
	T_varchar
	T_string
	T_clob

	// binary
	T_blob

	// temporal
	T_date
	T_time
	T_timez
	T_timestamp
	T_timestampz

	// collections
	T_array
	T_bag
	T_row
	T_struct

	// T_dynamic is a type only known at runtime.
	T_dynamic
)

// NumKinds is the number of kinds, the side of every dispatch table.
const NumKinds = int(T_dynamic) + 1

const (
	// MaxDecimalPrecision is the largest precision a derived decimal type
	// may have.
	MaxDecimalPrecision = 38

	DefaultDecimalPrecision = 38
	DefaultDecimalScale     = 0
)

var kindNames = [NumKinds]string{
	T_unknown:    "UNKNOWN",
	T_bool:       "BOOL",
	T_int8:       "TINYINT",
	T_int16:      "SMALLINT",
	T_int32:      "INTEGER",
	T_int64:      "BIGINT",
	T_numeric:    "NUMERIC",
	T_decimal:    "DECIMAL",
	T_float32:    "REAL",
	T_float64:    "DOUBLE",
	T_char:       "CHAR",
	T_varchar:    "VARCHAR",
	T_string:     "STRING",
	T_clob:       "CLOB",
	T_blob:       "BLOB",
	T_date:       "DATE",
	T_time:       "TIME",
	T_timez:      "TIMEZ",
	T_timestamp:  "TIMESTAMP",
	T_timestampz: "TIMESTAMPZ",
	T_array:      "ARRAY",
	T_bag:        "BAG",
	T_row:        "ROW",
	T_struct:     "STRUCT",
	T_dynamic:    "DYNAMIC",
}

func (t T) String() string {
	if int(t) < NumKinds {
		return kindNames[t]
	}
	return fmt.Sprintf("T(%d)", uint8(t))
}

// ToType returns the type of kind t with default parameters.
func (t T) ToType() Type {
	return New(t, 0, 0)
}

// Type is a physical type: a kind and its parameters. Width is the
// precision of NUMERIC and DECIMAL, Length the declared length of
// character and binary kinds.
type Type struct {
	Oid    T
	Width  int32
	Scale  int32
	Length int32
}

// New returns a type of kind oid. Decimal kinds with a zero width get the
// default precision.
func New(oid T, width, scale int32) Type {
	typ := Type{Oid: oid, Width: width, Scale: scale}
	switch oid {
	case T_numeric, T_decimal:
		if width == 0 {
			typ.Width = DefaultDecimalPrecision
			typ.Scale = DefaultDecimalScale
		}
	default:
		if p := IntegerPrecision(oid); p > 0 {
			typ.Width = p
			typ.Scale = 0
		}
	}
	return typ
}

// NewDecimal returns DECIMAL(precision, scale).
func NewDecimal(precision, scale int32) Type {
	return Type{Oid: T_decimal, Width: precision, Scale: scale}
}

// NewText returns a text or binary type of the given length; zero means
// unbounded.
func NewText(oid T, length int32) Type {
	return Type{Oid: oid, Length: length}
}

func (t Type) IsDecimal() bool {
	return t.Oid == T_decimal || t.Oid == T_numeric
}

func (t Type) IsInteger() bool {
	return IntegerPrecision(t.Oid) > 0
}

func (t Type) IsFloat() bool {
	return t.Oid == T_float32 || t.Oid == T_float64
}

func (t Type) Eq(b Type) bool {
	return t == b
}

func (t Type) String() string {
	switch {
	case t.IsDecimal():
		return fmt.Sprintf("%s(%d,%d)", t.Oid, t.Width, t.Scale)
	case t.Length > 0:
		return fmt.Sprintf("%s(%d)", t.Oid, t.Length)
	}
	return t.Oid.String()
}

// IntegerPrecision returns the number of decimal digits needed to hold
// every value of an integer kind, 0 for other kinds.
func IntegerPrecision(oid T) int32 {
	switch oid {
	case T_int8:
		return 3
	case T_int16:
		return 5
	case T_int32:
		return 10
	case T_int64:
		return 19
	}
	return 0
}
