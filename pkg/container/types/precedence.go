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
	"context"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
)

// precedence lists every supported kind from lowest to highest. When two
// kinds meet, the later one wins.
var precedence = []T{
	T_unknown,
	T_bool,
	T_int8,
	T_int16,
	T_int32,
	T_int64,
	T_numeric,
	T_decimal,
	T_float32,
	T_float64,
	T_char,
	T_varchar,
	T_string,
	T_clob,
	T_blob,
	T_date,
	T_time,
	T_timez,
	T_timestamp,
	T_timestampz,
	T_array,
	T_bag,
	T_row,
	T_struct,
	T_dynamic,
}

var ranks = buildRanks()

func buildRanks() (r [NumKinds]int) {
	for i := range r {
		r[i] = -1
	}
	for i, oid := range precedence {
		r[oid] = i
	}
	return
}

// Precedence returns the rank of kind oid. Asking for a kind the engine
// does not support is a programming error and panics.
func Precedence(oid T) int {
	if int(oid) >= NumKinds || ranks[oid] < 0 {
		panic(moerr.NewInternalError(context.TODO(), "unsupported type kind %s", oid))
	}
	return ranks[oid]
}

// Supported reports whether oid has a rank.
func Supported(oid T) bool {
	return int(oid) < NumKinds && ranks[oid] >= 0
}

// Kinds returns every supported kind in precedence order.
func Kinds() []T {
	return append([]T(nil), precedence...)
}

// Promote returns the common operand types of l and r: the operand of
// higher rank replaces the other one.
func Promote(l, r Type) (Type, Type) {
	lr, rr := Precedence(l.Oid), Precedence(r.Oid)
	switch {
	case lr < rr:
		return r, r
	case lr > rr:
		return l, l
	}
	return l, r
}
