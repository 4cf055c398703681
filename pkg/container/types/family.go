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
	"sort"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
)

// Family is a named group of kinds that combine by widening.
type Family uint8

const (
	FamilyNumber Family = iota
	FamilyText
	FamilyTime
	FamilyTimestamp
	FamilyDate
	FamilyBool
	FamilyBinary
	FamilyCollection

	numFamilies
)

var familyNames = [numFamilies]string{
	FamilyNumber:     "NUMBER",
	FamilyText:       "TEXT",
	FamilyTime:       "TIME",
	FamilyTimestamp:  "TIMESTAMP",
	FamilyDate:       "DATE",
	FamilyBool:       "BOOL",
	FamilyBinary:     "BINARY",
	FamilyCollection: "COLLECTION",
}

func (f Family) String() string {
	if f < numFamilies {
		return familyNames[f]
	}
	return "FAMILY(?)"
}

// families holds the members of each family in precedence order. UNKNOWN
// is a member of every family. Never mutated after init.
var families, familyOf = buildFamilies()

func buildFamilies() (families [numFamilies][]T, familyOf [NumKinds]Family) {
	define := func(f Family, kinds ...T) {
		members := append([]T{T_unknown}, kinds...)
		sort.Slice(members, func(i, j int) bool {
			return Precedence(members[i]) < Precedence(members[j])
		})
		families[f] = members
		for _, k := range kinds {
			familyOf[k] = f
		}
	}
	define(FamilyNumber, T_int8, T_int16, T_int32, T_int64, T_numeric, T_decimal, T_float32, T_float64)
	define(FamilyText, T_char, T_varchar, T_string, T_clob)
	define(FamilyTime, T_time, T_timez)
	define(FamilyTimestamp, T_timestamp, T_timestampz)
	define(FamilyDate, T_date)
	define(FamilyBool, T_bool)
	define(FamilyBinary, T_blob)
	define(FamilyCollection, T_array, T_bag, T_row, T_struct)
	return
}

// Members returns the kinds of family f in precedence order.
func Members(f Family) []T {
	if f >= numFamilies {
		panic(moerr.NewInternalError(context.TODO(), "unknown type family %d", f))
	}
	return append([]T(nil), families[f]...)
}

// IsMember reports whether oid belongs to family f.
func IsMember(f Family, oid T) bool {
	if oid == T_unknown {
		return true
	}
	return int(oid) < NumKinds && oid != T_dynamic && familyOf[oid] == f
}

// FamilyOf returns the family of a kind. UNKNOWN and DYNAMIC have none.
func FamilyOf(oid T) (Family, bool) {
	if oid == T_unknown || oid == T_dynamic || int(oid) >= NumKinds {
		return 0, false
	}
	return familyOf[oid], true
}

// SameFamily reports whether the kinds of every type share one family.
func SameFamily(typs ...Type) bool {
	var fam Family
	found := false
	for _, typ := range typs {
		f, ok := FamilyOf(typ.Oid)
		if !ok {
			if typ.Oid == T_unknown {
				continue
			}
			return false
		}
		if found && f != fam {
			return false
		}
		fam, found = f, true
	}
	return true
}
