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

package vector

import (
	"fmt"
	"strings"

	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/nulls"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

const (
	FLAT     = iota // flat vector represent a uncompressed vector
	CONSTANT        // const vector
)

// Vector represent a column of datums.
type Vector struct {
	// vector's class
	class int
	// type represent the type of column
	typ types.Type
	nsp *nulls.Nulls // nulls list

	// col holds one datum per row, a single one for a const vector. The
	// datum of a null row is a NULL of typ.
	col    []datum.Datum
	length int
}

func NewVec(typ types.Type) *Vector {
	return &Vector{
		class: FLAT,
		typ:   typ,
		nsp:   &nulls.Nulls{},
	}
}

// NewConst returns a vector of length rows all holding d.
func NewConst(d datum.Datum, length int) *Vector {
	v := &Vector{
		class:  CONSTANT,
		typ:    d.Type(),
		nsp:    &nulls.Nulls{},
		col:    []datum.Datum{d},
		length: length,
	}
	if d.IsNull() {
		nulls.Add(v.nsp, 0)
	}
	return v
}

func NewConstNull(typ types.Type, length int) *Vector {
	return NewConst(datum.Null(typ), length)
}

// NewFromDatums returns a flat vector of typ holding ds.
func NewFromDatums(typ types.Type, ds ...datum.Datum) *Vector {
	v := NewVec(typ)
	for _, d := range ds {
		v.Append(d)
	}
	return v
}

func (v *Vector) Length() int {
	return v.length
}

func (v *Vector) GetType() *types.Type {
	return &v.typ
}

func (v *Vector) GetNulls() *nulls.Nulls {
	return v.nsp
}

func (v *Vector) IsConst() bool {
	return v.class == CONSTANT
}

func (v *Vector) IsConstNull() bool {
	return v.IsConst() && nulls.Contains(v.nsp, 0)
}

// Append adds d as the last row of a flat vector.
func (v *Vector) Append(d datum.Datum) {
	if v.IsConst() {
		panic("append to a const vector")
	}
	if d.IsNull() {
		nulls.Add(v.nsp, uint64(v.length))
	}
	v.col = append(v.col, d)
	v.length++
}

// GetDatum returns row i; a const vector returns its value for every row.
func (v *Vector) GetDatum(i int) datum.Datum {
	if v.IsConst() {
		return v.col[0]
	}
	return v.col[i]
}

// Col returns the datums of a flat vector.
func (v *Vector) Col() []datum.Datum {
	return v.col
}

// Window returns rows [start, end) as a new flat vector sharing the datums.
func (v *Vector) Window(start, end int) *Vector {
	if v.IsConst() {
		return NewConst(v.col[0], end-start)
	}
	w := &Vector{
		class:  FLAT,
		typ:    v.typ,
		nsp:    &nulls.Nulls{},
		col:    v.col[start:end],
		length: end - start,
	}
	nulls.Range(v.nsp, uint64(start), uint64(end), 0, w.nsp)
	return w
}

// Union appends the rows of w to v.
func (v *Vector) Union(w *Vector) {
	for i := 0; i < w.Length(); i++ {
		v.Append(w.GetDatum(i))
	}
}

func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s[", v.typ))
	n := v.length
	if v.IsConst() {
		n = 1
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(v.col[i].String())
	}
	sb.WriteString("]")
	if v.IsConst() {
		sb.WriteString(fmt.Sprintf("-const(%d)", v.length))
	}
	return sb.String()
}
