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

// Package datum holds boxed runtime values. A Datum is created by literal
// parsing or by an operator and consumed by the next operator; it is never
// modified once built.
package datum

import (
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

// Datum is a typed runtime value. Accessors panic when called on a value of
// another kind; operators only call the accessor matching the kind they were
// resolved for.
type Datum interface {
	Type() types.Type
	IsNull() bool
	// IsMissing reports the absent-value marker, distinct from NULL.
	IsMissing() bool

	Bool() bool
	Int8() int8
	Int16() int16
	Int32() int32
	// Int64 accepts every integer kind.
	Int64() int64
	// Decimal returns the value of a NUMERIC or DECIMAL. The result must not
	// be modified.
	Decimal() *apd.Decimal
	Float32() float32
	Float64() float64
	Text() string
	Bytes() []byte
	// Time returns the value of every temporal kind.
	Time() time.Time
	// Elems returns the elements of ARRAY, BAG, ROW and STRUCT values.
	Elems() []Datum
	// FieldNames returns the field names of a STRUCT, parallel to Elems.
	FieldNames() []string

	String() string
}
