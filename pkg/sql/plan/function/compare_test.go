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
	"math"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

func evalOp(op Operator, args ...datum.Datum) (datum.Datum, error) {
	typs := make([]types.Type, len(args))
	for i, arg := range args {
		typs[i] = arg.Type()
	}
	f := op.Resolve(typs...)
	So(f, ShouldNotBeNil)
	return f.Eval(context.TODO(), args...)
}

func shouldBeBool(op Operator, want bool, args ...datum.Datum) {
	r, err := evalOp(op, args...)
	So(err, ShouldBeNil)
	So(r.IsNull(), ShouldBeFalse)
	So(r.Bool(), ShouldEqual, want)
}

func TestOrderedComparison(t *testing.T) {
	Convey("ordered comparison", t, func() {
		Convey("integers of different widths", func() {
			shouldBeBool(Lt, true, datum.NewInt8(3), datum.NewInt64(4))
			shouldBeBool(Gte, false, datum.NewInt16(3), datum.NewInt32(4))
			shouldBeBool(Lte, true, datum.NewInt32(4), datum.NewInt32(4))
			shouldBeBool(Gt, true, datum.NewFloat64(4.5), datum.NewInt32(4))
		})

		Convey("decimal fast path", func() {
			f := Lt.Resolve(types.NewDecimal(5, 1), types.T_int32.ToType())
			So(f.Args(), ShouldResemble, []types.Type{types.NewDecimal(5, 1), types.T_int32.ToType()})
			dec := mustParseConvey(types.NewDecimal(5, 1), "3.5")
			shouldBeBool(Lt, false, dec, datum.NewInt32(3))
			shouldBeBool(Gt, true, dec, datum.NewInt32(3))
			shouldBeBool(Lt, true, mustParseConvey(types.NewDecimal(10, 4), "3.4999"), dec)
			shouldBeBool(Eq, true, mustParseConvey(types.NewDecimal(10, 4), "3.5000"), dec)
			shouldBeBool(Lt, true, dec, datum.NewFloat64(3.75))
			shouldBeBool(Lt, true, dec, datum.NewFloat64(math.NaN()))
		})

		Convey("text, binary and bool", func() {
			shouldBeBool(Lt, true, datum.NewText(types.NewText(types.T_varchar, 5), "abc"), datum.NewString("abd"))
			shouldBeBool(Gt, true, datum.NewText(types.T_clob.ToType(), "b"), datum.NewText(types.T_char.ToType(), "a"))
			shouldBeBool(Lt, true, datum.NewBlob([]byte{1}), datum.NewBlob([]byte{1, 0}))
			shouldBeBool(Lt, true, datum.NewBool(false), datum.NewBool(true))
		})

		Convey("temporal", func() {
			d1 := datum.NewTime(types.T_date, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
			d2 := datum.NewTime(types.T_date, time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC))
			shouldBeBool(Lt, true, d1, d2)
			ts := datum.NewTime(types.T_timestamp, time.Date(2022, 1, 1, 8, 0, 0, 0, time.UTC))
			tsz := datum.NewTime(types.T_timestampz, time.Date(2022, 1, 1, 9, 0, 0, 0, time.FixedZone("", 3600)))
			shouldBeBool(Eq, true, ts, tsz)
		})

		Convey("null and missing", func() {
			r, err := evalOp(Lt, datum.Null(types.T_int32.ToType()), datum.NewInt32(1))
			So(err, ShouldBeNil)
			So(r.IsNull(), ShouldBeTrue)
			So(r.Type(), ShouldResemble, boolType)

			r, err = evalOp(Lt, datum.Missing(), datum.NewInt32(1))
			So(err, ShouldBeNil)
			So(r.IsMissing(), ShouldBeTrue)
		})
	})
}

func TestEquality(t *testing.T) {
	Convey("equality", t, func() {
		Convey("three valued", func() {
			r, err := evalOp(Eq, datum.Null(types.T_int32.ToType()), datum.NewInt32(5))
			So(err, ShouldBeNil)
			So(r.IsNull(), ShouldBeTrue)
			shouldBeBool(Eq, true, datum.NewInt32(5), datum.NewInt32(5))
			shouldBeBool(Ne, false, datum.NewInt32(5), datum.NewInt32(5))
		})

		Convey("missing gives null", func() {
			for _, op := range []Operator{Eq, Ne} {
				r, err := evalOp(op, datum.Missing(), datum.NewInt32(5))
				So(err, ShouldBeNil)
				So(r.IsNull(), ShouldBeTrue)
				So(r.IsMissing(), ShouldBeFalse)

				r, err = evalOp(op, datum.Missing(), mustParseConvey(types.NewDecimal(3, 1), "1.0"))
				So(err, ShouldBeNil)
				So(r.IsNull(), ShouldBeTrue)
			}
		})

		Convey("unknown operands", func() {
			f := Eq.Resolve(types.T_unknown.ToType(), types.T_unknown.ToType())
			So(f, ShouldNotBeNil)
			r, err := f.Eval(context.TODO(), datum.Null(types.T_unknown.ToType()), datum.Null(types.T_unknown.ToType()))
			So(err, ShouldBeNil)
			So(r.IsNull(), ShouldBeTrue)
		})

		Convey("across kinds is false, never an error", func() {
			shouldBeBool(Eq, false, datum.NewInt32(5), datum.NewString("5"))
			shouldBeBool(Ne, true, datum.NewInt32(5), datum.NewString("5"))
			shouldBeBool(Eq, false, datum.NewBool(true), datum.NewInt8(1))
			shouldBeBool(Eq, false, datum.NewArray(datum.NewInt32(1)), datum.NewBag(datum.NewInt32(1)))
			shouldBeBool(Eq, true, datum.NewInt32(3), mustParseConvey(types.NewDecimal(5, 2), "3.00"))
			shouldBeBool(Eq, true, datum.NewFloat64(math.NaN()), datum.NewFloat64(math.NaN()))
		})

		Convey("structural", func() {
			one, two := datum.NewInt32(1), datum.NewInt64(2)
			null := datum.Null(types.T_int32.ToType())
			shouldBeBool(Eq, true, datum.NewArray(one, two), datum.NewArray(datum.NewInt64(1), datum.NewInt8(2)))
			shouldBeBool(Eq, false, datum.NewArray(one, two), datum.NewArray(two, one))
			shouldBeBool(Eq, true, datum.NewArray(one, null), datum.NewArray(one, null))
			shouldBeBool(Eq, false, datum.NewArray(one, null), datum.NewArray(one, one))
			shouldBeBool(Eq, true, datum.NewBag(one, two, one), datum.NewBag(one, one, two))
			shouldBeBool(Eq, false, datum.NewBag(one, two, two), datum.NewBag(one, one, two))
			shouldBeBool(Eq, false, datum.NewRow(one, datum.NewString("x")), datum.NewRow(one, datum.NewString("y")))
			shouldBeBool(Ne, true, datum.NewRow(one), datum.NewRow(one, two))
			shouldBeBool(Eq, true,
				datum.NewStruct([]string{"a", "b"}, []datum.Datum{one, datum.NewArray(two)}),
				datum.NewStruct([]string{"b", "a"}, []datum.Datum{datum.NewArray(two), one}))
			shouldBeBool(Eq, false,
				datum.NewStruct([]string{"a"}, []datum.Datum{one}),
				datum.NewStruct([]string{"c"}, []datum.Datum{one}))
		})
	})
}

func mustParseConvey(typ types.Type, text string) datum.Datum {
	v, err := datum.Parse(context.TODO(), typ, text)
	So(err, ShouldBeNil)
	return v
}
