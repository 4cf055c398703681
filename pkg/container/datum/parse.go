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
	"context"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

// Parse builds a value of type typ from its literal text. "null" and
// "missing" in any case give the NULL of typ and the missing marker. A
// DYNAMIC type takes the kind of the first of integer, decimal, float, bool
// or string that accepts the text.
func Parse(ctx context.Context, typ types.Type, text string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "null":
		return Null(typ), nil
	case "missing":
		return Missing(), nil
	}

	switch typ.Oid {
	case types.T_unknown:
		return Value{}, moerr.NewInvalidInput(ctx, "only null has type %s", typ)
	case types.T_bool:
		v, err := parseBool(text)
		if err != nil {
			return Value{}, moerr.NewInvalidInput(ctx, "'%s' is not a valid bool expression", text)
		}
		return NewBool(v), nil
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return Value{}, moerr.NewOutOfRange(ctx, typ.String(), "value '%s'", text)
			}
			return Value{}, moerr.NewInvalidInput(ctx, "'%s' is not a valid %s", text, typ)
		}
		lo, hi := IntegerRange(typ.Oid)
		if v < lo || v > hi {
			return Value{}, moerr.NewOutOfRange(ctx, typ.String(), "value '%s'", text)
		}
		return Value{typ: typ.Oid.ToType(), i: v}, nil
	case types.T_numeric, types.T_decimal:
		d, _, err := apd.NewFromString(strings.TrimSpace(text))
		if err != nil || d.Form != apd.Finite {
			return Value{}, moerr.NewInvalidInput(ctx, "'%s' is not a valid %s", text, typ)
		}
		r, err := RoundDecimal(ctx, d, typ)
		if err != nil {
			return Value{}, err
		}
		return NewDecimal(typ, r), nil
	case types.T_float32, types.T_float64:
		bits := 64
		if typ.Oid == types.T_float32 {
			bits = 32
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(text), bits)
		if err != nil {
			return Value{}, moerr.NewInvalidInput(ctx, "'%s' is not a valid %s", text, typ)
		}
		return Value{typ: typ.Oid.ToType(), f: v}, nil
	case types.T_char, types.T_varchar, types.T_string, types.T_clob:
		if typ.Length > 0 && utf8.RuneCountInString(text) > int(typ.Length) {
			return Value{}, moerr.NewDataTruncated(ctx, typ.String(), "'%s' is longer than %d", text, typ.Length)
		}
		return NewText(typ, text), nil
	case types.T_blob:
		if strings.HasPrefix(text, "0x") {
			b, err := hex.DecodeString(text[2:])
			if err != nil {
				return Value{}, moerr.NewInvalidInput(ctx, "'%s' is not a valid hex literal", text)
			}
			return Value{typ: typ, b: b}, nil
		}
		return Value{typ: typ, b: []byte(text)}, nil
	case types.T_date, types.T_time, types.T_timez, types.T_timestamp, types.T_timestampz:
		return parseTime(ctx, typ.Oid, text)
	case types.T_dynamic:
		return parseDynamic(ctx, text)
	}
	return Value{}, moerr.NewNotSupported(ctx, "literal of type %s", typ)
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	if err == nil {
		return v, nil
	}
	// We treat 0 as false, and other numbers as true.
	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil {
		return num != 0, nil
	}
	return false, err
}

var timeLayouts = map[types.T]string{
	types.T_date:       DateLayout,
	types.T_time:       TimeLayout,
	types.T_timez:      TimezLayout,
	types.T_timestamp:  TimestampLayout,
	types.T_timestampz: TimestampzLayout,
}

func parseTime(ctx context.Context, oid types.T, text string) (Value, error) {
	s := strings.TrimSpace(text)
	layout := timeLayouts[oid]
	if oid == types.T_timestamp || oid == types.T_timestampz {
		s = strings.Replace(s, "T", " ", 1)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Value{}, moerr.NewInvalidInput(ctx, "'%s' is not a valid %s", text, oid)
	}
	return NewTime(oid, t), nil
}

func parseDynamic(ctx context.Context, text string) (Value, error) {
	s := strings.TrimSpace(text)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt64(v), nil
	}
	if d, _, err := apd.NewFromString(s); err == nil && d.Form == apd.Finite && !strings.ContainsAny(s, "eE") {
		scale := int32(0)
		if d.Exponent < 0 {
			scale = -d.Exponent
		}
		typ := types.NewDecimal(int32(d.NumDigits()), scale)
		if typ.Width < scale {
			typ.Width = scale
		}
		if typ.Width <= types.MaxDecimalPrecision {
			return NewDecimal(typ, d), nil
		}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return NewFloat64(v), nil
	}
	if v, err := strconv.ParseBool(strings.ToLower(s)); err == nil {
		return NewBool(v), nil
	}
	return NewString(text), nil
}
