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
	"strconv"
	"strings"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
)

var typeNames = map[string]T{
	"unknown":    T_unknown,
	"null":       T_unknown,
	"bool":       T_bool,
	"boolean":    T_bool,
	"tinyint":    T_int8,
	"int8":       T_int8,
	"smallint":   T_int16,
	"int16":      T_int16,
	"int":        T_int32,
	"integer":    T_int32,
	"int32":      T_int32,
	"bigint":     T_int64,
	"int64":      T_int64,
	"numeric":    T_numeric,
	"decimal":    T_decimal,
	"real":       T_float32,
	"float":      T_float32,
	"float32":    T_float32,
	"double":     T_float64,
	"float64":    T_float64,
	"char":       T_char,
	"varchar":    T_varchar,
	"string":     T_string,
	"text":       T_string,
	"clob":       T_clob,
	"blob":       T_blob,
	"date":       T_date,
	"time":       T_time,
	"timez":      T_timez,
	"timestamp":  T_timestamp,
	"timestampz": T_timestampz,
	"array":      T_array,
	"list":       T_array,
	"bag":        T_bag,
	"row":        T_row,
	"struct":     T_struct,
	"dynamic":    T_dynamic,
	"any":        T_dynamic,
}

// ParseType parses a type name such as "integer", "decimal(5,2)" or
// "varchar(10)".
func ParseType(ctx context.Context, text string) (Type, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	name, params := s, ""
	if i := strings.IndexByte(s, '('); i >= 0 {
		if !strings.HasSuffix(s, ")") {
			return Type{}, moerr.NewInvalidInput(ctx, "malformed type '%s'", text)
		}
		name, params = strings.TrimSpace(s[:i]), s[i+1:len(s)-1]
	}
	oid, ok := typeNames[name]
	if !ok {
		return Type{}, moerr.NewInvalidInput(ctx, "unknown type '%s'", text)
	}
	if params == "" {
		return New(oid, 0, 0), nil
	}

	nums := strings.Split(params, ",")
	args := make([]int32, 0, len(nums))
	for _, n := range nums {
		v, err := strconv.ParseInt(strings.TrimSpace(n), 10, 32)
		if err != nil || v < 0 {
			return Type{}, moerr.NewInvalidInput(ctx, "bad type parameter '%s' in '%s'", n, text)
		}
		args = append(args, int32(v))
	}

	switch oid {
	case T_numeric, T_decimal:
		typ := Type{Oid: oid, Width: args[0]}
		if len(args) > 2 {
			return Type{}, moerr.NewInvalidInput(ctx, "too many parameters in '%s'", text)
		}
		if len(args) == 2 {
			typ.Scale = args[1]
		}
		if typ.Width < 1 || typ.Width > MaxDecimalPrecision || typ.Scale > typ.Width {
			return Type{}, moerr.NewInvalidInput(ctx, "invalid precision or scale in '%s'", text)
		}
		return typ, nil
	case T_char, T_varchar, T_string, T_clob, T_blob:
		if len(args) != 1 {
			return Type{}, moerr.NewInvalidInput(ctx, "too many parameters in '%s'", text)
		}
		return NewText(oid, args[0]), nil
	}
	return Type{}, moerr.NewInvalidInput(ctx, "type '%s' takes no parameters", name)
}
