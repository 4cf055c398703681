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

	"github.com/cockroachdb/apd/v3"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

// DecimalContext is the context of every decimal computation. Its
// precision leaves room for exact intermediate results of two operands of
// the largest decimal type; results are rounded half up.
var DecimalContext = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(2*types.MaxDecimalPrecision + 2)
	c.Rounding = apd.RoundHalfUp
	return c
}()

// RoundDecimal rounds d half up to scale digits after the point and checks
// that the result has at most precision digits.
func RoundDecimal(ctx context.Context, d *apd.Decimal, typ types.Type) (*apd.Decimal, error) {
	r := new(apd.Decimal)
	if _, err := DecimalContext.Quantize(r, d, -typ.Scale); err != nil {
		return nil, moerr.NewOutOfRange(ctx, typ.String(), "value %s", d.Text('f'))
	}
	if r.NumDigits() > int64(typ.Width) {
		return nil, moerr.NewOutOfRange(ctx, typ.String(), "value %s", d.Text('f'))
	}
	return r, nil
}
