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
	"strings"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

// evalFn computes an operator over its arguments. It sees NULL arguments
// only when nullCall is unset, MISSING ones only when both flags are unset.
type evalFn func(ctx context.Context, args []datum.Datum) (datum.Datum, error)

// Instance is an operator resolved for fixed argument types. It is
// immutable and safe for concurrent use.
type Instance struct {
	name string
	args []types.Type
	ret  types.Type

	// nullCall: any NULL or MISSING argument gives NULL without calling fn.
	nullCall bool
	// missingCall: any MISSING argument gives MISSING without calling fn.
	// It is checked before nullCall.
	missingCall bool

	fn evalFn
}

func newInstance(name string, ret types.Type, fn evalFn, args ...types.Type) *Instance {
	return &Instance{
		name:        name,
		args:        args,
		ret:         ret,
		nullCall:    true,
		missingCall: true,
		fn:          fn,
	}
}

func (f *Instance) Name() string {
	return f.name
}

// Args returns the parameter types the instance was resolved for.
func (f *Instance) Args() []types.Type {
	return f.args
}

func (f *Instance) ReturnType() types.Type {
	return f.ret
}

// NullCall reports whether a NULL argument always gives NULL.
func (f *Instance) NullCall() bool {
	return f.nullCall
}

func (f *Instance) MissingCall() bool {
	return f.missingCall
}

func (f *Instance) String() string {
	names := make([]string, len(f.args))
	for i, arg := range f.args {
		names[i] = arg.String()
	}
	return f.name + "(" + strings.Join(names, ", ") + ") -> " + f.ret.String()
}

// Eval evaluates the operator over one row. Panics raised by the operator
// body come back as internal errors.
func (f *Instance) Eval(ctx context.Context, args ...datum.Datum) (result datum.Datum, err error) {
	if len(args) != len(f.args) {
		return nil, moerr.NewInternalError(ctx, "operator %s expects %d arguments, got %d", f.name, len(f.args), len(args))
	}
	hasNull, hasMissing := false, false
	for _, arg := range args {
		if arg.IsMissing() {
			hasMissing = true
		} else if arg.IsNull() {
			hasNull = true
		}
	}
	if hasMissing && f.missingCall {
		return datum.Missing(), nil
	}
	if (hasNull || hasMissing) && f.nullCall {
		return datum.Null(f.ret), nil
	}

	defer func() {
		if e := recover(); e != nil {
			result, err = nil, moerr.ConvertPanicError(ctx, e)
		}
	}()
	return f.fn(ctx, args)
}
