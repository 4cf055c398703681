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
	"regexp"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

// likeOperator matches TEXT against a pattern where % matches any run of
// characters and _ exactly one, with an optional one character ESCAPE.
type likeOperator struct {
	name string
}

func (op *likeOperator) Name() string {
	return op.name
}

func (op *likeOperator) Resolve(args ...types.Type) *Instance {
	if len(args) != 2 && len(args) != 3 {
		return nil
	}
	typed := false
	for _, arg := range args {
		types.Precedence(arg.Oid)
		if arg.Oid == types.T_dynamic {
			return newDynamicInstance(op, args...)
		}
	}
	for _, arg := range args {
		if !types.IsMember(types.FamilyText, arg.Oid) {
			return nil
		}
		typed = typed || arg.Oid != types.T_unknown
	}
	if !typed {
		return nil
	}
	cache := new(likeCache)
	fn := func(ctx context.Context, args []datum.Datum) (datum.Datum, error) {
		escape := ""
		if len(args) == 3 {
			escape = args[2].Text()
		}
		ok, err := cache.match(args[0].Text(), args[1].Text(), escape)
		if err != nil {
			return nil, moerr.NewInternalErrorWithCause(ctx, err, "LIKE")
		}
		return datum.NewBool(ok), nil
	}
	return newInstance(op.name, boolType, fn, args...)
}

// MatchLike reports whether s matches pattern. An empty escape means none.
func MatchLike(s, pattern, escape string) (bool, error) {
	re, err := compileLike(pattern, escape)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

type compiledLike struct {
	pattern string
	escape  string
	re      *regexp.Regexp
	err     error
}

// likeCache keeps the last compiled pattern of one instance. The pattern
// is usually the same on every row, so it is compiled once per column.
type likeCache struct {
	last     atomic.Pointer[compiledLike]
	compiles atomic.Int64
}

func (c *likeCache) match(s, pattern, escape string) (bool, error) {
	cl := c.last.Load()
	if cl == nil || cl.pattern != pattern || cl.escape != escape {
		re, err := compileLike(pattern, escape)
		c.compiles.Add(1)
		cl = &compiledLike{pattern: pattern, escape: escape, re: re, err: err}
		c.last.Store(cl)
	}
	if cl.err != nil {
		return false, cl.err
	}
	return cl.re.MatchString(s), nil
}

func compileLike(pattern, escape string) (*regexp.Regexp, error) {
	var esc rune
	hasEscape := escape != ""
	if hasEscape {
		if utf8.RuneCountInString(escape) != 1 {
			return nil, errors.Errorf("escape %q must be a single character", escape)
		}
		esc, _ = utf8.DecodeRuneInString(escape)
	}

	var sb strings.Builder
	sb.WriteString("(?s)^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case hasEscape && c == esc:
			if i+1 == len(runes) {
				return nil, errors.Errorf("pattern %q ends with the escape character", pattern)
			}
			i++
			sb.WriteString(regexp.QuoteMeta(string(runes[i])))
		case c == '%':
			sb.WriteString(".*")
		case c == '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}
