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
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/datum"
	"github.com/matrixorigin/mo-scalar/pkg/container/types"
)

func TestLikeMatch(t *testing.T) {
	cases := []struct {
		s, pattern, escape string
		want               bool
	}{
		{"abc", "abc", "", true},
		{"abc", "a%", "", true},
		{"abc", "%c", "", true},
		{"abc", "%", "", true},
		{"", "%", "", true},
		{"abc", "a_c", "", true},
		{"abbc", "a_c", "", false},
		{"a\nc", "a_c", "", true},
		{"a.c", "a.c", "", true},
		{"abc", "a.c", "", false},
		{"a(b)*", "a(b)*", "", true},
		{"10%", "10!%", "!", true},
		{"100", "10!%", "!", false},
		{"a_b", "a#_b", "#", true},
		{"axb", "a#_b", "#", false},
		{"a#b", "a##b", "#", true},
		{"héllo", "h_llo", "", true},
	}
	for _, c := range cases {
		got, err := MatchLike(c.s, c.pattern, c.escape)
		require.NoError(t, err)
		require.Equal(t, c.want, got, "%q LIKE %q ESCAPE %q", c.s, c.pattern, c.escape)
	}

	_, err := MatchLike("a", "a", "ab")
	require.Error(t, err)
	_, err = MatchLike("a", "a!", "!")
	require.Error(t, err)
}

func TestLikeCompiledOnce(t *testing.T) {
	c := new(likeCache)
	for _, s := range []string{"abc", "abd", "xbc", "ab"} {
		ok, err := c.match(s, "ab_", "")
		require.NoError(t, err)
		require.Equal(t, s == "abc" || s == "abd", ok, s)
	}
	require.Equal(t, int64(1), c.compiles.Load())

	ok, err := c.match("a%", "a!%", "!")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), c.compiles.Load())

	for i := 0; i < 2; i++ {
		_, err = c.match("a", "a", "!!")
		require.Error(t, err)
	}
	require.Equal(t, int64(3), c.compiles.Load())
}

func TestLikeOperatorConcurrent(t *testing.T) {
	ctx := context.TODO()
	str := types.T_string.ToType()
	f := Like.Resolve(str, str)
	patterns := []string{"a%", "%b", "_b_"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r, err := f.Eval(ctx, datum.NewString("abc"), datum.NewString(patterns[(g+i)%len(patterns)]))
				if assert.NoError(t, err) {
					assert.Equal(t, patterns[(g+i)%len(patterns)] != "%b", r.Bool())
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestLikeOperator(t *testing.T) {
	ctx := context.TODO()
	str := types.T_string.ToType()
	unknown := types.T_unknown.ToType()

	require.NotNil(t, Like.Resolve(str, str))
	require.NotNil(t, Like.Resolve(types.NewText(types.T_varchar, 4), unknown, types.T_char.ToType()))
	require.NotNil(t, Like.Resolve(unknown, types.T_clob.ToType()))
	require.Nil(t, Like.Resolve(unknown, unknown))
	require.Nil(t, Like.Resolve(types.T_int32.ToType(), str))
	require.Nil(t, Like.Resolve(str))
	require.Nil(t, Like.Resolve(types.T_blob.ToType(), str))

	f := Like.Resolve(str, str, str)
	r, err := f.Eval(ctx, datum.NewString("50%"), datum.NewString("%!%"), datum.NewString("!"))
	require.NoError(t, err)
	require.True(t, r.Bool())

	r, err = f.Eval(ctx, datum.Null(str), datum.NewString("%"), datum.NewString("!"))
	require.NoError(t, err)
	require.True(t, r.IsNull())

	_, err = f.Eval(ctx, datum.NewString("a"), datum.NewString("a"), datum.NewString("!!"))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))
	require.NotNil(t, errors.Unwrap(err))

	f = Like.Resolve(types.T_dynamic.ToType(), str)
	require.Equal(t, types.T_dynamic, f.ReturnType().Oid)
	r, err = f.Eval(ctx, datum.NewString("abc"), datum.NewString("_b_"))
	require.NoError(t, err)
	require.True(t, r.Bool())
}
