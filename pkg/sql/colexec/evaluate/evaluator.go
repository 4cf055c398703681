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

package evaluate

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/container/vector"
	"github.com/matrixorigin/mo-scalar/pkg/logutil"
	"github.com/matrixorigin/mo-scalar/pkg/logutil/logutil2"
	"github.com/matrixorigin/mo-scalar/pkg/sql/plan/function"
)

const (
	DefaultParallelism = 4
	DefaultBatchSize   = 8192
)

// Evaluator evaluates instances over large vectors, splitting them into
// batches that run on a shared worker pool.
type Evaluator struct {
	pool      *ants.Pool
	batchSize int
}

func NewEvaluator(parallelism, batchSize int) (*Evaluator, error) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	pool, err := ants.NewPool(parallelism, ants.WithPanicHandler(func(v interface{}) {
		logutil.Error("evaluate worker panic", zap.Any("panic", v))
	}))
	if err != nil {
		return nil, moerr.ConvertGoError(context.TODO(), err)
	}
	return &Evaluator{
		pool:      pool,
		batchSize: batchSize,
	}, nil
}

// Eval evaluates f over vecs like EvalVectors. Inputs longer than one
// batch are evaluated batch by batch in parallel, and the error of the
// earliest failing batch is returned.
func (e *Evaluator) Eval(ctx context.Context, f *function.Instance, vecs ...*vector.Vector) (*vector.Vector, error) {
	length, err := rowCount(ctx, vecs)
	if err != nil {
		return nil, err
	}
	allConst := true
	for _, v := range vecs {
		allConst = allConst && v.IsConst()
	}
	if allConst || length <= e.batchSize {
		return EvalVectors(ctx, f, vecs...)
	}

	n := (length + e.batchSize - 1) / e.batchSize
	logutil2.Debug(ctx, "evaluate in batches",
		zap.String("instance", f.String()),
		zap.Int("rows", length),
		zap.Int("batches", n))

	results := make([]*vector.Vector, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		start := i * e.batchSize
		end := start + e.batchSize
		if end > length {
			end = length
		}
		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			args := make([]*vector.Vector, len(vecs))
			for j, v := range vecs {
				args[j] = v.Window(start, end)
			}
			results[i], errs[i] = EvalVectors(ctx, f, args...)
		})
		if err != nil {
			wg.Done()
			errs[i] = moerr.ConvertGoError(ctx, err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	rvec := vector.NewVec(f.ReturnType())
	for _, r := range results {
		rvec.Union(r)
	}
	return rvec, nil
}

// Running returns the number of busy workers.
func (e *Evaluator) Running() int {
	return e.pool.Running()
}

func (e *Evaluator) Release() {
	e.pool.Release()
}
