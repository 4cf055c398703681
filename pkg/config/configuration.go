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

package config

import (
	"context"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/mo-scalar/pkg/common/moerr"
	"github.com/matrixorigin/mo-scalar/pkg/logutil"
)

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultLogMaxSize = 512
	defaultBatchSize  = 8192
	defaultStacktrace = "fatal"
)

// numCPU sizes the evaluator when no parallelism is configured.
var numCPU = runtime.NumCPU

// Parameters of mo-opcheck
type Parameters struct {
	Log logutil.LogConfig `toml:"log"`

	Eval EvalParameters `toml:"eval"`
}

// EvalParameters configures batch evaluation.
type EvalParameters struct {
	//default is the number of CPUs. The count of workers evaluating batches.
	Parallelism int `toml:"parallelism"`

	//default is 8192. The count of rows evaluated by one worker at a time.
	BatchSize int `toml:"batch-size"`
}

// LoadFromFile decodes the toml file at path. Keys the file sets that no
// parameter knows about are rejected.
func LoadFromFile(ctx context.Context, path string) (*Parameters, error) {
	params := &Parameters{}
	md, err := toml.DecodeFile(path, params)
	if err != nil {
		return nil, moerr.NewBadConfig(ctx, "decode %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, moerr.NewBadConfig(ctx, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	params.SetDefaultValues()
	if err = params.Validate(ctx); err != nil {
		return nil, err
	}
	return params, nil
}

// SetDefaultValues fills the parameters left unset.
func (p *Parameters) SetDefaultValues() {
	if p.Log.Level == "" {
		p.Log.Level = defaultLogLevel
	}
	if p.Log.Format == "" {
		p.Log.Format = defaultLogFormat
	}
	if p.Log.MaxSize == 0 {
		p.Log.MaxSize = defaultLogMaxSize
	}
	if p.Log.StacktraceLevel == "" {
		p.Log.StacktraceLevel = defaultStacktrace
	}
	if p.Eval.Parallelism == 0 {
		p.Eval.Parallelism = numCPU()
	}
	if p.Eval.BatchSize == 0 {
		p.Eval.BatchSize = defaultBatchSize
	}
}

func (p *Parameters) Validate(ctx context.Context) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(p.Log.Level)); err != nil {
		return moerr.NewBadConfig(ctx, "log level '%s'", p.Log.Level)
	}
	if err := level.UnmarshalText([]byte(p.Log.StacktraceLevel)); err != nil {
		return moerr.NewBadConfig(ctx, "stacktrace level '%s'", p.Log.StacktraceLevel)
	}
	switch p.Log.Format {
	case "console", "json":
	default:
		return moerr.NewBadConfig(ctx, "log format '%s'", p.Log.Format)
	}
	if p.Log.MaxSize < 0 || p.Log.MaxDays < 0 || p.Log.MaxBackups < 0 {
		return moerr.NewBadConfig(ctx, "negative log rotation setting")
	}
	if p.Eval.Parallelism < 0 {
		return moerr.NewBadConfig(ctx, "parallelism %d", p.Eval.Parallelism)
	}
	if p.Eval.BatchSize < 0 {
		return moerr.NewBadConfig(ctx, "batch size %d", p.Eval.BatchSize)
	}
	return nil
}
