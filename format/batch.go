// Copyright 2020-2026 The Bracepress Authors.
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

package format

import (
	"context"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Batch formats many files concurrently, bounded by MaxParallelism. Each
// file's formatted output is written back to the same path it was read
// from.
type Batch struct {
	Parser Parser
	Config Config

	// MaxParallelism caps the number of files formatted at once. Zero or
	// negative means min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)).
	MaxParallelism int
}

// FileResult pairs a path with the outcome of formatting it.
type FileResult struct {
	Path   string
	Result Result
	Err    error
}

// Run formats every path in paths, writing successful, error-free results
// back to disk, and returns one FileResult per input path in the same
// order paths were given, regardless of completion order.
func (b *Batch) Run(ctx context.Context, paths []string) []FileResult {
	par := b.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	sem := semaphore.NewWeighted(int64(par))
	results := make([]FileResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = FileResult{Path: path, Err: ctx.Err()}
			continue
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = b.runOne(path)
		}(i, path)
	}
	wg.Wait()

	return results
}

func (b *Batch) runOne(path string) FileResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: &IOFailure{Path: path, Err: err}}
	}

	result, err := Format(string(source), b.Parser, b.Config)
	if err != nil {
		return FileResult{Path: path, Result: result, Err: err}
	}
	if result.Sink.HasErrors() {
		return FileResult{Path: path, Result: result}
	}

	if err := os.WriteFile(path, []byte(result.Output), 0o644); err != nil {
		return FileResult{Path: path, Result: result, Err: &IOFailure{Path: path, Err: err}}
	}
	return FileResult{Path: path, Result: result}
}
