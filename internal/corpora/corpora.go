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

// Package corpora provides a mechanism for running formatting tests against
// a directory of input/output file pairs, instead of hand-written
// table-driven cases: the "table" lives in the file system.
package corpora

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one test data corpus: a directory of input files, each
// paired with an expected-output file next to it.
type Corpus struct {
	// Root is the test data directory, relative to the file calling Run.
	Root string

	// Refresh is an environment variable which, when set to a glob matching
	// a test's name, causes that test's expected-output file to be
	// (re)written from Test's result instead of compared against it.
	Refresh string

	// Extension is the file extension (without a dot) of an input file,
	// e.g. "swift".
	Extension string

	// OutputExtension is appended to an input file's full name to form its
	// expected-output file's name, e.g. "formatted".
	OutputExtension string

	// Test runs the case for one input file and returns the text to
	// compare against (or write to) the expected-output file.
	Test func(t *testing.T, path, source string) string
}

// Run discovers every file under c.Root with extension c.Extension and runs
// c.Test on each, comparing the result against the corresponding
// c.OutputExtension file.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: error while walking %q: %v", root, err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s is not a valid glob: %q", c.Refresh, refresh)
		}
	}

	for _, inputPath := range cases {
		name, _ := filepath.Rel(testDir, inputPath)
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(inputPath)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", inputPath, err)
			}

			got := c.Test(t, name, string(raw))
			outputPath := inputPath + "." + c.OutputExtension

			shouldRefresh := refresh != ""
			if shouldRefresh {
				shouldRefresh, _ = doublestar.Match(refresh, name)
			}

			if shouldRefresh {
				if err := os.WriteFile(outputPath, []byte(got), 0o644); err != nil {
					t.Fatalf("corpora: error while writing output file %q: %v", outputPath, err)
				}
				return
			}

			wantRaw, err := os.ReadFile(outputPath)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("corpora: error while loading output file %q: %v", outputPath, err)
			}

			if diff := diff(got, string(wantRaw)); diff != "" {
				t.Errorf("output mismatch for %q (rerun with %s=%s to refresh):\n%s", name, c.Refresh, name, diff)
			}
		})
	}
}

func diff(got, want string) string {
	if got == want {
		return ""
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return out
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
