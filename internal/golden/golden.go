// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package golden provides a mechanism for managing golden test corpora,
// i.e., collections of files that define compiler test cases alongside
// their expected outputs.
package golden

import (
	"errors"
	"fmt"
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

// A Corpus describes a test data corpus. This is essentially a way of doing
// table-driven tests where the "table" is in your file system.
type Corpus struct {
	// The root of the test data directory. This path is relative to the file
	// that calls [Corpus.Run].
	Root string

	// An environment variable to check with regards to whether to run in
	// "refresh" mode or not. Its value is a glob selecting which test cases
	// to refresh.
	Refresh string

	// The file extension (without a dot) of files which define a test case,
	// e.g. "stmt".
	Extension string

	// Possible outputs of the test, found using Outputs[n].Extension as a
	// suffix on the test case's file name. If the file for a particular
	// output is missing, it is implicitly treated as being expected to be
	// empty.
	Outputs []Output

	// Test executes the test on one test case from the corpus. Returns a
	// slice of strings corresponding to the elements of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output represents one expected output of a test case.
type Output struct {
	// The extension of the output. This is a suffix to the name of the
	// test case's main file; so if Corpus.Extension is "stmt", and this is
	// "stderr", for a test "foo.stmt" the runner looks for files named
	// "foo.stmt.stderr".
	Extension string
}

// Run walks the corpus and runs one subtest per test case file. In refresh
// mode, expected outputs matching the refresh glob are rewritten instead of
// compared, and the test fails so refreshed outputs are not mistaken for a
// passing run.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata FS:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob: %q", refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, testPath := range tests {
		name, _ := filepath.Rel(testDir, testPath)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(testPath)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", testPath, err)
			}

			results := c.Test(t, name, string(input))

			refreshThis, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				outputPath := fmt.Sprint(testPath, ".", output.Extension)

				if !refreshThis {
					want, err := os.ReadFile(outputPath)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Errorf("golden: error while loading output file %q: %v", outputPath, err)
						continue
					}
					if diff := compare(results[i], string(want)); diff != "" {
						t.Errorf("output mismatch for %q:\n%s", outputPath, diff)
					}
					continue
				}

				if results[i] == "" {
					err := os.Remove(outputPath)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Errorf("golden: error while deleting output file %q: %v", outputPath, err)
					}
				} else if err := os.WriteFile(outputPath, []byte(results[i]), 0o660); err != nil {
					t.Errorf("golden: error while writing output file %q: %v", outputPath, err)
				}
			}
		})
	}
}

// compare returns an empty string if got and want match, and a unified diff
// otherwise.
func compare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
