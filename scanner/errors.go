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

package scanner

import "fmt"

// MalformedTokenStreamError is returned by [Scan] when the input token
// stream has unbalanced or otherwise inconsistent open/close/break
// markers. This is a programmer error in the
// [github.com/bracepress/bracepress/build.Builder] that produced the
// stream: the core never recovers from it locally, it only reports it.
type MalformedTokenStreamError struct {
	// Index is the position in the token stream at which the
	// inconsistency was detected.
	Index int
	// Reason describes what invariant was violated.
	Reason string
}

// Error implements error.
func (e *MalformedTokenStreamError) Error() string {
	return fmt.Sprintf("scanner: malformed token stream at index %d: %s", e.Index, e.Reason)
}
