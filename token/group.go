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

package token

import "fmt"

// Style is the breaking discipline of a group opened by an [Open] token.
type Style byte

const (
	// Consistent groups break every contained break together, once the
	// group as a whole does not fit.
	Consistent Style = iota + 1
	// Inconsistent groups decide each contained break independently, based
	// on remaining space at that break.
	Inconsistent
)

// String implements [fmt.Stringer].
func (s Style) String() string {
	switch s {
	case Consistent:
		return "Consistent"
	case Inconsistent:
		return "Inconsistent"
	default:
		return fmt.Sprintf("token.Style(%d)", byte(s))
	}
}
