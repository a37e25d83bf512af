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

package printer

import "github.com/bracepress/bracepress/token"

// groupFrame is one live entry of the Printer's groupStack.
type groupFrame struct {
	style token.Style
	// cumulativeOffset is this group's own offset added to whatever its
	// parent's cumulativeOffset (plus any break that fired immediately
	// before this group opened) was.
	cumulativeOffset int
	// broken latches true the first time a break fires inside a Consistent
	// group, after which every further break in the group also fires.
	broken bool
	// indentDepth is indent.Stack.Depth() at the moment this group opened,
	// so Close can discard any frame pushed by a break inside it.
	indentDepth int
}
