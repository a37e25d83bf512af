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

// Package printer implements the second pass of Oppen's two-phase
// pretty-printing algorithm: given a [token.Stream] and the lengths
// computed for it by github.com/bracepress/bracepress/scanner, it emits
// reflowed source text, committing to a line break only when the group it
// is in would not otherwise fit within [Config.MaxLineLength].
package printer

import (
	"fmt"
	"strings"

	"github.com/bracepress/bracepress/indent"
	"github.com/bracepress/bracepress/internal/stackx"
	"github.com/bracepress/bracepress/internal/width"
	"github.com/bracepress/bracepress/token"
)

// pendingBreak is a break that did not fire, deferred until the next
// non-break token.
type pendingBreak struct {
	size int
}

// Printer holds all of the mutable state of a single Print run. It is not
// safe for concurrent use, and owns its indent and group stacks exclusively.
type Printer struct {
	cfg     Config
	tokens  token.Stream
	lengths []int

	remaining    int
	indentStack  *indent.Stack
	groupStack   stackx.Stack[*groupFrame]
	pendingBreak *pendingBreak

	// fireOffset is the offset of the break that fired immediately before
	// the token currently being processed, or nil if the previous token
	// was not a firing break. It is consumed by the next Open, which adds
	// it into the offset the open's own group is measured from, and
	// cleared after every token.
	fireOffset *int

	out strings.Builder
}

// Print renders tokens using the lengths computed for them by
// [github.com/bracepress/bracepress/scanner.Scan] under cfg.
//
// Print does not itself validate that tokens is balanced; callers that
// build a stream themselves should check [token.Stream.Balanced] first, or
// obtain lengths from [github.com/bracepress/bracepress/scanner.Scan],
// which rejects an unbalanced stream, as
// [github.com/bracepress/bracepress/format.Format] does.
func Print(tokens token.Stream, lengths []int, cfg Config) (string, error) {
	if len(tokens) != len(lengths) {
		return "", fmt.Errorf("printer: token stream has %d tokens but %d lengths", len(tokens), len(lengths))
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	p := &Printer{
		cfg:         cfg,
		tokens:      tokens,
		lengths:     lengths,
		remaining:   cfg.MaxLineLength,
		indentStack: indent.NewStack(cfg.TabWidth),
	}

	for i, tok := range tokens {
		p.step(i, tok)
	}

	return p.out.String(), nil
}

// step processes the token at index i, which is needed alongside the token
// itself to look up its precomputed length in p.lengths.
func (p *Printer) step(i int, tok token.Token) {
	fireOffset := 0
	if p.fireOffset != nil {
		fireOffset = *p.fireOffset
	}
	p.fireOffset = nil

	switch tok.Kind() {
	case token.Syntax:
		p.flushPendingBreak()
		p.out.WriteString(tok.Text())
		p.remaining -= width.Width(tok.Text(), p.cfg.TabWidth)

	case token.Space:
		p.flushPendingBreak()
		p.out.WriteString(strings.Repeat(" ", tok.Size()))
		p.remaining -= tok.Size()

	case token.Open:
		p.flushPendingBreak()
		p.openGroup(tok, p.lengths[i], fireOffset)

	case token.Close:
		p.flushPendingBreak()
		p.closeGroup()

	case token.Break:
		p.doBreak(tok, p.lengths[i])

	case token.Newline:
		p.discardPendingBreak()
		p.forceBreak(tok.Count(), tok.Offset())

	case token.Reset:
		p.discardPendingBreak()

	case token.Comment:
		p.flushPendingBreak()
		p.printComment(tok)

	case token.Verbatim:
		p.flushPendingBreak()
		p.printVerbatim(tok)
	}
}

func (p *Printer) flushPendingBreak() {
	if p.pendingBreak == nil {
		return
	}
	pb := p.pendingBreak
	p.pendingBreak = nil
	p.out.WriteString(strings.Repeat(" ", pb.size))
	p.remaining -= pb.size
}

func (p *Printer) discardPendingBreak() {
	p.pendingBreak = nil
}

// cumulativeOffset returns the offset in force for breaks directly inside
// the current innermost group, or 0 at top level.
func (p *Printer) cumulativeOffset() int {
	if frame, ok := p.groupStack.Peek(); ok {
		return frame.cumulativeOffset
	}
	return 0
}

// openGroup decides whether the group starting here fits and pushes its
// frame.
func (p *Printer) openGroup(tok token.Token, length, fireOffset int) {
	cumulative := p.cumulativeOffset() + fireOffset + tok.Offset()

	fits := length <= p.remaining
	broken := tok.Style() == token.Consistent && !fits

	p.groupStack.Push(&groupFrame{
		style:            tok.Style(),
		cumulativeOffset: cumulative,
		broken:           broken,
		indentDepth:      p.indentStack.Depth(),
	})
}

// closeGroup pops the innermost group and discards any indent frame its
// breaks pushed, so the next break to fire recomputes indentation from the
// (now-popped) enclosing group.
func (p *Printer) closeGroup() {
	if p.groupStack.Empty() {
		return
	}
	frame := p.groupStack.Pop()
	p.indentStack.Truncate(frame.indentDepth)
}

// doBreak decides whether a break fires. A firing break emits a line break
// and pushes a new indent frame; a non-firing break is buffered as
// pendingBreak, overwriting whatever was buffered before (the scanner
// already collapsed consecutive breaks' lengths, so the printer need not
// stack them either).
func (p *Printer) doBreak(tok token.Token, length int) {
	frame, hasParent := p.groupStack.Peek()

	fire := false
	switch {
	case hasParent && frame.style == token.Consistent && frame.broken:
		fire = true
	case length > p.remaining:
		fire = true
	}

	if !fire {
		p.pendingBreak = &pendingBreak{size: tok.Size()}
		return
	}

	p.pendingBreak = nil
	if hasParent && frame.style == token.Consistent && !frame.broken {
		frame.broken = true
	}
	p.emitLineBreak(1, tok.Offset())

	offset := tok.Offset()
	p.fireOffset = &offset
}

// forceBreak implements [token.Newline]: it always fires, regardless of
// group state, and contributes count-1 additional bare newlines with no
// indentation between them.
func (p *Printer) forceBreak(count, offset int) {
	p.emitLineBreak(count, offset)
}

// emitLineBreak writes count newlines (the first ends the current line;
// any further ones are bare), then writes the new line's indentation and
// resets p.remaining.
//
// cumulativeOffset() is already an absolute total: a group's
// cumulativeOffset is defined recursively as parent.cumulativeOffset plus
// the offset of the break that opened it plus its own offset, so by the
// time a break fires, its enclosing group's cumulativeOffset is the full
// column indent that line should have, not an incremental delta. The
// indent stack therefore holds at most one live frame at a time,
// replaced on every firing break or newline rather than growing by one
// frame per break; this is what makes the "indent pop policy" trivial: a
// closing group's parent regains control of indentation simply because the
// next break to fire recomputes cumulativeOffset from the (now-popped)
// enclosing group, not because indentStack itself retains a per-group
// history.
func (p *Printer) emitLineBreak(count, offset int) {
	for i := 0; i < count; i++ {
		p.out.WriteByte('\n')
	}

	newIndent := p.cumulativeOffset() + offset
	p.indentStack.Truncate(0)
	p.indentStack.Push(p.cfg.Indent.Kind, newIndent)
	p.out.WriteString(p.indentStack.Render())
	p.remaining = p.cfg.MaxLineLength - p.indentStack.Columns()
}

// printComment writes a comment token, reindenting the continuation lines
// of a coalesced doc-comment run to the current line's indentation.
func (p *Printer) printComment(tok token.Token) {
	switch tok.CommentKind() {
	case token.Line, token.Block, token.DocBlock:
		lines := strings.Split(tok.Text(), "\n")
		p.out.WriteString(lines[0])
		for _, line := range lines[1:] {
			p.out.WriteByte('\n')
			p.out.WriteString(line)
		}
		p.remaining -= width.Width(lines[len(lines)-1], p.cfg.TabWidth)

	case token.DocLine:
		lines := reindentDocLine(tok.Text(), p.indentStack.Render())
		p.out.WriteString(lines[0])
		for _, line := range lines[1:] {
			p.out.WriteByte('\n')
			p.out.WriteString(line)
		}
		p.remaining -= width.Width(lines[len(lines)-1], p.cfg.TabWidth)
	}
}

// printVerbatim writes a verbatim block, reindenting it relative to the
// current line.
func (p *Printer) printVerbatim(tok token.Token) {
	lines := reindentVerbatim(tok.Text(), p.indentStack.Render())
	for i, line := range lines {
		if i > 0 {
			p.out.WriteByte('\n')
		}
		p.out.WriteString(line)
	}
	p.remaining = p.cfg.MaxLineLength - width.Width(lines[len(lines)-1], p.cfg.TabWidth)
}
