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

// Package token defines the closed set of formatting primitives that a
// [github.com/bracepress/bracepress/build.Builder] emits and that
// [github.com/bracepress/bracepress/scanner] and
// [github.com/bracepress/bracepress/printer] consume.
//
// A Token is produced once, in order, and is immutable thereafter; the
// vector of Tokens exclusively owns the strings it carries. There is no
// arena or interning here: unlike the AST (see package ast), the token
// stream is a flat, append-only value sequence with no back-references.
package token

import "fmt"

// Token is a tagged formatting primitive. The zero Token is the invalid
// [Unknown] token and never appears in a well-formed stream.
//
// Only the fields relevant to Kind are meaningful; Kind tags a token's
// interpretation rather than modeling each case as a distinct Go type,
// which would make [Stream] a slice of interfaces and give up cache
// locality for no benefit here.
type Token struct {
	kind        Kind
	text        string
	size        int
	offset      int
	count       int
	style       Style
	commentKind CommentKind
}

// Kind returns which formatting primitive this token is.
func (t Token) Kind() Kind { return t.kind }

// Text returns the literal text of a Syntax, Comment, or Verbatim token.
func (t Token) Text() string { return t.text }

// Size returns the not-broken width of a Break, or the column width of a
// Space.
func (t Token) Size() int { return t.size }

// Offset returns the indent delta of a Break, Open, or Newline.
func (t Token) Offset() int { return t.offset }

// Count returns the number of line breaks a Newline contributes.
func (t Token) Count() int { return t.count }

// Style returns the group discipline of an Open token.
func (t Token) Style() Style { return t.style }

// CommentKind returns the shape of a Comment token.
func (t Token) CommentKind() CommentKind { return t.commentKind }

// NewSyntax returns a token that emits text verbatim; its length is the
// rendered column width of text.
func NewSyntax(text string) Token {
	return Token{kind: Syntax, text: text}
}

// NewSpace returns size columns of hard whitespace. Space is never a
// breakpoint.
func NewSpace(size int) Token {
	if size < 0 {
		panic(fmt.Sprintf("token: negative space size %d", size))
	}
	return Token{kind: Space, size: size}
}

// NewBreak returns an optional breakpoint: size spaces when it does not
// fire, or a newline plus the enclosing group's cumulative offset plus this
// break's own offset when it fires.
func NewBreak(size, offset int) Token {
	if size < 0 {
		panic(fmt.Sprintf("token: negative break size %d", size))
	}
	return Token{kind: Break, size: size, offset: offset}
}

// NewOpen begins a group with the given style. offset (which may be
// negative) is added to the indentation of every break that fires directly
// inside this group.
func NewOpen(style Style, offset int) Token {
	if style != Consistent && style != Inconsistent {
		panic(fmt.Sprintf("token: invalid group style %v", style))
	}
	return Token{kind: Open, style: style, offset: offset}
}

// NewClose ends the nearest unclosed group. It has zero length.
func NewClose() Token {
	return Token{kind: Close}
}

// NewNewline forces count line breaks (count must be >= 1), each indented
// by offset relative to the enclosing group; the first newline replaces the
// current line, the remaining count-1 are bare (no indentation between
// them, only before the next token).
func NewNewline(count, offset int) Token {
	if count < 1 {
		panic(fmt.Sprintf("token: newline count must be >= 1, got %d", count))
	}
	return Token{kind: Newline, count: count, offset: offset}
}

// NewReset cancels a pending, un-fired break, so that whatever follows is
// treated as though it were starting fresh on the current line. It never
// itself emits whitespace.
func NewReset() Token {
	return Token{kind: Reset}
}

// NewComment returns a comment token of the given kind and text. text may
// contain embedded newlines for [Block] and [DocBlock] comments, and for a
// coalesced run of [DocLine] comments.
func NewComment(kind CommentKind, text string) Token {
	return Token{kind: Comment, commentKind: kind, text: text}
}

// NewVerbatim returns a token whose text is emitted unchanged except for
// leading-indentation adjustment; see the Printer's verbatim handling.
func NewVerbatim(text string) Token {
	return Token{kind: Verbatim, text: text}
}

// String implements [fmt.Stringer], primarily for test failure messages.
func (t Token) String() string {
	switch t.kind {
	case Syntax, Verbatim:
		return fmt.Sprintf("%s(%q)", t.kind, t.text)
	case Comment:
		return fmt.Sprintf("Comment(%s, %q)", t.commentKind, t.text)
	case Break:
		return fmt.Sprintf("Break(size=%d, offset=%d)", t.size, t.offset)
	case Space:
		return fmt.Sprintf("Space(%d)", t.size)
	case Open:
		return fmt.Sprintf("Open(%s, offset=%d)", t.style, t.offset)
	case Newline:
		return fmt.Sprintf("Newline(count=%d, offset=%d)", t.count, t.offset)
	default:
		return t.kind.String()
	}
}
