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

package ast

// Kind is the closed set of node shapes a [Node] can take. Kind is
// exhaustively switched on by build.Builder rather than dispatched
// through an interface, since the tree has no need for per-kind method
// sets: every kind's formatting behavior is a function of its Children.
type Kind int

const (
	// Leaf wraps exactly one terminal token; Node.LeafID is meaningful and
	// Node.Children is empty.
	KindLeaf Kind = iota
	// File is the root of a translation unit; its children are top-level
	// declarations and conditional-compilation regions.
	KindFile
	// ProtocolDecl is `protocol Name: Conformances { members }`.
	KindProtocolDecl
	// StructDecl is `struct Name<Generics>: Conformances where W { members }`.
	KindStructDecl
	// VarDecl is `var name: Type { accessors }` or `var name: Type = expr`.
	KindVarDecl
	// AccessorBlock is the `{ get set }` (or `{ get }`) following a VarDecl.
	KindAccessorBlock
	// InitDecl is `init(params) { body }`.
	KindInitDecl
	// FuncDecl is `func name<Generics>(params) where W { body }`.
	KindFuncDecl
	// Param is one entry of a ParamList: `label name: Type`.
	KindParam
	// ParamList is the parenthesized, comma-separated parameter list of an
	// InitDecl or FuncDecl.
	KindParamList
	// ConformanceClause is the `: A, B, C` following a type name.
	KindConformanceClause
	// GenericParamList is `<T, U: Constraint>`.
	KindGenericParamList
	// GenericParam is one entry of a GenericParamList.
	KindGenericParam
	// WhereClause is a standalone `where T: Constraint, U == V`.
	KindWhereClause
	// Attribute is `@Name` or `@Name(args)`.
	KindAttribute
	// AttributeList is a run of one or more Attributes decorating a
	// declaration.
	KindAttributeList
	// ArgList is the parenthesized, comma-separated argument list of an
	// Attribute or call expression.
	KindArgList
	// CondCompile is a whole `#if ... #elseif ... #else ... #endif` region;
	// its children are CondBranch nodes.
	KindCondCompile
	// CondBranch is one `#if`/`#elseif`/`#else` branch and the
	// declarations or statements it guards.
	KindCondBranch
	// Body is a brace-delimited block of members or statements.
	KindBody
	// Verbatim is a raw region (an embedded multi-line string literal or
	// similar) reproduced unchanged apart from reindentation; Node.LeafID
	// names the leaf whose text is the raw content.
	KindVerbatim
)

// String returns the Go source representation of k.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "KindLeaf"
	case KindFile:
		return "KindFile"
	case KindProtocolDecl:
		return "KindProtocolDecl"
	case KindStructDecl:
		return "KindStructDecl"
	case KindVarDecl:
		return "KindVarDecl"
	case KindAccessorBlock:
		return "KindAccessorBlock"
	case KindInitDecl:
		return "KindInitDecl"
	case KindFuncDecl:
		return "KindFuncDecl"
	case KindParam:
		return "KindParam"
	case KindParamList:
		return "KindParamList"
	case KindConformanceClause:
		return "KindConformanceClause"
	case KindGenericParamList:
		return "KindGenericParamList"
	case KindGenericParam:
		return "KindGenericParam"
	case KindWhereClause:
		return "KindWhereClause"
	case KindAttribute:
		return "KindAttribute"
	case KindAttributeList:
		return "KindAttributeList"
	case KindArgList:
		return "KindArgList"
	case KindCondCompile:
		return "KindCondCompile"
	case KindCondBranch:
		return "KindCondBranch"
	case KindBody:
		return "KindBody"
	case KindVerbatim:
		return "KindVerbatim"
	default:
		return "Kind(?)"
	}
}

// Node is one element of the tree: either a terminal ([KindLeaf], carrying
// a [LeafID]) or a production over Children.
type Node struct {
	Kind     Kind
	LeafID   LeafID
	Children []Node
}

// NewLeaf wraps id as a KindLeaf node.
func NewLeaf(id LeafID) Node {
	return Node{Kind: KindLeaf, LeafID: id}
}

// NewVerbatim wraps id, whose Leaf.Text is raw content, as a KindVerbatim
// node.
func NewVerbatim(id LeafID) Node {
	return Node{Kind: KindVerbatim, LeafID: id}
}

// New builds a composite node of the given kind over children.
func New(kind Kind, children ...Node) Node {
	return Node{Kind: kind, Children: children}
}

// Child returns n's i'th child, or the zero Node if out of range. It is a
// convenience for build.Builder's per-kind cases, which index fixed
// grammar positions (e.g. "the 0th child of a VarDecl is its name leaf")
// rather than searching Children by kind.
func (n Node) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return Node{}
	}
	return n.Children[i]
}
