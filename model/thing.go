// Package model defines the code model produced by analyzing a source
// tree: the folder and file graph, the scopes and declarations bound inside
// each file, and the resolved identifier occurrences that position and
// cross reference queries run against.
package model

// Kind classifies everything the code model hands out.
type Kind int

// Enumeration of model entity kinds.
const (
	KindConst Kind = iota + 1
	KindType
	KindTypeAlias
	KindVar
	KindParam
	KindFunc
	KindProc
	KindField
	KindLabel

	// Scope kinds.
	KindInterface
	KindImplementation
	KindBody

	// Structural kinds.
	KindFile
	KindInclude
	KindFolder
)

// String returns the lowercase display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindType:
		return "type"
	case KindTypeAlias:
		return "type alias"
	case KindVar:
		return "var"
	case KindParam:
		return "param"
	case KindFunc:
		return "function"
	case KindProc:
		return "procedure"
	case KindField:
		return "field"
	case KindLabel:
		return "label"
	case KindInterface:
		return "interface"
	case KindImplementation:
		return "implementation"
	case KindBody:
		return "body"
	case KindFile:
		return "file"
	case KindInclude:
		return "include"
	case KindFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Thing is implemented by every entity that can own a scope or sit in a
// folder tree: declarations, scopes, files, include references, and
// folders.  Consumers needing more than the kind switch on the concrete
// type.
type Thing interface {
	ThingKind() Kind
}

// Loc is a position inside a project file.  Rows and columns are 1 based.
type Loc struct {
	Path string
	Row  int
	Col  int
}
