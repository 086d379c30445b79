package model

import (
	"path/filepath"
	"strings"
)

// FileKind distinguishes the two kinds of source file.
type FileKind int

const (
	FileProgram FileKind = iota
	FileUnit
)

// Analysis lifecycle states of a file.  The middle state is what breaks
// dependency cycles: a file revisited while its own analysis is still on
// the stack is left alone instead of being analyzed again.
const (
	fileUnparsed = iota
	fileAnalyzing
	fileParsed
)

// CodeFile is one analyzed source file.
type CodeFile struct {
	// Path is the absolute path of the file.
	Path string

	// Name is the program or unit name from the heading.  It is empty
	// until the file has been parsed.
	Name string

	// Kind tells whether the file is a program or a unit.
	Kind FileKind

	// Folder is the directory entry the file sits under.
	Folder *CodeFolder

	// Intf is the interface scope.  It is nil for programs.
	Intf *Scope

	// Impl is the implementation scope of a unit or the body scope of a
	// program.
	Impl *Scope

	// Syms holds every resolved occurrence in the file in binding order.
	Syms []*Symbol

	// Includes lists the include directives seen while lexing the file.
	Includes []*IncludeRef

	// Imports lists the units named in uses clauses, in source order,
	// resolved or not.
	Imports []*Import

	// Sloc counts the source lines of code in the file.
	Sloc int

	state int
}

func (f *CodeFile) ThingKind() Kind { return KindFile }

// BaseName returns the file name without its directory.
func (f *CodeFile) BaseName() string { return filepath.Base(f.Path) }

// StartAnalysis moves the file out of the unparsed state.  It reports
// false when analysis already ran or is still in progress, in which case
// the caller must not analyze the file again.
func (f *CodeFile) StartAnalysis() bool {
	if f.state != fileUnparsed {
		return false
	}

	f.state = fileAnalyzing
	return true
}

// FinishAnalysis marks the file fully analyzed.
func (f *CodeFile) FinishAnalysis() { f.state = fileParsed }

// Analyzed reports whether the file completed analysis.
func (f *CodeFile) Analyzed() bool { return f.state == fileParsed }

// FindImport returns the import of the given unit name, ignoring case, or
// nil.
func (f *CodeFile) FindImport(name string) *Import {
	for _, imp := range f.Imports {
		if strings.EqualFold(imp.Name, name) {
			return imp
		}
	}

	return nil
}

// Import is one unit reference from a uses clause.  The pre-scanner only
// yields names, so imports carry no position of their own.
type Import struct {
	// Name is the referenced unit name as written.
	Name string

	// Resolved is the unit's file once the loader has located and
	// analyzed it, or nil when the reference could not be resolved.
	Resolved *CodeFile
}

// IncludeRef records an include directive inside a source file.
type IncludeRef struct {
	// Target is the include payload as written in the directive.
	Target string

	// Path is the absolute path of the included file when it was found,
	// otherwise empty.
	Path string

	// Loc is the directive position in the including file.
	Loc Loc
}

func (r *IncludeRef) ThingKind() Kind { return KindInclude }

// Len returns the width of the directive target as written.
func (r *IncludeRef) Len() int { return len(r.Target) }
