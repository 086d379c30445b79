package model

import "fmt"

// Diagnostic is one problem recorded while loading a project: an
// unresolvable unit reference or a parse error.  Diagnostics never abort a
// load.
type Diagnostic struct {
	Path string
	Row  int
	Col  int
	Msg  string
}

// String formats the diagnostic as path:row:col: message, dropping the
// position when there is none.
func (d Diagnostic) String() string {
	if d.Row == 0 {
		return fmt.Sprintf("%s: %s", d.Path, d.Msg)
	}

	return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Row, d.Col, d.Msg)
}

// Project is one fully analyzed source tree.  A load builds a complete
// project and hands it over as a value; reloading builds a fresh one
// rather than mutating an existing project in place.
type Project struct {
	// Root is the folder tree of the project.
	Root *CodeFolder

	// Diagnostics collects the problems found during loading in the
	// order they were recorded.
	Diagnostics []Diagnostic

	// Sloc is the total source lines of code across all analyzed files.
	Sloc int

	files map[string]*CodeFile
}

// NewProject creates an empty project around a root folder.
func NewProject() *Project {
	return &Project{
		Root:  &CodeFolder{},
		files: make(map[string]*CodeFile),
	}
}

// AddFile registers a file under its absolute path.
func (p *Project) AddFile(f *CodeFile) {
	p.files[f.Path] = f
}

// FileAt returns the analyzed file with the given absolute path, or nil.
func (p *Project) FileAt(path string) *CodeFile {
	return p.files[path]
}

// FileCount returns the number of registered files.
func (p *Project) FileCount() int { return len(p.files) }

// SymCount returns the total number of resolved occurrences across all
// registered files.
func (p *Project) SymCount() int {
	n := 0
	for _, f := range p.files {
		n += len(f.Syms)
	}

	return n
}

// Report appends a diagnostic.
func (p *Project) Report(path string, row, col int, msg string) {
	p.Diagnostics = append(p.Diagnostics, Diagnostic{Path: path, Row: row, Col: col, Msg: msg})
}

// FindSymbolAt returns the resolved occurrence covering the given position,
// or nil when the position touches no resolved name.  A column is covered
// when it falls in [start, start+width) of an occurrence on the same row.
// The scan is linear; a file's occurrence count is bounded by its token
// count and the query is interactive.
func (p *Project) FindSymbolAt(path string, row, col int) *Symbol {
	file := p.files[path]
	if file == nil {
		return nil
	}

	for _, sym := range file.Syms {
		if sym.Loc.Row == row && sym.Loc.Col <= col && col < sym.Loc.Col+sym.Len() {
			return sym
		}
	}

	return nil
}

// FindDeclAt is FindSymbolAt reduced to the declaration behind the
// occurrence.
func (p *Project) FindDeclAt(path string, row, col int) *Declaration {
	if sym := p.FindSymbolAt(path, row, col); sym != nil {
		return sym.Decl
	}

	return nil
}
