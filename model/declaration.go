package model

import "sort"

// Declaration is a single named entity bound into a scope: a constant,
// type, variable, parameter, field, enumerated literal, procedure, or
// function.
type Declaration struct {
	// Kind classifies the declaration.
	Kind Kind

	// Name is the declared identifier with its source casing preserved.
	Name string

	// Loc is the position of the defining identifier.
	Loc Loc

	// Owner is the scope the declaration was appended to.
	Owner *Scope

	// Body is the scope owned by the declaration itself.  Only procedure
	// and function declarations own one; it holds their parameters and
	// locals.
	Body *Scope

	// Link joins the two declarations a unit procedure or function gets:
	// the interface heading and its implementation each point at the
	// other.  It is nil for everything declared once.
	Link *Declaration

	// refs collects every occurrence that resolved to this declaration,
	// keyed by the absolute path of the file the occurrence appears in.
	refs map[string][]*Symbol
}

func (d *Declaration) ThingKind() Kind { return d.Kind }

// Len returns the column width of the declared name, which is also the
// width of every occurrence resolving to it.
func (d *Declaration) Len() int { return len(d.Name) }

// File returns the source file the declaration was bound in.
func (d *Declaration) File() *CodeFile {
	if d.Owner == nil {
		return nil
	}

	return d.Owner.File()
}

// AddRef records a resolved occurrence of the declaration.
func (d *Declaration) AddRef(sym *Symbol) {
	if d.refs == nil {
		d.refs = make(map[string][]*Symbol)
	}

	d.refs[sym.Loc.Path] = append(d.refs[sym.Loc.Path], sym)
}

// RefsIn returns the occurrences of the declaration recorded in the given
// file, in the order they were bound.
func (d *Declaration) RefsIn(path string) []*Symbol {
	return d.refs[path]
}

// RefFiles returns the paths of every file with at least one recorded
// occurrence, sorted for deterministic output.
func (d *Declaration) RefFiles() []string {
	paths := make([]string, 0, len(d.refs))
	for path := range d.refs {
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths
}

// RefCount returns the total number of occurrences across all files.
func (d *Declaration) RefCount() int {
	n := 0
	for _, syms := range d.refs {
		n += len(syms)
	}

	return n
}
