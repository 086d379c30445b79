// Package walk implements the tree walking binder.  A walker takes one
// parsed source file and fills its code model: declarations appended to
// scopes, and a Symbol recorded for every identifier occurrence that
// resolves through the visible scope chain.
package walk

import (
	"pasnav/model"
	"pasnav/report"
	"pasnav/syntax"
)

// Walker binds a single source file.
type Walker struct {
	// The file being bound.
	file *model.CodeFile

	// The scope new declarations and lookups currently target.
	curScope *model.Scope

	// Whether lookups fall back to imported unit interfaces after the
	// local scope chain is exhausted.
	acrossUnits bool
}

// WalkFile binds a file's syntax tree into its code model.  The tree may
// be partial after a parse error; whatever constructs it carries are
// bound normally.  The file's imports must already be resolved and
// analyzed when cross unit resolution is on.
func WalkFile(file *model.CodeFile, root *syntax.Node, acrossUnits bool) {
	if root == nil {
		return
	}

	w := &Walker{file: file, acrossUnits: acrossUnits}

	switch root.Kind {
	case syntax.R_PROGRAM:
		w.walkProgram(root)
	case syntax.R_UNIT:
		w.walkUnit(root)
	default:
		report.ReportICE("walked tree rooted at non-module node: %d", root.Kind)
	}
}

// -----------------------------------------------------------------------------

// addDecl appends a declaration for the given identifier token to the
// current scope.  A name already declared there is appended anyway: both
// declarations exist, and lookup answers with the earliest.
func (w *Walker) addDecl(kind model.Kind, tok *syntax.Token) *model.Declaration {
	return w.curScope.AddDecl(&model.Declaration{
		Kind: kind,
		Name: tok.Value,
		Loc:  w.locOf(tok),
	})
}

// addSym resolves an identifier token against the current scope chain.  A
// hit records the occurrence on both the file and the declaration; a miss
// records nothing at all.
func (w *Walker) addSym(tok *syntax.Token) *model.Symbol {
	d := w.curScope.Lookup(tok.Value, w.acrossUnits)
	if d == nil {
		return nil
	}

	sym := &model.Symbol{Decl: d, Loc: w.locOf(tok)}
	w.file.Syms = append(w.file.Syms, sym)
	d.AddRef(sym)
	return sym
}

func (w *Walker) locOf(tok *syntax.Token) model.Loc {
	return model.Loc{Path: w.file.Path, Row: tok.Span.StartLine, Col: tok.Span.StartCol}
}

// pushScope makes scope current and returns the previous one for the
// matching popScope.
func (w *Walker) pushScope(scope *model.Scope) *model.Scope {
	prev := w.curScope
	w.curScope = scope
	return prev
}

// popScope restores the scope returned by pushScope.
func (w *Walker) popScope(prev *model.Scope) {
	w.curScope = prev
}
