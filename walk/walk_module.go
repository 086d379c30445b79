package walk

import (
	"pasnav/model"
	"pasnav/syntax"
)

// walkProgram binds a program file.  A program carries a single body
// scope holding the declarations of its outermost block.
func (w *Walker) walkProgram(root *syntax.Node) {
	if tok := root.IdentTok(); tok != nil {
		w.file.Name = tok.Value
	}

	w.file.Impl = &model.Scope{Kind: model.KindBody, Owner: w.file}

	if block := root.Child(syntax.R_BLOCK); block != nil {
		prev := w.pushScope(w.file.Impl)
		w.walkDeclParts(block)
		w.popScope(prev)
	}
}

// walkUnit binds a unit file.  The interface part gets its own scope;
// the implementation scope chains to it, so implementation code sees
// interface declarations without qualification.
func (w *Walker) walkUnit(root *syntax.Node) {
	if tok := root.IdentTok(); tok != nil {
		w.file.Name = tok.Value
	}

	w.file.Intf = &model.Scope{Kind: model.KindInterface, Owner: w.file}
	w.file.Impl = &model.Scope{Kind: model.KindImplementation, Owner: w.file, Outer: w.file.Intf}

	if intf := root.Child(syntax.R_INTERFACE_PART); intf != nil {
		prev := w.pushScope(w.file.Intf)
		w.walkDeclParts(intf)
		w.popScope(prev)
	}

	if impl := root.Child(syntax.R_IMPLEMENTATION_PART); impl != nil {
		prev := w.pushScope(w.file.Impl)
		w.walkDeclParts(impl)
		w.popScope(prev)
	}

	w.linkTwins()
}

// linkTwins pairs interface routine declarations with their
// implementation counterparts by name and kind.  Both directions are set
// so either end navigates to the other; an interface routine without a
// counterpart keeps a nil link.
func (w *Walker) linkTwins() {
	for _, d := range w.file.Intf.Decls {
		if d.Kind != model.KindProc && d.Kind != model.KindFunc {
			continue
		}
		if d.Link != nil {
			continue
		}

		twin := w.file.Impl.Find(d.Name)
		if twin == nil || twin.Kind != d.Kind || twin.Link != nil {
			continue
		}

		d.Link = twin
		twin.Link = d
	}
}

// walkDeclParts binds the declaration sections of an interface part, an
// implementation part, or a block, plus the compound statement when the
// node is a block.  Uses clauses are skipped here: imports are resolved
// before binding starts.  Label parts are skipped too, labels never
// become declarations.
func (w *Walker) walkDeclParts(part *syntax.Node) {
	for _, child := range part.Children {
		switch child.Kind {
		case syntax.R_CONST_PART:
			w.walkConstPart(child)
		case syntax.R_TYPE_PART:
			w.walkTypePart(child)
		case syntax.R_VAR_PART:
			w.walkVarPart(child)
		case syntax.R_PROC_DECL, syntax.R_FUNC_DECL:
			w.walkRoutineDecl(child)
		case syntax.R_COMPOUND:
			w.walkStatement(child)
		}
	}
}
