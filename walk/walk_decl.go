package walk

import (
	"pasnav/model"
	"pasnav/syntax"
)

// walkConstPart declares each constant and walks its value expression.
func (w *Walker) walkConstPart(part *syntax.Node) {
	for _, decl := range part.ChildrenOf(syntax.R_CONST_DECL) {
		if tok := decl.IdentTok(); tok != nil {
			w.addDecl(model.KindConst, tok)
		}

		if value := decl.Child(syntax.R_EXPR); value != nil {
			w.walkExpr(value)
		}
	}
}

// walkTypePart declares each type name and walks its denotation.  A
// declaration whose right hand side is a bare type identifier is an
// alias and is tagged as such.
func (w *Walker) walkTypePart(part *syntax.Node) {
	for _, decl := range part.ChildrenOf(syntax.R_TYPE_DECL) {
		var typ *syntax.Node
		for _, child := range decl.Children {
			if child.IsRule() {
				typ = child
				break
			}
		}

		kind := model.KindType
		if typ != nil && typ.Kind == syntax.R_TYPE_IDENT {
			kind = model.KindTypeAlias
		}

		if tok := decl.IdentTok(); tok != nil {
			w.addDecl(kind, tok)
		}

		if typ != nil {
			w.walkType(typ)
		}
	}
}

// walkVarPart declares every variable of each group and walks the common
// type denotation.
func (w *Walker) walkVarPart(part *syntax.Node) {
	for _, decl := range part.ChildrenOf(syntax.R_VAR_DECL) {
		if list := decl.Child(syntax.R_IDENT_LIST); list != nil {
			for _, id := range list.Children {
				if id.Kind == syntax.TOK_IDENT {
					w.addDecl(model.KindVar, id.Tok)
				}
			}
		}

		for _, child := range decl.Children {
			if child.IsRule() && child.Kind != syntax.R_IDENT_LIST {
				w.walkType(child)
			}
		}
	}
}

// -----------------------------------------------------------------------------

// walkRoutineDecl binds a procedure or function declaration and, when a
// body is present, its block inside the routine's own scope.  Forward
// and external directives leave the body scope holding just the
// parameters.
func (w *Walker) walkRoutineDecl(decl *syntax.Node) {
	kind := model.KindProc
	headingKind := syntax.R_PROC_HEADING
	if decl.Kind == syntax.R_FUNC_DECL {
		kind = model.KindFunc
		headingKind = syntax.R_FUNC_HEADING
	}

	heading := decl.Child(headingKind)
	if heading == nil {
		return
	}

	d := w.walkHeading(kind, heading)
	if d == nil {
		return
	}

	if block := decl.Child(syntax.R_BLOCK); block != nil {
		prev := w.pushScope(d.Body)
		w.walkDeclParts(block)
		w.popScope(prev)
	}
}

// walkHeading declares a routine in the current scope and creates its
// body scope.  Parameters and the result type are bound inside the body
// scope, so parameter names shadow outer declarations throughout the
// body.
func (w *Walker) walkHeading(kind model.Kind, heading *syntax.Node) *model.Declaration {
	tok := heading.IdentTok()
	if tok == nil {
		return nil
	}

	d := w.addDecl(kind, tok)
	d.Body = &model.Scope{Kind: model.KindBody, Owner: d, Outer: w.curScope}

	prev := w.pushScope(d.Body)

	if params := heading.Child(syntax.R_FORMAL_PARAMS); params != nil {
		w.walkFormalParams(params)
	}

	if result := heading.Child(syntax.R_TYPE_IDENT); result != nil {
		w.walkTypeIdent(result)
	}

	w.popScope(prev)
	return d
}

// walkFormalParams binds formal parameters into the current body scope.
// A procedural parameter declares a nested routine right there, with a
// body scope of its own for its parameters.
func (w *Walker) walkFormalParams(params *syntax.Node) {
	for _, sec := range params.Children {
		switch sec.Kind {
		case syntax.R_PARAM_SECTION:
			if list := sec.Child(syntax.R_IDENT_LIST); list != nil {
				for _, id := range list.Children {
					if id.Kind == syntax.TOK_IDENT {
						w.addDecl(model.KindParam, id.Tok)
					}
				}
			}

			if typ := sec.Child(syntax.R_TYPE_IDENT); typ != nil {
				w.walkTypeIdent(typ)
			}
		case syntax.R_PROC_HEADING:
			w.walkHeading(model.KindProc, sec)
		case syntax.R_FUNC_HEADING:
			w.walkHeading(model.KindFunc, sec)
		}
	}
}

// -----------------------------------------------------------------------------

// walkType resolves the identifiers a type denotation references.
// Array, record, set, file, and class internals are not descended into:
// member declarations are an extension point the model leaves out, and
// without them resolving their element types would record occurrences no
// query could relate back to a field.
func (w *Walker) walkType(typ *syntax.Node) {
	switch typ.Kind {
	case syntax.R_TYPE_IDENT:
		w.walkTypeIdent(typ)
	case syntax.R_SUBRANGE_TYPE:
		for _, bound := range typ.ChildrenOf(syntax.R_SIMPLE_EXPR) {
			w.walkSimpleExpr(bound)
		}
	case syntax.R_ENUM_TYPE:
		w.walkEnumType(typ)
	case syntax.R_STRING_TYPE:
		if size := typ.Child(syntax.R_EXPR); size != nil {
			w.walkExpr(size)
		}
	case syntax.R_POINTER_TYPE:
		if target := typ.Child(syntax.R_TYPE_IDENT); target != nil {
			w.walkTypeIdent(target)
		}
	}
}

// walkEnumType declares every enumerated literal as a constant in the
// current scope, where the type name itself lives.
func (w *Walker) walkEnumType(typ *syntax.Node) {
	list := typ.Child(syntax.R_IDENT_LIST)
	if list == nil {
		return
	}

	for _, id := range list.Children {
		if id.Kind == syntax.TOK_IDENT {
			w.addDecl(model.KindConst, id.Tok)
		}
	}
}

// walkTypeIdent resolves a type identifier reference.  The builtin
// string keyword names no declaration and stays unresolved.
func (w *Walker) walkTypeIdent(typ *syntax.Node) {
	if tok := typ.IdentTok(); tok != nil {
		w.addSym(tok)
	}
}
