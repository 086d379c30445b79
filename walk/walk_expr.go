package walk

import (
	"pasnav/syntax"
)

// The expression walkers mirror the layered grammar nodes.  Operators and
// literals carry no names, so each layer just descends until it reaches
// the designators, where resolution happens.

// walkExpr walks an expression.
func (w *Walker) walkExpr(expr *syntax.Node) {
	for _, child := range expr.Children {
		if child.Kind == syntax.R_SIMPLE_EXPR {
			w.walkSimpleExpr(child)
		}
	}
}

// walkSimpleExpr walks a simple expression.
func (w *Walker) walkSimpleExpr(expr *syntax.Node) {
	for _, child := range expr.Children {
		if child.Kind == syntax.R_TERM {
			w.walkTerm(child)
		}
	}
}

// walkTerm walks a term.
func (w *Walker) walkTerm(term *syntax.Node) {
	for _, child := range term.Children {
		w.walkFactor(child)
	}
}

// walkFactor walks a single factor.  Parenthesized subexpressions appear
// directly as expression nodes.
func (w *Walker) walkFactor(factor *syntax.Node) {
	switch factor.Kind {
	case syntax.R_EXPR:
		w.walkExpr(factor)
	case syntax.R_NOT_FACTOR:
		for _, child := range factor.Children {
			w.walkFactor(child)
		}
	case syntax.R_SET_CONSTRUCTOR:
		w.walkSetConstructor(factor)
	case syntax.R_DESIGNATOR:
		w.walkDesignator(factor)
	}
}

// walkSetConstructor walks every member expression of a set literal.
// Range members contribute both of their bound expressions.
func (w *Walker) walkSetConstructor(set *syntax.Node) {
	for _, member := range set.Children {
		if member.Kind == syntax.R_EXPR {
			w.walkExpr(member)
		}
	}
}

// walkDesignator resolves the root identifier of a designator and walks
// its qualifiers.  Field names after a dot stay unresolved: they live in
// record or class member scopes the model does not build.  Index and
// actual argument expressions reference ordinary names and walk normally.
func (w *Walker) walkDesignator(des *syntax.Node) {
	for _, child := range des.Children {
		switch child.Kind {
		case syntax.TOK_IDENT:
			w.addSym(child.Tok)
		case syntax.R_INDEX:
			for _, expr := range child.Children {
				if expr.Kind == syntax.R_EXPR {
					w.walkExpr(expr)
				}
			}
		case syntax.R_ACTUALS:
			w.walkActuals(child)
		}
	}
}

// walkActuals walks every actual argument expression of a call.
func (w *Walker) walkActuals(actuals *syntax.Node) {
	for _, arg := range actuals.Children {
		if arg.Kind == syntax.R_EXPR {
			w.walkExpr(arg)
		}
	}
}
