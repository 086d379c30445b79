package walk

import (
	"pasnav/syntax"
)

// walkStatement dispatches one statement node.  Goto statements fall
// through: label references never resolve to anything.
func (w *Walker) walkStatement(stmt *syntax.Node) {
	switch stmt.Kind {
	case syntax.R_COMPOUND:
		w.walkCompound(stmt)
	case syntax.R_ASSIGN_OR_CALL:
		w.walkAssignOrCall(stmt)
	case syntax.R_IF:
		w.walkIf(stmt)
	case syntax.R_WHILE:
		w.walkWhile(stmt)
	case syntax.R_REPEAT:
		w.walkRepeat(stmt)
	case syntax.R_FOR:
		w.walkFor(stmt)
	case syntax.R_CASE:
		w.walkCase(stmt)
	case syntax.R_WITH:
		w.walkWith(stmt)
	}
}

// walkCompound walks every statement of a compound in order.
func (w *Walker) walkCompound(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		w.walkStatement(child)
	}
}

// walkAssignOrCall walks the target designator and, for an assignment,
// the assigned expression.
func (w *Walker) walkAssignOrCall(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		switch child.Kind {
		case syntax.R_DESIGNATOR:
			w.walkDesignator(child)
		case syntax.R_EXPR:
			w.walkExpr(child)
		}
	}
}

// walkIf walks the condition and both branches.
func (w *Walker) walkIf(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		if child.Kind == syntax.R_EXPR {
			w.walkExpr(child)
		} else {
			w.walkStatement(child)
		}
	}
}

// walkWhile walks the condition and the body.
func (w *Walker) walkWhile(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		if child.Kind == syntax.R_EXPR {
			w.walkExpr(child)
		} else {
			w.walkStatement(child)
		}
	}
}

// walkRepeat walks the body statements and the trailing condition.
func (w *Walker) walkRepeat(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		if child.Kind == syntax.R_EXPR {
			w.walkExpr(child)
		} else {
			w.walkStatement(child)
		}
	}
}

// walkFor resolves the control variable, walks both bound expressions,
// and walks the body.  The control variable is a reference, not a new
// declaration: it must already be declared in a visible scope.
func (w *Walker) walkFor(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		switch child.Kind {
		case syntax.TOK_IDENT:
			w.addSym(child.Tok)
		case syntax.R_EXPR:
			w.walkExpr(child)
		default:
			w.walkStatement(child)
		}
	}
}

// walkCase walks the selector expression, every limb, and the otherwise
// statements.
func (w *Walker) walkCase(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		switch child.Kind {
		case syntax.R_EXPR:
			w.walkExpr(child)
		case syntax.R_CASE_LIMB:
			w.walkCaseLimb(child)
		default:
			w.walkStatement(child)
		}
	}
}

// walkCaseLimb walks the selector constants and the limb statement.
func (w *Walker) walkCaseLimb(limb *syntax.Node) {
	for _, child := range limb.Children {
		if child.Kind == syntax.R_SIMPLE_EXPR {
			w.walkSimpleExpr(child)
		} else {
			w.walkStatement(child)
		}
	}
}

// walkWith resolves the opened record designators and walks the body.
// Names the body draws from the opened records still miss: fields are
// not modeled, so only ordinary scope resolution applies inside.
func (w *Walker) walkWith(stmt *syntax.Node) {
	for _, child := range stmt.Children {
		if child.Kind == syntax.R_DESIGNATOR {
			w.walkDesignator(child)
		} else {
			w.walkStatement(child)
		}
	}
}
