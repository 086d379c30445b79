package syntax

// parseExpr parses a full expression.  Expressions keep the layered shape
// of the grammar so that every identifier inside them stays reachable for
// name resolution; no precedence restructuring is done.
//
// expr = simple_expr {relational_op simple_expr} .
// relational_op = '=' | '<>' | '<' | '<=' | '>' | '>=' | 'in' .
func (p *Parser) parseExpr() *Node {
	expr := newRuleNode(R_EXPR, p.tok)
	expr.addChild(p.parseSimpleExpr())

	for p.gotOneOf(TOK_EQ, TOK_NEQ, TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ, TOK_IN) {
		expr.addChild(p.takeLeaf())
		expr.addChild(p.parseSimpleExpr())
	}

	return expr
}

// simple_expr = ['+' | '-'] term {('+' | '-' | 'or') term} .
func (p *Parser) parseSimpleExpr() *Node {
	expr := newRuleNode(R_SIMPLE_EXPR, p.tok)

	if p.gotOneOf(TOK_PLUS, TOK_MINUS) {
		expr.addChild(p.takeLeaf())
	}

	expr.addChild(p.parseTerm())
	for p.gotOneOf(TOK_PLUS, TOK_MINUS, TOK_OR) {
		expr.addChild(p.takeLeaf())
		expr.addChild(p.parseTerm())
	}

	return expr
}

// term = factor {('*' | '/' | 'div' | 'mod' | 'and') factor} .
func (p *Parser) parseTerm() *Node {
	term := newRuleNode(R_TERM, p.tok)

	term.addChild(p.parseFactor())
	for p.gotOneOf(TOK_STAR, TOK_SLASH, TOK_DIV, TOK_MOD, TOK_AND) {
		term.addChild(p.takeLeaf())
		term.addChild(p.parseFactor())
	}

	return term
}

// factor = INTLIT | REALLIT | STRINGLIT | 'nil' | '(' expr ')'
//        | 'not' factor | set_constructor | designator .
func (p *Parser) parseFactor() *Node {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_REALLIT, TOK_STRINGLIT, TOK_NIL:
		return p.takeLeaf()
	case TOK_LPAREN:
		p.next()
		inner := p.parseExpr()
		p.assertAndNext(TOK_RPAREN)
		return inner
	case TOK_NOT:
		factor := newRuleNode(R_NOT_FACTOR, p.tok)
		p.next()
		factor.addChild(p.parseFactor())
		return factor
	case TOK_LBRACKET:
		return p.parseSetConstructor()
	case TOK_IDENT:
		return p.parseDesignator()
	default:
		p.reject()
		return nil
	}
}

// parseSetConstructor parses a set constructor.  Range members contribute
// both bound expressions as children.
//
// set_constructor = '[' [member {',' member}] ']' .
// member = expr ['..' expr] .
func (p *Parser) parseSetConstructor() *Node {
	set := newRuleNode(R_SET_CONSTRUCTOR, p.tok)
	p.assertAndNext(TOK_LBRACKET)

	if !p.got(TOK_RBRACKET) {
		p.parseSetMember(set)
		for p.got(TOK_COMMA) {
			p.next()
			p.parseSetMember(set)
		}
	}

	p.assertAndNext(TOK_RBRACKET)
	return set
}

func (p *Parser) parseSetMember(set *Node) {
	set.addChild(p.parseExpr())

	if p.got(TOK_DOTDOT) {
		p.next()
		set.addChild(p.parseExpr())
	}
}

// parseDesignator parses an identifier with its qualifier chain: field
// selections, index expressions, pointer dereferences, and call actuals.
// The root identifier is always the first child.
//
// designator = IDENT {('.' IDENT) | ('[' expr {',' expr} ']') | '^' | actuals} .
func (p *Parser) parseDesignator() *Node {
	des := newRuleNode(R_DESIGNATOR, p.tok)
	des.addChild(p.leaf(TOK_IDENT))

loop:
	for {
		switch p.tok.Kind {
		case TOK_DOT:
			field := newRuleNode(R_FIELD, p.tok)
			p.next()
			field.addChild(p.leaf(TOK_IDENT))
			des.addChild(field)
		case TOK_LBRACKET:
			index := newRuleNode(R_INDEX, p.tok)
			p.next()

			index.addChild(p.parseExpr())
			for p.got(TOK_COMMA) {
				p.next()
				index.addChild(p.parseExpr())
			}

			p.assertAndNext(TOK_RBRACKET)
			des.addChild(index)
		case TOK_CARET:
			des.addChild(p.takeLeaf())
		case TOK_LPAREN:
			des.addChild(p.parseActuals())
		default:
			break loop
		}
	}

	return des
}

// parseActuals parses the actual parameters of a call.  Write style width
// and precision qualifiers contribute their expressions as ordinary
// children.
//
// actuals = '(' [actual {',' actual}] ')' .
// actual = expr [':' expr [':' expr]] .
func (p *Parser) parseActuals() *Node {
	actuals := newRuleNode(R_ACTUALS, p.tok)
	p.assertAndNext(TOK_LPAREN)

	if !p.got(TOK_RPAREN) {
		p.parseActual(actuals)
		for p.got(TOK_COMMA) {
			p.next()
			p.parseActual(actuals)
		}
	}

	p.assertAndNext(TOK_RPAREN)
	return actuals
}

func (p *Parser) parseActual(actuals *Node) {
	actuals.addChild(p.parseExpr())

	for p.got(TOK_COLON) {
		p.next()
		actuals.addChild(p.parseExpr())
	}
}
