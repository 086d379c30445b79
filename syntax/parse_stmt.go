package syntax

// parseCompound parses a compound statement.
//
// compound = 'begin' statement_seq 'end' .
func (p *Parser) parseCompound() *Node {
	compound := newRuleNode(R_COMPOUND, p.tok)
	p.assertAndNext(TOK_BEGIN)
	p.parseStatementSeq(compound)
	p.assertAndNext(TOK_END)
	return compound
}

// parseStatementSeq parses semicolon separated statements onto parent.
// Empty statements produce no node.
//
// statement_seq = statement {';' statement} .
func (p *Parser) parseStatementSeq(parent *Node) {
	for {
		if stmt := p.parseStatement(); stmt != nil {
			parent.addChild(stmt)
		}

		if !p.got(TOK_SEMI) {
			return
		}

		p.next()
	}
}

// parseStatement parses a single statement, or returns nil for an empty
// one.  A leading numeric label is consumed without being kept; labels are
// only ever targets of goto and never resolve to declarations.
//
// statement = [INTLIT ':'] (compound | if | while | repeat | for | case
//             | with | goto | assign_or_call | empty) .
func (p *Parser) parseStatement() *Node {
	if p.got(TOK_INTLIT) {
		p.next()
		p.assertAndNext(TOK_COLON)
	}

	switch p.tok.Kind {
	case TOK_BEGIN:
		return p.parseCompound()
	case TOK_IF:
		return p.parseIf()
	case TOK_WHILE:
		return p.parseWhile()
	case TOK_REPEAT:
		return p.parseRepeat()
	case TOK_FOR:
		return p.parseFor()
	case TOK_CASE:
		return p.parseCase()
	case TOK_WITH:
		return p.parseWith()
	case TOK_GOTO:
		return p.parseGoto()
	case TOK_IDENT:
		return p.parseAssignOrCall()
	default:
		return nil
	}
}

// parseAssignOrCall parses a statement starting with a designator: either
// an assignment to it or a procedure call.
//
// assign_or_call = designator [':=' expr] .
func (p *Parser) parseAssignOrCall() *Node {
	stmt := newRuleNode(R_ASSIGN_OR_CALL, p.tok)
	stmt.addChild(p.parseDesignator())

	if p.got(TOK_ASSIGN) {
		p.next()
		stmt.addChild(p.parseExpr())
	}

	return stmt
}

// if_statement = 'if' expr 'then' statement ['else' statement] .
func (p *Parser) parseIf() *Node {
	stmt := newRuleNode(R_IF, p.tok)
	p.assertAndNext(TOK_IF)
	stmt.addChild(p.parseExpr())
	p.assertAndNext(TOK_THEN)

	if body := p.parseStatement(); body != nil {
		stmt.addChild(body)
	}

	if p.got(TOK_ELSE) {
		p.next()
		if body := p.parseStatement(); body != nil {
			stmt.addChild(body)
		}
	}

	return stmt
}

// while_statement = 'while' expr 'do' statement .
func (p *Parser) parseWhile() *Node {
	stmt := newRuleNode(R_WHILE, p.tok)
	p.assertAndNext(TOK_WHILE)
	stmt.addChild(p.parseExpr())
	p.assertAndNext(TOK_DO)

	if body := p.parseStatement(); body != nil {
		stmt.addChild(body)
	}

	return stmt
}

// parseRepeat parses a repeat statement.  The condition is always the last
// child, after the body statements.
//
// repeat_statement = 'repeat' statement_seq 'until' expr .
func (p *Parser) parseRepeat() *Node {
	stmt := newRuleNode(R_REPEAT, p.tok)
	p.assertAndNext(TOK_REPEAT)
	p.parseStatementSeq(stmt)
	p.assertAndNext(TOK_UNTIL)
	stmt.addChild(p.parseExpr())
	return stmt
}

// parseFor parses a for statement.  The control variable identifier is the
// first child, followed by the two bound expressions with the direction
// keyword between them, then the body.
//
// for_statement = 'for' IDENT ':=' expr ('to' | 'downto') expr 'do' statement .
func (p *Parser) parseFor() *Node {
	stmt := newRuleNode(R_FOR, p.tok)
	p.assertAndNext(TOK_FOR)
	stmt.addChild(p.leaf(TOK_IDENT))
	p.assertAndNext(TOK_ASSIGN)
	stmt.addChild(p.parseExpr())

	if !p.gotOneOf(TOK_TO, TOK_DOWNTO) {
		p.reject()
	}
	stmt.addChild(p.takeLeaf())

	stmt.addChild(p.parseExpr())
	p.assertAndNext(TOK_DO)

	if body := p.parseStatement(); body != nil {
		stmt.addChild(body)
	}

	return stmt
}

// parseCase parses a case statement.  Limb nodes come first; statements of
// an otherwise clause are attached directly after them.
//
// case_statement = 'case' expr 'of' case_limb {';' case_limb}
//                  ['otherwise' statement_seq] 'end' .
func (p *Parser) parseCase() *Node {
	stmt := newRuleNode(R_CASE, p.tok)
	p.assertAndNext(TOK_CASE)
	stmt.addChild(p.parseExpr())
	p.assertAndNext(TOK_OF)

	for !p.gotOneOf(TOK_END, TOK_OTHERWISE) {
		stmt.addChild(p.parseCaseLimb())

		if !p.got(TOK_SEMI) {
			break
		}

		p.next()
	}

	if p.got(TOK_OTHERWISE) {
		p.next()
		p.parseStatementSeq(stmt)
	}

	p.assertAndNext(TOK_END)
	return stmt
}

// parseCaseLimb parses one limb of a case statement: its selector
// constants followed by the limb statement.
//
// case_limb = constant ['..' constant] {',' constant ['..' constant]}
//             ':' statement .
func (p *Parser) parseCaseLimb() *Node {
	limb := newRuleNode(R_CASE_LIMB, p.tok)

	p.parseCaseSelector(limb)
	for p.got(TOK_COMMA) {
		p.next()
		p.parseCaseSelector(limb)
	}

	p.assertAndNext(TOK_COLON)

	if stmt := p.parseStatement(); stmt != nil {
		limb.addChild(stmt)
	}

	return limb
}

func (p *Parser) parseCaseSelector(limb *Node) {
	limb.addChild(p.parseSimpleExpr())

	if p.got(TOK_DOTDOT) {
		p.next()
		limb.addChild(p.parseSimpleExpr())
	}
}

// parseWith parses a with statement.  The record designators come first,
// then the body statement.
//
// with_statement = 'with' designator {',' designator} 'do' statement .
func (p *Parser) parseWith() *Node {
	stmt := newRuleNode(R_WITH, p.tok)
	p.assertAndNext(TOK_WITH)

	stmt.addChild(p.parseDesignator())
	for p.got(TOK_COMMA) {
		p.next()
		stmt.addChild(p.parseDesignator())
	}

	p.assertAndNext(TOK_DO)

	if body := p.parseStatement(); body != nil {
		stmt.addChild(body)
	}

	return stmt
}

// goto_statement = 'goto' INTLIT .
func (p *Parser) parseGoto() *Node {
	stmt := newRuleNode(R_GOTO, p.tok)
	p.assertAndNext(TOK_GOTO)
	stmt.addChild(p.leaf(TOK_INTLIT))
	return stmt
}
