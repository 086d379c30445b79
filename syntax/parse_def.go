package syntax

// parseLabelPart parses a label declaration section.  Labels are kept as
// numeric leaves; they never become named declarations.
//
// label_part = 'label' INTLIT {',' INTLIT} ';' .
func (p *Parser) parseLabelPart() *Node {
	part := newRuleNode(R_LABEL_PART, p.tok)
	p.assertAndNext(TOK_LABEL)

	part.addChild(p.leaf(TOK_INTLIT))
	for p.got(TOK_COMMA) {
		p.next()
		part.addChild(p.leaf(TOK_INTLIT))
	}

	p.assertAndNext(TOK_SEMI)
	return part
}

// parseConstPart parses a constant declaration section.
//
// const_part = 'const' const_decl {const_decl} .
// const_decl = IDENT '=' constant ';' .
func (p *Parser) parseConstPart() *Node {
	part := newRuleNode(R_CONST_PART, p.tok)
	p.assertAndNext(TOK_CONST)

	p.assert(TOK_IDENT)
	for p.got(TOK_IDENT) {
		decl := newRuleNode(R_CONST_DECL, p.tok)
		decl.addChild(p.takeLeaf())
		p.assertAndNext(TOK_EQ)
		decl.addChild(p.parseExpr())
		p.assertAndNext(TOK_SEMI)
		part.addChild(decl)
	}

	return part
}

// parseTypePart parses a type declaration section.
//
// type_part = 'type' type_decl {type_decl} .
// type_decl = IDENT '=' type ';' .
func (p *Parser) parseTypePart() *Node {
	part := newRuleNode(R_TYPE_PART, p.tok)
	p.assertAndNext(TOK_TYPE)

	p.assert(TOK_IDENT)
	for p.got(TOK_IDENT) {
		decl := newRuleNode(R_TYPE_DECL, p.tok)
		decl.addChild(p.takeLeaf())
		p.assertAndNext(TOK_EQ)
		decl.addChild(p.parseType())
		p.assertAndNext(TOK_SEMI)
		part.addChild(decl)
	}

	return part
}

// parseVarPart parses a variable declaration section.
//
// var_part = 'var' var_decl {var_decl} .
// var_decl = identifier_list ':' type ';' .
func (p *Parser) parseVarPart() *Node {
	part := newRuleNode(R_VAR_PART, p.tok)
	p.assertAndNext(TOK_VAR)

	p.assert(TOK_IDENT)
	for p.got(TOK_IDENT) {
		decl := newRuleNode(R_VAR_DECL, p.tok)
		decl.addChild(p.parseIdentList())
		p.assertAndNext(TOK_COLON)
		decl.addChild(p.parseType())
		p.assertAndNext(TOK_SEMI)
		part.addChild(decl)
	}

	return part
}

// parseIdentList parses a comma separated list of identifiers.
//
// identifier_list = IDENT {',' IDENT} .
func (p *Parser) parseIdentList() *Node {
	list := newRuleNode(R_IDENT_LIST, p.tok)

	list.addChild(p.leaf(TOK_IDENT))
	for p.got(TOK_COMMA) {
		p.next()
		list.addChild(p.leaf(TOK_IDENT))
	}

	return list
}

// parseProcDecl parses a procedure declaration.  In an interface part the
// declaration is a bare heading; elsewhere it carries either a block or a
// directive identifier such as `forward` or `external` standing in for one.
//
// proc_decl = proc_heading ';' [(block | IDENT) ';'] .
func (p *Parser) parseProcDecl(withBody bool) *Node {
	decl := newRuleNode(R_PROC_DECL, p.tok)
	decl.addChild(p.parseProcHeading())
	p.assertAndNext(TOK_SEMI)

	if withBody {
		if p.got(TOK_IDENT) {
			decl.addChild(p.takeLeaf())
		} else {
			decl.addChild(p.parseBlock())
		}

		p.assertAndNext(TOK_SEMI)
	}

	return decl
}

// parseFuncDecl parses a function declaration.
//
// func_decl = func_heading ';' [(block | IDENT) ';'] .
func (p *Parser) parseFuncDecl(withBody bool) *Node {
	decl := newRuleNode(R_FUNC_DECL, p.tok)
	decl.addChild(p.parseFuncHeading())
	p.assertAndNext(TOK_SEMI)

	if withBody {
		if p.got(TOK_IDENT) {
			decl.addChild(p.takeLeaf())
		} else {
			decl.addChild(p.parseBlock())
		}

		p.assertAndNext(TOK_SEMI)
	}

	return decl
}

// parseProcHeading parses a procedure heading.
//
// proc_heading = 'procedure' IDENT [formal_params] .
func (p *Parser) parseProcHeading() *Node {
	heading := newRuleNode(R_PROC_HEADING, p.tok)
	p.assertAndNext(TOK_PROCEDURE)
	heading.addChild(p.leaf(TOK_IDENT))

	if p.got(TOK_LPAREN) {
		heading.addChild(p.parseFormalParams())
	}

	return heading
}

// parseFuncHeading parses a function heading.  The result type is optional
// so that an implementation matching a forward or interface heading can
// repeat the name alone.
//
// func_heading = 'function' IDENT [formal_params] [':' type_identifier] .
func (p *Parser) parseFuncHeading() *Node {
	heading := newRuleNode(R_FUNC_HEADING, p.tok)
	p.assertAndNext(TOK_FUNCTION)
	heading.addChild(p.leaf(TOK_IDENT))

	if p.got(TOK_LPAREN) {
		heading.addChild(p.parseFormalParams())
	}

	if p.got(TOK_COLON) {
		p.next()
		heading.addChild(p.parseTypeIdent())
	}

	return heading
}

// parseFormalParams parses a formal parameter list.
//
// formal_params = '(' param_section {';' param_section} ')' .
func (p *Parser) parseFormalParams() *Node {
	params := newRuleNode(R_FORMAL_PARAMS, p.tok)
	p.assertAndNext(TOK_LPAREN)

	params.addChild(p.parseParamSection())
	for p.got(TOK_SEMI) {
		p.next()
		params.addChild(p.parseParamSection())
	}

	p.assertAndNext(TOK_RPAREN)
	return params
}

// parseParamSection parses one formal parameter section.  A section is
// either a group of value or var parameters, whose types must be type
// identifiers, or a procedural parameter given as a bare heading.  The
// `var` marker only affects calling semantics and is not kept in the tree.
//
// param_section = ['var'] identifier_list ':' type_identifier
//               | proc_heading | func_heading .
func (p *Parser) parseParamSection() *Node {
	switch p.tok.Kind {
	case TOK_PROCEDURE:
		return p.parseProcHeading()
	case TOK_FUNCTION:
		return p.parseFuncHeading()
	}

	sec := newRuleNode(R_PARAM_SECTION, p.tok)

	if p.got(TOK_VAR) {
		p.next()
	}

	sec.addChild(p.parseIdentList())
	p.assertAndNext(TOK_COLON)
	sec.addChild(p.parseTypeIdent())
	return sec
}
