package syntax

// parseProgram parses a program file into the parser's root.
//
// program = 'program' IDENT ['(' identifier_list ')'] ';' [uses_clause] block '.' .
//
// The program parameter list names external files, not declarations, and is
// consumed without being kept in the tree.
func (p *Parser) parseProgram() {
	p.root = newRuleNode(R_PROGRAM, p.tok)
	p.assertAndNext(TOK_PROGRAM)
	p.root.addChild(p.leaf(TOK_IDENT))

	if p.got(TOK_LPAREN) {
		p.next()
		p.assertAndNext(TOK_IDENT)
		for p.got(TOK_COMMA) {
			p.next()
			p.assertAndNext(TOK_IDENT)
		}
		p.assertAndNext(TOK_RPAREN)
	}

	p.assertAndNext(TOK_SEMI)

	if p.got(TOK_USES) {
		p.root.addChild(p.parseUsesClause())
	}

	p.root.addChild(p.parseBlock())
	p.assertAndNext(TOK_DOT)
}

// parseUnit parses a unit file into the parser's root.
//
// unit = 'unit' IDENT ';' [('intrinsic' | 'shared')+ ';'] interface_part
//        implementation_part '.' .
func (p *Parser) parseUnit() {
	p.root = newRuleNode(R_UNIT, p.tok)
	p.assertAndNext(TOK_UNIT)
	p.root.addChild(p.leaf(TOK_IDENT))
	p.assertAndNext(TOK_SEMI)

	if p.gotOneOf(TOK_INTRINSIC, TOK_SHARED) {
		for p.gotOneOf(TOK_INTRINSIC, TOK_SHARED) {
			p.next()
		}
		p.assertAndNext(TOK_SEMI)
	}

	p.root.addChild(p.parseInterfacePart())
	p.root.addChild(p.parseImplementationPart())
	p.assertAndNext(TOK_DOT)
}

// parseUsesClause parses a uses clause.
//
// uses_clause = 'uses' unit_ref {',' unit_ref} ';' .
func (p *Parser) parseUsesClause() *Node {
	clause := newRuleNode(R_USES_CLAUSE, p.tok)
	p.assertAndNext(TOK_USES)

	clause.addChild(p.parseUnitRef())
	for p.got(TOK_COMMA) {
		p.next()
		clause.addChild(p.parseUnitRef())
	}

	p.assertAndNext(TOK_SEMI)
	return clause
}

// parseUnitRef parses a single unit reference within a uses clause.  A
// reference may be qualified with the file that hosts the unit; only the
// trailing identifier names the unit itself.
//
// unit_ref = IDENT {'/' IDENT} .
func (p *Parser) parseUnitRef() *Node {
	ref := newRuleNode(R_UNIT_REF, p.tok)
	ref.addChild(p.leaf(TOK_IDENT))

	for p.got(TOK_SLASH) {
		p.next()
		ref.addChild(p.leaf(TOK_IDENT))
	}

	return ref
}

// parseInterfacePart parses a unit's interface part.  Procedure and function
// declarations in the interface are headings only.
//
// interface_part = 'interface' [uses_clause]
//                  {label_part | const_part | type_part | var_part
//                   | proc_decl | func_decl} .
func (p *Parser) parseInterfacePart() *Node {
	part := newRuleNode(R_INTERFACE_PART, p.tok)
	p.assertAndNext(TOK_INTERFACE)

	if p.got(TOK_USES) {
		part.addChild(p.parseUsesClause())
	}

	for !p.got(TOK_IMPLEMENTATION) {
		switch p.tok.Kind {
		case TOK_LABEL:
			part.addChild(p.parseLabelPart())
		case TOK_CONST:
			part.addChild(p.parseConstPart())
		case TOK_TYPE:
			part.addChild(p.parseTypePart())
		case TOK_VAR:
			part.addChild(p.parseVarPart())
		case TOK_PROCEDURE:
			part.addChild(p.parseProcDecl(false))
		case TOK_FUNCTION:
			part.addChild(p.parseFuncDecl(false))
		default:
			p.reject()
		}
	}

	return part
}

// parseImplementationPart parses a unit's implementation part.
//
// implementation_part = 'implementation'
//                       {label_part | const_part | type_part | var_part
//                        | proc_decl | func_decl} 'end' .
func (p *Parser) parseImplementationPart() *Node {
	part := newRuleNode(R_IMPLEMENTATION_PART, p.tok)
	p.assertAndNext(TOK_IMPLEMENTATION)

	for !p.got(TOK_END) {
		switch p.tok.Kind {
		case TOK_LABEL:
			part.addChild(p.parseLabelPart())
		case TOK_CONST:
			part.addChild(p.parseConstPart())
		case TOK_TYPE:
			part.addChild(p.parseTypePart())
		case TOK_VAR:
			part.addChild(p.parseVarPart())
		case TOK_PROCEDURE:
			part.addChild(p.parseProcDecl(true))
		case TOK_FUNCTION:
			part.addChild(p.parseFuncDecl(true))
		default:
			p.reject()
		}
	}

	p.next()
	return part
}

// parseBlock parses a block: the declaration sections and body of a program
// or subroutine.
//
// block = {label_part | const_part | type_part | var_part
//          | proc_decl | func_decl} compound .
func (p *Parser) parseBlock() *Node {
	block := newRuleNode(R_BLOCK, p.tok)

	for {
		switch p.tok.Kind {
		case TOK_LABEL:
			block.addChild(p.parseLabelPart())
		case TOK_CONST:
			block.addChild(p.parseConstPart())
		case TOK_TYPE:
			block.addChild(p.parseTypePart())
		case TOK_VAR:
			block.addChild(p.parseVarPart())
		case TOK_PROCEDURE:
			block.addChild(p.parseProcDecl(true))
		case TOK_FUNCTION:
			block.addChild(p.parseFuncDecl(true))
		case TOK_BEGIN:
			block.addChild(p.parseCompound())
			return block
		default:
			p.reject()
		}
	}
}
