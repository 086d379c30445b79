package syntax

// parseType parses a type.
//
// type = simple_type | enumerated_type | string_type | pointer_type
//      | ['packed'] structured_type | class_type .
func (p *Parser) parseType() *Node {
	switch p.tok.Kind {
	case TOK_LPAREN:
		return p.parseEnumType()
	case TOK_CARET:
		return p.parsePointerType()
	case TOK_STRING:
		return p.parseStringType()
	case TOK_PACKED:
		p.next()
		return p.parseStructuredType()
	case TOK_ARRAY, TOK_RECORD, TOK_SET, TOK_FILE:
		return p.parseStructuredType()
	case TOK_SUBCLASS:
		return p.parseClassType()
	default:
		return p.parseSimpleType()
	}
}

// parseSimpleType parses a type identifier or a subrange.  A leading
// constant can start with an identifier, so the decision between the two is
// deferred until `..` is or is not seen.
//
// simple_type = type_identifier | subrange_type .
// subrange_type = constant '..' constant .
func (p *Parser) parseSimpleType() *Node {
	startTok := p.tok
	first := p.parseSimpleExpr()

	if p.got(TOK_DOTDOT) {
		p.next()
		sub := newRuleNode(R_SUBRANGE_TYPE, startTok)
		sub.addChild(first)
		sub.addChild(p.parseSimpleExpr())
		return sub
	}

	if tok := bareIdentOf(first); tok != nil {
		ti := newRuleNode(R_TYPE_IDENT, tok)
		ti.addChild(newLeaf(tok))
		return ti
	}

	p.rejectWithMsg("expected type")
	return nil
}

// bareIdentOf unwraps an expression consisting of nothing but a single
// identifier and returns its token, or nil if the expression is anything
// more.
func bareIdentOf(expr *Node) *Token {
	n := expr
	for n.IsRule() {
		switch n.Kind {
		case R_SIMPLE_EXPR, R_TERM:
			if len(n.Children) != 1 {
				return nil
			}

			n = n.Children[0]
		case R_DESIGNATOR:
			if len(n.Children) == 1 && n.Children[0].Kind == TOK_IDENT {
				return n.Children[0].Tok
			}

			return nil
		default:
			return nil
		}
	}

	return nil
}

// parseTypeIdent parses a reference to a named type.  The `string` keyword
// is accepted here because Lisa Pascal treats it as a built in type name.
//
// type_identifier = IDENT | 'string' .
func (p *Parser) parseTypeIdent() *Node {
	ti := newRuleNode(R_TYPE_IDENT, p.tok)

	if p.got(TOK_STRING) {
		ti.addChild(p.takeLeaf())
	} else {
		ti.addChild(p.leaf(TOK_IDENT))
	}

	return ti
}

// parseEnumType parses an enumerated type.  Each identifier in the list
// later becomes a constant declaration in the enclosing scope.
//
// enumerated_type = '(' identifier_list ')' .
func (p *Parser) parseEnumType() *Node {
	enum := newRuleNode(R_ENUM_TYPE, p.tok)
	p.assertAndNext(TOK_LPAREN)
	enum.addChild(p.parseIdentList())
	p.assertAndNext(TOK_RPAREN)
	return enum
}

// parseStringType parses a string type with an optional size.
//
// string_type = 'string' ['[' expr ']'] .
func (p *Parser) parseStringType() *Node {
	st := newRuleNode(R_STRING_TYPE, p.tok)
	p.assertAndNext(TOK_STRING)

	if p.got(TOK_LBRACKET) {
		p.next()
		st.addChild(p.parseExpr())
		p.assertAndNext(TOK_RBRACKET)
	}

	return st
}

// parsePointerType parses a pointer type.
//
// pointer_type = '^' type_identifier .
func (p *Parser) parsePointerType() *Node {
	pt := newRuleNode(R_POINTER_TYPE, p.tok)
	p.assertAndNext(TOK_CARET)
	pt.addChild(p.parseTypeIdent())
	return pt
}

// structured_type = array_type | record_type | set_type | file_type .
func (p *Parser) parseStructuredType() *Node {
	switch p.tok.Kind {
	case TOK_ARRAY:
		return p.parseArrayType()
	case TOK_RECORD:
		return p.parseRecordType()
	case TOK_SET:
		return p.parseSetType()
	case TOK_FILE:
		return p.parseFileType()
	default:
		p.reject()
		return nil
	}
}

// parseArrayType parses an array type.  The element type is always the last
// child; everything before it is an index type.
//
// array_type = 'array' '[' type {',' type} ']' 'of' type .
func (p *Parser) parseArrayType() *Node {
	arr := newRuleNode(R_ARRAY_TYPE, p.tok)
	p.assertAndNext(TOK_ARRAY)
	p.assertAndNext(TOK_LBRACKET)

	arr.addChild(p.parseType())
	for p.got(TOK_COMMA) {
		p.next()
		arr.addChild(p.parseType())
	}

	p.assertAndNext(TOK_RBRACKET)
	p.assertAndNext(TOK_OF)
	arr.addChild(p.parseType())
	return arr
}

// parseRecordType parses a record type.
//
// record_type = 'record' [field_list] 'end' .
func (p *Parser) parseRecordType() *Node {
	rec := newRuleNode(R_RECORD_TYPE, p.tok)
	p.assertAndNext(TOK_RECORD)
	p.parseFieldList(rec)
	p.assertAndNext(TOK_END)
	return rec
}

// parseFieldList parses record field sections and an optional variant part.
// Field sections from all variants are attached to parent flat; nothing
// downstream distinguishes the variant structure.
//
// field_list = field_section {';' field_section} [variant_part] .
// field_section = identifier_list ':' type .
func (p *Parser) parseFieldList(parent *Node) {
	for {
		switch p.tok.Kind {
		case TOK_IDENT:
			sec := newRuleNode(R_VAR_DECL, p.tok)
			sec.addChild(p.parseIdentList())
			p.assertAndNext(TOK_COLON)
			sec.addChild(p.parseType())
			parent.addChild(sec)

			if !p.got(TOK_SEMI) {
				return
			}

			p.next()
		case TOK_CASE:
			p.parseVariantPart(parent)
			return
		default:
			return
		}
	}
}

// parseVariantPart parses the variant part of a record.  The tag and the
// selector constants are consumed without being kept.
//
// variant_part = 'case' [IDENT ':'] type_identifier 'of' variant {';' variant} .
// variant = constant {',' constant} ':' '(' [field_list] ')' .
func (p *Parser) parseVariantPart(parent *Node) {
	p.assertAndNext(TOK_CASE)

	p.assert(TOK_IDENT)
	p.next()
	if p.got(TOK_COLON) {
		p.next()
		p.parseTypeIdent()
	}

	p.assertAndNext(TOK_OF)

	for {
		p.parseSimpleExpr()
		for p.got(TOK_COMMA) {
			p.next()
			p.parseSimpleExpr()
		}

		p.assertAndNext(TOK_COLON)
		p.assertAndNext(TOK_LPAREN)
		if !p.got(TOK_RPAREN) {
			p.parseFieldList(parent)
		}
		p.assertAndNext(TOK_RPAREN)

		if !p.got(TOK_SEMI) {
			return
		}

		p.next()
		if p.gotOneOf(TOK_END, TOK_RPAREN) {
			return
		}
	}
}

// parseSetType parses a set type.
//
// set_type = 'set' 'of' type .
func (p *Parser) parseSetType() *Node {
	st := newRuleNode(R_SET_TYPE, p.tok)
	p.assertAndNext(TOK_SET)
	p.assertAndNext(TOK_OF)
	st.addChild(p.parseType())
	return st
}

// parseFileType parses a file type.
//
// file_type = 'file' ['of' type] .
func (p *Parser) parseFileType() *Node {
	ft := newRuleNode(R_FILE_TYPE, p.tok)
	p.assertAndNext(TOK_FILE)

	if p.got(TOK_OF) {
		p.next()
		ft.addChild(p.parseType())
	}

	return ft
}

// parseClassType parses a Clascal object type.  Member names live inside
// the class value and are not resolved as ordinary declarations.
//
// class_type = 'subclass' 'of' type_identifier
//              {field_section ';' | proc_heading ';' | func_heading ';'}
//              'end' .
func (p *Parser) parseClassType() *Node {
	cls := newRuleNode(R_CLASS_TYPE, p.tok)
	p.assertAndNext(TOK_SUBCLASS)
	p.assertAndNext(TOK_OF)
	cls.addChild(p.parseTypeIdent())

	for !p.got(TOK_END) {
		switch p.tok.Kind {
		case TOK_IDENT:
			sec := newRuleNode(R_VAR_DECL, p.tok)
			sec.addChild(p.parseIdentList())
			p.assertAndNext(TOK_COLON)
			sec.addChild(p.parseType())
			cls.addChild(sec)
		case TOK_PROCEDURE:
			cls.addChild(p.parseProcHeading())
		case TOK_FUNCTION:
			cls.addChild(p.parseFuncHeading())
		default:
			p.reject()
		}

		p.assertAndNext(TOK_SEMI)
	}

	p.next()
	return cls
}
