package syntax

import (
	"bufio"
	"fmt"

	"pasnav/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a Pascal source file.  It is a recursive descent
// parser: a state machine that moves over the file token by token and decides
// what to parse based on the token it is currently positioned on and its
// context (implicit from the callstack of parsing functions).  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of
// their production, leaving the parser on the next token.  Parsers are created
// once per file.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// root is the tree under construction.  Completed subtrees are attached
	// as they finish, so on a syntax error the root holds the parsed prefix.
	root *Node
}

// NewParser creates a new parser for the given file reader.
func NewParser(file *bufio.Reader) *Parser {
	return &Parser{lexer: NewLexer(file)}
}

// Parse parses the file and returns the resulting syntax tree.  On a syntax
// error the returned error is non-nil and the tree holds whatever prefix of
// the file parsed cleanly; the tree is nil only if the file's leading token
// already fails to identify a program or unit.
func (p *Parser) Parse() (root *Node, perr *report.LocalError) {
	defer func() {
		if x := recover(); x != nil {
			switch e := x.(type) {
			case *report.LocalError:
				root = p.root
				perr = e
			case error:
				root = p.root
				perr = &report.LocalError{Message: e.Error()}
			default:
				panic(x)
			}
		}
	}()

	p.next()

	switch p.tok.Kind {
	case TOK_PROGRAM:
		p.parseProgram()
	case TOK_UNIT:
		p.parseUnit()
	default:
		p.rejectWithMsg("expected `program` or `unit`")
	}

	return p.root, nil
}

// Includes returns the include directives surfaced while lexing.
func (p *Parser) Includes() []IncludeDirective {
	return p.lexer.Includes()
}

// Sloc returns the number of source lines that produced at least one token.
func (p *Parser) Sloc() int {
	return p.lexer.Sloc()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.tok = tok
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// assert checks that the parser is on a token of a given kind and rejects the
// token if not.
func (p *Parser) assert(kind int) {
	if !p.got(kind) {
		p.reject()
	}
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) {
	p.assert(kind)
	p.next()
}

// take asserts that the parser is on a token of the given kind, moves the
// parser forward, and returns the matched token.
func (p *Parser) take(kind int) *Token {
	p.assert(kind)
	tok := p.tok
	p.next()
	return tok
}

// leaf asserts that the parser is on a token of the given kind, moves the
// parser forward, and returns the matched token wrapped as a leaf node.
func (p *Parser) leaf(kind int) *Node {
	return newLeaf(p.take(kind))
}

// takeLeaf wraps the current token as a leaf node and moves forward.  The
// token kind is not checked.
func (p *Parser) takeLeaf() *Node {
	n := newLeaf(p.tok)
	p.next()
	return n
}

// -----------------------------------------------------------------------------

// reject reports an unexpected token error on the current token.
func (p *Parser) reject() {
	switch p.tok.Kind {
	case TOK_EOF:
		p.rejectWithMsg("unexpected end of file")
	default:
		p.rejectWithMsg(fmt.Sprintf("unexpected token: `%s`", p.tok.Value))
	}
}

// rejectWithMsg reports an error on the current token with a custom message.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) {
	panic(report.Raise(p.tok.Span, msg, args...))
}
