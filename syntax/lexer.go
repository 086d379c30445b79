package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"pasnav/report"
)

// IncludeDirective records a `{$I filename}` compiler directive encountered
// while lexing.  The directive is surfaced for navigation only: the target
// file is never spliced into the token stream.
type IncludeDirective struct {
	// The directive payload with surrounding whitespace trimmed.
	Target string

	// The span of the whole directive comment, braces included.
	Span *report.TextSpan
}

// Lexer is responsible for tokenizing a Pascal source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// The include directives encountered so far, in source order.
	includes []IncludeDirective

	// The number of lines that produced at least one token and the last line
	// counted, used to measure source lines of code.
	sloc     int
	slocLine int
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
		line:    1,
		col:     1,
	}
}

// NextToken retrieves the next token from the input file.  If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch {
		case c == '\n' || c == '\t' || c == ' ' || c == '\r' || c == '\v' || c == '\f':
			l.skip()
		case c == '{':
			if err := l.lexBraceComment(); err != nil {
				return nil, err
			}
		case c == '(':
			if tok, err := l.lexParenOrComment(); tok != nil || err != nil {
				return tok, err
			}
		case c == '\'':
			return l.lexStringLit()
		case c == '$':
			return l.lexHexLit()
		case isDecimalDigit(c):
			return l.lexNumericLit()
		case isFirstIdentChar(c):
			return l.lexIdentOrKeyword()
		default:
			return l.lexPunctOrOper()
		}
	}

	l.mark()
	return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
}

// Includes returns the include directives encountered so far in source order.
func (l *Lexer) Includes() []IncludeDirective {
	return l.includes
}

// Sloc returns the number of source lines that produced at least one token.
func (l *Lexer) Sloc() int {
	return l.sloc
}

// -----------------------------------------------------------------------------

// lexBraceComment consumes a `{ ... }` comment.  Comments beginning with `$`
// are compiler directives: include directives are recorded, all others are
// discarded along with ordinary comment text.
func (l *Lexer) lexBraceComment() error {
	l.mark()
	l.skip()

	directive := &strings.Builder{}
	for {
		c, err := l.skip()
		if err != nil {
			return err
		}

		switch c {
		case -1:
			return report.Raise(l.getSpan(), "unclosed comment")
		case '}':
			l.recordDirective(directive.String())
			return nil
		default:
			if directive.Len() < 512 {
				directive.WriteRune(c)
			}
		}
	}
}

// lexParenOrComment consumes a `(* ... *)` comment or produces a left
// parenthesis token.
func (l *Lexer) lexParenOrComment() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c != '*' {
		return l.makeToken(TOK_LPAREN), nil
	}

	l.tokBuff.Reset()
	l.skip()

	for {
		c, err = l.skip()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(l.getSpan(), "unclosed comment")
		case '*':
			c, err = l.peek()
			if err != nil {
				return nil, err
			}

			if c == ')' {
				l.skip()
				return nil, nil
			}
		}
	}
}

// recordDirective inspects the text of a `{ ... }` comment and records an
// include directive if the text is one.
func (l *Lexer) recordDirective(text string) {
	if !strings.HasPrefix(text, "$") {
		return
	}

	letters := 0
	for _, c := range text[1:] {
		if unicode.IsLetter(c) {
			letters++
		} else {
			break
		}
	}

	// Only a bare `I` directive is an include: `IFC` and friends are
	// conditional-compilation directives.
	if letters != 1 || !strings.EqualFold(text[1:2], "i") {
		return
	}

	// `$I+` and `$I-` toggle IO checking and name no file.
	target := strings.TrimSpace(text[2:])
	if target == "" || target == "+" || target == "-" {
		return
	}

	l.includes = append(l.includes, IncludeDirective{
		Target: target,
		Span:   l.getSpan(),
	})
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a quoted string literal.  A doubled quote inside the
// literal denotes a single quote character.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(l.getSpan(), "unclosed string literal")
		case '\n':
			return nil, report.Raise(l.getSpan(), "string literal cannot span lines")
		case '\'':
			l.skip()

			c, err = l.peek()
			if err != nil {
				return nil, err
			}

			if c != '\'' {
				return l.makeToken(TOK_STRINGLIT), nil
			}

			l.eat()
		default:
			l.eat()
		}
	}
}

// lexHexLit lexes a `$` prefixed hexadecimal integer literal.
func (l *Lexer) lexHexLit() (*Token, error) {
	l.mark()
	l.eat()

	digits := 0
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if !isHexDigit(c) {
			break
		}

		l.eat()
		digits++
	}

	if digits == 0 {
		return nil, report.Raise(l.getSpan(), "incomplete hexadecimal literal")
	}

	return l.makeToken(TOK_INTLIT), nil
}

// lexNumericLit lexes a decimal integer or real literal.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()

	isReal := false

	if err := l.eatDigits(); err != nil {
		return nil, err
	}

	// A `.` continues the literal only if followed by a digit: `1..2` is an
	// integer followed by a range operator.
	bs, _ := l.file.Peek(2)
	if len(bs) == 2 && bs[0] == '.' && isDecimalDigit(rune(bs[1])) {
		isReal = true
		l.eat()

		if err := l.eatDigits(); err != nil {
			return nil, err
		}
	}

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c == 'e' || c == 'E' {
		isReal = true
		l.eat()

		c, err = l.peek()
		if err != nil {
			return nil, err
		}

		if c == '+' || c == '-' {
			l.eat()
		}

		c, err = l.peek()
		if err != nil {
			return nil, err
		}

		if !isDecimalDigit(c) {
			return nil, report.Raise(l.getSpan(), "incomplete numeric literal")
		}

		if err := l.eatDigits(); err != nil {
			return nil, err
		}
	}

	if isReal {
		return l.makeToken(TOK_REALLIT), nil
	}

	return l.makeToken(TOK_INTLIT), nil
}

// eatDigits consumes a run of decimal digits.
func (l *Lexer) eatDigits() error {
	for {
		c, err := l.peek()
		if err != nil {
			return err
		}

		if !isDecimalDigit(c) {
			return nil
		}

		l.eat()
	}
}

// lexIdentOrKeyword lexes an identifier or a keyword.  Keywords are matched
// case-insensitively; the token value preserves the source casing.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if !isIdentChar(c) {
			break
		}

		l.eat()
	}

	tok := l.makeToken(TOK_IDENT)
	if kind, ok := keywordPatterns[strings.ToLower(tok.Value)]; ok {
		tok.Kind = kind
	}

	return tok, nil
}

// lexPunctOrOper lexes a punctuation or operator token.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()

	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	switch c {
	case '+':
		return l.makeToken(TOK_PLUS), nil
	case '-':
		return l.makeToken(TOK_MINUS), nil
	case '*':
		return l.makeToken(TOK_STAR), nil
	case '/':
		return l.makeToken(TOK_SLASH), nil
	case '=':
		return l.makeToken(TOK_EQ), nil
	case ',':
		return l.makeToken(TOK_COMMA), nil
	case ';':
		return l.makeToken(TOK_SEMI), nil
	case '^':
		return l.makeToken(TOK_CARET), nil
	case ')':
		return l.makeToken(TOK_RPAREN), nil
	case '[':
		return l.makeToken(TOK_LBRACKET), nil
	case ']':
		return l.makeToken(TOK_RBRACKET), nil
	case ':':
		if c, err = l.peek(); err != nil {
			return nil, err
		} else if c == '=' {
			l.eat()
			return l.makeToken(TOK_ASSIGN), nil
		}

		return l.makeToken(TOK_COLON), nil
	case '.':
		if c, err = l.peek(); err != nil {
			return nil, err
		} else if c == '.' {
			l.eat()
			return l.makeToken(TOK_DOTDOT), nil
		}

		return l.makeToken(TOK_DOT), nil
	case '<':
		if c, err = l.peek(); err != nil {
			return nil, err
		} else if c == '=' {
			l.eat()
			return l.makeToken(TOK_LTEQ), nil
		} else if c == '>' {
			l.eat()
			return l.makeToken(TOK_NEQ), nil
		}

		return l.makeToken(TOK_LT), nil
	case '>':
		if c, err = l.peek(); err != nil {
			return nil, err
		} else if c == '=' {
			l.eat()
			return l.makeToken(TOK_GTEQ), nil
		}

		return l.makeToken(TOK_GT), nil
	default:
		return nil, report.Raise(l.getSpan(), "unknown character: `%c`", c)
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	if l.startLine != l.slocLine {
		l.sloc++
		l.slocLine = l.startLine
	}

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// isIdentChar returns whether c could be a non-leading rune of an identifier.
func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c)
}
