package syntax

import "bufio"

// ScanUses extracts the ordered list of unit names a source file depends on
// without running the full parser.  It reads tokens until it either finds a
// uses clause or hits a token proving that no uses clause can follow.  The
// scan allocates its own lexer and leaves no trace behind; lexer errors end
// it silently with whatever was collected so far.
func ScanUses(file *bufio.Reader) []string {
	l := NewLexer(file)

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil
		}

		switch tok.Kind {
		case TOK_USES:
			return scanUsesNames(l)
		case TOK_LABEL, TOK_CONST, TOK_TYPE, TOK_VAR, TOK_PROCEDURE,
			TOK_FUNCTION, TOK_IMPLEMENTATION, TOK_EOF:
			return nil
		}
	}
}

// scanUsesNames collects the names of a uses clause up to its terminating
// semicolon.  A slash qualified reference names a host file followed by the
// unit, so each identifier overwrites the last and only the trailing one
// survives to the name list.
func scanUsesNames(l *Lexer) []string {
	var names []string
	var last string

	for {
		tok, err := l.NextToken()
		if err != nil {
			break
		}

		switch tok.Kind {
		case TOK_IDENT:
			last = tok.Value
		case TOK_COMMA:
			if last != "" {
				names = append(names, last)
				last = ""
			}
		case TOK_SEMI, TOK_EOF:
			if last != "" {
				names = append(names, last)
			}

			return names
		}
	}

	if last != "" {
		names = append(names, last)
	}

	return names
}
