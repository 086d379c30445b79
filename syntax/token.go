package syntax

import "pasnav/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  Identifier and keyword values preserve
	// the source casing; string values have the surrounding quotes trimmed off
	// for convenience.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_AND = iota
	TOK_ARRAY
	TOK_BEGIN
	TOK_CASE
	TOK_CONST
	TOK_DIV
	TOK_DO
	TOK_DOWNTO
	TOK_ELSE
	TOK_END
	TOK_FILE
	TOK_FOR
	TOK_FUNCTION
	TOK_GOTO
	TOK_IF
	TOK_IMPLEMENTATION
	TOK_IN
	TOK_INTERFACE
	TOK_INTRINSIC
	TOK_LABEL
	TOK_MOD
	TOK_NIL
	TOK_NOT
	TOK_OF
	TOK_OR
	TOK_OTHERWISE
	TOK_PACKED
	TOK_PROCEDURE
	TOK_PROGRAM
	TOK_RECORD
	TOK_REPEAT
	TOK_SET
	TOK_SHARED
	TOK_STRING
	TOK_SUBCLASS
	TOK_THEN
	TOK_TO
	TOK_TYPE
	TOK_UNIT
	TOK_UNTIL
	TOK_USES
	TOK_VAR
	TOK_WHILE
	TOK_WITH

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_ASSIGN
	TOK_DOT
	TOK_DOTDOT
	TOK_COMMA
	TOK_SEMI
	TOK_COLON
	TOK_CARET
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET

	TOK_IDENT
	TOK_INTLIT
	TOK_REALLIT
	TOK_STRINGLIT

	TOK_EOF
)

// keywordPatterns maps lowercased keyword strings to their token kind.
// Pascal keywords are matched case-insensitively.
var keywordPatterns = map[string]int{
	"and":            TOK_AND,
	"array":          TOK_ARRAY,
	"begin":          TOK_BEGIN,
	"case":           TOK_CASE,
	"const":          TOK_CONST,
	"div":            TOK_DIV,
	"do":             TOK_DO,
	"downto":         TOK_DOWNTO,
	"else":           TOK_ELSE,
	"end":            TOK_END,
	"file":           TOK_FILE,
	"for":            TOK_FOR,
	"function":       TOK_FUNCTION,
	"goto":           TOK_GOTO,
	"if":             TOK_IF,
	"implementation": TOK_IMPLEMENTATION,
	"in":             TOK_IN,
	"interface":      TOK_INTERFACE,
	"intrinsic":      TOK_INTRINSIC,
	"label":          TOK_LABEL,
	"mod":            TOK_MOD,
	"nil":            TOK_NIL,
	"not":            TOK_NOT,
	"of":             TOK_OF,
	"or":             TOK_OR,
	"otherwise":      TOK_OTHERWISE,
	"packed":         TOK_PACKED,
	"procedure":      TOK_PROCEDURE,
	"program":        TOK_PROGRAM,
	"record":         TOK_RECORD,
	"repeat":         TOK_REPEAT,
	"set":            TOK_SET,
	"shared":         TOK_SHARED,
	"string":         TOK_STRING,
	"subclass":       TOK_SUBCLASS,
	"then":           TOK_THEN,
	"to":             TOK_TO,
	"type":           TOK_TYPE,
	"unit":           TOK_UNIT,
	"until":          TOK_UNTIL,
	"uses":           TOK_USES,
	"var":            TOK_VAR,
	"while":          TOK_WHILE,
	"with":           TOK_WITH,
}
