package syntax

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll tokenizes a source string through the EOF token.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

// kindsOf projects the token kinds, dropping the trailing EOF.
func kindsOf(toks []*Token) []int {
	var kinds []int
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}

	return kinds
}

func TestLexer_KeywordsMatchCaseInsensitively(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "PROGRAM Begin eNd UNTIL otherwise")

	assert.Equal(t, []int{TOK_PROGRAM, TOK_BEGIN, TOK_END, TOK_UNTIL, TOK_OTHERWISE}, kindsOf(toks))
	assert.Equal(t, "eNd", toks[2].Value)
}

func TestLexer_IdentifiersKeepSourceCasing(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "QuickDraw myVar2 _tmp")

	assert.Equal(t, []int{TOK_IDENT, TOK_IDENT, TOK_IDENT}, kindsOf(toks))
	assert.Equal(t, "QuickDraw", toks[0].Value)
	assert.Equal(t, "myVar2", toks[1].Value)
	assert.Equal(t, "_tmp", toks[2].Value)
}

func TestLexer_StringLiteralUnquotesAndUnescapes(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "'hello' 'it''s'")

	require.Equal(t, []int{TOK_STRINGLIT, TOK_STRINGLIT}, kindsOf(toks))
	assert.Equal(t, "hello", toks[0].Value)
	assert.Equal(t, "it's", toks[1].Value)
}

func TestLexer_UnclosedStringFails(t *testing.T) {
	t.Parallel()
	l := NewLexer(bufio.NewReader(strings.NewReader("'oops")))

	_, err := l.NextToken()
	require.Error(t, err)
}

func TestLexer_NumericLiterals(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "42 3.14 1e5 2.5e-3 $FF")

	require.Equal(t, []int{TOK_INTLIT, TOK_REALLIT, TOK_REALLIT, TOK_REALLIT, TOK_INTLIT}, kindsOf(toks))
	assert.Equal(t, "42", toks[0].Value)
	assert.Equal(t, "3.14", toks[1].Value)
	assert.Equal(t, "$FF", toks[4].Value)
}

func TestLexer_RangeAfterIntIsNotReal(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "1..2")

	assert.Equal(t, []int{TOK_INTLIT, TOK_DOTDOT, TOK_INTLIT}, kindsOf(toks))
}

func TestLexer_CompoundOperators(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, ":= <> <= >= : < > .")

	assert.Equal(t, []int{TOK_ASSIGN, TOK_NEQ, TOK_LTEQ, TOK_GTEQ, TOK_COLON, TOK_LT, TOK_GT, TOK_DOT}, kindsOf(toks))
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "begin { brace comment } (* paren\ncomment *) end")

	assert.Equal(t, []int{TOK_BEGIN, TOK_END}, kindsOf(toks))
}

func TestLexer_UnclosedCommentFails(t *testing.T) {
	t.Parallel()
	l := NewLexer(bufio.NewReader(strings.NewReader("{ never ends")))

	_, err := l.NextToken()
	require.Error(t, err)
}

func TestLexer_SpansAreOneBased(t *testing.T) {
	t.Parallel()
	toks := lexAll(t, "unit U;\n  uses B;")

	require.GreaterOrEqual(t, len(toks), 5)
	assert.Equal(t, 1, toks[0].Span.StartLine)
	assert.Equal(t, 1, toks[0].Span.StartCol)

	// `U` follows `unit ` on line one.
	assert.Equal(t, 1, toks[1].Span.StartLine)
	assert.Equal(t, 6, toks[1].Span.StartCol)

	// `uses` is indented two columns on line two.
	assert.Equal(t, 2, toks[3].Span.StartLine)
	assert.Equal(t, 3, toks[3].Span.StartCol)
}

func TestLexer_IncludeDirectivesAreSurfaced(t *testing.T) {
	t.Parallel()
	l := NewLexer(bufio.NewReader(strings.NewReader(
		"{$I shared.inc}\n{$IFC debug}\n{$I+}\n{$i other.text}\n{ plain }")))

	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		if tok.Kind == TOK_EOF {
			break
		}
	}

	incs := l.Includes()
	require.Len(t, incs, 2)
	assert.Equal(t, "shared.inc", incs[0].Target)
	assert.Equal(t, 1, incs[0].Span.StartLine)
	assert.Equal(t, "other.text", incs[1].Target)
	assert.Equal(t, 4, incs[1].Span.StartLine)
}

func TestLexer_SlocCountsTokenBearingLines(t *testing.T) {
	t.Parallel()
	src := "program P;\n\n{ comment only }\nbegin\nend.\n"
	l := NewLexer(bufio.NewReader(strings.NewReader(src)))

	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		if tok.Kind == TOK_EOF {
			break
		}
	}

	// Lines 1, 4, and 5 carry tokens; the blank and comment-only lines do
	// not count.
	assert.Equal(t, 3, l.Sloc())
}
