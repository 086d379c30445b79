package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_FindIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	s := &Scope{Kind: KindInterface}
	d := s.AddDecl(&Declaration{Kind: KindConst, Name: "MaxSize"})

	assert.Same(t, d, s.Find("maxsize"))
	assert.Same(t, d, s.Find("MAXSIZE"))
	assert.Nil(t, s.Find("maxsizes"))
}

func TestScope_DuplicatesAppendAndEarliestWins(t *testing.T) {
	t.Parallel()
	s := &Scope{Kind: KindImplementation}
	first := s.AddDecl(&Declaration{Kind: KindConst, Name: "Max"})
	s.AddDecl(&Declaration{Kind: KindVar, Name: "MAX"})

	assert.Len(t, s.Decls, 2)
	assert.Same(t, first, s.Find("max"))
}

func TestScope_FindSeesLaterAppends(t *testing.T) {
	t.Parallel()
	s := &Scope{Kind: KindBody}
	require.Nil(t, s.Find("x"))

	d := s.AddDecl(&Declaration{Kind: KindVar, Name: "X"})
	assert.Same(t, d, s.Find("x"))
}

func TestScope_LookupWalksChainInnermostFirst(t *testing.T) {
	t.Parallel()
	outer := &Scope{Kind: KindInterface}
	inner := &Scope{Kind: KindBody, Outer: outer}

	outerDecl := outer.AddDecl(&Declaration{Kind: KindVar, Name: "Size"})
	shadow := inner.AddDecl(&Declaration{Kind: KindParam, Name: "size"})

	assert.Same(t, shadow, inner.Lookup("SIZE", false))
	assert.Same(t, outerDecl, outer.Lookup("size", false))
	assert.Nil(t, inner.Lookup("missing", false))
}

func TestScope_LookupThroughImports(t *testing.T) {
	t.Parallel()
	lib := &CodeFile{Path: "/proj/lib.text", Kind: FileUnit}
	lib.Intf = &Scope{Kind: KindInterface, Owner: lib}
	exported := lib.Intf.AddDecl(&Declaration{Kind: KindProc, Name: "Render"})

	user := &CodeFile{Path: "/proj/main.text"}
	user.Impl = &Scope{Kind: KindBody, Owner: user}
	user.Imports = append(user.Imports,
		&Import{Name: "Ghost"},
		&Import{Name: "Lib", Resolved: lib})

	assert.Nil(t, user.Impl.Lookup("Render", false))
	assert.Same(t, exported, user.Impl.Lookup("render", true))
}

func TestScope_LookupImportsInOrder(t *testing.T) {
	t.Parallel()
	mkUnit := func(path string) (*CodeFile, *Declaration) {
		f := &CodeFile{Path: path, Kind: FileUnit}
		f.Intf = &Scope{Kind: KindInterface, Owner: f}
		return f, f.Intf.AddDecl(&Declaration{Kind: KindConst, Name: "Shared"})
	}

	a, aDecl := mkUnit("/proj/a.text")
	b, _ := mkUnit("/proj/b.text")

	user := &CodeFile{Path: "/proj/main.text"}
	user.Impl = &Scope{Kind: KindBody, Owner: user}
	user.Imports = append(user.Imports,
		&Import{Name: "A", Resolved: a},
		&Import{Name: "B", Resolved: b})

	assert.Same(t, aDecl, user.Impl.Lookup("shared", true))
}

func TestScope_FileFollowsOwnerChain(t *testing.T) {
	t.Parallel()
	file := &CodeFile{Path: "/proj/u.text", Kind: FileUnit}
	file.Impl = &Scope{Kind: KindImplementation, Owner: file}

	proc := file.Impl.AddDecl(&Declaration{Kind: KindProc, Name: "P"})
	proc.Body = &Scope{Kind: KindBody, Owner: proc, Outer: file.Impl}

	assert.Same(t, file, proc.Body.File())
	assert.Same(t, file, proc.File())
}

func TestDeclaration_RefBookkeeping(t *testing.T) {
	t.Parallel()
	d := &Declaration{Kind: KindVar, Name: "Count"}

	s1 := &Symbol{Decl: d, Loc: Loc{Path: "/proj/b.text", Row: 3, Col: 1}}
	s2 := &Symbol{Decl: d, Loc: Loc{Path: "/proj/a.text", Row: 1, Col: 5}}
	s3 := &Symbol{Decl: d, Loc: Loc{Path: "/proj/b.text", Row: 9, Col: 2}}

	d.AddRef(s1)
	d.AddRef(s2)
	d.AddRef(s3)

	assert.Equal(t, 3, d.RefCount())
	assert.Equal(t, []string{"/proj/a.text", "/proj/b.text"}, d.RefFiles())

	inB := d.RefsIn("/proj/b.text")
	require.Len(t, inB, 2)
	assert.Same(t, s1, inB[0])
	assert.Same(t, s3, inB[1])

	assert.Equal(t, len("Count"), d.Len())
	assert.Equal(t, d.Len(), s1.Len())
}
