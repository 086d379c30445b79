package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_FindSymbolAtCoversNameWidth(t *testing.T) {
	t.Parallel()
	proj := NewProject()
	file := &CodeFile{Path: "/proj/p.text"}
	proj.AddFile(file)

	d := &Declaration{Kind: KindVar, Name: "Total"}
	sym := &Symbol{Decl: d, Loc: Loc{Path: "/proj/p.text", Row: 4, Col: 10}}
	file.Syms = append(file.Syms, sym)

	assert.Nil(t, proj.FindSymbolAt("/proj/p.text", 4, 9))
	assert.Same(t, sym, proj.FindSymbolAt("/proj/p.text", 4, 10))
	assert.Same(t, sym, proj.FindSymbolAt("/proj/p.text", 4, 14))
	assert.Nil(t, proj.FindSymbolAt("/proj/p.text", 4, 15))
	assert.Nil(t, proj.FindSymbolAt("/proj/p.text", 5, 10))
	assert.Nil(t, proj.FindSymbolAt("/proj/other.text", 4, 10))

	assert.Same(t, d, proj.FindDeclAt("/proj/p.text", 4, 12))
	assert.Nil(t, proj.FindDeclAt("/proj/p.text", 1, 1))
}

func TestProject_Counts(t *testing.T) {
	t.Parallel()
	proj := NewProject()

	a := &CodeFile{Path: "/proj/a.text"}
	a.Syms = append(a.Syms, &Symbol{}, &Symbol{})
	b := &CodeFile{Path: "/proj/b.text"}
	b.Syms = append(b.Syms, &Symbol{})

	proj.AddFile(a)
	proj.AddFile(b)

	assert.Equal(t, 2, proj.FileCount())
	assert.Equal(t, 3, proj.SymCount())
	assert.Same(t, a, proj.FileAt("/proj/a.text"))
	assert.Nil(t, proj.FileAt("/proj/c.text"))
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	withPos := Diagnostic{Path: "/proj/a.text", Row: 3, Col: 7, Msg: "unexpected token: `;`"}
	assert.Equal(t, "/proj/a.text:3:7: unexpected token: `;`", withPos.String())

	noPos := Diagnostic{Path: "/proj/a.text", Msg: "cannot resolve referenced unit 'B'"}
	assert.Equal(t, "/proj/a.text: cannot resolve referenced unit 'B'", noPos.String())
}

func TestCodeFile_AnalysisLifecycle(t *testing.T) {
	t.Parallel()
	f := &CodeFile{Path: "/proj/u.text"}

	assert.False(t, f.Analyzed())
	require.True(t, f.StartAnalysis())

	// A file revisited while on the analysis stack must not start again.
	assert.False(t, f.StartAnalysis())
	assert.False(t, f.Analyzed())

	f.FinishAnalysis()
	assert.True(t, f.Analyzed())
	assert.False(t, f.StartAnalysis())
}

func TestCodeFile_FindImport(t *testing.T) {
	t.Parallel()
	f := &CodeFile{Path: "/proj/u.text"}
	imp := &Import{Name: "QuickDraw"}
	f.Imports = append(f.Imports, imp)

	assert.Same(t, imp, f.FindImport("quickdraw"))
	assert.Same(t, imp, f.FindImport("QUICKDRAW"))
	assert.Nil(t, f.FindImport("Other"))
}

func TestCodeFolder_SortAndWalk(t *testing.T) {
	t.Parallel()
	root := &CodeFolder{}

	zebra := root.Sub("zebra")
	alpha := root.Sub("Alpha")
	assert.Same(t, zebra, root.Sub("zebra"))

	root.AddFile(&CodeFile{Path: "/proj/beta.text"})
	root.AddFile(&CodeFile{Path: "/proj/ALPHA.text"})
	alpha.AddFile(&CodeFile{Path: "/proj/Alpha/inner.text"})

	root.Sort()
	assert.Equal(t, "Alpha", root.Subs[0].Name)
	assert.Equal(t, "zebra", root.Subs[1].Name)
	assert.Equal(t, "ALPHA.text", root.Files[0].BaseName())

	var visited []string
	root.Walk(func(f *CodeFile) { visited = append(visited, f.BaseName()) })
	assert.Equal(t, []string{"inner.text", "ALPHA.text", "beta.text"}, visited)
}
