package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasnav/filesys"
	"pasnav/model"
)

// loadTree materializes the given files under a fresh root and runs a full
// load over them.
func loadTree(t *testing.T, files map[string]string) (*model.Project, string) {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	fs, err := filesys.Load(dir, filesys.LoadConfig(dir))
	require.NoError(t, err)

	return Load(fs), dir
}

func TestLoad_ResolvesAcrossUnits(t *testing.T) {
	t.Parallel()
	proj, dir := loadTree(t, map[string]string{
		"pasnav.toml": "resolve-across-units = true\n",
		"main.pas": `program Main;
uses Util;
begin
  Answer := Compute
end.`,
		"util.pas": `unit Util;
interface
var
  Answer: Integer;
function Compute: Integer;
implementation
function Compute: Integer;
begin
  Compute := 42
end;
end.`,
	})

	assert.Empty(t, proj.Diagnostics)
	assert.Equal(t, 2, proj.FileCount())

	mainPath := filepath.Join(dir, "main.pas")
	utilPath := filepath.Join(dir, "util.pas")

	util := proj.FileAt(utilPath)
	require.NotNil(t, util)
	assert.Equal(t, "Util", util.Name)
	assert.Equal(t, model.FileUnit, util.Kind)
	assert.True(t, util.Analyzed())
	require.Len(t, util.Intf.Decls, 2)

	answer, compute := util.Intf.Decls[0], util.Intf.Decls[1]
	assert.Equal(t, model.KindVar, answer.Kind)
	assert.Equal(t, model.KindFunc, compute.Kind)
	require.NotNil(t, compute.Link)
	assert.Same(t, compute, compute.Link.Link)

	main := proj.FileAt(mainPath)
	require.NotNil(t, main)
	assert.Equal(t, "Main", main.Name)
	require.Len(t, main.Imports, 1)
	assert.Same(t, util, main.Imports[0].Resolved)

	// The program body resolves both names out of the imported interface.
	require.Len(t, main.Syms, 2)
	assert.Same(t, answer, proj.FindDeclAt(mainPath, 4, 3))
	assert.Same(t, compute, proj.FindDeclAt(mainPath, 4, 13))

	assert.Equal(t, 16, proj.Sloc)
}

func TestLoad_UnresolvedUnitDiagnostic(t *testing.T) {
	t.Parallel()
	proj, dir := loadTree(t, map[string]string{
		"main.pas": "program Main;\nuses Missing;\nbegin\nend.\n",
	})

	mainPath := filepath.Join(dir, "main.pas")

	require.Len(t, proj.Diagnostics, 1)
	d := proj.Diagnostics[0]
	assert.Equal(t, mainPath, d.Path)
	assert.Equal(t, "cannot resolve referenced unit 'Missing'", d.Msg)
	assert.Equal(t, mainPath+": cannot resolve referenced unit 'Missing'", d.String())

	main := proj.FileAt(mainPath)
	require.NotNil(t, main)
	assert.True(t, main.Analyzed())
	require.Len(t, main.Imports, 1)
	assert.Equal(t, "Missing", main.Imports[0].Name)
	assert.Nil(t, main.Imports[0].Resolved)
}

func TestLoad_UsesCycleTerminates(t *testing.T) {
	t.Parallel()
	proj, dir := loadTree(t, map[string]string{
		"pasnav.toml": "resolve-across-units = true\n",
		"a.pas": `unit A;
interface
uses B;
const
  FromA = 1;
implementation
end.`,
		"b.pas": `unit B;
interface
uses A;
const
  FromB = FromA;
implementation
end.`,
	})

	assert.Empty(t, proj.Diagnostics)

	a := proj.FileAt(filepath.Join(dir, "a.pas"))
	b := proj.FileAt(filepath.Join(dir, "b.pas"))
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.True(t, a.Analyzed())
	assert.True(t, b.Analyzed())
	assert.Same(t, b, a.Imports[0].Resolved)
	assert.Same(t, a, b.Imports[0].Resolved)

	// B was bound while A was still on the analysis stack, so A's interface
	// was empty at that point and the reference across the cycle misses.
	fromA := a.Intf.Decls[0]
	assert.Equal(t, "FromA", fromA.Name)
	assert.Equal(t, 0, fromA.RefCount())
	assert.Empty(t, b.Syms)
}

func TestLoad_ParseErrorBecomesDiagnostic(t *testing.T) {
	t.Parallel()
	proj, dir := loadTree(t, map[string]string{
		"bad.pas": "program Bad;\nbegin\n  X := ;\nend.\n",
	})

	badPath := filepath.Join(dir, "bad.pas")

	require.Len(t, proj.Diagnostics, 1)
	d := proj.Diagnostics[0]
	assert.Equal(t, "unexpected token: `;`", d.Msg)
	assert.Equal(t, 3, d.Row)
	assert.Equal(t, 8, d.Col)

	// The parsed prefix still enters the model.
	bad := proj.FileAt(badPath)
	require.NotNil(t, bad)
	assert.True(t, bad.Analyzed())
	assert.Equal(t, "Bad", bad.Name)
	require.NotNil(t, bad.Impl)
	assert.Empty(t, bad.Impl.Decls)
}

func TestLoad_IncludeDirectivesBecomeRefs(t *testing.T) {
	t.Parallel()
	proj, dir := loadTree(t, map[string]string{
		"main.pas": `program Main;
{$I shared.inc}
{$I nowhere.inc}
begin
end.`,
		"shared.inc": "const S = 1;\n",
	})

	// Include files are never analysis sources, and a directive that fails
	// to resolve is not a diagnostic.
	assert.Equal(t, 1, proj.FileCount())
	assert.Empty(t, proj.Diagnostics)
	assert.Nil(t, proj.FileAt(filepath.Join(dir, "shared.inc")))

	main := proj.FileAt(filepath.Join(dir, "main.pas"))
	require.NotNil(t, main)
	require.Len(t, main.Includes, 2)

	resolved := main.Includes[0]
	assert.Equal(t, "shared.inc", resolved.Target)
	assert.Equal(t, filepath.Join(dir, "shared.inc"), resolved.Path)
	assert.Equal(t, 2, resolved.Loc.Row)
	assert.Equal(t, 1, resolved.Loc.Col)

	missing := main.Includes[1]
	assert.Equal(t, "nowhere.inc", missing.Target)
	assert.Empty(t, missing.Path)
}

func TestLoad_FolderTreeMirrorsDirectories(t *testing.T) {
	t.Parallel()
	proj, dir := loadTree(t, map[string]string{
		"main.pas":     "program Main;\nbegin\nend.\n",
		"lib/util.pas": "unit Util;\ninterface\nimplementation\nend.\n",
	})

	require.Len(t, proj.Root.Subs, 1)
	lib := proj.Root.Subs[0]
	assert.Equal(t, "lib", lib.Name)

	require.Len(t, lib.Files, 1)
	assert.Same(t, proj.FileAt(filepath.Join(dir, "lib", "util.pas")), lib.Files[0])
	assert.Same(t, lib, lib.Files[0].Folder)

	require.Len(t, proj.Root.Files, 1)
	assert.Equal(t, "main.pas", proj.Root.Files[0].BaseName())
}

func TestLoad_RebuildsFromScratch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.pas")
	require.NoError(t, os.WriteFile(path, []byte(
		"program Main;\nvar\n  Total: Integer;\nbegin\n  Total := 1;\nend.\n",
	), 0o644))

	fs, err := filesys.Load(dir, filesys.DefaultConfig())
	require.NoError(t, err)

	first := Load(fs)
	second := Load(fs)

	assert.Equal(t, 1, first.FileCount())
	assert.Equal(t, 1, second.FileCount())
	assert.NotSame(t, first.FileAt(path), second.FileAt(path))
	assert.True(t, second.FileAt(path).Analyzed())

	// Fresh entities, identical position to name mapping.
	d1 := first.FindDeclAt(path, 5, 3)
	d2 := second.FindDeclAt(path, 5, 3)
	require.NotNil(t, d1)
	require.NotNil(t, d2)
	assert.NotSame(t, d1, d2)
	assert.Equal(t, d1.Name, d2.Name)
}
