package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasnav/model"
)

func TestDriver_LoadAndQuery(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := `program Main;
var
  Total: Integer;
begin
  Total := 1
end.`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.pas"), []byte(src), 0o644))

	d := NewDriver(dir)
	proj := d.Load()
	require.NotNil(t, proj)
	assert.Equal(t, 1, proj.FileCount())

	decl := d.DeclAt("main.pas", 5, 3)
	require.NotNil(t, decl)
	assert.Equal(t, "Total", decl.Name)
	assert.Equal(t, model.KindVar, decl.Kind)

	// An absolute file argument passes through unchanged.
	assert.Same(t, decl, d.DeclAt(filepath.Join(dir, "main.pas"), 5, 3))
	assert.Nil(t, d.DeclAt("main.pas", 1, 1))

	assert.Equal(t, "var Total at main.pas:3:3", formatDecl(d, decl))
}

func TestDriver_ReloadSeesNewFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.pas"),
		[]byte("program Main;\nbegin\nend.\n"), 0o644))

	d := NewDriver(dir)
	first := d.Load()
	assert.Equal(t, 1, first.FileCount())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.pas"),
		[]byte("unit Util;\ninterface\nimplementation\nend.\n"), 0o644))

	second := d.Load()
	assert.Equal(t, 2, second.FileCount())
}
