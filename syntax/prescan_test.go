package syntax

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanSrc(src string) []string {
	return ScanUses(bufio.NewReader(strings.NewReader(src)))
}

func TestScanUses_ExtractsUnitNames(t *testing.T) {
	t.Parallel()

	names := scanSrc("unit A;\ninterface\nuses B, C, DeepUnit;")
	assert.Equal(t, []string{"B", "C", "DeepUnit"}, names)
}

func TestScanUses_ProgramHeadingIsSkipped(t *testing.T) {
	t.Parallel()

	names := scanSrc("program Demo(Input, Output);\nuses Screen;")
	assert.Equal(t, []string{"Screen"}, names)
}

func TestScanUses_SlashQualifiedKeepsTrailingName(t *testing.T) {
	t.Parallel()

	names := scanSrc("unit A;\ninterface\nuses Lib/Core, Other;")
	assert.Equal(t, []string{"Core", "Other"}, names)
}

func TestScanUses_StopsAtDeclarationKeyword(t *testing.T) {
	t.Parallel()

	assert.Nil(t, scanSrc("unit A;\ninterface\nconst N = 1;"))
	assert.Nil(t, scanSrc("unit A;\ninterface\nvar X: Integer;"))
	assert.Nil(t, scanSrc("unit A;\ninterface\nprocedure P;"))
}

func TestScanUses_NoUsesClause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, scanSrc("program P;\nbegin\nend."))
	assert.Nil(t, scanSrc(""))
}

func TestScanUses_TruncatedListFlushesPendingName(t *testing.T) {
	t.Parallel()

	names := scanSrc("unit A;\ninterface\nuses B, C")
	assert.Equal(t, []string{"B", "C"}, names)
}
