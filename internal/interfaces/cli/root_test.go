package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and returns the
// combined stdout/stderr output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, "molcanvas")
	assert.Contains(t, out, Version)
}

func TestRootCommand_Help_ListsSubcommands(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "serialize")
	assert.Contains(t, out, "fragments")
	assert.Contains(t, out, "molecules")
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "no-such-command")
	assert.Error(t, err)
}

func TestLocalCommandsRunWithoutServerConfig(t *testing.T) {
	// serialize and fragments work on built-in data alone; a missing or
	// invalid configuration must not block them.
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	out, err := executeCommand(t, "fragments", "--config", missing)
	require.NoError(t, err)
	assert.Contains(t, out, "benzene")
}

func TestGetCLIContext_MissingContext(t *testing.T) {
	root := NewRootCommand()

	_, err := GetCLIContext(root)
	assert.Error(t, err)
}

func TestFormatTable_AlignsColumns(t *testing.T) {
	out := FormatTable(
		[]string{"NAME", "CATEGORY"},
		[][]string{
			{"benzene", "ring"},
			{"ox", "functional group"},
		},
	)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "----")
	assert.Contains(t, out, "benzene")
	assert.Contains(t, out, "functional group")
}

func TestFormatTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", FormatTable(nil, [][]string{{"x"}}))
}

func TestFormatTable_ShortRowPadded(t *testing.T) {
	out := FormatTable(
		[]string{"A", "B"},
		[][]string{{"only-a"}},
	)

	assert.Contains(t, out, "only-a")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}

//Personal.AI order the ending
