package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-textgraph/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_MissingArgument(t *testing.T) {
	out, _, err := execute(t, "")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "textgraph [flags] <file>")
}

func TestRoot_MissingFile(t *testing.T) {
	_, errOut, err := execute(t, "", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, errOut, "Error reading file:")
}

func TestRoot_Menu(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "A b, c! a b d")
	cfg := writeFile(t, dir, "config.yaml", "walk:\n  output_file: "+filepath.Join(dir, "walk.txt")+"\n")

	out, _, err := execute(t, "2\na\nc\n4\na\nd\n6\n7\n", "--config", cfg, "--seed", "9", input)
	require.NoError(t, err)

	assert.Contains(t, out, "The bridge words from a to c are: b.")
	assert.Contains(t, out, "Shortest path: a → b → d (length: 3)")
	assert.Contains(t, out, "Goodbye!")

	_, err = os.Stat(filepath.Join(dir, "walk.txt"))
	assert.NoError(t, err)
}

func TestRoot_Query(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "x y")

	out, _, err := execute(t, "", "--query", "{ stats { vertices edges } }", input)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"stats":{"vertices":2,"edges":1}}}`, out)
}

func TestRoot_QueryErrors(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "x y")

	out, _, err := execute(t, "", "--query", `{ randomWalk(start: "zebra") { text } }`, input)
	assert.ErrorIs(t, err, errQueryFailed)
	assert.Contains(t, out, "word not in graph")
}

func TestRoot_SourcesOnly(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "a b c a b d")
	q := `{ bridgeWords(from: "a", to: "d") { message } }`

	out, _, err := execute(t, "", "--query", q, input)
	require.NoError(t, err)
	assert.Contains(t, out, "The bridge words from a to d are: b.")

	out, _, err = execute(t, "", "--sources-only", "--query", q, input)
	require.NoError(t, err)
	assert.Contains(t, out, "No a or d in the graph!")
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "a b")
	cfg := writeFile(t, dir, "config.yaml", "pagerank:\n  damping_factor: 2\n")

	_, errOut, err := execute(t, "", "--config", cfg, input)
	require.Error(t, err)
	assert.Contains(t, errOut, "Error loading config:")
}

func TestRoot_InvalidLogLevelFlag(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "a b")

	_, errOut, err := execute(t, "", "--log-level", "loud", input)
	require.Error(t, err)
	assert.Contains(t, errOut, "Error loading config:")
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "a b")

	out, errOut, err := execute(t, "7\n", "--log-level", "debug", input)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"build graph"`)
	assert.Contains(t, errOut, `"session":`)
	assert.NotContains(t, out, `"level"`)
}

func TestRoot_EnvLogLevelWithConfigWithoutLevel(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "a b")
	cfg := writeFile(t, dir, "config.yaml", "seed: 3\n")
	t.Setenv(logging.EnvLogLevel, "debug")

	_, errOut, err := execute(t, "7\n", "--config", cfg, input)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"build graph"`)
}

func TestRoot_ConfigLevelBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "a b")
	cfg := writeFile(t, dir, "config.yaml", "log:\n  level: error\n")
	t.Setenv(logging.EnvLogLevel, "debug")

	_, errOut, err := execute(t, "7\n", "--config", cfg, input)
	require.NoError(t, err)
	assert.NotContains(t, errOut, `"msg":"build graph"`)
}
