package cssunify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeTool creates an executable shell script standing in for the
// external analysis tool.
func writeFakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-uncss")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestInvokeAnalysis_CapturesStdout(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	configCopy := filepath.Join(dir, "config.json")

	tool := writeFakeTool(t, fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %q
cp "$2" %q
printf 'body{color:red}'
`, argsFile, configCopy))

	pages := []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "page two.html"),
	}

	css, err := invokeAnalysis(tool, analysisConfig{
		HTMLRoot:    dir,
		Stylesheets: []string{"/css/a.css"},
	}, pages)
	require.NoError(t, err)

	// Stdout is the consolidated CSS, verbatim.
	assert.Equal(t, "body{color:red}", string(css))

	// Invocation shape: --config <file> <page...>, spaces in page paths
	// intact.
	argsRaw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimRight(string(argsRaw), "\n"), "\n")
	require.Len(t, args, 4)
	assert.Equal(t, "--config", args[0])
	assert.Equal(t, pages, args[2:])

	// The transient config file is removed once the process exits.
	_, statErr := os.Stat(args[1])
	assert.True(t, os.IsNotExist(statErr), "transient config %s should be removed", args[1])

	// The tool saw the serialized configuration.
	var got analysisConfig
	saved, err := os.ReadFile(configCopy)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(saved, &got))
	assert.Equal(t, dir, got.HTMLRoot)
	assert.Equal(t, []string{"/css/a.css"}, got.Stylesheets)
}

func TestInvokeAnalysis_NonZeroExit(t *testing.T) {
	tool := writeFakeTool(t, `#!/bin/sh
echo "no stylesheets found" >&2
exit 3
`)

	var analysisErr *AnalysisError

	_, err := invokeAnalysis(tool, analysisConfig{HTMLRoot: t.TempDir()}, []string{"a.html"})
	require.Error(t, err)
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, tool, analysisErr.Tool)
	assert.Equal(t, "no stylesheets found", analysisErr.Output)
}

func TestInvokeAnalysis_MissingTool(t *testing.T) {
	var analysisErr *AnalysisError

	_, err := invokeAnalysis(filepath.Join(t.TempDir(), "no-such-tool"), analysisConfig{}, nil)
	require.Error(t, err)
	require.ErrorAs(t, err, &analysisErr)
}
