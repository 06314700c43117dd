package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `server:
  host: api.example.com
  http:
    port: 8080
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCommand(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_PrintsValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, testDocument)

	code, stdout, stderr := runCommand("-f", path, "/server/host", "/server/http/port", "filepath")

	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "api.example.com\n8080\n"+path+"\n", stdout)
}

func TestRun_MissingPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, testDocument)

	tests := []struct {
		name     string
		args     []string
		code     int
		expected string
	}{
		{
			name:     "without default",
			args:     []string{"-f", path, "/server/host", "/database/host"},
			code:     exitFail,
			expected: "api.example.com\n",
		},
		{
			name:     "with default",
			args:     []string{"-f", path, "-d", "none", "/database/host", "/server/host"},
			code:     exitOK,
			expected: "none\napi.example.com\n",
		},
		{
			name:     "with empty default",
			args:     []string{"--file", path, "--default", "", "/database/host"},
			code:     exitOK,
			expected: "\n",
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCommand(testInfo.args...)

			assert.Equal(t, testInfo.code, code)
			assert.Equal(t, testInfo.expected, stdout)

			if testInfo.code == exitFail {
				assert.Contains(t, stderr, `unknown configuration entry "/database/host"`)
			}
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, testDocument)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no file", args: []string{"/server/host"}},
		{name: "no paths", args: []string{"-f", path}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, _ := runCommand(testInfo.args...)

			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCommand("--help")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "--file")
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCommand("--version")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "confread dev (unknown)\n", stdout)
}

func TestRun_LoadErrors(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCommand("-f", filepath.Join(t.TempDir(), "missing.yaml"), "/a")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "opening config")

	path := writeConfig(t, "server:\n  host: [unterminated\n")

	code, _, stderr = runCommand("-f", path, "/server/host")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "scanning config")
}

func TestRun_WarnsOnUnsupportedTokens(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name: app\nports:\n  - 80\n")

	code, stdout, stderr := runCommand("-f", path, "--log-format", "json", "/name")

	require.Equal(t, exitOK, code)
	assert.Equal(t, "app\n", stdout)
	assert.Contains(t, stderr, `"msg":"unsupported yaml token skipped"`)
}

func TestRun_Stats(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, testDocument)

	code, stdout, _ := runCommand("-f", path, "--stats")

	require.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "entries=3 blocks=1 "), stdout)
}

func TestRun_Tokens(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name: app\n")

	code, stdout, stderr := runCommand("-f", path, "--tokens")

	require.Equal(t, exitOK, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "stream-start"), lines[0])
	assert.Contains(t, stdout, `scalar("name")`)
	assert.Contains(t, stdout, `scalar("app")`)
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "stream-end"), lines[len(lines)-1])
}

func TestRun_TokensScanError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "a: [unterminated\n")

	code, stdout, stderr := runCommand("-f", path, "--tokens")

	assert.Equal(t, exitFail, code)
	assert.True(t, strings.HasPrefix(stdout, "stream-start"), stdout)
	assert.Contains(t, stderr, "error:")
}
