package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "Singapore Malaysia!\nMalaya singapore\n")

	var stdout, stderr bytes.Buffer
	code := execute([]string{input}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Singapore Accepted\nMalaysia! Accepted\nMalaya Accepted\nsingapore Rejected\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecuteCustomDictionary(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "Singapore Malaysia!\nMalaya singapore\n")
	dict := writeFile(t, dir, "dict.yaml", "phrases:\n  - Singapore\n  - Malaysia\n")

	var stdout, stderr bytes.Buffer
	code := execute([]string{"--input", input, "--dictionary", dict, "--stats"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Singapore Accepted\nMalaysia! Accepted\nMalaya Rejected\nsingapore Rejected\n"+
		"tokens: 4, accepted: 2, rejected: 2, acceptance rate: 50.0%\n", stdout.String())
}

func TestExecuteEmptyInput(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "")
	var stdout, stderr bytes.Buffer
	code := execute([]string{input}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout.String())
}

func TestExecuteMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	for _, level := range []string{"warn", "error", "fatal", "panic", "disabled"} {
		t.Run(level, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := execute([]string{missing, "--log-level", level}, &stdout, &stderr)
			assert.Equal(t, exitInputUnavailable, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "input unavailable")
		})
	}
}

func TestExecuteMissingInputLogLevelFromEnv(t *testing.T) {
	t.Setenv("PLACEFINDER_LOG_LEVEL", "disabled")
	var stdout, stderr bytes.Buffer
	code := execute([]string{filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr)
	assert.Equal(t, exitInputUnavailable, code)
	assert.Contains(t, stderr.String(), "input unavailable")
}

func TestExecuteBadFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "bogus"},
		{"too many args", []string{"a.txt", "b.txt"}, "accepts at most 1 arg"},
		{"argument and flag", []string{"a.txt", "--input", "b.txt"}, "both as argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := execute(tt.args, &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.NotEmpty(t, stderr.String())
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestExecuteHTML(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "Brunei & Mars")
	var stdout, stderr bytes.Buffer
	code := execute([]string{input, "--format", "html"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "<p><span class=\"place\">Brunei</span> &amp; Mars</p>\n", stdout.String())
}

func TestExecuteBadConfig(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "Brunei")
	var stdout, stderr bytes.Buffer
	code := execute([]string{input, "--format", "xml"}, &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "unknown format")

	stderr.Reset()
	code = execute([]string{input, "--builtin", "mars"}, &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "unknown builtin dictionary")
}

func TestExecuteCSV(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", "Brunei Mars")
	var stdout, stderr bytes.Buffer
	code := execute([]string{input, "-f", "csv", "--builtin", "world"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "token,accepted\nBrunei,true\nMars,false\n", stdout.String())
}
