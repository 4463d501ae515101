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

func runCLI(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ConvertsStdin(t *testing.T) {
	code, out, errOut := runCLI(t, nil, `{"type":"integer","minimum":-100,"maximum":100}`)
	require.Zero(t, code, "stderr: %s", errOut)
	assert.Contains(t, out, `"bsonType": "int"`)
	assert.NotContains(t, out, `"type"`)
}

func TestRun_YAMLInput(t *testing.T) {
	code, out, errOut := runCLI(t, []string{"-yaml"}, "type: boolean\n")
	require.Zero(t, code, "stderr: %s", errOut)
	assert.Contains(t, out, `"bsonType": "bool"`)
}

func TestRun_Wrap(t *testing.T) {
	code, out, _ := runCLI(t, []string{"-wrap"}, `{"type":"string"}`)
	require.Zero(t, code)
	assert.Contains(t, out, `"$jsonSchema"`)
}

func TestRun_Canonical(t *testing.T) {
	code, out, _ := runCLI(t, []string{"-canonical"}, `{"type":"integer","minimum":-100,"maximum":100}`)
	require.Zero(t, code)
	assert.Equal(t, `{"bsonType":"int","maximum":100,"minimum":-100}`+"\n", out)
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	code, out, _ := runCLI(t, []string{"-o", path}, `{"type":"string"}`)
	require.Zero(t, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "string"`)
}

func TestRun_Failures(t *testing.T) {
	code, _, errOut := runCLI(t, nil, `{oops`)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "parse_error")

	code, _, errOut = runCLI(t, []string{"-check"}, `{"type":"string","pattern":"["}`)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid_schema")

	code, _, _ = runCLI(t, []string{"-in", "does-not-exist.json"}, "")
	assert.Equal(t, 1, code)

	code, _, _ = runCLI(t, []string{"-nope"}, "")
	assert.Equal(t, 2, code)
}
