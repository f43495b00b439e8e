package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"access-log-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accessLog = `10.0.0.1 - - [10/Oct/2023:13:55:36 +0000] "GET /index.html HTTP/1.1" 200 500 "-" "Mozilla/5.0"
10.0.0.1 - - [10/Oct/2023:13:55:37 +0000] "GET /index.html HTTP/1.1" 200 1500 "-" "Mozilla/5.0"
10.0.0.2 - - [10/Oct/2023:13:55:38 +0000] "GET /favicon.ico HTTP/1.1" 404 - "-" "Mozilla/5.0"
`

func TestRun_PositionalArguments(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "access.log")
	output := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(input, []byte(accessLog), 0o644))

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--log-level", "disabled", input, output}, &stderr)
	require.Equal(t, svcerrors.ExitOK, code, stderr.String())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Total number of requests: 3\n")
	assert.Contains(t, string(content), "4xx: 33.33%\n")
}

func TestRun_EmptyInputFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.log")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--log-level", "disabled", input, filepath.Join(dir, "report.txt")}, &stderr)
	assert.Equal(t, svcerrors.ExitInvalidArgument, code)
	assert.Contains(t, stderr.String(), "no data")
}

func TestRun_MissingInputFails(t *testing.T) {
	dir := t.TempDir()

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--log-level", "disabled", "--input", filepath.Join(dir, "nope.log"), "--output", filepath.Join(dir, "report.txt")}, &stderr)
	assert.Equal(t, svcerrors.ExitIO, code)
	assert.Contains(t, stderr.String(), "PARSE_9000")
}

func TestRun_TooManyArguments(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"a", "b", "c"}, &stderr)
	assert.Equal(t, svcerrors.ExitInvalidArgument, code)
	assert.Contains(t, stderr.String(), "too many arguments")
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"--help"}, &stderr)
	assert.Equal(t, svcerrors.ExitOK, code)
	assert.Contains(t, stderr.String(), "Usage: accesslogstats")
}
