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

const sampleInput = "the a\n3\nthe cat sat\na dog ran\nthe bird flew\ncat dog\n"

func TestRun_Console(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, strings.NewReader(sampleInput), &out))
	assert.Equal(t,
		"{ document_id = 0, relevance = 0.549306 }\n{ document_id = 1, relevance = 0.549306 }\n",
		out.String())
}

func TestRun_MaxResults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--max-results", "1"}, strings.NewReader(sampleInput), &out))
	assert.Equal(t, "{ document_id = 0, relevance = 0.549306 }\n", out.String())

	err := run([]string{"--max-results", "-1"}, strings.NewReader(sampleInput), &out)
	assert.Error(t, err)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index:\n  stopWords: \"cat\"\n"), 0600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"--config", path}, strings.NewReader(sampleInput), &out))
	assert.Equal(t, "{ document_id = 1, relevance = 0.549306 }\n", out.String(), "'cat' is a stop word from the config file")

	err := run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, strings.NewReader(sampleInput), &out)
	assert.Error(t, err)
}

func TestRun_HelpAndVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--help"}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Usage: search_engine")
	assert.Contains(t, out.String(), "--max-results")

	out.Reset()
	require.NoError(t, run([]string{"--version"}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), version)
}

func TestRun_UnknownFlag(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"--bogus"}, strings.NewReader(sampleInput), &out))
}
