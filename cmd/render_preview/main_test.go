package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesHTML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "resume.json")
	out := filepath.Join(dir, "resume.html")
	require.NoError(t, os.WriteFile(in, []byte(`{
		"name": "Alice", "contact": "1", "address": "a", "email": "a@b.c",
		"objective": "Build things", "experience": ["Engineer"], "education": ["BSc"],
		"instagram": "http://x.com/a"
	}`), 0o644))

	require.NoError(t, run(in, out, "", "", false))

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<li>Engineer</li>")
	assert.Contains(t, string(html), "Instagram")
	assert.NotContains(t, string(html), "Facebook")
}

func TestRun_RejectsIncompleteResume(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"name": "Alice"}`), 0o644))

	err := run(in, filepath.Join(dir, "out.html"), "", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email ID is required")

	err = run(in, filepath.Join(dir, "out.html"), "", "", true)
	assert.Contains(t, err.Error(), "Facebook Link is required")
}
