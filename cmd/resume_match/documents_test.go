package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResume_RequiresPath(t *testing.T) {
	_, err := loadResume("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume is required")
}

func TestLoadResume_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer with 3 years experience."), 0o644))

	text, err := loadResume(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Python developer")
}

func TestLoadJob_SourceValidation(t *testing.T) {
	ctx := context.Background()

	_, _, err := loadJob(ctx, "", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --job or --job-url")

	_, _, err = loadJob(ctx, "job.txt", "https://example.com/job", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadJob_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Seeking a Go developer. 2+ years required."), 0o644))

	text, name, err := loadJob(context.Background(), path, "", nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Go developer")
	assert.Equal(t, "posting.txt", name)
}
