package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"resume": "resume.txt",
		"job_url": "https://boards.greenhouse.io/acme/jobs/123",
		"top_keywords": 20,
		"listen_addr": ":9090"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/123", cfg.JobURL)
	assert.Equal(t, 20, cfg.TopKeywords)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_JobAndJobURLExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeTopKeywords(t *testing.T) {
	cfg := &Config{TopKeywords: -1}
	require.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	job := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resume, []byte("resume"), 0o644))
	require.NoError(t, os.WriteFile(job, []byte("job"), 0o644))

	cfg := &Config{Resume: resume, Job: job}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	merged := cfg.MergeWithDefaults(Config{
		Resume:      "default.txt",
		Job:         "job.txt",
		TopKeywords: 15,
		ListenAddr:  ":8080",
	})

	assert.Equal(t, "mine.txt", merged.Resume)
	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, 15, merged.TopKeywords)
	assert.Equal(t, ":8080", merged.ListenAddr)
}

func TestMergeWithDefaults_NonZeroValuesWin(t *testing.T) {
	cfg := Config{TopKeywords: 30, DatabaseURL: "postgres://localhost/match"}
	merged := cfg.MergeWithDefaults(Config{TopKeywords: 15, DatabaseURL: "postgres://other/db"})

	assert.Equal(t, 30, merged.TopKeywords)
	assert.Equal(t, "postgres://localhost/match", merged.DatabaseURL)
}
