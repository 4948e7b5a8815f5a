package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	got := CleanText("first\r\nsecond\rthird")
	assert.Equal(t, "first\nsecond\nthird", got)
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	got := CleanText("SUMMARY\n\n\n\n\nEngineer with Go experience.")
	assert.Equal(t, "SUMMARY\n\nEngineer with Go experience.", got)
}

func TestCleanText_PreservesBulletIndent(t *testing.T) {
	got := CleanText("EXPERIENCE\n  - Built REST APIs\n  - Led migrations")
	assert.Equal(t, "EXPERIENCE\n  - Built REST APIs\n  - Led migrations", got)
}

func TestCleanText_CollapsesInnerWhitespace(t *testing.T) {
	got := CleanText("Python    SQL\t\tReact")
	assert.Equal(t, "Python SQL React", got)
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	got := CleanText("line one   \nline two\t")
	assert.Equal(t, "line one\nline two", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n   "))
}

func TestFromFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("NAME\r\n\r\n\r\nPython developer"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NAME\n\nPython developer", text)
}

func TestFromFile_HTML(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description"><p>Seeking a Go developer.</p><p>3+ years required.</p></div>
		<footer>Copyright</footer>
	</body></html>`
	path := filepath.Join(t.TempDir(), "posting.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Seeking a Go developer.")
	assert.Contains(t, text, "3+ years required.")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestFromFile_NotFound(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
