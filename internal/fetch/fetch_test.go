package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Backend Engineer role</main></body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Backend Engineer")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainText_UsesContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Navigation junk</nav>
		<div class="job-description">Looking for a Go engineer with 3 years experience.</div>
		<footer>Footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Go engineer")
	assert.NotContains(t, text, "Navigation junk")
	assert.NotContains(t, text, "Footer junk")
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<html><body><main>
		<p>Role description</p>
		<div class="eeo-statement">Equal opportunity text</div>
	</main></body></html>`

	text, err := ExtractMainText(html, []string{"main"}, ".eeo-statement")
	require.NoError(t, err)
	assert.Contains(t, text, "Role description")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text")
}

func TestDetectPlatform(t *testing.T) {
	assert.Equal(t, PlatformGreenhouse, DetectPlatform("https://boards.greenhouse.io/acme/jobs/1"))
	assert.Equal(t, PlatformLever, DetectPlatform("https://jobs.lever.co/acme/abc"))
	assert.Equal(t, PlatformWorkday, DetectPlatform("https://acme.myworkdayjobs.com/en-US/jobs"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://example.com/careers"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("::bad::"))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
