package outbox

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/digest"
)

func TestSaveRecordsAndExports(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	d := &digest.Rendered{
		Subject: "Daily Cloud & DevOps Jobs - 2025-03-14",
		HTML:    "<html><body>3 jobs</body></html>",
		Text:    "3 jobs",
	}
	generatedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	path, err := s.Save(context.Background(), d, generatedAt, 3, errors.New("dial tcp: timeout"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "digest-20250314-093000.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, d.HTML, string(b))

	n, err := s.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)

	_, err = s1.Save(context.Background(), &digest.Rendered{Subject: "s", HTML: "<p>h</p>", Text: "t"},
		time.Now().UTC(), 0, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// reopening migrates past the existing schema without complaint
	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
