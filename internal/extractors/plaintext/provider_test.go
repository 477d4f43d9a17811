package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	provider := New()
	require.NotNil(t, provider)
	assert.Equal(t, []string{".txt"}, provider.Extensions())
}

func TestPages_SingleDocument(t *testing.T) {
	provider := New()
	path := writeFixture(t, "notes.txt", "first line\nsecond line\n")

	pages, err := provider.Pages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "first line\nsecond line", pages[0].Text)
}

func TestPages_FormFeedSplits(t *testing.T) {
	provider := New()
	path := writeFixture(t, "paged.txt", "page one text\fpage two text\fpage three text")

	pages, err := provider.Pages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, "page two text", pages[1].Text)
}

func TestPages_BlankPageKeepsNumbering(t *testing.T) {
	provider := New()
	path := writeFixture(t, "gaps.txt", "page one text\f   \fpage three text")

	pages, err := provider.Pages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, 3, pages[1].Number)
}

func TestPages_EmptyFile(t *testing.T) {
	provider := New()
	path := writeFixture(t, "empty.txt", "")

	pages, err := provider.Pages(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestPages_MissingFile(t *testing.T) {
	provider := New()
	_, err := provider.Pages(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestPages_CancelledContext(t *testing.T) {
	provider := New()
	path := writeFixture(t, "live.txt", "content")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Pages(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
