package services

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widia-api/blog"
	"widia-api/logger"
)

func newTestBlogService(files fstest.MapFS) *BlogService {
	repo := blog.NewRepository(blog.Options{
		Dir:               "content/blog",
		FS:                files,
		DefaultAuthor:     "Equipe Widia",
		CoverImagePattern: "/images/blog/{slug}.jpg",
		Now:               func() time.Time { return time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC) },
		Logger:            logger.NewRecorder(),
	})
	return NewBlogService(repo)
}

func TestBlogService_List(t *testing.T) {
	svc := newTestBlogService(fstest.MapFS{
		"ola-mundo.md": {Data: []byte("# Olá\n\nPrimeiro parágrafo.\n")},
	})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ola-mundo", got[0].Slug)
	assert.Equal(t, "Olá", got[0].Title)
	assert.Equal(t, "2025-03-04", got[0].Date)
	assert.Equal(t, "Primeiro parágrafo.", got[0].Excerpt)
	assert.Equal(t, "Equipe Widia", got[0].Author)
	assert.Equal(t, "/images/blog/ola-mundo.jpg", got[0].CoverImage)
}

func TestBlogService_Get(t *testing.T) {
	content := "# Olá\n\nTexto.\n"
	svc := newTestBlogService(fstest.MapFS{"ola-mundo.md": {Data: []byte(content)}})

	got, err := svc.Get(context.Background(), "ola-mundo")
	require.NoError(t, err)
	assert.Equal(t, "ola-mundo", got.Slug)
	assert.Equal(t, content, got.Content)
}

func TestBlogService_GetErrors(t *testing.T) {
	svc := newTestBlogService(fstest.MapFS{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, blog.ErrNotFound)

	_, err = svc.Get(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, blog.ErrInvalidSlug)
}

func TestBlogService_Raw(t *testing.T) {
	svc := newTestBlogService(fstest.MapFS{"a.md": {Data: []byte("# A\n")}})

	got, err := svc.Raw(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "# A\n", string(got))
}
