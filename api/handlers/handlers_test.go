package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widia-api/blog"
	"widia-api/dto"
	"widia-api/logger"
	"widia-api/mailer"
	"widia-api/models"
	"widia-api/services"
)

type memStatusStore struct {
	items []models.StatusCheck
	err   error
}

func (m *memStatusStore) Insert(_ context.Context, s models.StatusCheck) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, s)
	return nil
}

func (m *memStatusStore) ListRecent(_ context.Context, _ int64) ([]models.StatusCheck, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

type memContactStore struct {
	items []models.ContactForm
	err   error
}

func (m *memContactStore) Insert(_ context.Context, f models.ContactForm) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, f)
	return nil
}

type stubMailer struct {
	sent int
	err  error
}

func (s *stubMailer) Send(_ context.Context, _ mailer.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent++
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type env struct {
	engine   *gin.Engine
	status   *memStatusStore
	contacts *memContactStore
	mail     *stubMailer
}

func newEnv(t *testing.T, posts fstest.MapFS) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = logger.NewRecorder()

	e := &env{
		status:   &memStatusStore{},
		contacts: &memContactStore{},
		mail:     &stubMailer{},
	}
	statusSvc := services.NewStatusService(e.status)
	contactSvc := services.NewContactService(e.contacts, e.mail, services.ContactServiceOptions{
		Logger: logger.NewRecorder(),
	})
	blogSvc := services.NewBlogService(blog.NewRepository(blog.Options{
		Dir:           "content/blog",
		FS:            posts,
		DefaultAuthor: "Equipe Widia",
		Now:           func() time.Time { return time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC) },
		Logger:        logger.NewRecorder(),
	}))

	r := gin.New()
	r.GET("/health", HealthHandler(stubPinger{}))
	api := r.Group("/api")
	api.GET("/", RootHandler())
	api.POST("/status", CreateStatusCheckHandler(statusSvc))
	api.GET("/status", ListStatusChecksHandler(statusSvc))
	api.POST("/contact", SubmitContactHandler(contactSvc))
	api.GET("/blog/posts", ListBlogPostsHandler(blogSvc))
	api.GET("/blog/post/:slug", GetBlogPostHandler(blogSvc))
	r.GET("/content/blog/:file", RawBlogContentHandler(blogSvc))
	e.engine = r
	return e
}

func (e *env) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestRootHandler(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	w := e.do(http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for name, tc := range map[string]struct {
		err  error
		code int
		body string
	}{
		"up":   {nil, http.StatusOK, `{"status":"ok"}`},
		"down": {errors.New("server selection error: 10.0.0.5:27017"), http.StatusServiceUnavailable, `{"status":"degraded","mongo":"down"}`},
	} {
		t.Run(name, func(t *testing.T) {
			rec := logger.NewRecorder()
			logger.Log = rec

			r := gin.New()
			r.GET("/health", HealthHandler(stubPinger{err: tc.err}))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
			assert.NotContains(t, w.Body.String(), "27017")
			assert.Equal(t, tc.err != nil, rec.Contains("error", "health check failed"))
		})
	}
}

func TestStatusHandlers_CreateThenList(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})

	w := e.do(http.MethodPost, "/api/status", `{"client_name":"web"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created dto.StatusCheckDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "web", created.ClientName)
	assert.NotEmpty(t, created.ID)

	w = e.do(http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.StatusCheckDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestStatusHandlers_ListEmptyIsArray(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	w := e.do(http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStatusHandlers_BadBody(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	for _, body := range []string{`{`, `{}`, `{"client_name":1}`} {
		w := e.do(http.MethodPost, "/api/status", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, e.status.items)
}

func TestStatusHandlers_StoreFailure(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	e.status.err = errors.New("db down")

	w := e.do(http.MethodPost, "/api/status", `{"client_name":"web"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestContactHandler_Success(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})

	w := e.do(http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@x.com","service":"automacao","message":"Oi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ana", got["name"])
	assert.Nil(t, got["phone"])
	assert.Nil(t, got["company"])
	assert.NotEmpty(t, got["id"])
	assert.NotEmpty(t, got["timestamp"])
	assert.Len(t, e.contacts.items, 1)
	assert.Equal(t, 1, e.mail.sent)
}

func TestContactHandler_EmailFailureStill200(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	e.mail.err = errors.New("smtp down")

	w := e.do(http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@x.com","service":"geral","message":"Oi"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, e.contacts.items, 1)
}

func TestContactHandler_Errors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  int
		field string
	}{
		{"malformed", `{"name":`, http.StatusBadRequest, ""},
		{"invalid email", `{"name":"Ana","email":"nope","service":"geral","message":"Oi"}`, http.StatusUnprocessableEntity, "email"},
		{"missing name", `{"email":"ana@x.com","service":"geral","message":"Oi"}`, http.StatusUnprocessableEntity, "name"},
		{"wrong type", `{"name":42,"email":"ana@x.com","service":"geral","message":"Oi"}`, http.StatusUnprocessableEntity, "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t, fstest.MapFS{})
			w := e.do(http.MethodPost, "/api/contact", tc.body)
			require.Equal(t, tc.code, w.Code)
			if tc.field != "" {
				var body dto.ValidationErrorResponseDTO
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				require.NotEmpty(t, body.Details)
				assert.Equal(t, tc.field, body.Details[0].Field)
			}
			assert.Empty(t, e.contacts.items)
			assert.Zero(t, e.mail.sent)
		})
	}
}

func TestContactHandler_PersistenceFailure(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	e.contacts.err = errors.New("db down")

	w := e.do(http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@x.com","service":"geral","message":"Oi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, e.mail.sent)
}

func TestBlogHandlers(t *testing.T) {
	e := newEnv(t, fstest.MapFS{
		"ola.md": {Data: []byte("# Olá\n\nTexto do post.\n")},
	})

	w := e.do(http.MethodGet, "/api/blog/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "ola", list[0]["slug"])
	assert.Equal(t, "/images/blog/ola.jpg", list[0]["coverImage"])
	assert.NotContains(t, list[0], "content")

	w = e.do(http.MethodGet, "/api/blog/post/ola", "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail dto.BlogPostDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Olá", detail.Title)
	assert.Equal(t, "# Olá\n\nTexto do post.\n", detail.Content)

	w = e.do(http.MethodGet, "/api/blog/post/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodGet, "/api/blog/post/bad.slug", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogHandlers_EmptyDirIsArray(t *testing.T) {
	e := newEnv(t, fstest.MapFS{})
	w := e.do(http.MethodGet, "/api/blog/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRawBlogContentHandler(t *testing.T) {
	e := newEnv(t, fstest.MapFS{"ola.md": {Data: []byte("# Olá\n")}})

	w := e.do(http.MethodGet, "/content/blog/ola.md", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "# Olá\n", w.Body.String())

	w = e.do(http.MethodGet, "/content/blog/nope.md", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodGet, "/content/blog/ola.txt", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodGet, "/content/blog/.hidden.md", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRawBlogContentHandler_ConfiguredExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Log = logger.NewRecorder()
	svc := services.NewBlogService(blog.NewRepository(blog.Options{
		FS:        fstest.MapFS{"notas.txt": {Data: []byte("# Notas\n")}},
		Extension: ".txt",
		Logger:    logger.NewRecorder(),
	}))
	r := gin.New()
	r.GET("/content/blog/:file", RawBlogContentHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/content/blog/notas.txt", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# Notas\n", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/content/blog/notas.md", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
