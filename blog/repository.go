package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"widia-api/logger"
)

// DateLayout is the format of Post.Date.
const DateLayout = "2006-01-02"

var (
	ErrNotFound        = errors.New("blog: post not found")
	ErrInvalidSlug     = errors.New("blog: invalid slug")
	ErrInvalidEncoding = errors.New("blog: content is not valid UTF-8")
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,199}$`)

// ValidateSlug rejects anything that could leave the content directory.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

// Post is the metadata derived from one content file. Content is only set
// by GetPost.
type Post struct {
	Slug       string
	Title      string
	Date       string
	Excerpt    string
	Author     string
	CoverImage string
	Content    string
}

type Options struct {
	// Dir is the content directory. Used to build FS when FS is nil and in logs.
	Dir string
	FS  fs.FS
	// Extension of post files, ".md" when empty.
	Extension     string
	DefaultAuthor string
	// CoverImagePattern with a {slug} placeholder.
	CoverImagePattern string
	FrontMatter       bool
	Now               func() time.Time
	Logger            logger.Logger
}

// Repository reads posts from a flat directory, one file per post.
// Nothing is cached; every call rereads the files.
type Repository struct {
	dir          string
	fsys         fs.FS
	ext          string
	author       string
	coverPattern string
	frontMatter  bool
	now          func() time.Time
	log          logger.Logger
}

func NewRepository(opts Options) *Repository {
	r := &Repository{
		dir:          opts.Dir,
		fsys:         opts.FS,
		ext:          opts.Extension,
		author:       opts.DefaultAuthor,
		coverPattern: opts.CoverImagePattern,
		frontMatter:  opts.FrontMatter,
		now:          opts.Now,
		log:          opts.Logger,
	}
	if r.fsys == nil {
		r.fsys = os.DirFS(opts.Dir)
	}
	if r.ext == "" {
		r.ext = ".md"
	}
	if r.coverPattern == "" {
		r.coverPattern = "/images/blog/{slug}.jpg"
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.log == nil {
		r.log = logger.Log
	}
	return r
}

// ListPosts returns a summary for every readable post file.
//
// A missing directory yields an empty list. Files that fail to read or parse
// are logged and skipped. Posts are sorted by date descending; without front
// matter every post carries today's date, so the result keeps directory order.
func (r *Repository) ListPosts(ctx context.Context) ([]Post, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warnf("blog content directory %q does not exist", r.dir)
			return []Post{}, nil
		}
		return nil, fmt.Errorf("blog: read content directory: %w", err)
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, r.ext) {
			continue
		}
		slug := strings.TrimSuffix(name, r.ext)
		if err := ValidateSlug(slug); err != nil {
			r.log.Warnf("skipping blog file %s: %v", name, err)
			continue
		}

		data, err := r.readFile(name)
		if err != nil {
			r.log.Errorf("error processing blog file %s: %v", name, err)
			continue
		}
		post, err := r.buildPost(slug, string(data))
		if err != nil {
			r.log.Errorf("error processing blog file %s: %v", name, err)
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// GetPost returns the derived metadata plus the raw file content.
func (r *Repository) GetPost(ctx context.Context, slug string) (Post, error) {
	data, err := r.load(ctx, slug)
	if err != nil {
		return Post{}, err
	}
	if !utf8.Valid(data) {
		return Post{}, fmt.Errorf("%s: %w", slug, ErrInvalidEncoding)
	}
	post, err := r.buildPost(slug, string(data))
	if err != nil {
		return Post{}, err
	}
	post.Content = string(data)
	return post, nil
}

// Extension is the file suffix of posts, including the dot.
func (r *Repository) Extension() string { return r.ext }

// RawContent returns the post file exactly as stored.
func (r *Repository) RawContent(ctx context.Context, slug string) ([]byte, error) {
	return r.load(ctx, slug)
}

func (r *Repository) load(ctx context.Context, slug string) ([]byte, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(r.fsys, slug+r.ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("blog: read %s: %w", slug, err)
	}
	return data, nil
}

func (r *Repository) readFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	return data, nil
}

func (r *Repository) buildPost(slug, content string) (Post, error) {
	body := content
	var fm FrontMatter
	if r.frontMatter {
		var err error
		fm, body, err = ParseFrontMatter(content)
		if err != nil {
			return Post{}, err
		}
	}

	excerpt := ExtractExcerpt(body)
	if fm.Excerpt != "" {
		excerpt = TruncateExcerpt(fm.Excerpt)
	}
	return Post{
		Slug:       slug,
		Title:      firstNonEmpty(fm.Title, ExtractTitle(body, slug)),
		Date:       firstNonEmpty(fm.Date, r.now().Format(DateLayout)),
		Excerpt:    excerpt,
		Author:     firstNonEmpty(fm.Author, r.author),
		CoverImage: firstNonEmpty(fm.CoverImage, r.coverImage(slug)),
	}, nil
}

func (r *Repository) coverImage(slug string) string {
	return strings.ReplaceAll(r.coverPattern, "{slug}", slug)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
