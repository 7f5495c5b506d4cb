package services

import (
	"context"

	"widia-api/blog"
	"widia-api/dto"
)

// PostSource is implemented by blog.Repository.
type PostSource interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	GetPost(ctx context.Context, slug string) (blog.Post, error)
	RawContent(ctx context.Context, slug string) ([]byte, error)
	Extension() string
}

// BlogService maps scanned posts to the public DTOs.
type BlogService struct {
	posts PostSource
}

func NewBlogService(posts PostSource) *BlogService {
	return &BlogService{posts: posts}
}

func (s *BlogService) List(ctx context.Context) ([]dto.BlogPostSummaryDTO, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BlogPostSummaryDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, mapPostSummary(p))
	}
	return out, nil
}

func (s *BlogService) Get(ctx context.Context, slug string) (*dto.BlogPostDetailDTO, error) {
	p, err := s.posts.GetPost(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &dto.BlogPostDetailDTO{
		BlogPostSummaryDTO: mapPostSummary(p),
		Content:            p.Content,
	}, nil
}

// Raw returns the unprocessed markdown of a post.
func (s *BlogService) Raw(ctx context.Context, slug string) ([]byte, error) {
	return s.posts.RawContent(ctx, slug)
}

// Extension is the suffix of post files, used by the raw content route.
func (s *BlogService) Extension() string {
	return s.posts.Extension()
}

func mapPostSummary(p blog.Post) dto.BlogPostSummaryDTO {
	return dto.BlogPostSummaryDTO{
		Slug:       p.Slug,
		Title:      p.Title,
		Date:       p.Date,
		Excerpt:    p.Excerpt,
		Author:     p.Author,
		CoverImage: p.CoverImage,
	}
}
