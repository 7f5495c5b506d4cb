package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"widia-api/dto"
	"widia-api/services"
)

const markdownContentType = "text/markdown; charset=utf-8"

// ListBlogPostsHandler godoc
// @Summary      List blog posts
// @Description  Summaries of every post in the content directory, newest first
// @Tags         blog
// @Produce      json
// @Success      200  {array}   dto.BlogPostSummaryDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/posts [get]
func ListBlogPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetBlogPostHandler godoc
// @Summary      Get a blog post
// @Tags         blog
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPostDetailDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/post/{slug} [get]
func GetBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// RawBlogContentHandler serves /content/blog/{slug}{ext} as stored on disk,
// where ext is the configured post extension.
func RawBlogContentHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := c.Param("file")
		slug, ok := strings.CutSuffix(file, svc.Extension())
		if !ok {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "post not found"})
			return
		}
		data, err := svc.Raw(c.Request.Context(), slug)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Data(http.StatusOK, markdownContentType, data)
	}
}
