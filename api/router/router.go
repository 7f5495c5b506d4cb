package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"widia-api/api/handlers"
	"widia-api/api/middleware"
	_ "widia-api/docs"
	"widia-api/services"
)

// Dependencies are built in main and shared by every request.
type Dependencies struct {
	APIPrefix string
	Store     handlers.Pinger
	Status    *services.StatusService
	Contact   *services.ContactService
	Blog      *services.BlogService
}

func New(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", handlers.HealthHandler(deps.Store))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	prefix := deps.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)
	{
		api.GET("/", handlers.RootHandler())

		api.POST("/status", handlers.CreateStatusCheckHandler(deps.Status))
		api.GET("/status", handlers.ListStatusChecksHandler(deps.Status))

		api.POST("/contact", handlers.SubmitContactHandler(deps.Contact))

		api.GET("/blog/posts", handlers.ListBlogPostsHandler(deps.Blog))
		api.GET("/blog/post/:slug", handlers.GetBlogPostHandler(deps.Blog))
	}

	r.GET("/content/blog/:file", handlers.RawBlogContentHandler(deps.Blog))

	return r
}
