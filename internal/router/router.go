package router

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	auth       *handler.AuthHandler
	categories *handler.CategoryHandler
	lyrics     *handler.LyricHandler
	users      *handler.UserHandler
	uploads    *handler.UploadHandler
}

func NewRouter(
	auth *handler.AuthHandler,
	categories *handler.CategoryHandler,
	lyrics *handler.LyricHandler,
	users *handler.UserHandler,
	uploads *handler.UploadHandler,
) *Router {
	return &Router{
		auth:       auth,
		categories: categories,
		lyrics:     lyrics,
		users:      users,
		uploads:    uploads,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware(2))

	// One limiter instance shared by every auth route.
	authLimiter := middleware.RateLimitMiddleware()

	registerAuthRoutes(api, authLimiter, rt.auth)
	registerCategoryRoutes(api, rt.categories)
	registerLyricRoutes(api, rt.lyrics)
	registerUserRoutes(api, rt.users)
	registerUploadRoutes(api, rt.uploads)
}
