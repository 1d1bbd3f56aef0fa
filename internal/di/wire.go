//go:build wireinject
// +build wireinject

package di

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/repository"
	"bayaaz-server/internal/router"
	"bayaaz-server/internal/service"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, media *service.MediaService) (*Application, error) {
	wire.Build(
		repository.NewUserRepository,
		repository.NewCategoryRepository,
		repository.NewLyricRepository,
		service.NewAuthService,
		service.NewCategoryService,
		service.NewLyricService,
		service.NewQueryService,
		service.NewUserService,
		handler.NewAuthHandler,
		handler.NewCategoryHandler,
		handler.NewLyricHandler,
		handler.NewUserHandler,
		handler.NewUploadHandler,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
