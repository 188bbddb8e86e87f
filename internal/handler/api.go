package handler

import (
	"github.com/inkwell/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db    *gorm.DB
	blogs *service.BlogService
	users *service.UserService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:    gdb,
		blogs: service.NewBlogService(gdb),
		users: service.NewUserService(gdb),
	}
}
