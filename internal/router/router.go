package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("inkwell_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", api.Register)
		auth.POST("/login", api.Login)

		// 需要认证的会话路由
		private := auth.Group("")
		private.Use(handler.AuthRequired())
		{
			private.POST("/logout", api.Logout)
			private.GET("/me", api.CurrentUser)
		}
	}

	blogs := r.Group("/api/blogs")
	{
		// 公开路由
		blogs.GET("", api.ListBlogs)

		// 需要认证的文章路由。先注册静态路径，避免被 :id 吞掉。
		private := blogs.Group("")
		private.Use(handler.AuthRequired())
		{
			private.GET("/user/my-blogs", api.MyBlogs)
			private.POST("", api.CreateBlog)
			private.PUT("/:id", api.UpdateBlog)
			private.DELETE("/:id", api.DeleteBlog)
		}

		blogs.GET("/:id", api.GetBlog)
	}

	return r
}
