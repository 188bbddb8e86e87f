package main

import (
	"fmt"
	"log"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/service"
)

// 演示数据生成器：创建一个演示账号和几篇文章，便于本地调试前端。
func main() {
	cfg := config.Load()
	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	users := service.NewUserService(gdb)
	blogs := service.NewBlogService(gdb)

	author, err := users.Register(service.RegisterInput{
		Name:     "Demo Author",
		Email:    "demo@inkwell.local",
		Password: "demo-password",
	})
	if err != nil {
		log.Fatal("创建演示用户失败:", err)
	}

	posts := []service.BlogInput{
		{
			Title:   "Welcome to Inkwell",
			Content: "This is a demo post seeded for local development. It exists so the public listing has something to show before you write anything yourself.",
			Tags:    service.TagList{"demo", "meta"},
		},
		{
			Title:   "Writing Your First Post",
			Content: "Sign in with the demo account, open the editor, and start typing. The excerpt and reading time are filled in automatically when you save.",
			Tags:    service.TagList{"demo", "guide"},
		},
		{
			Title:   "Searching and Filtering",
			Content: "The listing endpoint supports full-text search over titles and bodies, plus filtering by a single tag. Try searching for the word filtering.",
			Tags:    service.TagList{"demo", "search"},
		},
	}

	for _, input := range posts {
		if _, err := blogs.Create(input, author.ID); err != nil {
			log.Fatal("创建演示文章失败:", err)
		}
	}

	fmt.Printf("已创建演示用户 %s 和 %d 篇文章\n", author.Email, len(posts))
	fmt.Println("登录邮箱: demo@inkwell.local  密码: demo-password")
}
