package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/service"
)

// ListBlogs 获取已发布文章的分页列表，支持搜索与标签筛选
func (a *API) ListBlogs(c *gin.Context) {
	filter := service.BlogFilter{
		Page:    parsePositiveQueryInt(c, "page", 1),
		PerPage: parsePositiveQueryInt(c, "limit", 10),
		Search:  strings.TrimSpace(c.Query("search")),
		Tag:     strings.TrimSpace(c.Query("tag")),
	}

	result, err := a.blogs.ListPublished(filter)
	if err != nil {
		respondServiceError(c, err, "list blogs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs": result.Blogs,
		"pagination": gin.H{
			"currentPage": result.Page,
			"totalPages":  result.TotalPages,
			"totalBlogs":  result.Total,
			"hasNextPage": result.HasNext,
			"hasPrevPage": result.HasPrev,
		},
	})
}

// GetBlog 获取单篇文章
func (a *API) GetBlog(c *gin.Context) {
	blog, err := a.blogs.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// CreateBlog 创建新文章，作者取自会话主体而非载荷
func (a *API) CreateBlog(c *gin.Context) {
	var input service.BlogInput
	if !bindJSON(c, &input, "invalid blog payload") {
		return
	}

	blog, err := a.blogs.Create(input, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "create blog")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "blog created successfully", "blog": blog})
}

// UpdateBlog 以补丁语义更新文章，仅限作者
func (a *API) UpdateBlog(c *gin.Context) {
	var patch service.BlogInput
	if !bindJSON(c, &patch, "invalid blog payload") {
		return
	}

	blog, err := a.blogs.Update(c.Param("id"), patch, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "update blog")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog updated successfully", "blog": blog})
}

// DeleteBlog 永久删除文章，仅限作者
func (a *API) DeleteBlog(c *gin.Context) {
	if err := a.blogs.Delete(c.Param("id"), currentUserID(c)); err != nil {
		respondServiceError(c, err, "delete blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog deleted successfully"})
}

// MyBlogs 返回当前用户的全部文章，不分页，包含草稿
func (a *API) MyBlogs(c *gin.Context) {
	blogs, err := a.blogs.ListByAuthor(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "list user blogs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}
