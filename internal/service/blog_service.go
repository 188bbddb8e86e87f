package service

import (
	"errors"

	"github.com/inkwell/internal/db"
	"gorm.io/gorm"
)

// BlogService wraps blog related database operations.
type BlogService struct {
	db *gorm.DB
}

// BlogFilter describes filters for listing blogs.
type BlogFilter struct {
	Search   string
	Tag      string
	Status   string
	AuthorID string
	Page     int
	PerPage  int
}

// BlogListResult aggregates paginated list data.
type BlogListResult struct {
	Blogs      []db.Blog
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
	HasNext    bool
	HasPrev    bool
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// Create 以已认证主体为作者物化并持久化一篇文章。
func (s *BlogService) Create(input BlogInput, authorID string) (*db.Blog, error) {
	blog, verr := materializeBlog(input, authorID)
	if verr != nil {
		return nil, verr
	}

	if err := s.db.Create(blog).Error; err != nil {
		return nil, err
	}

	return s.Get(blog.ID)
}

// Get fetches a blog by id with its author preloaded.
func (s *BlogService) Get(id string) (*db.Blog, error) {
	var blog db.Blog
	if err := s.db.Preload("Author").First(&blog, "blogs.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// Update 加载文章，校验作者身份后应用补丁并重新持久化。
// 非作者的主体会得到 ErrNotBlogAuthor，记录保持不变。
func (s *BlogService) Update(id string, patch BlogInput, principalID string) (*db.Blog, error) {
	var existing db.Blog
	if err := s.db.First(&existing, "blogs.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if !canMutate(&existing, principalID) {
		return nil, ErrNotBlogAuthor
	}

	if verr := reconcileBlog(&existing, patch); verr != nil {
		return nil, verr
	}

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	return s.Get(existing.ID)
}

// Delete removes a blog permanently. Author only.
func (s *BlogService) Delete(id string, principalID string) error {
	var existing db.Blog
	if err := s.db.First(&existing, "blogs.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	if !canMutate(&existing, principalID) {
		return ErrNotBlogAuthor
	}

	return s.db.Delete(&db.Blog{}, "blogs.id = ?", id).Error
}

// ListPublished 返回已发布文章的分页列表，供公开浏览使用。
func (s *BlogService) ListPublished(filter BlogFilter) (*BlogListResult, error) {
	filter.Status = db.StatusPublished
	return s.List(filter)
}

// ListByAuthor returns all blogs of one author, newest first, any status.
func (s *BlogService) ListByAuthor(authorID string) ([]db.Blog, error) {
	var blogs []db.Blog
	if err := s.db.Preload("Author").
		Where("blogs.author_id = ?", authorID).
		Order("blogs.created_at desc, blogs.id desc").
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// List provides paginated blogs based on filters.
// 页码超出总页数时返回空列表而不是错误。
func (s *BlogService) List(filter BlogFilter) (*BlogListResult, error) {
	result := &BlogListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = 10
	}

	countQuery := s.applyFilters(s.db.Model(&db.Blog{}), filter)
	if err := countQuery.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	offset := (result.Page - 1) * result.PerPage

	var blogs []db.Blog
	dataQuery := s.applyFilters(s.db.Model(&db.Blog{}).Preload("Author"), filter)
	if err := dataQuery.
		Order("blogs.created_at desc, blogs.id desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&blogs).Error; err != nil {
		return nil, err
	}

	if result.Total == 0 {
		result.TotalPages = 1
	} else {
		result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}

	result.Blogs = blogs
	result.HasNext = result.Page < result.TotalPages
	result.HasPrev = result.Page > 1
	return result, nil
}

func (s *BlogService) applyFilters(query *gorm.DB, filter BlogFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("blogs.status = ?", filter.Status)
	}

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("(blogs.title LIKE ? OR blogs.content LIKE ?)", search, search)
	}

	if filter.Tag != "" {
		// 大小写敏感的元素匹配，区别于 LIKE 的子串语义
		query = query.Where(
			"EXISTS (SELECT 1 FROM json_each(blogs.tags) WHERE json_each.value = ?)",
			filter.Tag,
		)
	}

	if filter.AuthorID != "" {
		query = query.Where("blogs.author_id = ?", filter.AuthorID)
	}

	return query
}

// canMutate 判定主体是否可以修改或删除记录：纯作者身份比较，无角色体系。
func canMutate(blog *db.Blog, principalID string) bool {
	return blog.AuthorID == principalID
}
