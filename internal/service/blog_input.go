package service

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/inkwell/internal/db"
)

const (
	titleMinLen      = 3
	titleMaxLen      = 200
	contentMinLen    = 10
	excerptMaxLen    = 300
	excerptDeriveLen = 150
	wordsPerMinute   = 200
)

// TagList 接受两种输入形态：字符串数组，或单个逗号分隔的字符串。
// 其它 JSON 形态一律拒绝，而不是猜测调用方意图。
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TagList(strings.Split(single, ","))
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*t = TagList(many)
		return nil
	}

	return errors.New("tags must be a string or an array of strings")
}

// BlogInput 表示创建或更新文章时接受的字段。
// 更新时所有字段均可缺省，缺省字段保留原值。
type BlogInput struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Excerpt       string  `json:"excerpt"`
	Tags          TagList `json:"tags"`
	FeaturedImage string  `json:"featuredImage"`
}

// normalizeTags 逐项去除空白并丢弃空标签，保留输入顺序，不去重。
// 返回值永不为 nil，以保证序列化后的列始终是合法的 JSON 数组。
func normalizeTags(tags TagList) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// materializeBlog 校验输入并应用派生规则，产出一条可持久化的记录。
// authorID 始终来自已认证的主体，绝不取自请求载荷。
func materializeBlog(input BlogInput, authorID string) (*db.Blog, *ValidationError) {
	blog := &db.Blog{
		Title:         strings.TrimSpace(input.Title),
		Content:       strings.TrimSpace(input.Content),
		Excerpt:       strings.TrimSpace(input.Excerpt),
		Tags:          normalizeTags(input.Tags),
		FeaturedImage: strings.TrimSpace(input.FeaturedImage),
		AuthorID:      authorID,
		Status:        db.StatusPublished,
	}

	if verr := validateBlog(blog); verr != nil {
		return nil, verr
	}

	deriveBlogFields(blog)
	return blog, nil
}

// reconcileBlog 将补丁中非空的字段覆盖到现有记录上，缺省字段保留原值。
// ID、AuthorID、Status 与 CreatedAt 不受补丁影响。
// 校验通过后，若 content 发生变化则重新执行派生。
func reconcileBlog(existing *db.Blog, patch BlogInput) *ValidationError {
	contentChanged := false

	if title := strings.TrimSpace(patch.Title); title != "" {
		existing.Title = title
	}
	if content := strings.TrimSpace(patch.Content); content != "" && content != existing.Content {
		existing.Content = content
		contentChanged = true
	}
	if excerpt := strings.TrimSpace(patch.Excerpt); excerpt != "" {
		existing.Excerpt = excerpt
	}
	if tags := normalizeTags(patch.Tags); len(tags) > 0 {
		existing.Tags = tags
	}
	if image := strings.TrimSpace(patch.FeaturedImage); image != "" {
		existing.FeaturedImage = image
	}

	if verr := validateBlog(existing); verr != nil {
		return verr
	}

	if contentChanged {
		existing.ReadingTime = calculateReadingTime(existing.Content)
	}
	if existing.Excerpt == "" && existing.Content != "" {
		existing.Excerpt = deriveExcerpt(existing.Content)
	}
	return nil
}

// validateBlog 检查所有字段约束，并枚举每一个失败项。
func validateBlog(blog *db.Blog) *ValidationError {
	verr := &ValidationError{}

	titleLen := len([]rune(blog.Title))
	if titleLen < titleMinLen || titleLen > titleMaxLen {
		verr.add("title", "title must be between 3 and 200 characters")
	}

	if len([]rune(blog.Content)) < contentMinLen {
		verr.add("content", "content must be at least 10 characters long")
	}

	if len([]rune(blog.Excerpt)) > excerptMaxLen {
		verr.add("excerpt", "excerpt cannot be more than 300 characters")
	}

	if blog.FeaturedImage != "" && !isAbsoluteURL(blog.FeaturedImage) {
		verr.add("featuredImage", "featured image must be a valid URL")
	}

	return verr.orNil()
}

// deriveBlogFields 在校验通过后执行字段派生，保证派生值反映最终的 content。
func deriveBlogFields(blog *db.Blog) {
	if blog.Excerpt == "" && blog.Content != "" {
		blog.Excerpt = deriveExcerpt(blog.Content)
	}
	blog.ReadingTime = calculateReadingTime(blog.Content)
}

// deriveExcerpt 截取 content 的前 150 个字符并追加省略号，不考虑词边界。
func deriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptDeriveLen {
		runes = runes[:excerptDeriveLen]
	}
	return string(runes) + "..."
}

// calculateReadingTime 按每分钟 200 词的阅读速度向上取整。
// 词指以空白分隔的非空片段。
func calculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}

	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	return minutes
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
